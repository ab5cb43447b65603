package grading

import "fmt"

// ConvertScale converts a GPA/CGPA value between the 4-point and 10-point
// scales and reports the formula that fired; the description is part of the
// output contract, not logging.
//
// "linear" scales proportionally. "official" applies the institution's
// piecewise tables; the 10→4 and 4→10 tables are not inverses of each other
// and are kept verbatim. Threshold checks use >= against the lower bound,
// tested top-down, so a value exactly on a boundary lands in the higher band.
func ConvertScale(value float64, fromScale, toScale int, method string) (float64, string) {
	if fromScale == toScale {
		return value, "Same scale - no conversion needed"
	}

	if method == MethodOfficial {
		if fromScale == Scale10 && toScale == Scale4 {
			switch {
			case value >= 9.5:
				return 4.0, "Official mapping: 9.5-10.0 → 4.0"
			case value >= 8.5:
				return 3.7, "Official mapping: 8.5-9.4 → 3.7"
			case value >= 7.5:
				return 3.3, "Official mapping: 7.5-8.4 → 3.3"
			case value >= 6.5:
				return 3.0, "Official mapping: 6.5-7.4 → 3.0"
			case value >= 5.5:
				return 2.7, "Official mapping: 5.5-6.4 → 2.7"
			case value >= 5.0:
				return 2.0, "Official mapping: 5.0-5.4 → 2.0"
			default:
				return value * 0.4, fmt.Sprintf("Official mapping: Below 5.0 → %v × 0.4", value)
			}
		}

		if fromScale == Scale4 && toScale == Scale10 {
			switch {
			case value >= 3.7:
				return 9.0, "Official mapping: 3.7-4.0 → 9.0"
			case value >= 3.3:
				return 8.0, "Official mapping: 3.3-3.6 → 8.0"
			case value >= 3.0:
				return 7.0, "Official mapping: 3.0-3.2 → 7.0"
			case value >= 2.7:
				return 6.0, "Official mapping: 2.7-2.9 → 6.0"
			case value >= 2.0:
				return 5.5, "Official mapping: 2.0-2.6 → 5.5"
			default:
				return value * 2.5, fmt.Sprintf("Official mapping: Below 2.0 → %v × 2.5", value)
			}
		}
	}

	// linear conversion (default)
	if fromScale == Scale10 && toScale == Scale4 {
		return (value / 10.0) * 4.0, fmt.Sprintf("Linear: (%v / 10) × 4", value)
	}
	return (value / 4.0) * 10.0, fmt.Sprintf("Linear: (%v / 4) × 10", value)
}
