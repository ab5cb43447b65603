package grading

import (
	"math"
	"testing"
)

func TestConvertScale(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		from, to  int
		method    string
		want      float64
		wantDescr string
	}{
		{name: "same scale linear", value: 7.5, from: 10, to: 10, method: MethodLinear, want: 7.5, wantDescr: "Same scale - no conversion needed"},
		{name: "same scale official", value: 3.2, from: 4, to: 4, method: MethodOfficial, want: 3.2, wantDescr: "Same scale - no conversion needed"},

		{name: "linear 10 to 4", value: 10.0, from: 10, to: 4, method: MethodLinear, want: 4.0, wantDescr: "Linear: (10 / 10) × 4"},
		{name: "linear 10 to 4 mid", value: 7.5, from: 10, to: 4, method: MethodLinear, want: 3.0, wantDescr: "Linear: (7.5 / 10) × 4"},
		{name: "linear 4 to 10", value: 4.0, from: 4, to: 10, method: MethodLinear, want: 10.0, wantDescr: "Linear: (4 / 4) × 10"},

		// boundaries belong to the higher band
		{name: "official 10 to 4 top", value: 9.5, from: 10, to: 4, method: MethodOfficial, want: 4.0, wantDescr: "Official mapping: 9.5-10.0 → 4.0"},
		{name: "official 10 to 4 boundary", value: 8.5, from: 10, to: 4, method: MethodOfficial, want: 3.7, wantDescr: "Official mapping: 8.5-9.4 → 3.7"},
		{name: "official 10 to 4 just below", value: 8.49, from: 10, to: 4, method: MethodOfficial, want: 3.3, wantDescr: "Official mapping: 7.5-8.4 → 3.3"},
		{name: "official 10 to 4 mid", value: 7.0, from: 10, to: 4, method: MethodOfficial, want: 3.0, wantDescr: "Official mapping: 6.5-7.4 → 3.0"},
		{name: "official 10 to 4 narrow band", value: 5.2, from: 10, to: 4, method: MethodOfficial, want: 2.0, wantDescr: "Official mapping: 5.0-5.4 → 2.0"},
		{name: "official 10 to 4 below table", value: 4.0, from: 10, to: 4, method: MethodOfficial, want: 1.6, wantDescr: "Official mapping: Below 5.0 → 4 × 0.4"},

		{name: "official 4 to 10 top", value: 3.7, from: 4, to: 10, method: MethodOfficial, want: 9.0, wantDescr: "Official mapping: 3.7-4.0 → 9.0"},
		{name: "official 4 to 10 mid", value: 3.1, from: 4, to: 10, method: MethodOfficial, want: 7.0, wantDescr: "Official mapping: 3.0-3.2 → 7.0"},
		{name: "official 4 to 10 wide band", value: 2.3, from: 4, to: 10, method: MethodOfficial, want: 5.5, wantDescr: "Official mapping: 2.0-2.6 → 5.5"},
		{name: "official 4 to 10 below table", value: 1.0, from: 4, to: 10, method: MethodOfficial, want: 2.5, wantDescr: "Official mapping: Below 2.0 → 1 × 2.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, descr := ConvertScale(tt.value, tt.from, tt.to, tt.method)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ConvertScale() = %v, want %v", got, tt.want)
			}
			if descr != tt.wantDescr {
				t.Errorf("ConvertScale() descr = %q, want %q", descr, tt.wantDescr)
			}
		})
	}
}

// the official tables are deliberately not inverses of each other
func TestConvertScale_officialAsymmetry(t *testing.T) {
	down, _ := ConvertScale(10.0, 10, 4, MethodOfficial)
	back, _ := ConvertScale(down, 4, 10, MethodOfficial)
	if back == 10.0 {
		t.Error("round-trip through official tables should not be lossless")
	}
}
