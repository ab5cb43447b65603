package grading

// ApplyRepeatPolicy collapses duplicate course codes according to policy:
//
//   - "latest" (default): the last occurrence in input order wins, modelling a
//     retake overwriting the original attempt.
//   - "highest": the occurrence with the greatest grade point wins; an absent
//     grade point compares as 0 (without being rewritten); first-seen wins ties.
//   - "average": duplicates merge into one course shaped like the first
//     occurrence whose grade point becomes the mean of all present grade
//     points; when every duplicate's grade point is absent the first occurrence
//     is kept unchanged (the mean is undefined, not zero).
//
// Output follows first-seen code order. An unrecognized policy returns the
// input unchanged, duplicates included.
func ApplyRepeatPolicy(courses []Course, policy string) []Course {
	switch policy {
	case PolicyLatest:
		seen := make(map[string]Course, len(courses))
		order := make([]string, 0, len(courses))
		for _, c := range courses {
			if _, ok := seen[c.Code]; !ok {
				order = append(order, c.Code)
			}
			seen[c.Code] = c
		}
		result := make([]Course, 0, len(order))
		for _, code := range order {
			result = append(result, seen[code])
		}
		return result

	case PolicyHighest:
		seen := make(map[string]Course, len(courses))
		order := make([]string, 0, len(courses))
		for _, c := range courses {
			kept, ok := seen[c.Code]
			if !ok {
				order = append(order, c.Code)
				seen[c.Code] = c
				continue
			}
			// absent grade points compare as 0; strict > keeps first-seen on ties
			if c.GradePoint.Float64 > kept.GradePoint.Float64 {
				seen[c.Code] = c
			}
		}
		result := make([]Course, 0, len(order))
		for _, code := range order {
			result = append(result, seen[code])
		}
		return result

	case PolicyAverage:
		groups := make(map[string][]Course, len(courses))
		order := make([]string, 0, len(courses))
		for _, c := range courses {
			if _, ok := groups[c.Code]; !ok {
				order = append(order, c.Code)
			}
			groups[c.Code] = append(groups[c.Code], c)
		}

		result := make([]Course, 0, len(order))
		for _, code := range order {
			group := groups[code]
			if len(group) == 1 {
				result = append(result, group[0])
				continue
			}

			var sum float64
			var n int
			for _, c := range group {
				if c.GradePoint.Valid {
					sum += c.GradePoint.Float64
					n++
				}
			}
			merged := group[0]
			if n > 0 {
				merged.GradePoint.SetValid(sum / float64(n))
			}
			result = append(result, merged)
		}
		return result
	}

	return courses
}
