package catalog

// CourseInfo is the per-code catalog summary used to bridge curriculum codes
// to the title keys the scheduler operates on.
type CourseInfo struct {
	DisplayTitle string
	TitleKey     string
	TotalCount   int
	OpenCount    int
}

// CourseIndex maps a normalized course code to its catalog summary.
type CourseIndex map[string]CourseInfo

// BuildCourseIndex aggregates a snapshot by course code. The display title and
// title key come from the first section seen for each code.
func BuildCourseIndex(sections []Section) CourseIndex {
	index := make(CourseIndex, len(sections))
	for _, section := range sections {
		code := section.Code()
		info, ok := index[code]
		if !ok {
			info = CourseInfo{
				DisplayTitle: section.Title,
				TitleKey:     section.TitleKey(),
			}
		}
		info.TotalCount++
		if section.Open {
			info.OpenCount++
		}
		index[code] = info
	}
	return index
}

// Offered reports whether any section of the code is present in the snapshot.
func (index CourseIndex) Offered(code string) bool {
	_, ok := index[NormalizeCode(code)]
	return ok
}

// Selectable reports whether the code has at least one candidate under the
// current open/closed filter.
func (index CourseIndex) Selectable(code string, includeClosed bool) bool {
	info, ok := index[NormalizeCode(code)]
	if !ok {
		return false
	}
	if includeClosed {
		return info.TotalCount > 0
	}
	return info.OpenCount > 0
}
