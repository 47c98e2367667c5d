package schedule

import "courseplan/internal/catalog"

// makeSection builds a single-meeting section for solver and indexer tests.
// days uses registrar letters (M, T, W, R, F).
func makeSection(crn, subject, number, title string, open bool, seats int, start, end, days string) catalog.Section {
	var flags [5]bool
	for _, letter := range days {
		switch letter {
		case 'M':
			flags[catalog.Monday] = true
		case 'T':
			flags[catalog.Tuesday] = true
		case 'W':
			flags[catalog.Wednesday] = true
		case 'R':
			flags[catalog.Thursday] = true
		case 'F':
			flags[catalog.Friday] = true
		}
	}
	return catalog.Section{
		CRN:            crn,
		Subject:        subject,
		Number:         number,
		Title:          title,
		Open:           open,
		Capacity:       30,
		SeatsAvailable: seats,
		Meetings: []catalog.Meeting{
			{Start: start, End: end, Days: flags},
		},
	}
}
