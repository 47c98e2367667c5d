package catalog

import "strings"

// Weekday enumerates the five days the scheduler places blocks on. Weekend
// flags present in a snapshot are carried through but never scheduled.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

// Weekdays fixes the day iteration order for block derivation.
var Weekdays = [5]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

var weekdayNames = [5]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func (d Weekday) String() string {
	if d < Monday || d > Friday {
		return "Unknown"
	}
	return weekdayNames[d]
}

// Meeting is one recurring weekly meeting of a section. Start and End keep the
// snapshot's compact "HHMM" encoding; entries whose times cannot be parsed
// contribute no blocks but are not an error.
type Meeting struct {
	Start    string
	End      string
	Days     [5]bool // indexed by Weekday, Monday..Friday
	Room     string
	Building string
	Kind     string
}

// Section is one schedulable offering of a course as loaded from a snapshot.
// Sections are immutable catalog records; every derived structure is rebuilt
// from them rather than mutated in place.
type Section struct {
	CRN            string
	Subject        string
	Number         string
	Title          string
	Open           bool
	Capacity       int
	SeatsAvailable int // -1 when the snapshot does not carry the field
	Meetings       []Meeting
}

// Code returns the section's normalized course code (subject + number).
func (s Section) Code() string {
	return NormalizeCode(s.Subject + s.Number)
}

// TitleKey identifies one course offering across its sections: the normalized
// code plus the whitespace-collapsed display title.
func (s Section) TitleKey() string {
	return s.Code() + " " + strings.Join(strings.Fields(s.Title), " ")
}

// NormalizeCode strips all whitespace from a course code and uppercases it, so
// codes coming from curricula and from catalog snapshots compare equal.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.Join(strings.Fields(code), ""))
}
