package schedule

import (
	"fmt"
	"strconv"
)

// Minutes counts minutes from midnight.
type Minutes int

// ParseClock converts a compact "HHMM" encoding ("0930", "1415", also "930")
// to minutes from midnight. Returns false when the value is absent, too short
// or not numeric in its hour or minute parts.
func ParseClock(raw string) (Minutes, bool) {
	if len(raw) < 3 {
		return 0, false
	}
	hour, err := strconv.Atoi(raw[:len(raw)-2])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(raw[len(raw)-2:])
	if err != nil {
		return 0, false
	}
	return Minutes(hour*60 + minute), true
}

// FormatClock renders minutes from midnight on a 12-hour clock ("2:15pm").
// Negative input renders as the empty string.
func FormatClock(m Minutes) string {
	if m < 0 {
		return ""
	}
	hour, minute := int(m)/60%24, int(m)%60
	suffix := "am"
	if hour >= 12 {
		suffix = "pm"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d%s", hour, minute, suffix)
}
