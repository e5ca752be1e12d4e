package calculator

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// parseDate accepts an ISO-8601 date or date-time.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthsWorked counts calendar months between admission and termination,
// both inclusive: a contract that starts and ends in the same month counts 1,
// and a partial final month counts as a whole month.
//
// Returns 0 when either date is absent or unparseable, and when termination
// precedes admission.
func MonthsWorked(admission, termination string) int {
	start, ok := parseDate(admission)
	if !ok {
		return 0
	}
	end, ok := parseDate(termination)
	if !ok {
		return 0
	}

	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
	if months < 0 {
		return 0
	}
	return months
}
