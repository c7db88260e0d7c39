package timex

import (
	"fmt"
	"time"
)

// frenchMonths maps time.Month to the lowercase French month names used in
// the long date form.
var frenchMonths = [...]string{
	time.January:   "janvier",
	time.February:  "février",
	time.March:     "mars",
	time.April:     "avril",
	time.May:       "mai",
	time.June:      "juin",
	time.July:      "juillet",
	time.August:    "août",
	time.September: "septembre",
	time.October:   "octobre",
	time.November:  "novembre",
	time.December:  "décembre",
}

// FormatShort renders t in the short French form used by tables and logs:
// "02/01/2006 15:04".
func FormatShort(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// FormatLong renders t in the long French form used by the enrollment
// confirmation, e.g. "05 février 2026 à 14:30".
func FormatLong(t time.Time) string {
	return fmt.Sprintf("%02d %s %d à %02d:%02d",
		t.Day(), frenchMonths[t.Month()], t.Year(), t.Hour(), t.Minute())
}
