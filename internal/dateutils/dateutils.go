// Package dateutils parses the dates found in negative item details, such as
// "Date Reported: 02/15/2023" or "Date Opened: Mar 2019".
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layouts seen in credit analyses.
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutUS        = "01/02/2006"
	DateLayoutUSShort   = "1/2/2006"
	DateLayoutDashUS    = "01-02-2006"
	DateLayoutLong      = "January 2, 2006"
	DateLayoutShort     = "Jan 2, 2006"
	DateLayoutMonth     = "January 2006"
	DateLayoutMonthAbbr = "Jan 2006"
	DateLayoutMonthNum  = "01/2006"
	DateLayoutYearMonth = "2006-01"
)

// CommonFormats is tried in order by ParseDate. US month-first layouts come
// before anything day-first because the bureaus report in US format.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutUS,
	DateLayoutUSShort,
	DateLayoutDashUS,
	DateLayoutLong,
	DateLayoutShort,
	DateLayoutMonth,
	DateLayoutMonthAbbr,
	DateLayoutMonthNum,
	DateLayoutYearMonth,
}

var (
	spaces = regexp.MustCompile(`\s+`)
	// trailing remarks such as "(charged off)" or "- still open"
	annotation = regexp.MustCompile(`\s*(\(.*\)|\s-\s.*)$`)
)

// ParseDate attempts to parse a date string using CommonFormats.
// Returns the parsed time and the matching layout.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CleanDateString collapses whitespace, drops a trailing annotation and
// removes ordinal suffixes ("March 3rd, 2021").
func CleanDateString(dateStr string) string {
	dateStr = spaces.ReplaceAllString(strings.TrimSpace(dateStr), " ")
	dateStr = annotation.ReplaceAllString(dateStr, "")
	for _, suffix := range []string{"st,", "nd,", "rd,", "th,"} {
		if i := strings.Index(dateStr, suffix); i > 0 && dateStr[i-1] >= '0' && dateStr[i-1] <= '9' {
			dateStr = dateStr[:i] + "," + dateStr[i+len(suffix):]
		}
	}
	return dateStr
}

// CompareDates compares two dates ignoring the time of day:
//
//	-1 if date1 is before date2
//	 0 if date1 is equal to date2
//	 1 if date1 is after date2
func CompareDates(date1, date2 time.Time) int {
	date1 = time.Date(date1.Year(), date1.Month(), date1.Day(), 0, 0, 0, 0, time.UTC)
	date2 = time.Date(date2.Year(), date2.Month(), date2.Day(), 0, 0, 0, 0, time.UTC)

	switch {
	case date1.Before(date2):
		return -1
	case date1.After(date2):
		return 1
	default:
		return 0
	}
}

// Earliest returns the earliest of dates; ok is false when dates is empty.
func Earliest(dates []time.Time) (earliest time.Time, ok bool) {
	for i, d := range dates {
		if i == 0 || CompareDates(d, earliest) < 0 {
			earliest = d
		}
	}
	return earliest, len(dates) > 0
}
