package domain

import (
	"regexp"
	"strconv"
	"time"
)

// Agent is a police officer on record. IncorporationDate carries only the
// calendar day; the time of day is always midnight UTC.
type Agent struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Role              string    `json:"role"`
	IncorporationDate time.Time `json:"incorporationDate"`
}

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// namePattern accepts Unicode letters (accented Latin included) and spaces.
var namePattern = regexp.MustCompile(`^[\p{L} ]+$`)

// ValidName reports whether s is a non-blank string of letters and spaces.
func ValidName(s string) bool {
	if !namePattern.MatchString(s) {
		return false
	}
	for _, r := range s {
		if r != ' ' {
			return true
		}
	}
	return false
}

// ParseID converts a decimal string into a positive integer identifier.
// Fractional, zero, negative, and non-numeric values are all rejected.
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ParseIncorporationDate parses a strict YYYY-MM-DD string into a real
// calendar day and rejects dates after today. Comparison is at day
// granularity in UTC: a date equal to the current day passes regardless of
// the clock time.
func ParseIncorporationDate(s string, now time.Time) (time.Time, bool) {
	// The strict layout rejects impossible days (2021-02-29 fails with
	// "day out of range") and unpadded components.
	d, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	y, m, day := now.UTC().Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	if d.After(today) {
		return time.Time{}, false
	}
	return d, true
}
