// Package dateutil holds the calendar arithmetic used by the dashboard.
// All computation is pinned to UTC: backend date strings are parsed as UTC
// calendar dates and navigation moves in whole UTC days, so results do not
// depend on the host timezone.
package dateutil

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// DayFormat is the backend's date layout.
const DayFormat = "2006-01-02"

// ParseDay parses a backend "YYYY-MM-DD" date string as a UTC calendar day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid day %q", s)
	}
	return t, nil
}

// FormatDay renders a time as the backend's "YYYY-MM-DD" layout.
func FormatDay(t time.Time) string {
	return t.In(time.UTC).Format(DayFormat)
}

// Last7DayLabels returns chart x-axis labels for the window ending at the
// reference date: seven "DD.MM" strings, oldest first.
func Last7DayLabels(reference time.Time) []string {
	labels := make([]string, 7)
	for i := 0; i < 7; i++ {
		d := reference.AddDate(0, 0, -(6 - i))
		labels[i] = d.In(time.UTC).Format("02.01")
	}
	return labels
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// FormatLongDate turns "YYYY-MM-DD" into "D Month YYYY", e.g. "13 April 2025".
func FormatLongDate(s string) (string, error) {
	t, err := ParseDay(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %s %d", t.Day(), monthNames[t.Month()-1], t.Year()), nil
}

// PrevDay returns the day before the given one.
func PrevDay(t time.Time) time.Time {
	return t.AddDate(0, 0, -1)
}

// NextDay returns the day after the given one.
func NextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}

// CanGoForward reports whether navigation past current is allowed given the
// latest day the backend has data for. Lexicographic comparison is exact
// for the fixed "YYYY-MM-DD" layout.
func CanGoForward(current, limit string) bool {
	if limit == "" {
		return false
	}
	return current < limit
}

// ClampToLimit caps a requested day at the date limit. An empty limit
// leaves the day unchanged.
func ClampToLimit(day, limit string) string {
	if limit != "" && day > limit {
		return limit
	}
	return day
}
