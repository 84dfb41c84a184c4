// Package dateutils provides common date and time operations used throughout the application.
package dateutils

import "time"

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutSnapshot = "20060102_150405"
	DateLayoutDisplay  = "Jan 02, 2006 - 15:04"
)

// FromEpochMillis converts an epoch-milliseconds timestamp to a time.Time
// in the local zone.
func FromEpochMillis(millis int64) time.Time {
	return time.UnixMilli(millis)
}

// ToEpochMillis converts a time.Time to an epoch-milliseconds timestamp.
func ToEpochMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// SameMonth reports whether two dates fall in the same calendar month and year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// InMonth reports whether a date falls in the given calendar month and year.
func InMonth(date time.Time, month time.Month, year int) bool {
	return date.Month() == month && date.Year() == year
}

// MonthsBack returns the reference time shifted back by the given number of
// calendar months. When the source day does not exist in the target month
// (May 31 back to February), the day clamps to the last valid day instead of
// normalizing into the following month.
func MonthsBack(ref time.Time, months int) time.Time {
	year, month, day := ref.Date()
	firstOfTarget := time.Date(year, month-time.Month(months), 1,
		ref.Hour(), ref.Minute(), ref.Second(), ref.Nanosecond(), ref.Location())
	if last := DaysInMonth(firstOfTarget); day > last {
		day = last
	}
	return firstOfTarget.AddDate(0, 0, day-1)
}

// DaysInMonth returns the number of days in the month of the given date.
func DaysInMonth(date time.Time) int {
	return EndOfMonth(date).Day()
}

// StartOfMonth returns the first instant of the month for a given date.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the month for a given date.
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}

// FormatDate formats a time as an ISO date (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.Format(DateLayoutISO)
}

// SnapshotTimestamp formats a time for embedding in a snapshot filename.
func SnapshotTimestamp(t time.Time) string {
	return t.Format(DateLayoutSnapshot)
}

// ParseSnapshotTimestamp parses a timestamp token taken from a snapshot filename.
func ParseSnapshotTimestamp(token string) (time.Time, error) {
	return time.ParseInLocation(DateLayoutSnapshot, token, time.Local)
}

// FormatDisplay formats a time for human-readable presentation.
func FormatDisplay(t time.Time) string {
	return t.Format(DateLayoutDisplay)
}
