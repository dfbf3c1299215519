package domain

import (
	"fmt"
	"time"
)

// MonthKey identifies a single calendar month. It is the bucket used by the
// fixed-expense materializer: the existence check and the uniqueness
// constraint on generated bill transactions are both keyed on it, instead of
// relying on ad-hoc date range comparisons.
type MonthKey struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// MonthKeyFromTime returns the MonthKey containing t.
func MonthKeyFromTime(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// ParseMonthKey parses a "YYYY-MM" string as produced by String.
func ParseMonthKey(s string) (MonthKey, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return MonthKey{}, fmt.Errorf("invalid month key %q: %w", s, err)
	}
	return MonthKeyFromTime(t), nil
}

// String renders the key as "YYYY-MM", the format persisted in the database.
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// LastDay returns the number of days in the month. The zero-day trick
// normalizes to the last day of the previous month.
func (k MonthKey) LastDay() int {
	return time.Date(k.Year, k.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay clamps a nominal day-of-month to the last valid day of this month.
// A due day of 31 in a 30-day month resolves to the 30th, never rolling over
// into the following month.
func (k MonthKey) ClampDay(day int) int {
	if last := k.LastDay(); day > last {
		return last
	}
	return day
}

// DateAtNoon returns the given day of this month anchored at 12:00 UTC.
// Anchoring away from midnight keeps the calendar day stable when the
// timestamp is later serialized and rendered in a negative-UTC-offset client.
func (k MonthKey) DateAtNoon(day int) time.Time {
	return time.Date(k.Year, k.Month, k.ClampDay(day), 12, 0, 0, 0, time.UTC)
}

// Bounds returns the inclusive [start, end] instants of the month in UTC.
func (k MonthKey) Bounds() (time.Time, time.Time) {
	start := time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// Contains reports whether t falls inside this month.
func (k MonthKey) Contains(t time.Time) bool {
	return t.Year() == k.Year && t.Month() == k.Month
}
