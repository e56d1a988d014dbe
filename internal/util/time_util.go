package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}

// ToDate truncates t to its UTC calendar date
func ToDate(t time.Time) time.Time {
	t = t.UTC()
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses YYYY-MM-DD. An empty string means today.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return ToDate(time.Now()), nil
	}
	return time.Parse(layout, s)
}
