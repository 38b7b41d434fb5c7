// Package dates pins the calendar formats appointments are stored with.
package dates

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func ValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}

func ValidTime(s string) bool {
	t, err := time.Parse(TimeLayout, s)
	return err == nil && t.Format(TimeLayout) == s
}
