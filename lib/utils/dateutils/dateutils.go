package dateutils

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Single parse/format contract for the DD/MM/YYYY dates the platform uses
// in list payloads and forms. Everything else exchanges RFC3339.

const (
	DateLayout  = "02/01/2006"
	ClockLayout = "15:04"
)

// ParseDate accepts DD/MM/YYYY and DD.MM.YYYY.
func ParseDate(value string) (time.Time, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(value), ".", "/")
	t, err := time.ParseInLocation(DateLayout, normalized, time.Local)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid date (%v)", value)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseClock(value string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid time (%v)", value)
	}
	return t, nil
}

func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// CombineDateClock merges a DD/MM/YYYY date and an HH:mm clock into one local timestamp.
func CombineDateClock(date, clock string) (time.Time, error) {
	day, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	hm, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hm.Hour(), hm.Minute(), 0, 0, time.Local), nil
}

func ParseDateTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid datetime (%v)", value)
	}
	return t, nil
}

func FormatDateTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// SplitDateTime is the inverse of CombineDateClock.
func SplitDateTime(t time.Time) (date, clock string) {
	return FormatDate(t), FormatClock(t)
}

func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Age in full years at the reference moment.
func Age(birth, at time.Time) int {
	years := at.Year() - birth.Year()
	anniversary := time.Date(at.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, at.Location())
	if at.Before(anniversary) {
		years--
	}
	return years
}
