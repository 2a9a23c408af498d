package dates

import (
	"errors"
	"fmt"
	"time"
)

// Riyadh is the application calendar zone. The group schedules everything
// in Saudi civil time: a fixed UTC+3 offset with no daylight saving. The
// zone is constructed explicitly instead of loaded from host tzdata so date
// math does not depend on the deployment environment.
var Riyadh = time.FixedZone("Asia/Riyadh", 3*60*60)

const (
	// Layout is the wire and storage format for exam dates.
	Layout = "2006-01-02"

	// CutoffHour is the local hour treated as an exam's end time. An exam
	// scheduled on day D is over at D 10:00 Asia/Riyadh.
	CutoffHour = 10
)

// ErrInvalidDate reports a value that does not parse as a calendar date.
var ErrInvalidDate = errors.New("invalid exam date")

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD) as midnight in
// the application zone.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, value, Riyadh)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

// CutoffInstant returns the moment an exam scheduled on the given date is
// considered over: the cutoff hour of that day in the application zone.
func CutoffInstant(date string) (time.Time, error) {
	day, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), CutoffHour, 0, 0, 0, Riyadh), nil
}

// Expired reports whether an exam scheduled on date is over at the given
// instant. The boundary counts: an exam on day D is expired from D 10:00:00
// local inclusive. A malformed date yields ErrInvalidDate rather than a
// silent verdict either way.
func Expired(date string, now time.Time) (bool, error) {
	cutoff, err := CutoffInstant(date)
	if err != nil {
		return false, err
	}
	return !cutoff.After(now), nil
}

// RemainingDays returns the signed whole-day distance from the civil date
// of now (in the application zone) to the exam date: positive for upcoming
// exams, zero on the day itself, negative after. ok is false when the date
// does not parse, so display code can fall back to a placeholder.
func RemainingDays(date string, now time.Time) (days int, ok bool) {
	target, err := ParseDate(date)
	if err != nil {
		return 0, false
	}
	local := now.In(Riyadh)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Riyadh)
	return int(target.Sub(today).Hours() / 24), true
}

// Countdown renders a RemainingDays result the way the exam board displays
// it.
func Countdown(days int, ok bool) string {
	switch {
	case !ok:
		return "unknown"
	case days < 0:
		return "passed"
	case days == 0:
		return "today"
	case days == 1:
		return "1 day remaining"
	default:
		return fmt.Sprintf("%d days remaining", days)
	}
}
