package clock

import (
	"fmt"
	"time"
)

// DayLayout is the ISO calendar date layout used everywhere a Day is stored or sent.
const DayLayout = "2006-01-02"

// Day is a calendar date without time of day or zone.
// The zero value is not a valid day.
type Day struct {
	t time.Time // midnight UTC of the day
}

// NewDay builds a Day from its components, normalising overflow like time.Date.
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf returns the calendar day of t in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return NewDay(y, m, d)
}

// ParseDay parses a strict YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return Day{t: t}, nil
}

// MustParseDay is ParseDay for literals in tests and constants.
func MustParseDay(s string) Day {
	d, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DayLayout)
}

func (d Day) IsZero() bool { return d.t.IsZero() }

func (d Day) Before(o Day) bool { return d.t.Before(o.t) }

func (d Day) After(o Day) bool { return d.t.After(o.t) }

func (d Day) Equal(o Day) bool { return d.t.Equal(o.t) }

// AddDays returns the day n calendar days later (earlier for negative n).
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil counts calendar days from d to o; negative when o is earlier.
func (d Day) DaysUntil(o Day) int {
	// both values sit on UTC midnight, so the division is exact
	return int(o.t.Sub(d.t) / (24 * time.Hour))
}

// Start returns midnight of the day in loc.
func (d Day) Start(loc *time.Location) time.Time {
	y, m, dd := d.t.Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, loc)
}
