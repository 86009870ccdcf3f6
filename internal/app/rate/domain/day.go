package domain

import "time"

// Day is a calendar day at day granularity. The canonical normalization for
// the whole service is UTC midnight: every timestamp crossing the domain
// boundary (creation, filtering, grid placement) is truncated the same way,
// so two timestamps on the same UTC date always land on the same Day.
type Day struct {
	t time.Time
}

// DayOf truncates a timestamp to its canonical calendar day.
func DayOf(t time.Time) Day {
	u := t.UTC()
	return Day{t: time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDay parses a day in ISO "2006-01-02" form.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Day{}, ErrInvalidDate
	}
	return DayOf(t), nil
}

// Time returns the day as its UTC-midnight timestamp, the form persisted in
// the rate_date column.
func (d Day) Time() time.Time { return d.t }

func (d Day) IsZero() bool         { return d.t.IsZero() }
func (d Day) Equal(other Day) bool { return d.t.Equal(other.t) }
func (d Day) Before(other Day) bool { return d.t.Before(other.t) }
func (d Day) After(other Day) bool  { return d.t.After(other.t) }

// AddDays returns the day n calendar days later (or earlier for negative n).
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// String renders the ISO date form used in API payloads and grid keys.
func (d Day) String() string {
	return d.t.Format("2006-01-02")
}

// DaysInRange enumerates every day in the inclusive range [from, to].
// Returns nil when to precedes from.
func DaysInRange(from, to Day) []Day {
	if to.Before(from) {
		return nil
	}
	n := int(to.t.Sub(from.t).Hours()/24) + 1
	days := make([]Day, 0, n)
	for d := from; !d.After(to); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// WeekDays is the number of columns in a calendar week window.
const WeekDays = 7

// WeekOf returns the Monday-start week containing the reference day.
// The grid renders exactly these seven days; changing the reference date
// recomputes the window.
func WeekOf(reference Day) [WeekDays]Day {
	offset := int(reference.t.Weekday()-time.Monday+7) % 7
	start := reference.AddDays(-offset)

	var week [WeekDays]Day
	for i := range week {
		week[i] = start.AddDays(i)
	}
	return week
}
