package stay

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("date range end precedes start")

const dayLayout = "2006-01-02"

// Day is a calendar date with no time component. All arithmetic happens at
// UTC midnight so DST offsets in the caller's zone can never shift a day.
type Day struct {
	t time.Time
}

func NewDay(t time.Time) Day {
	y, m, d := t.UTC().Date()
	return Day{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, err
	}
	return NewDay(t), nil
}

func (d Day) String() string {
	return d.t.Format(dayLayout)
}

// Key is the normalized map key for day sets.
func (d Day) Key() string {
	return d.String()
}

func (d Day) Time() time.Time {
	return d.t
}

func (d Day) Before(other Day) bool {
	return d.t.Before(other.t)
}

func (d Day) After(other Day) bool {
	return d.t.After(other.t)
}

func (d Day) Equal(other Day) bool {
	return d.t.Equal(other.t)
}

func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// NightsBetween returns the number of nights a stay from start to end covers.
// Absent dates or a reversed/zero-length range count as zero nights, never an
// error: the UI calls this on every partial date-picker change.
func NightsBetween(start, end *Day) int {
	if start == nil || end == nil {
		return 0
	}
	if !end.After(*start) {
		return 0
	}
	return int(end.t.Sub(start.t).Hours() / 24)
}

// ExpandSpan lists every day from from through to, both endpoints included,
// in ascending order.
func ExpandSpan(from, to Day) ([]Day, error) {
	if to.Before(from) {
		return nil, ErrInvalidRange
	}
	days := make([]Day, 0, NightsBetween(&from, &to)+1)
	for d := from; !d.After(to); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days, nil
}
