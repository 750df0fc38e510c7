package availability

import (
	"sort"

	"venuebook/internal/domain/stay"

	"github.com/google/uuid"
)

// Reservation is an existing, read-only booking record as supplied by the
// venue service. Spans are inclusive of both endpoints when computing
// occupancy: the checkout day of one stay still blocks that day.
type Reservation struct {
	ID       uuid.UUID
	VenueID  uuid.UUID
	DateFrom stay.Day
	DateTo   stay.Day
	Guests   int
}

// OccupiedDaySet is the set of calendar days covered by a venue's
// reservations. It is an immutable snapshot: rebuilt wholesale whenever the
// reservation list changes, never mutated in place.
type OccupiedDaySet struct {
	days map[string]struct{}
}

// Build expands every reservation span inclusively and unions the days.
// Input order is irrelevant and records sharing an id are counted once.
// Callers must pre-filter to a single venue; Build has no venue awareness.
func Build(reservations []Reservation) (OccupiedDaySet, error) {
	days := make(map[string]struct{})
	seen := make(map[uuid.UUID]struct{}, len(reservations))

	for _, r := range reservations {
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}

		span, err := stay.ExpandSpan(r.DateFrom, r.DateTo)
		if err != nil {
			return OccupiedDaySet{}, err
		}
		for _, d := range span {
			days[d.Key()] = struct{}{}
		}
	}

	return OccupiedDaySet{days: days}, nil
}

func (s OccupiedDaySet) Contains(d stay.Day) bool {
	_, ok := s.days[d.Key()]
	return ok
}

// ContainsAnyBetween reports whether any occupied day lies strictly between
// from and to, both endpoints excluded. The exclusion allows turnover
// bookings: a stay may start on another stay's checkout day and vice versa.
func (s OccupiedDaySet) ContainsAnyBetween(from, to stay.Day) bool {
	if len(s.days) == 0 {
		return false
	}
	for d := from.AddDays(1); d.Before(to); d = d.AddDays(1) {
		if s.Contains(d) {
			return true
		}
	}
	return false
}

func (s OccupiedDaySet) Len() int {
	return len(s.days)
}

// Days returns the occupied days in ascending order.
func (s OccupiedDaySet) Days() []stay.Day {
	keys := make([]string, 0, len(s.days))
	for k := range s.days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]stay.Day, 0, len(keys))
	for _, k := range keys {
		d, err := stay.ParseDay(k)
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	return out
}
