package booking

import (
	"venuebook/internal/domain/stay"
)

// CandidateRange is a not-yet-submitted proposed stay: dates may be absent
// while the user is still picking. Owned by exactly one in-flight booking
// attempt and discarded when that attempt ends.
type CandidateRange struct {
	DateFrom *stay.Day
	DateTo   *stay.Day
	Guests   int
}

func (c CandidateRange) Nights() int {
	return stay.NightsBetween(c.DateFrom, c.DateTo)
}

func (c CandidateRange) TotalCost(pricePerNight Money) Money {
	return pricePerNight.Times(int64(c.Nights()))
}

func (c CandidateRange) HasDates() bool {
	return c.DateFrom != nil && c.DateTo != nil
}

// ClampGuests normalizes raw guest input to [1, maxGuests]. Non-positive or
// unparsable input lands on 1.
func ClampGuests(requested, maxGuests int) int {
	if requested < 1 {
		return 1
	}
	if maxGuests >= 1 && requested > maxGuests {
		return maxGuests
	}
	return requested
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Times(n int64) Money {
	return Money{cents: m.cents * n}
}
