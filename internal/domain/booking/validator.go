package booking

import (
	"venuebook/internal/domain/availability"
)

type ValidationResult string

const (
	ResultOk                   ValidationResult = "ok"
	ResultMissingDates         ValidationResult = "missing_dates"
	ResultNoGuests             ValidationResult = "no_guests"
	ResultGuestsExceedCapacity ValidationResult = "guests_exceed_capacity"
	ResultDateConflict         ValidationResult = "date_conflict"
)

func (r ValidationResult) IsOk() bool {
	return r == ResultOk
}

// Message is the inline text the booking form shows for a result.
func (r ValidationResult) Message() string {
	switch r {
	case ResultOk:
		return ""
	case ResultMissingDates:
		return "Select both a check-in and a check-out date"
	case ResultNoGuests:
		return "At least one guest is required"
	case ResultGuestsExceedCapacity:
		return "Guest count exceeds venue capacity"
	case ResultDateConflict:
		return "Selected dates overlap an existing booking"
	default:
		return "Invalid selection"
	}
}

// Validate checks a candidate against the venue's occupancy snapshot and
// guest capacity. Checks run in fixed order so the first failure wins.
//
// The conflict test is strict-interior: the candidate's own endpoints are
// excluded, so a stay may check in on the day another stay checks out.
// A consequence kept on purpose: a one-night candidate whose span coincides
// with a shared turnover day passes even though both endpoint days are
// occupied. Do not tighten this without a product decision.
func Validate(c CandidateRange, occupied availability.OccupiedDaySet, maxGuests int) ValidationResult {
	if !c.HasDates() {
		return ResultMissingDates
	}
	if c.Guests <= 0 {
		return ResultNoGuests
	}
	// Input layer clamps guests before this point; guard kept for callers
	// that bypass normalization.
	if c.Guests > maxGuests {
		return ResultGuestsExceedCapacity
	}
	if occupied.ContainsAnyBetween(*c.DateFrom, *c.DateTo) {
		return ResultDateConflict
	}
	return ResultOk
}
