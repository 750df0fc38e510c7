package request

import (
	"strings"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/stay"
	"venuebook/internal/usecase/commands"

	"github.com/google/uuid"
)

// Dates travel as plain calendar dates ("2006-01-02"); the gateway layer is
// the only place they widen to date-times.
type StartBookingRequest struct {
	VenueID  uuid.UUID `json:"venue_id" binding:"required"`
	DateFrom string    `json:"date_from" binding:"required"`
	DateTo   string    `json:"date_to" binding:"required"`
	Guests   int       `json:"guests" binding:"required"`
}

func (r StartBookingRequest) ToParams() (commands.StartBookingParams, error) {
	from, err := stay.ParseDay(strings.TrimSpace(r.DateFrom))
	if err != nil {
		return commands.StartBookingParams{}, err
	}
	to, err := stay.ParseDay(strings.TrimSpace(r.DateTo))
	if err != nil {
		return commands.StartBookingParams{}, err
	}
	return commands.StartBookingParams{
		VenueID:  r.VenueID,
		DateFrom: &from,
		DateTo:   &to,
		Guests:   r.Guests,
	}, nil
}

// ValidateRangeRequest mirrors a half-filled booking form: either date may
// still be absent.
type ValidateRangeRequest struct {
	DateFrom *string `json:"date_from,omitempty"`
	DateTo   *string `json:"date_to,omitempty"`
	Guests   int     `json:"guests"`
}

func (r ValidateRangeRequest) ToCandidate() (booking.CandidateRange, error) {
	candidate := booking.CandidateRange{Guests: r.Guests}

	if r.DateFrom != nil && strings.TrimSpace(*r.DateFrom) != "" {
		from, err := stay.ParseDay(strings.TrimSpace(*r.DateFrom))
		if err != nil {
			return booking.CandidateRange{}, err
		}
		candidate.DateFrom = &from
	}
	if r.DateTo != nil && strings.TrimSpace(*r.DateTo) != "" {
		to, err := stay.ParseDay(strings.TrimSpace(*r.DateTo))
		if err != nil {
			return booking.CandidateRange{}, err
		}
		candidate.DateTo = &to
	}
	return candidate, nil
}

type SelectPaymentMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

func (r SelectPaymentMethodRequest) ToDomain() booking.PaymentMethod {
	return booking.PaymentMethod(strings.TrimSpace(strings.ToLower(r.Method)))
}
