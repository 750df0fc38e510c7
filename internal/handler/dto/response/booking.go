package response

import (
	"venuebook/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                 uuid.UUID  `json:"id"`
	State              string     `json:"state"`
	VenueID            uuid.UUID  `json:"venue_id"`
	VenueName          string     `json:"venue_name"`
	DateFrom           string     `json:"date_from"`
	DateTo             string     `json:"date_to"`
	Guests             int        `json:"guests"`
	Nights             int        `json:"nights"`
	PricePerNightCents int64      `json:"price_per_night_cents"`
	TotalCents         int64      `json:"total_cents"`
	PaymentMethod      string     `json:"payment_method"`
	ConfirmationToken  string     `json:"confirmation_token,omitempty"`
	ReservationID      *uuid.UUID `json:"reservation_id,omitempty"`
	AbortReason        string     `json:"abort_reason,omitempty"`
	FailureMessage     string     `json:"failure_message,omitempty"`
}

func FromBookingView(view *commands.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:                 view.ID,
		State:              string(view.State),
		VenueID:            view.VenueID,
		VenueName:          view.VenueName,
		DateFrom:           view.DateFrom,
		DateTo:             view.DateTo,
		Guests:             view.Guests,
		Nights:             view.Nights,
		PricePerNightCents: view.PricePerNightCents,
		TotalCents:         view.TotalCents,
		PaymentMethod:      view.PaymentMethod.String(),
		ConfirmationToken:  view.ConfirmationToken,
		ReservationID:      view.ReservationID,
		AbortReason:        string(view.AbortReason),
		FailureMessage:     view.FailureMessage,
	}
}
