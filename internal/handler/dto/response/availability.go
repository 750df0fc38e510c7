package response

import (
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type VenueAvailabilityResponse struct {
	VenueID            uuid.UUID `json:"venue_id"`
	Name               string    `json:"name"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	MaxGuests          int       `json:"max_guests"`
	OccupiedDays       []string  `json:"occupied_days"`
}

func FromVenueAvailability(view *queries.VenueAvailabilityView) *VenueAvailabilityResponse {
	return &VenueAvailabilityResponse{
		VenueID:            view.VenueID,
		Name:               view.Name,
		PricePerNightCents: view.PricePerNightCents,
		MaxGuests:          view.MaxGuests,
		OccupiedDays:       view.OccupiedDays,
	}
}

type CandidateCheckResponse struct {
	Result        string `json:"result"`
	Message       string `json:"message,omitempty"`
	Nights        int    `json:"nights"`
	TotalCents    int64  `json:"total_cents"`
	ClampedGuests int    `json:"clamped_guests"`
}

func FromCandidateCheck(view *queries.CandidateCheckView) *CandidateCheckResponse {
	return &CandidateCheckResponse{
		Result:        string(view.Result),
		Message:       view.Message,
		Nights:        view.Nights,
		TotalCents:    view.TotalCents,
		ClampedGuests: view.ClampedGuests,
	}
}
