package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/stay"
	"venuebook/internal/infra"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

type venueBody struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	PricePerNight int64     `json:"pricePerNight"`
	MaxGuests     int       `json:"maxGuests"`
}

// FindVenue fetches the venue detail slice the booking subsystem consumes.
func (c *Client) FindVenue(ctx context.Context, id uuid.UUID) (*shared.VenueSnapshot, error) {
	status, respBody, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/venues/%s", id), nil, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, statusError(status, respBody)
	}

	var v venueBody
	if err := json.Unmarshal(respBody, &v); err != nil {
		return nil, infra.WrapGatewayErr("unexpected venue response shape", err, infra.KindTransport)
	}

	return &shared.VenueSnapshot{
		ID:                 v.ID,
		Name:               v.Name,
		PricePerNightCents: v.PricePerNight,
		MaxGuests:          v.MaxGuests,
	}, nil
}

// ListReservations fetches the venue's existing reservations. The result is a
// point-in-time snapshot, not live-synchronized occupancy.
func (c *Client) ListReservations(ctx context.Context, venueID uuid.UUID) ([]availability.Reservation, error) {
	status, respBody, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/venues/%s/reservations", venueID), nil, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, statusError(status, respBody)
	}

	var rows []reservationBody
	if err := json.Unmarshal(respBody, &rows); err != nil {
		return nil, infra.WrapGatewayErr("unexpected reservation list shape", err, infra.KindTransport)
	}

	reservations := make([]availability.Reservation, 0, len(rows))
	for _, row := range rows {
		reservations = append(reservations, availability.Reservation{
			ID:       row.ID,
			VenueID:  row.VenueID,
			DateFrom: stay.NewDay(row.DateFrom),
			DateTo:   stay.NewDay(row.DateTo),
			Guests:   row.Guests,
		})
	}
	return reservations, nil
}
