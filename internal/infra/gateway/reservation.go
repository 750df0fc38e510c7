package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"venuebook/internal/domain/stay"
	"venuebook/internal/infra"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

type createReservationBody struct {
	VenueID  string `json:"venueId"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Guests   int    `json:"guests"`
}

type reservationBody struct {
	ID       uuid.UUID `json:"id"`
	VenueID  uuid.UUID `json:"venueId"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	Created  time.Time `json:"created"`
}

// CreateReservation submits a reservation exactly once. Calendar days go over
// the wire as ISO-8601 date-times at UTC midnight.
func (c *Client) CreateReservation(ctx context.Context, params shared.CreateReservationParams) (*shared.ReservationRecord, error) {
	body := createReservationBody{
		VenueID:  params.VenueID.String(),
		DateFrom: params.DateFrom.Time().Format(time.RFC3339),
		DateTo:   params.DateTo.Time().Format(time.RFC3339),
		Guests:   params.Guests,
	}
	headers := map[string]string{
		"Idempotency-Key": params.IdempotencyKey.String(),
	}

	status, respBody, err := c.do(ctx, http.MethodPost, "/bookings", body, headers)
	if err != nil {
		return nil, err
	}
	if status != http.StatusCreated && status != http.StatusOK {
		return nil, statusError(status, respBody)
	}

	var created reservationBody
	if err := json.Unmarshal(respBody, &created); err != nil {
		return nil, infra.WrapGatewayErr("unexpected reservation response shape", err, infra.KindTransport)
	}

	return &shared.ReservationRecord{
		ID:        created.ID,
		VenueID:   created.VenueID,
		DateFrom:  stay.NewDay(created.DateFrom),
		DateTo:    stay.NewDay(created.DateTo),
		Guests:    created.Guests,
		CreatedAt: created.Created,
	}, nil
}
