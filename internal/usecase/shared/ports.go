package shared

import (
	"venuebook/internal/domain/stay"

	"github.com/google/uuid"
)

// CreateReservationParams is the payload handed to the reservation gateway.
// The idempotency key is minted per submission attempt so the server can
// collapse duplicate retries; it is distinct from the display token.
type CreateReservationParams struct {
	VenueID        uuid.UUID
	DateFrom       stay.Day
	DateTo         stay.Day
	Guests         int
	IdempotencyKey uuid.UUID
}
