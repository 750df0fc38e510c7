package shared

import (
	"time"

	"venuebook/internal/domain/stay"

	"github.com/google/uuid"
)

// VenueSnapshot is the slice of venue detail the booking subsystem needs:
// identity, nightly price, and guest capacity. Everything else on the venue
// page stays with the surrounding UI layer.
type VenueSnapshot struct {
	ID                 uuid.UUID
	Name               string
	PricePerNightCents int64
	MaxGuests          int
}

// ReservationRecord is the gateway's view of a durably created reservation.
type ReservationRecord struct {
	ID        uuid.UUID
	VenueID   uuid.UUID
	DateFrom  stay.Day
	DateTo    stay.Day
	Guests    int
	CreatedAt time.Time
}
