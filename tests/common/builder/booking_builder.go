//go:build unit

package builder

import (
	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/stay"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

// CandidateBuilder assembles candidate ranges for validator and workflow
// tests. Defaults describe a clean two-night stay for two guests.
type CandidateBuilder struct {
	DateFrom *string
	DateTo   *string
	Guests   int
}

func NewCandidateBuilder() *CandidateBuilder {
	from := "2025-06-01"
	to := "2025-06-03"
	return &CandidateBuilder{
		DateFrom: &from,
		DateTo:   &to,
		Guests:   2,
	}
}

func (b *CandidateBuilder) WithDates(from, to string) *CandidateBuilder {
	b.DateFrom = &from
	b.DateTo = &to
	return b
}

func (b *CandidateBuilder) WithoutDateFrom() *CandidateBuilder {
	b.DateFrom = nil
	return b
}

func (b *CandidateBuilder) WithoutDateTo() *CandidateBuilder {
	b.DateTo = nil
	return b
}

func (b *CandidateBuilder) WithGuests(guests int) *CandidateBuilder {
	b.Guests = guests
	return b
}

func (b *CandidateBuilder) Build() booking.CandidateRange {
	candidate := booking.CandidateRange{Guests: b.Guests}
	if b.DateFrom != nil {
		d := MustDay(*b.DateFrom)
		candidate.DateFrom = &d
	}
	if b.DateTo != nil {
		d := MustDay(*b.DateTo)
		candidate.DateTo = &d
	}
	return candidate
}

// VenueBuilder assembles venue snapshots.
type VenueBuilder struct {
	ID                 uuid.UUID
	Name               string
	PricePerNightCents int64
	MaxGuests          int
}

func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		ID:                 uuid.New(),
		Name:               "Harbor Loft",
		PricePerNightCents: 12000,
		MaxGuests:          4,
	}
}

func (b *VenueBuilder) WithID(id uuid.UUID) *VenueBuilder {
	b.ID = id
	return b
}

func (b *VenueBuilder) WithMaxGuests(maxGuests int) *VenueBuilder {
	b.MaxGuests = maxGuests
	return b
}

func (b *VenueBuilder) WithPricePerNightCents(cents int64) *VenueBuilder {
	b.PricePerNightCents = cents
	return b
}

func (b *VenueBuilder) Build() shared.VenueSnapshot {
	return shared.VenueSnapshot{
		ID:                 b.ID,
		Name:               b.Name,
		PricePerNightCents: b.PricePerNightCents,
		MaxGuests:          b.MaxGuests,
	}
}

// ReservationBuilder assembles existing reservation records for availability
// tests.
type ReservationBuilder struct {
	ID       uuid.UUID
	VenueID  uuid.UUID
	DateFrom string
	DateTo   string
	Guests   int
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:       uuid.New(),
		VenueID:  uuid.New(),
		DateFrom: "2025-06-10",
		DateTo:   "2025-06-12",
		Guests:   2,
	}
}

func (b *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithVenueID(venueID uuid.UUID) *ReservationBuilder {
	b.VenueID = venueID
	return b
}

func (b *ReservationBuilder) WithDates(from, to string) *ReservationBuilder {
	b.DateFrom = from
	b.DateTo = to
	return b
}

func (b *ReservationBuilder) Build() availability.Reservation {
	return availability.Reservation{
		ID:       b.ID,
		VenueID:  b.VenueID,
		DateFrom: MustDay(b.DateFrom),
		DateTo:   MustDay(b.DateTo),
		Guests:   b.Guests,
	}
}

// MustDay parses a YYYY-MM-DD literal; panics on malformed test data.
func MustDay(s string) stay.Day {
	d, err := stay.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

// MustOccupied builds a day set from reservation spans given as date pairs.
func MustOccupied(venueID uuid.UUID, spans ...[2]string) availability.OccupiedDaySet {
	reservations := make([]availability.Reservation, 0, len(spans))
	for _, span := range spans {
		reservations = append(reservations, NewReservationBuilder().
			WithVenueID(venueID).
			WithDates(span[0], span[1]).
			Build())
	}
	occupied, err := availability.Build(reservations)
	if err != nil {
		panic(err)
	}
	return occupied
}
