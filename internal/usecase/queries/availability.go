package queries

import (
	"context"
	"sync"
	"time"

	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/booking"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type VenueAvailabilityView struct {
	VenueID            uuid.UUID `json:"venue_id"`
	Name               string    `json:"name"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	MaxGuests          int       `json:"max_guests"`
	OccupiedDays       []string  `json:"occupied_days"`
}

type CandidateCheckView struct {
	Result        booking.ValidationResult `json:"result"`
	Message       string                   `json:"message,omitempty"`
	Nights        int                      `json:"nights"`
	TotalCents    int64                    `json:"total_cents"`
	ClampedGuests int                      `json:"clamped_guests"`
}

type VenueReadStore interface {
	FindVenue(ctx context.Context, id uuid.UUID) (*shared.VenueSnapshot, error)
	ListReservations(ctx context.Context, venueID uuid.UUID) ([]availability.Reservation, error)
}

type AvailabilityQueries interface {
	VenueAvailability(ctx context.Context, venueID uuid.UUID) (*VenueAvailabilityView, error)
	CheckCandidate(ctx context.Context, venueID uuid.UUID, candidate booking.CandidateRange) (*CandidateCheckView, error)
	Snapshot(ctx context.Context, venueID uuid.UUID) (*shared.VenueSnapshot, availability.OccupiedDaySet, error)
	InvalidateVenue(venueID uuid.UUID)
}

type cachedVenue struct {
	venue     *shared.VenueSnapshot
	occupied  availability.OccupiedDaySet
	fetchedAt time.Time
}

type availabilityQueriesImpl struct {
	store VenueReadStore
	clock clock.Clock
	ttl   time.Duration

	mu    sync.Mutex
	cache map[uuid.UUID]cachedVenue
}

func NewAvailabilityQueries(store VenueReadStore, clk clock.Clock, ttl time.Duration) AvailabilityQueries {
	return &availabilityQueriesImpl{
		store: store,
		clock: clk,
		ttl:   ttl,
		cache: make(map[uuid.UUID]cachedVenue),
	}
}

// Snapshot returns the venue detail and its occupied-day set, both taken at
// the same fetch. The set is a stale-tolerant UX pre-filter; the reservation
// service re-checks conflicts authoritatively at creation time.
func (q *availabilityQueriesImpl) Snapshot(ctx context.Context, venueID uuid.UUID) (*shared.VenueSnapshot, availability.OccupiedDaySet, error) {
	q.mu.Lock()
	cached, ok := q.cache[venueID]
	q.mu.Unlock()
	if ok && q.clock.Now().Sub(cached.fetchedAt) < q.ttl {
		return cached.venue, cached.occupied, nil
	}

	venue, err := q.store.FindVenue(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, availability.OccupiedDaySet{}, errs.Mark(err, errs.ErrVenueNotFound)
		}
		return nil, availability.OccupiedDaySet{}, errs.Mark(err, errs.ErrGatewayUnavailable)
	}

	reservations, err := q.store.ListReservations(ctx, venueID)
	if err != nil {
		return nil, availability.OccupiedDaySet{}, errs.Mark(err, errs.ErrGatewayUnavailable)
	}

	occupied, err := availability.Build(reservations)
	if err != nil {
		return nil, availability.OccupiedDaySet{}, errs.Wrap(err, "failed to build occupancy index")
	}

	q.mu.Lock()
	q.cache[venueID] = cachedVenue{venue: venue, occupied: occupied, fetchedAt: q.clock.Now()}
	q.mu.Unlock()

	return venue, occupied, nil
}

func (q *availabilityQueriesImpl) VenueAvailability(ctx context.Context, venueID uuid.UUID) (*VenueAvailabilityView, error) {
	venue, occupied, err := q.Snapshot(ctx, venueID)
	if err != nil {
		return nil, err
	}

	days := occupied.Days()
	occupiedDays := make([]string, 0, len(days))
	for _, d := range days {
		occupiedDays = append(occupiedDays, d.String())
	}

	return &VenueAvailabilityView{
		VenueID:            venue.ID,
		Name:               venue.Name,
		PricePerNightCents: venue.PricePerNightCents,
		MaxGuests:          venue.MaxGuests,
		OccupiedDays:       occupiedDays,
	}, nil
}

// CheckCandidate gates the "book now" action: result plus inline message,
// the derived quote, and the guest count the input layer should clamp to.
func (q *availabilityQueriesImpl) CheckCandidate(ctx context.Context, venueID uuid.UUID, candidate booking.CandidateRange) (*CandidateCheckView, error) {
	venue, occupied, err := q.Snapshot(ctx, venueID)
	if err != nil {
		return nil, err
	}

	result := booking.Validate(candidate, occupied, venue.MaxGuests)
	price := booking.NewMoney(venue.PricePerNightCents)

	return &CandidateCheckView{
		Result:        result,
		Message:       result.Message(),
		Nights:        candidate.Nights(),
		TotalCents:    candidate.TotalCost(price).Cents(),
		ClampedGuests: booking.ClampGuests(candidate.Guests, venue.MaxGuests),
	}, nil
}

// InvalidateVenue drops the cached snapshot so the next read refetches.
// Called after a confirmed booking.
func (q *availabilityQueriesImpl) InvalidateVenue(venueID uuid.UUID) {
	q.mu.Lock()
	delete(q.cache, venueID)
	q.mu.Unlock()
}
