package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/stay"
	"venuebook/internal/pkg/config"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type StartBookingParams struct {
	VenueID  uuid.UUID
	DateFrom *stay.Day
	DateTo   *stay.Day
	Guests   int
}

type BookingCommands interface {
	Start(ctx context.Context, params StartBookingParams) (*BookingView, error)
	Get(id uuid.UUID) (*BookingView, error)
	Confirm(id uuid.UUID) (*BookingView, error)
	Back(id uuid.UUID) (*BookingView, error)
	SelectPaymentMethod(id uuid.UUID, method booking.PaymentMethod) (*BookingView, error)
	Pay(ctx context.Context, id uuid.UUID) (*BookingView, error)
	Cancel(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

// bookingCommandsImpl keeps one workflow per in-flight booking attempt.
// Sessions are single-owner: the registry lock only protects the map, each
// workflow serializes its own transitions.
type bookingCommandsImpl struct {
	availability queries.AvailabilityQueries
	gateway      ReservationGateway
	cfg          config.BookingConfig
	logger       *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*Workflow
}

func NewBookingCommands(
	availabilityQueries queries.AvailabilityQueries,
	gateway ReservationGateway,
	cfg config.BookingConfig,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		availability: availabilityQueries,
		gateway:      gateway,
		cfg:          cfg,
		logger:       logger,
		sessions:     make(map[uuid.UUID]*Workflow),
	}
}

// Start fetches the venue occupancy snapshot, normalizes the guest count and
// opens a fresh workflow in Review. A previous aborted attempt leaves nothing
// behind: every start builds new state with the default payment method.
func (c *bookingCommandsImpl) Start(ctx context.Context, params StartBookingParams) (*BookingView, error) {
	venue, occupied, err := c.availability.Snapshot(ctx, params.VenueID)
	if err != nil {
		return nil, err
	}

	candidate := booking.CandidateRange{
		DateFrom: params.DateFrom,
		DateTo:   params.DateTo,
		Guests:   booking.ClampGuests(params.Guests, venue.MaxGuests),
	}

	venueID := venue.ID
	callbacks := Callbacks{
		OnSuccess: func() {
			c.availability.InvalidateVenue(venueID)
		},
	}

	workflow, err := NewWorkflow(*venue, candidate, occupied, c.gateway, c.cfg.SubmitTimeout, callbacks, c.logger)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.sessions[workflow.ID()] = workflow
	c.mu.Unlock()

	return workflow.View(), nil
}

func (c *bookingCommandsImpl) Get(id uuid.UUID) (*BookingView, error) {
	workflow, err := c.find(id)
	if err != nil {
		return nil, err
	}
	return workflow.View(), nil
}

func (c *bookingCommandsImpl) Confirm(id uuid.UUID) (*BookingView, error) {
	workflow, err := c.find(id)
	if err != nil {
		return nil, err
	}
	if err := workflow.Confirm(); err != nil {
		return nil, err
	}
	return workflow.View(), nil
}

func (c *bookingCommandsImpl) Back(id uuid.UUID) (*BookingView, error) {
	workflow, err := c.find(id)
	if err != nil {
		return nil, err
	}
	if err := workflow.Back(); err != nil {
		return nil, err
	}
	return workflow.View(), nil
}

func (c *bookingCommandsImpl) SelectPaymentMethod(id uuid.UUID, method booking.PaymentMethod) (*BookingView, error) {
	workflow, err := c.find(id)
	if err != nil {
		return nil, err
	}
	if err := workflow.SelectPaymentMethod(method); err != nil {
		return nil, err
	}
	return workflow.View(), nil
}

func (c *bookingCommandsImpl) Pay(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	workflow, err := c.find(id)
	if err != nil {
		return nil, err
	}
	if err := workflow.Pay(ctx); err != nil {
		// A failed submission still has a terminal view worth returning;
		// transition refusals do not.
		if errors.Is(err, errs.ErrSubmissionFailed) {
			return workflow.View(), err
		}
		return nil, err
	}
	return workflow.View(), nil
}

// Cancel closes the workflow. Terminal sessions are dropped from the
// registry; an active one aborts first.
func (c *bookingCommandsImpl) Cancel(_ context.Context, id uuid.UUID) (*BookingView, error) {
	workflow, err := c.find(id)
	if err != nil {
		return nil, err
	}
	if err := workflow.Cancel(); err != nil {
		return nil, err
	}

	view := workflow.View()
	c.mu.Lock()
	delete(c.sessions, id)
	c.mu.Unlock()
	return view, nil
}

func (c *bookingCommandsImpl) find(id uuid.UUID) (*Workflow, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	workflow, ok := c.sessions[id]
	if !ok {
		return nil, errs.ErrBookingNotFound
	}
	return workflow, nil
}
