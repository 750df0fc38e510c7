package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/booking"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/pkg/token"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

type State string

const (
	StateReview           State = "review"
	StatePaymentSelection State = "payment_selection"
	StateSubmitting       State = "submitting"
	StateConfirmed        State = "confirmed"
	StateAborted          State = "aborted"
)

func (s State) IsTerminal() bool {
	return s == StateConfirmed || s == StateAborted
}

type AbortReason string

const (
	AbortUserCancelled    AbortReason = "user_cancelled"
	AbortSubmissionFailed AbortReason = "submission_failed"
	AbortTimeout          AbortReason = "timeout"
)

type ReservationGateway interface {
	CreateReservation(ctx context.Context, params shared.CreateReservationParams) (*shared.ReservationRecord, error)
}

// Callbacks notify the owner of the workflow's terminal outcome. OnSuccess
// fires once on confirmation so the caller can refetch availability; OnAbort
// carries the reason so telemetry can tell a cancel from a failed submission.
type Callbacks struct {
	OnSuccess func()
	OnAbort   func(reason AbortReason, message string)
}

// ValidationError reports why a candidate range was refused workflow entry.
type ValidationError struct {
	Result booking.ValidationResult
}

func (e *ValidationError) Error() string {
	return "candidate range rejected: " + string(e.Result)
}

func (e *ValidationError) Is(target error) bool {
	return target == errs.ErrCandidateRejected
}

// Workflow drives one booking attempt through
// Review -> PaymentSelection -> Submitting -> Confirmed/Aborted.
// It owns its CandidateRange exclusively and makes at most one gateway call.
// Transitions are user-driven; the in-flight flag is the explicit guard that
// keeps Submitting a single suspension point even if a caller misbehaves.
type Workflow struct {
	mu sync.Mutex

	id        uuid.UUID
	venue     shared.VenueSnapshot
	candidate booking.CandidateRange
	payment   booking.PaymentMethod

	state          State
	inFlight       bool
	confirmation   string
	abortReason    AbortReason
	failureMessage string
	record         *shared.ReservationRecord

	gateway       ReservationGateway
	submitTimeout time.Duration
	callbacks     Callbacks
	logger        *slog.Logger
}

// NewWorkflow validates the candidate against the occupancy snapshot before
// any state exists: a rejected range never reaches Review.
func NewWorkflow(
	venue shared.VenueSnapshot,
	candidate booking.CandidateRange,
	occupied availability.OccupiedDaySet,
	gateway ReservationGateway,
	submitTimeout time.Duration,
	callbacks Callbacks,
	logger *slog.Logger,
) (*Workflow, error) {
	if result := booking.Validate(candidate, occupied, venue.MaxGuests); !result.IsOk() {
		return nil, &ValidationError{Result: result}
	}

	return &Workflow{
		id:            uuid.New(),
		venue:         venue,
		candidate:     candidate,
		payment:       booking.DefaultPaymentMethod(),
		state:         StateReview,
		gateway:       gateway,
		submitTimeout: submitTimeout,
		callbacks:     callbacks,
		logger:        logger,
	}, nil
}

func (w *Workflow) ID() uuid.UUID {
	return w.id
}

// Confirm moves Review to PaymentSelection.
func (w *Workflow) Confirm() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateReview {
		return errs.Mark(errs.Newf("confirm from %s", w.state), errs.ErrInvalidTransition)
	}
	w.state = StatePaymentSelection
	return nil
}

// Back returns from PaymentSelection to Review without losing the draft.
func (w *Workflow) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StatePaymentSelection {
		return errs.Mark(errs.Newf("back from %s", w.state), errs.ErrInvalidTransition)
	}
	w.state = StateReview
	return nil
}

// SelectPaymentMethod updates the held method; it never transitions state.
func (w *Workflow) SelectPaymentMethod(method booking.PaymentMethod) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StatePaymentSelection {
		return errs.Mark(errs.Newf("select payment from %s", w.state), errs.ErrInvalidTransition)
	}
	if !method.IsValid() {
		return errs.ErrInvalidPaymentMethod
	}
	w.payment = method
	return nil
}

// Cancel aborts from Review or PaymentSelection with no remote effect.
// Cancelling a terminal workflow is a no-op close; cancelling mid-submission
// is refused so the single outstanding call always resolves first.
func (w *Workflow) Cancel() error {
	w.mu.Lock()
	if w.state.IsTerminal() {
		w.mu.Unlock()
		return nil
	}
	if w.state == StateSubmitting || w.inFlight {
		w.mu.Unlock()
		return errs.ErrSubmissionInFlight
	}
	w.state = StateAborted
	w.abortReason = AbortUserCancelled
	cb := w.callbacks.OnAbort
	w.mu.Unlock()

	w.logger.Info("booking cancelled before submission", "workflow_id", w.id, "venue_id", w.venue.ID)
	if cb != nil {
		cb(AbortUserCancelled, "")
	}
	return nil
}

// Pay submits the reservation. Exactly one gateway call per workflow: the
// in-flight guard blocks re-entry, and any failure tears the attempt down to
// Aborted rather than returning to PaymentSelection. No automatic retries.
func (w *Workflow) Pay(ctx context.Context) error {
	w.mu.Lock()
	if w.state != StatePaymentSelection {
		w.mu.Unlock()
		return errs.Mark(errs.Newf("pay from %s", w.state), errs.ErrInvalidTransition)
	}
	if w.inFlight {
		w.mu.Unlock()
		return errs.ErrSubmissionInFlight
	}
	w.state = StateSubmitting
	w.inFlight = true
	params := shared.CreateReservationParams{
		VenueID:        w.venue.ID,
		DateFrom:       *w.candidate.DateFrom,
		DateTo:         *w.candidate.DateTo,
		Guests:         w.candidate.Guests,
		IdempotencyKey: uuid.New(),
	}
	w.mu.Unlock()

	submitCtx, cancel := context.WithTimeout(ctx, w.submitTimeout)
	defer cancel()

	record, err := w.gateway.CreateReservation(submitCtx, params)
	if err != nil {
		return w.abortSubmission(err)
	}
	return w.completeSubmission(record)
}

func (w *Workflow) abortSubmission(cause error) error {
	reason := AbortSubmissionFailed
	if errors.Is(cause, context.DeadlineExceeded) {
		reason = AbortTimeout
	}
	message := infra.GatewayMessage(cause)

	w.mu.Lock()
	w.inFlight = false
	w.state = StateAborted
	w.abortReason = reason
	w.failureMessage = message
	cb := w.callbacks.OnAbort
	w.mu.Unlock()

	// Transport failures are infrastructure signals, not business rejections;
	// log them apart even though both end in Aborted.
	if infra.IsTransport(cause) || reason == AbortTimeout {
		w.logger.Error("booking submission transport failure",
			"workflow_id", w.id, "venue_id", w.venue.ID, "reason", reason, "error", cause)
	} else {
		w.logger.Warn("booking submission rejected",
			"workflow_id", w.id, "venue_id", w.venue.ID, "message", message)
	}

	if cb != nil {
		cb(reason, message)
	}
	return errs.Mark(cause, errs.ErrSubmissionFailed)
}

func (w *Workflow) completeSubmission(record *shared.ReservationRecord) error {
	w.mu.Lock()
	w.inFlight = false
	w.state = StateConfirmed
	w.record = record
	w.confirmation = token.NewDisplayToken()
	cb := w.callbacks.OnSuccess
	w.mu.Unlock()

	w.logger.Info("booking confirmed",
		"workflow_id", w.id, "venue_id", w.venue.ID, "reservation_id", record.ID)
	if cb != nil {
		cb()
	}
	return nil
}

// BookingView is the read-side snapshot of one workflow.
type BookingView struct {
	ID                 uuid.UUID                `json:"id"`
	State              State                    `json:"state"`
	VenueID            uuid.UUID                `json:"venue_id"`
	VenueName          string                   `json:"venue_name"`
	DateFrom           string                   `json:"date_from"`
	DateTo             string                   `json:"date_to"`
	Guests             int                      `json:"guests"`
	Nights             int                      `json:"nights"`
	PricePerNightCents int64                    `json:"price_per_night_cents"`
	TotalCents         int64                    `json:"total_cents"`
	PaymentMethod      booking.PaymentMethod    `json:"payment_method"`
	ConfirmationToken  string                   `json:"confirmation_token,omitempty"`
	ReservationID      *uuid.UUID               `json:"reservation_id,omitempty"`
	AbortReason        AbortReason              `json:"abort_reason,omitempty"`
	FailureMessage     string                   `json:"failure_message,omitempty"`
}

func (w *Workflow) View() *BookingView {
	w.mu.Lock()
	defer w.mu.Unlock()

	view := &BookingView{
		ID:                 w.id,
		State:              w.state,
		VenueID:            w.venue.ID,
		VenueName:          w.venue.Name,
		Guests:             w.candidate.Guests,
		Nights:             w.candidate.Nights(),
		PricePerNightCents: w.venue.PricePerNightCents,
		TotalCents:         w.candidate.TotalCost(booking.NewMoney(w.venue.PricePerNightCents)).Cents(),
		PaymentMethod:      w.payment,
		ConfirmationToken:  w.confirmation,
		AbortReason:        w.abortReason,
		FailureMessage:     w.failureMessage,
	}
	if w.candidate.DateFrom != nil {
		view.DateFrom = w.candidate.DateFrom.String()
	}
	if w.candidate.DateTo != nil {
		view.DateTo = w.candidate.DateTo.String()
	}
	if w.record != nil {
		id := w.record.ID
		view.ReservationID = &id
	}
	return view
}
