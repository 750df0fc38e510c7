//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/booking"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/shared"
	"venuebook/tests/common/builder"
	commandsmock "venuebook/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const submitTimeout = 5 * time.Second

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func emptyOccupied() availability.OccupiedDaySet {
	occupied, _ := availability.Build(nil)
	return occupied
}

func newWorkflow(t *testing.T, gateway commands.ReservationGateway, callbacks commands.Callbacks) *commands.Workflow {
	t.Helper()
	workflow, err := commands.NewWorkflow(
		builder.NewVenueBuilder().Build(),
		builder.NewCandidateBuilder().Build(),
		emptyOccupied(),
		gateway,
		submitTimeout,
		callbacks,
		testLogger(),
	)
	require.NoError(t, err)
	return workflow
}

func recordFor(params shared.CreateReservationParams) *shared.ReservationRecord {
	return &shared.ReservationRecord{
		ID:        uuid.New(),
		VenueID:   params.VenueID,
		DateFrom:  params.DateFrom,
		DateTo:    params.DateTo,
		Guests:    params.Guests,
		CreatedAt: time.Now().UTC(),
	}
}

func TestWorkflowHappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := commandsmock.NewMockReservationGateway(ctrl)

	var successCount, abortCount int
	workflow := newWorkflow(t, gateway, commands.Callbacks{
		OnSuccess: func() { successCount++ },
		OnAbort:   func(commands.AbortReason, string) { abortCount++ },
	})

	view := workflow.View()
	assert.Equal(t, commands.StateReview, view.State)
	assert.Equal(t, booking.DefaultPaymentMethod(), view.PaymentMethod)
	assert.Equal(t, 2, view.Nights)
	assert.Equal(t, int64(24000), view.TotalCents)

	require.NoError(t, workflow.Confirm())
	assert.Equal(t, commands.StatePaymentSelection, workflow.View().State)

	require.NoError(t, workflow.SelectPaymentMethod(booking.PaymentGooglePay))
	assert.Equal(t, commands.StatePaymentSelection, workflow.View().State)

	var sent shared.CreateReservationParams
	gateway.EXPECT().
		CreateReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params shared.CreateReservationParams) (*shared.ReservationRecord, error) {
			sent = params
			return recordFor(params), nil
		}).
		Times(1)

	require.NoError(t, workflow.Pay(context.Background()))

	view = workflow.View()
	assert.Equal(t, commands.StateConfirmed, view.State)
	assert.NotEmpty(t, view.ConfirmationToken)
	require.NotNil(t, view.ReservationID)
	assert.Equal(t, booking.PaymentGooglePay, view.PaymentMethod)
	assert.NotEqual(t, uuid.Nil, sent.IdempotencyKey)
	assert.Equal(t, view.VenueID, sent.VenueID)

	assert.Equal(t, 1, successCount)
	assert.Equal(t, 0, abortCount)

	// Terminal: paying again never reaches the gateway.
	require.ErrorIs(t, workflow.Pay(context.Background()), errs.ErrInvalidTransition)
	assert.Equal(t, 1, successCount)
}

func TestNewWorkflowRejectsInvalidCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := commandsmock.NewMockReservationGateway(ctrl)

	venue := builder.NewVenueBuilder().Build()
	occupied := builder.MustOccupied(venue.ID, [2]string{"2025-06-01", "2025-06-05"})
	candidate := builder.NewCandidateBuilder().WithDates("2025-06-01", "2025-06-04").Build()

	_, err := commands.NewWorkflow(venue, candidate, occupied, gateway, submitTimeout, commands.Callbacks{}, testLogger())
	require.ErrorIs(t, err, errs.ErrCandidateRejected)

	var validationErr *commands.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, booking.ResultDateConflict, validationErr.Result)
}

func TestWorkflowPayFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := commandsmock.NewMockReservationGateway(ctrl)

	var gotReason commands.AbortReason
	var gotMessage string
	workflow := newWorkflow(t, gateway, commands.Callbacks{
		OnAbort: func(reason commands.AbortReason, message string) {
			gotReason = reason
			gotMessage = message
		},
	})
	require.NoError(t, workflow.Confirm())

	gateway.EXPECT().
		CreateReservation(gomock.Any(), gomock.Any()).
		Return(nil, infra.NewGatewayErr("dates no longer available", infra.KindConflict)).
		Times(1)

	err := workflow.Pay(context.Background())
	require.ErrorIs(t, err, errs.ErrSubmissionFailed)

	view := workflow.View()
	assert.Equal(t, commands.StateAborted, view.State)
	assert.Equal(t, commands.AbortSubmissionFailed, view.AbortReason)
	assert.Equal(t, "dates no longer available", view.FailureMessage)
	assert.Equal(t, commands.AbortSubmissionFailed, gotReason)
	assert.Equal(t, "dates no longer available", gotMessage)

	// Aborted is terminal, no second attempt on this workflow.
	require.ErrorIs(t, workflow.Pay(context.Background()), errs.ErrInvalidTransition)
}

func TestWorkflowPayTimeoutAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := commandsmock.NewMockReservationGateway(ctrl)

	var gotReason commands.AbortReason
	workflow, err := commands.NewWorkflow(
		builder.NewVenueBuilder().Build(),
		builder.NewCandidateBuilder().Build(),
		emptyOccupied(),
		gateway,
		10*time.Millisecond,
		commands.Callbacks{OnAbort: func(reason commands.AbortReason, _ string) { gotReason = reason }},
		testLogger(),
	)
	require.NoError(t, err)
	require.NoError(t, workflow.Confirm())

	gateway.EXPECT().
		CreateReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ shared.CreateReservationParams) (*shared.ReservationRecord, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).
		Times(1)

	err = workflow.Pay(context.Background())
	require.ErrorIs(t, err, errs.ErrSubmissionFailed)

	view := workflow.View()
	assert.Equal(t, commands.StateAborted, view.State)
	assert.Equal(t, commands.AbortTimeout, view.AbortReason)
	assert.Equal(t, commands.AbortTimeout, gotReason)
}

func TestWorkflowCancel(t *testing.T) {
	t.Run("from review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := commandsmock.NewMockReservationGateway(ctrl)

		var gotReason commands.AbortReason
		workflow := newWorkflow(t, gateway, commands.Callbacks{
			OnAbort: func(reason commands.AbortReason, _ string) { gotReason = reason },
		})

		require.NoError(t, workflow.Cancel())
		assert.Equal(t, commands.StateAborted, workflow.View().State)
		assert.Equal(t, commands.AbortUserCancelled, gotReason)
	})

	t.Run("from payment selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := commandsmock.NewMockReservationGateway(ctrl)

		workflow := newWorkflow(t, gateway, commands.Callbacks{})
		require.NoError(t, workflow.Confirm())

		require.NoError(t, workflow.Cancel())
		assert.Equal(t, commands.StateAborted, workflow.View().State)
	})

	t.Run("terminal cancel is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := commandsmock.NewMockReservationGateway(ctrl)

		workflow := newWorkflow(t, gateway, commands.Callbacks{})
		require.NoError(t, workflow.Confirm())
		gateway.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params shared.CreateReservationParams) (*shared.ReservationRecord, error) {
				return recordFor(params), nil
			})
		require.NoError(t, workflow.Pay(context.Background()))

		require.NoError(t, workflow.Cancel())
		assert.Equal(t, commands.StateConfirmed, workflow.View().State)
	})
}

func TestWorkflowInvalidTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := commandsmock.NewMockReservationGateway(ctrl)
	workflow := newWorkflow(t, gateway, commands.Callbacks{})

	// All of these are refused in Review.
	require.ErrorIs(t, workflow.Back(), errs.ErrInvalidTransition)
	require.ErrorIs(t, workflow.SelectPaymentMethod(booking.PaymentApplePay), errs.ErrInvalidTransition)
	require.ErrorIs(t, workflow.Pay(context.Background()), errs.ErrInvalidTransition)

	require.NoError(t, workflow.Confirm())
	require.ErrorIs(t, workflow.Confirm(), errs.ErrInvalidTransition)
	require.ErrorIs(t, workflow.SelectPaymentMethod(booking.PaymentMethod("crypto")), errs.ErrInvalidPaymentMethod)

	// Back keeps the draft intact.
	require.NoError(t, workflow.Back())
	view := workflow.View()
	assert.Equal(t, commands.StateReview, view.State)
	assert.Equal(t, "2025-06-01", view.DateFrom)
	assert.Equal(t, "2025-06-03", view.DateTo)
}
