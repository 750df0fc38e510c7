//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"venuebook/internal/domain/availability"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/queries"
	"venuebook/internal/usecase/shared"
	"venuebook/tests/common/builder"
	queriesmock "venuebook/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const cacheTTL = 30 * time.Second

type queryFixture struct {
	store *queriesmock.MockVenueReadStore
	clock *clock.FixedClock
	sut   queries.AvailabilityQueries
}

func newQueryFixture(t *testing.T) *queryFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockVenueReadStore(ctrl)
	clk := clock.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return &queryFixture{
		store: store,
		clock: clk,
		sut:   queries.NewAvailabilityQueries(store, clk, cacheTTL),
	}
}

func (f *queryFixture) expectFetch(venue shared.VenueSnapshot, reservations []availability.Reservation) {
	f.store.EXPECT().FindVenue(gomock.Any(), venue.ID).Return(&venue, nil)
	f.store.EXPECT().ListReservations(gomock.Any(), venue.ID).Return(reservations, nil)
}

func TestVenueAvailability(t *testing.T) {
	f := newQueryFixture(t)
	venue := builder.NewVenueBuilder().Build()
	reservations := []availability.Reservation{
		builder.NewReservationBuilder().
			WithVenueID(venue.ID).
			WithDates("2025-06-10", "2025-06-12").
			Build(),
	}
	f.expectFetch(venue, reservations)

	view, err := f.sut.VenueAvailability(context.Background(), venue.ID)
	require.NoError(t, err)

	assert.Equal(t, venue.ID, view.VenueID)
	assert.Equal(t, venue.Name, view.Name)
	assert.Equal(t, venue.MaxGuests, view.MaxGuests)
	assert.Empty(t, cmp.Diff([]string{"2025-06-10", "2025-06-11", "2025-06-12"}, view.OccupiedDays))
}

func TestSnapshotCaching(t *testing.T) {
	t.Run("second read within ttl hits cache", func(t *testing.T) {
		f := newQueryFixture(t)
		venue := builder.NewVenueBuilder().Build()
		f.expectFetch(venue, nil)

		_, _, err := f.sut.Snapshot(context.Background(), venue.ID)
		require.NoError(t, err)

		f.clock.Advance(cacheTTL - time.Second)
		_, _, err = f.sut.Snapshot(context.Background(), venue.ID)
		require.NoError(t, err)
	})

	t.Run("expired entry refetches", func(t *testing.T) {
		f := newQueryFixture(t)
		venue := builder.NewVenueBuilder().Build()
		f.expectFetch(venue, nil)
		f.expectFetch(venue, nil)

		_, _, err := f.sut.Snapshot(context.Background(), venue.ID)
		require.NoError(t, err)

		f.clock.Advance(cacheTTL + time.Second)
		_, _, err = f.sut.Snapshot(context.Background(), venue.ID)
		require.NoError(t, err)
	})

	t.Run("invalidate drops the cached venue", func(t *testing.T) {
		f := newQueryFixture(t)
		venue := builder.NewVenueBuilder().Build()
		f.expectFetch(venue, nil)
		f.expectFetch(venue, nil)

		_, _, err := f.sut.Snapshot(context.Background(), venue.ID)
		require.NoError(t, err)

		f.sut.InvalidateVenue(venue.ID)
		_, _, err = f.sut.Snapshot(context.Background(), venue.ID)
		require.NoError(t, err)
	})
}

func TestSnapshotErrorMapping(t *testing.T) {
	t.Run("missing venue", func(t *testing.T) {
		f := newQueryFixture(t)
		venueID := uuid.New()
		f.store.EXPECT().FindVenue(gomock.Any(), venueID).
			Return(nil, infra.NewGatewayErr("venue not found", infra.KindNotFound))

		_, _, err := f.sut.Snapshot(context.Background(), venueID)
		require.ErrorIs(t, err, errs.ErrVenueNotFound)
	})

	t.Run("remote failure", func(t *testing.T) {
		f := newQueryFixture(t)
		venueID := uuid.New()
		f.store.EXPECT().FindVenue(gomock.Any(), venueID).
			Return(nil, infra.NewGatewayErr("remote request failed", infra.KindRemoteFailure))

		_, _, err := f.sut.Snapshot(context.Background(), venueID)
		require.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})

	t.Run("reservation listing failure", func(t *testing.T) {
		f := newQueryFixture(t)
		venue := builder.NewVenueBuilder().Build()
		f.store.EXPECT().FindVenue(gomock.Any(), venue.ID).Return(&venue, nil)
		f.store.EXPECT().ListReservations(gomock.Any(), venue.ID).
			Return(nil, infra.NewGatewayErr("connection refused", infra.KindTransport))

		_, _, err := f.sut.Snapshot(context.Background(), venue.ID)
		require.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})
}

func TestCheckCandidate(t *testing.T) {
	f := newQueryFixture(t)
	venue := builder.NewVenueBuilder().Build() // 12000 cents, 4 guests max
	reservations := []availability.Reservation{
		builder.NewReservationBuilder().
			WithVenueID(venue.ID).
			WithDates("2025-06-10", "2025-06-12").
			Build(),
	}
	f.expectFetch(venue, reservations)

	t.Run("available range quotes the stay", func(t *testing.T) {
		candidate := builder.NewCandidateBuilder().WithDates("2025-06-01", "2025-06-04").Build()

		view, err := f.sut.CheckCandidate(context.Background(), venue.ID, candidate)
		require.NoError(t, err)

		assert.True(t, view.Result.IsOk())
		assert.Empty(t, view.Message)
		assert.Equal(t, 3, view.Nights)
		assert.Equal(t, int64(36000), view.TotalCents)
		assert.Equal(t, 2, view.ClampedGuests)
	})

	t.Run("conflicting range carries the inline message", func(t *testing.T) {
		candidate := builder.NewCandidateBuilder().WithDates("2025-06-09", "2025-06-13").Build()

		view, err := f.sut.CheckCandidate(context.Background(), venue.ID, candidate)
		require.NoError(t, err)

		assert.False(t, view.Result.IsOk())
		assert.NotEmpty(t, view.Message)
	})

	t.Run("oversized party reports the clamp target", func(t *testing.T) {
		candidate := builder.NewCandidateBuilder().WithGuests(99).Build()

		view, err := f.sut.CheckCandidate(context.Background(), venue.ID, candidate)
		require.NoError(t, err)

		assert.Equal(t, venue.MaxGuests, view.ClampedGuests)
	})
}
