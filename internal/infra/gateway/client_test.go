//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"venuebook/internal/infra"
	"venuebook/internal/infra/gateway"
	"venuebook/internal/pkg/config"
	"venuebook/internal/usecase/shared"
	"venuebook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*gateway.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.GatewayConfig{
		BaseURL: server.URL,
		APIKey:  "test-api-key",
		Timeout: 5 * time.Second,
	}
	return gateway.NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))), server
}

func createParams() shared.CreateReservationParams {
	return shared.CreateReservationParams{
		VenueID:        uuid.New(),
		DateFrom:       builder.MustDay("2025-06-01"),
		DateTo:         builder.MustDay("2025-06-03"),
		Guests:         2,
		IdempotencyKey: uuid.New(),
	}
}

func TestCreateReservation(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		params := createParams()
		reservationID := uuid.New()

		var gotIdempotencyKey, gotAuth string
		var gotBody map[string]any
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/bookings", r.URL.Path)
			gotIdempotencyKey = r.Header.Get("Idempotency-Key")
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			fmt.Fprintf(w, `{
				"id": %q,
				"venueId": %q,
				"dateFrom": "2025-06-01T00:00:00Z",
				"dateTo": "2025-06-03T00:00:00Z",
				"guests": 2,
				"created": "2025-05-20T10:30:00Z"
			}`, reservationID, params.VenueID)
		}))

		record, err := client.CreateReservation(context.Background(), params)
		require.NoError(t, err)

		assert.Equal(t, reservationID, record.ID)
		assert.Equal(t, params.VenueID, record.VenueID)
		assert.Equal(t, "2025-06-01", record.DateFrom.String())
		assert.Equal(t, "2025-06-03", record.DateTo.String())
		assert.Equal(t, 2, record.Guests)

		assert.Equal(t, params.IdempotencyKey.String(), gotIdempotencyKey)
		assert.Equal(t, "Bearer test-api-key", gotAuth)
		assert.Equal(t, params.VenueID.String(), gotBody["venueId"])
		assert.Equal(t, "2025-06-01T00:00:00Z", gotBody["dateFrom"])
		assert.Equal(t, "2025-06-03T00:00:00Z", gotBody["dateTo"])
	})

	t.Run("conflict surfaces remote message", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			fmt.Fprint(w, `{"message": "dates no longer available"}`)
		}))

		_, err := client.CreateReservation(context.Background(), createParams())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
		assert.Equal(t, "dates no longer available", infra.GatewayMessage(err))
	})

	t.Run("enveloped error message", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			fmt.Fprint(w, `{"error": {"message": "guests must be positive"}}`)
		}))

		_, err := client.CreateReservation(context.Background(), createParams())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindInvalidPayload))
		assert.Equal(t, "guests must be positive", infra.GatewayMessage(err))
	})

	t.Run("server error without body keeps fallback message", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := client.CreateReservation(context.Background(), createParams())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindRemoteFailure))
		assert.NotEmpty(t, infra.GatewayMessage(err))
	})

	t.Run("unreachable service is a transport error", func(t *testing.T) {
		client, server := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		_, err := client.CreateReservation(context.Background(), createParams())
		require.Error(t, err)
		assert.True(t, infra.IsTransport(err))
	})

	t.Run("malformed response body is a transport error", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"id": not-json`)
		}))

		_, err := client.CreateReservation(context.Background(), createParams())
		require.Error(t, err)
		assert.True(t, infra.IsTransport(err))
	})
}

func TestFindVenue(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		venueID := uuid.New()
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/venues/"+venueID.String(), r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"id": %q, "name": "Harbor Loft", "pricePerNight": 12000, "maxGuests": 4}`, venueID)
		}))

		venue, err := client.FindVenue(context.Background(), venueID)
		require.NoError(t, err)

		assert.Equal(t, venueID, venue.ID)
		assert.Equal(t, "Harbor Loft", venue.Name)
		assert.Equal(t, int64(12000), venue.PricePerNightCents)
		assert.Equal(t, 4, venue.MaxGuests)
	})

	t.Run("missing venue", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message": "venue not found"}`)
		}))

		_, err := client.FindVenue(context.Background(), uuid.New())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestListReservations(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		venueID := uuid.New()
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/venues/"+venueID.String()+"/reservations", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `[{
				"id": %q,
				"venueId": %q,
				"dateFrom": "2025-06-10T00:00:00Z",
				"dateTo": "2025-06-12T00:00:00Z",
				"guests": 3,
				"created": "2025-05-01T09:00:00Z"
			}]`, uuid.New(), venueID)
		}))

		reservations, err := client.ListReservations(context.Background(), venueID)
		require.NoError(t, err)

		require.Len(t, reservations, 1)
		assert.Equal(t, venueID, reservations[0].VenueID)
		assert.Equal(t, "2025-06-10", reservations[0].DateFrom.String())
		assert.Equal(t, "2025-06-12", reservations[0].DateTo.String())
		assert.Equal(t, 3, reservations[0].Guests)
	})

	t.Run("empty list", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `[]`)
		}))

		reservations, err := client.ListReservations(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.Empty(t, reservations)
	})

	t.Run("unauthorized", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))

		_, err := client.ListReservations(context.Background(), uuid.New())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUnauthorized))
	})
}
