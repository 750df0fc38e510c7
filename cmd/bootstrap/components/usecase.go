package components

import (
	"log/slog"

	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/config"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewAvailabilityQueries,
		NewBookingCommands,
	),
)

func NewAvailabilityQueries(store queries.VenueReadStore, clk clock.Clock, cfg config.Config) queries.AvailabilityQueries {
	return queries.NewAvailabilityQueries(store, clk, cfg.Booking.AvailabilityCacheTTL)
}

func NewBookingCommands(
	availabilityQueries queries.AvailabilityQueries,
	gateway commands.ReservationGateway,
	cfg config.Config,
	logger *slog.Logger,
) commands.BookingCommands {
	return commands.NewBookingCommands(availabilityQueries, gateway, cfg.Booking, logger)
}
