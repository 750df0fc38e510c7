package bootstrap

import (
	"log/slog"

	"venuebook/internal/infra/gateway"
	"venuebook/internal/pkg/config"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewGatewayClient,
			fx.As(new(commands.ReservationGateway)),
			fx.As(new(queries.VenueReadStore)),
		),
	),
)

func NewGatewayClient(cfg config.Config, logger *slog.Logger) *gateway.Client {
	return gateway.NewClient(cfg.Gateway, logger)
}
