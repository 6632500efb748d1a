package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"barangay-reservation/internal/infra/gateway"
	"barangay-reservation/internal/pkg/config"
	"barangay-reservation/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

var AMQPModule = fx.Module("amqp",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher dials the broker when AMQP_URL is set and falls back to
// a no-op publisher otherwise.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.EventPublisher, error) {
	if cfg.AMQP.URL == "" {
		logger.Info("AMQP_URL not set, reservation events will not be published")
		return gateway.NoopEventPublisher{}, nil
	}

	conn, err := amqp.Dial(cfg.AMQP.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to amqp broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open amqp channel: %w", err)
	}
	publisher, err := gateway.NewAMQPEventPublisher(ch, cfg.AMQP.Exchange)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if err := publisher.Close(); err != nil {
				logger.Warn("failed to close amqp channel", "error", err)
			}
			return conn.Close()
		},
	})

	return publisher, nil
}
