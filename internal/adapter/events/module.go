package events

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/plateful/takeaway/internal/config"
)

// Module provides the order event publisher. Without an AMQP address
// the noop implementation is wired instead.
var Module = fx.Options(
	fx.Provide(newPublisher),
	fx.Invoke(registerLifecycle),
)

type publisherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newPublisher(p publisherParams) (Publisher, error) {
	if p.Config.AMQPAddress == "" {
		return NoopPublisher{}, nil
	}
	return NewAMQPPublisher(p.Config.AMQPAddress, p.Config.EventsExchange, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, publisher Publisher) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close()
		},
	})
}
