package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"turfbook/internal/infra/notify"
	"turfbook/internal/pkg/config"
	"turfbook/internal/usecase/commands"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
	),
)

// NewNotifier wires the AMQP publisher when a broker URL is configured and
// falls back to log-only delivery otherwise.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.Notifier, error) {
	if cfg.AMQP.URL == "" {
		logger.Info("no AMQP broker configured, events will be logged")
		return notify.NewLogNotifier(logger), nil
	}

	notifier, err := notify.NewAMQPNotifier(cfg.AMQP, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			notifier.Close()
			return nil
		},
	})

	return notifier, nil
}
