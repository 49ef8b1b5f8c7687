package notify

import (
	"context"
	"log/slog"

	"turfbook/internal/usecase/commands"
)

// LogNotifier stands in when no broker is configured: events land in the
// structured log instead of a queue.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, event string, payload map[string]any) {
	args := make([]any, 0, len(payload)*2+2)
	args = append(args, "event", event)
	for k, v := range payload {
		args = append(args, k, v)
	}
	n.logger.Info("notification event", args...)
}

var _ commands.Notifier = (*LogNotifier)(nil)
