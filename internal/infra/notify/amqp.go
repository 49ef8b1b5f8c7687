package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"turfbook/internal/pkg/config"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/commands"
)

// AMQPNotifier publishes state-transition events to a topic exchange, one
// routing key per event name. Delivery is best effort: a failed publish is
// logged and dropped, never surfaced to the commit path.
type AMQPNotifier struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *slog.Logger
}

func NewAMQPNotifier(cfg config.AMQPConfig, logger *slog.Logger) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect to AMQP broker")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errs.Wrap(err, "failed to open AMQP channel")
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, errs.Wrap(err, "failed to declare AMQP exchange")
	}

	return &AMQPNotifier{
		conn:     conn,
		channel:  ch,
		exchange: cfg.Exchange,
		logger:   logger,
	}, nil
}

func (n *AMQPNotifier) Notify(ctx context.Context, event string, payload map[string]any) {
	body, err := json.Marshal(payload)
	if err != nil {
		n.logger.Error("event payload marshal failed", "event", event, "error", err.Error())
		return
	}

	err = n.channel.PublishWithContext(ctx, n.exchange, event, false, false, amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   time.Now(),
		Body:        body,
	})
	if err != nil {
		n.logger.Error("event publish failed", "event", event, "error", err.Error())
	}
}

func (n *AMQPNotifier) Close() {
	if err := n.channel.Close(); err != nil {
		n.logger.Warn("AMQP channel close failed", "error", err.Error())
	}
	if err := n.conn.Close(); err != nil {
		n.logger.Warn("AMQP connection close failed", "error", err.Error())
	}
}

var _ commands.Notifier = (*AMQPNotifier)(nil)
