package slotlock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"turfbook/internal/pkg/config"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/commands"
)

// releaseScript deletes the lease only if it still holds our token, so an
// expired lease taken over by another holder is never released from here.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`

var releaseLua = redis.NewScript(releaseScript)

// RedisSlotLocker serializes allocation work per (turf, date) with a Redis
// lease. The TTL bounds how long a crashed holder can block the slot.
type RedisSlotLocker struct {
	client *redis.Client
	cfg    config.BookingConfig
	logger *slog.Logger
}

func NewRedisSlotLocker(client *redis.Client, cfg config.BookingConfig, logger *slog.Logger) *RedisSlotLocker {
	return &RedisSlotLocker{client: client, cfg: cfg, logger: logger}
}

func lockKey(turfID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("slotlock:%s:%s", turfID, date.Format("2006-01-02"))
}

func (l *RedisSlotLocker) WithLock(ctx context.Context, turfID uuid.UUID, date time.Time, fn func(ctx context.Context) error) error {
	key := lockKey(turfID, date)
	token := uuid.NewString()
	deadline := time.Now().Add(l.cfg.LockWait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.cfg.LockTTL).Result()
		if err != nil {
			return errs.Mark(errs.Wrap(err, "failed to acquire slot lease"), errs.ErrStorageFailure)
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return errs.ErrResourceBusy
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.cfg.LockRetryStep):
		}
	}

	defer func() {
		// Release on a fresh context: the caller's may already be done.
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := releaseLua.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil && err != redis.Nil {
			l.logger.Warn("slot lease release failed", "key", key, "error", err.Error())
		}
	}()

	return fn(ctx)
}

var _ commands.SlotLocker = (*RedisSlotLocker)(nil)
