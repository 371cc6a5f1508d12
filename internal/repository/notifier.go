package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	ContentChangedChannel = "content_library_changed"
	ProfileChangedChannel = "user_profiles_changed"
)

const maxListenBackoff = 30 * time.Second

// Notifier delivers postgres NOTIFY payloads. It carries no deltas, the
// payload is only a hint of what to fetch again.
type Notifier struct {
	pool *pgxpool.Pool
}

func NewNotifier(pool *pgxpool.Pool) *Notifier {
	return &Notifier{
		pool: pool,
	}
}

// Subscribe holds a pooled connection in LISTEN mode and calls fn for every
// notification on channel. A lost connection is re-acquired with backoff;
// notifications sent while it was down are gone, so resync (if not nil) runs
// after every reconnect. The returned func stops listening and waits for the
// listener goroutine to exit.
func (n *Notifier) Subscribe(ctx context.Context, channel string, fn func(payload string), resync func()) (func(), error) {
	conn, err := n.listen(ctx, channel)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		logger := slog.Default().With(slog.String("channel", channel))
		for {
			err := n.wait(ctx, conn, fn)
			conn.Release()
			if ctx.Err() != nil {
				return
			}
			logger.Error("listen connection lost", slog.String("error", err.Error()))
			if conn, err = n.relisten(ctx, channel, logger); err != nil {
				return
			}
			logger.Info("listen connection restored")
			if resync != nil {
				resync()
			}
		}
	}()
	return func() {
		cancel()
		<-done
	}, nil
}

func (n *Notifier) listen(ctx context.Context, channel string) (*pgxpool.Conn, error) {
	conn, err := n.pool.Acquire(ctx)
	if err != nil {
		return nil, errors.New("acquiring listen connection error: " + err.Error())
	}
	if _, err = conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		conn.Release()
		return nil, errors.New("listen error: " + err.Error())
	}
	return conn, nil
}

func (n *Notifier) wait(ctx context.Context, conn *pgxpool.Conn, fn func(payload string)) error {
	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		fn(notification.Payload)
	}
}

// relisten retries until LISTEN succeeds again or ctx is done.
func (n *Notifier) relisten(ctx context.Context, channel string, logger *slog.Logger) (*pgxpool.Conn, error) {
	b := backoff.NewExponentialBackOff()
	b.MaxInterval = maxListenBackoff
	b.MaxElapsedTime = 0
	var conn *pgxpool.Conn
	err := backoff.RetryNotify(func() error {
		var err error
		conn, err = n.listen(ctx, channel)
		return err
	}, backoff.WithContext(b, ctx), func(err error, next time.Duration) {
		logger.Warn("relisten failed", slog.String("error", err.Error()), slog.Duration("retry_in", next))
	})
	if err != nil {
		return nil, err
	}
	return conn, nil
}
