package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
)

// Listener holds a dedicated connection subscribed to the orders NOTIFY
// channel. LISTEN needs its own session, so it does not come from the
// pool.
type Listener struct {
	conn   *pgx.Conn
	logger *slog.Logger
}

// NewListener connects and subscribes to the orders channel.
func NewListener(ctx context.Context, dsn string, logger *slog.Logger) (*Listener, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect listener: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+OrdersChannel); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("listen %s: %w", OrdersChannel, err)
	}
	return &Listener{conn: conn, logger: logger}, nil
}

// Wait blocks until the next change notification or context
// cancellation. The payload is ignored: every change triggers a full
// re-fetch downstream.
func (l *Listener) Wait(ctx context.Context) error {
	_, err := l.conn.WaitForNotification(ctx)
	return err
}

// Close tears the listening connection down.
func (l *Listener) Close(ctx context.Context) error {
	return l.conn.Close(ctx)
}
