package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

// Listener holds a dedicated PostgreSQL connection, LISTENs on the event
// channel and dispatches received frames to the Manager. The connection is
// re-established with exponential backoff after failures.
type Listener struct {
	connString string
	manager    *Manager

	conn   *pgx.Conn
	connMu sync.Mutex

	running    atomic.Bool
	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewListener creates a listener that broadcasts into manager.
func NewListener(connString string, manager *Manager) *Listener {
	return &Listener{connString: connString, manager: manager}
}

// Start establishes the dedicated LISTEN connection and begins receiving.
func (l *Listener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{Channel}.Sanitize()); err != nil {
		_ = conn.Close(ctx)
		return fmt.Errorf("LISTEN %s failed: %w", Channel, err)
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()
	l.running.Store(true)

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	slog.Info("Event listener started", "channel", Channel)
	return nil
}

// Stop shuts down the receive loop and closes the connection.
func (l *Listener) Stop(ctx context.Context) {
	if !l.running.CompareAndSwap(true, false) {
		return
	}
	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
	slog.Info("Event listener stopped")
}

// receiveLoop is the sole goroutine that touches the pgx connection.
func (l *Listener) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()

		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Error("NOTIFY receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		l.manager.Broadcast([]byte(notification.Payload))
	}
}

// reconnect re-establishes the LISTEN connection with exponential backoff.
func (l *Listener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{Channel}.Sanitize()); err != nil {
			slog.Error("LISTEN after reconnect failed", "error", err)
			_ = conn.Close(ctx)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}

		l.conn = conn
		slog.Info("Event listener reconnected", "channel", Channel)
		return
	}
}
