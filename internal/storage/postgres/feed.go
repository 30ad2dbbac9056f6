package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

const ordersChannel = "orders_changes"

var errFeedUnavailable = errors.New("change feed requires a pgx connection pool")

// listenConn is the slice of a dedicated connection the feed needs.
type listenConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Release()
}

type pooledConn struct {
	conn *pgxpool.Conn
}

func (c *pooledConn) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return c.conn.Exec(ctx, sql, args...)
}

func (c *pooledConn) WaitForNotification(ctx context.Context) (*pgconn.Notification, error) {
	return c.conn.Conn().WaitForNotification(ctx)
}

func (c *pooledConn) Release() {
	c.conn.Release()
}

func acquireFrom(pool *pgxpool.Pool) func(ctx context.Context) (listenConn, error) {
	return func(ctx context.Context) (listenConn, error) {
		conn, err := pool.Acquire(ctx)
		if err != nil {
			return nil, err
		}
		return &pooledConn{conn: conn}, nil
	}
}

// orderFeed receives only {type, id} over NOTIFY and re-reads the row on arrival.
type orderFeed struct {
	storage *Storage
	orders  *orderRepository
}

type changeNotice struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Listen holds one connection in LISTEN mode and hands resolved changes to handle
// in arrival order. It returns when ctx is done or when the connection or a row
// re-read fails.
func (f *orderFeed) Listen(ctx context.Context, handle func(model.OrderChange)) error {
	if f.storage.acquire == nil {
		return errFeedUnavailable
	}

	conn, err := f.storage.acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listener: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+ordersChannel); err != nil {
		return fmt.Errorf("listen %s: %w", ordersChannel, err)
	}

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("wait notification: %w", err)
		}

		notice, err := decodeNotice([]byte(n.Payload))
		if err != nil {
			f.storage.logger.Warn("skipping malformed order change", slog.String("error", err.Error()))
			continue
		}

		change, err := f.resolve(ctx, notice)
		if errors.Is(err, domainErrors.ErrNotFound) {
			// deleted before we read it; the DELETE notice follows
			f.storage.logger.Debug("order gone before change applied", slog.String("order", notice.ID))
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("fetch order %s: %w", notice.ID, err)
		}
		handle(change)
	}
}

func (f *orderFeed) resolve(ctx context.Context, notice changeNotice) (model.OrderChange, error) {
	change := model.OrderChange{Type: model.ChangeType(notice.Type)}
	if change.Type == model.ChangeDelete {
		change.Old = &model.Order{ID: notice.ID}
		return change, nil
	}

	o, err := f.orders.GetByID(ctx, notice.ID)
	if err != nil {
		return model.OrderChange{}, err
	}
	change.New = o
	return change, nil
}

func decodeNotice(payload []byte) (changeNotice, error) {
	var n changeNotice
	if err := json.Unmarshal(payload, &n); err != nil {
		return changeNotice{}, fmt.Errorf("decode change: %w", err)
	}

	switch model.ChangeType(n.Type) {
	case model.ChangeInsert, model.ChangeUpdate, model.ChangeDelete:
	default:
		return changeNotice{}, fmt.Errorf("unknown change type %q", n.Type)
	}
	if n.ID == "" {
		return changeNotice{}, errors.New("change carries no order id")
	}
	return n, nil
}
