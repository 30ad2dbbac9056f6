package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/polkiloo/storefront/internal/domain/repository"
)

const uniqueViolation = "23505"

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool    pgxPool
	acquire func(ctx context.Context) (listenConn, error)
	logger  *slog.Logger
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if p, ok := pool.(*pgxpool.Pool); ok {
		storage.acquire = acquireFrom(p)
	}

	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Admins() repository.AdminRepository {
	return &adminRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) StoreConfig() repository.StoreConfigRepository {
	return &storeConfigRepository{storage: s}
}

// OrderChanges returns the LISTEN based order change feed.
func (s *Storage) OrderChanges() repository.ChangeSource {
	return &orderFeed{storage: s, orders: &orderRepository{storage: s}}
}

var schemaStatements = []string{
	`SELECT pg_advisory_xact_lock(7411)`,
	`CREATE TABLE IF NOT EXISTS store_config (
            id INTEGER PRIMARY KEY,
            store_name TEXT NOT NULL,
            whatsapp_number TEXT NOT NULL,
            is_store_open BOOLEAN NOT NULL DEFAULT TRUE
        )`,
	`CREATE TABLE IF NOT EXISTS products (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            category TEXT NOT NULL,
            cost_price DOUBLE PRECISION NOT NULL DEFAULT 0,
            sell_price DOUBLE PRECISION NOT NULL,
            stock INTEGER NOT NULL DEFAULT 0,
            sku TEXT NOT NULL DEFAULT '',
            image_url TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            customer_name TEXT NOT NULL,
            customer_phone TEXT NOT NULL,
            items JSONB NOT NULL DEFAULT '[]',
            total DOUBLE PRECISION NOT NULL,
            timestamp BIGINT NOT NULL,
            status TEXT NOT NULL,
            confirmation_token TEXT,
            payment_method TEXT,
            delivery_method TEXT,
            customer_address TEXT,
            troco DOUBLE PRECISION
        )`,
	`CREATE TABLE IF NOT EXISTS admins (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            confirmed BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	`CREATE INDEX IF NOT EXISTS idx_products_created ON products(created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_timestamp ON orders(timestamp DESC)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_confirmation_token ON orders(confirmation_token)`,
	`CREATE OR REPLACE FUNCTION notify_orders_changes() RETURNS trigger AS $$
        BEGIN
            PERFORM pg_notify('` + ordersChannel + `', json_build_object(
                'type', TG_OP,
                'id', CASE WHEN TG_OP = 'DELETE' THEN OLD.id ELSE NEW.id END
            )::text);
            RETURN NULL;
        END;
        $$ LANGUAGE plpgsql`,
	`DROP TRIGGER IF EXISTS orders_changes ON orders`,
	`CREATE TRIGGER orders_changes AFTER INSERT OR UPDATE OR DELETE ON orders
        FOR EACH ROW EXECUTE FUNCTION notify_orders_changes()`,
}

// initSchema runs under an advisory lock so concurrent instances do not race on the trigger.
func (s *Storage) initSchema(ctx context.Context) error {
	err := s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
