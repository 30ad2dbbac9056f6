package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

const orderColumns = `id, customer_name, customer_phone, items, total, timestamp, status,
                      confirmation_token, payment_method, delivery_method, customer_address, troco`

type orderRepository struct {
	storage *Storage
}

// orderRow mirrors the orders table.
type orderRow struct {
	ID                string          `json:"id"`
	CustomerName      string          `json:"customer_name"`
	CustomerPhone     string          `json:"customer_phone"`
	Items             json.RawMessage `json:"items"`
	Total             float64         `json:"total"`
	Timestamp         int64           `json:"timestamp"`
	Status            string          `json:"status"`
	ConfirmationToken *string         `json:"confirmation_token"`
	PaymentMethod     *string         `json:"payment_method"`
	DeliveryMethod    *string         `json:"delivery_method"`
	CustomerAddress   *string         `json:"customer_address"`
	Troco             *float64        `json:"troco"`
}

func (r *orderRow) scanFrom(row pgx.Row) error {
	var items []byte
	err := row.Scan(&r.ID, &r.CustomerName, &r.CustomerPhone, &items, &r.Total, &r.Timestamp, &r.Status,
		&r.ConfirmationToken, &r.PaymentMethod, &r.DeliveryMethod, &r.CustomerAddress, &r.Troco)
	r.Items = items
	return err
}

func (r *orderRow) toModel() (model.Order, error) {
	o := model.Order{
		ID:                r.ID,
		CustomerName:      r.CustomerName,
		CustomerPhone:     r.CustomerPhone,
		Total:             r.Total,
		CreatedAt:         time.UnixMilli(r.Timestamp),
		Status:            model.OrderStatus(r.Status),
		ConfirmationToken: deref(r.ConfirmationToken),
		PaymentMethod:     deref(r.PaymentMethod),
		DeliveryMethod:    model.DeliveryMethod(deref(r.DeliveryMethod)),
		CustomerAddress:   deref(r.CustomerAddress),
		ChangeDue:         r.Troco,
	}
	if len(r.Items) > 0 && string(r.Items) != "null" {
		if err := json.Unmarshal(r.Items, &o.Items); err != nil {
			return model.Order{}, fmt.Errorf("decode items of order %s: %w", r.ID, err)
		}
	}
	return o, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *orderRepository) Create(ctx context.Context, o model.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}

	const query = `INSERT INTO orders (` + orderColumns + `)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.storage.pool.Exec(ctx, query,
		o.ID, o.CustomerName, o.CustomerPhone, items, o.Total, o.CreatedAt.UnixMilli(), string(o.Status),
		nullable(o.ConfirmationToken), nullable(o.PaymentMethod), nullable(string(o.DeliveryMethod)),
		nullable(o.CustomerAddress), o.ChangeDue)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY timestamp DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var row orderRow
		if err := row.scanFrom(rows); err != nil {
			return nil, err
		}
		o, err := row.toModel()
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id)
}

func (r *orderRepository) GetByConfirmationToken(ctx context.Context, token string) (*model.Order, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM orders WHERE confirmation_token=$1`, token)
}

func (r *orderRepository) get(ctx context.Context, query, arg string) (*model.Order, error) {
	var row orderRow
	if err := row.scanFrom(r.storage.pool.QueryRow(ctx, query, arg)); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	o, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	return r.update(ctx, `UPDATE orders SET status=$1 WHERE id=$2`, status, id)
}

func (r *orderRepository) UpdateStatusByToken(ctx context.Context, token string, status model.OrderStatus) error {
	return r.update(ctx, `UPDATE orders SET status=$1 WHERE confirmation_token=$2`, status, token)
}

func (r *orderRepository) update(ctx context.Context, query string, status model.OrderStatus, key string) error {
	tag, err := r.storage.pool.Exec(ctx, query, string(status), key)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
