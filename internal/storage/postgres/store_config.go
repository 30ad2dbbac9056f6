package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

const storeConfigID = 1

type storeConfigRepository struct {
	storage *Storage
}

func (r *storeConfigRepository) Get(ctx context.Context) (*model.StoreConfig, error) {
	const query = `SELECT store_name, whatsapp_number, is_store_open FROM store_config WHERE id=$1`
	var cfg model.StoreConfig
	err := r.storage.pool.QueryRow(ctx, query, storeConfigID).Scan(&cfg.StoreName, &cfg.WhatsappNumber, &cfg.IsOpen)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *storeConfigRepository) Save(ctx context.Context, cfg model.StoreConfig) error {
	const query = `INSERT INTO store_config (id, store_name, whatsapp_number, is_store_open)
                   VALUES ($1, $2, $3, $4)
                   ON CONFLICT (id) DO UPDATE
                   SET store_name = EXCLUDED.store_name,
                       whatsapp_number = EXCLUDED.whatsapp_number,
                       is_store_open = EXCLUDED.is_store_open`
	_, err := r.storage.pool.Exec(ctx, query, storeConfigID, cfg.StoreName, cfg.WhatsappNumber, cfg.IsOpen)
	return err
}

func (r *storeConfigRepository) SetOpen(ctx context.Context, open bool) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE store_config SET is_store_open=$1 WHERE id=$2`, open, storeConfigID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
