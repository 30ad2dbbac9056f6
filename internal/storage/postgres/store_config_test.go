package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

func TestStoreConfigRepository(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &storeConfigRepository{storage: storage}

	mock.ExpectQuery("SELECT store_name, whatsapp_number, is_store_open FROM store_config WHERE id=").WithArgs(storeConfigID).WillReturnRows(
		pgxmockv3.NewRows([]string{"store_name", "whatsapp_number", "is_store_open"}).AddRow("Delícias da Gio", "5591985760235", false))
	cfg, err := repo.Get(context.Background())
	if err != nil || cfg.StoreName != "Delícias da Gio" || cfg.IsOpen {
		t.Fatalf("unexpected config: %+v err=%v", cfg, err)
	}

	mock.ExpectQuery("SELECT store_name").WithArgs(storeConfigID).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.Get(context.Background()); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectExec("INSERT INTO store_config").WithArgs(storeConfigID, "Loja", "5591000000000", true).WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	if err := repo.Save(context.Background(), model.StoreConfig{StoreName: "Loja", WhatsappNumber: "5591000000000", IsOpen: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE store_config SET is_store_open=").WithArgs(false, storeConfigID).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.SetOpen(context.Background(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE store_config SET is_store_open=").WithArgs(true, storeConfigID).WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	if err := repo.SetOpen(context.Background(), true); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectExec("UPDATE store_config SET is_store_open=").WithArgs(true, storeConfigID).WillReturnError(errors.New("update"))
	if err := repo.SetOpen(context.Background(), true); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
