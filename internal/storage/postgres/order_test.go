package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

var orderRowColumns = []string{
	"id", "customer_name", "customer_phone", "items", "total", "timestamp", "status",
	"confirmation_token", "payment_method", "delivery_method", "customer_address", "troco",
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestOrderRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	created := time.UnixMilli(1760000000000)
	order := model.Order{
		ID:                "AB12C",
		CustomerName:      "Maria",
		CustomerPhone:     "91999990000",
		Items:             []model.LineItem{{Name: "X-Burger", Qty: 2, Price: 18.5}},
		Total:             37,
		CreatedAt:         created,
		Status:            model.OrderStatusPending,
		ConfirmationToken: "tok",
		PaymentMethod:     model.PaymentMethodCash,
		DeliveryMethod:    model.DeliveryMethodPickup,
		ChangeDue:         floatPtr(50),
	}
	items, _ := json.Marshal(order.Items)
	args := []any{"AB12C", "Maria", "91999990000", items, 37.0, created.UnixMilli(), "Pendente",
		strPtr("tok"), strPtr("Dinheiro"), strPtr("Retirada"), (*string)(nil), floatPtr(50)}

	mock.ExpectExec("INSERT INTO orders").WithArgs(args...).WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	if err := repo.Create(context.Background(), order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("INSERT INTO orders").WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23505"})
	if err := repo.Create(context.Background(), order); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists error, got %v", err)
	}

	mock.ExpectExec("INSERT INTO orders").WithArgs(args...).WillReturnError(errors.New("insert"))
	if err := repo.Create(context.Background(), order); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderRepositoryListAndGet(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	items := []byte(`[{"name":"X-Burger","qty":2,"price":18.5}]`)
	mock.ExpectQuery("(?s)SELECT .+ FROM orders ORDER BY timestamp DESC").WillReturnRows(
		pgxmockv3.NewRows(orderRowColumns).
			AddRow("AB12C", "Maria", "91999990000", items, 37.0, int64(1760000000000), "Saiu para entrega",
				strPtr("tok"), strPtr("Dinheiro"), strPtr("Entrega"), strPtr("Rua A, 10"), floatPtr(50)).
			AddRow("OLD01", "João", "91888880000", items, 37.0, int64(1700000000000), "Entregue",
				nil, nil, nil, nil, nil),
	)
	orders, err := repo.List(context.Background())
	if err != nil || len(orders) != 2 {
		t.Fatalf("unexpected result: %v err=%v", orders, err)
	}
	first := orders[0]
	if first.ConfirmationKey() != "tok" || first.Delivery() != model.DeliveryMethodDelivery || *first.ChangeDue != 50 {
		t.Fatalf("unexpected order: %+v", first)
	}
	if len(first.Items) != 1 || first.Items[0].Qty != 2 || first.CreatedAt.UnixMilli() != 1760000000000 {
		t.Fatalf("unexpected order items or time: %+v", first)
	}
	legacy := orders[1]
	if legacy.ConfirmationKey() != "OLD01" || legacy.Payment() != model.PaymentMethodPix || legacy.ChangeDue != nil {
		t.Fatalf("unexpected legacy order: %+v", legacy)
	}

	mock.ExpectQuery("(?s)SELECT .+ FROM orders ORDER BY").WillReturnError(errors.New("query"))
	if _, err := repo.List(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	mock.ExpectQuery("(?s)SELECT .+ FROM orders ORDER BY").WillReturnRows(
		pgxmockv3.NewRows(orderRowColumns).
			AddRow("BAD01", "Maria", "9", []byte(`{"oops"`), 1.0, int64(1), "Pendente", nil, nil, nil, nil, nil),
	)
	if _, err := repo.List(context.Background()); err == nil {
		t.Fatal("expected items decode error")
	}

	mock.ExpectQuery("(?s)SELECT .+ FROM orders WHERE id=").WithArgs("AB12C").WillReturnRows(
		pgxmockv3.NewRows(orderRowColumns).
			AddRow("AB12C", "Maria", "91999990000", items, 37.0, int64(1760000000000), "Pendente",
				nil, nil, nil, nil, nil),
	)
	order, err := repo.GetByID(context.Background(), "AB12C")
	if err != nil || order.ID != "AB12C" || order.Status != model.OrderStatusPending {
		t.Fatalf("unexpected order: %+v err=%v", order, err)
	}

	mock.ExpectQuery("(?s)SELECT .+ FROM orders WHERE confirmation_token=").WithArgs("missing").WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByConfirmationToken(context.Background(), "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("(?s)SELECT .+ FROM orders WHERE confirmation_token=").WithArgs("err").WillReturnError(errors.New("boom"))
	if _, err := repo.GetByConfirmationToken(context.Background(), "err"); err == nil || errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected raw error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	mock.ExpectExec("UPDATE orders SET status=\\$1 WHERE id=\\$2").WithArgs("Recebido", "AB12C").WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.UpdateStatus(context.Background(), "AB12C", model.OrderStatusReceived); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE orders SET status=\\$1 WHERE id=\\$2").WithArgs("Recebido", "NOPE0").WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	if err := repo.UpdateStatus(context.Background(), "NOPE0", model.OrderStatusReceived); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectExec("UPDATE orders SET status=\\$1 WHERE confirmation_token=\\$2").WithArgs("Entregue", "tok").WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.UpdateStatusByToken(context.Background(), "tok", model.OrderStatusDelivered); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE orders SET status=\\$1 WHERE confirmation_token=\\$2").WithArgs("Entregue", "tok").WillReturnError(errors.New("update"))
	if err := repo.UpdateStatusByToken(context.Background(), "tok", model.OrderStatusDelivered); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
