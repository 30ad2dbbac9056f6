package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	testhelpers "github.com/polkiloo/storefront/internal/test"
)

func sampleOrders() []model.Order {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return []model.Order{
		{ID: "OLD01", CustomerName: "Ana", CustomerPhone: "5591988887777", Total: 10, CreatedAt: base, Status: model.OrderStatusPending},
		{ID: "NEW01", CustomerName: "Bia", CustomerPhone: "5591977776666", Total: 20, CreatedAt: base.Add(time.Hour), Status: model.OrderStatusPending, ConfirmationToken: "tok-new"},
	}
}

func loadedOrders(t *testing.T) (*OrderUseCase, *testhelpers.OrderRepositoryStub, *testhelpers.AlertRecorder) {
	t.Helper()
	repo := &testhelpers.OrderRepositoryStub{Orders: sampleOrders()}
	alerts := &testhelpers.AlertRecorder{}
	uc := newOrders(repo, alerts)
	if err := uc.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	return uc, repo, alerts
}

func TestOrderLoadSortsNewestFirst(t *testing.T) {
	uc, _, alerts := loadedOrders(t)
	list := uc.List()
	if len(list) != 2 || list[0].ID != "NEW01" || list[1].ID != "OLD01" {
		t.Fatalf("unexpected order: %+v", list)
	}
	if alerts.Count() != 0 {
		t.Fatal("loading must not raise alerts")
	}
}

func TestOrderPlace(t *testing.T) {
	uc, repo, alerts := loadedOrders(t)
	order := model.Order{ID: "PLC01", CustomerName: "Caio", CustomerPhone: "5591900001111", Total: 12.5,
		Items: []model.LineItem{{Name: "Coxinha", Qty: 2, Price: 6.25}}, Status: model.OrderStatusPending}

	placed, err := uc.Place(context.Background(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.Created) != 1 || repo.Created[0].ID != "PLC01" {
		t.Fatalf("expected order persisted, got %+v", repo.Created)
	}
	if uc.List()[0].ID != "PLC01" {
		t.Fatal("expected placed order to be first")
	}
	if !strings.Contains(placed.Summary, "*LOJA TESTE - NOVO PEDIDO*") || !strings.Contains(placed.Summary, "• 2x Coxinha") {
		t.Fatalf("unexpected summary: %s", placed.Summary)
	}
	if !strings.HasPrefix(placed.WhatsappURL, "https://wa.me/5591999990000?text=") {
		t.Fatalf("expected store chat link, got %s", placed.WhatsappURL)
	}
	if alerts.Count() != 1 || alerts.Alerts[0].Title != "Novo Pedido de Caio!" || alerts.Alerts[0].Body != "Total: R$ 12.50" {
		t.Fatalf("unexpected alerts: %+v", alerts.Alerts)
	}
}

func TestOrderPlaceFailure(t *testing.T) {
	uc, repo, alerts := loadedOrders(t)
	repo.CreateFn = func(context.Context, model.Order) error { return errors.New("insert failed") }

	if _, err := uc.Place(context.Background(), model.Order{ID: "X"}); err == nil {
		t.Fatal("expected error")
	}
	if len(uc.List()) != 2 || alerts.Count() != 0 {
		t.Fatal("memory must stay unchanged")
	}
}

func TestOrderUpdateStatusWithNotification(t *testing.T) {
	uc, repo, _ := loadedOrders(t)

	order, note, err := uc.UpdateStatus(context.Background(), "NEW01", model.OrderStatusOutForDelivery)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusOutForDelivery {
		t.Fatalf("unexpected status %s", order.Status)
	}
	if got, _ := uc.Get("NEW01"); got.Status != model.OrderStatusOutForDelivery {
		t.Fatalf("expected memory patched, got %s", got.Status)
	}
	if len(repo.UpdateCalls) != 1 || repo.UpdateCalls[0].ByToken {
		t.Fatalf("unexpected writes: %+v", repo.UpdateCalls)
	}
	if note == nil {
		t.Fatal("expected exactly one notification")
	}
	if !strings.Contains(note.Text, testBaseURL+"/confirm?token=tok-new") {
		t.Fatalf("expected token link, got %s", note.Text)
	}
	if note.Phone != "5591977776666" || !strings.HasPrefix(note.URL, "https://api.whatsapp.com/send?phone=5591977776666&text=") {
		t.Fatalf("unexpected deep link: %+v", note)
	}
}

func TestOrderUpdateStatusLegacyLinkUsesID(t *testing.T) {
	uc, _, _ := loadedOrders(t)
	_, note, err := uc.UpdateStatus(context.Background(), "OLD01", model.OrderStatusOutForDelivery)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if note == nil || !strings.Contains(note.Text, testBaseURL+"/confirm?token=OLD01") {
		t.Fatalf("expected id fallback link, got %+v", note)
	}
}

func TestOrderUpdateStatusWithoutNotification(t *testing.T) {
	uc, _, _ := loadedOrders(t)
	for _, status := range []model.OrderStatus{model.OrderStatusDelivered, model.OrderStatusCancelled, model.OrderStatusPending} {
		_, note, err := uc.UpdateStatus(context.Background(), "OLD01", status)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if note != nil {
			t.Fatalf("expected no notification for %s", status)
		}
	}
}

func TestOrderUpdateStatusFailureKeepsStatus(t *testing.T) {
	uc, repo, _ := loadedOrders(t)
	repo.UpdateErr = errors.New("write failed")

	order, note, err := uc.UpdateStatus(context.Background(), "NEW01", model.OrderStatusReceived)
	if err == nil {
		t.Fatal("expected error")
	}
	if order != nil || note != nil {
		t.Fatal("failed update must not notify")
	}
	if got, _ := uc.Get("NEW01"); got.Status != model.OrderStatusPending {
		t.Fatalf("expected prior status, got %s", got.Status)
	}
}

func TestOrderUpdateStatusUnknownOrder(t *testing.T) {
	uc, _, _ := loadedOrders(t)
	if _, _, err := uc.UpdateStatus(context.Background(), "NOPE", model.OrderStatusReceived); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderNotify(t *testing.T) {
	uc, _, _ := loadedOrders(t)

	if _, err := uc.Notify(context.Background(), "NEW01"); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected no message for pending, got %v", err)
	}

	if _, _, err := uc.UpdateStatus(context.Background(), "NEW01", model.OrderStatusPreparing); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	note, err := uc.Notify(context.Background(), "NEW01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if note.Status != model.OrderStatusPreparing || !strings.Contains(note.Text, "sendo preparado") {
		t.Fatalf("unexpected notification: %+v", note)
	}
}

func TestApplyChangeInsert(t *testing.T) {
	uc, _, alerts := loadedOrders(t)
	change := model.OrderChange{Type: model.ChangeInsert, New: &model.Order{ID: "FEED1", CustomerName: "Duda", Total: 30}}

	uc.ApplyChange(change)
	uc.ApplyChange(change)

	list := uc.List()
	if len(list) != 3 || list[0].ID != "FEED1" {
		t.Fatalf("expected single prepend, got %+v", list)
	}
	if alerts.Count() != 1 {
		t.Fatalf("expected one alert, got %d", alerts.Count())
	}
}

func TestApplyChangeUpdateIsIdempotent(t *testing.T) {
	uc, _, _ := loadedOrders(t)
	due := 50.0
	change := model.OrderChange{Type: model.ChangeUpdate, New: &model.Order{
		ID:                "OLD01",
		CustomerName:      "ignored",
		Status:            model.OrderStatusReceived,
		ConfirmationToken: "tok-old",
		PaymentMethod:     model.PaymentMethodCash,
		DeliveryMethod:    model.DeliveryMethodPickup,
		CustomerAddress:   "Rua A",
		ChangeDue:         &due,
	}}

	uc.ApplyChange(change)
	once := uc.List()
	uc.ApplyChange(change)
	twice := uc.List()

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("expected idempotent update:\n%+v\n%+v", once, twice)
	}
	got, _ := uc.Get("OLD01")
	if got.Status != model.OrderStatusReceived || got.ConfirmationToken != "tok-old" || got.PaymentMethod != model.PaymentMethodCash ||
		got.DeliveryMethod != model.DeliveryMethodPickup || got.CustomerAddress != "Rua A" || got.ChangeDue == nil || *got.ChangeDue != 50 {
		t.Fatalf("unexpected patch: %+v", got)
	}
	if got.CustomerName != "Ana" {
		t.Fatalf("immutable fields must not change, got %q", got.CustomerName)
	}
}

func TestApplyChangeUpdateUnknownIgnored(t *testing.T) {
	uc, _, _ := loadedOrders(t)
	before := uc.List()
	uc.ApplyChange(model.OrderChange{Type: model.ChangeUpdate, New: &model.Order{ID: "NOPE", Status: model.OrderStatusDelivered}})
	uc.ApplyChange(model.OrderChange{Type: model.ChangeUpdate})
	if !reflect.DeepEqual(before, uc.List()) {
		t.Fatal("unknown ids must be ignored")
	}
}

func TestApplyChangeDelete(t *testing.T) {
	uc, _, _ := loadedOrders(t)
	uc.ApplyChange(model.OrderChange{Type: model.ChangeDelete, Old: &model.Order{ID: "OLD01"}})
	if _, ok := uc.Get("OLD01"); ok {
		t.Fatal("expected order removed")
	}
	if len(uc.List()) != 1 {
		t.Fatalf("unexpected list %+v", uc.List())
	}
}

func TestConfirmDeliveryByToken(t *testing.T) {
	uc, repo, _ := loadedOrders(t)

	res, err := uc.ConfirmDelivery(context.Background(), "tok-new")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.State != model.ConfirmationSuccess || res.OrderID != "NEW01" {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(repo.UpdateCalls) != 1 || !repo.UpdateCalls[0].ByToken || repo.UpdateCalls[0].Status != model.OrderStatusDelivered {
		t.Fatalf("expected update by token, got %+v", repo.UpdateCalls)
	}
	if got, _ := uc.Get("NEW01"); got.Status != model.OrderStatusDelivered {
		t.Fatalf("expected memory patched, got %s", got.Status)
	}
}

func TestConfirmDeliveryLegacyID(t *testing.T) {
	uc, repo, _ := loadedOrders(t)

	res, err := uc.ConfirmDelivery(context.Background(), "OLD01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.State != model.ConfirmationSuccess {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(repo.UpdateCalls) != 1 || repo.UpdateCalls[0].ByToken || repo.UpdateCalls[0].Key != "OLD01" {
		t.Fatalf("expected update by id, got %+v", repo.UpdateCalls)
	}
}

func TestConfirmDeliveryUnknownTokenWritesNothing(t *testing.T) {
	uc, repo, _ := loadedOrders(t)

	res, err := uc.ConfirmDelivery(context.Background(), "unknown")
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if res.State != model.ConfirmationError {
		t.Fatalf("expected error state, got %s", res.State)
	}
	if len(repo.UpdateCalls) != 0 {
		t.Fatalf("expected no writes, got %+v", repo.UpdateCalls)
	}
}

func TestConfirmDeliveryEmptyToken(t *testing.T) {
	uc, _, _ := loadedOrders(t)
	res, err := uc.ConfirmDelivery(context.Background(), "  ")
	if !errors.Is(err, domainErrors.ErrInvalidToken) || res.State != model.ConfirmationError {
		t.Fatalf("unexpected result %+v %v", res, err)
	}
}

func TestConfirmDeliveryLookupFailure(t *testing.T) {
	uc, repo, _ := loadedOrders(t)
	repo.LookupErr = errors.New("down")
	res, err := uc.ConfirmDelivery(context.Background(), "tok-new")
	if err == nil || res.State != model.ConfirmationError {
		t.Fatalf("unexpected result %+v %v", res, err)
	}
}
