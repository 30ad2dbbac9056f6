package usecase

import (
	"io"
	"log/slog"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/model"
	testhelpers "github.com/polkiloo/storefront/internal/test"
)

const testBaseURL = "https://loja.example"

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newStore(open bool) (*StoreUseCase, *testhelpers.StoreConfigRepositoryStub) {
	repo := &testhelpers.StoreConfigRepositoryStub{Config: &model.StoreConfig{
		StoreName:      "Loja Teste",
		WhatsappNumber: "5591999990000",
		IsOpen:         open,
	}}
	store := NewStoreUseCase(repo, config.DefaultProfile(), newLogger())
	store.set(*repo.Config)
	return store, repo
}

func newOrders(repo *testhelpers.OrderRepositoryStub, alerts AlertPublisher) *OrderUseCase {
	store, _ := newStore(true)
	return NewOrderUseCase(repo, store, alerts, &config.Config{PublicBaseURL: testBaseURL}, newLogger())
}
