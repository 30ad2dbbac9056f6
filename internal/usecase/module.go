package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/notify"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewStoreUseCase,
	NewCatalogUseCase,
	NewOrderUseCase,
	NewCheckoutUseCase,
	NewAuthUseCase,
	NewAssistUseCase,
	func(h *notify.Hub) AlertPublisher { return h },
)
