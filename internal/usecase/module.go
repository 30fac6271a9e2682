package usecase

import (
	"go.uber.org/fx"

	"github.com/plateful/takeaway/internal/cart"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(cart.NewStore),
	fx.Provide(
		NewAuthUseCase,
		NewMenuUseCase,
		NewCartUseCase,
		NewOrderUseCase,
	),
)
