package di

import (
	"go.uber.org/fx"

	"github.com/plateful/takeaway/internal/adapter/events"
	"github.com/plateful/takeaway/internal/app"
	"github.com/plateful/takeaway/internal/config"
	"github.com/plateful/takeaway/internal/logger"
	"github.com/plateful/takeaway/internal/pkg/auth"
	"github.com/plateful/takeaway/internal/server/http/handlers"
	"github.com/plateful/takeaway/internal/server/http/router"
	"github.com/plateful/takeaway/internal/storage/postgres"
	"github.com/plateful/takeaway/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		events.Module,
		usecase.Module,
		fx.Provide(func(f *app.TakeawayFacade) handlers.TakeawayFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
