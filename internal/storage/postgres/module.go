package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/plateful/takeaway/internal/config"
	"github.com/plateful/takeaway/internal/domain/repository"
)

// Module wires PostgreSQL storage, repository adapters and the change
// listener.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(newListener),
	fx.Provide(
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.MenuRepository { return s.Menu() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func newListener(p storageParams) (*Listener, error) {
	return NewListener(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage, listener *Listener) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return listener.Close(ctx)
		},
	})
}
