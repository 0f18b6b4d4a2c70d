package di

import (
	"go.uber.org/fx"

	"github.com/comrade-org/membership/internal/adapter/mailer"
	"github.com/comrade-org/membership/internal/app"
	"github.com/comrade-org/membership/internal/config"
	"github.com/comrade-org/membership/internal/logger"
	"github.com/comrade-org/membership/internal/pkg/memberid"
	"github.com/comrade-org/membership/internal/server/http/handlers"
	"github.com/comrade-org/membership/internal/server/http/router"
	"github.com/comrade-org/membership/internal/storage/postgres"
	"github.com/comrade-org/membership/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		memberid.Module,
		postgres.Module,
		mailer.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.MembershipFacade) handlers.MembershipFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
