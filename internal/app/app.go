package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/ie-dashboard/backend/internal/app/appconfig"
	"github.com/ie-dashboard/backend/internal/app/appcontext"
	"github.com/ie-dashboard/backend/internal/controller"
	"github.com/ie-dashboard/backend/internal/infra"
	"github.com/ie-dashboard/backend/internal/pkg/logger"
	"github.com/ie-dashboard/backend/internal/repo"
	"github.com/ie-dashboard/backend/internal/server"
	"github.com/ie-dashboard/backend/internal/service"
	"github.com/ie-dashboard/backend/internal/web"
	"github.com/ie-dashboard/backend/internal/workers/refreshwkr"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Servers
		server.Module(),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),

		// Global Singleton Inits: Keep those before controllers to ensure they are initialized
		// before controllers are registered as controllers are also fx#Invoke functions which
		// are called in the order of their registration.
		fx.Invoke(infra.SentryInit),

		// Controllers
		controller.Module(),

		// Embedded frontend
		fx.Invoke(web.RegisterFrontend),

		// Workers
		fx.Invoke(refreshwkr.Start),

		// fx Extra Options
		fx.StartTimeout(1 * time.Second),
		// StopTimeout is not typically needed, since we're using fiber's Shutdown(),
		// in which fiber has its own IdleTimeout for controlling the shutdown timeout.
		// It acts as a countermeasure in case the fiber app is not properly shutting down.
		fx.StopTimeout(5 * time.Minute),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
