package cli

import (
	"context"

	"go.uber.org/fx"

	"github.com/ie-dashboard/backend/internal/app"
	"github.com/ie-dashboard/backend/internal/app/appcontext"
)

func Start(module fx.Option) {
	app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background())
}
