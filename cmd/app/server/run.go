package server

import (
	"context"
	"net"
	"os/exec"
	"runtime"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/ie-dashboard/backend/internal/app"
	"github.com/ie-dashboard/backend/internal/app/appconfig"
	"github.com/ie-dashboard/backend/internal/app/appcontext"
)

func Run(openBrowser bool) error {
	fxApp := app.New(appcontext.Declare(appcontext.EnvServer), fx.Invoke(func(fiberApp *fiber.App, conf *appconfig.Config, lc fx.Lifecycle) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				ln, err := net.Listen("tcp", conf.ServiceAddress)
				if err != nil {
					return err
				}

				go func() {
					if err := fiberApp.Listener(ln); err != nil {
						log.Error().Err(err).Msg("server terminated unexpectedly")
					}
				}()

				if openBrowser {
					open("http://" + conf.ServiceAddress)
				}

				return nil
			},
			OnStop: func(ctx context.Context) error {
				if conf.DevMode {
					return nil
				}
				return fiberApp.Shutdown()
			},
		})
	}))

	fxApp.Run()
	return nil
}

// open launches the system browser pointing at the dashboard. Failures are
// logged and otherwise ignored: the server keeps serving either way.
func open(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("failed to open browser")
	}
}
