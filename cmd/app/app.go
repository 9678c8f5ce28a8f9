package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/ie-dashboard/backend/cmd/app/cli/export"
	"github.com/ie-dashboard/backend/cmd/app/server"
	"github.com/ie-dashboard/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "iebackend",
		Description: "The Institutional Effectiveness Dashboard backend. Built with Go, fiber and go.uber.org/fx. Serves synthetic demonstration metrics for academic medical center leadership.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			export.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
