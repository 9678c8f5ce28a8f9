package export

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/ie-dashboard/backend/cmd/app/cli"
	"github.com/ie-dashboard/backend/internal/service"
)

type CommandDeps struct {
	fx.In

	ViewsService *service.Views
}

func Command() *cli.Command {
	return &cli.Command{
		Name:        "export",
		Description: "write one domain's synthetic dataset to a file without starting the server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "domain",
				Usage:    "domain to export (education, research, workforce, compliance)",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "seed pinning the dataset; 0 derives one from the clock",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format (json, msgpack)",
				Value: "json",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "output file path; defaults to ie-<domain>.<format>",
			},
		},
		Action: func(ctx *cli.Context) error {
			var deps CommandDeps
			cliapp.Start(fx.Populate(&deps))
			return run(deps, ctx.String("domain"), ctx.Uint64("seed"), ctx.String("format"), ctx.String("out"))
		},
	}
}
