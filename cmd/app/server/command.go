package server

import "github.com/urfave/cli/v2"

func Command() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "start the dashboard server",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "open",
				Usage: "open the dashboard in the local browser after startup",
			},
		},
		Action: func(c *cli.Context) error {
			return Run(c.Bool("open"))
		},
	}
}
