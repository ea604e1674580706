package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/cookbook/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the cookbook HTTP API",
		Description: `Start the API server seeded from a catalogue. Settings are read from
--config (or COOKBOOK_CONFIG, or ./cookbook.yaml) and COOKBOOK_* variables;
flags override both.

Example:
  cookbook serve --port 9090 --catalogue catalogue.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "config file path",
				Sources: cli.EnvVars(api.EnvConfigPath),
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "listen port (overrides config)",
			},
			catalogueFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.ServeWithOptions(ctx, api.Options{
				ConfigPath: cmd.String("config"),
				Catalogue:  cmd.String("catalogue"),
				Port:       cmd.Int("port"),
				Version:    version,
			})
		},
	}
}
