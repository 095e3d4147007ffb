package main

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/routeledger/pkg/config"
	"github.com/travigo/routeledger/pkg/ledger"
	"github.com/travigo/routeledger/pkg/util"
	"github.com/urfave/cli/v2"
)

func main() {
	bootstrapConfig := config.Default()
	bootstrapConfig.ApplyEnvironment(util.GetEnvironmentVariables())
	setupLogger(bootstrapConfig)

	app := &cli.App{
		Name:        "routeledger",
		Usage:       "Record train routes and keep them in JSON files",
		Description: "Without a command an interactive session is started, the same as `routeledger run`",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: config.DefaultPath,
				Usage: "YAML config file",
			},
		},

		Before: func(c *cli.Context) error {
			loadedConfig, err := config.Load(c.String("config"), c.IsSet("config"))
			if err != nil {
				return err
			}

			setupLogger(loadedConfig)
			config.Store(c, loadedConfig)

			return nil
		},

		Action:   ledger.RunInteractive,
		Commands: ledger.RegisterCLI(),
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

// Logs go to stderr so they never mix with the tables and prompts on stdout.
func setupLogger(loggerConfig *config.Config) {
	if loggerConfig.LogFormat != config.LogFormatJSON {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	if loggerConfig.Debug {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}
}
