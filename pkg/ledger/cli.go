package ledger

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/travigo/routeledger/pkg/config"
	"github.com/travigo/routeledger/pkg/ctdf"
	"github.com/travigo/routeledger/pkg/display"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "run",
			Usage: "Start an interactive route ledger session",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "load",
					Usage: "routes file to load before the first prompt",
				},
			},
			Action: RunInteractive,
		},
		{
			Name:  "list",
			Usage: "Print the routes stored in a file",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "file",
					Usage:    "routes file to read",
					Required: true,
				},
			},
			Action: func(c *cli.Context) error {
				routes, err := LoadRoutes(c.String("file"))
				if err != nil {
					return cli.Exit(err.Error(), 1)
				}

				display.RenderRoutes(c.App.Writer, routes)

				return nil
			},
		},
		{
			Name:  "select",
			Usage: "Print the routes stored in a file that depart after a given time",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "file",
					Usage:    "routes file to read",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "after",
					Usage:    "cutoff time as HH:MM",
					Required: true,
				},
			},
			Action: func(c *cli.Context) error {
				cutoff, err := ctdf.ParseDepartureTime(c.String("after"))
				if err != nil {
					return cli.Exit(err.Error(), 1)
				}

				routes, err := LoadRoutes(c.String("file"))
				if err != nil {
					return cli.Exit(err.Error(), 1)
				}

				selected, err := ctdf.FilterRoutesDepartingAfter(routes, cutoff)
				if err != nil {
					return cli.Exit(err.Error(), 1)
				}

				display.RenderRoutes(c.App.Writer, selected)

				return nil
			},
		},
	}
}

// RunInteractive is also the default action of the binary, so the load flag
// may not be defined on c.
func RunInteractive(c *cli.Context) error {
	session := NewSession(c.App.Reader, c.App.Writer, c.App.ErrWriter)
	if prompt := config.FromContext(c).Prompt; prompt != "" {
		session.Prompt = prompt
	}

	if path := c.String("load"); path != "" {
		// any failure to preload is fatal
		if err := session.Load(path); err != nil {
			session.report(err)
			return cli.Exit("", 1)
		}
	}

	log.Debug().Msg("Starting interactive session")

	return exitForSessionError(session.Run())
}

// Diagnostics for validation errors are already on the error stream, so the
// exit carries no message of its own.
func exitForSessionError(err error) error {
	var validationError *ValidationError
	if errors.As(err, &validationError) {
		return cli.Exit("", 1)
	}

	return err
}
