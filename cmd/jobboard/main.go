// Command jobboard serves the job offer and job application management API.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

const version = "0.1.0"

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		slog.Error("jobboard failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "jobboard",
		Usage:   "Job offer and job application management API",
		Version: version,
		Action: func(ctx context.Context, _ *cli.Command) error {
			return runServer(ctx)
		},
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, _ *cli.Command) error {
					return runServer(ctx)
				},
			},
			{
				Name:  "migrate",
				Usage: "Apply database migrations and exit",
				Action: func(ctx context.Context, _ *cli.Command) error {
					return runMigrations(ctx)
				},
			},
		},
	}
}
