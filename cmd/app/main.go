// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tokenvault/tokenvault/cmd/app/commands"
	"github.com/tokenvault/tokenvault/internal/app"
	"github.com/tokenvault/tokenvault/internal/config"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "tokenvault",
		Usage:   "Encrypted OAuth token storage service",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					container := app.NewContainer(cfg)
					return commands.RunMigrations(container.Logger(), cfg.DBDriver, cfg.DBConnectionString)
				},
			},
			{
				Name:  "generate-encryption-key",
				Usage: "Generate a new master encryption key for OAUTH_ENCRYPTION_KEY",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGenerateEncryptionKey(os.Stdout)
				},
			},
			{
				Name:  "validate-encryption-key",
				Usage: "Validate the configured master encryption key",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "key",
						Aliases: []string{"k"},
						Value:   "",
						Usage:   "Key to validate (defaults to OAUTH_ENCRYPTION_KEY from the environment)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					candidate := cmd.String("key")
					if candidate == "" {
						candidate = config.Load().OAuthEncryptionKey
					}
					return commands.RunValidateEncryptionKey(os.Stdout, candidate)
				},
			},
			{
				Name:  "create-api-key",
				Usage: "Generate an API key and its Argon2id hash for API_KEY_HASH",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunCreateAPIKey(os.Stdout)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
