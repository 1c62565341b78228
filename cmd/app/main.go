// Package main provides the entry point for the administration CLI.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	apperrors "github.com/allisson/tenantadmin/internal/errors"
)

const version = "1.0.0"

// Exit codes: 0 on success, 2 on invalid arguments, 1 on any other failure.
func main() {
	cmd := &cli.Command{
		Name:     "tenantadmin",
		Usage:    "Administer platform subjects, credentials, and limits",
		Version:  version,
		Commands: getCommands(),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		if apperrors.Is(err, apperrors.ErrInvalidInput) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
