package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/tenantadmin/cmd/app/commands"
	"github.com/allisson/tenantadmin/internal/app"
	"github.com/allisson/tenantadmin/internal/config"
	apperrors "github.com/allisson/tenantadmin/internal/errors"
)

// requireFirstArg returns the first positional argument, or ErrInvalidInput
// when it is missing.
func requireFirstArg(cmd *cli.Command, name string) (string, error) {
	arg := cmd.Args().First()
	if arg == "" {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, fmt.Sprintf("%s argument is required", name))
	}
	return arg, nil
}

func getIdentityCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "identity",
			Usage: "Administer subjects and their namespace credentials",
			Commands: []*cli.Command{
				{
					Name:      "create",
					Usage:     "Issue a namespace credential for a subject",
					ArgsUsage: "<subject>",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:    "namespace",
							Aliases: []string{"ns"},
							Usage:   "Target namespace (defaults to the subject identifier)",
						},
						&cli.StringFlag{
							Name:    "auth",
							Aliases: []string{"u"},
							Usage:   "Use this uuid:key pair instead of generating one",
						},
						&cli.BoolFlag{
							Name:    "revoke",
							Aliases: []string{"r"},
							Usage:   "Rotate the credential of an existing namespace",
						},
						&cli.BoolFlag{
							Name:  "gen-only",
							Usage: "Generate or validate credentials without storing them",
						},
						&cli.BoolFlag{
							Name:    "silent",
							Aliases: []string{"s"},
							Usage:   "Do not print the resulting credential pair",
						},
					},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						subject, err := requireFirstArg(cmd, "subject")
						if err != nil {
							return err
						}

						cfg := config.Load()
						container := app.NewContainer(cfg)

						return commands.RunCreateIdentity(
							ctx,
							container.IdentityUseCase(),
							container.Logger(),
							subject,
							cmd.String("namespace"),
							cmd.String("auth"),
							cmd.Bool("revoke"),
							cmd.Bool("gen-only"),
							cmd.Bool("silent"),
							commands.DefaultIO(),
						)
					},
				},
				{
					Name:      "get",
					Usage:     "Print a subject's namespace credentials",
					ArgsUsage: "<subject>",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:    "namespace",
							Aliases: []string{"ns"},
							Usage:   "Namespace to look up (defaults to the subject identifier)",
						},
						&cli.BoolFlag{
							Name:    "all",
							Aliases: []string{"a"},
							Usage:   "Print every namespace binding",
						},
					},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						subject, err := requireFirstArg(cmd, "subject")
						if err != nil {
							return err
						}

						cfg := config.Load()
						container := app.NewContainer(cfg)

						return commands.RunGetIdentity(
							ctx,
							container.IdentityUseCase(),
							container.Logger(),
							subject,
							cmd.String("namespace"),
							cmd.Bool("all"),
							commands.DefaultIO(),
						)
					},
				},
				{
					Name:      "delete",
					Usage:     "Delete a subject, or one of its namespace bindings",
					ArgsUsage: "<subject>",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:    "namespace",
							Aliases: []string{"ns"},
							Usage:   "Delete only this namespace binding",
						},
					},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						subject, err := requireFirstArg(cmd, "subject")
						if err != nil {
							return err
						}

						cfg := config.Load()
						container := app.NewContainer(cfg)

						return commands.RunDeleteIdentity(
							ctx,
							container.IdentityUseCase(),
							container.Logger(),
							subject,
							cmd.String("namespace"),
							commands.DefaultIO(),
						)
					},
				},
				{
					Name:      "whois",
					Usage:     "Resolve a uuid:key credential pair to its subject",
					ArgsUsage: "<uuid:key>",
					Action: func(ctx context.Context, cmd *cli.Command) error {
						authKey, err := requireFirstArg(cmd, "uuid:key")
						if err != nil {
							return err
						}

						cfg := config.Load()
						container := app.NewContainer(cfg)

						return commands.RunWhois(
							ctx,
							container.IdentityUseCase(),
							container.Logger(),
							authKey,
							commands.DefaultIO(),
						)
					},
				},
				{
					Name:      "list",
					Usage:     "List the credentials bound to a namespace",
					ArgsUsage: "<namespace>",
					Flags: []cli.Flag{
						&cli.IntFlag{
							Name:    "pick",
							Aliases: []string{"p"},
							Value:   1,
							Usage:   "Maximum number of identities to print",
						},
						&cli.BoolFlag{
							Name:    "all",
							Aliases: []string{"a"},
							Usage:   "Print every identity, ignoring the pick limit",
						},
						&cli.BoolFlag{
							Name:    "keys-only",
							Aliases: []string{"k"},
							Usage:   "Print only the uuid:key pairs",
						},
					},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						namespace, err := requireFirstArg(cmd, "namespace")
						if err != nil {
							return err
						}

						cfg := config.Load()
						container := app.NewContainer(cfg)

						return commands.RunListNamespace(
							ctx,
							container.IdentityUseCase(),
							container.Logger(),
							namespace,
							int(cmd.Int("pick")),
							cmd.Bool("all"),
							cmd.Bool("keys-only"),
							commands.DefaultIO(),
						)
					},
				},
				{
					Name:      "block",
					Usage:     "Block one or more subjects",
					ArgsUsage: "<subject>...",
					Action: func(ctx context.Context, cmd *cli.Command) error {
						if cmd.Args().Len() == 0 {
							return apperrors.Wrap(apperrors.ErrInvalidInput, "at least one subject argument is required")
						}

						cfg := config.Load()
						container := app.NewContainer(cfg)

						return commands.RunSetBlocked(
							ctx,
							container.IdentityUseCase(),
							container.Logger(),
							cmd.Args().Slice(),
							true,
							commands.DefaultIO(),
						)
					},
				},
				{
					Name:      "unblock",
					Usage:     "Unblock one or more subjects",
					ArgsUsage: "<subject>...",
					Action: func(ctx context.Context, cmd *cli.Command) error {
						if cmd.Args().Len() == 0 {
							return apperrors.Wrap(apperrors.ErrInvalidInput, "at least one subject argument is required")
						}

						cfg := config.Load()
						container := app.NewContainer(cfg)

						return commands.RunSetBlocked(
							ctx,
							container.IdentityUseCase(),
							container.Logger(),
							cmd.Args().Slice(),
							false,
							commands.DefaultIO(),
						)
					},
				},
			},
		},
	}
}
