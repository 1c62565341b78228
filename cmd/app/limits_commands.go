package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/tenantadmin/cmd/app/commands"
	"github.com/allisson/tenantadmin/internal/app"
	"github.com/allisson/tenantadmin/internal/config"
	limitsDomain "github.com/allisson/tenantadmin/internal/limits/domain"
)

// limitsUpdateFromFlags builds a partial limits record from the flags the
// operator actually set, so unset flags retain their stored values.
func limitsUpdateFromFlags(cmd *cli.Command) *limitsDomain.Limits {
	update := &limitsDomain.Limits{}
	if cmd.IsSet("invocations-per-minute") {
		v := int(cmd.Int("invocations-per-minute"))
		update.InvocationsPerMinute = &v
	}
	if cmd.IsSet("fires-per-minute") {
		v := int(cmd.Int("fires-per-minute"))
		update.FiresPerMinute = &v
	}
	if cmd.IsSet("concurrent-invocations") {
		v := int(cmd.Int("concurrent-invocations"))
		update.ConcurrentInvocations = &v
	}
	if cmd.IsSet("allowed-kinds") {
		update.AllowedKinds = cmd.StringSlice("allowed-kinds")
	}
	if cmd.IsSet("store-activations") {
		v := cmd.Bool("store-activations")
		update.StoreActivations = &v
	}
	return update
}

func getLimitsCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "limits",
			Usage: "Administer per-namespace resource limits",
			Commands: []*cli.Command{
				{
					Name:      "set",
					Usage:     "Set resource limits for a namespace",
					ArgsUsage: "<namespace>",
					Flags: []cli.Flag{
						&cli.IntFlag{
							Name:  "invocations-per-minute",
							Usage: "Maximum action invocations per minute",
						},
						&cli.IntFlag{
							Name:  "fires-per-minute",
							Usage: "Maximum trigger fires per minute",
						},
						&cli.IntFlag{
							Name:  "concurrent-invocations",
							Usage: "Maximum concurrent action invocations",
						},
						&cli.StringSliceFlag{
							Name:  "allowed-kinds",
							Usage: "Action kinds the namespace may use",
						},
						&cli.BoolFlag{
							Name:  "store-activations",
							Usage: "Whether activation records are stored",
						},
					},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						namespace, err := requireFirstArg(cmd, "namespace")
						if err != nil {
							return err
						}

						cfg := config.Load()
						container := app.NewContainer(cfg)

						return commands.RunSetLimits(
							ctx,
							container.LimitsUseCase(),
							container.Logger(),
							namespace,
							limitsUpdateFromFlags(cmd),
							commands.DefaultIO(),
						)
					},
				},
				{
					Name:      "get",
					Usage:     "Print the resource limits set for a namespace",
					ArgsUsage: "<namespace>",
					Action: func(ctx context.Context, cmd *cli.Command) error {
						namespace, err := requireFirstArg(cmd, "namespace")
						if err != nil {
							return err
						}

						cfg := config.Load()
						container := app.NewContainer(cfg)

						return commands.RunGetLimits(
							ctx,
							container.LimitsUseCase(),
							container.Logger(),
							namespace,
							commands.DefaultIO(),
						)
					},
				},
				{
					Name:      "delete",
					Usage:     "Delete a namespace's limits, restoring system defaults",
					ArgsUsage: "<namespace>",
					Action: func(ctx context.Context, cmd *cli.Command) error {
						namespace, err := requireFirstArg(cmd, "namespace")
						if err != nil {
							return err
						}

						cfg := config.Load()
						container := app.NewContainer(cfg)

						return commands.RunDeleteLimits(
							ctx,
							container.LimitsUseCase(),
							container.Logger(),
							namespace,
							commands.DefaultIO(),
						)
					},
				},
			},
		},
	}
}
