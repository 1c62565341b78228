package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/tenantadmin/cmd/app/commands"
	"github.com/allisson/tenantadmin/internal/app"
	"github.com/allisson/tenantadmin/internal/config"
)

func getSystemCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "db",
			Usage: "Inspect the document store directly",
			Commands: []*cli.Command{
				{
					Name:      "get",
					Usage:     "Print the contents of a database as JSON",
					ArgsUsage: "<database>",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:    "view",
							Aliases: []string{"v"},
							Usage:   "Query a design view instead of the primary index (design/view)",
						},
						&cli.BoolFlag{
							Name:    "docs",
							Aliases: []string{"d"},
							Usage:   "Include the full documents in view results",
						},
					},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						database, err := requireFirstArg(cmd, "database")
						if err != nil {
							return err
						}

						cfg := config.Load()
						container := app.NewContainer(cfg)

						return commands.RunDumpDatabase(
							ctx,
							container.Dumper(),
							container.Logger(),
							database,
							cmd.String("view"),
							cmd.Bool("docs"),
							commands.DefaultIO(),
						)
					},
				},
			},
		},
		{
			Name:  "syslog",
			Usage: "Retrieve platform component logs",
			Commands: []*cli.Command{
				{
					Name:      "get",
					Usage:     "Print merged component logs, optionally filtered",
					ArgsUsage: "[component]...",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:    "tid",
							Aliases: []string{"t"},
							Usage:   "Only lines of this transaction id",
						},
						&cli.StringFlag{
							Name:    "grep",
							Aliases: []string{"g"},
							Usage:   "Only lines matching this expression",
						},
					},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						cfg := config.Load()
						container := app.NewContainer(cfg)

						return commands.RunGetLogs(
							ctx,
							container.SyslogReader(),
							container.Logger(),
							cmd.Args().Slice(),
							cmd.String("tid"),
							cmd.String("grep"),
							commands.DefaultIO(),
						)
					},
				},
			},
		},
	}
}
