// Package main is the entry of the application.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/rex/pkg/cmdhelper"
	"github.com/wuxler/rex/pkg/commands"
	"github.com/wuxler/rex/pkg/xlog"
)

const (
	appName = "rex"
)

func main() {
	app := cli.Command{
		Name:                  appName,
		Usage:                 "Rex is a tool to build and transform readable regular expressions",
		Suggest:               true,
		EnableShellCompletion: true,
		HideVersion:           true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Bool("debug") {
				config := xlog.NewConfig()
				config.Level = slog.LevelDebug
				xlog.SetDefault(xlog.New(config))
			}
			return nil
		},
		Commands: []*cli.Command{
			commands.NewVersionCommand().ToCLI(),
			commands.NewComplementCommand().ToCLI(),
			commands.NewEscapeCommand().ToCLI(),
			commands.NewMatchCommand().ToCLI(),
		},
		ExitErrHandler: func(ctx context.Context, c *cli.Command, err error) {
			cli.HandleExitCoder(err)
			cmdhelper.Fprintf(c.ErrWriter, "Error: %+v\n", err)
			os.Exit(1)
		},
	}
	//nolint:errcheck // already checked in root command ExitErrHandler
	_ = app.Run(context.Background(), os.Args)
}
