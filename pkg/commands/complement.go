package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/rex/pkg/cmdhelper"
	"github.com/wuxler/rex/pkg/rex/charclass"
	"github.com/wuxler/rex/pkg/xlog"
)

// NewComplementCommand returns a complement command.
func NewComplementCommand() *ComplementCommand {
	return &ComplementCommand{
		Format: "text",
	}
}

// ComplementCommand complements a character class expression.
type ComplementCommand struct {
	NoSentinel bool
	Format     string
}

// ToCLI returns a *cli.Command.
func (c *ComplementCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:      "complement",
		Usage:     "Complement a character class expression",
		UsageText: `rex complement "[a-z&&[^bc]]"`,
		ArgsUsage: "CLASS",
		Flags:     c.Flags(),
		Before:    cli.BeforeFunc(cmdhelper.ExactArgs(1)),
		Action:    c.Run,
	}
}

// Run implements *cli.Command Action function.
func (c *ComplementCommand) Run(ctx context.Context, cmd *cli.Command) error {
	expr := cmd.Args().First()
	xlog.FromContext(ctx).Debug("complement class expression", "expr", expr, "sentinel", !c.NoSentinel)
	out, err := charclass.ComplementExpr(expr, charclass.WithSentinel(!c.NoSentinel))
	if err != nil {
		return err
	}
	if c.Format == "json" {
		data, err := cmdhelper.PrettifyJSON(map[string]string{
			"input":  expr,
			"output": out,
		})
		if err != nil {
			return err
		}
		cmdhelper.Fprintf(cmd.Writer, "%s", data)
		return nil
	}
	cmdhelper.Fprintf(cmd.Writer, "%s", out)
	return nil
}

// Flags returns a list of cli flags of the commands.
func (c *ComplementCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-sentinel",
			Usage:       "do not splice the sentinel code point into negated classes opening with a nested class",
			Value:       c.NoSentinel,
			Destination: &c.NoSentinel,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       `output format, oneof ["text", "json"]`,
			Value:       c.Format,
			Destination: &c.Format,
		},
	}
}
