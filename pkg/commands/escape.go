package commands

import (
	"context"

	"github.com/spf13/cast"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/rex/pkg/cmdhelper"
	"github.com/wuxler/rex/pkg/errdefs"
	"github.com/wuxler/rex/pkg/rex"
)

// NewEscapeCommand returns an escape command.
func NewEscapeCommand() *EscapeCommand {
	return &EscapeCommand{}
}

// EscapeCommand quotes literal text into a regular expression fragment.
type EscapeCommand struct {
	Codepoint bool
}

// ToCLI returns a *cli.Command.
func (c *EscapeCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:      "escape",
		Usage:     "Escape literal text for use inside a regular expression",
		ArgsUsage: "TEXT",
		Flags:     c.Flags(),
		Before:    cli.BeforeFunc(cmdhelper.ExactArgs(1)),
		Action:    c.Run,
	}
}

// Run implements *cli.Command Action function.
func (c *EscapeCommand) Run(_ context.Context, cmd *cli.Command) error {
	arg := cmd.Args().First()
	if c.Codepoint {
		n, err := cast.ToInt32E(arg)
		if err != nil {
			return errdefs.Newf(errdefs.ErrInvalidParameter, "invalid code point %q", arg)
		}
		cmdhelper.Fprintf(cmd.Writer, "%s", rex.Codepoint(rune(n)))
		return nil
	}
	cmdhelper.Fprintf(cmd.Writer, "%s", rex.Text(arg))
	return nil
}

// Flags returns a list of cli flags of the commands.
func (c *EscapeCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "codepoint",
			Aliases:     []string{"c"},
			Usage:       "treat TEXT as a numeric code point, e.g. 65 or 0x41",
			Value:       c.Codepoint,
			Destination: &c.Codepoint,
		},
	}
}
