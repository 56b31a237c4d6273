package commands

import (
	"context"

	"github.com/dlclark/regexp2"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/rex/pkg/cmdhelper"
	"github.com/wuxler/rex/pkg/errdefs"
	"github.com/wuxler/rex/pkg/xlog"
)

// NewMatchCommand returns a match command.
func NewMatchCommand() *MatchCommand {
	return &MatchCommand{}
}

// MatchCommand compiles a pattern with a Perl/Java-style dialect engine and
// prints all matches found in the inputs.
type MatchCommand struct {
	IgnoreCase bool
	Multiline  bool
}

// ToCLI returns a *cli.Command.
func (c *MatchCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:      "match",
		Usage:     "Match a pattern against input strings",
		ArgsUsage: "PATTERN INPUT [INPUT...]",
		Flags:     c.Flags(),
		Before:    cli.BeforeFunc(cmdhelper.MinimumNArgs(2)),
		Action:    c.Run,
	}
}

// Run implements *cli.Command Action function.
func (c *MatchCommand) Run(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	pattern := args[0]

	opts := regexp2.None
	if c.IgnoreCase {
		opts |= regexp2.IgnoreCase
	}
	if c.Multiline {
		opts |= regexp2.Multiline
	}
	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return errdefs.NewE(errdefs.ErrMalformedExpression, err)
	}
	xlog.FromContext(ctx).Debug("pattern compiled", "pattern", pattern, "inputs", len(args)-1)

	for _, input := range args[1:] {
		m, err := re.FindStringMatch(input)
		if err != nil {
			return err
		}
		for m != nil {
			cmdhelper.Fprintf(cmd.Writer, "%d:%s", m.Index, m.String())
			if m, err = re.FindNextMatch(m); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flags returns a list of cli flags of the commands.
func (c *MatchCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "ignore-case",
			Aliases:     []string{"i"},
			Usage:       "case-insensitive matching",
			Value:       c.IgnoreCase,
			Destination: &c.IgnoreCase,
		},
		&cli.BoolFlag{
			Name:        "multiline",
			Aliases:     []string{"m"},
			Usage:       "^ and $ match at line breaks",
			Value:       c.Multiline,
			Destination: &c.Multiline,
		},
	}
}
