package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command is one chk subcommand. Usage starts with the command name and is
// printed after "chk" in help output; Long falls back to Short.
type Command struct {
	Flags *flag.FlagSet
	Usage string
	Short string
	Long  string
	Exec  func(ctx context.Context, o *IO, args []string) error
}

// Name is the first word of Usage.
func (c *Command) Name() string {
	return strings.Fields(c.Usage)[0]
}

// HelpLine is the command's row in the command listing.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-28s %s", c.Usage, c.Short)
}

func (c *Command) help() string {
	var b strings.Builder

	desc := c.Long
	if desc == "" {
		desc = c.Short
	}

	fmt.Fprintf(&b, "Usage: chk %s\n\n%s\n", c.Usage, desc)

	if c.Flags != nil && c.Flags.HasFlags() {
		fmt.Fprintf(&b, "\nFlags:\n%s", c.Flags.FlagUsages())
	}

	return b.String()
}

// Run parses args and executes the command, returning the exit code.
// --help prints to stdout; flag and command errors go to stderr only.
func (c *Command) Run(ctx context.Context, o *IO, args []string) int {
	c.Flags.SetOutput(&strings.Builder{})

	if err := c.Flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			o.Printf("%s", c.help())

			return 0
		}

		o.ErrPrintln("error:", err)
		o.ErrPrintln(fmt.Sprintf("Run 'chk %s --help' for usage.", c.Name()))

		return 1
	}

	if err := c.Exec(ctx, o, c.Flags.Args()); err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	return 0
}
