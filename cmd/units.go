package cmd

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/etnz/pantry/renderer"
	"github.com/google/subcommands"
)

type unitsCmd struct {
	out io.Writer
}

func (*unitsCmd) Name() string     { return "units" }
func (*unitsCmd) Synopsis() string { return "list the measurement units" }
func (*unitsCmd) Usage() string {
	return `units

List the units an ingredient can be measured in, and their conversion to the
standard unit of their kind.
`
}

func (c *unitsCmd) SetFlags(f *flag.FlagSet) {}

func (c *unitsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.out == nil {
		c.out = os.Stdout
	}
	printMarkdown(c.out, renderer.Units())
	return subcommands.ExitSuccess
}
