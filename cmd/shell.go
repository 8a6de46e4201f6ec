package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/etnz/pantry"
	"github.com/etnz/pantry/date"
	"github.com/etnz/pantry/shell"
	"github.com/google/subcommands"
)

type shellCmd struct {
	demo bool
	seed uint64

	// in and out default to the process stdin and stdout.
	in  io.Reader
	out io.Writer
}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "start the interactive pantry shell" }
func (*shellCmd) Usage() string {
	return `shell [-demo [-seed N]]

Read commands from the standard input until EXIT. Type HELP in the shell for
the list of commands.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.demo, "demo", false, "start with a few storages filled with random batches")
	f.Uint64Var(&c.seed, "seed", 0, "seed of the demo data, random when 0")
}

func (c *shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %q\n", f.Args())
		return subcommands.ExitUsageError
	}
	on, err := today()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	in, out := c.in, c.out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	inv := pantry.NewInventory()
	if c.demo {
		inv = pantry.DemoInventory(demoRand(c.seed), on, *defaultCurrency)
	}

	s := shell.New(inv, in, out, logger(), shell.Config{
		Currency: *defaultCurrency,
		Style:    *styleFlag,
		Today:    func() date.Date { return on },
	})
	if err := s.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// demoRand returns the source of demo data, seeded from the clock when seed is 0.
func demoRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}
