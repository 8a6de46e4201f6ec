package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/pantry"
	"github.com/google/subcommands"
)

type demoCmd struct {
	seed  uint64
	query string

	out io.Writer
}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "print a demo inventory as JSON" }
func (*demoCmd) Usage() string {
	return `demo [-seed N] [-query <jsonpath>]

Print the JSON snapshot of a random inventory, the same one "shell -demo" starts
with for the same seed. With -query, print only what the JSONPath expression
selects, for instance:

  pantry demo -seed 7 -query '$.storages[*].ingredients[*].name'
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.seed, "seed", 0, "seed of the demo data, random when 0")
	f.StringVar(&c.query, "query", "", "JSONPath expression applied to the snapshot")
}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := today()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	inv := pantry.DemoInventory(demoRand(c.seed), on, *defaultCurrency)

	var v any = inv
	if c.query != "" {
		if v, err = pantry.Query(inv, c.query); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if c.out == nil {
		c.out = os.Stdout
	}
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
