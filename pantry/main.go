// Command pantry tracks ingredients across storages.
//
// Without a subcommand it starts the interactive shell.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/pantry/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Answers shell completion requests and exits, when there is one.
	cmd.Completion().Complete("pantry")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	if flag.NArg() == 0 {
		flag.CommandLine.Parse(append(os.Args[1:], "shell"))
	}

	if sub := flag.Arg(0); !registered(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, command subcommands.Command) {
		if command.Name() == name {
			found = true
		}
	})
	return found
}
