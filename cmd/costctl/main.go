// Command costctl works with food costs from the terminal: unit conversion,
// one-off line costing, and reports on the recipes saved by the service.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

// commands is the set registered on the default commander
var commands = []subcommands.Command{
	&unitsCmd{},
	&convertCmd{},
	&lineCmd{},
	&migrateCmd{},
	&ingredientsCmd{},
	&importCmd{},
	&recipeCmd{},
}

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
