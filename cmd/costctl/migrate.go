package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// migrateCmd brings the configured store's schema up to date.
type migrateCmd struct{}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "apply pending schema migrations" }
func (*migrateCmd) Usage() string {
	return `costctl [-driver sqlite|postgres] [-sqlite <file>] migrate

  Opens the store, applying any pending migrations, and exits.
`
}

func (*migrateCmd) SetFlags(*flag.FlagSet) {}

func (*migrateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, cfg, err := openStore(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	fmt.Fprintf(stdout, "%s schema is up to date\n", cfg.DBDriver)
	return subcommands.ExitSuccess
}
