package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/osse101/FoodCost_Go/internal/ingredient"
	"github.com/osse101/FoodCost_Go/internal/validation"
)

// importCmd loads a supplier price list into the ingredient store.
type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "save ingredients from a JSON price list" }
func (*importCmd) Usage() string {
	return `costctl import -file <prices.json>

  The file holds {"ingredients": [{"name", "ap_quantity", "ap_unit", "ap_price"}]}.
  Existing ingredients are updated by case-insensitive name.
  The import stops at the first entry that cannot be saved.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "price list to import")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(stderr, "Error: -file is required")
		f.Usage()
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(c.file)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	list, err := ingredient.ParsePriceList(data, validation.NewSchemaValidator())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	store, _, err := openStore(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	n, err := ingredient.ImportPriceList(ctx, ingredient.NewService(store), list)
	fmt.Fprintf(stdout, "imported %d of %d ingredients\n", n, len(list.Ingredients))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
