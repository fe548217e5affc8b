package main

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/osse101/FoodCost_Go/internal/costing"
	"github.com/osse101/FoodCost_Go/internal/ingredient"
)

// ingredientsCmd searches the saved ingredients.
type ingredientsCmd struct {
	query string
}

func (*ingredientsCmd) Name() string     { return "ingredients" }
func (*ingredientsCmd) Synopsis() string { return "search saved ingredients by name" }
func (*ingredientsCmd) Usage() string {
	return `costctl ingredients -query <text>

  Case-insensitive substring search, at most 10 results.
  Queries shorter than 3 characters match nothing.
`
}

func (c *ingredientsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "query", "", "text contained in the ingredient name")
}

func (c *ingredientsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, cfg, err := openStore(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	found, err := ingredient.NewService(store).SearchIngredients(ctx, c.query)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(found) == 0 {
		fmt.Fprintln(stdout, "no ingredients found")
		return subcommands.ExitSuccess
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tAP QTY\tAP UNIT\tAP PRICE")
	for _, ing := range found {
		fmt.Fprintf(w, "%d\t%s\t%g\t%s\t%s\n", ing.ID, ing.Name, ing.APQuantity, ing.APUnit, costing.FormatCurrency(ing.APPrice, cfg.Currency))
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
