package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/google/subcommands"

	"github.com/osse101/FoodCost_Go/internal/units"
)

// convertCmd converts a quantity between two units of the same group.
type convertCmd struct {
	quantity float64
	from     string
	to       string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert a quantity between units" }
func (*convertCmd) Usage() string {
	return `costctl convert -q <quantity> -from <unit> -to <unit>

  Converts within a measurement group; weight and volume do not mix.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.quantity, "q", 1, "quantity to convert")
	f.StringVar(&c.from, "from", "", "source unit")
	f.StringVar(&c.to, "to", "", "target unit")
}

func (c *convertCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	from, err := units.Parse(c.from)
	if err != nil {
		fmt.Fprintf(stderr, "Error: -from: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := units.Parse(c.to)
	if err != nil {
		fmt.Fprintf(stderr, "Error: -to: %v\n", err)
		return subcommands.ExitUsageError
	}

	out, err := units.Convert(c.quantity, from, to)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(stdout, "%s %s = %s %s\n",
		strconv.FormatFloat(c.quantity, 'f', -1, 64), from,
		strconv.FormatFloat(out, 'f', -1, 64), to)
	return subcommands.ExitSuccess
}
