package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/osse101/FoodCost_Go/internal/costing"
	"github.com/osse101/FoodCost_Go/internal/units"
)

// lineCmd costs a single recipe line without touching the store.
type lineCmd struct {
	epQuantity float64
	epUnit     string
	yield      float64
	apQuantity float64
	apUnit     string
	apPrice    string
	currency   string
}

func (*lineCmd) Name() string     { return "line" }
func (*lineCmd) Synopsis() string { return "cost one recipe line" }
func (*lineCmd) Usage() string {
	return `costctl line -ep <qty> [-ep-unit <unit>] -yield <percent> -ap <qty> [-ap-unit <unit>] -price <price>

  Prints the AP and EP cost per unit and the extended cost of one line.
  Units default to each. The price accepts "$12.50" style input.
`
}

func (c *lineCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.epQuantity, "ep", 0, "edible portion quantity used")
	f.StringVar(&c.epUnit, "ep-unit", "", "edible portion unit")
	f.Float64Var(&c.yield, "yield", 100, "usable percentage after trimming")
	f.Float64Var(&c.apQuantity, "ap", 0, "as-purchased quantity")
	f.StringVar(&c.apUnit, "ap-unit", "", "as-purchased unit")
	f.StringVar(&c.apPrice, "price", "", "as-purchased price")
	f.StringVar(&c.currency, "c", costing.DefaultCurrency, "display currency")
}

func (c *lineCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	epUnit, err := units.ParseOrDefault(c.epUnit)
	if err != nil {
		fmt.Fprintf(stderr, "Error: -ep-unit: %v\n", err)
		return subcommands.ExitUsageError
	}
	apUnit, err := units.ParseOrDefault(c.apUnit)
	if err != nil {
		fmt.Fprintf(stderr, "Error: -ap-unit: %v\n", err)
		return subcommands.ExitUsageError
	}
	price, err := costing.PriceFromString(c.apPrice)
	if err != nil {
		fmt.Fprintf(stderr, "Error: -price: %v\n", err)
		return subcommands.ExitUsageError
	}

	cost, err := costing.ComputeLineItem(costing.LineItemInput{
		EPQuantity:   c.epQuantity,
		EPUnit:       epUnit,
		YieldPercent: c.yield,
		APQuantity:   c.apQuantity,
		APUnit:       apUnit,
		APPrice:      price,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(stdout, "AP quantity in %s: %g\n", epUnit, cost.ConvertedAPQuantity)
	fmt.Fprintf(stdout, "AP cost per %s:    %s (%g)\n", epUnit, costing.FormatCurrency(cost.APCostPerUnit, c.currency), cost.APCostPerUnit)
	fmt.Fprintf(stdout, "EP cost per %s:    %s (%g)\n", epUnit, costing.FormatCurrency(cost.EPCostPerUnit, c.currency), cost.EPCostPerUnit)
	fmt.Fprintf(stdout, "Extended cost:     %s (%g)\n", costing.FormatCurrency(cost.ExtendedCost, c.currency), cost.ExtendedCost)
	return subcommands.ExitSuccess
}
