package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/osse101/FoodCost_Go/internal/units"
)

// unitsCmd lists the supported units.
type unitsCmd struct{}

func (*unitsCmd) Name() string     { return "units" }
func (*unitsCmd) Synopsis() string { return "list the supported units by measurement group" }
func (*unitsCmd) Usage() string {
	return `costctl units

  Lists every unit with its group and its factor to the group base unit.
`
}

func (*unitsCmd) SetFlags(*flag.FlagSet) {}

func (*unitsCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	for _, u := range units.All() {
		info, _ := units.Lookup(u)
		base, _ := units.BaseUnit(info.Group)
		fmt.Fprintf(stdout, "%-13s %-7s 1 = %g %s\n", u, info.Group, info.Factor, base)
	}
	return subcommands.ExitSuccess
}
