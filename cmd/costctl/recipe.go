package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/osse101/FoodCost_Go/internal/recipe"
	"github.com/osse101/FoodCost_Go/internal/report"
)

// Output formats for recipeCmd
const (
	formatMarkdown = "markdown"
	formatMsgpack  = "msgpack"
)

// recipeCmd prints the cost sheet of a saved recipe.
type recipeCmd struct {
	id     int64
	format string
	output string
	raw    bool
}

func (*recipeCmd) Name() string     { return "recipe" }
func (*recipeCmd) Synopsis() string { return "print the cost sheet of a saved recipe" }
func (*recipeCmd) Usage() string {
	return `costctl recipe -id <id> [-format markdown|msgpack] [-o <file>] [-raw]

  Markdown goes to the terminal styled unless -raw or -o is given.
  MessagePack needs -o.
`
}

func (c *recipeCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "recipe id")
	f.StringVar(&c.format, "format", formatMarkdown, "output format: markdown or msgpack")
	f.StringVar(&c.output, "o", "", "write to this file instead of stdout")
	f.BoolVar(&c.raw, "raw", false, "print markdown without terminal styling")
}

func (c *recipeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		fmt.Fprintln(stderr, "Error: -id must be a positive recipe id")
		return subcommands.ExitUsageError
	}
	if c.format != formatMarkdown && c.format != formatMsgpack {
		fmt.Fprintf(stderr, "Error: unknown -format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	if c.format == formatMsgpack && c.output == "" {
		fmt.Fprintln(stderr, "Error: -format msgpack needs -o")
		return subcommands.ExitUsageError
	}

	store, cfg, err := openStore(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	rec, err := recipe.NewService(store).GetRecipe(ctx, c.id)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	sheet := report.NewCostSheet(rec, cfg.Currency)

	if err := c.write(sheet); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *recipeCmd) write(sheet *report.CostSheet) (err error) {
	var w io.Writer = stdout
	if c.output != "" {
		f, createErr := os.Create(c.output)
		if createErr != nil {
			return createErr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	if c.format == formatMsgpack {
		return report.EncodeMsgpack(w, sheet)
	}

	md, err := report.RenderMarkdown(sheet)
	if err != nil {
		return err
	}
	if c.output == "" && !c.raw {
		return printMarkdown(w, md)
	}
	_, err = io.WriteString(w, md)
	return err
}
