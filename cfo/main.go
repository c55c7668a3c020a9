package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/tcgdx/cardfolio/cmd"
)

// completion describes the CLI for shell completion. It runs before flag
// parsing and exits on its own when invoked by the shell.
func completion() {
	files := predict.Files("*.jsonl")
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"price":         {Flags: map[string]complete.Predictor{"l": predict.Nothing, "c": predict.Nothing}},
			"opportunities": {Flags: map[string]complete.Predictor{"rate": predict.Nothing, "json": predict.Nothing}},
			"value":         {},
			"history":       {Flags: map[string]complete.Predictor{"days": predict.Nothing}},
			"fetch":         {Args: predict.Set{"myp", "pricecharting"}},
			"topic":         {Args: predict.Set{"*", "pricing", "arbitrage", "portfolio", "sources"}},
			"assist":        {},
		},
		Flags: map[string]complete.Predictor{
			"local-file":     files,
			"reference-file": files,
			"portfolio-file": files,
		},
	}
	c.Complete("cfo")
}

func main() {
	completion()

	// Source credentials from the working directory's .env, if any.
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
