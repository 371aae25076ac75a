package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&evalCmd{}, "")
	subcommands.Register(&replCmd{}, "")
	subcommands.Register(&operationsCmd{}, "introspect")
	subcommands.Register(&functionsCmd{}, "introspect")
	subcommands.Register(&constantsCmd{}, "introspect")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
