package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// evalCmd implements the eval command
type evalCmd struct {
	backendFlags
}

func (*evalCmd) Name() string     { return "eval" }
func (*evalCmd) Synopsis() string { return "Evaluate a single mathematical expression" }
func (*evalCmd) Usage() string {
	return `eval [--decimal|--float|--complex|--unchecked] [--implicit-mul] "expression":
  Evaluate expression and print the result.
`
}
func (e *evalCmd) SetFlags(f *flag.FlagSet) { e.backendFlags.register(f) }

func (e *evalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "💥 no expression provided\n")
		return subcommands.ExitUsageError
	}
	expr := strings.Join(args, " ")

	ev, err := e.build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := ev.eval(expr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(result)
	return subcommands.ExitSuccess
}
