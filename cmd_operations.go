package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/google/subcommands"
)

// operationsCmd implements the operations introspection command
type operationsCmd struct {
	backendFlags
}

func (*operationsCmd) Name() string     { return "operations" }
func (*operationsCmd) Synopsis() string { return "List the registered binary and unary operators" }
func (*operationsCmd) Usage() string {
	return `operations [--decimal|--float|--complex|--unchecked]:
  List the operators available on the selected backend.
`
}
func (o *operationsCmd) SetFlags(f *flag.FlagSet) { o.backendFlags.register(f) }

func (o *operationsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ev, err := o.build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 %v\n", err)
		return subcommands.ExitFailure
	}

	binary, unary := ev.ctx.OperatorNames()
	sort.Strings(binary)
	sort.Strings(unary)

	fmt.Println("binary:")
	for _, name := range binary {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("unary:")
	for _, name := range unary {
		fmt.Printf("  %s\n", name)
	}
	return subcommands.ExitSuccess
}
