package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/google/subcommands"
)

// functionsCmd implements the functions introspection command
type functionsCmd struct {
	backendFlags
}

func (*functionsCmd) Name() string     { return "functions" }
func (*functionsCmd) Synopsis() string { return "List the registered variadic functions" }
func (*functionsCmd) Usage() string {
	return `functions [--decimal|--float|--complex|--unchecked]:
  List the n-ary functions available on the selected backend.
`
}
func (c *functionsCmd) SetFlags(f *flag.FlagSet) { c.backendFlags.register(f) }

func (c *functionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ev, err := c.build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 %v\n", err)
		return subcommands.ExitFailure
	}

	names := ev.ctx.FunctionNames()
	sort.Strings(names)
	for _, name := range names {
		fmt.Println(name)
	}
	return subcommands.ExitSuccess
}
