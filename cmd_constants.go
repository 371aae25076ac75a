package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/google/subcommands"
)

// constantsCmd implements the constants introspection command
type constantsCmd struct {
	backendFlags
}

func (*constantsCmd) Name() string     { return "constants" }
func (*constantsCmd) Synopsis() string { return "List the registered constants and their values" }
func (*constantsCmd) Usage() string {
	return `constants [--decimal|--float|--complex|--unchecked]:
  List the constants bound on the selected backend.
`
}
func (c *constantsCmd) SetFlags(f *flag.FlagSet) { c.backendFlags.register(f) }

func (c *constantsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ev, err := c.build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 %v\n", err)
		return subcommands.ExitFailure
	}

	names := make([]string, 0)
	values := ev.ctx.Constants()
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s = %s\n", name, values[name])
	}
	return subcommands.ExitSuccess
}
