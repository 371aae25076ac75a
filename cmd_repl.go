package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"
)

// replCmd implements the REPL command
type replCmd struct {
	backendFlags
}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Start an interactive evaluator session" }
func (*replCmd) Usage() string {
	return `repl [--decimal|--float|--complex|--unchecked] [--implicit-mul]:
  Start an interactive REPL. Type 'exit' or 'quit' to leave.
`
}
func (r *replCmd) SetFlags(f *flag.FlagSet) { r.backendFlags.register(f) }

func repl(ev *namedEvaluator, rl *readline.Instance) {
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "💥 %v\n", err)
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return
		}

		result, err := ev.eval(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(result)
	}
}

func (r *replCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ev, err := r.build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 %v\n", err)
		return subcommands.ExitFailure
	}

	rl, err := readline.New(fmt.Sprintf("mathex(%s)> ", ev.name))
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 failed to start REPL: %v\n", err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	fmt.Printf("mathex %s evaluator -- type 'exit' or 'quit' to leave\n", ev.name)
	repl(ev, rl)
	return subcommands.ExitSuccess
}
