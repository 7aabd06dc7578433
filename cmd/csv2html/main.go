package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand indicates help was requested for a command that does not exist.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command line and returns the process exit code.
// A first argument that is not a command name starts an implicit convert.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	var err error
	cmd, rest := args[1], args[2:]
	switch {
	case cmd == "convert":
		err = runConvert(ctx, rest, env)
	case cmd == "config":
		err = runConfig(rest, env)
	case cmd == "styles":
		err = runStyles(rest, env)
	case cmd == "version":
		fmt.Fprintf(env.Stdout, "csv2html %s\n", Version)
	case cmd == "help":
		err = runHelp(rest, env)
	case cmd == "completion":
		err = runCompletion(rest, env)
	case !isCommand(cmd):
		err = runConvert(ctx, args[1:], env)
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		if errors.Is(err, ErrUsage) {
			fmt.Fprintln(env.Stderr, "Run 'csv2html help convert' for usage.")
		}
	}
	return exitCodeFor(err)
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	switch arg {
	case "convert", "config", "styles", "version", "help", "completion":
		return true
	}
	return false
}
