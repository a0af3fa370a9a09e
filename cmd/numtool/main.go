package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/osse101/hypernum/internal/config"
	"github.com/osse101/hypernum/internal/format"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	os.Exit(run(os.Stdout, os.Args[1:]))
}

func newRegistry(f *format.Formatter, tiersPath string) *Registry {
	r := NewRegistry()
	r.Register(&FormatCommand{f: f})
	r.Register(&SlogCommand{f: f})
	r.Register(&OverflowCommand{f: f})
	r.Register(&TierMaxCommand{f: f, tiersPath: tiersPath})
	return r
}

func run(w io.Writer, args []string) int {
	tiersPath := os.Getenv(config.EnvTiersPath)
	if tiersPath == "" {
		tiersPath = config.DefaultTiersPath
	}
	r := newRegistry(format.Default(), tiersPath)

	if len(args) < 1 {
		r.PrintHelp(w)
		return 1
	}
	cmd, ok := r.Get(args[0])
	if !ok {
		fmt.Fprintf(w, "Unknown command: %s\n\n", args[0])
		r.PrintHelp(w)
		return 1
	}

	if err := cmd.Run(w, args[1:]); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			fmt.Fprintf(w, "Usage: %s\n", cmd.Description())
		}
		return 1
	}
	return 0
}
