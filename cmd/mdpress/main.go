package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	mdpress "github.com/mkrylov/go-mdpress"
	"github.com/mkrylov/go-mdpress/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, args, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	if flags.version {
		fmt.Printf("mdpress %s\n", Version)
		return
	}

	// Honor container CPU quotas. Error ignored: maxprocs.Set only fails on
	// an invalid GOMAXPROCS env value, in which case runtime defaults apply.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	if err := realMain(flags, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// realMain resolves configuration and runs the conversion.
func realMain(flags *cliFlags, args []string) error {
	var cfg *config.Config
	if flags.configName != "" {
		loaded, err := config.Load(flags.configName)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	opts, err := buildOptions(flags, cfg, time.Now())
	if err != nil {
		return err
	}

	newService := func() (converter, error) {
		if flags.verbose {
			fmt.Fprintln(os.Stderr, "Loading fonts...")
		}
		return mdpress.NewService(opts...)
	}

	return run(context.Background(), flags, args, newService, os.Stdout)
}
