// Package main implements a tool that applies Game Genie codes to ROM images.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/nesgenie/internal/cli"
	"github.com/retroenv/nesgenie/internal/config"
	"github.com/retroenv/nesgenie/internal/options"
	"github.com/retroenv/nesgenie/internal/pipeline"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Flags)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			if msg := usageErr.Error(); msg != "" {
				logger.Error(msg)
			}
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(config.ExitUsage)
	}

	if opts.Version {
		fmt.Printf("nesgenie %s\n", buildinfo.Version(version, commit, date))
		return
	}

	logger := config.CreateLogger(opts.Flags)
	printBanner(logger, opts)

	patches, err := pipeline.New(logger).Execute(ctx, opts)
	if err != nil {
		logger.Error("Patching failed", log.Err(err))
		os.Exit(config.ExitStatus(err))
	}

	if opts.DryRun {
		logger.Info("Dry run, output file was not kept", log.Int("codes", len(patches)))
		return
	}
	logger.Info("Patched ROM", log.String("file", opts.Output), log.Int("codes", len(patches)))
}

// printBanner prints application version information
func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}

	logger.Info("nesgenie", log.String("version", buildinfo.Version(version, commit, date)))
}
