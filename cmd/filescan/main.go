// Package main implements the filescan command line tool.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/filescan/internal/config"
	"github.com/taigrr/filescan/internal/filesystem"
	"github.com/taigrr/filescan/internal/pathfilter"
	"github.com/taigrr/filescan/internal/scanner"
	"github.com/taigrr/filescan/internal/types"
)

var (
	logLevel string
	logger   = slog.New(slog.DiscardHandler)
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := fang.Execute(
		ctx,
		newRootCommand(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filescan",
		Short: "Find files by extension and convert INI files to JSON",
		Long: `filescan lists the files in a directory that carry a given extension,
printing their names and stems. Scans can stay in the current directory,
descend a fixed number of levels, or recurse without limit. Batches of
directories and extensions can be driven from a YAML file, and the same
operations are available to MCP clients through the serve command.`,
		Example: `filescan scan ~/Downloads --ext .pdf --depth 2
filescan batch --config filescan.yaml
filescan ini2json eg.ini eg.json`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			env := config.Env()
			level := env.LogLevel
			if logLevel != "" {
				level = config.ParseLevel(logLevel)
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error (env FILESCAN_LOG_LEVEL)")

	cmd.AddCommand(
		newScanCommand(),
		newBatchCommand(),
		newINIToJSONCommand(),
		newExtensionsCommand(),
		newServeCommand(),
	)

	return cmd
}

// newScanner wires a scanner over the host filesystem.
func newScanner(filter *types.PathFilterConfig) (*scanner.Service, *pathfilter.PathFilter) {
	pf := pathfilter.New(filter)
	return scanner.New(filesystem.New(nil), pf, logger), pf
}
