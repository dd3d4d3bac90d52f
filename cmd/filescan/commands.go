package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taigrr/filescan/internal/batch"
	"github.com/taigrr/filescan/internal/config"
	"github.com/taigrr/filescan/internal/iniconv"
	"github.com/taigrr/filescan/internal/pathfilter"
	"github.com/taigrr/filescan/internal/types"
)

func newScanCommand() *cobra.Command {
	var (
		extensions []string
		depth      int
		ignore     []string
		extra      []string
	)

	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "List files with the given extensions in one directory",
		Long: `Scan a directory for files ending in each extension and print their
names and stems. --depth 0 stays in the directory, N descends N levels of
subdirectories, and -1 recurses without limit. Problems with the directory
or an unknown extension are reported and skipped.`,
		Example: `filescan scan ~/Documents --ext .pdf --ext .docx
filescan scan . --ext .md --depth -1 --ignore ".git/**"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			root, err := config.ExpandHome(root)
			if err != nil {
				return err
			}

			svc, _ := newScanner(&types.PathFilterConfig{
				IgnoredPatterns: ignore,
				ExtraExtensions: extra,
			})
			runner := batch.New(svc, cmd.OutOrStdout(), logger)

			summary, err := runner.Run(cmd.Context(), []types.Target{{Directory: root, Depth: depth}}, extensions)
			logger.Info("scan finished", "scans", summary.Scans, "skipped", summary.Skipped, "matches", summary.Matches)
			return err
		},
	}

	cmd.Flags().StringSliceVarP(&extensions, "ext", "e", config.Default().Extensions, "extension to match, including the dot (repeatable)")
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "levels of subdirectories to scan (0 = current only, -1 = unlimited)")
	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "glob of relative paths to skip, e.g. \".git/**\" (repeatable)")
	cmd.Flags().StringSliceVar(&extra, "allow-ext", nil, "additional extension to accept beyond the built-in list (repeatable)")

	return cmd
}

func newBatchCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Scan every configured directory for every configured extension",
		Long: `Run a scan for each combination of configured directory and extension.
The configuration file is YAML; without one, ~/Documents (depth 0),
~/Downloads (depth 2) and ~/Desktop (unlimited) are scanned for .docx, .txt
and .pdf files.`,
		Example: `filescan batch
filescan batch --config filescan.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = config.Env().ConfigPath
			}

			cfg := config.Default()
			if configPath != "" {
				var err error
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}

			targets, err := cfg.ExpandedTargets()
			if err != nil {
				return err
			}

			svc, _ := newScanner(&cfg.Filter)
			runner := batch.New(svc, cmd.OutOrStdout(), logger)

			summary, err := runner.Run(cmd.Context(), targets, cfg.Extensions)
			logger.Info("batch finished", "scans", summary.Scans, "skipped", summary.Skipped, "matches", summary.Matches)
			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML batch configuration (env FILESCAN_CONFIG)")

	return cmd
}

func newINIToJSONCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ini2json input.ini [output.json]",
		Short: "Convert an INI file to JSON",
		Long: `Convert an INI file to JSON. Each section becomes an object; keys from
[DEFAULT] are merged into every section. Values are typed where they look
like it: true/yes/on and false/no/off become booleans, digit strings become
integers, digits with a decimal point become floats.`,
		Example: `filescan ini2json eg.ini eg.json`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			output := jsonPathFor(input)
			if len(args) > 1 {
				output = args[1]
			}

			sections, err := iniconv.Convert(input, output)
			if err != nil {
				return err
			}

			logger.Debug("converted ini", "input", input, "output", output, "sections", sections)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d sections to %s\n", sections, output)
			return nil
		},
	}
}

func newExtensionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "extensions",
		Short: "List the extensions that can be scanned",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, ext := range pathfilter.New(nil).Extensions() {
				fmt.Fprintln(cmd.OutOrStdout(), ext)
			}
		},
	}
}

// jsonPathFor swaps the extension of an INI path for .json.
func jsonPathFor(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".json"
}
