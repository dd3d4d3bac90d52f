// Package batch runs a scan for every combination of targets and extensions.
package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/taigrr/filescan/internal/report"
	"github.com/taigrr/filescan/internal/scanner"
	"github.com/taigrr/filescan/internal/types"
)

// Scanner is the scan operation the runner drives.
type Scanner interface {
	Scan(req types.ScanRequest) (types.ScanResult, error)
}

// Runner prints one report per target and extension.
type Runner struct {
	scanner Scanner
	printer *report.Printer
	out     io.Writer
	logger  *slog.Logger
}

// New creates a Runner writing to out.
func New(s Scanner, out io.Writer, logger *slog.Logger) *Runner {
	if s == nil {
		s = scanner.New(nil, nil, logger)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		scanner: s,
		printer: report.New(out),
		out:     out,
		logger:  logger,
	}
}

// Run scans every target with every extension, target by target. Each report
// is preceded by a blank line. Validation failures are printed as diagnostics
// and counted as skipped. It stops early only when ctx is done.
func (r *Runner) Run(ctx context.Context, targets []types.Target, extensions []string) (types.BatchSummary, error) {
	var summary types.BatchSummary

	for _, target := range targets {
		for _, ext := range extensions {
			if err := ctx.Err(); err != nil {
				return summary, fmt.Errorf("batch interrupted: %w", err)
			}

			req := types.ScanRequest{
				Root:      target.Directory,
				Extension: ext,
				Depth:     target.Depth,
			}

			res, err := r.scanner.Scan(req)
			if err != nil {
				summary.Skipped++
				r.logger.Info("scan skipped", "root", req.Root, "extension", req.Extension, "error", err)
				r.printer.Diagnostic(req, err)
				continue
			}

			summary.Scans++
			summary.Matches += len(res.Matches)
			for _, sd := range res.Skipped {
				r.logger.Debug("directory skipped", "dir", sd.Path, "error", sd.Error)
			}
			fmt.Fprintln(r.out)
			r.printer.Write(res)
		}
	}

	return summary, nil
}
