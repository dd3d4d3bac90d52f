// Package report renders scan results and diagnostics for the console.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/taigrr/filescan/internal/scanner"
	"github.com/taigrr/filescan/internal/types"
)

const noneFound = "None found"

// Printer writes reports to a writer. Diagnostics are coloured when the
// writer is a terminal.
type Printer struct {
	out         io.Writer
	colorOutput bool
	fail        *color.Color
	warn        *color.Color
}

// New creates a Printer for out.
func New(out io.Writer) *Printer {
	return &Printer{
		out:         out,
		colorOutput: isTerminal(out),
		fail:        color.New(color.FgRed),
		warn:        color.New(color.FgYellow),
	}
}

// isTerminal mirrors fatih/color's own TTY detection, which honours NO_COLOR.
func isTerminal(w io.Writer) bool {
	if w == os.Stdout || w == os.Stderr {
		return !color.NoColor
	}
	return false
}

// DepthDescription describes a scan depth in words.
func DepthDescription(depth int) string {
	switch depth {
	case scanner.DepthCurrent:
		return "current directory only"
	case scanner.DepthUnlimited:
		return "unlimited recursion"
	default:
		return fmt.Sprintf("%d levels deep", depth)
	}
}

// Write prints the report for one scan.
func (p *Printer) Write(res types.ScanResult) {
	fmt.Fprint(p.out, Format(res))
}

// Format renders the report for one scan.
func Format(res types.ScanResult) string {
	var b strings.Builder
	req := res.Request
	fmt.Fprintf(&b, "Files in %s with extension %s (%s):\n", req.Root, req.Extension, DepthDescription(req.Depth))
	writeList(&b, "files with extensions", res.Names())
	writeList(&b, "file stems", res.Stems())
	return b.String()
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		fmt.Fprintf(b, "%s:\n %s\n", label, noneFound)
		return
	}
	fmt.Fprintf(b, "%s:\n %s\n", label, strings.Join(items, ", "))
}

// Diagnostic prints the skip message for a failed scan validation.
func (p *Printer) Diagnostic(req types.ScanRequest, err error) {
	msg, isWarning := DiagnosticMessage(req, err)
	c := p.fail
	if isWarning {
		c = p.warn
	}
	if p.colorOutput {
		c.Fprintln(p.out, msg)
		return
	}
	fmt.Fprintln(p.out, msg)
}

// DiagnosticMessage returns the message for err and whether it is a warning
// rather than an error.
func DiagnosticMessage(req types.ScanRequest, err error) (string, bool) {
	switch {
	case errors.Is(err, scanner.ErrUnknownExtension):
		return fmt.Sprintf("⚠️  Unknown extension '%s' - skipping", req.Extension), true
	case errors.Is(err, scanner.ErrDirectoryNotFound):
		return fmt.Sprintf("❌ Directory %s does not exist - skipping", req.Root), false
	case errors.Is(err, scanner.ErrNotDirectory):
		return fmt.Sprintf("❌ %s is not a directory - skipping", req.Root), false
	case errors.Is(err, scanner.ErrInvalidDepth):
		return fmt.Sprintf("❌ Invalid depth %d for %s - skipping", req.Depth, req.Root), false
	default:
		return fmt.Sprintf("❌ %s: %v - skipping", req.Root, err), false
	}
}
