package batch

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/filescan/internal/filesystem"
	"github.com/taigrr/filescan/internal/scanner"
	"github.com/taigrr/filescan/internal/types"
)

type recordingScanner struct {
	requests []types.ScanRequest
}

func (r *recordingScanner) Scan(req types.ScanRequest) (types.ScanResult, error) {
	r.requests = append(r.requests, req)
	return types.ScanResult{Request: req}, nil
}

func setupScanner(t *testing.T) *scanner.Service {
	t.Helper()
	mem := memfs.New()
	for _, f := range []string{"docs/a.txt", "docs/b.pdf", "docs/sub/c.txt", "downloads/x/y/z.pdf"} {
		require.NoError(t, util.WriteFile(mem, filepath.Join("/home", f), []byte("x"), 0o644))
	}
	return scanner.New(filesystem.New(mem), nil, nil)
}

func TestRunner_Run_Order(t *testing.T) {
	rec := &recordingScanner{}
	var buf bytes.Buffer
	r := New(rec, &buf, nil)

	targets := []types.Target{{Directory: "/a", Depth: 0}, {Directory: "/b", Depth: 2}}
	summary, err := r.Run(context.Background(), targets, []string{".txt", ".pdf"})
	require.NoError(t, err)

	assert.Equal(t, []types.ScanRequest{
		{Root: "/a", Extension: ".txt", Depth: 0},
		{Root: "/a", Extension: ".pdf", Depth: 0},
		{Root: "/b", Extension: ".txt", Depth: 2},
		{Root: "/b", Extension: ".pdf", Depth: 2},
	}, rec.requests)
	assert.Equal(t, types.BatchSummary{Scans: 4}, summary)
}

func TestRunner_Run_Reports(t *testing.T) {
	var buf bytes.Buffer
	r := New(setupScanner(t), &buf, nil)

	targets := []types.Target{
		{Directory: "/home/docs", Depth: 0},
		{Directory: "/home/downloads", Depth: -1},
		{Directory: "/home/missing", Depth: 1},
	}
	summary, err := r.Run(context.Background(), targets, []string{".txt", ".pdf", ".pyx"})
	require.NoError(t, err)

	assert.Equal(t, types.BatchSummary{Scans: 4, Skipped: 5, Matches: 3}, summary)

	out := buf.String()
	assert.Contains(t, out, "\nFiles in /home/docs with extension .txt (current directory only):\nfiles with extensions:\n a.txt\nfile stems:\n a\n")
	assert.Contains(t, out, "Files in /home/downloads with extension .pdf (unlimited recursion):\nfiles with extensions:\n z.pdf\n")
	assert.Contains(t, out, "Files in /home/downloads with extension .txt (unlimited recursion):\nfiles with extensions:\n None found\n")
	assert.Contains(t, out, "⚠️  Unknown extension '.pyx' - skipping")
	assert.Equal(t, 2, strings.Count(out, "❌ Directory /home/missing does not exist - skipping"))
}

func TestRunner_Run_BlankLineOnlyBeforeReports(t *testing.T) {
	var buf bytes.Buffer
	r := New(setupScanner(t), &buf, nil)

	targets := []types.Target{
		{Directory: "/home/missing", Depth: 0},
		{Directory: "/home/docs", Depth: 0},
	}
	_, err := r.Run(context.Background(), targets, []string{".pyx", ".txt"})
	require.NoError(t, err)

	want := "⚠️  Unknown extension '.pyx' - skipping\n" +
		"❌ Directory /home/missing does not exist - skipping\n" +
		"⚠️  Unknown extension '.pyx' - skipping\n" +
		"\nFiles in /home/docs with extension .txt (current directory only):\n" +
		"files with extensions:\n a.txt\n" +
		"file stems:\n a\n"
	assert.Equal(t, want, buf.String())
}

func TestRunner_Run_Cancelled(t *testing.T) {
	rec := &recordingScanner{}
	var buf bytes.Buffer
	r := New(rec, &buf, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := r.Run(ctx, []types.Target{{Directory: "/a"}}, []string{".txt"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.requests)
	assert.Equal(t, types.BatchSummary{}, summary)
}

func TestRunner_Run_Empty(t *testing.T) {
	var buf bytes.Buffer
	r := New(&recordingScanner{}, &buf, nil)

	summary, err := r.Run(context.Background(), nil, []string{".txt"})
	require.NoError(t, err)
	assert.Equal(t, types.BatchSummary{}, summary)
	assert.Empty(t, buf.String())
}
