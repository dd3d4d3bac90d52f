// Package scanner finds files with a given extension below a directory,
// down to a configurable depth.
//
// Depth 0 lists the root only, a positive depth N descends N levels of
// subdirectories and -1 removes the limit. Directories that cannot be listed
// are recorded in the result and skipped; traversal continues with the rest
// of the tree. Symbolic links to directories are never descended.
package scanner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/taigrr/filescan/internal/filesystem"
	"github.com/taigrr/filescan/internal/pathfilter"
	"github.com/taigrr/filescan/internal/types"
)

// Depth values with special meaning.
const (
	DepthCurrent   = 0
	DepthUnlimited = -1
)

var (
	// ErrInvalidDepth is returned for depths below DepthUnlimited.
	ErrInvalidDepth = errors.New("invalid depth")
	// ErrUnknownExtension is returned when the extension is not on the allow-list.
	ErrUnknownExtension = errors.New("unknown extension")
	// ErrDirectoryNotFound is returned when the root does not exist.
	ErrDirectoryNotFound = errors.New("directory does not exist")
	// ErrNotDirectory is returned when the root exists but is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// Service scans directories for files by extension.
type Service struct {
	fileSystem *filesystem.Service
	pathFilter *pathfilter.PathFilter
	logger     *slog.Logger
}

// New creates a new scanner Service. Nil arguments are replaced by the host
// filesystem, the default filter and a discarding logger.
func New(fsys *filesystem.Service, pf *pathfilter.PathFilter, logger *slog.Logger) *Service {
	if fsys == nil {
		fsys = filesystem.New(nil)
	}
	if pf == nil {
		pf = pathfilter.New(nil)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		fileSystem: fsys,
		pathFilter: pf,
		logger:     logger,
	}
}

// Scan runs req. On a validation failure it returns an empty result together
// with one of the package's sentinel errors; callers should report it and carry
// on. Directories that fail to list are collected in ScanResult.Skipped.
func (s *Service) Scan(req types.ScanRequest) (types.ScanResult, error) {
	result := types.ScanResult{
		Request: req,
		Matches: []types.FileMatch{},
	}

	if err := s.validate(req); err != nil {
		return result, err
	}

	root, err := s.fileSystem.ResolvePath(req.Root)
	if err != nil {
		return result, fmt.Errorf("%w: %s", ErrDirectoryNotFound, req.Root)
	}
	if err := s.fileSystem.CheckDirectory(root); err != nil {
		if errors.Is(err, filesystem.ErrNotDirectory) {
			return result, fmt.Errorf("%w: %s", ErrNotDirectory, req.Root)
		}
		return result, fmt.Errorf("%w: %s", ErrDirectoryNotFound, req.Root)
	}

	s.walk(root, req, &result)

	sort.Slice(result.Matches, func(i, j int) bool {
		return result.Matches[i].Path < result.Matches[j].Path
	})

	return result, nil
}

// validate runs the checks that need no filesystem access.
func (s *Service) validate(req types.ScanRequest) error {
	if req.Depth < DepthUnlimited {
		return fmt.Errorf("%w: %d", ErrInvalidDepth, req.Depth)
	}
	if !s.pathFilter.IsKnownExtension(req.Extension) {
		return fmt.Errorf("%w: %q", ErrUnknownExtension, req.Extension)
	}
	return nil
}

type pending struct {
	dir   string
	rel   string
	level int
}

func (s *Service) walk(root string, req types.ScanRequest, result *types.ScanResult) {
	pattern := "*" + req.Extension
	stack := []pending{{dir: root, level: 0}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		listing := s.fileSystem.ListDir(cur.dir)
		if listing.Skipped() {
			s.logger.Debug("skipping unreadable directory", "dir", cur.dir, "error", listing.Err)
			result.Skipped = append(result.Skipped, types.SkippedDir{
				Path:  cur.dir,
				Error: listing.Err.Error(),
			})
			continue
		}

		descend := req.Depth == DepthUnlimited || cur.level < req.Depth

		// Pushed in reverse so subdirectories pop in name order.
		var subdirs []pending
		for _, entry := range listing.Entries {
			name := entry.Name()
			rel := path.Join(cur.rel, name)
			isDir := entry.IsDir()

			if s.pathFilter.IsIgnored(rel, isDir) {
				continue
			}
			if filesystem.IsSymlink(entry) {
				s.logger.Debug("not following symlink", "path", s.fileSystem.Join(cur.dir, name))
			}

			if matchName(pattern, name) {
				result.Matches = append(result.Matches, types.FileMatch{
					Path:    s.fileSystem.Join(cur.dir, name),
					RelPath: rel,
					Name:    name,
					Stem:    stem(name, req.Extension),
					Depth:   cur.level,
				})
			}

			if isDir && descend {
				subdirs = append(subdirs, pending{
					dir:   s.fileSystem.Join(cur.dir, name),
					rel:   rel,
					level: cur.level + 1,
				})
			}
		}

		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}
}

// stem drops ext from name. A name that is only the extension, such as a
// ".txt" dotfile, is its own stem.
func stem(name, ext string) string {
	if s := strings.TrimSuffix(name, ext); s != "" {
		return s
	}
	return name
}

// matchName matches a single path component against a glob pattern.
func matchName(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}
