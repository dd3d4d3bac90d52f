// Package filesystem provides read-only directory access for scans.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// ErrNotDirectory is returned by CheckDirectory when the path exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Service reads directories through a billy.Filesystem.
type Service struct {
	fs billy.Filesystem
}

// New creates a new Service. A nil filesystem means the host filesystem.
func New(fsys billy.Filesystem) *Service {
	if fsys == nil {
		fsys = NewOS()
	}
	return &Service{fs: fsys}
}

// NewOS returns the host filesystem. Paths passed to it must be absolute.
//
//nolint:ireturn // billy.Filesystem is an interface; signature is dictated by upstream.
func NewOS() billy.Filesystem {
	return osfs.New(string(filepath.Separator))
}

// Listing is the outcome of reading one directory. Err is set when the
// directory could not be read, in which case Entries is empty.
type Listing struct {
	Path    string
	Entries []fs.FileInfo
	Err     error
}

// Skipped reports whether the directory could not be listed.
func (l Listing) Skipped() bool {
	return l.Err != nil
}

// ResolvePath cleans a user-supplied root into an absolute path.
func (s *Service) ResolvePath(path string) (string, error) {
	if path == "" {
		path = "."
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %s - %w", path, err)
	}
	return absPath, nil
}

// CheckDirectory verifies that path exists and is a directory. Symbolic links
// are followed. A missing path yields an error wrapping fs.ErrNotExist.
func (s *Service) CheckDirectory(path string) error {
	info, err := s.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("directory not found: %s: %w", path, fs.ErrNotExist)
		}
		return fmt.Errorf("failed to stat directory: %s - %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrNotDirectory)
	}
	return nil
}

// ListDir reads the entries of dir without following symbolic links. Entries
// are sorted by name.
func (s *Service) ListDir(dir string) Listing {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return Listing{Path: dir, Err: classify(dir, err)}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	return Listing{Path: dir, Entries: entries}
}

// Join joins path elements using the filesystem's separator rules.
func (s *Service) Join(elem ...string) string {
	return s.fs.Join(elem...)
}

// IsSymlink reports whether info describes a symbolic link.
func IsSymlink(info fs.FileInfo) bool {
	return info.Mode()&os.ModeSymlink != 0
}

func classify(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("directory not found: %s - %w", path, err)
	}
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("permission denied: %s - %w", path, err)
	}
	return fmt.Errorf("failed to list directory: %s - %w", path, err)
}
