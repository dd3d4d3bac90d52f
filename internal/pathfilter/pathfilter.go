// Package pathfilter decides which extensions may be scanned and which paths are ignored.
package pathfilter

import (
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/taigrr/filescan/internal/types"
)

// KnownExtensions is the built-in allow-list of scannable extensions.
var KnownExtensions = []string{
	".txt", ".docx", ".pdf", ".py", ".md", ".csv", ".xlsx",
	".jpg", ".png", ".gif", ".mp4", ".mp3", ".zip", ".json",
}

// PathFilter holds the extension allow-list and ignore patterns.
type PathFilter struct {
	ignoredPatterns   []string
	allowedExtensions map[string]struct{}
}

// New creates a new PathFilter with the given configuration.
func New(config *types.PathFilterConfig) *PathFilter {
	pf := &PathFilter{
		allowedExtensions: make(map[string]struct{}, len(KnownExtensions)),
	}
	for _, ext := range KnownExtensions {
		pf.allowedExtensions[ext] = struct{}{}
	}

	if config != nil {
		pf.ignoredPatterns = append(pf.ignoredPatterns, config.IgnoredPatterns...)
		for _, ext := range config.ExtraExtensions {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			pf.allowedExtensions[ext] = struct{}{}
		}
	}

	return pf
}

// IsKnownExtension reports whether ext is on the allow-list. The check is case-insensitive.
func (pf *PathFilter) IsKnownExtension(ext string) bool {
	_, ok := pf.allowedExtensions[strings.ToLower(ext)]
	return ok
}

// Extensions returns the allow-list in sorted order.
func (pf *PathFilter) Extensions() []string {
	exts := make([]string, 0, len(pf.allowedExtensions))
	for ext := range pf.allowedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// IsIgnored checks a slash-separated path relative to the scan root against the
// ignore patterns. A directory also matches "dir/**" style patterns so that the
// whole subtree can be pruned.
func (pf *PathFilter) IsIgnored(relPath string, isDir bool) bool {
	normalizedPath := strings.ReplaceAll(relPath, "\\", "/")

	for _, pattern := range pf.ignoredPatterns {
		normalizedPattern := strings.ReplaceAll(pattern, "\\", "/")
		if globMatch(normalizedPattern, normalizedPath) {
			return true
		}
		if isDir && strings.HasSuffix(normalizedPattern, "/**") &&
			globMatch(strings.TrimSuffix(normalizedPattern, "/**"), normalizedPath) {
			return true
		}
	}

	return false
}

// globMatch treats a malformed pattern as a non-match.
func globMatch(pattern, path string) bool {
	ok, err := doublestar.Match(pattern, path)
	if err != nil {
		return false
	}
	return ok
}
