// Package uri builds file:// URIs for scan matches.
package uri

import (
	"net/url"
	"path/filepath"
	"strings"
)

// FileURI generates a file URI for an absolute path.
// Uses the form file:///absolute/path/to/file with each segment escaped.
func FileURI(absPath string) string {
	slashed := filepath.ToSlash(absPath)

	// Windows drive paths need a leading slash: /C:/dir
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed
	}

	// URI encode the path, but keep slashes as slashes
	parts := strings.Split(slashed, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}

	return "file://" + strings.Join(parts, "/")
}
