// Package types defines the data structures shared across filescan.
package types

type (
	// ScanRequest describes a single directory scan.
	// Depth is 0 for the root only, N for N levels of subdirectories,
	// and -1 for no limit.
	ScanRequest struct {
		Root      string `json:"root"`
		Extension string `json:"extension"`
		Depth     int    `json:"depth"`
	}

	// FileMatch is a file found by a scan.
	FileMatch struct {
		Path    string `json:"path"`
		RelPath string `json:"relPath"`
		Name    string `json:"name"`
		Stem    string `json:"stem"`
		Depth   int    `json:"depth"`
	}

	// SkippedDir is a directory whose listing failed during a scan.
	SkippedDir struct {
		Path  string `json:"path"`
		Error string `json:"error"`
	}

	// ScanResult holds the matches of one scan, sorted by path.
	ScanResult struct {
		Request ScanRequest  `json:"request"`
		Matches []FileMatch  `json:"matches"`
		Skipped []SkippedDir `json:"skipped,omitempty"`
	}
)

// Names returns the base names of all matches.
func (r ScanResult) Names() []string {
	names := make([]string, 0, len(r.Matches))
	for _, m := range r.Matches {
		names = append(names, m.Name)
	}
	return names
}

// Stems returns the stems of all matches.
func (r ScanResult) Stems() []string {
	stems := make([]string, 0, len(r.Matches))
	for _, m := range r.Matches {
		stems = append(stems, m.Stem)
	}
	return stems
}
