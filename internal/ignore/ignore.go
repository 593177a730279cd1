// Package ignore decides which directories a crawl prunes.
//
// Patterns are plain substrings matched against the full candidate path. They are
// not globs and are not anchored to path segments, so "git" prunes "/src/digital"
// as well as "/src/.git". Callers who want segment matching can include the path
// separator in the pattern, e.g. "/build/".
package ignore

import "strings"

// ShouldPrune reports whether any pattern occurs anywhere in path.
func ShouldPrune(path string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

// Snapshot is an immutable copy of an ignore list taken when a crawl starts.
// Edits to the list it was built from never reach an in-flight crawl.
type Snapshot struct {
	patterns []string
}

// NewSnapshot copies patterns.
func NewSnapshot(patterns []string) Snapshot {
	if len(patterns) == 0 {
		return Snapshot{}
	}
	cp := make([]string, len(patterns))
	copy(cp, patterns)
	return Snapshot{patterns: cp}
}

// Prune reports whether path matches any pattern in the snapshot.
func (s Snapshot) Prune(path string) bool {
	return ShouldPrune(path, s.patterns)
}

// Patterns returns a copy of the snapshot's patterns.
func (s Snapshot) Patterns() []string {
	return append([]string(nil), s.patterns...)
}

// Len returns the number of patterns.
func (s Snapshot) Len() int {
	return len(s.patterns)
}
