// Package results answers searches over collected directories and drops
// directories already seen when overlapping roots repeat them.
package results

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/sahilm/fuzzy"
)

// Mode selects how Search matches.
type Mode int

const (
	// Substring matches paths containing the query, ignoring case.
	Substring Mode = iota
	// Fuzzy matches paths containing the query's characters in order, best first.
	Fuzzy
)

func (m Mode) String() string {
	switch m {
	case Substring:
		return "substring"
	case Fuzzy:
		return "fuzzy"
	default:
		return "unknown"
	}
}

// ParseMode converts a config value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "substring":
		return Substring, nil
	case "fuzzy":
		return Fuzzy, nil
	default:
		return Substring, fmt.Errorf("unknown search mode %q", s)
	}
}

// Next cycles to the other mode.
func (m Mode) Next() Mode {
	if m == Substring {
		return Fuzzy
	}
	return Substring
}

// Seen is a set of paths indexed by their 64-bit xxhash. Paths sharing a hash
// are kept side by side in one bucket, so a collision never drops a distinct path.
type Seen struct {
	hash    func(string) uint64
	buckets map[uint64][]string
}

// NewSeen returns an empty set.
func NewSeen() *Seen {
	return &Seen{hash: xxhash.Sum64String, buckets: make(map[uint64][]string)}
}

// Add records path and reports whether it was new.
func (s *Seen) Add(path string) bool {
	h := s.hash(path)
	bucket := s.buckets[h]
	for _, p := range bucket {
		if p == path {
			return false
		}
	}
	s.buckets[h] = append(bucket, path)
	return true
}

// Reset forgets every recorded path.
func (s *Seen) Reset() {
	s.buckets = make(map[uint64][]string)
}

// Search filters paths by query.
func Search(paths []string, query string, mode Mode) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]string(nil), paths...)
	}

	if mode == Fuzzy {
		matches := fuzzy.Find(query, paths)
		out := make([]string, 0, len(matches))
		for _, m := range matches {
			out = append(out, m.Str)
		}
		return out
	}

	needle := strings.ToLower(query)
	var out []string
	for _, p := range paths {
		if strings.Contains(strings.ToLower(p), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Join renders paths as clipboard text, one per line.
func Join(paths []string) string {
	return strings.Join(paths, "\n")
}
