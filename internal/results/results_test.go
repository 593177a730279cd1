package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeen(t *testing.T) {
	s := NewSeen()
	assert.True(t, s.Add("/a"))
	assert.True(t, s.Add("/b"))
	assert.False(t, s.Add("/a"))
	assert.False(t, s.Add("/b"))

	s.Reset()
	assert.True(t, s.Add("/a"), "reset forgets seen paths")
}

func TestSeenKeepsPathsWithSameHash(t *testing.T) {
	s := NewSeen()
	s.hash = func(string) uint64 { return 42 }

	assert.True(t, s.Add("/r/one"))
	assert.True(t, s.Add("/r/two"), "a hash collision must not drop a distinct path")
	assert.False(t, s.Add("/r/one"))
	assert.False(t, s.Add("/r/two"))
	assert.Len(t, s.buckets[42], 2)
}

func TestSearchSubstring(t *testing.T) {
	paths := []string{"/Repos/Alpha", "/repos/beta", "/ml/gamma", "/repos/alphabet"}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query returns all", query: "", want: paths},
		{name: "blank query returns all", query: "   ", want: paths},
		{name: "case insensitive", query: "ALPHA", want: []string{"/Repos/Alpha", "/repos/alphabet"}},
		{name: "trimmed", query: "  beta ", want: []string{"/repos/beta"}},
		{name: "no match", query: "delta", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Search(paths, tt.query, Substring))
		})
	}
}

func TestSearchFuzzy(t *testing.T) {
	paths := []string{"/ml/gamma", "/repos/dirsweep", "/repos/docs", "/tmp"}

	got := Search(paths, "rdsw", Fuzzy)
	require.NotEmpty(t, got)
	assert.Equal(t, "/repos/dirsweep", got[0])
	assert.NotContains(t, got, "/tmp")
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Fuzzy")
	require.NoError(t, err)
	assert.Equal(t, Fuzzy, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, Substring, m)

	_, err = ParseMode("regex")
	assert.Error(t, err)

	assert.Equal(t, Fuzzy, Substring.Next())
	assert.Equal(t, Substring, Fuzzy.Next())
	assert.Equal(t, "fuzzy", Fuzzy.String())
}

func TestSearchReturnsCopy(t *testing.T) {
	paths := []string{"/a", "/b"}
	got := Search(paths, "", Substring)
	got[0] = "changed"
	assert.Equal(t, "/a", paths[0])
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "", Join(nil))
	assert.Equal(t, "/a\n/b", Join([]string{"/a", "/b"}))
}
