package crawler

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// mkdirs creates each slash-separated relative directory under base.
func mkdirs(t *testing.T, base string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(base, filepath.FromSlash(d)), 0755))
	}
}

func touch(t *testing.T, base, rel string) {
	t.Helper()
	path := filepath.Join(base, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func symlinkOrSkip(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
}

// recordSink keeps every message it accepts.
type recordSink struct {
	mu   sync.Mutex
	msgs []Message
}

func (s *recordSink) Send(m Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, m)
	return nil
}

func (s *recordSink) paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return discovered(s.msgs)
}

func (s *recordSink) messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.msgs...)
}

// rejectSink refuses directory messages whose path satisfies reject, as a consumer
// that went away partway through a root would.
type rejectSink struct {
	recordSink
	reject  func(path string) bool
	refused int
}

func (s *rejectSink) Send(m Message) error {
	if d, ok := m.(DirectoryDiscovered); ok && s.reject(d.Path) {
		s.mu.Lock()
		s.refused++
		s.mu.Unlock()
		return errors.New("consumer gone")
	}
	return s.recordSink.Send(m)
}

// hookSink records every message and calls on for each directory after
// recording it.
type hookSink struct {
	recordSink
	on func(path string)
}

func (s *hookSink) Send(m Message) error {
	if err := s.recordSink.Send(m); err != nil {
		return err
	}
	if d, ok := m.(DirectoryDiscovered); ok {
		s.on(d.Path)
	}
	return nil
}

func discovered(msgs []Message) []string {
	var out []string
	for _, m := range msgs {
		if d, ok := m.(DirectoryDiscovered); ok {
			out = append(out, d.Path)
		}
	}
	return out
}

func completions(msgs []Message) int {
	n := 0
	for _, m := range msgs {
		if _, ok := m.(SessionComplete); ok {
			n++
		}
	}
	return n
}

func under(root, path string) bool {
	return path == root || strings.HasPrefix(path, root+string(filepath.Separator))
}
