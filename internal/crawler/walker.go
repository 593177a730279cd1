package crawler

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mordilloSan/go-logger/logger"

	"github.com/tw93/dirsweep/internal/ignore"
)

// Walk sends every directory under root, root included, in depth-first pre-order.
// Symbolic links are followed. A directory matching snap is skipped together with
// everything beneath it. Entries that cannot be read are skipped silently, and a
// root that does not exist or is not a directory yields nothing.
//
// sent counts the accepted messages. stopped is true when the sink refused a
// message, in which case the rest of root was not visited.
func Walk(root string, snap ignore.Snapshot, sink Sink) (sent int, stopped bool) {
	info, err := os.Stat(root)
	if err != nil {
		logger.Debugf("walk: skipping root %s: %v", root, err)
		return 0, false
	}
	if !info.IsDir() {
		logger.Debugf("walk: root %s is not a directory", root)
		return 0, false
	}

	w := &walker{snap: snap, sink: sink}
	stopped = w.visit(root, info, nil)
	return w.sent, stopped
}

type walker struct {
	snap ignore.Snapshot
	sink Sink
	sent int
}

// visit reports whether the sink refused a message.
func (w *walker) visit(path string, info os.FileInfo, ancestors []os.FileInfo) bool {
	if w.snap.Prune(path) {
		return false
	}
	if err := w.sink.Send(DirectoryDiscovered{Path: path}); err != nil {
		logger.Debugf("walk: sink refused %s: %v", path, err)
		return true
	}
	w.sent++

	// ReadDir returns what it managed to read alongside the error.
	entries, err := os.ReadDir(path)
	if err != nil {
		logger.Debugf("walk: reading %s: %v", path, err)
	}

	ancestors = append(ancestors, info)
	for _, entry := range entries {
		isLink := entry.Type()&fs.ModeSymlink != 0
		if !isLink && !entry.IsDir() {
			continue
		}

		child := filepath.Join(path, entry.Name())
		childInfo, err := os.Stat(child)
		if err != nil {
			logger.Debugf("walk: stat %s: %v", child, err)
			continue
		}
		if !childInfo.IsDir() {
			continue
		}
		if isLink && isAncestor(childInfo, ancestors) {
			logger.Debugf("walk: %s links back to one of its ancestors", child)
			continue
		}

		if w.visit(child, childInfo, ancestors) {
			return true
		}
	}
	return false
}

func isAncestor(info os.FileInfo, ancestors []os.FileInfo) bool {
	for _, a := range ancestors {
		if os.SameFile(info, a) {
			return true
		}
	}
	return false
}
