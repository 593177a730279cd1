package crawler

import (
	"time"

	"github.com/google/uuid"
	"github.com/mordilloSan/go-logger/logger"
	"golang.org/x/sync/errgroup"

	"github.com/tw93/dirsweep/internal/ignore"
)

// Summary describes a finished session. It is informational only.
type Summary struct {
	Roots       int
	Directories int
	Stopped     int // roots cut short by a refused send
	Elapsed     time.Duration
}

// Run walks roots in order with the same snapshot and sink, then sends one
// SessionComplete. The completion is attempted even when every root failed or the
// sink is already closed.
func Run(roots []string, snap ignore.Snapshot, sink Sink) Summary {
	start := time.Now()
	sum := Summary{Roots: len(roots)}

	for _, root := range roots {
		logger.Debugf("crawl: walking %s", root)
		sent, stopped := Walk(root, snap, sink)
		sum.Directories += sent
		if stopped {
			sum.Stopped++
		}
		logger.Debugf("crawl: finished %s (%d directories, stopped=%t)", root, sent, stopped)
	}

	if err := sink.Send(SessionComplete{}); err != nil {
		logger.Debugf("crawl: completion not delivered: %v", err)
	}
	sum.Elapsed = time.Since(start)
	return sum
}

// SessionID identifies one Start call in the logs.
type SessionID string

// Crawler owns the stream that sessions write into and the goroutines that run them.
// It does not stop a caller from starting a session while another is in flight.
type Crawler struct {
	stream *Stream
	group  errgroup.Group
	onDone func(SessionID, Summary)
	newID  func() SessionID
}

// Option configures a Crawler.
type Option func(*Crawler)

// WithStream makes the Crawler write into s instead of a fresh stream.
func WithStream(s *Stream) Option {
	return func(c *Crawler) {
		c.stream = s
	}
}

// WithOnDone registers a callback run on the session goroutine after each session,
// once its SessionComplete has been sent.
func WithOnDone(fn func(SessionID, Summary)) Option {
	return func(c *Crawler) {
		c.onDone = fn
	}
}

// New returns a Crawler ready to Start sessions.
func New(opts ...Option) *Crawler {
	c := &Crawler{
		newID: func() SessionID { return SessionID(uuid.NewString()) },
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.stream == nil {
		c.stream = NewStream()
	}
	return c
}

// Start launches a session in the background and returns immediately. roots and
// patterns are copied first, so later edits by the caller apply only to the next
// session.
func (c *Crawler) Start(roots, patterns []string) SessionID {
	id := c.newID()
	rootsCopy := append([]string(nil), roots...)
	snap := ignore.NewSnapshot(patterns)

	logger.InfoKV("crawl started", "session", id, "roots", rootsCopy, "ignore", snap.Patterns())
	c.group.Go(func() error {
		sum := Run(rootsCopy, snap, c.stream)
		logger.InfoKV("crawl complete", "session", id,
			"directories", sum.Directories, "roots", sum.Roots,
			"stopped", sum.Stopped, "elapsed", sum.Elapsed.Round(time.Millisecond))
		if c.onDone != nil {
			c.onDone(id, sum)
		}
		return nil
	})
	return id
}

// Poll drains every buffered message without blocking.
func (c *Crawler) Poll() []Message {
	return c.stream.Poll()
}

// Ready fires after new messages were buffered.
func (c *Crawler) Ready() <-chan struct{} {
	return c.stream.Ready()
}

// Shutdown drops the consumer end. A running session stops its current root and
// finishes the remaining roots without delivering anything.
func (c *Crawler) Shutdown() {
	c.stream.Close()
}

// Wait blocks until every started session has returned.
func (c *Crawler) Wait() {
	_ = c.group.Wait()
}
