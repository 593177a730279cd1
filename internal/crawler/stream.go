package crawler

import (
	"errors"
	"sync"
)

// ErrSinkClosed is returned by Stream.Send after the consumer closed the stream.
var ErrSinkClosed = errors.New("crawler: sink closed")

// Stream is an unbounded FIFO between crawl goroutines and a single consumer.
// Sends never block; the consumer drains with Poll.
type Stream struct {
	mu     sync.Mutex
	queue  []Message
	closed bool
	ready  chan struct{}
}

// NewStream returns an open, empty stream.
func NewStream() *Stream {
	return &Stream{ready: make(chan struct{}, 1)}
}

// Send appends msg. It returns ErrSinkClosed once Close has been called.
func (s *Stream) Send(msg Message) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSinkClosed
	}
	s.queue = append(s.queue, msg)
	s.mu.Unlock()

	select {
	case s.ready <- struct{}{}:
	default:
	}
	return nil
}

// Poll returns every buffered message in send order and empties the buffer.
// It never blocks and returns nil when nothing is buffered.
func (s *Stream) Poll() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return nil
	}
	out := s.queue
	s.queue = nil
	return out
}

// Ready receives a value after one or more sends. Wake-ups are coalesced, so a
// consumer must Poll until empty after each receive.
func (s *Stream) Ready() <-chan struct{} {
	return s.ready
}

// Len reports how many messages are buffered.
func (s *Stream) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Close drops the consumer end. Buffered messages are discarded and every later
// Send fails. Close is idempotent.
func (s *Stream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.queue = nil
}
