// Package crawler discovers directories beneath a list of roots and streams them to a
// consumer through an unbounded in-process queue.
//
// A session walks its roots one after another, never in parallel, and always ends
// with exactly one SessionComplete. Walk errors on individual entries are dropped,
// and a closed sink cuts short only the root being walked at that moment.
package crawler

// Message is what a crawl session emits. The set of implementations is closed:
// DirectoryDiscovered and SessionComplete.
type Message interface {
	isMessage()
}

// DirectoryDiscovered carries one non-pruned directory path.
type DirectoryDiscovered struct {
	Path string
}

// SessionComplete marks the end of a whole session, after its last root.
type SessionComplete struct{}

func (DirectoryDiscovered) isMessage() {}
func (SessionComplete) isMessage()     {}

// Sink receives messages from a session. Send fails once the consumer is gone.
type Sink interface {
	Send(Message) error
}
