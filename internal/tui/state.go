package tui

import "github.com/tw93/dirsweep/internal/crawler"

// State is the crawl-derived part of the interface: the directories collected
// so far and whether a session is still running.
type State struct {
	Subdirs    []string
	InProgress bool
}

// Begin clears the collected directories and marks a session as running.
func Begin(State) State {
	return State{InProgress: true}
}

// Apply folds one crawler message into s.
//
// The returned Subdirs may share a backing array with s.Subdirs; callers
// replace their State with the result.
func Apply(s State, msg crawler.Message) State {
	switch msg := msg.(type) {
	case crawler.DirectoryDiscovered:
		s.Subdirs = append(s.Subdirs, msg.Path)
	case crawler.SessionComplete:
		s.InProgress = false
	}
	return s
}

// ApplyAll folds msgs into s in order.
func ApplyAll(s State, msgs []crawler.Message) State {
	for _, msg := range msgs {
		s = Apply(s, msg)
	}
	return s
}
