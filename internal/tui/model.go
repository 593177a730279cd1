// Package tui is the interactive front end: four panels for roots, ignore
// patterns, collected subdirectories and search results, fed by a Crawler that
// is polled on a timer.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/mordilloSan/go-logger/logger"

	"github.com/tw93/dirsweep/internal/config"
	"github.com/tw93/dirsweep/internal/crawler"
	"github.com/tw93/dirsweep/internal/results"
)

// Source starts crawl sessions and hands back their messages.
// *crawler.Crawler implements it.
type Source interface {
	Start(roots, patterns []string) crawler.SessionID
	Poll() []crawler.Message
}

type panel int

const (
	panelRoots panel = iota
	panelIgnore
	panelSubdirs
	panelSearch
	panelCount
)

func (p panel) String() string {
	switch p {
	case panelRoots:
		return "Roots"
	case panelIgnore:
		return "Ignore Patterns"
	case panelSubdirs:
		return "Subdirs"
	case panelSearch:
		return "Search"
	default:
		return "?"
	}
}

// Options configures a Model.
type Options struct {
	Roots          []string
	IgnorePatterns []string
	Dedupe         bool
	SearchMode     results.Mode
	TickInterval   time.Duration
	// AutoRefresh starts a session as soon as the program starts.
	AutoRefresh bool
	// Copy writes clipboard text. Defaults to clipboard.WriteAll.
	Copy func(string) error
}

type tickMsg time.Time

// Model is the bubbletea model.
type Model struct {
	src  Source
	keys keyMap

	roots    []string
	patterns []string

	state   State
	seen    *results.Seen
	session crawler.SessionID

	focus panel
	panes [panelCount]pane

	input    textinput.Model
	inputFor panel
	editing  bool

	query    string
	mode     results.Mode
	hits     []string
	searched bool

	status      string
	spinner     int
	tick        time.Duration
	autoRefresh bool
	copy        func(string) error

	width  int
	height int
}

// New builds a Model around src.
func New(src Source, opts Options) Model {
	ti := textinput.New()
	ti.CharLimit = inputCharLimit
	ti.Prompt = "> "

	m := Model{
		src:         src,
		keys:        defaultKeyMap(),
		roots:       append([]string(nil), opts.Roots...),
		patterns:    append([]string(nil), opts.IgnorePatterns...),
		input:       ti,
		mode:        opts.SearchMode,
		status:      "Ready",
		tick:        opts.TickInterval,
		autoRefresh: opts.AutoRefresh,
		copy:        opts.Copy,
		width:       defaultWidth,
	}
	if m.tick <= 0 {
		m.tick = defaultTickInterval
	}
	if m.copy == nil {
		m.copy = clipboard.WriteAll
	}
	if opts.Dedupe {
		m.seen = results.NewSeen()
	}
	return m
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(src Source, opts Options) error {
	p := tea.NewProgram(New(src, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	if m.autoRefresh {
		return func() tea.Msg { return refreshMsg{} }
	}
	return nil
}

type refreshMsg struct{}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampAll()
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case refreshMsg:
		return m.refresh()
	case tickMsg:
		m.consume(m.src.Poll())
		if m.state.InProgress {
			m.spinner = (m.spinner + 1) % len(spinnerFrames)
			return m, m.tickCmd()
		}
		return m, nil
	default:
		if m.editing {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

// consume applies polled messages, dropping repeats when dedupe is on.
func (m *Model) consume(msgs []crawler.Message) {
	if len(msgs) == 0 {
		return
	}
	wasRunning := m.state.InProgress
	if m.seen != nil {
		kept := msgs[:0]
		for _, msg := range msgs {
			if d, ok := msg.(crawler.DirectoryDiscovered); ok && !m.seen.Add(d.Path) {
				continue
			}
			kept = append(kept, msg)
		}
		msgs = kept
	}
	m.state = ApplyAll(m.state, msgs)
	m.panes[panelSubdirs].clamp(len(m.state.Subdirs), m.viewport())
	if wasRunning && !m.state.InProgress {
		m.status = fmt.Sprintf("Indexed %s directories", humanize.Comma(int64(len(m.state.Subdirs))))
		logger.Debugf("session %s applied, %d directories in view", m.session, len(m.state.Subdirs))
	}
}

func (m Model) refresh() (tea.Model, tea.Cmd) {
	if m.state.InProgress {
		m.status = "Indexing already in progress"
		return m, nil
	}
	if len(m.roots) == 0 {
		m.status = "No roots: press a on the Roots panel to add one"
		return m, nil
	}
	m.state = Begin(m.state)
	if m.seen != nil {
		m.seen.Reset()
	}
	m.hits = nil
	m.searched = false
	m.panes[panelSubdirs] = pane{}
	m.panes[panelSearch] = pane{}
	m.session = m.src.Start(m.roots, m.patterns)
	m.status = "Indexing..."
	return m, m.tickCmd()
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Interrupt) {
		return m, tea.Quit
	}
	if m.editing {
		return m.updateInput(msg)
	}

	n := m.focusedLen()
	vp := m.viewport()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % panelCount
	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus + panelCount - 1) % panelCount
	case key.Matches(msg, m.keys.Refresh):
		return m.refresh()
	case key.Matches(msg, m.keys.Add):
		if m.focus == panelRoots || m.focus == panelIgnore {
			return m.startInput(m.focus)
		}
	case key.Matches(msg, m.keys.Remove):
		m.removeSelected()
	case key.Matches(msg, m.keys.Search):
		m.focus = panelSearch
		return m.startInput(panelSearch)
	case key.Matches(msg, m.keys.Run):
		if m.focus == panelSearch {
			m.runSearch()
		}
	case key.Matches(msg, m.keys.Mode):
		m.mode = m.mode.Next()
		if m.searched {
			m.runSearch()
		} else {
			m.status = fmt.Sprintf("Search mode: %s", m.mode)
		}
	case key.Matches(msg, m.keys.Copy):
		m.copyFocused()
	case key.Matches(msg, m.keys.Up):
		m.panes[m.focus].move(-1, n, vp)
	case key.Matches(msg, m.keys.Down):
		m.panes[m.focus].move(1, n, vp)
	case key.Matches(msg, m.keys.PageUp):
		m.panes[m.focus].move(-vp, n, vp)
	case key.Matches(msg, m.keys.PageDown):
		m.panes[m.focus].move(vp, n, vp)
	case key.Matches(msg, m.keys.Home):
		m.panes[m.focus].move(-n, n, vp)
	case key.Matches(msg, m.keys.End):
		m.panes[m.focus].move(n, n, vp)
	}
	return m, nil
}

func (m Model) startInput(target panel) (tea.Model, tea.Cmd) {
	m.editing = true
	m.inputFor = target
	m.input.Reset()
	switch target {
	case panelRoots:
		m.input.Placeholder = "directory to crawl, e.g. ~/Repos"
	case panelIgnore:
		m.input.Placeholder = "substring to prune, e.g. node_modules"
	case panelSearch:
		m.input.Placeholder = "search collected directories"
		m.input.SetValue(m.query)
		m.input.CursorEnd()
	}
	return m, m.input.Focus()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		m.input.Blur()
		return m, nil
	case msg.Type == tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		m.editing = false
		m.input.Blur()
		m.commitInput(value)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) commitInput(value string) {
	switch m.inputFor {
	case panelRoots:
		if value == "" {
			return
		}
		m.roots = append(m.roots, config.ExpandHome(value))
		m.panes[panelRoots].selected = len(m.roots) - 1
		m.panes[panelRoots].clamp(len(m.roots), m.viewport())
		m.status = fmt.Sprintf("Added root %s", displayPath(m.roots[len(m.roots)-1]))
	case panelIgnore:
		if value == "" {
			return
		}
		m.patterns = append(m.patterns, value)
		m.panes[panelIgnore].selected = len(m.patterns) - 1
		m.panes[panelIgnore].clamp(len(m.patterns), m.viewport())
		m.status = fmt.Sprintf("Added ignore pattern %q", value)
	case panelSearch:
		m.query = value
		m.runSearch()
	}
}

func (m *Model) removeSelected() {
	switch m.focus {
	case panelRoots:
		if len(m.roots) == 0 {
			return
		}
		i := m.panes[panelRoots].selected
		removed := m.roots[i]
		m.roots = append(m.roots[:i:i], m.roots[i+1:]...)
		m.panes[panelRoots].clamp(len(m.roots), m.viewport())
		m.status = fmt.Sprintf("Removed root %s", displayPath(removed))
	case panelIgnore:
		if len(m.patterns) == 0 {
			return
		}
		i := m.panes[panelIgnore].selected
		removed := m.patterns[i]
		m.patterns = append(m.patterns[:i:i], m.patterns[i+1:]...)
		m.panes[panelIgnore].clamp(len(m.patterns), m.viewport())
		m.status = fmt.Sprintf("Removed ignore pattern %q", removed)
	}
}

func (m *Model) runSearch() {
	m.hits = results.Search(m.state.Subdirs, m.query, m.mode)
	m.searched = true
	m.panes[panelSearch] = pane{}
	m.status = fmt.Sprintf("%s matches for %q (%s)", humanize.Comma(int64(len(m.hits))), m.query, m.mode)
}

func (m *Model) copyFocused() {
	lines := m.focusedItems()
	if err := m.copy(results.Join(lines)); err != nil {
		logger.Warnf("clipboard copy failed: %v", err)
		m.status = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("Copied %s lines from %s", humanize.Comma(int64(len(lines))), m.focus)
}

func (m Model) focusedItems() []string {
	switch m.focus {
	case panelRoots:
		return m.roots
	case panelIgnore:
		return m.patterns
	case panelSubdirs:
		return m.state.Subdirs
	case panelSearch:
		return m.hits
	}
	return nil
}

func (m Model) focusedLen() int {
	return len(m.focusedItems())
}

func (m *Model) clampAll() {
	vp := m.viewport()
	m.panes[panelRoots].clamp(len(m.roots), vp)
	m.panes[panelIgnore].clamp(len(m.patterns), vp)
	m.panes[panelSubdirs].clamp(len(m.state.Subdirs), vp)
	m.panes[panelSearch].clamp(len(m.hits), vp)
}

func (m Model) viewport() int {
	if m.height <= 0 {
		return defaultViewport
	}
	vp := m.height - chromeLines
	if vp < minViewport {
		vp = minViewport
	}
	return vp
}

// Roots returns the current root list.
func (m Model) Roots() []string { return append([]string(nil), m.roots...) }

// IgnorePatterns returns the current ignore patterns.
func (m Model) IgnorePatterns() []string { return append([]string(nil), m.patterns...) }

// State returns the crawl-derived state.
func (m Model) State() State { return m.state }
