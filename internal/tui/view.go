package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

func (m Model) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", titleStyle.Render("dirsweep"), m.headline())
	fmt.Fprintln(&b, m.tabs())
	fmt.Fprintln(&b)

	items := m.focusedItems()
	switch {
	case len(items) > 0:
		m.renderList(&b, items)
	case m.focus == panelSubdirs && m.state.InProgress:
		fmt.Fprintln(&b, mutedStyle.Render("  Waiting for the first directory..."))
	default:
		fmt.Fprintln(&b, mutedStyle.Render("  "+m.emptyText()))
	}

	fmt.Fprintln(&b)
	if m.editing {
		fmt.Fprintln(&b, m.input.View())
	} else if m.focus == panelSearch {
		fmt.Fprintln(&b, mutedStyle.Render(fmt.Sprintf("  query: %q  mode: %s", m.query, m.mode)))
	}
	fmt.Fprintln(&b, m.statusLine())
	fmt.Fprint(&b, m.helpLine())
	return b.String()
}

func (m Model) headline() string {
	n := humanize.Comma(int64(len(m.state.Subdirs)))
	if m.state.InProgress {
		return fmt.Sprintf("%s Indexing: %s dirs",
			spinnerStyle.Render(spinnerFrames[m.spinner]), countStyle.Render(n))
	}
	return mutedStyle.Render(fmt.Sprintf("%s dirs collected", n))
}

func (m Model) tabs() string {
	counts := [panelCount]int{len(m.roots), len(m.patterns), len(m.state.Subdirs), len(m.hits)}
	parts := make([]string, 0, panelCount)
	for p := panel(0); p < panelCount; p++ {
		label := fmt.Sprintf("%s (%s)", p, humanize.Comma(int64(counts[p])))
		if p == m.focus {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return strings.Join(parts, mutedStyle.Render("  |  "))
}

func (m Model) renderList(b *strings.Builder, items []string) {
	vp := m.viewport()
	p := m.panes[m.focus]
	start, end := p.window(len(items), vp)
	width := m.width - pathIndent
	if width < 10 {
		width = 10
	}
	for idx := start; idx < end; idx++ {
		text := items[idx]
		if m.focus != panelIgnore {
			text = displayPath(text)
		}
		text = runewidth.Truncate(text, width, "...")
		if idx == p.selected {
			fmt.Fprintf(b, " %s  %s\n", cursorStyle.Render("▶"), selectedStyle.Render(text))
		} else {
			fmt.Fprintf(b, "    %s\n", text)
		}
	}
	if len(items) > vp {
		fmt.Fprintln(b, mutedStyle.Render(fmt.Sprintf("    %d-%d of %s", start+1, end, humanize.Comma(int64(len(items))))))
	}
}

func (m Model) emptyText() string {
	switch m.focus {
	case panelRoots:
		return "No roots yet"
	case panelIgnore:
		return "No ignore patterns"
	case panelSubdirs:
		return "No directories collected. Press r to refresh"
	case panelSearch:
		if m.searched {
			return "No matches"
		}
		return "No results yet"
	}
	return ""
}

func (m Model) statusLine() string {
	style := okStyle
	if strings.HasPrefix(m.status, "Copy failed") {
		style = errStyle
	}
	return style.Render(m.status)
}

func (m Model) helpLine() string {
	bindings := m.keys.help(m.focus)
	if m.editing {
		bindings = []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return mutedStyle.Render("  " + strings.Join(parts, "  |  "))
}

func displayPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(os.PathSeparator)) {
		return "~" + path[len(home):]
	}
	return path
}
