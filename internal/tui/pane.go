package tui

// pane tracks the cursor and scroll offset of one list panel.
type pane struct {
	selected int
	offset   int
}

func (p *pane) clamp(n, viewport int) {
	if n == 0 {
		p.selected = 0
		p.offset = 0
		return
	}
	if viewport < 1 {
		viewport = 1
	}
	if p.selected >= n {
		p.selected = n - 1
	}
	if p.selected < 0 {
		p.selected = 0
	}
	maxOffset := n - viewport
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.offset > maxOffset {
		p.offset = maxOffset
	}
	if p.offset < 0 {
		p.offset = 0
	}
	if p.selected < p.offset {
		p.offset = p.selected
	}
	if p.selected >= p.offset+viewport {
		p.offset = p.selected - viewport + 1
	}
}

func (p *pane) move(delta, n, viewport int) {
	p.selected += delta
	p.clamp(n, viewport)
}

// window returns the visible index range [start, end).
func (p pane) window(n, viewport int) (int, int) {
	start := p.offset
	if start < 0 {
		start = 0
	}
	end := start + viewport
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	return start, end
}
