package state

// MoveCursorUp moves the cursor up, wrapping to the last entry.
func (n *Navigation) MoveCursorUp() bool {
	count := len(n.visible)
	if count == 0 {
		n.Cursor = 0
		return false
	}
	old := n.Cursor
	if n.Cursor > 0 {
		n.Cursor--
	} else {
		n.Cursor = count - 1
	}
	return old != n.Cursor
}

// MoveCursorDown moves the cursor down, wrapping to the first entry.
func (n *Navigation) MoveCursorDown() bool {
	count := len(n.visible)
	if count == 0 {
		n.Cursor = 0
		return false
	}
	old := n.Cursor
	if n.Cursor < count-1 {
		n.Cursor++
	} else {
		n.Cursor = 0
	}
	return old != n.Cursor
}

// MoveCursorHome moves the cursor to the first entry.
func (n *Navigation) MoveCursorHome() bool {
	if len(n.visible) == 0 {
		n.Cursor = 0
		return false
	}
	old := n.Cursor
	n.Cursor = 0
	return old != n.Cursor
}

// MoveCursorEnd moves the cursor to the last entry.
func (n *Navigation) MoveCursorEnd() bool {
	count := len(n.visible)
	if count == 0 {
		n.Cursor = 0
		return false
	}
	old := n.Cursor
	n.Cursor = count - 1
	return old != n.Cursor
}

// ClampCursor keeps the cursor inside the visible entries.
func (n *Navigation) ClampCursor() {
	count := len(n.visible)
	if count == 0 || n.Cursor < 0 {
		n.Cursor = 0
		return
	}
	if n.Cursor >= count {
		n.Cursor = count - 1
	}
}
