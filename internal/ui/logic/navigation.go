package logic

// Navigator handles cursor movement and viewport management over a flat list
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, totalItems int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.totalItems = totalItems
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// Move applies a navigation direction and returns the new selection and offset
func (n *Navigator) Move(direction string) (int, int) {
	if n.totalItems == 0 {
		n.selectedIndex, n.viewportOffset = 0, 0
		return 0, 0
	}

	page := n.viewportHeight - 2
	if page < 1 {
		page = 1
	}

	switch direction {
	case "up":
		n.selectedIndex--
	case "down":
		n.selectedIndex++
	case "pageup":
		n.selectedIndex -= page
	case "pagedown":
		n.selectedIndex += page
	case "home":
		n.selectedIndex = 0
	case "end":
		n.selectedIndex = n.totalItems - 1
	}

	return n.SetSelectedIndex(n.selectedIndex)
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	if index < 0 {
		index = 0
	}
	if n.totalItems > 0 && index > n.totalItems-1 {
		index = n.totalItems - 1
	}
	n.selectedIndex = index
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// ensureSelectedVisible adjusts the viewport to keep the selected item visible
func (n *Navigator) ensureSelectedVisible() {
	if n.viewportHeight <= 0 || n.totalItems == 0 {
		n.viewportOffset = 0
		return
	}

	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	for n.selectedIndex >= n.viewportOffset+VisibleRows(n.viewportOffset, n.viewportHeight, n.totalItems) {
		n.viewportOffset++
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}

// VisibleRows returns how many items fit in a viewport of height lines
// starting at offset, after the scroll indicators take their line each.
func VisibleRows(offset, height, total int) int {
	rows := height
	if offset > 0 {
		rows--
	}
	if total > offset+rows {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}
