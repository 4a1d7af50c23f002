package input

// CursorTracker turns successive cursor positions into look deltas.
// Screen Y grows downward, so the vertical delta is inverted.
type CursorTracker struct {
	lastX, lastY float64
}

// Move records a new cursor position and returns (x - lastX, lastY - y).
func (t *CursorTracker) Move(x, y float64) (dx, dy float32) {
	dx = float32(x - t.lastX)
	dy = float32(t.lastY - y)
	t.lastX, t.lastY = x, y
	return dx, dy
}

// Reset sets the reference position without producing a delta.
func (t *CursorTracker) Reset(x, y float64) {
	t.lastX, t.lastY = x, y
}
