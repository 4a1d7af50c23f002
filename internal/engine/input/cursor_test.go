package input

import "testing"

func TestCursorTrackerMove(t *testing.T) {
	var tr CursorTracker

	steps := []struct {
		x, y   float64
		dx, dy float32
	}{
		{10, 5, 10, -5},
		{10, 5, 0, 0},
		{4, 9, -6, -4},
		{4, 1, 0, 8},
		{-100, -100, -104, 101},
	}
	for i, s := range steps {
		dx, dy := tr.Move(s.x, s.y)
		if dx != s.dx || dy != s.dy {
			t.Errorf("step %d: Move(%v, %v) = (%v, %v), want (%v, %v)", i, s.x, s.y, dx, dy, s.dx, s.dy)
		}
	}
}

func TestCursorTrackerReset(t *testing.T) {
	var tr CursorTracker
	tr.Reset(640, 360)

	dx, dy := tr.Move(650, 350)
	if dx != 10 || dy != 10 {
		t.Errorf("Move after Reset = (%v, %v), want (10, 10)", dx, dy)
	}
}
