// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	// Cursor position for EventMouseMove. In captured mode this is a virtual,
	// unbounded position accumulated from relative motion.
	CursorX float64
	CursorY float64
	// Vertical scroll amount for EventMouseWheel, positive away from the user.
	Wheel float32
}

// Input handles all input processing.
type Input struct {
	events []Event

	captured         bool
	cursorX, cursorY float64

	keys []uint8
}

// New creates a new input handler. With captured set, mouse positions are
// built from relative motion so they are not bounded by the window.
func New(captured bool) *Input {
	return &Input{
		events:   make([]Event, 0, 16),
		captured: captured,
	}
}

// Update polls SDL events and converts them to input events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
			} else if e.Type == sdl.KEYUP {
				i.events = append(i.events, Event{Type: EventKeyUp, Key: e.Keysym.Scancode})
			}

		case *sdl.MouseMotionEvent:
			if i.captured {
				i.cursorX += float64(e.XRel)
				i.cursorY += float64(e.YRel)
			} else {
				i.cursorX, i.cursorY = float64(e.X), float64(e.Y)
			}
			i.events = append(i.events, Event{
				Type:    EventMouseMove,
				CursorX: i.cursorX,
				CursorY: i.cursorY,
			})

		case *sdl.MouseWheelEvent:
			wheel := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				wheel = -wheel
			}
			i.events = append(i.events, Event{Type: EventMouseWheel, Wheel: wheel})
		}
	}

	// The slice returned by SDL tracks key state for the rest of the program.
	if i.keys == nil {
		i.keys = sdl.GetKeyboardState()
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// KeyDown reports whether a key is currently held.
func (i *Input) KeyDown(scancode sdl.Scancode) bool {
	return int(scancode) < len(i.keys) && i.keys[scancode] != 0
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
