// Package input holds the backend-neutral per-frame input snapshot.
package input

import "ebiten-actors/vmath"

// Key is a key the scene reacts to
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyF1
	KeyI
	KeyW
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQ
	KeyE
	KeyPlus
	KeyMinus
)

var keyNames = map[Key]string{
	KeyEscape: "Esc",
	KeyF1:     "F1",
	KeyI:      "I",
	KeyW:      "W",
	KeyTab:    "Tab",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyQ:      "Q",
	KeyE:      "E",
	KeyPlus:   "+",
	KeyMinus:  "-",
}

// String returns the key label
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}

// State is everything a backend observed since the previous frame
type State struct {
	// Pointer is the cursor position in world pixels
	Pointer vmath.Vec2
	// PointerInside is false while the cursor is outside the window
	PointerInside bool
	// CloseRequested is set when the user asked to close the window
	CloseRequested bool
	// Width and Height are set when the window was resized this frame
	Width, Height int

	pressed map[Key]bool
}

// NewState creates an empty input state
func NewState() *State {
	return &State{pressed: make(map[Key]bool)}
}

// Press records a key press for this frame
func (s *State) Press(k Key) {
	if s.pressed == nil {
		s.pressed = make(map[Key]bool)
	}
	s.pressed[k] = true
}

// JustPressed reports whether k was pressed this frame
func (s *State) JustPressed(k Key) bool {
	return s.pressed[k]
}

// Resized reports whether a new window size was recorded this frame
func (s *State) Resized() bool {
	return s.Width > 0 && s.Height > 0
}

// EndFrame clears the per-frame fields; the pointer is kept
func (s *State) EndFrame() {
	for k := range s.pressed {
		delete(s.pressed, k)
	}
	s.Width, s.Height = 0, 0
}
