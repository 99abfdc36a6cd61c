package screens

import (
	"errors"

	"github.com/rotisserie/eris"

	"ebiten-actors/input"
	"ebiten-actors/render"
)

var (
	// ErrCloseScreen is returned by a screen that wants to be popped
	ErrCloseScreen = eris.New("close screen")
	// ErrQuit is returned by a screen that wants the application to exit
	ErrQuit = eris.New("quit")
)

// Screen represents a layer that can be pushed onto the screen stack
type Screen interface {
	// Update handles the frame's input
	Update(in *input.State) error
	// Draw draws the screen
	Draw(canvas render.Canvas)
	// Layout handles screen layout
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// ScreenStack manages a stack of screens
type ScreenStack struct {
	screens []Screen
}

// NewScreenStack creates a new screen stack
func NewScreenStack() *ScreenStack {
	return &ScreenStack{
		screens: make([]Screen, 0),
	}
}

// Push adds a new screen to the top of the stack
func (s *ScreenStack) Push(screen Screen) {
	s.screens = append(s.screens, screen)
}

// Pop removes the top screen from the stack
func (s *ScreenStack) Pop() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	top := s.screens[len(s.screens)-1]
	s.screens = s.screens[:len(s.screens)-1]
	return top
}

// Peek returns the top screen without removing it
func (s *ScreenStack) Peek() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Len returns the number of screens on the stack
func (s *ScreenStack) Len() int {
	return len(s.screens)
}

// Update updates the top screen. A screen returning ErrCloseScreen is popped.
func (s *ScreenStack) Update(in *input.State) error {
	top := s.Peek()
	if top == nil {
		return nil
	}
	err := top.Update(in)
	if errors.Is(err, ErrCloseScreen) {
		s.Pop()
		return nil
	}
	return err
}

// Draw draws all screens from bottom to top
func (s *ScreenStack) Draw(canvas render.Canvas) {
	for _, scr := range s.screens {
		scr.Draw(canvas)
	}
}

// Layout lays out every screen and returns the top screen's size
func (s *ScreenStack) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := outsideWidth, outsideHeight
	for _, scr := range s.screens {
		w, h = scr.Layout(outsideWidth, outsideHeight)
	}
	return w, h
}
