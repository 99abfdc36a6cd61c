package config

// Screen layout defaults
const (
	// Window dimensions in pixels
	WindowWidth  = 800
	WindowHeight = 600

	WindowTitle = "Galvan Engine"

	// Updates per second of the scene loop
	TicksPerSecond = 60
)

