package config

import (
	"fmt"
	"image/color"
	"strings"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"golang.org/x/image/colornames"
)

// Config holds the tunables of the scene. Every field can be overridden
// from the environment, for example SCENE_SEEK_SPEED=300.
type Config struct {
	WindowWidth  int    `config:"SCENE_WINDOW_WIDTH"`
	WindowHeight int    `config:"SCENE_WINDOW_HEIGHT"`
	Title        string `config:"SCENE_TITLE"`
	TPS          int    `config:"SCENE_TPS"`

	// Optional image stretched over the track actor
	TrackTexture string `config:"SCENE_TRACK_TEXTURE"`
	// Optional mp3/ogg played in a loop
	Music string `config:"SCENE_MUSIC"`

	SeekSpeed       float64 `config:"SCENE_SEEK_SPEED"`
	PatrolSpeed     float64 `config:"SCENE_PATROL_SPEED"`
	ArriveRange     float64 `config:"SCENE_ARRIVE_RANGE"`
	ProximityRadius float64 `config:"SCENE_PROXIMITY_RADIUS"`

	Background    string `config:"SCENE_BACKGROUND"`
	CircleColor   string `config:"SCENE_CIRCLE_COLOR"`
	TriangleColor string `config:"SCENE_TRIANGLE_COLOR"`
	TrackColor    string `config:"SCENE_TRACK_COLOR"`

	ShowWaypoints bool    `config:"SCENE_SHOW_WAYPOINTS"`
	Audio         bool    `config:"SCENE_AUDIO"`
	ToneFrequency float64 `config:"SCENE_TONE_FREQUENCY"`

	LogLevel string `config:"SCENE_LOG_LEVEL"`
	// Log destination for the terminal backend; stderr would corrupt the screen
	LogFile string `config:"SCENE_LOG_FILE"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		WindowWidth:     WindowWidth,
		WindowHeight:    WindowHeight,
		Title:           WindowTitle,
		TPS:             TicksPerSecond,
		TrackTexture:    "assets/track.png",
		SeekSpeed:       200,
		PatrolSpeed:     150,
		ArriveRange:     10,
		ProximityRadius: 150,
		Background:      "black",
		CircleColor:     "blue",
		TriangleColor:   "red",
		TrackColor:      "dimgray",
		Audio:           true,
		ToneFrequency:   880,
		LogLevel:        "info",
		LogFile:         "scene.log",
	}
}

// Load returns the defaults overridden by any SCENE_* environment variables
func Load() (Config, error) {
	cfg := Default()
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to read config from environment")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the values a scene cannot run with
func (c Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return eris.Errorf("invalid window size %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.TPS <= 0 {
		return eris.Errorf("invalid tick rate %d", c.TPS)
	}
	if c.SeekSpeed < 0 || c.PatrolSpeed < 0 {
		return eris.New("speeds must not be negative")
	}
	if c.ArriveRange < 0 || c.ProximityRadius < 0 {
		return eris.New("ranges must not be negative")
	}
	for _, name := range []string{c.Background, c.CircleColor, c.TriangleColor, c.TrackColor} {
		if _, err := ParseColor(name); err != nil {
			return err
		}
	}
	return nil
}

// ParseColor resolves an SVG color name ("cornflowerblue") or a #rrggbb
// / #rrggbbaa hex string
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}

	if strings.HasPrefix(s, "#") {
		var c color.RGBA
		c.A = 255
		var n int
		var err error
		switch len(s) {
		case 7:
			n, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
			if n == 3 && err == nil {
				return c, nil
			}
		case 9:
			n, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
			if n == 4 && err == nil {
				return c, nil
			}
		}
	}

	return color.RGBA{}, eris.Errorf("unknown color %q", s)
}

// MustColor resolves a color already checked by Validate
func MustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
