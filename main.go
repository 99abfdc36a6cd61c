package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ebiten-actors/app"
	"ebiten-actors/config"
	"ebiten-actors/logging"
	"ebiten-actors/terminal"
	"ebiten-actors/window"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		terminalMode bool
		logLevel     string
	)

	cmd := &cobra.Command{
		Use:   "ebiten-actors",
		Short: "Actor and component scene: a patrolling circle and a pointer-seeking triangle",
		Long: `Opens a window with a patrolling circle and a triangle that follows the pointer.
Settings are read from SCENE_* environment variables, for example
SCENE_SEEK_SPEED=300 or SCENE_TRACK_TEXTURE=assets/track.png.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if terminalMode {
				return runTerminal(cfg)
			}
			return runWindow(cfg)
		},
	}

	cmd.Flags().BoolVar(&terminalMode, "terminal", false, "render in the terminal instead of a window")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	return cmd
}

func runWindow(cfg config.Config) error {
	logger := logging.New(cfg.LogLevel, os.Stderr)

	device := window.NewEbitenAudio()
	defer device.Close()

	opts := []app.Option{app.WithStats(window.Stats)}
	if cfg.Audio {
		opts = append(opts, app.WithTonePlayer(device))
	}
	if cfg.Music != "" {
		if err := device.PlayBGM(cfg.Music); err != nil {
			logger.Warn().Err(err).Msg("background music unavailable")
		}
	}

	scene := app.New(cfg, logger, opts...)
	if err := scene.Initialize(); err != nil {
		return err
	}
	defer scene.Cleanup()

	return window.Run(cfg, scene, logger)
}

func runTerminal(cfg config.Config) error {
	// The screen owns stdout, so logs go to a file
	logFile, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := logging.New(cfg.LogLevel, logFile)

	var opts []app.Option
	if cfg.Audio || cfg.Music != "" {
		if device := startSpeaker(cfg, logger); device != nil {
			defer device.Close()
			if cfg.Audio {
				opts = append(opts, app.WithTonePlayer(device))
			}
		}
	}

	scene := app.New(cfg, logger, opts...)
	if err := scene.Initialize(); err != nil {
		return err
	}
	defer scene.Cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return terminal.Run(ctx, cfg, scene, logger)
}

// startSpeaker opens the terminal audio device. Audio is optional, so a
// missing device only logs a warning.
func startSpeaker(cfg config.Config, logger zerolog.Logger) *terminal.Speaker {
	device, err := terminal.NewSpeaker()
	if err != nil {
		logger.Warn().Err(err).Msg("running without sound")
		return nil
	}
	if cfg.Music != "" {
		if err := device.PlayBGM(cfg.Music); err != nil {
			logger.Warn().Err(err).Msg("background music unavailable")
		}
	}
	return device
}
