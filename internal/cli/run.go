package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/mediaplayer/internal/config"
	"github.com/ytget/mediaplayer/internal/gstreamer"
	"github.com/ytget/mediaplayer/internal/log"
	"github.com/ytget/mediaplayer/internal/platform"
	"github.com/ytget/mediaplayer/internal/playback"
	"github.com/ytget/mediaplayer/internal/probe"
	"github.com/ytget/mediaplayer/internal/ui"
)

// RunPlayer builds the window and the controller, optionally loads path and
// runs the Fyne event loop until the window closes or SIGINT/SIGTERM arrives.
func RunPlayer(ctx context.Context, path string) error {
	logger := log.WithComponent("main")

	fyneApp := app.NewWithID(AppID)
	fyneApp.Settings().SetTheme(ui.NewPlayerTheme())
	window := fyneApp.NewWindow(AppName)
	settings := config.NewSettings(fyneApp)

	engine := gstreamer.NewEngine(log.WithComponent("gstreamer"))
	player := ui.NewPlayer(fyneApp, window, settings, log.WithComponent("ui"))

	prober := probe.NewProber()
	if !prober.Available() {
		logger.Info().Msg("ffprobe not found, relying on the pipeline for durations")
	}

	watchLogger := log.WithComponent("platform")
	controller := playback.NewController(playback.Options{
		Engine:   engine,
		View:     player,
		Dispatch: fyne.Do,
		Prober:   prober,
		WatchFile: func(path string, onGone func()) (io.Closer, error) {
			return platform.WatchFile(path, watchLogger, onGone)
		},
		Logger:            log.WithComponent("playback"),
		PreferredRenderer: settings.GetPreferredRenderer(),
		Volume:            settings.GetVolume(),
		AutoFullscreen:    settings.GetAutoFullscreen(),
		AutoPlay:          settings.GetAutoPlay(),
	})
	player.Bind(controller)

	fyneApp.Lifecycle().SetOnStarted(func() {
		player.StartTicker()
		if path != "" {
			player.OpenFile(path)
		}
	})

	// Signals only ask the event loop to quit; teardown runs below.
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	done := make(chan struct{})
	go func() {
		select {
		case <-sigCtx.Done():
			logger.Info().Msg("shutdown requested")
			fyne.Do(fyneApp.Quit)
		case <-done:
		}
	}()

	logger.Info().Str(log.FieldPath, path).Msg("starting player")
	window.ShowAndRun()
	close(done)

	player.Close()
	controller.Shutdown()
	logger.Info().Msg("player stopped")
	return nil
}
