package playback

import (
	"context"
	"image"
	"io"
	"time"

	"github.com/ytget/mediaplayer/internal/model"
)

// View is what the controller needs from the UI. All methods except
// RenderFrame are called on the UI event loop.
type View interface {
	ShowError(err error)
	SetTitle(title string)
	SetPlaying(playing bool)
	SetTimeLabel(text string)
	// SetSeekPosition moves the seek slider without triggering a seek.
	SetSeekPosition(percent float64)
	SetFullScreen(fullscreen bool)
	// VideoArea returns the video surface allocation in window coordinates.
	VideoArea() image.Rectangle
	// RenderFrame is called from a streaming thread with a decoded frame.
	RenderFrame(frame *image.RGBA)
}

// Prober supplies facts the pipeline cannot report itself.
type Prober interface {
	Duration(ctx context.Context, path string) (time.Duration, error)
	Metadata(path string) (model.Metadata, error)
}

// WatchFunc starts watching path and calls onGone from any goroutine when
// it disappears.
type WatchFunc func(path string, onGone func()) (io.Closer, error)

// Dispatcher runs fn on the UI event loop.
type Dispatcher func(fn func())
