package playback

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound means the requested path does not name a readable file.
	ErrFileNotFound = errors.New("file not found")

	// ErrNoPipeline means every candidate pipeline failed to build or preroll.
	ErrNoPipeline = errors.New("could not create a playback pipeline")

	// ErrStateChange means a requested state transition failed or timed out.
	ErrStateChange = errors.New("state change failed")

	// ErrNoMedia means a transport request arrived with nothing loaded.
	ErrNoMedia = errors.New("no file loaded, open a media file first")

	// ErrFileRemoved means the loaded file vanished from disk during playback.
	ErrFileRemoved = errors.New("media file was removed")
)

// NoPipelineHelp is shown alongside ErrNoPipeline.
const NoPipelineHelp = `Make sure GStreamer and its plugins are installed:
  gstreamer1.0-plugins-base, gstreamer1.0-plugins-good,
  gstreamer1.0-plugins-bad and gstreamer1.0-libav.
Run "gst-inspect-1.0 playbin" to check the installation.`

// PipelineError carries an ERROR message posted on the bus.
type PipelineError struct {
	Source string
	Text   string
	Debug  string
}

// Error implements error.
func (e *PipelineError) Error() string {
	msg := e.Text
	if e.Source != "" {
		msg = fmt.Sprintf("%s: %s", e.Source, e.Text)
	}
	if e.Debug != "" {
		msg += "\n\nDebug info:\n" + e.Debug
	}
	return msg
}
