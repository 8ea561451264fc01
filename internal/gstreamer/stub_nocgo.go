//go:build !cgo

package gstreamer

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/ytget/mediaplayer/internal/media"
)

// ErrCGORequired is returned when GStreamer functions are called without CGO support.
var ErrCGORequired = errors.New("GStreamer support requires CGO")

// Init is a no-op when CGO is disabled.
func Init() {}

// Engine is a placeholder engine for builds without cgo.
type Engine struct{}

// NewEngine returns an engine whose Parse always fails.
func NewEngine(zerolog.Logger) *Engine { return &Engine{} }

// Parse returns ErrCGORequired.
func (e *Engine) Parse(string) (media.Pipeline, error) {
	return nil, ErrCGORequired
}
