//go:build cgo

package gstreamer

import (
	"fmt"
	"sync"

	"github.com/go-gst/go-gst/gst"
	"github.com/rs/zerolog"

	"github.com/ytget/mediaplayer/internal/media"
)

var initOnce sync.Once

// Init initializes GStreamer. It is safe to call multiple times.
func Init() {
	initOnce.Do(func() {
		gst.Init(nil)
	})
}

// Engine builds GStreamer pipelines from launch descriptions.
type Engine struct {
	logger zerolog.Logger
}

// NewEngine initializes GStreamer and returns an engine.
func NewEngine(logger zerolog.Logger) *Engine {
	Init()
	return &Engine{logger: logger}
}

// Parse implements media.Engine.
func (e *Engine) Parse(description string) (media.Pipeline, error) {
	p, err := gst.NewPipelineFromString(description)
	if err != nil {
		return nil, fmt.Errorf("parse pipeline: %w", err)
	}
	e.logger.Debug().Str("pipeline", p.GetName()).Msg("pipeline parsed")
	return newPipeline(p, e.logger), nil
}
