//go:build cgo

package gstreamer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-gst/go-gst/gst"
	"github.com/rs/zerolog"

	"github.com/ytget/mediaplayer/internal/media"
	"github.com/ytget/mediaplayer/internal/model"
)

// Pipeline adapts *gst.Pipeline to media.Pipeline.
type Pipeline struct {
	*element
	pipeline *gst.Pipeline
	bus      *bus
	logger   zerolog.Logger

	closeOnce sync.Once
	closeErr  error
}

func newPipeline(p *gst.Pipeline, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		element:  &element{elem: p.Element},
		pipeline: p,
		bus:      &bus{bus: p.GetPipelineBus()},
		logger:   logger,
	}
}

// SetState implements media.Pipeline.
func (p *Pipeline) SetState(state model.State) error {
	if err := p.pipeline.SetState(toGstState(state)); err != nil {
		return fmt.Errorf("%w: %s: %w", media.ErrStateFailure, state, err)
	}
	return nil
}

// WaitState implements media.Pipeline.
func (p *Pipeline) WaitState(timeout time.Duration) (model.State, error) {
	ret, current := p.pipeline.GetState(gst.VoidPending, gst.ClockTime(timeout.Nanoseconds()))
	state := fromGstState(current)
	switch ret {
	case gst.StateChangeFailure:
		return state, media.ErrStateFailure
	case gst.StateChangeAsync:
		return state, media.ErrStateTimeout
	default:
		return state, nil
	}
}

// Position implements media.Pipeline.
func (p *Pipeline) Position() (time.Duration, bool) {
	ok, pos := p.pipeline.QueryPosition(gst.FormatTime)
	if !ok || pos < 0 {
		return 0, false
	}
	return time.Duration(pos), true
}

// Duration implements media.Pipeline.
func (p *Pipeline) Duration() (time.Duration, bool) {
	ok, dur := p.pipeline.QueryDuration(gst.FormatTime)
	if !ok || dur <= 0 {
		return 0, false
	}
	return time.Duration(dur), true
}

// Seek implements media.Pipeline.
func (p *Pipeline) Seek(position time.Duration) error {
	if !p.pipeline.SeekSimple(position.Nanoseconds(), gst.FormatTime, gst.SeekFlagFlush|gst.SeekFlagKeyUnit) {
		return errors.New("seek rejected")
	}
	return nil
}

// ElementByName implements media.Pipeline. Video sinks come back wrapped in
// their capability type.
func (p *Pipeline) ElementByName(name string) (media.Element, bool) {
	e, err := p.pipeline.GetElementByName(name)
	if err != nil || e == nil {
		return nil, false
	}
	return wrapElement(e, p.logger), true
}

// Bus implements media.Pipeline.
func (p *Pipeline) Bus() media.Bus {
	return p.bus
}

// Close implements media.Pipeline.
func (p *Pipeline) Close() error {
	p.closeOnce.Do(func() {
		p.closeErr = p.pipeline.SetState(gst.StateNull)
	})
	return p.closeErr
}

type bus struct {
	bus *gst.Bus
}

// Pop implements media.Bus.
func (b *bus) Pop(timeout time.Duration) (media.Message, bool) {
	msg := b.bus.TimedPop(gst.ClockTime(timeout.Nanoseconds()))
	if msg == nil {
		return media.Message{}, false
	}
	return convertMessage(msg), true
}

func convertMessage(msg *gst.Message) media.Message {
	out := media.Message{Source: msg.Source()}
	switch msg.Type() {
	case gst.MessageError:
		out.Type = media.MessageError
		if gerr := msg.ParseError(); gerr != nil {
			out.Text = gerr.Error()
			out.Debug = gerr.DebugString()
		}
	case gst.MessageWarning:
		out.Type = media.MessageWarning
		if gerr := msg.ParseWarning(); gerr != nil {
			out.Text = gerr.Error()
			out.Debug = gerr.DebugString()
		}
	case gst.MessageEOS:
		out.Type = media.MessageEOS
	case gst.MessageStateChanged:
		out.Type = media.MessageStateChanged
		oldState, newState := msg.ParseStateChanged()
		out.OldState = fromGstState(oldState)
		out.NewState = fromGstState(newState)
	default:
		out.Type = media.MessageUnknown
	}
	return out
}

func toGstState(s model.State) gst.State {
	switch s {
	case model.StateNull:
		return gst.StateNull
	case model.StateReady:
		return gst.StateReady
	case model.StatePaused:
		return gst.StatePaused
	case model.StatePlaying:
		return gst.StatePlaying
	default:
		return gst.VoidPending
	}
}

func fromGstState(s gst.State) model.State {
	switch s {
	case gst.StateNull:
		return model.StateNull
	case gst.StateReady:
		return model.StateReady
	case gst.StatePaused:
		return model.StatePaused
	case gst.StatePlaying:
		return model.StatePlaying
	default:
		return model.StateVoidPending
	}
}
