// Package mediatest provides in-memory media engine fakes for tests.
package mediatest

import (
	"errors"
	"image"
	"strings"
	"sync"
	"time"

	"github.com/ytget/mediaplayer/internal/media"
	"github.com/ytget/mediaplayer/internal/model"
)

// ErrParse is returned for descriptions configured to fail parsing.
var ErrParse = errors.New("mediatest: no element")

// Rule configures how descriptions containing Match behave.
type Rule struct {
	Match     string
	ParseErr  error
	WaitErr   error
	Overlay   bool // video sink implements media.Overlay
	Frames    bool // video sink implements media.FrameSource
	AudioSink bool // pipeline contains an element named audiosink
	Duration  time.Duration
}

// Engine is a fake media.Engine.
type Engine struct {
	mu        sync.Mutex
	Rules     []Rule
	Default   Rule
	Parsed    []string
	Pipelines []*Pipeline
}

// NewEngine returns an engine whose pipelines succeed unless a rule says otherwise.
func NewEngine(rules ...Rule) *Engine {
	return &Engine{Rules: rules, Default: Rule{Duration: 2 * time.Minute}}
}

func (e *Engine) rule(description string) Rule {
	for _, r := range e.Rules {
		if r.Match != "" && strings.Contains(description, r.Match) {
			return r
		}
	}
	return e.Default
}

// Parse implements media.Engine.
func (e *Engine) Parse(description string) (media.Pipeline, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.Parsed = append(e.Parsed, description)
	r := e.rule(description)
	if r.ParseErr != nil {
		return nil, r.ParseErr
	}

	p := &Pipeline{
		Description: description,
		rule:        r,
		state:       model.StateNull,
		Props:       make(map[string]any),
		bus:         &Bus{ch: make(chan media.Message, 16)},
	}
	sink := &Sink{name: media.VideoSinkName, Props: make(map[string]any)}
	switch {
	case r.Overlay:
		p.video = &OverlaySink{Sink: sink}
	case r.Frames:
		p.video = &FrameSink{Sink: sink}
	default:
		p.video = sink
	}
	if r.AudioSink {
		p.audio = &Sink{name: media.AudioSinkName, Props: make(map[string]any)}
	}
	e.Pipelines = append(e.Pipelines, p)
	return p, nil
}

// Last returns the most recently parsed pipeline.
func (e *Engine) Last() *Pipeline {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.Pipelines) == 0 {
		return nil
	}
	return e.Pipelines[len(e.Pipelines)-1]
}

// Pipeline is a fake media.Pipeline.
type Pipeline struct {
	mu          sync.Mutex
	Description string
	rule        Rule
	state       model.State
	States      []model.State // every requested transition
	Seeks       []time.Duration
	Props       map[string]any
	Closed      bool
	Pos         time.Duration
	// WaitErrs overrides the rule's WaitErr per wait call, consumed in order.
	WaitErrs []error

	bus   *Bus
	video media.Element
	audio *Sink
}

// Name implements media.Element.
func (p *Pipeline) Name() string { return "pipeline0" }

// SetProperty implements media.Element.
func (p *Pipeline) SetProperty(name string, value any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Props[name] = value
	return nil
}

// SetState implements media.Pipeline.
func (p *Pipeline) SetState(state model.State) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.States = append(p.States, state)
	p.state = state
	return nil
}

// WaitState implements media.Pipeline.
func (p *Pipeline) WaitState(time.Duration) (model.State, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.WaitErrs) > 0 {
		err := p.WaitErrs[0]
		p.WaitErrs = p.WaitErrs[1:]
		return p.state, err
	}
	return p.state, p.rule.WaitErr
}

// State returns the last requested state.
func (p *Pipeline) State() model.State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Position implements media.Pipeline.
func (p *Pipeline) Position() (time.Duration, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Pos, true
}

// Duration implements media.Pipeline.
func (p *Pipeline) Duration() (time.Duration, bool) {
	return p.rule.Duration, p.rule.Duration > 0
}

// Seek implements media.Pipeline.
func (p *Pipeline) Seek(position time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Seeks = append(p.Seeks, position)
	p.Pos = position
	return nil
}

// ElementByName implements media.Pipeline.
func (p *Pipeline) ElementByName(name string) (media.Element, bool) {
	switch {
	case name == media.VideoSinkName:
		return p.video, true
	case name == media.AudioSinkName && p.audio != nil:
		return p.audio, true
	}
	return nil, false
}

// VideoSink returns the fake videosink element (*Sink, *OverlaySink or *FrameSink).
func (p *Pipeline) VideoSink() media.Element { return p.video }

// AudioSink returns the fake audiosink element, if any.
func (p *Pipeline) AudioSink() *Sink { return p.audio }

// Bus implements media.Pipeline.
func (p *Pipeline) Bus() media.Bus { return p.bus }

// Post queues a bus message.
func (p *Pipeline) Post(msg media.Message) { p.bus.ch <- msg }

// Close implements media.Pipeline.
func (p *Pipeline) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = model.StateNull
	p.Closed = true
	return nil
}

// IsClosed reports whether Close was called.
func (p *Pipeline) IsClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Closed
}

// Bus is a channel-backed media.Bus.
type Bus struct {
	ch chan media.Message
}

// Pop implements media.Bus.
func (b *Bus) Pop(timeout time.Duration) (media.Message, bool) {
	select {
	case msg := <-b.ch:
		return msg, true
	case <-time.After(timeout):
		return media.Message{}, false
	}
}

// Sink is a plain fake element.
type Sink struct {
	mu    sync.Mutex
	name  string
	Props map[string]any
}

// Name implements media.Element.
func (s *Sink) Name() string { return s.name }

// SetProperty implements media.Element.
func (s *Sink) SetProperty(name string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Props[name] = value
	return nil
}

// Prop returns a recorded property value.
func (s *Sink) Prop(name string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.Props[name]
	return v, ok
}

// OverlaySink adds media.Overlay to Sink.
type OverlaySink struct {
	*Sink
	Rect    image.Rectangle
	Exposed int
}

// SetRenderRectangle implements media.Overlay.
func (o *OverlaySink) SetRenderRectangle(x, y, width, height int) error {
	o.Rect = image.Rect(x, y, x+width, y+height)
	return nil
}

// Expose implements media.Overlay.
func (o *OverlaySink) Expose() error {
	o.Exposed++
	return nil
}

// FrameSink adds media.FrameSource to Sink.
type FrameSink struct {
	*Sink
	Handler func(*image.RGBA)
}

// SetFrameHandler implements media.FrameSource.
func (f *FrameSink) SetFrameHandler(handler func(*image.RGBA)) {
	f.Handler = handler
}
