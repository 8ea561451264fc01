//go:build cgo

package gstreamer

import (
	"fmt"
	"image"
	"sync"

	"github.com/go-gst/go-gst/gst"
	"github.com/go-gst/go-gst/gst/app"
	"github.com/rs/zerolog"

	"github.com/ytget/mediaplayer/internal/media"
)

// element adapts *gst.Element to media.Element.
type element struct {
	elem *gst.Element
}

// Name implements media.Element.
func (e *element) Name() string {
	return e.elem.GetName()
}

// SetProperty implements media.Element.
func (e *element) SetProperty(name string, value any) error {
	if err := e.elem.SetProperty(name, value); err != nil {
		return fmt.Errorf("set %s.%s: %w", e.elem.GetName(), name, err)
	}
	return nil
}

// wrapElement picks the capability wrapper matching the element factory.
func wrapElement(e *gst.Element, logger zerolog.Logger) media.Element {
	base := &element{elem: e}
	factory := ""
	if f := e.GetFactory(); f != nil {
		factory = f.GetName()
	}
	switch {
	case factory == "appsink":
		return newFrameSink(base, logger)
	case isOverlayFactory(factory):
		return &overlaySink{element: base}
	default:
		return base
	}
}

// overlaySink drives a GstVideoOverlay sink through its render-rectangle property.
type overlaySink struct {
	*element

	mu   sync.Mutex
	rect string
}

// SetRenderRectangle implements media.Overlay.
func (o *overlaySink) SetRenderRectangle(x, y, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid render rectangle %dx%d", width, height)
	}
	arg := renderRectangleArg(x, y, width, height)
	o.mu.Lock()
	o.rect = arg
	o.mu.Unlock()
	o.elem.SetArg(RenderRectangleProperty, arg)
	return nil
}

// Expose implements media.Overlay by re-applying the last rectangle, which
// makes the sink redraw its current frame.
func (o *overlaySink) Expose() error {
	o.mu.Lock()
	arg := o.rect
	o.mu.Unlock()
	if arg == "" {
		return nil
	}
	o.elem.SetArg(RenderRectangleProperty, arg)
	return nil
}

// frameSink pulls RGBA samples from an appsink.
type frameSink struct {
	*element
	logger zerolog.Logger

	mu      sync.RWMutex
	handler func(*image.RGBA)
}

func newFrameSink(base *element, logger zerolog.Logger) *frameSink {
	fs := &frameSink{element: base, logger: logger}
	sink := app.SinkFromElement(base.elem)
	sink.SetCallbacks(&app.SinkCallbacks{
		NewSampleFunc: fs.onSample,
	})
	return fs
}

// SetFrameHandler implements media.FrameSource. A nil handler drops frames.
func (f *frameSink) SetFrameHandler(handler func(*image.RGBA)) {
	f.mu.Lock()
	f.handler = handler
	f.mu.Unlock()
}

func (f *frameSink) onSample(sink *app.Sink) gst.FlowReturn {
	sample := sink.PullSample()
	if sample == nil {
		return gst.FlowEOS
	}

	f.mu.RLock()
	handler := f.handler
	f.mu.RUnlock()
	if handler == nil {
		return gst.FlowOK
	}

	width, height, ok := sampleSize(sample)
	if !ok {
		f.logger.Warn().Msg("appsink sample without frame size")
		return gst.FlowOK
	}

	buffer := sample.GetBuffer()
	if buffer == nil {
		return gst.FlowOK
	}
	info := buffer.Map(gst.MapRead)
	if info == nil {
		return gst.FlowOK
	}
	frame := rgbaFrame(info.Bytes(), width, height)
	buffer.Unmap()

	if frame != nil {
		handler(frame)
	}
	return gst.FlowOK
}

func sampleSize(sample *gst.Sample) (int, int, bool) {
	caps := sample.GetCaps()
	if caps == nil || caps.GetSize() == 0 {
		return 0, 0, false
	}
	s := caps.GetStructureAt(0)
	width, wok := intField(s, "width")
	height, hok := intField(s, "height")
	return width, height, wok && hok
}

func intField(s *gst.Structure, name string) (int, bool) {
	v, err := s.GetValue(name)
	if err != nil {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	default:
		return 0, false
	}
}
