package ui

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// VideoSurface is the expandable black area the video is drawn into.
// Embedded renderers push frames into it; overlay renderers draw on top of
// its allocation and only need resize notifications.
type VideoSurface struct {
	widget.BaseWidget

	// OnDoubleTapped runs on the UI event loop
	OnDoubleTapped func()
	// OnResized runs on the UI event loop after the allocation changes
	OnResized func()

	mu        sync.Mutex
	pending   *image.RGBA
	scheduled bool

	frame *image.RGBA
	image *canvas.Image
}

// NewVideoSurface creates an empty video surface
func NewVideoSurface() *VideoSurface {
	v := &VideoSurface{}
	v.image = &canvas.Image{FillMode: canvas.ImageFillContain, ScaleMode: canvas.ImageScaleFastest}
	v.ExtendBaseWidget(v)
	return v
}

// PushFrame stores frame as the latest one and schedules a repaint. It may be
// called from any goroutine; frames arriving faster than the UI repaints
// replace each other.
func (v *VideoSurface) PushFrame(frame *image.RGBA) {
	v.mu.Lock()
	v.pending = frame
	if v.scheduled {
		v.mu.Unlock()
		return
	}
	v.scheduled = true
	v.mu.Unlock()

	fyne.Do(v.present)
}

func (v *VideoSurface) present() {
	v.mu.Lock()
	frame := v.pending
	v.pending = nil
	v.scheduled = false
	v.mu.Unlock()

	if frame == nil {
		return
	}
	v.frame = frame
	v.image.Image = frame
	v.image.Refresh()
}

// Clear drops the current frame so the surface shows the background again
func (v *VideoSurface) Clear() {
	v.mu.Lock()
	v.pending = nil
	v.mu.Unlock()

	v.frame = nil
	v.image.Image = nil
	v.image.Refresh()
}

// Frame returns the frame currently shown, if any
func (v *VideoSurface) Frame() *image.RGBA {
	return v.frame
}

// DoubleTapped implements fyne.DoubleTappable
func (v *VideoSurface) DoubleTapped(*fyne.PointEvent) {
	if v.OnDoubleTapped != nil {
		v.OnDoubleTapped()
	}
}

// Resize resizes the surface and notifies OnResized when the size changed
func (v *VideoSurface) Resize(size fyne.Size) {
	changed := v.Size() != size
	v.BaseWidget.Resize(size)
	if changed && v.OnResized != nil {
		v.OnResized()
	}
}

// CreateRenderer creates the widget renderer
func (v *VideoSurface) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(VideoBackground)
	return &videoSurfaceRenderer{surface: v, background: background}
}

// videoSurfaceRenderer stacks the latest frame over a black background
type videoSurfaceRenderer struct {
	surface    *VideoSurface
	background *canvas.Rectangle
}

// Layout arranges the components
func (r *videoSurfaceRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.surface.image.Resize(size)
}

// MinSize returns the minimum size
func (r *videoSurfaceRenderer) MinSize() fyne.Size {
	return fyne.NewSize(VideoMinWidth, VideoMinHeight)
}

// Refresh refreshes the renderer
func (r *videoSurfaceRenderer) Refresh() {
	r.background.Refresh()
	r.surface.image.Refresh()
}

// Objects returns the canvas objects
func (r *videoSurfaceRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.surface.image}
}

// Destroy cleans up the renderer
func (r *videoSurfaceRenderer) Destroy() {}
