package playback

import (
	"image"
	"sync"
)

// recordingView captures every call the controller makes.
type recordingView struct {
	mu         sync.Mutex
	errors     []error
	titles     []string
	playing    []bool
	timeLabels []string
	seeks      []float64
	fullscreen []bool
	area       image.Rectangle
	frames     int
}

func newRecordingView() *recordingView {
	return &recordingView{area: image.Rect(0, 0, 640, 360)}
}

func (v *recordingView) ShowError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.errors = append(v.errors, err)
}

func (v *recordingView) SetTitle(title string) { v.titles = append(v.titles, title) }

func (v *recordingView) SetPlaying(playing bool) { v.playing = append(v.playing, playing) }

func (v *recordingView) SetTimeLabel(text string) { v.timeLabels = append(v.timeLabels, text) }

func (v *recordingView) SetSeekPosition(percent float64) { v.seeks = append(v.seeks, percent) }

func (v *recordingView) SetFullScreen(fullscreen bool) {
	v.fullscreen = append(v.fullscreen, fullscreen)
}

func (v *recordingView) VideoArea() image.Rectangle { return v.area }

func (v *recordingView) RenderFrame(*image.RGBA) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.frames++
}

func (v *recordingView) errorCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.errors)
}

func (v *recordingView) lastError() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.errors) == 0 {
		return nil
	}
	return v.errors[len(v.errors)-1]
}

func (v *recordingView) lastTimeLabel() string {
	if len(v.timeLabels) == 0 {
		return ""
	}
	return v.timeLabels[len(v.timeLabels)-1]
}

func (v *recordingView) lastSeek() float64 {
	if len(v.seeks) == 0 {
		return -1
	}
	return v.seeks[len(v.seeks)-1]
}

func (v *recordingView) lastPlaying() bool {
	return len(v.playing) > 0 && v.playing[len(v.playing)-1]
}
