package ui

import (
	"fmt"
	"image"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/mediaplayer/internal/config"
	"github.com/ytget/mediaplayer/internal/model"
	"github.com/ytget/mediaplayer/internal/playback"
)

type fakeTransport struct {
	mu       sync.Mutex
	calls    []string
	seeks    []float64
	deltas   []time.Duration
	volumes  []float64
	renderer model.Renderer
	autoPlay bool
	autoFull bool
	session  model.Session
	loadErr  error
	ticks    int
}

func (f *fakeTransport) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeTransport) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeTransport) Ticks() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ticks
}

func (f *fakeTransport) LoadFile(path string) error {
	f.record("load " + path)
	return f.loadErr
}

func (f *fakeTransport) Play() error { f.record("play"); return nil }
func (f *fakeTransport) Stop() error { f.record("stop"); return nil }

func (f *fakeTransport) SeekPercent(percent float64) error {
	f.record("seek-percent")
	f.seeks = append(f.seeks, percent)
	return nil
}

func (f *fakeTransport) SeekRelative(delta time.Duration) error {
	f.record("seek-relative")
	f.deltas = append(f.deltas, delta)
	return nil
}

func (f *fakeTransport) SetVolume(volume float64) {
	f.record("volume")
	f.volumes = append(f.volumes, volume)
}

func (f *fakeTransport) SetPreferredRenderer(renderer model.Renderer) {
	f.record("renderer")
	f.renderer = renderer
}

func (f *fakeTransport) SetAutoStart(play, fullscreen bool) {
	f.record("auto-start")
	f.autoPlay = play
	f.autoFull = fullscreen
}

func (f *fakeTransport) ToggleFullscreen() { f.record("fullscreen") }
func (f *fakeTransport) ExitFullscreen() { f.record("exit-fullscreen") }
func (f *fakeTransport) UpdateOverlay() { f.record("overlay") }

func (f *fakeTransport) Tick() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ticks++
}

func (f *fakeTransport) Session() model.Session { return f.session }

func newTestPlayer(t *testing.T) (*Player, *fakeTransport, fyne.Window) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	p := NewPlayer(app, window, config.NewSettings(app), zerolog.Nop())
	transport := &fakeTransport{}
	p.Bind(transport)
	return p, transport, window
}

func TestPlayer_Buttons(t *testing.T) {
	p, transport, _ := newTestPlayer(t)

	test.Tap(p.playBtn)
	test.Tap(p.stopBtn)
	test.Tap(p.fullscreenBtn)

	assert.Equal(t, []string{"play", "stop", "fullscreen"}, transport.Calls())
}

func TestPlayer_SetPlaying(t *testing.T) {
	p, _, _ := newTestPlayer(t)

	p.SetPlaying(true)
	assert.Equal(t, "Pause", p.playBtn.Text)

	p.SetPlaying(false)
	assert.Equal(t, "Play", p.playBtn.Text)
}

func TestPlayer_SeekSlider(t *testing.T) {
	p, transport, _ := newTestPlayer(t)

	// Programmatic updates must not seek
	p.SetSeekPosition(30)
	assert.InDelta(t, 30, p.seekSlider.Value, 0.001)
	assert.Empty(t, transport.seeks)

	// User drag
	p.seekSlider.OnChanged(42)
	assert.Equal(t, []float64{42}, transport.seeks)
}

func TestPlayer_Volume(t *testing.T) {
	p, transport, _ := newTestPlayer(t)
	assert.InDelta(t, config.DefaultVolume*VolumeSliderMax, p.volumeSlider.Value, 0.001)

	p.volumeSlider.OnChanged(50)
	p.volumeSlider.OnChangeEnded(50)

	assert.Equal(t, []float64{0.5}, transport.volumes)
	assert.InDelta(t, 0.5, p.settings.GetVolume(), 0.001)
}

func TestPlayer_Keys(t *testing.T) {
	p, transport, _ := newTestPlayer(t)
	p.settings.SetSeekStepSeconds(10)

	for _, key := range []fyne.KeyName{fyne.KeyF, fyne.KeyEscape, fyne.KeyLeft, fyne.KeyRight, fyne.KeySpace, fyne.KeyA} {
		p.handleKey(&fyne.KeyEvent{Name: key})
	}

	assert.Equal(t, []string{"fullscreen", "exit-fullscreen", "seek-relative", "seek-relative", "play"}, transport.Calls())
	assert.Equal(t, []time.Duration{-10 * time.Second, 10 * time.Second}, transport.deltas)
}

func TestPlayer_TypedKeyReachesHandler(t *testing.T) {
	_, transport, window := newTestPlayer(t)

	window.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyF})

	assert.Equal(t, []string{"fullscreen"}, transport.Calls())
}

// sendKey delivers ev the way the desktop driver does: to the focused
// widget when there is one, otherwise to the canvas handler.
func sendKey(window fyne.Window, ev *fyne.KeyEvent) {
	if focused := window.Canvas().Focused(); focused != nil {
		focused.TypedKey(ev)
		return
	}
	window.Canvas().OnTypedKey()(ev)
}

func TestPlayer_KeysWorkAfterSliderTap(t *testing.T) {
	for _, name := range []string{"seek", "volume"} {
		t.Run(name, func(t *testing.T) {
			p, transport, window := newTestPlayer(t)
			slider := p.seekSlider
			if name == "volume" {
				slider = p.volumeSlider
			}

			test.Tap(slider)
			require.Equal(t, fyne.Focusable(slider), window.Canvas().Focused())
			before := slider.Value
			transport.calls = nil

			sendKey(window, &fyne.KeyEvent{Name: fyne.KeyF})
			sendKey(window, &fyne.KeyEvent{Name: fyne.KeySpace})
			sendKey(window, &fyne.KeyEvent{Name: fyne.KeyRight})

			assert.Equal(t, []string{"fullscreen", "play", "seek-relative"}, transport.Calls())
			assert.Equal(t, []time.Duration{config.DefaultSeekStepSeconds * time.Second}, transport.deltas)
			assert.Equal(t, before, slider.Value)
		})
	}
}

func TestPlayer_DoubleTapTogglesFullscreen(t *testing.T) {
	p, transport, _ := newTestPlayer(t)

	test.DoubleTap(p.video)

	assert.Contains(t, transport.Calls(), "fullscreen")
}

func TestPlayer_SetTitle(t *testing.T) {
	p, _, window := newTestPlayer(t)

	p.SetTitle("Artist - Song")
	assert.Equal(t, "Artist - Song", p.fileLabel.Text)
	assert.Equal(t, "Artist - Song - Media Player", window.Title())

	p.SetTitle("")
	assert.Equal(t, "No file loaded", p.fileLabel.Text)
	assert.Equal(t, "Media Player", window.Title())
}

func TestPlayer_SetTimeLabel(t *testing.T) {
	p, _, _ := newTestPlayer(t)

	p.SetTimeLabel("00:05 / 01:00")
	assert.Equal(t, "00:05 / 01:00", p.timeLabel.Text)
}

func TestPlayer_OpenFile(t *testing.T) {
	p, transport, _ := newTestPlayer(t)
	path := "/media/videos/clip.mp4"

	p.OpenFile(path)
	assert.Equal(t, []string{"load " + path}, transport.Calls())
	assert.Equal(t, "/media/videos", p.settings.GetLastDirectory())
}

func TestPlayer_OpenFileFailureKeepsLastDirectory(t *testing.T) {
	p, transport, _ := newTestPlayer(t)
	p.settings.SetLastDirectory("/previous")
	transport.loadErr = playback.ErrFileNotFound

	p.OpenFile("/elsewhere/missing.mp4")
	assert.Equal(t, "/previous", p.settings.GetLastDirectory())
}

func TestPlayer_ShowError(t *testing.T) {
	cases := []error{
		fmt.Errorf("%w: nothing worked", playback.ErrNoPipeline),
		fmt.Errorf("%w: /tmp/x.mp4", playback.ErrFileNotFound),
		&playback.PipelineError{Source: "decoder", Text: "boom", Debug: "details"},
	}

	for _, err := range cases {
		t.Run(err.Error(), func(t *testing.T) {
			p, _, window := newTestPlayer(t)

			p.ShowError(err)
			assert.NotNil(t, window.Canvas().Overlays().Top())
		})
	}
}

func TestPlayer_ShowErrorNil(t *testing.T) {
	p, _, window := newTestPlayer(t)

	p.ShowError(nil)
	assert.Nil(t, window.Canvas().Overlays().Top())
}

func TestPlayer_VideoArea(t *testing.T) {
	p, _, window := newTestPlayer(t)
	window.Resize(fyne.NewSize(800, 600))

	area := p.VideoArea()
	assert.False(t, area.Empty())
	assert.LessOrEqual(t, area.Dx(), 800)
	assert.LessOrEqual(t, area.Dy(), 600)
}

func TestPlayer_RenderFrame(t *testing.T) {
	p, _, _ := newTestPlayer(t)
	frame := image.NewRGBA(image.Rect(0, 0, 4, 4))

	p.RenderFrame(frame)
	assert.Same(t, frame, p.video.Frame())

	p.SetTitle("")
	assert.Nil(t, p.video.Frame())
}

func TestPlayer_Ticker(t *testing.T) {
	p, transport, _ := newTestPlayer(t)

	p.StartTicker()
	require.Eventually(t, func() bool {
		return transport.Ticks() >= 2
	}, 2*time.Second, 10*time.Millisecond)

	p.Close()
	p.Close()
	after := transport.Ticks()
	time.Sleep(3 * TickInterval)
	assert.Equal(t, after, transport.Ticks())
}

func TestPlayer_SettingsSaved(t *testing.T) {
	p, transport, window := newTestPlayer(t)
	p.settings.SetPreferredRenderer(model.RendererManual)
	p.settings.SetLanguage("ru")
	p.settings.SetAutoPlay(false)
	p.settings.SetAutoFullscreen(true)

	p.onSettingsSaved()

	assert.Equal(t, model.RendererManual, transport.renderer)
	assert.False(t, transport.autoPlay)
	assert.True(t, transport.autoFull)
	assert.Equal(t, "Громкость", p.volumeLabel.Text)
	assert.Equal(t, "ru", p.localization.GetCurrentLanguage())
	assert.Equal(t, "Стоп", p.stopBtn.Text)
	assert.Equal(t, "Медиаплеер", window.Title())
}

func TestPlayer_Unbound(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	window := test.NewWindow(nil)
	defer window.Close()

	p := NewPlayer(app, window, config.NewSettings(app), zerolog.Nop())

	assert.NotPanics(t, func() {
		test.Tap(p.playBtn)
		p.handleKey(&fyne.KeyEvent{Name: fyne.KeyF})
		p.seekSlider.OnChanged(10)
		p.OpenFile("/x.mp4")
		p.tick()
	})
}
