package playback

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/mediaplayer/internal/log"
	"github.com/ytget/mediaplayer/internal/media"
	"github.com/ytget/mediaplayer/internal/model"
	"github.com/ytget/mediaplayer/internal/platform"
)

// VolumeProperty is the element property carrying linear volume.
const VolumeProperty = "volume"

// Options configures a Controller.
type Options struct {
	Engine            media.Engine
	View              View
	Dispatch          Dispatcher
	Prober            Prober    // optional
	WatchFile         WatchFunc // optional
	Logger            zerolog.Logger
	StateTimeout      time.Duration
	PreferredRenderer model.Renderer
	Volume            float64

	// AutoFullscreen and AutoPlay run after every successful load
	AutoFullscreen bool
	AutoPlay       bool
}

// Controller owns the session and its pipeline.
type Controller struct {
	selector     *Selector
	view         View
	dispatch     Dispatcher
	prober       Prober
	watchFile    WatchFunc
	logger       zerolog.Logger
	stateTimeout time.Duration
	preferred    model.Renderer

	autoFullscreen bool
	autoPlay       bool

	session   model.Session
	pipeline  media.Pipeline
	handle    string
	videoSink media.Element
	bridge    *Bridge
	watcher   io.Closer
}

// NewController creates a controller with nothing loaded
func NewController(opts Options) *Controller {
	timeout := opts.StateTimeout
	if timeout <= 0 {
		timeout = DefaultStateTimeout
	}
	preferred := opts.PreferredRenderer
	if !preferred.IsValid() {
		preferred = model.RendererAutoSelect
	}
	dispatch := opts.Dispatch
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}

	selector := NewSelector(opts.Engine, opts.Logger)
	selector.SetTimeout(timeout)

	c := &Controller{
		selector:     selector,
		view:         opts.View,
		dispatch:     dispatch,
		prober:       opts.Prober,
		watchFile:    opts.WatchFile,
		logger:       opts.Logger,
		stateTimeout: timeout,
		preferred:    preferred,

		autoFullscreen: opts.AutoFullscreen,
		autoPlay:       opts.AutoPlay,
	}
	c.session.State = model.StateNull
	c.session.Volume = clampVolume(opts.Volume)
	return c
}

// Session returns a copy of the current session state
func (c *Controller) Session() model.Session {
	return c.session
}

// SetPreferredRenderer changes where the next load starts probing
func (c *Controller) SetPreferredRenderer(renderer model.Renderer) {
	if !renderer.IsValid() {
		renderer = model.RendererAutoSelect
	}
	c.preferred = renderer
}

// SetAutoStart chooses whether later loads enter fullscreen and start playing
func (c *Controller) SetAutoStart(play, fullscreen bool) {
	c.autoPlay = play
	c.autoFullscreen = fullscreen
}

// LoadFile replaces the current media with path. A missing file leaves the
// current pipeline untouched; otherwise the old pipeline is released before
// any candidate is built. On success the pipeline is PAUSED at the start,
// then fullscreen and playback begin when auto start is enabled. A failed
// auto play is reported through the view and does not fail the load.
func (c *Controller) LoadFile(path string) error {
	if _, err := checkFile(path); err != nil {
		c.logger.Warn().Err(err).Str(log.FieldPath, path).Msg("refusing to load")
		c.view.ShowError(err)
		return err
	}

	c.release()

	sel, err := c.selector.Select(context.Background(), path, c.preferred)
	if err != nil {
		c.logger.Error().Err(err).Str(log.FieldPath, path).Msg("failed to build pipeline")
		c.view.SetTitle("")
		c.resetControls()
		c.view.ShowError(err)
		return err
	}

	c.pipeline = sel.Pipeline
	c.videoSink = sel.VideoSink
	c.handle = newHandleID()
	c.session.FilePath = sel.Path
	c.session.Renderer = sel.Candidate.Renderer
	c.session.State = model.StatePaused
	c.session.Playing = false
	c.session.Duration = c.lookupDuration(sel.Path)
	c.session.Metadata = c.lookupMetadata(sel.Path)

	c.logger.Info().
		Str(log.FieldHandle, c.handle).
		Str(log.FieldPath, sel.Path).
		Str(log.FieldCandidate, sel.Candidate.Renderer.String()).
		Dur(log.FieldDuration, c.session.Duration).
		Msg("media loaded")

	c.applyVolume()
	if frames, ok := c.videoSink.(media.FrameSource); ok {
		frames.SetFrameHandler(c.view.RenderFrame)
	}
	c.UpdateOverlay()

	pipeline := c.pipeline
	c.bridge = StartBridge(pipeline.Bus(), c.dispatch, func(msg media.Message) {
		c.handleMessage(pipeline, msg)
	}, c.logger.With().Str(log.FieldHandle, c.handle).Logger())
	c.startWatcher(pipeline, sel.Path)

	c.view.SetTitle(c.session.DisplayTitle())
	c.resetControls()

	if c.autoFullscreen && !c.session.Fullscreen {
		c.ToggleFullscreen()
	}
	if c.autoPlay {
		if err := c.Play(); err != nil {
			c.logger.Warn().Err(err).Str(log.FieldHandle, c.handle).Msg("auto play failed")
		}
	}
	return nil
}

// Play starts playback, or pauses when already playing. A failed start is
// retried once through READY before the error is shown. With nothing loaded
// the user is told to open a file first.
func (c *Controller) Play() error {
	if c.pipeline == nil {
		c.view.ShowError(ErrNoMedia)
		return ErrNoMedia
	}
	if c.session.Playing {
		return c.Pause()
	}

	if err := c.transition(model.StatePlaying); err != nil {
		c.logger.Warn().Err(err).Msg("play failed, retrying from READY")
		if err = c.transition(model.StateReady); err == nil {
			err = c.transition(model.StatePlaying)
		}
		if err != nil {
			c.view.ShowError(err)
			return err
		}
	}

	c.session.State = model.StatePlaying
	c.session.Playing = true
	c.view.SetPlaying(true)
	return nil
}

// Pause pauses playback
func (c *Controller) Pause() error {
	if c.pipeline == nil {
		return ErrNoMedia
	}

	if err := c.transition(model.StatePaused); err != nil {
		c.view.ShowError(err)
		return err
	}

	c.session.State = model.StatePaused
	c.session.Playing = false
	c.view.SetPlaying(false)
	return nil
}

// Stop returns the pipeline to READY and rewinds the controls
func (c *Controller) Stop() error {
	if c.pipeline == nil {
		return ErrNoMedia
	}

	err := c.transition(model.StateReady)
	c.session.Playing = false
	if err == nil {
		c.session.State = model.StateReady
	}
	c.resetControls()

	if err != nil {
		c.view.ShowError(err)
	}
	return err
}

// SeekPercent seeks to percent (0..100) of the total duration
func (c *Controller) SeekPercent(percent float64) error {
	if c.pipeline == nil {
		return ErrNoMedia
	}
	if c.session.Duration <= 0 {
		return nil
	}

	percent = max(0, min(percent, 100))
	target := time.Duration(float64(c.session.Duration) * percent / 100)
	return c.seek(target)
}

// SeekRelative moves the position by delta, clamped to [0, duration]
func (c *Controller) SeekRelative(delta time.Duration) error {
	if c.pipeline == nil {
		return ErrNoMedia
	}

	position, ok := c.pipeline.Position()
	if !ok {
		return nil
	}

	target := max(position+delta, 0)
	if c.session.Duration > 0 {
		target = min(target, c.session.Duration)
	}

	if err := c.seek(target); err != nil {
		return err
	}
	c.updatePosition(target)
	return nil
}

// SetVolume applies volume (0..1) to the audiosink element, or to the
// pipeline when no such element exists
func (c *Controller) SetVolume(volume float64) {
	c.session.Volume = clampVolume(volume)
	c.applyVolume()
}

// ToggleFullscreen flips fullscreen and refits the overlay
func (c *Controller) ToggleFullscreen() {
	c.session.Fullscreen = !c.session.Fullscreen
	c.view.SetFullScreen(c.session.Fullscreen)
	c.UpdateOverlay()
}

// ExitFullscreen leaves fullscreen if it is active
func (c *Controller) ExitFullscreen() {
	if c.session.Fullscreen {
		c.ToggleFullscreen()
	}
}

// UpdateOverlay pushes the video surface allocation to an overlay-capable sink
func (c *Controller) UpdateOverlay() {
	overlay, ok := c.videoSink.(media.Overlay)
	if !ok {
		return
	}

	area := c.view.VideoArea()
	if area.Empty() {
		return
	}
	if err := overlay.SetRenderRectangle(area.Min.X, area.Min.Y, area.Dx(), area.Dy()); err != nil {
		c.logger.Warn().Err(err).Msg("failed to set render rectangle")
		return
	}
	if err := overlay.Expose(); err != nil {
		c.logger.Warn().Err(err).Msg("failed to expose overlay")
	}
}

// Tick refreshes position widgets; called periodically on the UI event loop
func (c *Controller) Tick() {
	if c.pipeline == nil || !c.session.Playing {
		return
	}
	if position, ok := c.pipeline.Position(); ok {
		c.updatePosition(position)
	}
}

// Shutdown releases the pipeline and every helper. Safe to call repeatedly.
func (c *Controller) Shutdown() {
	c.release()
	c.logger.Debug().Msg("controller shut down")
}

func (c *Controller) handleMessage(p media.Pipeline, msg media.Message) {
	// Messages queued by a pipeline that has since been replaced are stale
	if p != c.pipeline {
		return
	}

	switch msg.Type {
	case media.MessageError:
		c.logger.Error().
			Str(log.FieldElement, msg.Source).
			Str("debug", msg.Debug).
			Msg(msg.Text)
		c.view.ShowError(&PipelineError{Source: msg.Source, Text: msg.Text, Debug: msg.Debug})
	case media.MessageWarning:
		c.logger.Warn().Str(log.FieldElement, msg.Source).Str("debug", msg.Debug).Msg(msg.Text)
	case media.MessageEOS:
		c.logger.Info().Str(log.FieldHandle, c.handle).Msg("end of stream")
		_ = c.Stop()
	case media.MessageStateChanged:
		if msg.Source != p.Name() {
			return
		}
		c.logger.Debug().
			Stringer(log.FieldOldState, msg.OldState).
			Stringer(log.FieldNewState, msg.NewState).
			Msg("pipeline state changed")
		c.session.State = msg.NewState
		c.session.Playing = msg.NewState == model.StatePlaying
		c.view.SetPlaying(c.session.Playing)
	}
}

func (c *Controller) handleFileGone(p media.Pipeline, path string) {
	if p != c.pipeline {
		return
	}
	if c.session.Playing {
		_ = c.Stop()
	}
	c.view.ShowError(fmt.Errorf("%w: %s", ErrFileRemoved, path))
}

func (c *Controller) transition(state model.State) error {
	if err := c.pipeline.SetState(state); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrStateChange, state, err)
	}
	if _, err := c.pipeline.WaitState(c.stateTimeout); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrStateChange, state, err)
	}
	return nil
}

func (c *Controller) seek(target time.Duration) error {
	if err := c.pipeline.Seek(target); err != nil {
		c.logger.Warn().Err(err).Dur(log.FieldPosition, target).Msg("seek failed")
		return err
	}
	return nil
}

func (c *Controller) applyVolume() {
	if c.pipeline == nil {
		return
	}

	var target media.Element = c.pipeline
	if sink, ok := c.pipeline.ElementByName(media.AudioSinkName); ok {
		target = sink
	}
	if err := target.SetProperty(VolumeProperty, c.session.Volume); err != nil {
		c.logger.Warn().Err(err).Str(log.FieldElement, target.Name()).Msg("failed to set volume")
	}
}

func (c *Controller) updatePosition(position time.Duration) {
	c.view.SetTimeLabel(c.session.TimeLabel(position))
	c.view.SetSeekPosition(c.session.PositionPercent(position))
}

func (c *Controller) resetControls() {
	c.view.SetSeekPosition(0)
	c.view.SetTimeLabel(c.session.TimeLabel(0))
	c.view.SetPlaying(false)
}

func (c *Controller) lookupDuration(path string) time.Duration {
	if d, ok := c.pipeline.Duration(); ok && d > 0 {
		return d
	}
	if c.prober == nil {
		return 0
	}

	d, err := c.prober.Duration(context.Background(), path)
	if err != nil {
		c.logger.Debug().Err(err).Msg("duration unknown")
		return 0
	}
	return d
}

func (c *Controller) lookupMetadata(path string) model.Metadata {
	if c.prober == nil {
		return model.Metadata{}
	}
	m, err := c.prober.Metadata(path)
	if err != nil {
		c.logger.Debug().Err(err).Msg("no tags")
		return model.Metadata{}
	}
	return m
}

func (c *Controller) startWatcher(p media.Pipeline, path string) {
	if c.watchFile == nil {
		return
	}
	w, err := c.watchFile(path, func() {
		c.dispatch(func() { c.handleFileGone(p, path) })
	})
	if err != nil {
		c.logger.Warn().Err(err).Msg("cannot watch media file")
		return
	}
	c.watcher = w
}

// release tears down everything tied to the loaded file.
func (c *Controller) release() {
	if c.bridge != nil {
		c.bridge.Stop()
		c.bridge = nil
	}
	if c.watcher != nil {
		if err := c.watcher.Close(); err != nil {
			c.logger.Warn().Err(err).Msg("failed to close file watcher")
		}
		c.watcher = nil
	}
	if frames, ok := c.videoSink.(media.FrameSource); ok {
		frames.SetFrameHandler(nil)
	}
	c.videoSink = nil

	if c.pipeline != nil {
		if err := c.pipeline.Close(); err != nil {
			c.logger.Warn().Err(err).Str(log.FieldHandle, c.handle).Msg("failed to release pipeline")
		} else {
			c.logger.Debug().Str(log.FieldHandle, c.handle).Msg("pipeline released")
		}
		c.pipeline = nil
	}
	c.handle = ""
	c.session.Reset()
}

func checkFile(path string) (string, error) {
	absPath, err := platform.CheckMediaFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	return absPath, nil
}

// newHandleID generates a time-ordered id for log correlation
func newHandleID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("pipeline-%d", time.Now().UnixNano())
	}
	return id.String()
}

func clampVolume(v float64) float64 {
	return max(0, min(v, 1))
}

// IsUserError reports whether err should be presented without debug detail.
func IsUserError(err error) bool {
	return errors.Is(err, ErrFileNotFound) || errors.Is(err, ErrNoMedia) || errors.Is(err, ErrFileRemoved)
}
