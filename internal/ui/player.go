package ui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/mediaplayer/internal/config"
	"github.com/ytget/mediaplayer/internal/log"
	"github.com/ytget/mediaplayer/internal/model"
	"github.com/ytget/mediaplayer/internal/platform"
	"github.com/ytget/mediaplayer/internal/playback"
)

// Transport is the part of the playback controller the window drives.
// Every method is called on the Fyne event loop.
type Transport interface {
	LoadFile(path string) error
	Play() error
	Stop() error
	SeekPercent(percent float64) error
	SeekRelative(delta time.Duration) error
	SetVolume(volume float64)
	SetPreferredRenderer(renderer model.Renderer)
	SetAutoStart(play, fullscreen bool)
	ToggleFullscreen()
	ExitFullscreen()
	UpdateOverlay()
	Tick()
	Session() model.Session
}

// Player is the main window. It implements playback.View.
type Player struct {
	app          fyne.App
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	logger       zerolog.Logger
	transport    Transport

	video         *VideoSurface
	fileLabel     *widget.Label
	timeLabel     *widget.Label
	seekSlider    *keySlider
	volumeSlider  *keySlider
	volumeLabel   *widget.Label
	openBtn       *widget.Button
	playBtn       *widget.Button
	stopBtn       *widget.Button
	fullscreenBtn *widget.Button

	playing      bool
	updatingSeek bool

	tickerCancel context.CancelFunc
	tickerDone   chan struct{}
	closeOnce    sync.Once
}

var _ playback.View = (*Player)(nil)

// NewPlayer builds the window content. Bind must be called before the
// window is shown.
func NewPlayer(app fyne.App, window fyne.Window, settings *config.Settings, logger zerolog.Logger) *Player {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	p := &Player{
		app:          app,
		window:       window,
		settings:     settings,
		localization: localization,
		logger:       logger,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	p.setupUI()
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.SetOnClosed(p.Close)
	return p
}

// Bind attaches the controller the window forwards user input to
func (p *Player) Bind(transport Transport) {
	p.transport = transport
}

// setupUI creates and arranges all UI components
func (p *Player) setupUI() {
	p.createMenu()
	text := p.localization.GetText

	p.video = NewVideoSurface()
	p.video.OnDoubleTapped = func() {
		if p.transport != nil {
			p.transport.ToggleFullscreen()
		}
	}
	p.video.OnResized = func() {
		if p.transport != nil {
			p.transport.UpdateOverlay()
		}
	}

	p.fileLabel = widget.NewLabel(text(KeyNoFile))
	p.fileLabel.Truncation = fyne.TextTruncateEllipsis

	p.timeLabel = widget.NewLabel(TimeLabelPlaceholder)
	p.timeLabel.Alignment = fyne.TextAlignTrailing

	p.seekSlider = newKeySlider(0, SeekSliderMax, p.handleKey)
	p.seekSlider.Step = SeekSliderStep
	p.seekSlider.OnChanged = p.onSeekChanged

	p.volumeSlider = newKeySlider(0, VolumeSliderMax, p.handleKey)
	p.volumeSlider.SetValue(p.settings.GetVolume() * VolumeSliderMax)
	p.volumeSlider.OnChanged = p.onVolumeChanged
	p.volumeSlider.OnChangeEnded = func(value float64) {
		p.settings.SetVolume(value / VolumeSliderMax)
	}

	p.openBtn = widget.NewButtonWithIcon(text(KeyOpen), theme.FolderOpenIcon(), p.onOpen)
	p.playBtn = widget.NewButtonWithIcon(text(KeyPlay), theme.MediaPlayIcon(), p.onPlay)
	p.stopBtn = widget.NewButtonWithIcon(text(KeyStop), theme.MediaStopIcon(), p.onStop)
	p.fullscreenBtn = widget.NewButtonWithIcon(text(KeyFullscreen), theme.ViewFullScreenIcon(), p.onFullscreen)

	seekRow := container.NewBorder(nil, nil, nil,
		container.NewGridWrap(fyne.NewSize(TimeLabelWidth, p.timeLabel.MinSize().Height), p.timeLabel),
		p.seekSlider,
	)
	p.volumeLabel = widget.NewLabel(text(KeyVolume))
	volumeBox := container.NewHBox(
		widget.NewIcon(theme.VolumeUpIcon()),
		p.volumeLabel,
		container.NewGridWrap(fyne.NewSize(VolumeSliderWidth, p.volumeSlider.MinSize().Height), p.volumeSlider),
	)
	buttonRow := container.NewBorder(nil, nil,
		container.NewHBox(p.openBtn, p.playBtn, p.stopBtn, p.fullscreenBtn),
		volumeBox,
	)
	controls := container.NewVBox(p.fileLabel, seekRow, buttonRow)

	content := container.NewBorder(
		nil,      // top
		controls, // bottom
		nil,      // left
		nil,      // right
		p.video,  // center - expands with the window
	)
	p.window.SetContent(content)
	p.window.Canvas().SetOnTypedKey(p.handleKey)
}

// createMenu creates the application menu
func (p *Player) createMenu() {
	text := p.localization.GetText

	openItem := fyne.NewMenuItem(text(KeyOpen), p.onOpen)
	showItem := fyne.NewMenuItem(text(KeyShowInFolder), p.onShowInFolder)
	settingsItem := fyne.NewMenuItem(text(KeySettings), p.onShowSettings)
	quitItem := fyne.NewMenuItem(text(KeyQuit), p.app.Quit)
	quitItem.IsQuit = true

	languageMenu := fyne.NewMenu(text(KeyLanguage))
	for code, name := range p.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			p.onLanguageChange(langCode)
		})
		langItem.Checked = p.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	p.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(text(KeyFile), openItem, showItem, fyne.NewMenuItemSeparator(), settingsItem, quitItem),
		languageMenu,
	))
}

// OpenFile loads path through the controller
func (p *Player) OpenFile(path string) {
	if p.transport == nil {
		return
	}
	if err := p.transport.LoadFile(path); err != nil {
		p.logger.Debug().Err(err).Str(log.FieldPath, path).Msg("load failed")
		return
	}
	p.settings.SetLastDirectory(filepath.Dir(path))
}

// StartTicker refreshes the position widgets every TickInterval until Close
func (p *Player) StartTicker() {
	if p.tickerCancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.tickerCancel = cancel
	p.tickerDone = make(chan struct{})

	go func() {
		defer close(p.tickerDone)
		ticker := time.NewTicker(TickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fyne.Do(p.tick)
			}
		}
	}()
}

func (p *Player) tick() {
	if p.transport != nil {
		p.transport.Tick()
	}
}

// Close stops the ticker. Safe to call more than once.
func (p *Player) Close() {
	p.closeOnce.Do(func() {
		if p.tickerCancel != nil {
			p.tickerCancel()
			<-p.tickerDone
		}
	})
}

// ShowError implements playback.View
func (p *Player) ShowError(err error) {
	if err == nil {
		return
	}
	p.logger.Debug().Err(err).Msg("showing error")

	switch {
	case errors.Is(err, playback.ErrNoPipeline):
		dialog.ShowError(fmt.Errorf("%w\n\n%s", err, playback.NoPipelineHelp), p.window)
	case playback.IsUserError(err):
		dialog.ShowInformation(p.localization.GetText(KeyWarning), err.Error(), p.window)
	default:
		dialog.ShowError(err, p.window)
	}
}

// SetTitle implements playback.View
func (p *Player) SetTitle(title string) {
	appTitle := p.localization.GetText(KeyAppTitle)
	if title == "" {
		p.fileLabel.SetText(p.localization.GetText(KeyNoFile))
		p.window.SetTitle(appTitle)
		p.video.Clear()
		return
	}
	p.fileLabel.SetText(title)
	p.window.SetTitle(title + TitleSeparator + appTitle)
}

// SetPlaying implements playback.View
func (p *Player) SetPlaying(playing bool) {
	p.playing = playing
	p.updatePlayButton()
}

func (p *Player) updatePlayButton() {
	if p.playing {
		p.playBtn.SetText(p.localization.GetText(KeyPause))
		p.playBtn.SetIcon(theme.MediaPauseIcon())
		return
	}
	p.playBtn.SetText(p.localization.GetText(KeyPlay))
	p.playBtn.SetIcon(theme.MediaPlayIcon())
}

// SetTimeLabel implements playback.View
func (p *Player) SetTimeLabel(text string) {
	p.timeLabel.SetText(text)
}

// SetSeekPosition implements playback.View. The slider's change handler is
// suppressed so that the update does not seek.
func (p *Player) SetSeekPosition(percent float64) {
	p.updatingSeek = true
	p.seekSlider.SetValue(percent)
	p.updatingSeek = false
}

// SetFullScreen implements playback.View
func (p *Player) SetFullScreen(fullscreen bool) {
	p.window.SetFullScreen(fullscreen)
}

// VideoArea implements playback.View. The rectangle is in device pixels.
func (p *Player) VideoArea() image.Rectangle {
	pos := p.app.Driver().AbsolutePositionForObject(p.video)
	size := p.video.Size()
	scale := p.window.Canvas().Scale()
	return image.Rect(
		int(pos.X*scale),
		int(pos.Y*scale),
		int((pos.X+size.Width)*scale),
		int((pos.Y+size.Height)*scale),
	)
}

// RenderFrame implements playback.View
func (p *Player) RenderFrame(frame *image.RGBA) {
	p.video.PushFrame(frame)
}

func (p *Player) onSeekChanged(value float64) {
	if p.updatingSeek || p.transport == nil {
		return
	}
	if err := p.transport.SeekPercent(value); err != nil {
		p.logger.Debug().Err(err).Float64("percent", value).Msg("seek ignored")
	}
}

func (p *Player) onVolumeChanged(value float64) {
	if p.transport == nil {
		return
	}
	p.transport.SetVolume(value / VolumeSliderMax)
}

func (p *Player) onOpen() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			p.ShowError(fmt.Errorf("%s: %w", p.localization.GetText(KeyErrorOpeningFile), err))
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		p.OpenFile(path)
	}, p.window)

	d.SetFilter(storage.NewExtensionFileFilter(platform.SortedMediaExtensions()))
	if dir := p.settings.GetLastDirectory(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Resize(fyne.NewSize(WindowWidth*0.8, WindowHeight*0.8))
	d.Show()
}

func (p *Player) onPlay() {
	if p.transport == nil {
		return
	}
	if err := p.transport.Play(); err != nil {
		p.logger.Debug().Err(err).Msg("play ignored")
	}
}

func (p *Player) onStop() {
	if p.transport == nil {
		return
	}
	if err := p.transport.Stop(); err != nil {
		p.logger.Debug().Err(err).Msg("stop ignored")
	}
}

func (p *Player) onFullscreen() {
	if p.transport != nil {
		p.transport.ToggleFullscreen()
	}
}

func (p *Player) onShowInFolder() {
	if p.transport == nil {
		return
	}
	path := p.transport.Session().FilePath
	if path == "" {
		return
	}
	if err := platform.OpenFileInManager(path); err != nil {
		p.logger.Warn().Err(err).Str(log.FieldPath, path).Msg("failed to reveal file")
		p.ShowError(fmt.Errorf("%s: %w", p.localization.GetText(KeyErrorOpeningFile), err))
	}
}

// onShowSettings shows the settings dialog
func (p *Player) onShowSettings() {
	ShowSettingsDialog(p.window, p.settings, p.localization, p.onSettingsSaved)
}

func (p *Player) onSettingsSaved() {
	if p.transport != nil {
		p.transport.SetPreferredRenderer(p.settings.GetPreferredRenderer())
		p.transport.SetAutoStart(p.settings.GetAutoPlay(), p.settings.GetAutoFullscreen())
	}
	p.applyLanguage(p.settings.GetLanguage())
	dialog.ShowInformation(p.localization.GetText(KeySettings), p.localization.GetText(KeySettingsSaved), p.window)
}

// onLanguageChange handles language change from the menu
func (p *Player) onLanguageChange(langCode string) {
	p.settings.SetLanguage(langCode)
	p.applyLanguage(langCode)
}

func (p *Player) applyLanguage(langCode string) {
	p.localization.SetLanguage(langCode)
	p.refreshUITexts()
	p.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (p *Player) refreshUITexts() {
	text := p.localization.GetText
	p.openBtn.SetText(text(KeyOpen))
	p.stopBtn.SetText(text(KeyStop))
	p.fullscreenBtn.SetText(text(KeyFullscreen))
	p.volumeLabel.SetText(text(KeyVolume))
	p.updatePlayButton()

	title := ""
	if p.transport != nil {
		session := p.transport.Session()
		if session.HasMedia() {
			title = session.DisplayTitle()
		}
	}
	if title == "" {
		p.fileLabel.SetText(text(KeyNoFile))
		p.window.SetTitle(text(KeyAppTitle))
	} else {
		p.window.SetTitle(title + TitleSeparator + text(KeyAppTitle))
	}
}

// handleKey maps window-level keys to transport actions
func (p *Player) handleKey(ev *fyne.KeyEvent) {
	if p.transport == nil {
		return
	}

	switch ev.Name {
	case fyne.KeyF:
		p.transport.ToggleFullscreen()
	case fyne.KeyEscape:
		p.transport.ExitFullscreen()
	case fyne.KeyLeft:
		p.seekBy(-p.settings.GetSeekStep())
	case fyne.KeyRight:
		p.seekBy(p.settings.GetSeekStep())
	case fyne.KeySpace:
		p.onPlay()
	}
}

func (p *Player) seekBy(delta time.Duration) {
	if err := p.transport.SeekRelative(delta); err != nil {
		p.logger.Debug().Err(err).Dur("delta", delta).Msg("seek ignored")
	}
}
