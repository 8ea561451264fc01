package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/mediaplayer/internal/model"
	"github.com/ytget/mediaplayer/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyVolume            = "volume"
	KeyLastDirectory     = "last_directory"
	KeyPreferredRenderer = "preferred_renderer"
	KeySeekStep          = "seek_step_seconds"
	KeyLanguage          = "app_language"
	KeyAutoPlay          = "auto_play"
	KeyAutoFullscreen    = "auto_fullscreen"
)

// Default values
const (
	DefaultVolume            = 0.8
	DefaultPreferredRenderer = model.RendererAutoSelect
	DefaultSeekStepSeconds   = 5
	DefaultLanguage          = "system"
	DefaultAutoPlay          = true
	DefaultAutoFullscreen    = true

	MinSeekStepSeconds = 1
	MaxSeekStepSeconds = 60
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetVolume returns the remembered volume in the 0..1 range
func (s *Settings) GetVolume() float64 {
	return s.app.Preferences().FloatWithFallback(KeyVolume, DefaultVolume)
}

// SetVolume stores the volume, clamped to 0..1
func (s *Settings) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	s.app.Preferences().SetFloat(KeyVolume, volume)
}

// GetLastDirectory returns the directory of the last opened file
func (s *Settings) GetLastDirectory() string {
	dir := s.app.Preferences().String(KeyLastDirectory)
	if dir == "" {
		defaultDir, err := platform.GetHomeMediaDir()
		if err != nil {
			return ""
		}
		return defaultDir
	}
	return dir
}

// SetLastDirectory sets the directory of the last opened file
func (s *Settings) SetLastDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastDirectory, dir)
}

// GetPreferredRenderer returns the renderer the selector starts probing with
func (s *Settings) GetPreferredRenderer() model.Renderer {
	renderer := model.Renderer(s.app.Preferences().String(KeyPreferredRenderer))
	if !renderer.IsValid() {
		s.SetPreferredRenderer(DefaultPreferredRenderer)
		return DefaultPreferredRenderer
	}
	return renderer
}

// SetPreferredRenderer sets the preferred renderer; unknown values reset to auto-select
func (s *Settings) SetPreferredRenderer(renderer model.Renderer) {
	if !renderer.IsValid() {
		renderer = DefaultPreferredRenderer
	}
	s.app.Preferences().SetString(KeyPreferredRenderer, string(renderer))
}

// GetRendererOptions returns available renderer options
func (s *Settings) GetRendererOptions() []model.Renderer {
	return append([]model.Renderer{model.RendererAutoSelect}, model.Renderers...)
}

// GetSeekStep returns the arrow-key seek step
func (s *Settings) GetSeekStep() time.Duration {
	value := s.app.Preferences().Int(KeySeekStep)
	if value <= 0 {
		s.SetSeekStepSeconds(DefaultSeekStepSeconds)
		return DefaultSeekStepSeconds * time.Second
	}
	return time.Duration(value) * time.Second
}

// SetSeekStepSeconds sets the arrow-key seek step in seconds
func (s *Settings) SetSeekStepSeconds(seconds int) {
	if seconds < MinSeekStepSeconds {
		seconds = MinSeekStepSeconds
	}
	if seconds > MaxSeekStepSeconds {
		seconds = MaxSeekStepSeconds
	}
	s.app.Preferences().SetInt(KeySeekStep, seconds)
}

// GetAutoPlay reports whether playback starts right after a file is opened
func (s *Settings) GetAutoPlay() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoPlay, DefaultAutoPlay)
}

// SetAutoPlay sets whether playback starts right after a file is opened
func (s *Settings) SetAutoPlay(enabled bool) {
	s.app.Preferences().SetBool(KeyAutoPlay, enabled)
}

// GetAutoFullscreen reports whether the window goes fullscreen when a file is opened
func (s *Settings) GetAutoFullscreen() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoFullscreen, DefaultAutoFullscreen)
}

// SetAutoFullscreen sets whether the window goes fullscreen when a file is opened
func (s *Settings) SetAutoFullscreen(enabled bool) {
	s.app.Preferences().SetBool(KeyAutoFullscreen, enabled)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
