package model

import (
	"path/filepath"
	"strings"
	"time"
)

// Metadata holds descriptive tags read from a media file.
type Metadata struct {
	Title  string
	Artist string
	Album  string
}

// Session is the single source of truth for what the player is doing.
type Session struct {
	FilePath   string
	Duration   time.Duration // zero when unknown
	Playing    bool
	Fullscreen bool
	Volume     float64  // 0.0 to 1.0
	State      State
	Renderer   Renderer // candidate that built the active pipeline
	Metadata   Metadata
}

// HasMedia reports whether a file is currently loaded.
func (s Session) HasMedia() bool {
	return s.FilePath != ""
}

// Reset clears everything tied to the loaded file. Volume and fullscreen survive.
func (s *Session) Reset() {
	s.FilePath = ""
	s.Duration = 0
	s.Playing = false
	s.State = StateNull
	s.Renderer = ""
	s.Metadata = Metadata{}
}

// DisplayTitle returns tag title, file name, or empty string in order of preference
func (s Session) DisplayTitle() string {
	if s.Metadata.Title != "" {
		if s.Metadata.Artist != "" {
			return s.Metadata.Artist + " - " + s.Metadata.Title
		}
		return s.Metadata.Title
	}

	if s.FilePath == "" {
		return ""
	}

	// Support both / and \ separators regardless of host OS
	name := filepath.Base(strings.ReplaceAll(s.FilePath, "\\", "/"))
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}

// TimeLabel renders "position / duration".
func (s Session) TimeLabel(position time.Duration) string {
	return FormatTime(position) + " / " + FormatTime(s.Duration)
}

// PositionPercent converts a position into a 0..100 slider value.
func (s Session) PositionPercent(position time.Duration) float64 {
	if s.Duration <= 0 || position <= 0 {
		return 0
	}
	pct := float64(position) / float64(s.Duration) * 100
	if pct > 100 {
		return 100
	}
	return pct
}
