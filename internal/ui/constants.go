package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	TimeLabelPlaceholder = "00:00 / 00:00"
	TitleSeparator       = " - "
)

// Window and control sizing
const (
	WindowWidth  float32 = 960
	WindowHeight float32 = 600

	VideoMinWidth  float32 = 320
	VideoMinHeight float32 = 180

	VolumeSliderWidth float32 = 140
	TimeLabelWidth    float32 = 120
)

// Slider ranges
const (
	SeekSliderMax   = 100
	SeekSliderStep  = 0.1
	VolumeSliderMax = 100
)

// Periodic refresh of the time label and seek slider
const (
	TickInterval = 100 * time.Millisecond
)
