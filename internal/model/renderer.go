package model

// Renderer names a video output strategy. Candidates are probed in the order
// of Renderers.
type Renderer string

const (
	// RendererAutoSelect starts probing at the first candidate
	RendererAutoSelect Renderer = "auto-select"

	// RendererEmbedded draws decoded frames on the application's own canvas
	RendererEmbedded Renderer = "embedded"

	// RendererOverlay uses the platform-native overlay sink
	RendererOverlay Renderer = "overlay"

	// RendererAuto lets the engine pick a video sink
	RendererAuto Renderer = "auto"

	// RendererManual is the hand-built decode chain fallback
	RendererManual Renderer = "manual"
)

// Renderers lists concrete renderers in preference order.
var Renderers = []Renderer{RendererEmbedded, RendererOverlay, RendererAuto, RendererManual}

// String returns the string representation of Renderer
func (r Renderer) String() string {
	return string(r)
}

// IsValid reports whether r is auto-select or one of Renderers
func (r Renderer) IsValid() bool {
	if r == RendererAutoSelect {
		return true
	}
	for _, known := range Renderers {
		if r == known {
			return true
		}
	}
	return false
}
