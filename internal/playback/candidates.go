package playback

import (
	"fmt"
	"strings"

	"github.com/ytget/mediaplayer/internal/media"
	"github.com/ytget/mediaplayer/internal/model"
	"github.com/ytget/mediaplayer/internal/platform"
)

// Candidate is one pipeline variant the selector may try.
type Candidate struct {
	Renderer    model.Renderer
	Description string
}

// embeddedSinkBin converts to RGBA and hands frames to the application.
const embeddedSinkBin = "videoconvert ! videoscale ! video/x-raw,format=RGBA ! " +
	"appsink name=" + media.VideoSinkName + " max-buffers=2 drop=true"

// OverlaySinkFor returns the platform-native overlay sink factory for goos.
func OverlaySinkFor(goos string) string {
	switch goos {
	case platform.OSWindows:
		return "d3d11videosink"
	case platform.OSDarwin:
		return "glimagesink"
	default:
		return "xvimagesink"
	}
}

// BuildCandidates returns the four pipeline variants for absPath in
// preference order: embedded, overlay, auto, manual.
func BuildCandidates(absPath, goos string) []Candidate {
	uri := quote(platform.FileURI(absPath))

	return []Candidate{
		{
			Renderer:    model.RendererEmbedded,
			Description: fmt.Sprintf("playbin uri=%s video-sink=%s", uri, quote(embeddedSinkBin)),
		},
		{
			Renderer: model.RendererOverlay,
			Description: fmt.Sprintf("playbin uri=%s video-sink=%s",
				uri, quote(OverlaySinkFor(goos)+" name="+media.VideoSinkName+" force-aspect-ratio=true")),
		},
		{
			Renderer:    model.RendererAuto,
			Description: fmt.Sprintf("playbin uri=%s video-sink=%s", uri, quote("autovideosink name="+media.VideoSinkName)),
		},
		{
			Renderer: model.RendererManual,
			Description: fmt.Sprintf("filesrc location=%s ! decodebin name=dec "+
				"dec. ! queue ! videoconvert ! videoscale ! autovideosink name=%s "+
				"dec. ! queue ! audioconvert ! audioresample ! volume name=%s ! autoaudiosink",
				quote(absPath), media.VideoSinkName, media.AudioSinkName),
		},
	}
}

// StartingAt drops the candidates that precede preferred. Auto-select and
// unknown renderers keep the full list.
func StartingAt(candidates []Candidate, preferred model.Renderer) []Candidate {
	if preferred == model.RendererAutoSelect {
		return candidates
	}
	for i, c := range candidates {
		if c.Renderer == preferred {
			return candidates[i:]
		}
	}
	return candidates
}

// quote wraps s in double quotes for the launch syntax parser.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
