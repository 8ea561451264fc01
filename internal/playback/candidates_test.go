package playback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/mediaplayer/internal/model"
)

func TestBuildCandidates_Order(t *testing.T) {
	candidates := BuildCandidates("/media/movie.mkv", "linux")
	require.Len(t, candidates, 4)

	assert.Equal(t, model.RendererEmbedded, candidates[0].Renderer)
	assert.Equal(t, model.RendererOverlay, candidates[1].Renderer)
	assert.Equal(t, model.RendererAuto, candidates[2].Renderer)
	assert.Equal(t, model.RendererManual, candidates[3].Renderer)
}

func TestBuildCandidates_Descriptions(t *testing.T) {
	candidates := BuildCandidates("/media/my movie.mkv", "linux")

	assert.Contains(t, candidates[0].Description, `uri="file:///media/my%20movie.mkv"`)
	assert.Contains(t, candidates[0].Description, "appsink name=videosink")
	assert.Contains(t, candidates[1].Description, "xvimagesink name=videosink")
	assert.Contains(t, candidates[2].Description, "autovideosink name=videosink")
	assert.Contains(t, candidates[3].Description, `filesrc location="/media/my movie.mkv"`)
	assert.Contains(t, candidates[3].Description, "volume name=audiosink")

	for _, c := range candidates {
		assert.Contains(t, c.Description, "videosink", "%s must name its video sink", c.Renderer)
	}
}

func TestBuildCandidates_QuotesLocation(t *testing.T) {
	candidates := BuildCandidates(`/media/say "hi".mp4`, "linux")
	assert.True(t, strings.Contains(candidates[3].Description, `location="/media/say \"hi\".mp4"`),
		"got %s", candidates[3].Description)
}

func TestOverlaySinkFor(t *testing.T) {
	assert.Equal(t, "xvimagesink", OverlaySinkFor("linux"))
	assert.Equal(t, "xvimagesink", OverlaySinkFor("freebsd"))
	assert.Equal(t, "d3d11videosink", OverlaySinkFor("windows"))
	assert.Equal(t, "glimagesink", OverlaySinkFor("darwin"))
}

func TestStartingAt(t *testing.T) {
	candidates := BuildCandidates("/a.mp4", "linux")

	assert.Len(t, StartingAt(candidates, model.RendererAutoSelect), 4)
	assert.Len(t, StartingAt(candidates, model.Renderer("bogus")), 4)

	fromAuto := StartingAt(candidates, model.RendererAuto)
	require.Len(t, fromAuto, 2)
	assert.Equal(t, model.RendererAuto, fromAuto[0].Renderer)
	assert.Equal(t, model.RendererManual, fromAuto[1].Renderer)
}
