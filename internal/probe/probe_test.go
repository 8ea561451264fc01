package probe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dhowden/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		output   string
		expected time.Duration
		wantErr  bool
	}{
		{"65.000000\n", 65 * time.Second, false},
		{"  3661.5 ", 3661*time.Second + 500*time.Millisecond, false},
		{"0", 0, false},
		{"N/A\n", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"-1", 0, true},
	}

	for _, test := range tests {
		result, err := ParseDuration(test.output)
		if test.wantErr {
			assert.Error(t, err, "ParseDuration(%q)", test.output)
			continue
		}
		require.NoError(t, err, "ParseDuration(%q)", test.output)
		assert.Equal(t, test.expected, result, "ParseDuration(%q)", test.output)
	}
}

func TestBuildArgs(t *testing.T) {
	args := NewProber().BuildArgs("/input.mp4")

	expectedArgs := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "csv=p=0",
		"/input.mp4",
	}
	assert.Equal(t, expectedArgs, args)
}

func TestSetTimeout(t *testing.T) {
	p := NewProber()
	p.SetTimeout(0)
	assert.Equal(t, DefaultTimeout, p.timeout)

	p.SetTimeout(time.Second)
	assert.Equal(t, time.Second, p.timeout)
}

func TestDuration_MissingBinary(t *testing.T) {
	p := &Prober{command: "ffprobe-does-not-exist", timeout: time.Second}
	assert.False(t, p.Available())

	_, err := p.Duration(context.Background(), "/input.mp4")
	assert.Error(t, err)
}

func TestMetadata_NoTags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.mp3")
	require.NoError(t, os.WriteFile(path, make([]byte, 256), 0o644))

	m, err := NewProber().Metadata(path)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, tag.ErrNoTagsFound), "got %v", err)
	assert.Empty(t, m.Title)
}

func TestMetadata_MissingFile(t *testing.T) {
	_, err := NewProber().Metadata(filepath.Join(t.TempDir(), "missing.mp3"))
	assert.Error(t, err)
}
