// Package probe reads facts about a media file without building a pipeline:
// container duration through ffprobe and descriptive tags through dhowden/tag.
package probe

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/dhowden/tag"

	"github.com/ytget/mediaplayer/internal/model"
)

// FFprobe constants
const (
	FFprobeCommand      = "ffprobe"
	FFprobeLogLevel     = "error"
	FFprobeShowEntries  = "format=duration"
	FFprobeOutputFormat = "csv=p=0"

	DefaultTimeout = 3 * time.Second
)

// Prober looks up duration and tags for a file.
type Prober struct {
	command string
	timeout time.Duration
}

// NewProber creates a prober using ffprobe from PATH
func NewProber() *Prober {
	return &Prober{command: FFprobeCommand, timeout: DefaultTimeout}
}

// SetTimeout bounds a single ffprobe run
func (p *Prober) SetTimeout(timeout time.Duration) {
	if timeout > 0 {
		p.timeout = timeout
	}
}

// Available reports whether the ffprobe binary can be found
func (p *Prober) Available() bool {
	_, err := exec.LookPath(p.command)
	return err == nil
}

// BuildArgs builds the ffprobe command arguments
func (p *Prober) BuildArgs(filePath string) []string {
	return []string{
		"-v", FFprobeLogLevel,
		"-show_entries", FFprobeShowEntries,
		"-of", FFprobeOutputFormat,
		filePath,
	}
}

// Duration gets the container duration of a media file using ffprobe
func (p *Prober) Duration(ctx context.Context, filePath string) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	output, err := exec.CommandContext(ctx, p.command, p.BuildArgs(filePath)...).Output()
	if err != nil {
		return 0, fmt.Errorf("failed to run ffprobe: %w", err)
	}
	return ParseDuration(string(output))
}

// ParseDuration parses ffprobe's "seconds.fraction" output
func ParseDuration(output string) (time.Duration, error) {
	durationStr := strings.TrimSpace(output)
	if durationStr == "" || durationStr == "N/A" {
		return 0, fmt.Errorf("duration not reported")
	}

	seconds, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}
	if seconds < 0 {
		return 0, fmt.Errorf("negative duration: %s", durationStr)
	}

	return time.Duration(seconds * float64(time.Second)), nil
}

// Metadata reads title, artist and album tags. Files without tags return an
// empty Metadata and tag.ErrNoTagsFound.
func (p *Prober) Metadata(filePath string) (model.Metadata, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return model.Metadata{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return model.Metadata{}, err
	}

	return model.Metadata{
		Title:  strings.TrimSpace(m.Title()),
		Artist: strings.TrimSpace(m.Artist()),
		Album:  strings.TrimSpace(m.Album()),
	}, nil
}
