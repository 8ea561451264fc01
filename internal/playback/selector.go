package playback

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/ytget/mediaplayer/internal/log"
	"github.com/ytget/mediaplayer/internal/media"
	"github.com/ytget/mediaplayer/internal/model"
	"github.com/ytget/mediaplayer/internal/platform"
)

// DefaultStateTimeout bounds every synchronous wait for a state transition.
const DefaultStateTimeout = 2 * time.Second

// Selection is the outcome of a successful probe.
type Selection struct {
	Path      string
	Candidate Candidate
	Pipeline  media.Pipeline
	VideoSink media.Element // nil when the pipeline has no element named videosink
}

// Selector builds the first candidate pipeline that prerolls.
type Selector struct {
	engine  media.Engine
	logger  zerolog.Logger
	timeout time.Duration
	goos    string
}

// NewSelector creates a selector for the host platform
func NewSelector(engine media.Engine, logger zerolog.Logger) *Selector {
	return &Selector{
		engine:  engine,
		logger:  logger,
		timeout: DefaultStateTimeout,
		goos:    runtime.GOOS,
	}
}

// SetTimeout overrides the preroll wait
func (s *Selector) SetTimeout(timeout time.Duration) {
	if timeout > 0 {
		s.timeout = timeout
	}
}

// Select checks that path exists, then tries candidates starting at preferred.
// Each candidate is parsed and brought to PAUSED; the first one that gets
// there wins and is returned still PAUSED. Failed candidates are torn down.
func (s *Selector) Select(ctx context.Context, path string, preferred model.Renderer) (*Selection, error) {
	absPath, err := platform.CheckMediaFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	candidates := StartingAt(BuildCandidates(absPath, s.goos), preferred)

	var errs []error
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		logger := s.logger.With().Str(log.FieldCandidate, c.Renderer.String()).Logger()
		logger.Debug().Str("description", c.Description).Msg("trying pipeline")

		p, err := s.engine.Parse(c.Description)
		if err != nil {
			logger.Info().Err(err).Msg("pipeline did not parse")
			errs = append(errs, fmt.Errorf("%s: %w", c.Renderer, err))
			continue
		}

		if err := s.preroll(p); err != nil {
			logger.Info().Err(err).Msg("pipeline did not preroll")
			errs = append(errs, fmt.Errorf("%s: %w", c.Renderer, err))
			if cerr := p.Close(); cerr != nil {
				logger.Warn().Err(cerr).Msg("failed to tear down candidate")
			}
			continue
		}

		sink, ok := p.ElementByName(media.VideoSinkName)
		if !ok {
			sink = nil
		}

		logger.Info().Str(log.FieldPath, absPath).Msg("pipeline selected")
		return &Selection{
			Path:      absPath,
			Candidate: c,
			Pipeline:  p,
			VideoSink: sink,
		}, nil
	}

	return nil, fmt.Errorf("%w: %w", ErrNoPipeline, errors.Join(errs...))
}

func (s *Selector) preroll(p media.Pipeline) error {
	if err := p.SetState(model.StatePaused); err != nil {
		return err
	}
	_, err := p.WaitState(s.timeout)
	return err
}
