package playback

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ytget/mediaplayer/internal/log"
	"github.com/ytget/mediaplayer/internal/media"
)

// BusPollInterval bounds a single bus pop so the bridge notices cancellation.
const BusPollInterval = 100 * time.Millisecond

// Bridge forwards bus messages of one pipeline onto the UI event loop.
type Bridge struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// StartBridge pops messages from bus until Stop is called and hands each one
// to handle through dispatch.
func StartBridge(bus media.Bus, dispatch Dispatcher, handle func(media.Message), logger zerolog.Logger) *Bridge {
	ctx, cancel := context.WithCancel(context.Background())
	b := &Bridge{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(b.done)
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			msg, ok := bus.Pop(BusPollInterval)
			if !ok {
				continue
			}
			if ctx.Err() != nil {
				return
			}

			logger.Debug().
				Str(log.FieldEvent, msg.Type.String()).
				Str(log.FieldElement, msg.Source).
				Msg("bus message")
			dispatch(func() { handle(msg) })
		}
	}()

	return b
}

// Stop ends the bridge goroutine and waits for it to exit. Messages already
// dispatched may still run afterwards.
func (b *Bridge) Stop() {
	b.cancel()
	<-b.done
}
