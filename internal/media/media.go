package media

import (
	"errors"
	"image"
	"time"

	"github.com/ytget/mediaplayer/internal/model"
)

// Well-known element names looked up after a pipeline is built.
const (
	VideoSinkName = "videosink"
	AudioSinkName = "audiosink"
)

// Errors reported by WaitState.
var (
	ErrStateFailure = errors.New("state change failed")
	ErrStateTimeout = errors.New("state change timed out")
)

// Engine turns launch descriptions into pipelines.
type Engine interface {
	// Parse builds a pipeline from a declarative description. No state change
	// is requested; the pipeline starts in NULL.
	Parse(description string) (Pipeline, error)
}

// Element is a named node of a pipeline graph.
type Element interface {
	Name() string
	SetProperty(name string, value any) error
}

// Pipeline is the top-level element graph.
type Pipeline interface {
	Element

	// SetState requests a transition; it does not wait for it.
	SetState(state model.State) error
	// WaitState blocks until a pending transition finishes or timeout elapses.
	WaitState(timeout time.Duration) (model.State, error)

	Position() (time.Duration, bool)
	Duration() (time.Duration, bool)
	// Seek performs a flushing, key-unit aligned seek.
	Seek(position time.Duration) error

	ElementByName(name string) (Element, bool)
	Bus() Bus

	// Close sets the pipeline to NULL and releases it. Safe to call twice.
	Close() error
}

// Bus delivers pipeline messages.
type Bus interface {
	// Pop waits up to timeout for the next message.
	Pop(timeout time.Duration) (Message, bool)
}

// MessageType enumerates the bus messages the player reacts to.
type MessageType int

const (
	MessageUnknown MessageType = iota
	MessageError
	MessageWarning
	MessageEOS
	MessageStateChanged
)

// String returns the string representation of MessageType
func (t MessageType) String() string {
	switch t {
	case MessageError:
		return "error"
	case MessageWarning:
		return "warning"
	case MessageEOS:
		return "eos"
	case MessageStateChanged:
		return "state-changed"
	default:
		return "unknown"
	}
}

// Message is a decoded bus message.
type Message struct {
	Type   MessageType
	Source string // name of the posting element

	// Error and warning payload
	Text  string
	Debug string

	// State change payload
	OldState model.State
	NewState model.State
}

// Overlay is implemented by video sinks that render into a caller-chosen
// rectangle.
type Overlay interface {
	SetRenderRectangle(x, y, width, height int) error
	Expose() error
}

// FrameSource is implemented by sinks that hand decoded RGBA frames to the
// application instead of drawing them. The handler runs on a streaming thread.
type FrameSource interface {
	SetFrameHandler(handler func(frame *image.RGBA))
}
