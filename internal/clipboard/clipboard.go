package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable is returned when no clipboard backend can be reached.
var ErrUnavailable = errors.New("clipboard is not available")

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(text string) error

func (f WriterFunc) WriteText(text string) error {
	return f(text)
}

// System writes through the OS clipboard tools (pbcopy, xclip, wl-copy, ...).
type System struct{}

func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// OSC52 asks the terminal emulator to set the clipboard with an escape
// sequence, which also works over SSH.
type OSC52 struct {
	Out io.Writer
}

func (o OSC52) WriteText(text string) error {
	out := o.Out
	if out == nil {
		out = os.Stderr
	}
	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write osc52 sequence: %w", err)
	}
	return nil
}

// New returns the writer for a configured backend name.
func New(backend string) (Writer, error) {
	switch backend {
	case "", "system":
		return System{}, nil
	case "osc52":
		return OSC52{}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q", backend)
	}
}
