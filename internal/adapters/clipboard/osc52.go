package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/bnema/vpnc/internal/ports"
)

// Terminal copies text to the system clipboard through the OSC 52 escape
// sequence, which works over SSH and inside tmux or screen.
type Terminal struct {
	out  io.Writer
	term string
}

var _ ports.Clipboard = (*Terminal)(nil)

func NewTerminal(out io.Writer) *Terminal {
	if out == nil {
		out = os.Stderr
	}
	return &Terminal{out: out, term: os.Getenv("TERM")}
}

func (t *Terminal) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if text == "" {
		return errors.New("nothing to copy")
	}

	seq := osc52.New(text)
	switch {
	case strings.HasPrefix(t.term, "screen"):
		seq = seq.Screen()
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	}

	if _, err := seq.WriteTo(t.out); err != nil {
		return fmt.Errorf("write clipboard sequence: %w", err)
	}
	return nil
}
