package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// spinner animates a one-line status message while a slow task runs
// (Graphviz layout, librsvg conversion, connecting to MongoDB).
type spinner struct {
	out     io.Writer
	message string

	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	once    sync.Once
	frames  int
	mu      sync.Mutex
}

// newSpinner creates a spinner on out. It stops when ctx is done.
func newSpinner(ctx context.Context, out io.Writer, message string) *spinner {
	sctx, cancel := context.WithCancel(ctx)
	return &spinner{
		out:     out,
		message: message,
		ctx:     sctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

// start draws frames until stop is called or the context ends.
func (s *spinner) start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.draw()
			}
		}
	}()
}

func (s *spinner) draw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	frame := spinnerFrames[s.frames%len(spinnerFrames)]
	fmt.Fprintf(s.out, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
	s.frames++
}

// stop halts the animation and erases the line. Safe to call more than once.
func (s *spinner) stop() {
	s.once.Do(func() {
		s.cancel()
		<-s.stopped
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.frames > 0 {
			fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
		}
	})
}

// drawn reports how many frames were written.
func (s *spinner) drawn() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// spin runs fn with a spinner on stderr. When fn fails, failMsg is printed
// as an error line after the spinner is cleared.
func spin[T any](ctx context.Context, message, failMsg string, fn func() (T, error)) (T, error) {
	return spinTo(ctx, os.Stderr, message, failMsg, fn)
}

func spinTo[T any](ctx context.Context, out io.Writer, message, failMsg string, fn func() (T, error)) (T, error) {
	s := newSpinner(ctx, out, message)
	s.start()
	v, err := fn()
	s.stop()
	if err != nil && failMsg != "" {
		printError("%s", failMsg)
	}
	return v, err
}
