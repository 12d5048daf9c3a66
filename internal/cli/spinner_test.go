package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/graphcanvas/pkg/errors"
)

// syncBuffer guards a bytes.Buffer shared with the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerDrawsAndClears(t *testing.T) {
	var out syncBuffer
	s := newSpinner(context.Background(), &out, "Rendering SVG")
	s.start()
	time.Sleep(3 * spinnerInterval)
	s.stop()

	if s.drawn() == 0 {
		t.Fatal("spinner drew no frames")
	}
	got := out.String()
	if !strings.Contains(got, "Rendering SVG") {
		t.Errorf("output missing message: %q", got)
	}
	if !strings.HasSuffix(got, "\r") {
		t.Errorf("line not cleared after stop: %q", got)
	}
}

func TestSpinnerStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var out syncBuffer
	s := newSpinner(ctx, &out, "Connecting to MongoDB...")
	s.start()
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner kept running after context cancellation")
	}
	s.stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	var out syncBuffer
	s := newSpinner(context.Background(), &out, "layout")
	s.start()
	s.stop()
	s.stop()
}

func TestSpinTo(t *testing.T) {
	var out syncBuffer
	got, err := spinTo(context.Background(), &out, "Rendering PDF", "", func() ([]byte, error) {
		return []byte("%PDF"), nil
	})
	if err != nil || string(got) != "%PDF" {
		t.Errorf("spinTo = %q, %v", got, err)
	}

	want := errors.New(errors.ErrCodeUnsupported, "no librsvg")
	_, err = spinTo(context.Background(), &out, "Rendering PDF", "", func() ([]byte, error) {
		return nil, want
	})
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("spinTo err = %v, want the task error", err)
	}
}
