package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// renderSpinner animates a status line on statusOut while a render runs.
// It stops on Stop or when the parent context is cancelled, clearing the
// line either way.
type renderSpinner struct {
	out      io.Writer
	message  string
	interval time.Duration
	parent   context.Context
	ctx      context.Context
	cancel   context.CancelFunc
	stopped  chan struct{}
	started  bool
	stopOnce sync.Once
	mu       sync.Mutex
}

// newRenderSpinner creates a spinner for rendering input.
func newRenderSpinner(ctx context.Context, input string) *renderSpinner {
	spinCtx, cancel := context.WithCancel(ctx)
	return &renderSpinner{
		out:      statusOut,
		message:  fmt.Sprintf("Rendering %s...", filepath.Base(input)),
		interval: spinnerInterval,
		parent:   ctx,
		ctx:      spinCtx,
		cancel:   cancel,
		stopped:  make(chan struct{}),
	}
}

// Start begins the animation.
func (s *renderSpinner) Start() {
	s.started = true
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-ticker.C:
				s.frame(i)
			}
		}
	}()
}

func (s *renderSpinner) frame(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	glyph := spinnerFrames[i%len(spinnerFrames)]
	fmt.Fprintf(s.out, "\r%s %s", styleIconSpinner.Render(glyph), StyleDim.Render(s.message))
}

// Stop ends the animation and clears the status line. Later calls do nothing.
func (s *renderSpinner) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		if !s.started {
			s.clearLine()
			return
		}
		<-s.stopped
	})
}

func (s *renderSpinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}

// StopWithSuccess stops the spinner and prints a success line.
func (s *renderSpinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and prints an error line.
func (s *renderSpinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the render was interrupted through the parent
// context rather than stopped.
func (s *renderSpinner) Cancelled() bool {
	return s.parent.Err() != nil
}
