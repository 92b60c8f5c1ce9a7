package cli

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"
)

// captureStatus redirects statusOut to a buffer for the test.
func captureStatus(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	statusOut = buf
	t.Cleanup(func() { statusOut = os.Stderr })
	return buf
}

func clearedLine(s *renderSpinner) string {
	return "\r" + strings.Repeat(" ", len(s.message)+4) + "\r"
}

func TestRenderSpinnerFrames(t *testing.T) {
	buf := captureStatus(t)

	s := newRenderSpinner(context.Background(), "/data/genome.txt")
	s.interval = 5 * time.Millisecond
	s.Start()
	time.Sleep(60 * time.Millisecond)
	s.Stop()

	out := buf.String()
	if s.message != "Rendering genome.txt..." {
		t.Errorf("message = %q", s.message)
	}
	for _, want := range []string{"\r", spinnerFrames[0], spinnerFrames[1], s.message} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q: %q", want, out)
		}
	}
	if !strings.HasSuffix(out, clearedLine(s)) {
		t.Errorf("status line not cleared on stop: %q", out)
	}
}

func TestRenderSpinnerStopWithoutStart(t *testing.T) {
	buf := captureStatus(t)

	s := newRenderSpinner(context.Background(), "genome.txt")
	s.Stop()
	if buf.String() != clearedLine(s) {
		t.Errorf("status output = %q, want only the cleared line", buf.String())
	}
}

func TestRenderSpinnerStopIsIdempotent(t *testing.T) {
	buf := captureStatus(t)

	s := newRenderSpinner(context.Background(), "genome.txt")
	s.Start()
	s.Stop()
	s.Stop()
	s.Stop()

	if got := strings.Count(buf.String(), clearedLine(s)); got != 1 {
		t.Errorf("line cleared %d times, want 1", got)
	}
}

func TestRenderSpinnerCancelled(t *testing.T) {
	captureStatus(t)

	ctx, cancel := context.WithCancel(context.Background())
	s := newRenderSpinner(ctx, "genome.txt")
	s.Start()
	cancel()
	s.Stop()

	if !s.Cancelled() {
		t.Error("spinner should report cancellation of its parent context")
	}
}

func TestRenderSpinnerStopNotCancelled(t *testing.T) {
	captureStatus(t)

	s := newRenderSpinner(context.Background(), "genome.txt")
	s.Start()
	s.Stop()

	if s.Cancelled() {
		t.Error("Stop should not count as cancellation")
	}
}

func TestRenderSpinnerTimeout(t *testing.T) {
	buf := captureStatus(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	s := newRenderSpinner(ctx, "genome.txt")
	s.Start()
	<-s.stopped

	if !s.Cancelled() {
		t.Error("spinner should be cancelled after the timeout")
	}
	if !strings.HasSuffix(buf.String(), clearedLine(s)) {
		t.Errorf("status line not cleared on timeout: %q", buf.String())
	}
}

func TestRenderSpinnerStopWithMessage(t *testing.T) {
	tests := []struct {
		name string
		stop func(*renderSpinner)
		icon string
		want string
	}{
		{"success", func(s *renderSpinner) { s.StopWithSuccess("Done") }, iconSuccess, "Done"},
		{"error", func(s *renderSpinner) { s.StopWithError("Render failed") }, iconError, "Render failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureStatus(t)
			s := newRenderSpinner(context.Background(), "genome.txt")
			s.Start()
			tt.stop(s)

			out := buf.String()
			for _, want := range []string{tt.icon, tt.want} {
				if !strings.Contains(out, want) {
					t.Errorf("status output missing %q: %q", want, out)
				}
			}
			if strings.Index(out, clearedLine(s)) > strings.Index(out, tt.want) {
				t.Error("line should be cleared before the final message")
			}
		})
	}
}
