package progress

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

// SpinnerSink renders progress events as a terminal spinner on stderr, so
// stdout stays clean for command output.
type SpinnerSink struct {
	s *spinner.Spinner
}

// NewSpinnerSink creates the spinner-backed progress sink.
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	return &SpinnerSink{s: s}
}

// OnProgress updates the spinner message, or stops the spinner for terminal
// (non-spinner) events.
func (p *SpinnerSink) OnProgress(_ context.Context, event usecase.ProgressEvent) {
	if !event.Spinner {
		p.Stop()
		if event.Message != "" {
			fmt.Fprintln(os.Stderr, event.Message)
		}
		return
	}

	msg := event.Message
	if event.Total > 0 {
		msg = fmt.Sprintf("%s (%d/%d)", event.Message, event.Current, event.Total)
	}
	p.s.Suffix = " " + msg
	if !p.s.Active() {
		p.s.Start()
	}
}

// Stop halts the spinner if it is running.
func (p *SpinnerSink) Stop() {
	if p.s.Active() {
		p.s.Stop()
	}
}

// Ensure the sink implements the interface
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
