//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

// Package cli provides the interactive REPL and the terminal progress
// display for long-running batches.
package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/progress"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress
	// display.
	ProgressRefreshRate = 200 * time.Millisecond
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This decouples DisplayProgress from the concrete spinner implementation,
// facilitating easier testing. It defines the essential controls: starting,
// stopping, and updating the status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() { rs.s.Start() }

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner constructs the production spinner; tests substitute their own.
var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress consumes worker updates and renders an aggregate spinner
// line until the channel closes. It decrements wg exactly once on return.
func DisplayProgress(wg *sync.WaitGroup, updates <-chan progress.Update, total uint64, out io.Writer) {
	defer wg.Done()

	sp := newSpinner(spinner.WithWriter(out))
	sp.Start()
	defer sp.Stop()

	start := time.Now()
	completed := make(map[int]uint64)
	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	refresh := func() {
		var done uint64
		for _, c := range completed {
			done += c
		}
		suffix := fmt.Sprintf(" %s ops", format.FormatCount(done))
		if total > 0 {
			suffix = fmt.Sprintf(" %s/%s ops (%.1f%%)",
				format.FormatCount(done), format.FormatCount(total),
				100*float64(done)/float64(total))
		}
		sp.UpdateSuffix(suffix + " " + format.FormatRate(done, time.Since(start)))
	}

	for {
		select {
		case u, ok := <-updates:
			if !ok {
				refresh()
				return
			}
			completed[u.Worker] = u.Completed
		case <-ticker.C:
			refresh()
		}
	}
}
