// Package progress defines the update messages flowing from long-running
// workers to whichever display is attached (spinner, log lines, TUI).
package progress

// Update is one progress report from a worker.
type Update struct {
	// Worker identifies the reporting worker.
	Worker int
	// Completed is the number of operations this worker has finished.
	Completed uint64
}
