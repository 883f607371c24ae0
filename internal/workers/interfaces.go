// Package workers provides abstractions for managing and running
// startup and background jobs in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any job run through
// [Workers]. It defines a single Run method that executes the job.
//
// Implementations are expected to block for the duration of their work
// and to report failures through their own logger.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    // do the job
//	}
type Worker interface {
	Run(ctx context.Context)
}
