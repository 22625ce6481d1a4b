// Package workers runs the background jobs of the service next to the HTTP
// server. It defines the Worker interface, a Workers group that starts and
// awaits them, and the conversation janitor that expires idle chat contexts.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
