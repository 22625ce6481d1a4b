// Package server runs the HTTP server of the wellness service together with
// its background workers.
//
// It owns the process lifecycle: startup, signal handling, and graceful
// shutdown of the listener and the workers within a bounded timeout.
package server
