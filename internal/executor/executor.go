// Package executor defines the boundary between the controller and the
// physical or simulated motion backend. An Executor must never block
// for long inside Execute: queued_time lets the controller apply its
// own backpressure instead.
package executor

import (
	"github.com/chrisns/snapmaker-cnc-motion/internal/primitive"
)

// Executor accepts primitives for execution, reports how much queued
// time is outstanding, and can be drained with Flush.
type Executor interface {
	// Execute enqueues a primitive. It must fail fast: a backend that
	// cannot accept more work returns an error rather than blocking.
	Execute(p primitive.MotionPrimitive) error

	// QueuedTime reports the estimated seconds of motion still queued
	// on the backend but not yet confirmed complete.
	QueuedTime() float64

	// Flush blocks until all queued primitives have been confirmed
	// complete, or returns an error from the backend.
	Flush() error

	// Close releases backend resources. Safe to call once, after Flush.
	Close() error
}
