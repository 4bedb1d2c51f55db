package executor

import (
	"sync"

	"github.com/chrisns/snapmaker-cnc-motion/internal/primitive"
)

// Simulated is an in-memory Executor used for dry runs (Config.Simulate)
// and by tests: Execute completes immediately, so QueuedTime is always 0 and
// Flush never blocks. It still records every primitive it was given,
// for assertions.
type Simulated struct {
	mu       sync.Mutex
	executed []primitive.MotionPrimitive
	closed   bool
}

// NewSimulated returns a ready Simulated executor.
func NewSimulated() *Simulated {
	return &Simulated{}
}

// Execute records p and returns immediately.
func (s *Simulated) Execute(p primitive.MotionPrimitive) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.executed = append(s.executed, p)
	return nil
}

// QueuedTime is always 0: Simulated never queues.
func (s *Simulated) QueuedTime() float64 {
	return 0
}

// Flush is a no-op: Simulated has nothing outstanding.
func (s *Simulated) Flush() error {
	return nil
}

// Close marks the executor closed. Idempotent.
func (s *Simulated) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Executed returns a copy of every primitive passed to Execute so far.
func (s *Simulated) Executed() []primitive.MotionPrimitive {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]primitive.MotionPrimitive, len(s.executed))
	copy(out, s.executed)
	return out
}
