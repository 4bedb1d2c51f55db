package executor

import (
	"github.com/chrisns/snapmaker-cnc-motion/internal/gcodestream"
	"github.com/chrisns/snapmaker-cnc-motion/internal/primitive"
)

// Echo wraps another Executor, writing every executed primitive back
// out as a G-code line through w before delegating to inner, for
// offline debugging of what the controller actually sent.
type Echo struct {
	inner Executor
	w     *gcodestream.BufferedWriter
}

// NewEcho returns an Echo delegating to inner and mirroring to w.
func NewEcho(inner Executor, w *gcodestream.BufferedWriter) *Echo {
	return &Echo{inner: inner, w: w}
}

// Execute mirrors p to the echo sink, then delegates.
func (e *Echo) Execute(p primitive.MotionPrimitive) error {
	if err := e.w.WriteLine(formatLine(p)); err != nil {
		return &ExecutorError{LineNumber: p.LineNumber, Op: "echo", Err: err}
	}
	return e.inner.Execute(p)
}

// QueuedTime delegates to inner.
func (e *Echo) QueuedTime() float64 {
	return e.inner.QueuedTime()
}

// Flush drains the echo sink, then delegates.
func (e *Echo) Flush() error {
	if err := e.w.Flush(); err != nil {
		return &ExecutorError{Op: "echo-flush", Err: err}
	}
	return e.inner.Flush()
}

// Close delegates to inner; the echo sink's backing file is the
// caller's to close since it was the caller's to open.
func (e *Echo) Close() error {
	return e.inner.Close()
}
