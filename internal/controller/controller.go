// Package controller implements the pull-based streaming state machine
// that drives a program from a Streamer through an Interpreter and
// into an Executor, one bounded pump invocation at a time.
package controller

import (
	"fmt"

	"github.com/chrisns/snapmaker-cnc-motion/internal/executor"
	"github.com/chrisns/snapmaker-cnc-motion/internal/gcodestream"
	"github.com/chrisns/snapmaker-cnc-motion/internal/gcodeword"
	"github.com/chrisns/snapmaker-cnc-motion/internal/interp"
	"github.com/chrisns/snapmaker-cnc-motion/internal/limits"
	"github.com/chrisns/snapmaker-cnc-motion/internal/primitive"
)

// Controller owns the ready queue and the Streamer; the Interpreter
// owns the modal state exclusively. Not safe for concurrent use: the
// scheduling model is single-threaded cooperative, Pump is the sole
// suspension point.
type Controller struct {
	state State
	cfg   Config
	lim   limits.Config

	stream *gcodestream.Streamer
	ip     *interp.Interpreter
	exec   executor.Executor

	queue []primitive.MotionPrimitive

	completedLengthMM     float64
	totalLengthMM         float64
	lastFeedrate          float64
	eofReached            bool
	nextReportMM          float64
	primitivesSinceReport int
	primitivesExecuted    int

	events []Event
}

// New builds a Controller over stream, driving prims through ip and
// exec. totalLengthMM is the prescanned total for progress/ETA, or 0
// if no prescan was run.
func New(stream *gcodestream.Streamer, ip *interp.Interpreter, exec executor.Executor, cfg Config, lim limits.Config, totalLengthMM float64) *Controller {
	return &Controller{
		state:         Idle,
		cfg:           cfg,
		lim:           lim,
		stream:        stream,
		ip:            ip,
		exec:          exec,
		totalLengthMM: totalLengthMM,
		nextReportMM:  cfg.ReportIncrementMM,
	}
}

// State returns the current execution state.
func (c *Controller) State() State {
	return c.state
}

// Drain returns and clears all events accumulated since the last Drain.
func (c *Controller) Drain() []Event {
	out := c.events
	c.events = nil
	return out
}

func (c *Controller) emit(e Event) {
	c.events = append(c.events, e)
}

func (c *Controller) transition(to State) {
	from := c.state
	c.state = to
	c.emit(StateChangeEvent{From: from, To: to})
}

// Start moves IDLE → RUNNING.
func (c *Controller) Start() error {
	if c.state != Idle {
		return &IllegalStateTransition{From: c.state, Method: "start"}
	}
	c.transition(Running)
	return nil
}

// FeedHold moves RUNNING → HOLD.
func (c *Controller) FeedHold() error {
	if c.state != Running {
		return &IllegalStateTransition{From: c.state, Method: "feed_hold"}
	}
	c.transition(Hold)
	return nil
}

// Resume moves HOLD → RUNNING.
func (c *Controller) Resume() error {
	if c.state != Hold {
		return &IllegalStateTransition{From: c.state, Method: "resume"}
	}
	c.transition(Running)
	return nil
}

// Cancel moves {RUNNING, HOLD} → CANCELLED. Terminal from the
// controller's perspective; primitives already handed to the executor
// are not recalled.
func (c *Controller) Cancel() error {
	if c.state != Running && c.state != Hold {
		return &IllegalStateTransition{From: c.state, Method: "cancel"}
	}
	c.transition(Cancelled)
	return nil
}

// Reset moves {CANCELLED, DONE} → IDLE, clearing accumulated progress
// so the Controller can be reused against a fresh Streamer/Interpreter
// pair (not provided here — callers construct a new Controller instead
// since the Streamer is not restartable).
func (c *Controller) Reset() error {
	if c.state != Cancelled && c.state != Done {
		return &IllegalStateTransition{From: c.state, Method: "reset"}
	}
	c.transition(Idle)
	c.completedLengthMM = 0
	c.nextReportMM = c.cfg.ReportIncrementMM
	c.primitivesSinceReport = 0
	c.primitivesExecuted = 0
	c.eofReached = false
	c.queue = nil
	return nil
}

// fail transitions to Cancelled and emits an ErrorEvent. Used for any
// unrecoverable pump-phase error: parse, interpret, soft limit, or
// executor failure.
func (c *Controller) fail(err error) {
	c.transition(Cancelled)
	c.emit(ErrorEvent{Err: err})
}

// Pump runs one bounded fill-then-step cycle. Re-entrant across
// invocations, not reentrant within one: call it from a single driver
// loop only.
func (c *Controller) Pump(b Budget) {
	if c.state == Cancelled || c.state == Done {
		return
	}

	c.fill(b.MaxLines)
	if c.state == Cancelled {
		return
	}

	if c.state == Running {
		c.step(b.MaxSteps)
		if c.state == Cancelled {
			return
		}
	}

	if c.state == Running && c.eofReached && len(c.queue) == 0 && c.exec.QueuedTime() == 0 {
		c.transition(Done)
		c.emit(CompletionEvent{CompletedLengthMM: c.completedLengthMM})
	}
}

func (c *Controller) fill(maxLines int) {
	for i := 0; i < maxLines; i++ {
		if len(c.queue) >= c.cfg.LookaheadPrimitives {
			break
		}
		if c.eofReached {
			break
		}

		line, ok := c.stream.Next()
		if !ok {
			c.eofReached = true
			break
		}

		parsed, err := gcodeword.Parse(line.Text, line.Number)
		if err != nil {
			c.fail(fmt.Errorf("fill: %w", err))
			return
		}

		prims, err := c.ip.Interpret(parsed)
		if err != nil {
			c.fail(fmt.Errorf("fill: %w", err))
			return
		}

		for _, p := range prims {
			if p.Kind != primitive.Dwell && p.LengthMM <= 0 {
				continue
			}
			c.queue = append(c.queue, p)
		}

		if c.exec.QueuedTime() > c.cfg.HighWatermarkS {
			break
		}
	}
}

func (c *Controller) step(maxSteps int) {
	for i := 0; i < maxSteps; i++ {
		if len(c.queue) == 0 {
			break
		}

		p := c.queue[0]
		c.queue = c.queue[1:]

		if p.Kind != primitive.Dwell && p.FeedrateMMPerS <= 0 {
			c.fail(&interp.UnresolvedFeedrateError{LineNumber: p.LineNumber})
			return
		}

		if err := limits.Check(c.lim, p); err != nil {
			c.fail(err)
			return
		}

		if err := c.exec.Execute(p); err != nil {
			c.fail(err)
			return
		}

		c.completedLengthMM += p.LengthMM
		if p.FeedrateMMPerS > 0 {
			c.lastFeedrate = p.FeedrateMMPerS
		}
		c.primitivesSinceReport++
		c.primitivesExecuted++

		// Cadence is the finer of the two: every ReportIncrementMM of
		// completed length, or every ReportIncrementPrimitives
		// primitives, whichever arrives first.
		dueByLength := c.completedLengthMM >= c.nextReportMM
		dueByCount := c.cfg.ReportIncrementPrimitives > 0 && c.primitivesSinceReport >= c.cfg.ReportIncrementPrimitives
		if dueByLength || dueByCount {
			c.emit(ProgressEvent{
				CompletedLengthMM:  c.completedLengthMM,
				TotalLengthMM:      c.totalLengthMM,
				LastFeedrateMMPerS: c.lastFeedrate,
			})
			for c.nextReportMM <= c.completedLengthMM {
				c.nextReportMM += c.cfg.ReportIncrementMM
			}
			c.primitivesSinceReport = 0
		}
	}
}

// CompletedLengthMM returns the cumulative length handed to the
// executor so far.
func (c *Controller) CompletedLengthMM() float64 {
	return c.completedLengthMM
}

// TotalLengthMM returns the prescanned total, or 0 if none was given.
func (c *Controller) TotalLengthMM() float64 {
	return c.totalLengthMM
}

// QueueLen returns the number of primitives currently buffered.
func (c *Controller) QueueLen() int {
	return len(c.queue)
}

// PrimitivesExecuted returns the count of primitives handed to the
// executor so far.
func (c *Controller) PrimitivesExecuted() int {
	return c.primitivesExecuted
}
