// Package progress reports controller state over time: percent
// complete, ETA, and terminal summaries, the way the original
// reporter tracked optimization progress but driven by the streaming
// controller's pump loop instead of a single pass over a file.
package progress

import (
	"fmt"
	"time"
)

// Snapshot is one point-in-time progress reading, computed from
// totals the prescanner produced and the length actually executed so
// far.
type Snapshot struct {
	ExecutedLengthMM float64
	TotalLengthMM    float64
	PrimitivesDone   int
	PrimitivesTotal  int
	Elapsed          time.Duration
}

// Percent returns 0..100, or 0 if the total is unknown (zero-length
// program, or prescan skipped).
func (s Snapshot) Percent() float64 {
	if s.TotalLengthMM <= 0 {
		return 0
	}
	pct := s.ExecutedLengthMM / s.TotalLengthMM * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

// ETA estimates remaining duration by linear extrapolation from
// length-per-elapsed-time so far. Returns 0 when too little has run to
// extrapolate from.
func (s Snapshot) ETA() time.Duration {
	if s.ExecutedLengthMM <= 0 || s.TotalLengthMM <= 0 {
		return 0
	}
	remaining := s.TotalLengthMM - s.ExecutedLengthMM
	if remaining <= 0 {
		return 0
	}
	return time.Duration(float64(s.Elapsed) / s.ExecutedLengthMM * remaining)
}

// Reporter prints Snapshots to stdout at most once every 2 seconds,
// mirroring the throttle used for line-based progress.
type Reporter struct {
	startTime  time.Time
	lastUpdate time.Time
}

// NewReporter creates a Reporter whose elapsed clock starts now.
func NewReporter() *Reporter {
	now := time.Now()
	return &Reporter{startTime: now, lastUpdate: now}
}

// StartedAt returns the instant the Reporter's elapsed clock began.
func (r *Reporter) StartedAt() time.Time {
	return r.startTime
}

// Update prints a progress line if at least 2 seconds have elapsed
// since the last one.
func (r *Reporter) Update(s Snapshot) {
	now := time.Now()
	if now.Sub(r.lastUpdate) < 2*time.Second {
		return
	}
	r.lastUpdate = now

	if s.TotalLengthMM > 0 {
		fmt.Printf("\rExecuted: %.1f/%.1fmm (%.1f%%) - ETA: %s    ",
			s.ExecutedLengthMM, s.TotalLengthMM, s.Percent(), s.ETA().Round(time.Second))
	} else {
		fmt.Printf("\rExecuted: %.1fmm (%.1fs elapsed)    ", s.ExecutedLengthMM, s.Elapsed.Seconds())
	}
}

// Finish prints a final summary line with a trailing newline.
func (r *Reporter) Finish(s Snapshot) {
	fmt.Printf("\rDone: %.1fmm in %.1fs (%d primitives)\n", s.ExecutedLengthMM, s.Elapsed.Seconds(), s.PrimitivesDone)
}
