package controller

import "time"

// Event is the narrow interface every emitted event satisfies; it
// exists only so Controller.Drain can return a single mixed slice.
type Event interface {
	isEvent()
}

// ProgressEvent reports cumulative length executed so far, emitted
// when completed length crosses the next reporting increment or when
// ReportIncrementPrimitives primitives have run since the last report.
type ProgressEvent struct {
	CompletedLengthMM float64
	TotalLengthMM     float64 // 0 if unknown (no prescan)
	LastFeedrateMMPerS float64
	At                time.Time
}

func (ProgressEvent) isEvent() {}

// Percent returns the completion percentage, and ok=false when no
// prescan ran (total is unknown).
func (e ProgressEvent) Percent() (pct float64, ok bool) {
	if e.TotalLengthMM <= 0 {
		return 0, false
	}
	return e.CompletedLengthMM / e.TotalLengthMM * 100, true
}

// ETA estimates remaining seconds as (total - completed) / last_feedrate,
// per spec. ok=false when either the total (no prescan) or the last
// feedrate (nothing executed yet) is unknown.
func (e ProgressEvent) ETA() (seconds float64, ok bool) {
	if e.TotalLengthMM <= 0 || e.LastFeedrateMMPerS <= 0 {
		return 0, false
	}
	remaining := e.TotalLengthMM - e.CompletedLengthMM
	if remaining < 0 {
		remaining = 0
	}
	return remaining / e.LastFeedrateMMPerS, true
}

// StateChangeEvent reports a successful transition.
type StateChangeEvent struct {
	From, To State
}

func (StateChangeEvent) isEvent() {}

// ErrorEvent reports a fatal pump error; the controller has already
// transitioned to Cancelled by the time this is emitted.
type ErrorEvent struct {
	Err error
}

func (ErrorEvent) isEvent() {}

// CompletionEvent reports the RUNNING → DONE transition.
type CompletionEvent struct {
	CompletedLengthMM float64
}

func (CompletionEvent) isEvent() {}
