package controller

// Config holds the controller's tunables. All are given sane defaults
// by DefaultConfig; a driver overrides only what it needs to.
type Config struct {
	// LookaheadPrimitives bounds the ready queue. When full, the fill
	// phase stops pulling new lines even if max_lines remain.
	LookaheadPrimitives int

	// HighWatermarkS is the queued_time threshold above which the fill
	// phase breaks early this tick, so the ready queue can't grow
	// arbitrarily far ahead of what the backend can physically run.
	HighWatermarkS float64

	// ReportIncrementMM is the completed-length granularity at which a
	// ProgressEvent is emitted.
	ReportIncrementMM float64

	// ReportIncrementPrimitives is the primitive-count granularity at
	// which a ProgressEvent is emitted, whichever of the two cadences
	// (length or primitive count) is finer for the program at hand.
	ReportIncrementPrimitives int
}

// DefaultConfig returns the spec's defaults: 64 primitives of
// lookahead, 0.5s watermark, a progress event every 1mm or every 20
// primitives, whichever comes first.
func DefaultConfig() Config {
	return Config{
		LookaheadPrimitives:       64,
		HighWatermarkS:            0.5,
		ReportIncrementMM:         1.0,
		ReportIncrementPrimitives: 20,
	}
}

// Budget bounds one Pump invocation: at most MaxLines pulled from the
// stream and at most MaxSteps popped from the ready queue.
type Budget struct {
	MaxLines int
	MaxSteps int
}
