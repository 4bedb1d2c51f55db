package interp

import "github.com/chrisns/snapmaker-cnc-motion/internal/modal"

// Config carries the configuration-time values the spec calls out as
// belonging to ModalState (arc_tolerance, max_segment_time) plus the
// backend's rapid feedrate and the session's initial modal defaults.
type Config struct {
	ArcToleranceMM      float64
	MaxSegmentTimeS     float64
	RapidFeedrateMMPerS float64

	DefaultUnits        modal.Units
	DefaultPlane        modal.Plane
	DefaultDistanceMode modal.DistanceMode

	// Strict makes UnsupportedWord fail instead of being logged and
	// ignored.
	Strict bool
}

// DefaultConfig returns conservative defaults: 0.02mm arc tolerance,
// 50ms max segment time, 3000mm/min (50mm/s) rapid feedrate, mm units,
// absolute distancing, XY plane.
func DefaultConfig() Config {
	return Config{
		ArcToleranceMM:      0.02,
		MaxSegmentTimeS:     0.05,
		RapidFeedrateMMPerS: 50,
		DefaultUnits:        modal.MM,
		DefaultPlane:        modal.PlaneXY,
		DefaultDistanceMode: modal.Absolute,
	}
}
