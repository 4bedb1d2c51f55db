// Package modal holds the persistent G-code interpreter state that
// carries across lines within a single interpretation session. A State
// is owned exclusively by one Interpreter; the interpreter enforces
// legal transitions, this package only stores the values.
package modal

// Units selects the active measurement system (G20/G21).
type Units int

const (
	MM Units = iota
	Inch
)

func (u Units) String() string {
	if u == Inch {
		return "inch"
	}
	return "mm"
}

// DistanceMode selects absolute or incremental axis word interpretation
// (G90/G91).
type DistanceMode int

const (
	Absolute DistanceMode = iota
	Incremental
)

func (d DistanceMode) String() string {
	if d == Incremental {
		return "incremental"
	}
	return "absolute"
}

// Plane selects the active arc plane (G17/G18/G19).
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

func (p Plane) String() string {
	switch p {
	case PlaneXZ:
		return "XZ"
	case PlaneYZ:
		return "YZ"
	default:
		return "XY"
	}
}

// MotionMode is the sticky motion word in effect when a line carries no
// explicit G0/G1/G2/G3.
type MotionMode int

const (
	MotionRapid MotionMode = iota
	MotionLinear
	MotionArcCW
	MotionArcCCW
)

func (m MotionMode) String() string {
	switch m {
	case MotionLinear:
		return "linear"
	case MotionArcCW:
		return "arc_cw"
	case MotionArcCCW:
		return "arc_ccw"
	default:
		return "rapid"
	}
}

// Position is an absolute machine-space coordinate in mm.
type Position struct {
	X, Y, Z float64
}

// State is the persistent modal record for one interpretation session
// (one Interpreter). Mutated only by the owning Interpreter.
type State struct {
	Units        Units
	DistanceMode DistanceMode
	Plane        Plane
	MotionMode   MotionMode

	// FeedrateSet is false until the first F word is seen. Feedrate is
	// stored in mm/min (already unit-converted at the time the F word
	// was read); conversion to mm/s happens at primitive construction.
	FeedrateSet    bool
	FeedrateMMPerM float64

	Position Position

	// WCSIndex selects G54(0)..G59(5). The associated offset table is a
	// placeholder of zeros until work coordinate systems are designed;
	// it is never applied to Position.
	WCSIndex int

	// ArcToleranceMM is the maximum chord-to-arc deviation permitted
	// when segmenting arcs.
	ArcToleranceMM float64

	// MaxSegmentTimeS is the maximum wall-clock duration any emitted
	// segment may represent at the current feedrate.
	MaxSegmentTimeS float64
}

// New returns a State with the spec's defaults: mm units, absolute
// distancing, the XY plane, rapid motion sticky until overridden, and
// the given configuration-time tolerances.
func New(arcToleranceMM, maxSegmentTimeS float64) *State {
	return &State{
		Units:           MM,
		DistanceMode:    Absolute,
		Plane:           PlaneXY,
		MotionMode:      MotionRapid,
		ArcToleranceMM:  arcToleranceMM,
		MaxSegmentTimeS: maxSegmentTimeS,
	}
}
