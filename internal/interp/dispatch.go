package interp

import "github.com/chrisns/snapmaker-cnc-motion/internal/modal"

// group identifies a modal group: only one G-word from a given group
// may be commanded per line. Keyed by G-number rather than reflection,
// per the dispatch-table redesign.
type group int

const (
	groupUnits group = iota
	groupPlane
	groupDistance
	groupMotion
	// groupNonModal holds G4 (dwell): it takes no position in the
	// sticky motion_mode and never changes it, so it is its own group
	// rather than sharing groupMotion's slot.
	groupNonModal
)

var groupOf = map[float64]group{
	20: groupUnits, 21: groupUnits,
	17: groupPlane, 18: groupPlane, 19: groupPlane,
	90: groupDistance, 91: groupDistance,
	0: groupMotion, 1: groupMotion, 2: groupMotion, 3: groupMotion,
	4: groupNonModal,
}

// applyUnits, applyPlane and applyDistanceMode mutate state through a
// narrow interface (the exported State fields) rather than a generic
// reflection-driven setter.
func applyUnits(st *modal.State, gNumber float64) {
	if gNumber == 20 {
		st.Units = modal.Inch
	} else {
		st.Units = modal.MM
	}
}

func applyPlane(st *modal.State, gNumber float64) {
	switch gNumber {
	case 18:
		st.Plane = modal.PlaneXZ
	case 19:
		st.Plane = modal.PlaneYZ
	default:
		st.Plane = modal.PlaneXY
	}
}

func applyDistanceMode(st *modal.State, gNumber float64) {
	if gNumber == 91 {
		st.DistanceMode = modal.Incremental
	} else {
		st.DistanceMode = modal.Absolute
	}
}

func applyMotionMode(st *modal.State, gNumber float64) {
	switch gNumber {
	case 1:
		st.MotionMode = modal.MotionLinear
	case 2:
		st.MotionMode = modal.MotionArcCW
	case 3:
		st.MotionMode = modal.MotionArcCCW
	default:
		st.MotionMode = modal.MotionRapid
	}
}
