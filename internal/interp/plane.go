package interp

import "github.com/chrisns/snapmaker-cnc-motion/internal/modal"

// planeUV splits a position into its in-plane (u, v) coordinates and
// its out-of-plane (w) coordinate for the given arc plane.
func planeUV(plane modal.Plane, pos modal.Position) (u, v, w float64) {
	switch plane {
	case modal.PlaneXZ:
		return pos.X, pos.Z, pos.Y
	case modal.PlaneYZ:
		return pos.Y, pos.Z, pos.X
	default: // PlaneXY
		return pos.X, pos.Y, pos.Z
	}
}

// composePlane rebuilds a position from in-plane (u, v) and
// out-of-plane (w) coordinates for the given arc plane.
func composePlane(plane modal.Plane, u, v, w float64) modal.Position {
	switch plane {
	case modal.PlaneXZ:
		return modal.Position{X: u, Z: v, Y: w}
	case modal.PlaneYZ:
		return modal.Position{Y: u, Z: v, X: w}
	default: // PlaneXY
		return modal.Position{X: u, Y: v, Z: w}
	}
}

// offsetLetters returns the two parameter letters (from I, J, K) that
// form the plane-appropriate center-offset pair for IJK-form arcs.
func offsetLetters(plane modal.Plane) (uLetter, vLetter byte) {
	switch plane {
	case modal.PlaneXZ:
		return 'I', 'K'
	case modal.PlaneYZ:
		return 'J', 'K'
	default: // PlaneXY
		return 'I', 'J'
	}
}
