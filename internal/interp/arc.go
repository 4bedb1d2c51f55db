package interp

import (
	"fmt"
	"math"

	"github.com/chrisns/snapmaker-cnc-motion/internal/gcodeword"
	"github.com/chrisns/snapmaker-cnc-motion/internal/modal"
	"github.com/chrisns/snapmaker-cnc-motion/internal/primitive"
)

const (
	posEps   = 1e-9
	angleEps = 1e-7
)

// segmentArc resolves an arc move's center and sweep (IJK or R form, any
// of the three planes) and segments it into linear chords bounded by
// both the chord-error tolerance and max_segment_time. Arcs never leave
// the interpreter as arcs.
func (ip *Interpreter) segmentArc(line gcodeword.ParsedLine, start, target modal.Position, cw bool, feedrateMMPerS float64) ([]primitive.MotionPrimitive, error) {
	plane := ip.state.Plane
	su, sv, sw := planeUV(plane, start)
	eu, ev, ew := planeUV(plane, target)
	uLetter, vLetter := offsetLetters(plane)

	hasIJK := line.HasParam(uLetter) || line.HasParam(vLetter)
	hasR := line.HasParam('R')

	var cu, cv, radius float64
	fullCircle := false

	switch {
	case hasIJK:
		di := ip.convert(line.Param(uLetter))
		dj := ip.convert(line.Param(vLetter))
		cu, cv = su+di, sv+dj
		radius = math.Hypot(su-cu, sv-cv)
		if radius < posEps {
			return nil, &ArcGeometryError{LineNumber: line.LineNumber, Detail: "zero-radius arc center"}
		}
		rEnd := math.Hypot(eu-cu, ev-cv)
		tol := math.Max(0.002, 1e-4*radius)
		if math.Abs(radius-rEnd) > tol {
			return nil, &ArcGeometryError{LineNumber: line.LineNumber, Detail: fmt.Sprintf(
				"start radius %.6f and end radius %.6f disagree beyond tolerance %.6f", radius, rEnd, tol)}
		}
		if math.Abs(su-eu) < posEps && math.Abs(sv-ev) < posEps && (math.Abs(di) > posEps || math.Abs(dj) > posEps) {
			fullCircle = true
		}
	case hasR:
		r := ip.convert(line.Param('R'))
		dx, dy := eu-su, ev-sv
		c := math.Hypot(dx, dy)
		if c < posEps {
			return nil, &ArcGeometryError{LineNumber: line.LineNumber, Detail: "R-form arc requires distinct start and end points"}
		}
		half := c / 2
		if math.Abs(r)-half <= 1e-9 {
			return nil, &ArcGeometryError{LineNumber: line.LineNumber, Detail: fmt.Sprintf(
				"|R|=%.6f is not greater than half the chord length %.6f", math.Abs(r), half)}
		}
		h := math.Sqrt(r*r - half*half)
		midu, midv := (su+eu)/2, (sv+ev)/2
		perpu, perpv := -dy/c, dx/c // chord direction rotated 90° CCW, unit length
		sign := 1.0
		if cw {
			sign = -1
		}
		if r < 0 {
			sign = -sign
		}
		cu = midu + sign*h*perpu
		cv = midv + sign*h*perpv
		radius = math.Abs(r)
	default:
		return nil, &ArcGeometryError{LineNumber: line.LineNumber, Detail: "arc move requires I/J/K or R"}
	}

	startAngle := math.Atan2(sv-cv, su-cu)
	endAngle := math.Atan2(ev-cv, eu-cu)

	var signedSweep float64
	if fullCircle {
		if cw {
			signedSweep = -2 * math.Pi
		} else {
			signedSweep = 2 * math.Pi
		}
	} else {
		if cw {
			sweep := startAngle - endAngle
			for sweep <= 0 {
				sweep += 2 * math.Pi
			}
			for sweep > 2*math.Pi {
				sweep -= 2 * math.Pi
			}
			signedSweep = -sweep
		} else {
			sweep := endAngle - startAngle
			for sweep <= 0 {
				sweep += 2 * math.Pi
			}
			for sweep > 2*math.Pi {
				sweep -= 2 * math.Pi
			}
			signedSweep = sweep
		}
		if math.Abs(signedSweep) < angleEps {
			return nil, &ArcGeometryError{LineNumber: line.LineNumber, Detail: "degenerate sweep (near zero) between non-equal endpoints"}
		}
	}

	n := arcSegmentCount(ip.state.ArcToleranceMM, ip.state.MaxSegmentTimeS, radius, signedSweep, feedrateMMPerS)

	segs := make([]primitive.MotionPrimitive, 0, n)
	prev := start
	for i := 1; i <= n; i++ {
		var cur modal.Position
		if i == n {
			if fullCircle {
				cur = start
			} else {
				cur = target
			}
		} else {
			t := float64(i) / float64(n)
			angle := startAngle + signedSweep*t
			u := cu + radius*math.Cos(angle)
			v := cv + radius*math.Sin(angle)
			w := sw + (ew-sw)*t
			cur = composePlane(plane, u, v, w)
		}
		segs = append(segs, primitive.NewMove(primitive.Linear, prev, cur, feedrateMMPerS))
		prev = cur
	}
	return segs, nil
}

// arcSegmentCount picks the step angle from the chord-error tolerance
// (clamped to 8..2048 segments per full turn), then raises it if
// max_segment_time demands more segments at the commanded feedrate.
func arcSegmentCount(arcToleranceMM, maxSegmentTimeS, radius, signedSweep, feedrateMMPerS float64) int {
	ratio := 1 - arcToleranceMM/radius
	if ratio < -1 {
		ratio = -1
	}
	if ratio > 1 {
		ratio = 1
	}
	deltaTheta := 2 * math.Acos(ratio)

	const minSegmentsPerTurn = 8
	const maxSegmentsPerTurn = 2048
	maxDelta := 2 * math.Pi / minSegmentsPerTurn
	minDelta := 2 * math.Pi / maxSegmentsPerTurn
	if deltaTheta < minDelta {
		deltaTheta = minDelta
	}
	if deltaTheta > maxDelta {
		deltaTheta = maxDelta
	}

	absSweep := math.Abs(signedSweep)
	n := int(math.Ceil(absSweep / deltaTheta))
	if n < 1 {
		n = 1
	}

	if feedrateMMPerS > 0 && maxSegmentTimeS > 0 {
		arcLength := radius * absSweep
		maxTimeN := int(math.Ceil(arcLength / (feedrateMMPerS * maxSegmentTimeS)))
		if maxTimeN > n {
			n = maxTimeN
		}
	}
	return n
}
