// Package interp turns parsed G-code lines plus persistent modal state
// into ordered motion primitives. It owns the only ModalState mutated
// for its session; a prescan session and a runtime session each get
// their own Interpreter so neither can observe the other's state.
package interp

import (
	"math"

	"github.com/chrisns/snapmaker-cnc-motion/internal/gcodeword"
	"github.com/chrisns/snapmaker-cnc-motion/internal/modal"
	"github.com/chrisns/snapmaker-cnc-motion/internal/primitive"
)

// Interpreter turns ParsedLines into MotionPrimitives against one
// owned modal.State.
type Interpreter struct {
	state    *modal.State
	cfg      Config
	warnings []string
}

// New creates an Interpreter with its own modal.State seeded from cfg.
func New(cfg Config) *Interpreter {
	st := modal.New(cfg.ArcToleranceMM, cfg.MaxSegmentTimeS)
	st.Units = cfg.DefaultUnits
	st.Plane = cfg.DefaultPlane
	st.DistanceMode = cfg.DefaultDistanceMode
	return &Interpreter{state: st, cfg: cfg}
}

// State returns a copy of the current modal state.
func (ip *Interpreter) State() modal.State {
	return *ip.state
}

// Warnings returns soft diagnostics accumulated for unsupported words
// (only populated when Config.Strict is false).
func (ip *Interpreter) Warnings() []string {
	return ip.warnings
}

func (ip *Interpreter) convert(v float64) float64 {
	if ip.state.Units == modal.Inch {
		return v * 25.4
	}
	return v
}

func (ip *Interpreter) resolveTarget(line gcodeword.ParsedLine) modal.Position {
	cur := ip.state.Position
	target := cur
	if line.HasParam('X') {
		v := ip.convert(line.Param('X'))
		if ip.state.DistanceMode == modal.Incremental {
			target.X = cur.X + v
		} else {
			target.X = v
		}
	}
	if line.HasParam('Y') {
		v := ip.convert(line.Param('Y'))
		if ip.state.DistanceMode == modal.Incremental {
			target.Y = cur.Y + v
		} else {
			target.Y = v
		}
	}
	if line.HasParam('Z') {
		v := ip.convert(line.Param('Z'))
		if ip.state.DistanceMode == modal.Incremental {
			target.Z = cur.Z + v
		} else {
			target.Z = v
		}
	}
	return target
}

// Interpret mutates the owned modal state and returns the ordered
// primitives this line emits. Deterministic: same state + same line
// always yields the same result.
func (ip *Interpreter) Interpret(line gcodeword.ParsedLine) ([]primitive.MotionPrimitive, error) {
	if line.Blank {
		return nil, nil
	}

	seen := map[group]float64{}
	var motionSeen bool
	var motionNumber float64

	for _, g := range line.GWords {
		grp, known := groupOf[g.Number]
		if !known {
			if ip.cfg.Strict {
				return nil, &UnsupportedWord{LineNumber: line.LineNumber, GNumber: g.Number}
			}
			ip.warnings = append(ip.warnings, (&UnsupportedWord{LineNumber: line.LineNumber, GNumber: g.Number}).Error())
			continue
		}
		if prev, ok := seen[grp]; ok && prev != g.Number {
			return nil, &ModalError{LineNumber: line.LineNumber, Group: groupName(grp), Detail: "more than one value commanded"}
		}
		seen[grp] = g.Number
		if grp == groupMotion {
			motionSeen = true
			motionNumber = g.Number
		}
	}

	// Dispatch order: units, plane, distance mode, feedrate, then motion.
	if v, ok := seen[groupUnits]; ok {
		applyUnits(ip.state, v)
	}
	if v, ok := seen[groupPlane]; ok {
		applyPlane(ip.state, v)
	}
	if v, ok := seen[groupDistance]; ok {
		applyDistanceMode(ip.state, v)
	}
	if line.HasParam('F') {
		ip.state.FeedrateMMPerM = ip.convert(line.Param('F'))
		ip.state.FeedrateSet = true
	}
	if motionSeen {
		applyMotionMode(ip.state, motionNumber)
	}

	if _, ok := seen[groupNonModal]; ok {
		dwell := primitive.NewDwell(ip.state.Position, line.Param('P'))
		dwell.LineNumber = line.LineNumber
		if len(line.MWords) > 0 {
			mcodes := make([]gcodeword.MWord, len(line.MWords))
			copy(mcodes, line.MWords)
			dwell.MCodes = mcodes
		}
		return []primitive.MotionPrimitive{dwell}, nil
	}

	start := ip.state.Position
	target := ip.resolveTarget(line)
	hasAxis := line.HasAxisWord()

	var prims []primitive.MotionPrimitive
	var err error

	switch ip.state.MotionMode {
	case modal.MotionRapid:
		if hasAxis {
			prims = ip.segmentLinear(primitive.Rapid, start, target, ip.cfg.RapidFeedrateMMPerS)
		}
	case modal.MotionLinear:
		if hasAxis {
			if !ip.state.FeedrateSet {
				return nil, &UnresolvedFeedrateError{LineNumber: line.LineNumber}
			}
			prims = ip.segmentLinear(primitive.Linear, start, target, ip.state.FeedrateMMPerM/60)
		}
	case modal.MotionArcCW, modal.MotionArcCCW:
		uLetter, vLetter := offsetLetters(ip.state.Plane)
		hasArcData := hasAxis || line.HasParam(uLetter) || line.HasParam(vLetter) || line.HasParam('R')
		if hasArcData {
			if !ip.state.FeedrateSet {
				return nil, &UnresolvedFeedrateError{LineNumber: line.LineNumber}
			}
			prims, err = ip.segmentArc(line, start, target, ip.state.MotionMode == modal.MotionArcCW, ip.state.FeedrateMMPerM/60)
			if err != nil {
				return nil, err
			}
		}
	}

	ip.state.Position = target

	for i := range prims {
		prims[i].LineNumber = line.LineNumber
	}

	if len(prims) > 0 && len(line.MWords) > 0 {
		mcodes := make([]gcodeword.MWord, len(line.MWords))
		copy(mcodes, line.MWords)
		prims[len(prims)-1].MCodes = mcodes
	}

	return prims, nil
}

// segmentLinear splits a commanded move into equal-length chords
// bounded by max_segment_time at the given feedrate. The last chord's
// end exactly equals the commanded end.
func (ip *Interpreter) segmentLinear(kind primitive.Kind, start, end modal.Position, feedrateMMPerS float64) []primitive.MotionPrimitive {
	distance := primitive.Distance(start, end)
	if distance < posEps {
		return []primitive.MotionPrimitive{primitive.NewMove(kind, start, end, feedrateMMPerS)}
	}

	n := 1
	if maxSegLen := feedrateMMPerS * ip.state.MaxSegmentTimeS; maxSegLen > posEps {
		n = int(math.Ceil(distance / maxSegLen))
		if n < 1 {
			n = 1
		}
	}

	segs := make([]primitive.MotionPrimitive, 0, n)
	prev := start
	for i := 1; i <= n; i++ {
		var cur modal.Position
		if i == n {
			cur = end
		} else {
			cur = primitive.Lerp(start, end, float64(i)/float64(n))
		}
		segs = append(segs, primitive.NewMove(kind, prev, cur, feedrateMMPerS))
		prev = cur
	}
	return segs
}

func groupName(g group) string {
	switch g {
	case groupUnits:
		return "units"
	case groupPlane:
		return "plane"
	case groupDistance:
		return "distance-mode"
	case groupMotion:
		return "motion"
	case groupNonModal:
		return "non-modal"
	default:
		return "unknown"
	}
}
