// Package prescan runs an independent, read-only pass over a program
// to total its length and move count ahead of real execution, so the
// controller can report percent-complete and ETA from the first
// primitive onward rather than only once the stream reaches EOF.
package prescan

import (
	"fmt"
	"io"

	"github.com/chrisns/snapmaker-cnc-motion/internal/gcodestream"
	"github.com/chrisns/snapmaker-cnc-motion/internal/gcodeword"
	"github.com/chrisns/snapmaker-cnc-motion/internal/interp"
)

// Result summarizes a completed prescan.
type Result struct {
	TotalLengthMM   float64
	TotalDurationS  float64
	PrimitiveCount  int
	LineCount       int
	Warnings        []string
}

// Run reads r to EOF through its own Streamer and Interpreter — never
// the ones the controller uses — so nothing about runtime execution
// can leak into, or be leaked by, the prescan.
func Run(r io.Reader, cfg interp.Config) (Result, error) {
	stream := gcodestream.New(r)
	ip := interp.New(cfg)

	var res Result
	for {
		line, ok := stream.Next()
		if !ok {
			break
		}
		res.LineCount++

		parsed, err := gcodeword.Parse(line.Text, line.Number)
		if err != nil {
			return res, fmt.Errorf("prescan: %w", err)
		}

		prims, err := ip.Interpret(parsed)
		if err != nil {
			return res, fmt.Errorf("prescan: %w", err)
		}
		for _, p := range prims {
			res.TotalLengthMM += p.LengthMM
			res.TotalDurationS += p.Duration()
			res.PrimitiveCount++
		}
	}
	if err := stream.Err(); err != nil {
		return res, fmt.Errorf("prescan: %w", err)
	}
	res.Warnings = ip.Warnings()
	return res, nil
}
