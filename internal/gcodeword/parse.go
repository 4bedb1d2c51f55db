package gcodeword

import (
	"strings"

	"github.com/256dpi/gcode"
)

// Parse lexes a single source line into a ParsedLine. Comments (`;...`
// and matched `(...)`) are stripped by the underlying lexer; unmatched
// parentheses and malformed words surface as a *ParseError.
//
// Unlike the teacher's single-Command shape, one line may carry several
// G-words on distinct modal groups (e.g. "G17 G90 G1 X1 Y1 F100"), so
// every G-word and M-word is preserved in source order rather than just
// the last one seen.
func Parse(text string, lineNumber int) (ParsedLine, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ParsedLine{LineNumber: lineNumber, Blank: true}, nil
	}

	parsed, err := gcode.ParseLine(trimmed)
	if err != nil {
		return ParsedLine{}, &ParseError{LineNumber: lineNumber, Column: -1, Reason: err.Error()}
	}

	line := ParsedLine{
		LineNumber: lineNumber,
		Params:     make(map[byte]float64),
	}

	for _, code := range parsed.Codes {
		if code.Letter == "" {
			continue
		}
		letter := code.Letter[0]
		switch letter {
		case 'G', 'g':
			line.GWords = append(line.GWords, GWord{Number: code.Value})
		case 'M', 'm':
			line.MWords = append(line.MWords, MWord{Number: code.Value})
		default:
			line.Params[upper(letter)] = code.Value
		}
	}

	if len(line.GWords) == 0 && len(line.MWords) == 0 && len(line.Params) == 0 {
		line.Blank = true
	}

	return line, nil
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
