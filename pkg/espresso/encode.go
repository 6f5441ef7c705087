// Package espresso is the boundary between rule derivation and the Espresso
// two-level logic minimizer.
//
// It provides the fixed-width row encoders used by the rule tables, the
// Table type that renders a multi-output truth table in Espresso's PLA
// format (".type fr"), a Minimizer interface with an implementation that
// runs the espresso binary, a parser for its output and a generator that
// turns a minimized cover into bitwise C statements over uint64_t lanes.
package espresso

import (
	"strings"

	"github.com/gitrdm/lifebits/pkg/lifelogic"
)

// DontCare is the minimizer's don't-care character.
const DontCare = '-'

// Bits encodes n as width big-endian binary digits. Only the low width bits
// of n are kept, so values that do not fit are truncated.
func Bits(n, width int) string {
	var b strings.Builder
	b.Grow(width)
	for y := width - 1; y >= 0; y-- {
		b.WriteByte(byte('0' + (n>>y)&1))
	}
	return b.String()
}

// Twos encodes n in width-bit two's complement.
func Twos(n, width int) string {
	if n >= 0 {
		return Bits(n, width)
	}
	return Bits((1<<width)+n, width)
}

// KnownBits encodes a cell state as the (known_off, known_on) pair:
// OFF is "10", ON is "01" and UNKNOWN is "00".
func KnownBits(s lifelogic.CellState) string {
	switch s {
	case lifelogic.Off:
		return "10"
	case lifelogic.On:
		return "01"
	case lifelogic.Unknown:
		return "00"
	default:
		return "--"
	}
}

// StateBits encodes a cell state as the (unknown, on) pair: OFF is "00",
// ON is "01" and UNKNOWN is "10".
func StateBits(s lifelogic.CellState) string {
	return Bits(int(s), 2)
}

// Bool returns '1' for true and '0' for false.
func Bool(v bool) byte {
	if v {
		return '1'
	}
	return '0'
}

// Repeat returns n copies of c.
func Repeat(c byte, n int) string {
	return strings.Repeat(string(c), n)
}
