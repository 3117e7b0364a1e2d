package huffman

import (
	"fmt"
	"strconv"
)

// MaxCodeSize is the longest code, in bits, that a Code can hold.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size valid bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns this Code extended by one bit.  The second result is false
// if the Code is already MaxCodeSize bits long.
func (hc Code) Append(bit bool) (Code, bool) {
	if hc.Size >= MaxCodeSize {
		return hc, false
	}
	next := Code{Size: hc.Size + 1, Bits: hc.Bits << 1}
	if bit {
		next.Bits |= 1
	}
	return next, true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
