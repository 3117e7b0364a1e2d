package huffman

import (
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Encoder packs bytes into a Huffman-coded bit stream.
type Encoder struct {
	codes CodeTable
}

// NewEncoder returns an Encoder that uses the given codes.
func NewEncoder(codes CodeTable) *Encoder {
	return &Encoder{codes: codes}
}

// Codes returns the CodeTable used by this Encoder.
func (e *Encoder) Codes() *CodeTable {
	return &e.codes
}

// Encode writes the code of every byte of data to w, most significant bit
// first, and returns the number of bytes written.  If the stream does not
// end on a byte boundary, the final byte is padded with zero bits.  The
// padding is not marked; decoding relies on knowing the original length.
//
// Every byte of data must have a Code in the table.  Symbols with an empty
// Code, as in a one-leaf tree, contribute no bits at all.
//
func (e *Encoder) Encode(w io.Writer, data []byte) (int64, error) {
	bw := bitio.NewWriter(w)

	var bits uint64
	for _, b := range data {
		hc, ok := e.codes.Lookup(Symbol(b))
		assert.Assertf(ok, "no code for symbol %d", b)
		if hc.Size == 0 {
			continue
		}
		if err := bw.WriteBits(hc.Bits, hc.Size); err != nil {
			return int64(bits / 8), err
		}
		bits += uint64(hc.Size)
	}

	if err := bw.Close(); err != nil {
		return int64(bits / 8), err
	}
	return int64((bits + 7) / 8), nil
}
