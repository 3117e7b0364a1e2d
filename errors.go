package huffman

import (
	"errors"
)

// ErrLengthOverflow is returned when the Huffman tree is so deep that some
// code would need more than MaxCodeSize bits.
var ErrLengthOverflow = errors.New("huffman: code length exceeds 64 bits")

// ErrCorrupt is returned when a container is malformed: a truncated header,
// table, or payload, or a frequency table that cannot have been produced by
// this package.
var ErrCorrupt = errors.New("huffman: corrupt container")

// ErrFrequencyOverflow is returned when the frequencies in a table sum to
// more than fits in a uint64.
var ErrFrequencyOverflow = errors.New("huffman: frequency sum overflows uint64")
