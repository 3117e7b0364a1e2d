package huffman

import (
	"math"
)

// Symbol represents one byte value of the input alphabet.
type Symbol byte

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxUint8)

// SymbolFreq pairs a Symbol with its number of occurrences.
type SymbolFreq struct {
	Symbol Symbol
	Freq   uint64
}
