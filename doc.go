// Package huffman implements a byte-oriented Huffman compressor and the
// container format that carries its output.
//
// A container holds the original length, the frequency of every byte value
// present in the input, and the packed code stream.  Codes are never stored:
// the decoder rebuilds the exact tree the encoder used from the frequencies
// alone, so tree construction must be deterministic.  PriorityStore fixes
// the tie-break (see its documentation) and BuildTree always seeds it in
// ascending byte order.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
