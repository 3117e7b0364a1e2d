package huffman

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// The container starts with a fixed-size header:
//
//     size   int64   little-endian  original length in bytes
//     count  uint16  little-endian  number of distinct symbols
//
// followed by count table entries, in ascending order of symbol:
//
//     symbol uint8
//     freq   uint64  little-endian
//
// followed by the packed code stream, which runs to the end of the input.
//
const (
	headerPrefixSize = 8 + 2
	tableEntrySize   = 1 + 8
)

// Header is the part of a container that precedes the packed payload.
type Header struct {
	// Size is the length of the uncompressed data.
	Size int64

	// Table holds the frequency of every byte value in the uncompressed
	// data.  It is the only persisted description of the code.
	Table FrequencyTable
}

// EncodedLen returns the number of bytes WriteTo will produce.
func (h *Header) EncodedLen() int {
	return headerPrefixSize + tableEntrySize*h.Table.Distinct()
}

// WriteTo writes the serialized header to w.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	entries := h.Table.Entries()
	buf := make([]byte, 0, headerPrefixSize+tableEntrySize*len(entries))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(h.Size))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(entries)))
	for _, sf := range entries {
		buf = append(buf, byte(sf.Symbol))
		buf = binary.LittleEndian.AppendUint64(buf, sf.Freq)
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// ReadFrom reads and validates a serialized header from r.  It consumes
// exactly the header bytes and nothing more.
func (h *Header) ReadFrom(r io.Reader) (int64, error) {
	var total int64

	var prefix [headerPrefixSize]byte
	n, err := io.ReadFull(r, prefix[:])
	total += int64(n)
	if err != nil {
		return total, truncated("header", err)
	}

	size := int64(binary.LittleEndian.Uint64(prefix[0:8]))
	count := int(binary.LittleEndian.Uint16(prefix[8:10]))
	if size < 0 {
		return total, fmt.Errorf("%w: negative size %d", ErrCorrupt, size)
	}
	if count > NumSymbols {
		return total, fmt.Errorf("%w: %d distinct symbols, max %d", ErrCorrupt, count, NumSymbols)
	}

	raw := make([]byte, tableEntrySize*count)
	n, err = io.ReadFull(r, raw)
	total += int64(n)
	if err != nil {
		return total, truncated("frequency table", err)
	}

	var table FrequencyTable
	for i := 0; i < count; i++ {
		entry := raw[i*tableEntrySize : (i+1)*tableEntrySize]
		symbol := Symbol(entry[0])
		freq := binary.LittleEndian.Uint64(entry[1:])
		if freq == 0 {
			return total, fmt.Errorf("%w: symbol %d has frequency 0", ErrCorrupt, symbol)
		}
		if table[symbol] != 0 {
			return total, fmt.Errorf("%w: symbol %d listed twice", ErrCorrupt, symbol)
		}
		table[symbol] = freq
	}

	sum, ok := table.Total()
	if !ok || sum != uint64(size) {
		return total, fmt.Errorf("%w: frequencies do not add up to size %d", ErrCorrupt, size)
	}

	*h = Header{Size: size, Table: table}
	return total, nil
}

var (
	_ io.WriterTo   = (*Header)(nil)
	_ io.ReaderFrom = (*Header)(nil)
)

// Write compresses data and writes the resulting container to w.  It returns
// the number of bytes written.
func Write(w io.Writer, data []byte) (int64, error) {
	var table FrequencyTable
	table.Count(data)
	return EncodeWithTable(w, &table, data)
}

// EncodeWithTable is like Write, but uses a frequency table that the caller
// has already computed for data, e.g. with CountParallel.
func EncodeWithTable(w io.Writer, table *FrequencyTable, data []byte) (int64, error) {
	if sum, ok := table.Total(); !ok || sum != uint64(len(data)) {
		return 0, fmt.Errorf("frequency table does not describe the %d bytes of input", len(data))
	}

	tree, err := BuildTree(table)
	if err != nil {
		return 0, err
	}
	codes, err := AssignCodes(tree)
	if err != nil {
		return 0, err
	}

	h := Header{Size: int64(len(data)), Table: *table}
	hn, err := h.WriteTo(w)
	if err != nil {
		return hn, err
	}

	pn, err := NewEncoder(codes).Encode(w, data)
	return hn + pn, err
}

// Read reads a container from r and writes the decompressed data to w.  It
// returns the number of bytes written to w.
func Read(r io.Reader, w io.Writer) (int64, error) {
	var h Header
	if _, err := h.ReadFrom(r); err != nil {
		return 0, err
	}

	tree, err := BuildTree(&h.Table)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if _, err := AssignCodes(tree); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	cw := &countingWriter{w: w}
	err = NewDecoder(tree).Decode(r, h.Size, cw)
	return cw.n, err
}

// Compress returns the container for data.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Write(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress returns the data stored in the given container.
func Decompress(container []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Read(bytes.NewReader(container), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func truncated(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated %s", ErrCorrupt, what)
	}
	return err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
