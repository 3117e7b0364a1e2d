package huffman

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// FrequencyTable counts the occurrences of each byte value.  The zero value
// is an empty table, ready to use.
type FrequencyTable [NumSymbols]uint64

// minParallelChunk is the smallest slice of input worth handing to its own
// goroutine in CountParallel.
const minParallelChunk = 1 << 16

// Count adds one occurrence for every byte in data.
func (t *FrequencyTable) Count(data []byte) {
	for _, b := range data {
		t[b]++
	}
}

// CountParallel returns the frequency table of data, splitting the work
// across up to the given number of goroutines.  The result is identical to
// calling Count on an empty table.
func CountParallel(ctx context.Context, data []byte, workers int) (FrequencyTable, error) {
	var table FrequencyTable

	chunks := len(data) / minParallelChunk
	if workers > chunks {
		workers = chunks
	}
	if workers <= 1 {
		table.Count(data)
		return table, ctx.Err()
	}

	partial := make([]FrequencyTable, workers)
	chunkSize := (len(data) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > len(data) {
			end = len(data)
		}
		local := &partial[w]
		chunk := data[start:end]
		g.Go(func() error {
			for len(chunk) > 0 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				n := minParallelChunk
				if n > len(chunk) {
					n = len(chunk)
				}
				local.Count(chunk[:n])
				chunk = chunk[n:]
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return FrequencyTable{}, err
	}

	for w := range partial {
		for sym, freq := range partial[w] {
			table[sym] += freq
		}
	}
	return table, nil
}

// Get returns the frequency of the given symbol.
func (t *FrequencyTable) Get(symbol Symbol) uint64 {
	return t[symbol]
}

// Set overwrites the frequency of the given symbol.
func (t *FrequencyTable) Set(symbol Symbol, freq uint64) {
	t[symbol] = freq
}

// Add adds n occurrences of the given symbol.
func (t *FrequencyTable) Add(symbol Symbol, n uint64) {
	t[symbol] += n
}

// Total returns the sum of all frequencies, i.e. the length of the input
// that was counted.  The second result is false if the sum overflows.
func (t *FrequencyTable) Total() (uint64, bool) {
	var sum uint64
	for _, freq := range t {
		next := sum + freq
		if next < sum {
			return 0, false
		}
		sum = next
	}
	return sum, true
}

// Distinct returns the number of symbols with a non-zero frequency.
func (t *FrequencyTable) Distinct() int {
	var n int
	for _, freq := range t {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Entries lists the symbols with a non-zero frequency, in ascending order of
// byte value.
func (t *FrequencyTable) Entries() []SymbolFreq {
	out := make([]SymbolFreq, 0, t.Distinct())
	for sym, freq := range t {
		if freq != 0 {
			out = append(out, SymbolFreq{Symbol(sym), freq})
		}
	}
	return out
}

// String returns a brief description of this table.
func (t FrequencyTable) String() string {
	total, _ := t.Total()
	return fmt.Sprintf("(frequency table with %d symbols, %d bytes)", t.Distinct(), total)
}

// Dump writes a programmer-readable debugging dump of the table to the
// given writer.
func (t *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for _, sf := range t.Entries() {
		fmt.Fprintf(&buf, "\tGet(%d) = %d\n", sf.Symbol, sf.Freq)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// MarshalJSON encodes the table as a list of [symbol, frequency] pairs.
func (t FrequencyTable) MarshalJSON() ([]byte, error) {
	entries := t.Entries()
	pairs := make([][2]uint64, len(entries))
	for i, sf := range entries {
		pairs[i] = [2]uint64{uint64(sf.Symbol), sf.Freq}
	}
	return json.Marshal(pairs)
}

// UnmarshalJSON decodes a list of [symbol, frequency] pairs.
func (t *FrequencyTable) UnmarshalJSON(raw []byte) error {
	var pairs [][2]uint64
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return err
	}
	var table FrequencyTable
	for _, pair := range pairs {
		if pair[0] > uint64(MaxSymbol) {
			return fmt.Errorf("invalid symbol %d in frequency table", pair[0])
		}
		table[pair[0]] = pair[1]
	}
	*t = table
	return nil
}

var (
	_ fmt.Stringer     = FrequencyTable{}
	_ json.Marshaler   = FrequencyTable{}
	_ json.Unmarshaler = (*FrequencyTable)(nil)
)
