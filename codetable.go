package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each Symbol present in a Tree to its Code.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	minSize byte
	maxSize byte
}

// AssignCodes walks the tree depth-first and assigns a Code to every leaf:
// each left edge appends a 0 bit and each right edge a 1 bit.
//
// The root of a one-leaf tree receives the empty Code.  If any leaf lies
// deeper than MaxCodeSize edges, AssignCodes fails with ErrLengthOverflow.
//
func AssignCodes(t *Tree) (CodeTable, error) {
	var ct CodeTable
	root := t.Root()
	if root == NoNode {
		return ct, nil
	}

	type stackItem struct {
		id NodeID
		hc Code
	}

	stack := make([]stackItem, 0, 2*MaxCodeSize)
	stack = append(stack, stackItem{id: root})
	var hasMinMax bool

	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := t.Node(top.id)
		if node.Kind == Leaf {
			ct.codes[node.Symbol] = top.hc
			ct.present[node.Symbol] = true
			size := top.hc.Size
			if !hasMinMax {
				hasMinMax = true
				ct.minSize = size
				ct.maxSize = size
			} else if ct.minSize > size {
				ct.minSize = size
			} else if ct.maxSize < size {
				ct.maxSize = size
			}
			continue
		}

		left, ok := top.hc.Append(false)
		if !ok {
			return CodeTable{}, fmt.Errorf("%w: node %d is deeper than %d bits", ErrLengthOverflow, top.id, MaxCodeSize)
		}
		right, _ := top.hc.Append(true)

		// Push right first so that the left subtree is visited first.
		stack = append(stack, stackItem{id: node.Right, hc: right})
		stack = append(stack, stackItem{id: node.Left, hc: left})
	}

	return ct, nil
}

// Lookup returns the Code assigned to the given Symbol.  The second result
// is false if the Symbol does not appear in the tree.
func (ct *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	return ct.codes[symbol], ct.present[symbol]
}

// MinSize is the bit length of the shortest assigned code.
func (ct *CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest assigned code.
func (ct *CodeTable) MaxSize() byte {
	return ct.maxSize
}

// Len returns the number of symbols with an assigned code.
func (ct *CodeTable) Len() int {
	var n int
	for _, ok := range ct.present {
		if ok {
			n++
		}
	}
	return n
}

// PackedBits returns the number of payload bits needed to encode input with
// the given frequencies.
func (ct *CodeTable) PackedBits(table *FrequencyTable) uint64 {
	var bits uint64
	for _, sf := range table.Entries() {
		bits += sf.Freq * uint64(ct.codes[sf.Symbol].Size)
	}
	return bits
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := range ct.codes {
		if ct.present[symbol] {
			fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", symbol, ct.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
