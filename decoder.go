package huffman

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Decoder recovers bytes from a Huffman-coded bit stream by walking a Tree.
type Decoder struct {
	tree *Tree
}

// NewDecoder returns a Decoder that walks the given tree.
func NewDecoder(tree *Tree) *Decoder {
	return &Decoder{tree: tree}
}

// Decode reads bits from r and writes exactly n decoded bytes to w.
//
// Starting at the root, each 0 bit descends left and each 1 bit descends
// right; reaching a leaf emits its symbol and returns to the root.  Decoding
// stops as soon as n bytes have been emitted, so padding bits at the end of
// the stream are never consumed.  A one-leaf tree emits its symbol n times
// without reading any bits.
//
func (d *Decoder) Decode(r io.Reader, n int64, w io.Writer) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrCorrupt, n)
	}
	if n == 0 {
		return nil
	}

	root := d.tree.Root()
	if root == NoNode {
		return fmt.Errorf("%w: %d bytes expected but the frequency table is empty", ErrCorrupt, n)
	}

	br := bitio.NewReader(r)
	bw := bufio.NewWriter(w)

	var emitted int64
	cur := root
	for emitted < n {
		node := d.tree.Node(cur)
		if node.Kind == Leaf {
			if err := bw.WriteByte(byte(node.Symbol)); err != nil {
				return err
			}
			emitted++
			cur = root
			continue
		}

		bit, err := br.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return fmt.Errorf("%w: payload ends after %d of %d bytes", ErrCorrupt, emitted, n)
			}
			return err
		}

		next := d.tree.Child(cur, bit)
		if next == NoNode {
			return fmt.Errorf("%w: node %d has no child for bit %d", ErrCorrupt, cur, btoi(bit))
		}
		cur = next
	}

	return bw.Flush()
}
