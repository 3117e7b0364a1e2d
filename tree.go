package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// NodeID identifies a node within a Tree.
type NodeID int32

// NoNode is the NodeID of a missing node.
const NoNode = NodeID(-1)

// Kind distinguishes leaf nodes from internal nodes.
type Kind byte

const (
	// Leaf nodes carry a Symbol and have no children.
	Leaf Kind = iota

	// Internal nodes have exactly two children and no Symbol.
	Internal
)

// String returns "leaf" or "internal".
func (k Kind) String() string {
	if k == Leaf {
		return "leaf"
	}
	return "internal"
}

// Node is one node of a Huffman tree.
type Node struct {
	Kind   Kind
	Symbol Symbol
	Freq   uint64
	Left   NodeID
	Right  NodeID
}

// Tree is a Huffman tree stored as an arena of nodes.  Children are
// referenced by NodeID; the tree owns every node.
type Tree struct {
	nodes []Node
	root  NodeID
}

// BuildTree constructs the Huffman tree for the given frequencies.
//
// Every symbol with a non-zero frequency is inserted into a PriorityStore in
// ascending byte order.  The two lowest entries are then repeatedly
// extracted and merged under a new internal node (first extracted on the
// left, second on the right) until one entry remains; that entry is the
// root.
//
// A table with a single symbol yields a tree consisting of one leaf.  An
// empty table yields an empty tree whose Root is NoNode.
//
func BuildTree(table *FrequencyTable) (*Tree, error) {
	if _, ok := table.Total(); !ok {
		return nil, ErrFrequencyOverflow
	}

	distinct := table.Distinct()
	t := &Tree{
		nodes: make([]Node, 0, 2*distinct),
		root:  NoNode,
	}
	if distinct == 0 {
		return t, nil
	}

	var store PriorityStore
	for _, sf := range table.Entries() {
		id := t.add(Node{Kind: Leaf, Symbol: sf.Symbol, Freq: sf.Freq, Left: NoNode, Right: NoNode})
		store.Insert(Entry{Freq: sf.Freq, Node: id})
	}

	for store.Len() > 1 {
		a, _ := store.ExtractMin()
		b, _ := store.ExtractMin()
		id := t.add(Node{Kind: Internal, Freq: a.Freq + b.Freq, Left: a.Node, Right: b.Node})
		store.Insert(Entry{Freq: a.Freq + b.Freq, Node: id})
	}

	last, ok := store.ExtractMin()
	assert.Assertf(ok, "PriorityStore unexpectedly empty")
	t.root = last.Node
	return t, nil
}

// Root returns the NodeID of the root, or NoNode if the tree is empty.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node with the given NodeID.
func (t *Tree) Node(id NodeID) Node {
	assert.Assertf(id >= 0 && int(id) < len(t.nodes), "NodeID %d out of range [0, %d)", id, len(t.nodes))
	return t.nodes[id]
}

// Child returns the left child of the given internal node if bit is false,
// or the right child if bit is true.  The result is NoNode if the node has
// no such child.
func (t *Tree) Child(id NodeID, bit bool) NodeID {
	node := t.Node(id)
	if node.Kind != Internal {
		return NoNode
	}
	if bit {
		return node.Right
	}
	return node.Left
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
	for id, node := range t.nodes {
		if node.Kind == Leaf {
			fmt.Fprintf(&buf, "\tNode(%d) = {leaf, %d, %d}\n", id, node.Symbol, node.Freq)
		} else {
			fmt.Fprintf(&buf, "\tNode(%d) = {internal, %d, %d, %d}\n", id, node.Freq, node.Left, node.Right)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t *Tree) add(node Node) NodeID {
	if node.Kind == Internal {
		assert.Assertf(node.Left != NoNode && node.Right != NoNode, "internal node must have two children")
	}
	t.nodes = append(t.nodes, node)
	return NodeID(len(t.nodes) - 1)
}
