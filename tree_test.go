package huffman

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func makeTestTable(text string) *FrequencyTable {
	var table FrequencyTable
	table.Count([]byte(text))
	return &table
}

func TestBuildTree(t *testing.T) {
	tree, err := BuildTree(makeTestTable("AAABBC"))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tRoot() = 4\n",
		"\tNode(0) = {leaf, 65, 3}\n",
		"\tNode(1) = {leaf, 66, 2}\n",
		"\tNode(2) = {leaf, 67, 1}\n",
		"\tNode(3) = {internal, 3, 2, 1}\n",
		"\tNode(4) = {internal, 6, 3, 0}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	root := tree.Root()
	if child := tree.Child(root, false); child != 3 {
		t.Errorf("expected left child 3, got %d", child)
	}
	if child := tree.Child(root, true); child != 0 {
		t.Errorf("expected right child 0, got %d", child)
	}
	if child := tree.Child(0, true); child != NoNode {
		t.Errorf("expected leaf to have no children, got %d", child)
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	tree, err := BuildTree(makeTestTable(strings.Repeat("A", 10000)))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if tree.Len() != 1 {
		t.Fatalf("expected 1 node, got %d", tree.Len())
	}
	root := tree.Node(tree.Root())
	if root.Kind != Leaf || root.Symbol != 'A' || root.Freq != 10000 {
		t.Errorf("wrong root: %+v", root)
	}
}

func TestBuildTree_Empty(t *testing.T) {
	tree, err := BuildTree(&FrequencyTable{})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if tree.Root() != NoNode {
		t.Errorf("expected empty tree, got root %d", tree.Root())
	}
	if tree.Len() != 0 {
		t.Errorf("expected 0 nodes, got %d", tree.Len())
	}
}

func TestBuildTree_FrequencyOverflow(t *testing.T) {
	var table FrequencyTable
	table.Set('a', math.MaxUint64)
	table.Set('b', 1)
	_, err := BuildTree(&table)
	if !errors.Is(err, ErrFrequencyOverflow) {
		t.Errorf("expected ErrFrequencyOverflow, got %v", err)
	}
}

func TestBuildTree_InternalNodes(t *testing.T) {
	tree, err := BuildTree(makeTestTable("the quick brown fox jumps over the lazy dog"))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	var leaves int
	for id := 0; id < tree.Len(); id++ {
		node := tree.Node(NodeID(id))
		if node.Kind == Leaf {
			leaves++
			continue
		}
		left, right := tree.Node(node.Left), tree.Node(node.Right)
		if node.Freq != left.Freq+right.Freq {
			t.Errorf("node %d: freq %d != %d + %d", id, node.Freq, left.Freq, right.Freq)
		}
	}
	if expect := 2*leaves - 1; tree.Len() != expect {
		t.Errorf("expected %d nodes for %d leaves, got %d", expect, leaves, tree.Len())
	}
}
