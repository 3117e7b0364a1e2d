package huffman

// Entry is one item held by a PriorityStore: a tree node and the frequency
// it is ordered by.
type Entry struct {
	Freq uint64
	Node NodeID
}

// PriorityStore hands back entries in ascending order of frequency.
//
// It is an unbalanced binary search tree keyed by frequency.  An entry whose
// frequency is strictly greater than a node's goes to that node's right;
// otherwise it goes left.  ExtractMin removes the leftmost node.  As a
// result, among entries of equal frequency the most recently inserted one
// is extracted first.  Encoder and Decoder both depend on this exact
// tie-break to derive the same tree from the same frequencies.
//
// The store never holds more than NumSymbols entries while building a
// tree, so the lack of balancing is harmless.  The zero value is an empty
// store, ready to use.
//
type PriorityStore struct {
	nodes []storeNode
	free  []int32
	root  int32
	count int
}

type storeNode struct {
	entry Entry
	left  int32
	right int32
}

const noStoreNode = int32(-1)

// Len returns the number of entries in the store.
func (s *PriorityStore) Len() int {
	return s.count
}

// Insert adds an entry to the store.
func (s *PriorityStore) Insert(e Entry) {
	if s.count == 0 {
		s.nodes = s.nodes[:0]
		s.free = s.free[:0]
		s.root = s.alloc(e)
		s.count = 1
		return
	}

	index := s.root
	for {
		node := &s.nodes[index]
		if e.Freq > node.entry.Freq {
			if node.right == noStoreNode {
				child := s.alloc(e)
				s.nodes[index].right = child
				break
			}
			index = node.right
		} else {
			if node.left == noStoreNode {
				child := s.alloc(e)
				s.nodes[index].left = child
				break
			}
			index = node.left
		}
	}
	s.count++
}

// ExtractMin removes and returns the entry with the lowest frequency.  The
// second result is false if the store is empty.
func (s *PriorityStore) ExtractMin() (Entry, bool) {
	if s.count == 0 {
		return Entry{}, false
	}

	parent := noStoreNode
	index := s.root
	for s.nodes[index].left != noStoreNode {
		parent = index
		index = s.nodes[index].left
	}

	node := s.nodes[index]
	if parent == noStoreNode {
		s.root = node.right
	} else {
		s.nodes[parent].left = node.right
	}
	s.free = append(s.free, index)
	s.count--
	return node.entry, true
}

func (s *PriorityStore) alloc(e Entry) int32 {
	node := storeNode{entry: e, left: noStoreNode, right: noStoreNode}
	if n := len(s.free); n != 0 {
		index := s.free[n-1]
		s.free = s.free[:n-1]
		s.nodes[index] = node
		return index
	}
	s.nodes = append(s.nodes, node)
	return int32(len(s.nodes) - 1)
}
