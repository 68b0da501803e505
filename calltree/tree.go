package calltree

// Node wraps one Frame and the distinct continuations observed after it.
// Children keep recording order; the merge algorithm guarantees no two
// children are equivalent to each other.
type Node struct {
	Frame    Frame
	Children []*Node

	key uint64
}

func newNode(f Frame) *Node {
	return &Node{Frame: f, key: fingerprint(f)}
}

// FindEquivalent searches the subtree rooted at n, pre-order, for a node
// whose frame is equivalent to f. The node itself is checked first, then each
// child subtree in order. Returns nil when no node matches.
func (n *Node) FindEquivalent(f Frame, matchColumn bool) *Node {
	return n.find(f, fingerprint(f), matchColumn)
}

func (n *Node) find(f Frame, key uint64, matchColumn bool) *Node {
	if n.key == key && Equivalent(n.Frame, f, matchColumn) {
		return n
	}
	for _, c := range n.Children {
		if m := c.find(f, key, matchColumn); m != nil {
			return m
		}
	}
	return nil
}

// findChild scans only the direct children. Merge descends one level at a
// time, so it never needs the full subtree search.
func (n *Node) findChild(f Frame, key uint64, matchColumn bool) *Node {
	for _, c := range n.Children {
		if c.key == key && Equivalent(c.Frame, f, matchColumn) {
			return c
		}
	}
	return nil
}

// Tree accumulates recorded stack traces as a prefix-compressed trie keyed on
// frame equivalence. The root holds a sentinel frame and is never rendered.
// A Tree has a single owner; callers running merges from multiple goroutines
// must serialize access themselves.
type Tree struct {
	root        *Node
	matchColumn bool
}

// New returns an empty tree. matchColumn selects the strict equivalence
// policy where column numbers must also agree.
func New(matchColumn bool) *Tree {
	return &Tree{
		root:        newNode(Frame{Name: "Root"}),
		matchColumn: matchColumn,
	}
}

// Root returns the sentinel root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Empty reports whether nothing has been recorded since creation or the last
// Reset.
func (t *Tree) Empty() bool {
	return len(t.root.Children) == 0
}

// Reset discards every recorded trace, leaving only the root. Idempotent.
func (t *Tree) Reset() {
	t.root.Children = nil
}
