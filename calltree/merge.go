package calltree

// Merge inserts one stack trace, ordered root-to-leaf, into the tree.
// The cursor starts at the root and follows existing equivalent children for
// as long as the trace matches; every frame from the first mismatch on is
// appended as a strict linear chain under the last matched node. Structurally
// identical prefixes across recordings therefore collapse into one path and
// divergence points fan out into siblings.
//
// An empty trace is a no-op. A trace already present as a prefix path appends
// nothing. Merge cannot fail on well-formed input; callers must only invoke
// it with a complete, validated frame sequence.
func (t *Tree) Merge(frames []Frame) {
	cursor := t.root
	i := 0
	for ; i < len(frames); i++ {
		next := cursor.findChild(frames[i], fingerprint(frames[i]), t.matchColumn)
		if next == nil {
			break
		}
		cursor = next
	}
	for ; i < len(frames); i++ {
		child := newNode(frames[i])
		cursor.Children = append(cursor.Children, child)
		cursor = child
	}
}
