package calltree

import (
	"encoding/binary"

	farm "github.com/dgryski/go-farm"
)

// Frame identifies one call site reported by the debugger. Path, Line and
// Column are optional: an empty Path or a zero Line/Column means the debugger
// did not report that field. Two absent fields compare equal; an absent field
// never equals a present one.
type Frame struct {
	Name   string
	Path   string
	Line   int
	Column int
}

// Equivalent reports whether a and b name the same call site. It is the sole
// identity notion used by merge and search; frames are never compared by
// pointer. Column only participates when matchColumn is set, because
// debuggers disagree on whether they report one.
func Equivalent(a, b Frame, matchColumn bool) bool {
	if a.Name != b.Name || a.Path != b.Path || a.Line != b.Line {
		return false
	}
	if matchColumn && a.Column != b.Column {
		return false
	}
	return true
}

// fingerprint hashes the identity fields shared by both column policies.
// Nodes cache it so a child scan can reject most candidates without a
// field-by-field comparison. Equivalent remains authoritative on collision.
func fingerprint(f Frame) uint64 {
	buf := make([]byte, 0, len(f.Name)+len(f.Path)+12)
	buf = append(buf, f.Name...)
	buf = append(buf, 0)
	buf = append(buf, f.Path...)
	buf = append(buf, 0)
	buf = binary.AppendVarint(buf, int64(f.Line))
	return farm.Hash64(buf)
}

// ReverseFrames copies a debugger-ordered trace (innermost frame first) into
// the root-to-leaf order Merge expects. The input is left untouched.
func ReverseFrames(frames []Frame) []Frame {
	out := make([]Frame, len(frames))
	for i, f := range frames {
		out[len(frames)-1-i] = f
	}
	return out
}
