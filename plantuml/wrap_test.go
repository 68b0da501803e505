package plantuml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapGreedyPacking(t *testing.T) {
	assert.Equal(t, []string{"one two", "three"}, Wrap("one two three", 7))
}

func TestWrapSingleShortWord(t *testing.T) {
	assert.Equal(t, []string{"hello"}, Wrap("hello", 60))
}

func TestWrapEmptyInput(t *testing.T) {
	assert.Empty(t, Wrap("", 60))
	assert.Empty(t, Wrap("   ", 60))
}

func TestWrapNoTrailingWhitespace(t *testing.T) {
	for _, line := range Wrap("alpha beta gamma delta epsilon", 10) {
		assert.Equal(t, strings.TrimRight(line, " "), line)
	}
}

func TestWrapOverlongSegmentOverflows(t *testing.T) {
	// A segment longer than maxWidth is never split.
	lines := Wrap("short reallyreallylongsegment tail", 10)
	assert.Contains(t, lines, "reallyreallylongsegment")
}

func TestWrapStarSegmentPaddedAtLineStart(t *testing.T) {
	// "*alloc" starts the second line and would read as a bullet.
	lines := Wrap("prefix *alloc", 6)
	assert.Equal(t, []string{"prefix", " *alloc"}, lines)

	// Mid-line it needs no padding.
	assert.Equal(t, []string{"a *b"}, Wrap("a *b", 10))
}

func TestWrapPreservesWordOrder(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"
	for _, width := range []int{1, 5, 9, 14, 80} {
		lines := Wrap(text, width)
		joined := strings.Join(strings.Fields(strings.Join(lines, " ")), " ")
		assert.Equal(t, text, joined, "width %d", width)
	}
}

func TestWrapClampsNonPositiveWidth(t *testing.T) {
	// Contract violation: clamp to 1 rather than panic or loop.
	lines := Wrap("a b", 0)
	assert.Equal(t, []string{"a", "b"}, lines)
}
