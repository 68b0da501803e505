package plantuml

import "strings"

// Wrap breaks text into lines of at most maxWidth characters by greedy
// packing on spaces. Runs of whitespace are treated as plain separators.
// A single segment longer than maxWidth is never split; it overflows the
// nominal width on a line of its own, which PlantUML tolerates. Segments
// starting with '*' get one extra leading space at the start of a line so
// they are not parsed as list bullets. Empty input yields no lines.
func Wrap(text string, maxWidth int) []string {
	if maxWidth < 1 {
		maxWidth = 1
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := ""
	for _, w := range words {
		switch {
		case current == "":
			current = lineStart(w)
		case len(current)+len(w)+1 <= maxWidth:
			current += " " + w
		default:
			lines = append(lines, current)
			current = lineStart(w)
		}
	}
	return append(lines, current)
}

func lineStart(w string) string {
	if strings.HasPrefix(w, "*") {
		return " " + w
	}
	return w
}
