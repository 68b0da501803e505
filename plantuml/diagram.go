// Package plantuml renders a call-stack tree as a PlantUML activity-diagram
// script. Rendering the script into an image is left to PlantUML itself.
package plantuml

import (
	"strings"

	"github.com/stackuml-dev/stackuml/calltree"
)

// DefaultMaxWidth is the activity label width used when no configuration is
// supplied.
const DefaultMaxWidth = 60

// Serialize emits the tree as a PlantUML activity diagram. The root sentinel
// is never emitted; a node with one child continues the current lane, a node
// with several children opens a fork with one lane per child, in recording
// order. Output is a pure function of the tree content and maxWidth.
func Serialize(t *calltree.Tree, maxWidth int) string {
	var b strings.Builder
	b.WriteString("@startuml\n")
	b.WriteString("start\n")
	writeBranches(&b, t.Root(), maxWidth)
	b.WriteString("stop\n")
	b.WriteString("@enduml\n")
	return b.String()
}

func writeBranches(b *strings.Builder, n *calltree.Node, maxWidth int) {
	switch len(n.Children) {
	case 0:
	case 1:
		writeActivity(b, n.Children[0], maxWidth)
		writeBranches(b, n.Children[0], maxWidth)
	default:
		b.WriteString("fork\n")
		for i, c := range n.Children {
			if i > 0 {
				b.WriteString("fork again\n")
			}
			writeActivity(b, c, maxWidth)
			writeBranches(b, c, maxWidth)
		}
		b.WriteString("end fork\n")
	}
}

// writeActivity emits one activity line. Wrapped label lines are joined with
// a PlantUML line break so the activity spans several visual lines but stays
// one node.
func writeActivity(b *strings.Builder, n *calltree.Node, maxWidth int) {
	b.WriteString(":")
	b.WriteString(strings.Join(Wrap(n.Frame.Name, maxWidth), "\\n"))
	b.WriteString(";\n")
}
