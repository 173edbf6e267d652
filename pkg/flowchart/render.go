package flowchart

import (
	"fmt"
	"strings"
)

// indentUnit is the indentation added per nesting level.
const indentUnit = "  "

// Render serializes the container tree to markup text.
//
// Emission is depth-first with a single global link counter threaded
// through the recursion: every link statement, at any nesting depth,
// advances the counter by one in document order. A styled link is
// followed immediately by a linkStyle statement carrying the counter
// value at that point; positional overrides are emitted last with their
// stored absolute indices. The output ends with one trailing blank line.
//
// Render is total: it never fails for any constructed tree.
func (f *Flowchart) Render() string {
	var b strings.Builder
	if !f.sub && f.Title != "" {
		b.WriteString("---\n")
		b.WriteString("title: " + f.Title + "\n")
		b.WriteString("---\n")
	}
	counter := 0
	f.render(&b, 0, &counter)
	b.WriteString("\n")
	return b.String()
}

// String implements fmt.Stringer as an alias for Render.
func (f *Flowchart) String() string { return f.Render() }

// render emits one container at the given depth, advancing the shared
// link counter past every link statement in the subtree.
func (f *Flowchart) render(b *strings.Builder, depth int, counter *int) {
	indent := strings.Repeat(indentUnit, depth)
	inner := indent + indentUnit

	if f.sub {
		b.WriteString(indent + "subgraph " + f.id)
		if f.Title != "" {
			b.WriteString(" [" + f.Title + "]")
		}
		b.WriteString("\n")
		b.WriteString(inner + "direction " + string(f.Direction) + "\n")
	} else {
		b.WriteString(indent + "flowchart " + string(f.Direction) + "\n")
	}

	for _, n := range f.nodes {
		b.WriteString(inner + n.text() + "\n")
	}

	for _, l := range f.links {
		b.WriteString(inner + l.text() + "\n")
		if l.Styled() {
			fmt.Fprintf(b, "%slinkStyle %d %s;\n", inner, *counter, l.style.render())
		}
		*counter++
	}

	for _, sg := range f.subgraphs {
		sg.render(b, depth+1, counter)
	}

	for _, cd := range f.classDefs {
		b.WriteString(inner + cd.text() + "\n")
	}

	for _, ca := range f.classes {
		b.WriteString(inner + ca.text() + "\n")
	}

	for _, ls := range f.linkStyles {
		fmt.Fprintf(b, "%slinkStyle %d %s;\n", inner, ls.index, ls.style.render())
	}

	if f.sub {
		b.WriteString(indent + "end\n")
	}
}
