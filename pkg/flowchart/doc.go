// Package flowchart provides an in-memory model for flow-diagram markup,
// a deterministic serializer, and a parser that inverts it.
//
// # Overview
//
// A [Flowchart] is a tree of containers: the top-level diagram owns nodes,
// links, class definitions, class attachments, and nested subgraphs, which
// recursively own the same collections. Serialization walks the tree
// depth-first and emits the markup dialect consumed by external renderers;
// parsing reconstructs an equivalent tree from that text, enabling
// round-trip editing.
//
// # Basic Usage
//
// Build a diagram with the fluent construction API and serialize it with
// [Flowchart.Render]:
//
//	f := flowchart.NewWithTitle("test1").
//		AddNodeWithLabel("user").
//		AddNodeWithLabel("client").
//		Connect("user", "client")
//	text := f.Render()
//
// Feed markup back through [Parse] to recover the model:
//
//	f, err := flowchart.Parse(text)
//	if err != nil {
//		return err
//	}
//
// # Link Indices
//
// Link-style statements reference links by a single global index assigned
// in document order across the whole tree, independent of subgraph
// nesting. The serializer threads one counter through its recursion and
// the parser mirrors the same bookkeeping, so a positional
// [Flowchart.StyleLink] override always targets the n-th link statement
// of the document, zero-based.
//
// # Fidelity
//
// Serialize-parse-serialize is byte-identical for any tree built through
// this package, with one documented exception: a positional override that
// happens to target the immediately preceding unstyled link is re-parsed
// as an inline style on that link. Both representations render the same
// statement, so the text converges after one round trip.
//
// The package performs no semantic validation: duplicate identifiers,
// dangling link references, and labels containing delimiter characters
// are the caller's responsibility.
package flowchart
