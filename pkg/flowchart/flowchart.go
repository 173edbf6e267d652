package flowchart

import (
	"errors"
	"fmt"
)

// ErrSubgraphID is returned by [NewSubgraph] when neither an explicit
// identifier nor a title with at least one safe identifier character is
// available. Subgraphs must be addressable deterministically; no random
// fallback identifier is generated.
var ErrSubgraphID = errors.New("subgraph requires an identifier or a title it can be derived from")

// linkStyleOverride is a positional style statement targeting a link by
// its absolute document-order index.
type linkStyleOverride struct {
	index int
	style styleText
}

// Flowchart is the container for both the top-level diagram and nested
// subgraphs. The two differ only in framing: the top level emits an
// optional title block and a flowchart header, a subgraph emits a
// subgraph/end frame with its own identifier and an inline title.
type Flowchart struct {
	id  string
	sub bool

	// Title is rendered as a front-matter block on the top level and
	// inline in the subgraph header on nested containers.
	Title string

	// Direction is the layout-flow orientation directive.
	Direction Direction

	nodes      []*Node
	links      []*Link
	subgraphs  []*Flowchart
	classDefs  []*ClassDef
	classes    []*ClassAttachment
	linkStyles []*linkStyleOverride
}

// New creates an empty top-level flowchart with the default direction.
func New() *Flowchart {
	return &Flowchart{Direction: DefaultDirection}
}

// NewWithTitle creates a top-level flowchart with a front-matter title.
func NewWithTitle(title string) *Flowchart {
	return &Flowchart{Title: title, Direction: DefaultDirection}
}

// NewSubgraph creates a nested subgraph container. The identifier is used
// verbatim when non-empty, otherwise derived from title by stripping
// characters outside the safe identifier alphabet. When neither yields a
// non-empty identifier, NewSubgraph returns [ErrSubgraphID]: generating a
// random identifier would break reproducible round trips.
func NewSubgraph(id, title string) (*Flowchart, error) {
	if id == "" {
		id = sanitizeID(title)
	}
	if id == "" {
		return nil, fmt.Errorf("%w (title %q)", ErrSubgraphID, title)
	}
	return &Flowchart{id: id, sub: true, Title: title, Direction: DefaultDirection}, nil
}

// WithDirection sets the direction and returns the container for chaining.
func (f *Flowchart) WithDirection(d Direction) *Flowchart {
	f.Direction = d
	return f
}

// ID returns the subgraph identifier; it is empty for top-level charts.
func (f *Flowchart) ID() string { return f.id }

// IsSubgraph reports whether the container renders with subgraph framing.
func (f *Flowchart) IsSubgraph() bool { return f.sub }

// AddNode appends a node and returns the container for chaining.
func (f *Flowchart) AddNode(nodes ...*Node) *Flowchart {
	f.nodes = append(f.nodes, nodes...)
	return f
}

// AddNodeWithLabel appends a default-shaped node built from label.
func (f *Flowchart) AddNodeWithLabel(label string) *Flowchart {
	return f.AddNode(NewNode(label))
}

// AddLink appends a link and returns the container for chaining.
func (f *Flowchart) AddLink(links ...*Link) *Flowchart {
	f.links = append(f.links, links...)
	return f
}

// Connect appends an unlabeled arrow link between two identifiers.
func (f *Flowchart) Connect(from, to string) *Flowchart {
	return f.AddLink(NewLink(from, to))
}

// ConnectNodes appends an unlabeled arrow link between two nodes.
func (f *Flowchart) ConnectNodes(from, to *Node) *Flowchart {
	return f.AddLink(NewNodeLink(from, to))
}

// DefineClass appends a class definition.
func (f *Flowchart) DefineClass(defs ...*ClassDef) *Flowchart {
	f.classDefs = append(f.classDefs, defs...)
	return f
}

// AttachClass appends a class attachment for identifier references.
func (f *Flowchart) AttachClass(class string, ids ...string) *Flowchart {
	f.classes = append(f.classes, NewClassAttachment(class, ids...))
	return f
}

// AttachClassNodes appends a class attachment for node references.
func (f *Flowchart) AttachClassNodes(class string, nodes ...*Node) *Flowchart {
	f.classes = append(f.classes, NewNodeClassAttachment(class, nodes...))
	return f
}

// Attach appends an already-built class attachment, allowing mixed
// identifier and node references.
func (f *Flowchart) Attach(a *ClassAttachment) *Flowchart {
	f.classes = append(f.classes, a)
	return f
}

// StyleLink appends a positional link-style override for the link at the
// given absolute document-order index.
func (f *Flowchart) StyleLink(index int, style *LinkStyle) *Flowchart {
	f.linkStyles = append(f.linkStyles, &linkStyleOverride{index: index, style: objStyle(style)})
	return f
}

// StyleLinkRaw appends a positional override with a raw style string.
func (f *Flowchart) StyleLinkRaw(index int, style string) *Flowchart {
	f.linkStyles = append(f.linkStyles, &linkStyleOverride{index: index, style: rawStyle(style)})
	return f
}

// AddSubgraph appends a nested subgraph and returns the container for
// chaining. The subgraph must have been built with [NewSubgraph].
func (f *Flowchart) AddSubgraph(subs ...*Flowchart) *Flowchart {
	f.subgraphs = append(f.subgraphs, subs...)
	return f
}

// Nodes returns the directly owned nodes in insertion order.
func (f *Flowchart) Nodes() []*Node { return f.nodes }

// Links returns the directly owned links in insertion order.
func (f *Flowchart) Links() []*Link { return f.links }

// Subgraphs returns the directly owned subgraphs in insertion order.
func (f *Flowchart) Subgraphs() []*Flowchart { return f.subgraphs }

// ClassDefs returns the owned class definitions in insertion order.
func (f *Flowchart) ClassDefs() []*ClassDef { return f.classDefs }

// ClassAttachments returns the owned class attachments in insertion order.
func (f *Flowchart) ClassAttachments() []*ClassAttachment { return f.classes }

// CountLinks returns the number of link statements in the whole subtree,
// counted depth-first the way the serializer assigns link indices.
func (f *Flowchart) CountLinks() int {
	n := len(f.links)
	for _, sg := range f.subgraphs {
		n += sg.CountLinks()
	}
	return n
}
