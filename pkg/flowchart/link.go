package flowchart

import "strings"

// LinkKind is the token distinguishing arrow, plain, and invisible
// connections.
type LinkKind string

// Supported link kinds.
const (
	LinkArrow     LinkKind = "-->"
	LinkLine      LinkKind = "---"
	LinkInvisible LinkKind = "~~~"
)

// endpoint is a two-variant link end: either a literal identifier or a
// non-owning node reference resolved to its identifier at format time.
type endpoint struct {
	id   string
	node *Node
}

func (e endpoint) resolve() string {
	if e.node != nil {
		return e.node.ID()
	}
	return e.id
}

// Link is a directed edge between two node references. Endpoints are
// given either as literal identifiers or as node objects; resolution to
// identifier text happens when the link is serialized.
type Link struct {
	from endpoint
	to   endpoint

	// Kind is the connection token, LinkArrow by default.
	Kind LinkKind

	// Label is optional edge text emitted as a |label| block.
	Label string

	style styleText
}

// NewLink creates an arrow link between two literal identifiers.
func NewLink(from, to string) *Link {
	return &Link{from: endpoint{id: from}, to: endpoint{id: to}, Kind: LinkArrow}
}

// NewNodeLink creates an arrow link between two nodes. The link holds
// non-owning references; identifiers are looked up at format time.
func NewNodeLink(from, to *Node) *Link {
	return &Link{from: endpoint{node: from}, to: endpoint{node: to}, Kind: LinkArrow}
}

// WithKind sets the connection kind and returns the link for chaining.
func (l *Link) WithKind(k LinkKind) *Link {
	l.Kind = k
	return l
}

// WithLabel sets the edge label and returns the link for chaining.
func (l *Link) WithLabel(label string) *Link {
	l.Label = label
	return l
}

// SetStyle attaches a structured style to the link. Calling it again
// replaces the previous style; the operation is idempotent.
func (l *Link) SetStyle(s *LinkStyle) *Link {
	l.style = objStyle(s)
	return l
}

// SetRawStyle attaches a raw style string to the link.
func (l *Link) SetRawStyle(s string) *Link {
	l.style = rawStyle(s)
	return l
}

// Styled reports whether the link carries a style, inline or raw.
func (l *Link) Styled() bool { return l.style.present() }

// From returns the resolved source identifier.
func (l *Link) From() string { return l.from.resolve() }

// To returns the resolved destination identifier.
func (l *Link) To() string { return l.to.resolve() }

// text renders the link statement. The label block is emitted only when a
// label is present.
func (l *Link) text() string {
	var b strings.Builder
	b.WriteString(l.from.resolve())
	b.WriteString(" ")
	b.WriteString(string(l.Kind))
	b.WriteString(" ")
	if l.Label != "" {
		b.WriteString("|")
		b.WriteString(l.Label)
		b.WriteString("|")
	}
	b.WriteString(l.to.resolve())
	return b.String()
}
