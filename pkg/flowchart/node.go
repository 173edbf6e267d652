package flowchart

import (
	"regexp"
	"strings"
)

// idStripRe removes every character outside the safe identifier alphabet.
var idStripRe = regexp.MustCompile(`[^A-Za-z0-9\-_!#$]+`)

// sanitizeID derives an identifier from a label by stripping every
// character outside the safe identifier alphabet.
func sanitizeID(label string) string {
	return idStripRe.ReplaceAllString(label, "")
}

// Node is a styled, shaped, identified vertex.
//
// The identifier is either supplied explicitly or derived lazily from the
// label on first lookup; once computed it is cached for the node's
// lifetime. Uniqueness of identifiers is a caller responsibility and is
// not enforced here.
type Node struct {
	id         string
	idResolved bool

	// Label is the display text framed by the shape delimiters. It may be
	// empty. No escaping is applied; the caller must keep labels free of
	// delimiter syntax.
	Label string

	// Shape selects the delimiter pair, DefaultShape if unset via NewNode.
	Shape Shape

	// Class is an optional class-name reference rendered as a :::class
	// suffix.
	Class string
}

// NewNode creates a node with the default shape whose identifier will be
// derived from label on first lookup.
func NewNode(label string) *Node {
	return &Node{Label: label, Shape: DefaultShape}
}

// NewNodeWithID creates a node with an explicit identifier, used verbatim.
func NewNodeWithID(id, label string) *Node {
	return &Node{id: id, idResolved: true, Label: label, Shape: DefaultShape}
}

// WithShape sets the node shape and returns the node for chaining.
func (n *Node) WithShape(s Shape) *Node {
	n.Shape = s
	return n
}

// WithClass sets the class-name reference and returns the node for chaining.
func (n *Node) WithClass(class string) *Node {
	n.Class = class
	return n
}

// ID returns the node identifier. If none was supplied at construction it
// is derived from the label and cached; deriving from an empty label
// yields an empty identifier, which is a caller error left undiagnosed.
func (n *Node) ID() string {
	if !n.idResolved {
		n.id = sanitizeID(n.Label)
		n.idResolved = true
	}
	return n.id
}

// text renders the node statement: id, open delimiter, label, close
// delimiter, and an optional :::class suffix.
func (n *Node) text() string {
	open, close := n.Shape.Delimiters()
	var b strings.Builder
	b.WriteString(n.ID())
	b.WriteString(open)
	b.WriteString(n.Label)
	b.WriteString(close)
	if n.Class != "" {
		b.WriteString(classSeparator)
		b.WriteString(n.Class)
	}
	return b.String()
}
