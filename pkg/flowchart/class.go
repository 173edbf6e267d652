package flowchart

import "strings"

// classSeparator introduces an inline class reference on a node statement.
const classSeparator = ":::"

// ClassDef binds one or more class names to a reusable style.
type ClassDef struct {
	// Names holds the class names; multiple names are comma-joined
	// verbatim in output, preserving order.
	Names []string

	style styleText
}

// NewClassDef binds class names to a structured node style.
func NewClassDef(style *NodeStyle, names ...string) *ClassDef {
	return &ClassDef{Names: names, style: objStyle(style)}
}

// NewRawClassDef binds class names to a raw style string.
func NewRawClassDef(style string, names ...string) *ClassDef {
	return &ClassDef{Names: names, style: rawStyle(style)}
}

func (c *ClassDef) text() string {
	return "classDef " + strings.Join(c.Names, ",") + " " + c.style.render()
}

// ClassAttachment applies a single class name to one or more node
// references.
type ClassAttachment struct {
	// Class is the class name applied to every referenced node.
	Class string

	targets []endpoint
}

// NewClassAttachment attaches class to nodes referenced by identifier.
func NewClassAttachment(class string, ids ...string) *ClassAttachment {
	a := &ClassAttachment{Class: class}
	for _, id := range ids {
		a.targets = append(a.targets, endpoint{id: id})
	}
	return a
}

// NewNodeClassAttachment attaches class to node objects. References are
// non-owning; identifiers are resolved at format time.
func NewNodeClassAttachment(class string, nodes ...*Node) *ClassAttachment {
	a := &ClassAttachment{Class: class}
	for _, n := range nodes {
		a.targets = append(a.targets, endpoint{node: n})
	}
	return a
}

// AddNode appends a node reference to the attachment.
func (a *ClassAttachment) AddNode(n *Node) *ClassAttachment {
	a.targets = append(a.targets, endpoint{node: n})
	return a
}

// AddID appends an identifier reference to the attachment.
func (a *ClassAttachment) AddID(id string) *ClassAttachment {
	a.targets = append(a.targets, endpoint{id: id})
	return a
}

func (a *ClassAttachment) text() string {
	ids := make([]string, len(a.targets))
	for i, t := range a.targets {
		ids[i] = t.resolve()
	}
	return "class " + strings.Join(ids, ",") + " " + a.Class + ";"
}
