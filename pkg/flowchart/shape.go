package flowchart

// Shape selects the delimiter pair that frames a node's label in the
// markup, which the renderer turns into the node's outline.
type Shape int

// Supported node shapes.
const (
	ShapeRound Shape = iota // (label)
	ShapeRect               // [label]
	ShapeStadium            // ([label])
	ShapeSubroutine         // [[label]]
	ShapeCircle             // ((label))
	ShapeAsymmetric         // >label]
	ShapeRhombus            // {label}
	ShapeHexagon            // {{label}}
)

// DefaultShape is used when a node is created without an explicit shape.
const DefaultShape = ShapeRound

var shapeDelims = map[Shape][2]string{
	ShapeRound:      {"(", ")"},
	ShapeRect:       {"[", "]"},
	ShapeStadium:    {"([", "])"},
	ShapeSubroutine: {"[[", "]]"},
	ShapeCircle:     {"((", "))"},
	ShapeAsymmetric: {">", "]"},
	ShapeRhombus:    {"{", "}"},
	ShapeHexagon:    {"{{", "}}"},
}

// shapeParseOrder lists shapes in matching priority for the parser.
// Two-character delimiters come first because every one of them contains a
// one-character delimiter as a substring: {{x}} must never be read as a
// rhombus whose label happens to start with a brace.
var shapeParseOrder = []Shape{
	ShapeCircle,
	ShapeStadium,
	ShapeSubroutine,
	ShapeHexagon,
	ShapeRound,
	ShapeRect,
	ShapeRhombus,
	ShapeAsymmetric,
}

// Delimiters returns the opening and closing delimiter strings for s.
func (s Shape) Delimiters() (open, close string) {
	d := shapeDelims[s]
	return d[0], d[1]
}

// String returns a human-readable shape name.
func (s Shape) String() string {
	switch s {
	case ShapeRound:
		return "round"
	case ShapeRect:
		return "rect"
	case ShapeStadium:
		return "stadium"
	case ShapeSubroutine:
		return "subroutine"
	case ShapeCircle:
		return "circle"
	case ShapeAsymmetric:
		return "asymmetric"
	case ShapeRhombus:
		return "rhombus"
	case ShapeHexagon:
		return "hexagon"
	}
	return "unknown"
}
