package flowchart

// Direction is the layout-flow orientation of a container. It governs only
// the emitted directive; layout itself is the renderer's concern.
type Direction string

// Supported flow directions.
const (
	DirectionTB Direction = "TB" // top to bottom
	DirectionTD Direction = "TD" // top-down, synonym of TB
	DirectionBT Direction = "BT" // bottom to top
	DirectionLR Direction = "LR" // left to right
	DirectionRL Direction = "RL" // right to left
)

// DefaultDirection is used when a container is created without an explicit
// direction.
const DefaultDirection = DirectionTD

var directions = map[string]Direction{
	"TB": DirectionTB,
	"TD": DirectionTD,
	"BT": DirectionBT,
	"LR": DirectionLR,
	"RL": DirectionRL,
}

// ParseDirection maps a direction token to its Direction value.
// The second return value reports whether the token is known.
func ParseDirection(s string) (Direction, bool) {
	d, ok := directions[s]
	return d, ok
}
