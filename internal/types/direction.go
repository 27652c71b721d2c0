package types

// Direction represents horizontal focus navigation
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// String returns the string representation of a Direction
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Step returns the signed offset used for monitor wraparound and
// for picking the adjacent window within a monitor (-1 left, +1 right).
func (d Direction) Step() int {
	if d == DirLeft {
		return -1
	}
	return 1
}

// ParseDirection converts a string to Direction
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	default:
		return 0, false
	}
}
