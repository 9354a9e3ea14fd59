package world

// Direction represents a cardinal direction
type Direction int

// Direction constants, clockwise. North is "up" on screen (decreasing Y).
const (
	North Direction = iota
	East
	South
	West
)

var (
	directionNames  = [...]string{"North", "East", "South", "West"}
	directionDeltas = [...][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
)

// AllDirections returns all valid directions for iteration, clockwise from North
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return directionNames[d]
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 2) % 4
}

// Delta returns the x and y offsets for this direction
func (d Direction) Delta() (dx, dy int) {
	if !d.IsValid() {
		return 0, 0
	}
	return directionDeltas[d][0], directionDeltas[d][1]
}
