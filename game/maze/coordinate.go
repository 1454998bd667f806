package maze

import "fmt"

// Direction is a single-step movement vector on the grid.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

var (
	// Directions lists the four movement directions in a fixed order.
	Directions = []Direction{Up, Down, Left, Right}

	offsets = map[Direction]Coordinate{
		None:  {X: 0, Y: 0},
		Up:    {X: 0, Y: -1},
		Down:  {X: 0, Y: 1},
		Left:  {X: -1, Y: 0},
		Right: {X: 1, Y: 0},
	}

	opposites = map[Direction]Direction{
		None:  None,
		Up:    Down,
		Down:  Up,
		Left:  Right,
		Right: Left,
	}

	directionNames = map[Direction]string{
		None:  "NONE",
		Up:    "UP",
		Down:  "DOWN",
		Left:  "LEFT",
		Right: "RIGHT",
	}
)

// Opposite returns the direction pointing back the way d came. None is its own opposite.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Offset returns the (dx, dy) step of the direction.
func (d Direction) Offset() (int, int) {
	o := offsets[d]
	return o.X, o.Y
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Coordinate is a cell position; X grows to the right, Y grows downward.
type Coordinate struct {
	X int
	Y int
}

// C is shorthand for Coordinate{X: x, Y: y}.
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Moved returns the coordinate one step away in direction d.
func (c Coordinate) Moved(d Direction) Coordinate {
	dx, dy := d.Offset()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// Neighbors returns the four axis-adjacent coordinates, in Directions order.
func (c Coordinate) Neighbors() [4]Coordinate {
	return [4]Coordinate{c.Moved(Up), c.Moved(Down), c.Moved(Left), c.Moved(Right)}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
