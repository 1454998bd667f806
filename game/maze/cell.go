package maze

// CellState is the state of a single grid cell.
// The zero value is a hidden wall.
type CellState struct {
	Passable  bool // Passable indicates whether the cell can be entered.
	IsVisible bool // IsVisible indicates whether the player has seen the cell.
}

// Wall returns a hidden wall cell.
func Wall() CellState {
	return CellState{}
}

// Open returns a hidden open cell.
func Open() CellState {
	return CellState{Passable: true}
}

// IsWall reports whether the cell blocks movement.
func (c CellState) IsWall() bool {
	return !c.Passable
}

// IsOpen reports whether the cell can be entered.
func (c CellState) IsOpen() bool {
	return c.Passable
}

// IsHidden reports whether the cell is still under fog.
func (c CellState) IsHidden() bool {
	return !c.IsVisible
}

// Revealed returns a copy of the cell marked visible.
func (c CellState) Revealed() CellState {
	c.IsVisible = true
	return c
}
