package game

import "github.com/dtjokroa/Cat-Mouse-213/game/maze"

// Terrain answers whether a cell may be entered. *maze.Grid implements it.
// Cats receive it per step instead of holding on to the grid.
type Terrain interface {
	IsOpen(c maze.Coordinate) bool
}

var _ Terrain = (*maze.Grid)(nil)
