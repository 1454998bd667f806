package game

import (
	"math/rand"

	"github.com/dtjokroa/Cat-Mouse-213/game/maze"
)

// Cat is an adversary that wanders the maze, avoiding immediate backtracking.
type Cat struct {
	pos      maze.Coordinate
	lastMove maze.Direction
}

// NewCat places a cat at pos with no previous move.
func NewCat(pos maze.Coordinate) *Cat {
	return &Cat{pos: pos, lastMove: maze.None}
}

// Position returns the cell the cat occupies.
func (c *Cat) Position() maze.Coordinate {
	return c.pos
}

// LastMove returns the direction of the cat's last step, or maze.None.
func (c *Cat) LastMove() maze.Direction {
	return c.lastMove
}

// Step moves the cat one cell. Forward and sideways moves are tried in random
// order, then the way back. If every neighbour is blocked the cat stays put.
// It reports whether the cat moved.
func (c *Cat) Step(t Terrain, rng *rand.Rand) bool {
	for _, d := range c.candidateMoves(rng) {
		target := c.pos.Moved(d)
		if t.IsOpen(target) {
			c.pos = target
			c.lastMove = d
			return true
		}
	}
	return false
}

func (c *Cat) candidateMoves(rng *rand.Rand) []maze.Direction {
	back := c.lastMove.Opposite()

	moves := make([]maze.Direction, 0, len(maze.Directions))
	for _, d := range maze.Directions {
		if d != back {
			moves = append(moves, d)
		}
	}
	rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})

	if back != maze.None {
		moves = append(moves, back)
	}
	return moves
}
