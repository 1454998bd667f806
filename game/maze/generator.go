package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const (
	// DefaultMaxAttempts caps the number of full generation passes.
	DefaultMaxAttempts = 10000

	// loopProbability is the chance an eligible interior wall is knocked down in the loop pass.
	loopProbability = 0.5

	// minWallsToCarve is the number of wall neighbours a cell needs before it may be carved.
	minWallsToCarve = 3
)

var ErrGenerationExhausted = errors.New("maze generation exhausted its attempts")

// Config controls maze generation.
type Config struct {
	Width       int
	Height      int
	MaxAttempts int        // 0 means DefaultMaxAttempts
	Rand        *rand.Rand // nil means a time seeded source
}

// Generate builds a grid whose interior corners are mutually reachable, whose
// open cells are all reachable from the top-left corner, and which has no
// interior 2x2 block that is fully open or fully wall.
func Generate(c Config) (*Grid, error) {
	g, err := NewGrid(c.Width, c.Height)
	if err != nil {
		return nil, err
	}

	rng := c.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	attempts := c.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	for i := 0; i < attempts; i++ {
		g.fill()
		g.carvePaths(rng)
		g.clearCorners()
		g.addLoops(rng)
		if IsAcceptable(g) {
			return g, nil
		}
	}

	return nil, fmt.Errorf("%w: %dx%d after %d attempts", ErrGenerationExhausted, c.Width, c.Height, attempts)
}

// IsAcceptable runs the structural acceptance checks on g.
func IsAcceptable(g *Grid) bool {
	return hasAllCornersConnected(g) &&
		AllOpenReachableFrom(g, g.TopLeft()) &&
		!HasOpenSquare(g) &&
		!HasWalledSquare(g)
}

// carvePaths grows passages from the centre with randomized Prim's algorithm.
func (g *Grid) carvePaths(rng *rand.Rand) {
	candidates := []Coordinate{C(g.width/2, g.height/2)}

	for len(candidates) > 0 {
		i := rng.Intn(len(candidates))
		cell := candidates[i]
		last := len(candidates) - 1
		candidates[i] = candidates[last]
		candidates = candidates[:last]

		if !g.isCarvable(cell) {
			continue
		}

		g.SetWall(cell, false)
		for _, nbr := range cell.Neighbors() {
			candidates = append(candidates, nbr)
		}
	}
}

// isCarvable reports whether cell is an interior wall surrounded by enough walls.
func (g *Grid) isCarvable(cell Coordinate) bool {
	if !g.IsInterior(cell) || !g.IsWall(cell) {
		return false
	}
	return g.countWallsAround(cell) >= minWallsToCarve
}

func (g *Grid) countWallsAround(cell Coordinate) int {
	walls := 0
	for _, nbr := range cell.Neighbors() {
		if g.IsWall(nbr) {
			walls++
		}
	}
	return walls
}

// clearCorners opens the spawn cells unconditionally.
func (g *Grid) clearCorners() {
	for _, corner := range g.InteriorCorners() {
		g.SetWall(corner, false)
	}
}

// addLoops knocks down interior walls at random, skipping any that would open a 2x2 room.
func (g *Grid) addLoops(rng *rand.Rand) {
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			cell := C(x, y)
			if !g.IsWall(cell) {
				continue
			}
			shouldRemove := rng.Float64() < loopProbability
			if shouldRemove && !g.removalMakesOpenSquare(cell) {
				g.SetWall(cell, false)
			}
		}
	}
}

// removalMakesOpenSquare reports whether opening cell would complete a 2x2 open block.
func (g *Grid) removalMakesOpenSquare(cell Coordinate) bool {
	for dy := -1; dy <= 1; dy += 2 {
		for dx := -1; dx <= 1; dx += 2 {
			corner := g.IsOpen(C(cell.X+dx, cell.Y+dy))
			horizontal := g.IsOpen(C(cell.X, cell.Y+dy))
			vertical := g.IsOpen(C(cell.X+dx, cell.Y))
			if corner && horizontal && vertical {
				return true
			}
		}
	}
	return false
}

func hasAllCornersConnected(g *Grid) bool {
	corners := g.InteriorCorners()
	reachable := ReachableFrom(g, corners[0])
	for _, corner := range corners[1:] {
		if _, ok := reachable[corner]; !ok {
			return false
		}
	}
	return true
}

// HasOpenSquare reports whether some interior 2x2 block is fully open.
func HasOpenSquare(g *Grid) bool {
	return hasInteriorSquare(g, false)
}

// HasWalledSquare reports whether some 2x2 block off the frame is fully wall.
func HasWalledSquare(g *Grid) bool {
	return hasInteriorSquare(g, true)
}

func hasInteriorSquare(g *Grid, wall bool) bool {
	for y := 1; y < g.height-2; y++ {
		for x := 1; x < g.width-2; x++ {
			if g.IsWall(C(x, y)) == wall &&
				g.IsWall(C(x+1, y)) == wall &&
				g.IsWall(C(x, y+1)) == wall &&
				g.IsWall(C(x+1, y+1)) == wall {
				return true
			}
		}
	}
	return false
}
