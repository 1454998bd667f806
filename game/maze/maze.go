/*
Package maze provides the cell grid the cat and mouse game is played on.

A Grid is a fixed-size rectangle of CellState values indexed [y][x]. The outer
frame is always wall, and the four interior corners are always open: they are
the spawn points for the mouse and the cats.

Generate builds a grid with randomized Prim-style carving plus loop injection,
and retries until the result passes the structural acceptance checks in
this package (corner connectivity, full reachability, no open or walled 2x2 blocks).
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MinDimension is the smallest width or height that admits four distinct interior corners.
	MinDimension = 5
	// MaxDimension bounds generation time; larger grids need too many retries to converge.
	MaxDimension = 32

	wallRune = '#'
	openRune = '.'
)

var (
	ErrInvalidDimension = errors.New("invalid maze dimension")
	ErrMalformedGrid    = errors.New("malformed grid picture")
)

// Grid is a rectangular board of cells.
type Grid struct {
	width  int
	height int
	cells  [][]CellState // cells indexed [y][x]
}

// NewGrid returns a grid filled with walls, where the boundary walls are already visible.
func NewGrid(width, height int) (*Grid, error) {
	if min(width, height) < MinDimension || max(width, height) > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([][]CellState, height),
	}
	for y := range g.cells {
		g.cells[y] = make([]CellState, width)
	}
	g.fill()
	return g, nil
}

// fill resets every cell to a hidden wall and reveals the boundary frame.
func (g *Grid) fill() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			cell := Wall()
			if g.IsBoundary(C(x, y)) {
				cell = cell.Revealed()
			}
			g.cells[y][x] = cell
		}
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBound reports whether c lies on the grid.
func (g *Grid) InBound(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// IsBoundary reports whether c lies on the outer frame.
func (g *Grid) IsBoundary(c Coordinate) bool {
	return c.X == 0 || c.Y == 0 || c.X == g.width-1 || c.Y == g.height-1
}

// IsInterior reports whether c is on the grid and off the frame.
func (g *Grid) IsInterior(c Coordinate) bool {
	return g.InBound(c) && !g.IsBoundary(c)
}

// IsWall reports whether c is a wall. Off-grid coordinates are not walls, they are simply not open.
func (g *Grid) IsWall(c Coordinate) bool {
	return g.InBound(c) && g.cells[c.Y][c.X].IsWall()
}

// IsOpen reports whether c can be entered. Off-grid coordinates are blocked.
func (g *Grid) IsOpen(c Coordinate) bool {
	return g.InBound(c) && g.cells[c.Y][c.X].IsOpen()
}

// IsVisible reports whether c has been revealed. Off-grid coordinates are never visible.
func (g *Grid) IsVisible(c Coordinate) bool {
	return g.InBound(c) && g.cells[c.Y][c.X].IsVisible
}

// SetWall marks c as wall or open, keeping its visibility. Off-grid coordinates are ignored.
func (g *Grid) SetWall(c Coordinate, wall bool) {
	if !g.InBound(c) {
		return
	}
	g.cells[c.Y][c.X].Passable = !wall
}

// Reveal makes c visible. Off-grid coordinates are ignored.
func (g *Grid) Reveal(c Coordinate) {
	if !g.InBound(c) {
		return
	}
	g.cells[c.Y][c.X] = g.cells[c.Y][c.X].Revealed()
}

// RevealAll makes every cell visible.
func (g *Grid) RevealAll() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = g.cells[y][x].Revealed()
		}
	}
}

// TopLeft returns the mouse spawn corner.
func (g *Grid) TopLeft() Coordinate {
	return C(1, 1)
}

// InteriorCorners returns the four spawn corners: top-left, top-right, bottom-right, bottom-left.
func (g *Grid) InteriorCorners() [4]Coordinate {
	return [4]Coordinate{
		C(1, 1),
		C(g.width-2, 1),
		C(g.width-2, g.height-2),
		C(1, g.height-2),
	}
}

// OpenCells returns every open coordinate in row-major order.
func (g *Grid) OpenCells() []Coordinate {
	var open []Coordinate
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x].IsOpen() {
				open = append(open, C(x, y))
			}
		}
	}
	return open
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([][]CellState, g.height),
	}
	for y := range g.cells {
		clone.cells[y] = append([]CellState(nil), g.cells[y]...)
	}
	return clone
}

// String renders walls as '#' and open cells as '.', one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x].IsWall() {
				sb.WriteRune(wallRune)
			} else {
				sb.WriteRune(openRune)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse builds a grid from the String format. Blank lines and surrounding
// spaces are ignored. Every cell starts hidden except the frame, which must be all wall.
func Parse(picture string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(picture, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrMalformedGrid)
	}

	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, y, len(row), g.width)
		}
		for x, r := range row {
			switch r {
			case wallRune:
				g.SetWall(C(x, y), true)
			case openRune:
				if g.IsBoundary(C(x, y)) {
					return nil, fmt.Errorf("%w: open frame cell at %v", ErrMalformedGrid, C(x, y))
				}
				g.SetWall(C(x, y), false)
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %v", ErrMalformedGrid, r, C(x, y))
			}
		}
	}
	return g, nil
}
