package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/dtjokroa/Cat-Mouse-213/game/maze"
)

// Game-related errors.
var (
	ErrInvalidPosition   = errors.New("position is not an open cell")
	ErrInvalidCheeseGoal = errors.New("cheese goal must be positive")
	ErrNoCheeseCell      = errors.New("no open cell left for the cheese")
)

// Default match configuration.
const (
	DefaultWidth      = 20
	DefaultHeight     = 15
	DefaultCheeseGoal = 5
)

// Config holds the parameters for a new match. Zero values fall back to the defaults.
type Config struct {
	Width                 int
	Height                int
	CheeseGoal            int
	MaxGenerationAttempts int
	Rand                  *rand.Rand
}

// Option overrides part of the initial layout.
type Option func(*setup)

type setup struct {
	grid    *maze.Grid
	player  *maze.Coordinate
	cats    []maze.Coordinate
	catsSet bool
	cheese  *maze.Coordinate
}

// WithGrid plays on g instead of generating a maze. The game takes ownership of g.
func WithGrid(g *maze.Grid) Option {
	return func(s *setup) {
		s.grid = g
	}
}

// WithPlayerAt spawns the mouse at pos instead of the top-left corner.
func WithPlayerAt(pos maze.Coordinate) Option {
	return func(s *setup) {
		s.player = &pos
	}
}

// WithCatsAt spawns one cat per position instead of one per remaining corner.
func WithCatsAt(positions ...maze.Coordinate) Option {
	return func(s *setup) {
		s.cats = append([]maze.Coordinate(nil), positions...)
		s.catsSet = true
	}
}

// WithCheeseAt places the first cheese at pos instead of a random cell.
func WithCheeseAt(pos maze.Coordinate) Option {
	return func(s *setup) {
		s.cheese = &pos
	}
}

// Game is a single cat and mouse match.
// It is not safe for concurrent use; callers serialise access per game.
type Game struct {
	grid            *maze.Grid
	player          maze.Coordinate
	cheese          maze.Coordinate
	hasCheese       bool
	cats            []*Cat
	cheeseCollected int
	cheeseGoal      int
	rng             *rand.Rand
}

// New creates a match: the mouse starts in the top-left interior corner, the
// cats in the top-right, bottom-right and bottom-left corners, and the first
// cheese on a random open cell.
func New(c Config, opts ...Option) (*Game, error) {
	c = withDefaults(c)
	if c.CheeseGoal < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCheeseGoal, c.CheeseGoal)
	}

	s := &setup{}
	for _, opt := range opts {
		opt(s)
	}

	grid := s.grid
	if grid == nil {
		var err error
		grid, err = maze.Generate(maze.Config{
			Width:       c.Width,
			Height:      c.Height,
			MaxAttempts: c.MaxGenerationAttempts,
			Rand:        c.Rand,
		})
		if err != nil {
			return nil, err
		}
	}

	corners := grid.InteriorCorners()
	g := &Game{
		grid:       grid,
		player:     corners[0],
		cheeseGoal: c.CheeseGoal,
		rng:        c.Rand,
	}

	if s.player != nil {
		g.player = *s.player
	}
	if !grid.IsOpen(g.player) {
		return nil, fmt.Errorf("%w: player at %v", ErrInvalidPosition, g.player)
	}

	catPositions := []maze.Coordinate{corners[1], corners[2], corners[3]}
	if s.catsSet {
		catPositions = s.cats
	}
	for _, pos := range catPositions {
		if !grid.IsOpen(pos) {
			return nil, fmt.Errorf("%w: cat at %v", ErrInvalidPosition, pos)
		}
		g.cats = append(g.cats, NewCat(pos))
	}

	if s.cheese != nil {
		if !grid.IsOpen(*s.cheese) || *s.cheese == g.player {
			return nil, fmt.Errorf("%w: cheese at %v", ErrInvalidPosition, *s.cheese)
		}
		g.cheese, g.hasCheese = *s.cheese, true
	} else if err := g.placeCheese(); err != nil {
		return nil, err
	}

	g.revealAroundPlayer()
	return g, nil
}

func withDefaults(c Config) Config {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.CheeseGoal == 0 {
		c.CheeseGoal = DefaultCheeseGoal
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c
}

// Grid gives read access to the board. Callers must not mutate it.
func (g *Game) Grid() *maze.Grid {
	return g.grid
}

// Width returns the board width.
func (g *Game) Width() int {
	return g.grid.Width()
}

// Height returns the board height.
func (g *Game) Height() int {
	return g.grid.Height()
}

// Player returns the mouse position.
func (g *Game) Player() maze.Coordinate {
	return g.player
}

// Cheese returns the cheese position, if one is on the board.
func (g *Game) Cheese() (maze.Coordinate, bool) {
	return g.cheese, g.hasCheese
}

// Cats returns the cat positions in spawn order.
func (g *Game) Cats() []maze.Coordinate {
	positions := make([]maze.Coordinate, 0, len(g.cats))
	for _, cat := range g.cats {
		positions = append(positions, cat.Position())
	}
	return positions
}

// CheeseCollected returns how many cheeses the mouse has eaten.
func (g *Game) CheeseCollected() int {
	return g.cheeseCollected
}

// CheeseGoal returns how many cheeses are needed to win.
func (g *Game) CheeseGoal() int {
	return g.cheeseGoal
}

// HasUserLost reports whether a cat shares the mouse's cell.
func (g *Game) HasUserLost() bool {
	return g.IsCatAt(g.player)
}

// HasUserWon reports whether enough cheese was collected without being caught.
func (g *Game) HasUserWon() bool {
	return !g.HasUserLost() && g.cheeseCollected >= g.cheeseGoal
}

// IsMouseAt reports whether the mouse is at c.
func (g *Game) IsMouseAt(c maze.Coordinate) bool {
	return g.player == c
}

// IsCatAt reports whether any cat is at c.
func (g *Game) IsCatAt(c maze.Coordinate) bool {
	for _, cat := range g.cats {
		if cat.Position() == c {
			return true
		}
	}
	return false
}

// IsCheeseAt reports whether the cheese is at c.
func (g *Game) IsCheeseAt(c maze.Coordinate) bool {
	return g.hasCheese && g.cheese == c
}

// IsValidPlayerMove reports whether the mouse may step in direction d.
func (g *Game) IsValidPlayerMove(d maze.Direction) bool {
	return d != maze.None && g.grid.IsOpen(g.player.Moved(d))
}

// MovePlayer steps the mouse in direction d if the target is open, reveals the
// cells around it and eats the cheese there. It reports whether the move was made;
// a rejected move changes nothing.
//
// Moves are accepted after the game is won or lost; stopping play is up to the caller.
func (g *Game) MovePlayer(d maze.Direction) bool {
	if !g.IsValidPlayerMove(d) {
		return false
	}

	g.player = g.player.Moved(d)
	g.revealAroundPlayer()

	if g.IsCheeseAt(g.player) {
		g.cheeseCollected++
		// The cheese stays off the board if no cell is left for it.
		_ = g.placeCheese()
	}
	return true
}

// MoveCats steps every cat once, in spawn order.
func (g *Game) MoveCats() {
	for _, cat := range g.cats {
		cat.Step(g.grid, g.rng)
	}
}

// SetCheeseGoal changes the number of cheeses needed to win.
func (g *Game) SetCheeseGoal(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCheeseGoal, n)
	}
	g.cheeseGoal = n
	return nil
}

// RevealAll lifts the fog from the whole board.
func (g *Game) RevealAll() {
	g.grid.RevealAll()
}

// placeCheese puts the cheese on a uniformly random open interior cell other than the mouse's.
func (g *Game) placeCheese() error {
	var candidates []maze.Coordinate
	for _, c := range g.grid.OpenCells() {
		if g.grid.IsInterior(c) && !g.IsMouseAt(c) {
			candidates = append(candidates, c)
		}
	}

	if len(candidates) == 0 {
		g.hasCheese = false
		return ErrNoCheeseCell
	}

	g.cheese = candidates[g.rng.Intn(len(candidates))]
	g.hasCheese = true
	return nil
}

// revealAroundPlayer reveals the mouse's cell and its eight neighbours.
func (g *Game) revealAroundPlayer() {
	up := g.player.Moved(maze.Up)
	down := g.player.Moved(maze.Down)

	for _, c := range []maze.Coordinate{
		g.player,
		up,
		down,
		g.player.Moved(maze.Left),
		g.player.Moved(maze.Right),
		up.Moved(maze.Right),
		up.Moved(maze.Left),
		down.Moved(maze.Right),
		down.Moved(maze.Left),
	} {
		g.grid.Reveal(c)
	}
}
