package game

import "github.com/dtjokroa/Cat-Mouse-213/game/maze"

// State is a detached copy of everything an outside layer needs to draw a game.
type State struct {
	Width           int
	Height          int
	Walls           [][]bool // Walls indexed [y][x].
	Visible         [][]bool // Visible indexed [y][x].
	Player          maze.Coordinate
	Cheese          maze.Coordinate
	HasCheese       bool
	Cats            []maze.Coordinate
	CheeseCollected int
	CheeseGoal      int
	Won             bool
	Lost            bool
}

// Snapshot copies the current game state.
func (g *Game) Snapshot() State {
	s := State{
		Width:           g.grid.Width(),
		Height:          g.grid.Height(),
		Walls:           make([][]bool, g.grid.Height()),
		Visible:         make([][]bool, g.grid.Height()),
		Player:          g.player,
		Cheese:          g.cheese,
		HasCheese:       g.hasCheese,
		Cats:            g.Cats(),
		CheeseCollected: g.cheeseCollected,
		CheeseGoal:      g.cheeseGoal,
		Won:             g.HasUserWon(),
		Lost:            g.HasUserLost(),
	}

	for y := range s.Walls {
		s.Walls[y] = make([]bool, s.Width)
		s.Visible[y] = make([]bool, s.Width)
		for x := range s.Walls[y] {
			c := maze.C(x, y)
			s.Walls[y][x] = g.grid.IsWall(c)
			s.Visible[y][x] = g.grid.IsVisible(c)
		}
	}
	return s
}
