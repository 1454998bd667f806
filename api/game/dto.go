// Package gameapi exposes games over HTTP and websockets.
package gameapi

import (
	"github.com/dtjokroa/Cat-Mouse-213/game"
	"github.com/dtjokroa/Cat-Mouse-213/game/maze"
)

// LocationResponse is a board cell.
type LocationResponse struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GameResponse summarises a game's progress.
type GameResponse struct {
	GameNumber     int  `json:"gameNumber"`
	IsGameWon      bool `json:"isGameWon"`
	IsGameLost     bool `json:"isGameLost"`
	NumCheeseFound int  `json:"numCheeseFound"`
	NumCheeseGoal  int  `json:"numCheeseGoal"`
}

// BoardResponse is everything a client needs to draw the board.
// Rows of HasWalls and IsVisible are indexed [y][x].
type BoardResponse struct {
	BoardWidth     int                `json:"boardWidth"`
	BoardHeight    int                `json:"boardHeight"`
	MouseLocation  LocationResponse   `json:"mouseLocation"`
	CheeseLocation *LocationResponse  `json:"cheeseLocation"`
	CatLocations   []LocationResponse `json:"catLocations"`
	HasWalls       [][]bool           `json:"hasWalls"`
	IsVisible      [][]bool           `json:"isVisible"`
}

// FeedMessage is pushed over the game feed.
type FeedMessage struct {
	Game  GameResponse  `json:"game"`
	Board BoardResponse `json:"board"`
}

func newLocation(c maze.Coordinate) LocationResponse {
	return LocationResponse{X: c.X, Y: c.Y}
}

func newGameResponse(id int, s game.State) GameResponse {
	return GameResponse{
		GameNumber:     id,
		IsGameWon:      s.Won,
		IsGameLost:     s.Lost,
		NumCheeseFound: s.CheeseCollected,
		NumCheeseGoal:  s.CheeseGoal,
	}
}

func newBoardResponse(s game.State) BoardResponse {
	board := BoardResponse{
		BoardWidth:    s.Width,
		BoardHeight:   s.Height,
		MouseLocation: newLocation(s.Player),
		CatLocations:  make([]LocationResponse, 0, len(s.Cats)),
		HasWalls:      s.Walls,
		IsVisible:     s.Visible,
	}
	if s.HasCheese {
		cheese := newLocation(s.Cheese)
		board.CheeseLocation = &cheese
	}
	for _, c := range s.Cats {
		board.CatLocations = append(board.CatLocations, newLocation(c))
	}
	return board
}
