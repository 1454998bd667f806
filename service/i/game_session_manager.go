package i

import "github.com/dtjokroa/Cat-Mouse-213/game"

// SessionEntry pairs a game id with a snapshot of its state.
type SessionEntry struct {
	ID    int
	State game.State
}

// GameSessionManager owns the running games and serialises commands per game.
type GameSessionManager interface {
	// NewSession starts a game and returns its id and initial state.
	NewSession() (int, game.State, error)

	// Session returns the current state of a game.
	Session(id int) (game.State, error)

	// Sessions lists every running game ordered by id.
	Sessions() []SessionEntry

	// Move applies a player move (MOVE_UP, MOVE_DOWN, MOVE_LEFT, MOVE_RIGHT) or MOVE_CATS.
	Move(id int, command string) (game.State, error)

	// Cheat applies a cheat command (1_CHEESE, SHOW_ALL).
	Cheat(id int, command string) (game.State, error)

	// Subscribe returns a channel receiving the state after every applied command.
	// The channel is closed when the game ends; cancel stops the subscription.
	Subscribe(id int) (updates <-chan game.State, cancel func(), err error)

	// EndSession removes a game and closes its subscriptions.
	EndSession(id int) error
}
