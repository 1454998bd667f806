package service

import (
	"io"
	"sync"
	"testing"

	"github.com/dtjokroa/Cat-Mouse-213/game"
	"github.com/dtjokroa/Cat-Mouse-213/game/maze"
	logger "github.com/dtjokroa/Cat-Mouse-213/infrastruture/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, maxSessions int) *GameSessionManager {
	t.Helper()
	l, err := logger.New("TEST", "", io.Discard)
	require.NoError(t, err)

	gsm, err := NewGameSessionManager(&Config{
		MazeWidth:   9,
		MazeHeight:  7,
		CheeseGoal:  3,
		MaxSessions: maxSessions,
		Seed:        42,
		Logger:      l,
	})
	require.NoError(t, err)
	return gsm
}

// openMove returns a command that moves the player onto an open cell.
func openMove(t *testing.T, s game.State) string {
	t.Helper()
	for cmd, d := range moveDirections {
		next := s.Player.Moved(d)
		if !s.Walls[next.Y][next.X] {
			return cmd
		}
	}
	t.Fatalf("player at %v has no open neighbour", s.Player)
	return ""
}

func TestNewGameSessionManager(t *testing.T) {
	_, err := NewGameSessionManager(&Config{})
	assert.Error(t, err)

	l, err := logger.New("TEST", "", io.Discard)
	require.NoError(t, err)
	_, err = NewGameSessionManager(&Config{Logger: l, CheeseGoal: -1})
	assert.ErrorIs(t, err, game.ErrInvalidCheeseGoal)

	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{"defaults", 0, 0, false},
		{"smallest", maze.MinDimension, maze.MinDimension, false},
		{"largest", maze.MaxDimension, maze.MaxDimension, false},
		{"too narrow", maze.MinDimension - 1, 10, true},
		{"too tall", 10, maze.MaxDimension + 1, true},
		{"negative", -5, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGameSessionManager(&Config{Logger: l, MazeWidth: tt.width, MazeHeight: tt.height})
			if tt.wantErr {
				assert.ErrorIs(t, err, maze.ErrInvalidDimension)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewSession(t *testing.T) {
	gsm := newTestManager(t, 0)

	for want := 1; want <= 3; want++ {
		id, state, err := gsm.NewSession()
		require.NoError(t, err)
		assert.Equal(t, want, id)
		assert.Equal(t, 9, state.Width)
		assert.Equal(t, 7, state.Height)
		assert.Equal(t, maze.C(1, 1), state.Player)
		assert.Equal(t, 3, state.CheeseGoal)
		assert.Len(t, state.Cats, 3)
	}

	entries := gsm.Sessions()
	require.Len(t, entries, 3)
	for idx, e := range entries {
		assert.Equal(t, idx+1, e.ID)
	}
}

func TestSessionLimit(t *testing.T) {
	gsm := newTestManager(t, 2)

	for n := 0; n < 2; n++ {
		_, _, err := gsm.NewSession()
		require.NoError(t, err)
	}
	_, _, err := gsm.NewSession()
	assert.ErrorIs(t, err, ErrTooManySessions)

	require.NoError(t, gsm.EndSession(1))
	id, _, err := gsm.NewSession()
	require.NoError(t, err)
	assert.Equal(t, 3, id, "ids are never reused")
}

func TestUnknownSession(t *testing.T) {
	gsm := newTestManager(t, 0)

	_, err := gsm.Session(7)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = gsm.Move(7, MoveUp)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = gsm.Cheat(7, CheatShowAll)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, _, err = gsm.Subscribe(7)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, gsm.EndSession(7), ErrSessionNotFound)
}

func TestMove(t *testing.T) {
	gsm := newTestManager(t, 0)
	id, start, err := gsm.NewSession()
	require.NoError(t, err)

	t.Run("into the boundary is rejected", func(t *testing.T) {
		_, err := gsm.Move(id, MoveUp)
		assert.ErrorIs(t, err, ErrInvalidMove)

		after, err := gsm.Session(id)
		require.NoError(t, err)
		assert.Equal(t, start, after)
	})

	t.Run("unknown commands are rejected", func(t *testing.T) {
		for _, cmd := range []string{"", "move_up", "JUMP", CheatShowAll} {
			_, err := gsm.Move(id, cmd)
			assert.ErrorIs(t, err, ErrUnknownCommand, cmd)
		}
	})

	t.Run("open move is applied", func(t *testing.T) {
		cmd := openMove(t, start)
		state, err := gsm.Move(id, cmd)
		require.NoError(t, err)
		assert.Equal(t, start.Player.Moved(moveDirections[cmd]), state.Player)
	})

	t.Run("cats move", func(t *testing.T) {
		before, err := gsm.Session(id)
		require.NoError(t, err)
		state, err := gsm.Move(id, MoveCats)
		require.NoError(t, err)
		assert.Equal(t, before.Player, state.Player)
		assert.Len(t, state.Cats, 3)
	})
}

func TestCheat(t *testing.T) {
	gsm := newTestManager(t, 0)
	id, _, err := gsm.NewSession()
	require.NoError(t, err)

	state, err := gsm.Cheat(id, CheatOneCheese)
	require.NoError(t, err)
	assert.Equal(t, 1, state.CheeseGoal)

	state, err = gsm.Cheat(id, CheatShowAll)
	require.NoError(t, err)
	for y := range state.Visible {
		for x := range state.Visible[y] {
			assert.True(t, state.Visible[y][x], "(%d,%d) still hidden", x, y)
		}
	}

	_, err = gsm.Cheat(id, MoveCats)
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestSubscribe(t *testing.T) {
	gsm := newTestManager(t, 0)
	id, start, err := gsm.NewSession()
	require.NoError(t, err)

	updates, cancel, err := gsm.Subscribe(id)
	require.NoError(t, err)

	t.Run("rejected commands publish nothing", func(t *testing.T) {
		_, err := gsm.Move(id, MoveUp)
		require.Error(t, err)
		assert.Empty(t, updates)
	})

	t.Run("latest state wins", func(t *testing.T) {
		_, err := gsm.Move(id, MoveCats)
		require.NoError(t, err)
		last, err := gsm.Cheat(id, CheatOneCheese)
		require.NoError(t, err)

		got := <-updates
		assert.Equal(t, last, got)
		assert.Equal(t, 1, got.CheeseGoal)
		assert.Empty(t, updates)
	})

	t.Run("cancel closes the channel", func(t *testing.T) {
		cancel()
		cancel()
		_, ok := <-updates
		assert.False(t, ok)

		_, err := gsm.Move(id, openMove(t, start))
		assert.NoError(t, err)
	})
}

func TestEndSessionClosesSubscriptions(t *testing.T) {
	gsm := newTestManager(t, 0)
	id, _, err := gsm.NewSession()
	require.NoError(t, err)

	updates, cancel, err := gsm.Subscribe(id)
	require.NoError(t, err)
	defer cancel()

	require.NoError(t, gsm.EndSession(id))
	_, ok := <-updates
	assert.False(t, ok)

	_, err = gsm.Session(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStopAll(t *testing.T) {
	gsm := newTestManager(t, 0)
	for n := 0; n < 3; n++ {
		_, _, err := gsm.NewSession()
		require.NoError(t, err)
	}
	updates, _, err := gsm.Subscribe(2)
	require.NoError(t, err)

	gsm.StopAll()
	assert.Empty(t, gsm.Sessions())
	_, ok := <-updates
	assert.False(t, ok)
}

func TestConcurrentCommands(t *testing.T) {
	gsm := newTestManager(t, 0)
	ids := make([]int, 4)
	for n := range ids {
		id, _, err := gsm.NewSession()
		require.NoError(t, err)
		ids[n] = id
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		for w := 0; w < 3; w++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				for n := 0; n < 50; n++ {
					_, _ = gsm.Move(id, MoveCats)
					_, _ = gsm.Move(id, MoveRight)
					_, _ = gsm.Move(id, MoveDown)
					_, _ = gsm.Session(id)
				}
			}(id)
		}
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for n := 0; n < 50; n++ {
			_ = gsm.Sessions()
		}
	}()
	wg.Wait()

	for _, e := range gsm.Sessions() {
		assert.True(t, !e.State.Walls[e.State.Player.Y][e.State.Player.X], "game %d player in a wall", e.ID)
	}
}
