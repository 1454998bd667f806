package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/dtjokroa/Cat-Mouse-213/game"
	"github.com/dtjokroa/Cat-Mouse-213/game/maze"
	"github.com/dtjokroa/Cat-Mouse-213/service/i"
)

// Commands accepted by Move and Cheat.
const (
	MoveUp         = "MOVE_UP"
	MoveDown       = "MOVE_DOWN"
	MoveLeft       = "MOVE_LEFT"
	MoveRight      = "MOVE_RIGHT"
	MoveCats       = "MOVE_CATS"
	CheatOneCheese = "1_CHEESE"
	CheatShowAll   = "SHOW_ALL"
)

const defaultMaxSessions = 256

var (
	ErrSessionNotFound = errors.New("game session not found")
	ErrTooManySessions = errors.New("too many game sessions")
	ErrInvalidMove     = errors.New("invalid move")
	ErrUnknownCommand  = errors.New("unknown command")
)

var moveDirections = map[string]maze.Direction{
	MoveUp:    maze.Up,
	MoveDown:  maze.Down,
	MoveLeft:  maze.Left,
	MoveRight: maze.Right,
}

var _ i.GameSessionManager = &GameSessionManager{}

type session struct {
	game           *game.Game
	subscribers    map[int]chan game.State
	nextSubscriber int
	sync.Mutex
}

// GameSessionManager keeps the running games keyed by sequential ids.
// Commands on one game are serialised; different games proceed in parallel.
type GameSessionManager struct {
	sessions map[int]*session
	lastID   int
	seeds    *rand.Rand
	config   Config
	logger   i.Logger
	sync.RWMutex
}

// Config holds the settings shared by every new game.
// Zero sizes and goals fall back to the game defaults; a zero Seed seeds from the clock.
type Config struct {
	MazeWidth             int
	MazeHeight            int
	CheeseGoal            int
	MaxGenerationAttempts int
	MaxSessions           int
	Seed                  int64
	Logger                i.Logger
}

// NewGameSessionManager creates an empty session registry.
func NewGameSessionManager(c *Config) (*GameSessionManager, error) {
	if c.Logger == nil {
		return nil, errors.New("session manager requires a logger")
	}
	if c.CheeseGoal < 0 {
		return nil, fmt.Errorf("%w: %d", game.ErrInvalidCheeseGoal, c.CheeseGoal)
	}

	cfg := *c
	if cfg.MazeWidth == 0 {
		cfg.MazeWidth = game.DefaultWidth
	}
	if cfg.MazeHeight == 0 {
		cfg.MazeHeight = game.DefaultHeight
	}
	if !validDimension(cfg.MazeWidth) || !validDimension(cfg.MazeHeight) {
		return nil, fmt.Errorf("%w: %dx%d, want %d to %d", maze.ErrInvalidDimension,
			cfg.MazeWidth, cfg.MazeHeight, maze.MinDimension, maze.MaxDimension)
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = defaultMaxSessions
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &GameSessionManager{
		sessions: make(map[int]*session),
		seeds:    rand.New(rand.NewSource(seed)),
		config:   cfg,
		logger:   cfg.Logger,
	}, nil
}

// NewSession generates a maze and starts a game on it.
func (g *GameSessionManager) NewSession() (int, game.State, error) {
	g.Lock()
	if len(g.sessions) >= g.config.MaxSessions {
		g.Unlock()
		g.logger.Warning(fmt.Sprintf("refused new game: %d sessions running", g.config.MaxSessions))
		return 0, game.State{}, ErrTooManySessions
	}
	seed := g.seeds.Int63()
	g.Unlock()

	// Generation runs outside the registry lock.
	started := time.Now()
	gm, err := game.New(game.Config{
		Width:                 g.config.MazeWidth,
		Height:                g.config.MazeHeight,
		CheeseGoal:            g.config.CheeseGoal,
		MaxGenerationAttempts: g.config.MaxGenerationAttempts,
		Rand:                  rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		g.logger.Error(fmt.Sprintf("creating game: %s", err))
		return 0, game.State{}, err
	}

	g.Lock()
	defer g.Unlock()
	if len(g.sessions) >= g.config.MaxSessions {
		g.logger.Warning(fmt.Sprintf("refused new game: %d sessions running", g.config.MaxSessions))
		return 0, game.State{}, ErrTooManySessions
	}
	g.lastID++
	id := g.lastID
	g.sessions[id] = &session{game: gm, subscribers: make(map[int]chan game.State)}

	g.logger.Info(fmt.Sprintf("started game %d (%dx%d) in %s", id, gm.Width(), gm.Height(), time.Since(started)))
	return id, gm.Snapshot(), nil
}

// Session returns a snapshot of game id.
func (g *GameSessionManager) Session(id int) (game.State, error) {
	s, err := g.session(id)
	if err != nil {
		return game.State{}, err
	}

	s.Lock()
	defer s.Unlock()
	return s.game.Snapshot(), nil
}

// Sessions lists every running game ordered by id.
func (g *GameSessionManager) Sessions() []i.SessionEntry {
	g.RLock()
	ids := make([]int, 0, len(g.sessions))
	sessions := make(map[int]*session, len(g.sessions))
	for id, s := range g.sessions {
		ids = append(ids, id)
		sessions[id] = s
	}
	g.RUnlock()

	sort.Ints(ids)
	entries := make([]i.SessionEntry, 0, len(ids))
	for _, id := range ids {
		s := sessions[id]
		s.Lock()
		entries = append(entries, i.SessionEntry{ID: id, State: s.game.Snapshot()})
		s.Unlock()
	}
	return entries
}

// Move applies a player move or MOVE_CATS to game id.
// A move into a wall returns ErrInvalidMove and leaves the game unchanged.
func (g *GameSessionManager) Move(id int, command string) (game.State, error) {
	return g.apply(id, command, func(gm *game.Game) error {
		if command == MoveCats {
			gm.MoveCats()
			return nil
		}

		d, ok := moveDirections[command]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
		}
		if !gm.MovePlayer(d) {
			return fmt.Errorf("%w: %s from %v", ErrInvalidMove, d, gm.Player())
		}
		return nil
	})
}

// Cheat applies 1_CHEESE (goal becomes one) or SHOW_ALL (lift the fog) to game id.
func (g *GameSessionManager) Cheat(id int, command string) (game.State, error) {
	return g.apply(id, command, func(gm *game.Game) error {
		switch command {
		case CheatOneCheese:
			return gm.SetCheeseGoal(1)
		case CheatShowAll:
			gm.RevealAll()
			return nil
		default:
			return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
		}
	})
}

// Subscribe registers for state updates of game id. The channel holds only the
// latest state; a slow reader skips intermediate ones.
func (g *GameSessionManager) Subscribe(id int) (<-chan game.State, func(), error) {
	s, err := g.session(id)
	if err != nil {
		return nil, nil, err
	}

	s.Lock()
	defer s.Unlock()
	if s.subscribers == nil {
		return nil, nil, fmt.Errorf("%w: %d", ErrSessionNotFound, id)
	}

	key := s.nextSubscriber
	s.nextSubscriber++
	ch := make(chan game.State, 1)
	s.subscribers[key] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.Lock()
			defer s.Unlock()
			if sub, ok := s.subscribers[key]; ok {
				delete(s.subscribers, key)
				close(sub)
			}
		})
	}
	return ch, cancel, nil
}

// EndSession removes game id and closes its subscriptions.
func (g *GameSessionManager) EndSession(id int) error {
	g.Lock()
	s, ok := g.sessions[id]
	delete(g.sessions, id)
	g.Unlock()

	if !ok {
		return fmt.Errorf("%w: %d", ErrSessionNotFound, id)
	}

	s.close()
	g.logger.Info(fmt.Sprintf("ended game %d", id))
	return nil
}

// StopAll ends every game.
func (g *GameSessionManager) StopAll() {
	g.Lock()
	sessions := g.sessions
	g.sessions = make(map[int]*session)
	g.Unlock()

	for _, s := range sessions {
		s.close()
	}
	g.logger.Info(fmt.Sprintf("stopped %d games", len(sessions)))
}

func validDimension(n int) bool {
	return n >= maze.MinDimension && n <= maze.MaxDimension
}

func (g *GameSessionManager) session(id int) (*session, error) {
	g.RLock()
	defer g.RUnlock()
	s, ok := g.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrSessionNotFound, id)
	}
	return s, nil
}

func (g *GameSessionManager) apply(id int, command string, cmd func(*game.Game) error) (game.State, error) {
	s, err := g.session(id)
	if err != nil {
		return game.State{}, err
	}

	s.Lock()
	defer s.Unlock()
	if err := cmd(s.game); err != nil {
		g.logger.Debug(fmt.Sprintf("game %d rejected %q: %s", id, command, err))
		return game.State{}, err
	}

	state := s.game.Snapshot()
	s.publish(state)
	if state.Won || state.Lost {
		g.logger.Debug(fmt.Sprintf("game %d over after %q: won=%t lost=%t", id, command, state.Won, state.Lost))
	}
	return state, nil
}

// publish must be called with the session lock held.
func (s *session) publish(state game.State) {
	for _, ch := range s.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- state
	}
}

func (s *session) close() {
	s.Lock()
	defer s.Unlock()
	for key, ch := range s.subscribers {
		delete(s.subscribers, key)
		close(ch)
	}
	s.subscribers = nil
}
