package engine

import (
	"fmt"
	"sync"

	"catan/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Update records one move submitted to the engine, accepted or not.
type Update struct {
	Turn     int // index of the turn the move was played in
	Move     game.Move
	Roll     int // dice total, for an accepted end of turn
	Accepted bool
	Err      error
	Hash     uint64 // state fingerprint after the move
}

// UpdateGetter returns the next update not yet seen by this getter.
// ok is false when the getter is caught up.
type UpdateGetter func() (u Update, ok bool)

// Engine owns one game and serialises every access to it, so an input
// goroutine and a renderer can share it.
type Engine struct {
	ID uuid.UUID

	mu      sync.Mutex
	state   *game.GameState
	history []Update
	turn    int
}

type options struct {
	players int
	rng     game.Rand
	board   *game.Board
	shuffle bool
}

type Option func(*options)

// WithPlayers sets how many players join before the initial placement.
func WithPlayers(n int) Option {
	return func(o *options) {
		o.players = n
	}
}

// WithRand injects the randomness source used for the layout, dice,
// discards and theft.
func WithRand(rng game.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed is WithRand with a seeded source. 0 seeds from the clock.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = game.NewRand(seed)
	}
}

// WithBoard plays on b instead of building a standard board.
func WithBoard(b *game.Board) Option {
	return func(o *options) {
		o.board = b
	}
}

// WithShuffle selects between a shuffled standard layout and the standard
// kinds and tokens in their listed order.
func WithShuffle(shuffle bool) Option {
	return func(o *options) {
		o.shuffle = shuffle
	}
}

// New creates a game, joins the players and starts the initial placement.
func New(opts ...Option) (*Engine, error) {
	o := &options{
		players: game.MinPlayers,
		shuffle: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.rng == nil {
		o.rng = game.NewRand(0)
	}

	board := o.board
	if board == nil {
		if o.shuffle {
			board = game.NewStandardBoard(o.rng)
		} else {
			b, err := game.NewBoard(game.StandardKinds, game.StandardTokens)
			if err != nil {
				return nil, fmt.Errorf("standard board: %w", err)
			}
			board = b
		}
	}

	state := game.NewGameState(board, o.rng)
	for i := 0; i < o.players; i++ {
		if _, err := state.AddPlayer(); err != nil {
			return nil, fmt.Errorf("add player %d: %w", i, err)
		}
	}
	if err := state.StartInitialPlacement(); err != nil {
		return nil, fmt.Errorf("start initial placement: %w", err)
	}

	e := &Engine{
		ID:    uuid.New(),
		state: state,
	}
	log.Info().
		Str("game", e.ID.String()).
		Int("players", o.players).
		Int("robber", state.RobberTile).
		Msg("game created")
	return e, nil
}

// Play applies m and records it in the history. A rejected move leaves the
// game unchanged and is returned wrapping the game's sentinel error.
func (e *Engine) Play(m game.Move) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.play(m)
}

func (e *Engine) play(m game.Move) error {
	current := e.state.CurrentPlayer
	placing := e.state.Phase == game.InitialPlacementPhase
	err := e.state.Play(m)

	u := Update{
		Turn:     e.turn,
		Move:     m,
		Accepted: err == nil,
		Err:      err,
		Hash:     e.state.Hash(),
	}
	if err == nil && m.Type == game.EndTurnAction {
		u.Roll = e.state.LastRoll
	}
	e.history = append(e.history, u)
	// A turn ends when play passes to someone else or an initial road closes
	// a placement visit; the snake order gives the same player two visits.
	if err == nil && (e.state.CurrentPlayer != current || placing && m.Type == game.RoadAction) {
		e.turn++
	}

	if err != nil {
		log.Warn().
			Str("game", e.ID.String()).
			Int("player", current).
			Stringer("action", m.Type).
			Err(err).
			Msg(m.String())
		return fmt.Errorf("%s: %w", m, err)
	}

	ev := log.Info().
		Str("game", e.ID.String()).
		Int("player", current).
		Stringer("action", m.Type).
		Stringer("phase", e.state.Phase)
	if u.Roll != 0 {
		ev = ev.Int("roll", u.Roll)
	}
	ev.Msg(m.String())
	return nil
}

// Exec parses one command line for the current player and plays it.
func (e *Engine) Exec(line string) (game.Move, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := ParseMove(line, e.state.CurrentPlayer, e.state.Phase == game.InitialPlacementPhase)
	if err != nil {
		log.Warn().Str("game", e.ID.String()).Str("line", line).Err(err).Msg("unparsed command")
		return m, err
	}
	return m, e.play(m)
}

// State returns a copy of the game.
func (e *Engine) State() *game.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Copy()
}

// View runs fn with the live game while holding the lock. fn must not
// mutate the game or keep a reference to it.
func (e *Engine) View(fn func(gs *game.GameState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.state)
}

// History returns every update so far.
func (e *Engine) History() []Update {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Update(nil), e.history...)
}

// Updates returns a getter that walks the history from the start, one
// update per call, without blocking.
func (e *Engine) Updates() UpdateGetter {
	next := 0
	return func() (Update, bool) {
		e.mu.Lock()
		defer e.mu.Unlock()
		if next >= len(e.history) {
			return Update{}, false
		}
		u := e.history[next]
		next++
		return u, true
	}
}
