package engine

import (
	"fmt"
	"sync"
	"testing"

	"catan/game"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fixedRand returns its values in order, reduced modulo n, then zeros.
type fixedRand struct {
	values []int
}

func (r *fixedRand) Intn(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

func newTestEngine(t *testing.T, rng game.Rand, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithRand(rng), WithShuffle(false)}, opts...)
	e, err := New(opts...)
	require.NoError(t, err)
	return e
}

// placeInitial runs the snake order for two players through Exec.
func placeInitial(t *testing.T, e *Engine) {
	t.Helper()
	var lines []string
	e.View(func(gs *game.GameState) {
		for _, tile := range []int{0, 18, 9, 2} {
			v := gs.Board.Tiles[tile].Vertices[0]
			lines = append(lines,
				fmt.Sprintf("settle %d", v),
				fmt.Sprintf("road %d %d", v, gs.Board.Vertices[v].Adjacent[0]))
		}
	})
	for _, line := range lines {
		_, err := e.Exec(line)
		require.NoError(t, err, line)
	}
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		e := newTestEngine(t, game.NewRand(1))

		require.NotEqual(t, uuid.Nil, e.ID)
		gs := e.State()
		require.Len(t, gs.Players, 2)
		require.Equal(t, game.InitialPlacementPhase, gs.Phase)
		require.Equal(t, 0, gs.CurrentPlayer)
		require.Equal(t, game.Desert, gs.Board.Tiles[gs.RobberTile].Kind)
		require.Equal(t, game.Wood, gs.Board.Tiles[0].Kind, "unshuffled layout keeps the listed order")
	})

	t.Run("seeded layouts repeat", func(t *testing.T) {
		e1, err := New(WithSeed(9))
		require.NoError(t, err)
		e2, err := New(WithSeed(9))
		require.NoError(t, err)

		require.Equal(t, e1.State().Hash(), e2.State().Hash())
		for i, tile := range e1.State().Tiles() {
			require.Equal(t, tile.Kind, e2.State().Tiles()[i].Kind)
		}
		require.NotEqual(t, e1.ID, e2.ID)
	})

	t.Run("player count is bounded", func(t *testing.T) {
		_, err := New(WithPlayers(5), WithSeed(1))
		require.ErrorIs(t, err, game.ErrTooManyPlayers)

		_, err = New(WithPlayers(1), WithSeed(1))
		require.ErrorIs(t, err, game.ErrNotEnoughPlayers)
	})

	t.Run("custom board", func(t *testing.T) {
		b, err := game.NewBoard(game.StandardKinds, game.StandardTokens)
		require.NoError(t, err)

		e := newTestEngine(t, game.NewRand(1), WithBoard(b), WithPlayers(4))
		require.Len(t, e.State().Players, 4)
		e.View(func(gs *game.GameState) {
			require.Same(t, b, gs.Board)
		})
	})
}

func TestPlay(t *testing.T) {
	t.Run("records accepted and rejected moves", func(t *testing.T) {
		e := newTestEngine(t, game.NewRand(1))
		var v game.VertexID
		e.View(func(gs *game.GameState) { v = gs.Board.Tiles[0].Vertices[0] })

		require.NoError(t, e.Play(game.Move{Type: game.SettleAction, Player: 0, Vertex: v, Initial: true}))
		hash := e.State().Hash()

		err := e.Play(game.Move{Type: game.SettleAction, Player: 0, Vertex: v, Initial: true})
		require.ErrorIs(t, err, game.ErrWrongPhase, "a road is due")
		require.Equal(t, hash, e.State().Hash())

		history := e.History()
		require.Len(t, history, 2)
		require.True(t, history[0].Accepted)
		require.False(t, history[1].Accepted)
		require.ErrorIs(t, history[1].Err, game.ErrWrongPhase)
		require.Equal(t, hash, history[1].Hash)
	})

	t.Run("state copies are detached", func(t *testing.T) {
		e := newTestEngine(t, game.NewRand(1))
		gs := e.State()
		gs.Players[0].VictoryPoints = 99

		require.Equal(t, 0, e.State().Players[0].VictoryPoints)
	})
}

func TestExec(t *testing.T) {
	t.Run("a game through commands", func(t *testing.T) {
		e := newTestEngine(t, &fixedRand{values: []int{3, 3}}) // dice 4+4
		placeInitial(t, e)

		gs := e.State()
		require.Equal(t, game.MainPhase, gs.Phase)
		for _, p := range gs.Players {
			require.Equal(t, 2, p.VictoryPoints)
		}

		m, err := e.Exec("end")
		require.NoError(t, err)
		require.Equal(t, game.EndTurnAction, m.Type)

		history := e.History()
		last := history[len(history)-1]
		require.Equal(t, 8, last.Roll)
		require.Equal(t, 1, e.State().CurrentPlayer)
		require.Equal(t, 4, last.Turn, "four placement visits precede the first main turn")
	})

	t.Run("moves are played for the current player", func(t *testing.T) {
		e := newTestEngine(t, game.NewRand(1))
		placeInitial(t, e)

		m, err := e.Exec("trade ore wool")
		require.ErrorIs(t, err, game.ErrInsufficientResources, "initial grants hold at most three units")
		require.Equal(t, 0, m.Player)
		require.Equal(t, game.BankTradeAction, m.Type)
	})

	t.Run("parse errors are not recorded", func(t *testing.T) {
		e := newTestEngine(t, game.NewRand(1))

		_, err := e.Exec("fly 3")
		require.ErrorIs(t, err, ErrUnknownCommand)
		_, err = e.Exec("settle x")
		require.ErrorIs(t, err, ErrBadArgument)
		require.Empty(t, e.History())
	})

	t.Run("rules errors are", func(t *testing.T) {
		e := newTestEngine(t, game.NewRand(1))

		_, err := e.Exec("settle 9999")
		require.ErrorIs(t, err, game.ErrUnknownVertex)
		require.Len(t, e.History(), 1)
	})
}

func TestUpdates(t *testing.T) {
	e := newTestEngine(t, game.NewRand(1))
	next := e.Updates()

	_, ok := next()
	require.False(t, ok)

	placeInitial(t, e)
	var played []game.ActionType
	for u, ok := next(); ok; u, ok = next() {
		played = append(played, u.Move.Type)
	}
	require.Len(t, played, 8)
	require.Equal(t, game.SettleAction, played[0])
	require.Equal(t, game.RoadAction, played[7])

	_, ok = next()
	require.False(t, ok)
}

func TestConcurrentAccess(t *testing.T) {
	e := newTestEngine(t, game.NewRand(3))
	placeInitial(t, e)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				e.Exec("end")
				e.Exec("robber 0")
				e.View(func(gs *game.GameState) { _ = gs.Hash() })
			}
		}()
	}
	wg.Wait()

	require.Len(t, e.History(), 8+4*50*2)
}
