package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

// Layout used by most tests. Tile 0 is wood/6, tile 1 brick/8, tile 4 the desert.
var (
	testKinds = []Resource{
		Wood, Brick, Grain, Wool, Desert,
		Ore, Wood, Brick, Grain, Wool, Ore,
		Wood, Brick, Grain, Wool, Ore,
		Wood, Grain, Wool,
	}
	testTokens = []int{6, 8, 2, 3, 3, 4, 4, 5, 5, 6, 8, 9, 9, 10, 10, 11, 11, 12}
)

// scriptedRand returns its values in order, reduced modulo n, then zeros.
type scriptedRand struct {
	values []int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

// dice scripts a roll of a+b.
func dice(a, b int) []int {
	return []int{a - 1, b - 1}
}

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewBoard(testKinds, testTokens)
	require.NoError(t, err)
	return b
}

// newTestGame returns a game with n players still in the setup phase.
func newTestGame(t *testing.T, n int, rng Rand) *GameState {
	t.Helper()
	gs := NewGameState(newTestBoard(t), rng)
	for i := 0; i < n; i++ {
		_, err := gs.AddPlayer()
		require.NoError(t, err)
	}
	return gs
}

// newMainGame returns a game with n players at the start of player 0's main turn.
func newMainGame(t *testing.T, n int, rng Rand) *GameState {
	t.Helper()
	gs := newTestGame(t, n, rng)
	gs.Phase = MainPhase
	gs.Stage = NormalStage
	gs.CurrentPlayer = 0
	return gs
}

// vertexBordering finds the vertex bordering exactly the given tiles.
func vertexBordering(t *testing.T, b *Board, tiles ...int) VertexID {
	t.Helper()
	want := slices.Clone(tiles)
	slices.Sort(want)
	for _, v := range b.Vertices {
		got := slices.Clone(v.Tiles)
		slices.Sort(got)
		if slices.Equal(got, want) {
			return v.ID
		}
	}
	require.FailNow(t, "no vertex borders tiles", "%v", tiles)
	return 0
}

// build puts a building on v directly, bypassing the rules.
func build(gs *GameState, v VertexID, player int, kind Building) {
	vx := gs.Board.Vertices[v]
	vx.Owner = player
	vx.Building = kind
	gs.Players[player].VictoryPoints += int(kind)
}

// claim gives player the roads along path directly, bypassing the rules.
func claim(t *testing.T, gs *GameState, player int, path ...VertexID) {
	t.Helper()
	for i := 0; i+1 < len(path); i++ {
		e := gs.Board.Edge(path[i], path[i+1])
		require.NotNil(t, e, "vertices %d and %d are not adjacent", path[i], path[i+1])
		e.Owner = player
	}
}

// ring returns the corners of a tile closed into a cycle.
func ring(b *Board, tile int) []VertexID {
	vs := b.Tiles[tile].Vertices
	return append(vs[:], vs[0])
}

// outsideNeighbor returns a neighbour of v that is not a corner of tile.
func outsideNeighbor(t *testing.T, b *Board, v VertexID, tile int) VertexID {
	t.Helper()
	corners := b.Tiles[tile].Vertices
	for _, n := range b.Vertices[v].Adjacent {
		if !slices.Contains(corners[:], n) {
			return n
		}
	}
	require.FailNow(t, "vertex has no neighbour outside tile")
	return 0
}
