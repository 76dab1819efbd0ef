package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// NoToken is the production token of the desert.
const NoToken = 0

// NumTiles is the number of tiles on the standard board.
const NumTiles = 19

// HexTile is a single land tile. Immutable once the board is built.
type HexTile struct {
	ID       int
	Position Point // center
	Kind     Resource
	Token    int
	Vertices [6]VertexID
}

// Produces reports whether the tile yields resources on the given roll.
func (t *HexTile) Produces(roll int) bool {
	return t.Kind != Desert && t.Token != NoToken && t.Token == roll
}

// Standard setup constants.
var (
	RowSizes = []int{3, 4, 5, 4, 3}

	StandardKinds = []Resource{
		Wood, Wood, Wood, Wood,
		Brick, Brick, Brick,
		Grain, Grain, Grain, Grain,
		Wool, Wool, Wool, Wool,
		Ore, Ore, Ore,
		Desert,
	}

	StandardTokens = []int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}
)

// Corner offsets from a tile center, starting at 30 degrees and turning
// clockwise in screen space.
var cornerOffsets = [6]Point{
	{X: 1, Y: 1},
	{X: 0, Y: 2},
	{X: -1, Y: 1},
	{X: -1, Y: -1},
	{X: 0, Y: -2},
	{X: 1, Y: -1},
}

// tileCenters returns the centers of the standard layout, row by row.
func tileCenters() []Point {
	widest := slices.Max(RowSizes)
	centers := make([]Point, 0, NumTiles)
	for row, n := range RowSizes {
		for i := 0; i < n; i++ {
			centers = append(centers, Point{X: widest - n + 2*i, Y: 3 * row})
		}
	}
	return centers
}

// NewBoard builds the board graph. kinds lists one resource kind per tile in
// row order; tokens are dealt in order to the non-desert tiles.
func NewBoard(kinds []Resource, tokens []int) (*Board, error) {
	if err := validateLayout(kinds, tokens); err != nil {
		return nil, err
	}

	b := newBoard()
	next := 0
	for id, center := range tileCenters() {
		tile := &HexTile{ID: id, Position: center, Kind: kinds[id], Token: NoToken}
		if tile.Kind != Desert {
			tile.Token = tokens[next]
			next++
		}
		for i, off := range cornerOffsets {
			v := b.addVertex(Point{X: center.X + off.X, Y: center.Y + off.Y})
			tile.Vertices[i] = v
			b.Vertices[v].Tiles = append(b.Vertices[v].Tiles, id)
		}
		for i := range tile.Vertices {
			b.addEdge(tile.Vertices[i], tile.Vertices[(i+1)%6])
		}
		b.Tiles = append(b.Tiles, tile)
	}
	return b, nil
}

// NewStandardBoard shuffles the standard kinds and tokens and builds the board.
func NewStandardBoard(rng Rand) *Board {
	kinds := slices.Clone(StandardKinds)
	tokens := slices.Clone(StandardTokens)
	shuffle(rng, kinds)
	shuffle(rng, tokens)

	b, err := NewBoard(kinds, tokens)
	if err != nil {
		// The standard constants always form a valid layout.
		panic(err)
	}
	return b
}

func validateLayout(kinds []Resource, tokens []int) error {
	if len(kinds) != NumTiles {
		return fmt.Errorf("%w: %d tiles, want %d", ErrInvalidLayout, len(kinds), NumTiles)
	}
	gotKinds := slices.Clone(kinds)
	slices.Sort(gotKinds)
	wantKinds := slices.Clone(StandardKinds)
	slices.Sort(wantKinds)
	if !slices.Equal(gotKinds, wantKinds) {
		return fmt.Errorf("%w: resource kinds differ from the standard set", ErrInvalidLayout)
	}

	gotTokens := slices.Clone(tokens)
	slices.Sort(gotTokens)
	if !slices.Equal(gotTokens, StandardTokens) {
		return fmt.Errorf("%w: production tokens differ from the standard set", ErrInvalidLayout)
	}
	return nil
}
