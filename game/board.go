package game

import "golang.org/x/exp/slices"

// NoPlayer marks an unowned vertex or road site.
const NoPlayer = -1

// Building is the structure standing on a vertex.
type Building int

const (
	NoBuilding Building = iota
	Settlement
	City
)

func (b Building) String() string {
	switch b {
	case Settlement:
		return "settlement"
	case City:
		return "city"
	default:
		return "none"
	}
}

// Point is an integer lattice coordinate. X is measured in half hex widths,
// Y in quarter hex heights, so every hex corner lands on an integer point.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// VertexID indexes Board.Vertices.
type VertexID int

// EdgeKey identifies a road site by its endpoints, with A < B.
type EdgeKey struct {
	A, B VertexID
}

// NewEdgeKey normalises an unordered vertex pair.
func NewEdgeKey(a, b VertexID) EdgeKey {
	if b < a {
		a, b = b, a
	}
	return EdgeKey{A: a, B: b}
}

// Other returns the endpoint of k that is not v.
func (k EdgeKey) Other(v VertexID) VertexID {
	if k.A == v {
		return k.B
	}
	return k.A
}

// Vertex is a building site.
type Vertex struct {
	ID       VertexID
	Coord    Point
	Owner    int
	Building Building
	Adjacent []VertexID // neighbouring vertices
	Edges    []int      // incident road sites, indexes into Board.Edges
	Tiles    []int      // bordering tiles, indexes into Board.Tiles
}

// Edge is a road site.
type Edge struct {
	ID    int
	Key   EdgeKey
	Owner int
}

// Board is the arena holding every vertex, road site and tile. Its structure
// is fixed once built; only ownership and buildings change afterwards.
type Board struct {
	Vertices []*Vertex
	Edges    []*Edge
	Tiles    []*HexTile

	vertexAt map[Point]VertexID
	edgeAt   map[EdgeKey]int
}

func newBoard() *Board {
	return &Board{
		vertexAt: make(map[Point]VertexID),
		edgeAt:   make(map[EdgeKey]int),
	}
}

// addVertex inserts a vertex at p unless one already exists there.
func (b *Board) addVertex(p Point) VertexID {
	if id, ok := b.vertexAt[p]; ok {
		return id
	}
	id := VertexID(len(b.Vertices))
	b.Vertices = append(b.Vertices, &Vertex{
		ID:    id,
		Coord: p,
		Owner: NoPlayer,
	})
	b.vertexAt[p] = id
	return id
}

// addEdge inserts the road site between a and b regardless of direction.
func (b *Board) addEdge(a, c VertexID) {
	key := NewEdgeKey(a, c)
	if _, ok := b.edgeAt[key]; ok {
		return
	}
	id := len(b.Edges)
	b.Edges = append(b.Edges, &Edge{ID: id, Key: key, Owner: NoPlayer})
	b.edgeAt[key] = id

	va, vc := b.Vertices[a], b.Vertices[c]
	va.Adjacent = append(va.Adjacent, c)
	vc.Adjacent = append(vc.Adjacent, a)
	va.Edges = append(va.Edges, id)
	vc.Edges = append(vc.Edges, id)
}

// Vertex returns the vertex with the given id, or nil.
func (b *Board) Vertex(id VertexID) *Vertex {
	if id < 0 || int(id) >= len(b.Vertices) {
		return nil
	}
	return b.Vertices[id]
}

// VertexAt looks a vertex up by coordinate.
func (b *Board) VertexAt(p Point) (*Vertex, bool) {
	id, ok := b.vertexAt[p]
	if !ok {
		return nil, false
	}
	return b.Vertices[id], true
}

// Edge returns the road site between a and c, or nil if they are not adjacent.
func (b *Board) Edge(a, c VertexID) *Edge {
	id, ok := b.edgeAt[NewEdgeKey(a, c)]
	if !ok {
		return nil
	}
	return b.Edges[id]
}

// Tile returns the tile with the given id, or nil.
func (b *Board) Tile(id int) *HexTile {
	if id < 0 || id >= len(b.Tiles) {
		return nil
	}
	return b.Tiles[id]
}

// AreAdjacent checks if two vertices share a road site.
func (b *Board) AreAdjacent(a, c VertexID) bool {
	v := b.Vertex(a)
	return v != nil && slices.Contains(v.Adjacent, c)
}

// Neighbors returns the vertices adjacent to v.
func (b *Board) Neighbors(v VertexID) []VertexID {
	if vx := b.Vertex(v); vx != nil {
		return vx.Adjacent
	}
	return nil
}

// EdgesAt returns the road sites incident to v.
func (b *Board) EdgesAt(v VertexID) []*Edge {
	vx := b.Vertex(v)
	if vx == nil {
		return nil
	}
	edges := make([]*Edge, 0, len(vx.Edges))
	for _, e := range vx.Edges {
		edges = append(edges, b.Edges[e])
	}
	return edges
}

// TilesAt returns the tiles bordering v.
func (b *Board) TilesAt(v VertexID) []*HexTile {
	vx := b.Vertex(v)
	if vx == nil {
		return nil
	}
	tiles := make([]*HexTile, 0, len(vx.Tiles))
	for _, t := range vx.Tiles {
		tiles = append(tiles, b.Tiles[t])
	}
	return tiles
}

// touchesRoad reports whether player owns a road site incident to v.
func (b *Board) touchesRoad(v VertexID, player int) bool {
	for _, e := range b.Vertices[v].Edges {
		if b.Edges[e].Owner == player {
			return true
		}
	}
	return false
}

// copy duplicates the mutable attributes. Structure slices are shared.
func (b *Board) copy() *Board {
	nb := &Board{
		Vertices: make([]*Vertex, len(b.Vertices)),
		Edges:    make([]*Edge, len(b.Edges)),
		Tiles:    b.Tiles,
		vertexAt: b.vertexAt,
		edgeAt:   b.edgeAt,
	}
	for i, v := range b.Vertices {
		vc := *v
		nb.Vertices[i] = &vc
	}
	for i, e := range b.Edges {
		ec := *e
		nb.Edges[i] = &ec
	}
	return nb
}
