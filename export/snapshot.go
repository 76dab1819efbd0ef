// Package export serialises a game for an external consumer. None of the
// formats is versioned; they may change with the game.
package export

import (
	"catan/game"
)

type Vertex struct {
	ID       int
	X, Y     int
	Owner    int
	Building string
}

type Edge struct {
	A, B  int
	Owner int
}

type Graph struct {
	Vertices []Vertex
	Edges    []Edge
}

type Player struct {
	ID            int
	Color         string
	Resources     map[string]int
	VictoryPoints int
	LongestRoad   bool
	RoadLength    int
}

type Hex struct {
	ID       int
	X, Y     int
	Kind     string
	Token    int
	Vertices []int
}

// Snapshot is the state handed to a consumer: the graph, the players, the
// current player and the hexes, plus the turn flags.
type Snapshot struct {
	Graph         Graph
	Players       []Player
	CurrentPlayer int
	Hexes         []Hex
	Phase         string
	Stage         string
	LastRoll      int
	Robber        int
}

// Take captures gs. The snapshot shares nothing with the game.
func Take(gs *game.GameState) *Snapshot {
	s := &Snapshot{
		CurrentPlayer: gs.CurrentPlayer,
		Phase:         gs.Phase.String(),
		Stage:         gs.Stage.String(),
		LastRoll:      gs.LastRoll,
		Robber:        gs.RobberTile,
	}

	for _, v := range gs.Board.Vertices {
		s.Graph.Vertices = append(s.Graph.Vertices, Vertex{
			ID:       int(v.ID),
			X:        v.Coord.X,
			Y:        v.Coord.Y,
			Owner:    v.Owner,
			Building: v.Building.String(),
		})
	}
	for _, e := range gs.Board.Edges {
		s.Graph.Edges = append(s.Graph.Edges, Edge{
			A:     int(e.Key.A),
			B:     int(e.Key.B),
			Owner: e.Owner,
		})
	}
	for _, p := range gs.Players {
		s.Players = append(s.Players, Player{
			ID:            p.ID,
			Color:         p.Color,
			Resources:     resourceMap(p.Resources),
			VictoryPoints: p.VictoryPoints,
			LongestRoad:   p.LongestRoad,
			RoadLength:    p.RoadLength,
		})
	}
	for _, t := range gs.Tiles() {
		h := Hex{
			ID:    t.ID,
			X:     t.Position.X,
			Y:     t.Position.Y,
			Kind:  t.Kind.String(),
			Token: t.Token,
		}
		for _, v := range t.Vertices {
			h.Vertices = append(h.Vertices, int(v))
		}
		s.Hexes = append(s.Hexes, h)
	}
	return s
}

// resourceMap names every holdable kind, zero counts included.
func resourceMap(h game.Hand) map[string]int {
	m := make(map[string]int, game.NumResources)
	for r, n := range h {
		m[game.Resource(r).String()] = n
	}
	return m
}
