package game

// LongestRoad returns the number of roads in player's longest simple path,
// a path visiting each vertex at most once. Every vertex touching one of
// their roads is tried as a start, which covers every connected component.
//
// The search is an exhaustive backtracking walk. It is exponential in
// general but the board has at most 54 vertices of degree 3.
func (b *Board) LongestRoad(player int) int {
	visited := make([]bool, len(b.Vertices))

	type frame struct {
		vertex VertexID
		next   int // next incident edge to try
	}
	stack := make([]frame, 0, len(b.Vertices))

	longest := 0
	for _, start := range b.Vertices {
		if !b.touchesRoad(start.ID, player) {
			continue
		}

		visited[start.ID] = true
		stack = append(stack[:0], frame{vertex: start.ID})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			edges := b.Vertices[top.vertex].Edges
			if top.next == len(edges) {
				// Retreat.
				visited[top.vertex] = false
				stack = stack[:len(stack)-1]
				continue
			}

			e := b.Edges[edges[top.next]]
			top.next++
			if e.Owner != player {
				continue
			}
			to := e.Key.Other(top.vertex)
			if visited[to] {
				continue
			}

			// Advance.
			visited[to] = true
			stack = append(stack, frame{vertex: to})
			if depth := len(stack) - 1; depth > longest {
				longest = depth
			}
		}
	}
	return longest
}

// updateLongestRoad recomputes every player's road length and moves the
// bonus. The holder keeps it on a tie and loses it only when strictly
// exceeded; nobody holds it below LongestRoadMin.
func (gs *GameState) updateLongestRoad() {
	for _, p := range gs.Players {
		p.RoadLength = gs.Board.LongestRoad(p.ID)
	}

	holder := gs.LongestRoadHolder()
	best := NoPlayer
	if holder != NoPlayer && gs.Players[holder].RoadLength >= LongestRoadMin {
		best = holder
	}
	for _, p := range gs.Players {
		if p.RoadLength < LongestRoadMin {
			continue
		}
		if best == NoPlayer || p.RoadLength > gs.Players[best].RoadLength {
			best = p.ID
		}
	}

	if best == holder {
		return
	}
	for _, p := range gs.Players {
		if p.LongestRoad {
			p.LongestRoad = false
			p.VictoryPoints -= LongestRoadPoints
		}
	}
	if best != NoPlayer {
		gs.Players[best].LongestRoad = true
		gs.Players[best].VictoryPoints += LongestRoadPoints
	}
}
