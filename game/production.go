package game

// Distribute pays out every tile whose token matches roll. Settlements earn
// one unit and cities two. The desert and the robber's tile pay nothing.
// A seven never reaches here; it is handled by the robber.
func (gs *GameState) Distribute(roll int) {
	for _, tile := range gs.Board.Tiles {
		if !tile.Produces(roll) || tile.ID == gs.RobberTile {
			continue
		}
		for _, v := range tile.Vertices {
			vx := gs.Board.Vertices[v]
			if vx.Owner == NoPlayer {
				continue
			}
			switch vx.Building {
			case Settlement:
				gs.Players[vx.Owner].Resources[tile.Kind] += 1
			case City:
				gs.Players[vx.Owner].Resources[tile.Kind] += 2
			}
		}
	}
}
