package game

import "golang.org/x/exp/slices"

// ResolveSevenRoll makes every player holding more than seven units discard
// half of them, rounded down, drawn uniformly from their units. The game then
// waits for the robber to be placed.
func (gs *GameState) ResolveSevenRoll() {
	for _, p := range gs.Players {
		total := p.Resources.Total()
		if total <= DiscardThreshold {
			continue
		}
		units := p.Resources.Units()
		for i := 0; i < total/2; i++ {
			// Draw without replacement: swap the pick out of the live prefix.
			last := len(units) - 1 - i
			j := gs.rng.Intn(last + 1)
			units[j], units[last] = units[last], units[j]
			p.Resources[units[last]]--
		}
	}
	gs.Stage = RobberStage
}

// PlaceRobber moves the robber to tile and lets player steal one unit from a
// random opponent with a building on that tile. The turn then passes, whether
// or not anything was stolen.
func (gs *GameState) PlaceRobber(tile int, player int) error {
	if gs.Phase != MainPhase || gs.Stage != RobberStage {
		return ErrWrongPhase
	}
	if gs.Player(player) == nil {
		return ErrUnknownPlayer
	}
	if player != gs.CurrentPlayer {
		return ErrNotYourTurn
	}
	t := gs.Board.Tile(tile)
	if t == nil {
		return ErrUnknownTile
	}
	if t.ID == gs.RobberTile {
		return ErrRobberSameTile
	}
	if t.Kind == Desert {
		return ErrDesertTile
	}

	gs.RobberTile = t.ID
	if victims := gs.robberVictims(t, player); len(victims) > 0 {
		victim := victims[gs.rng.Intn(len(victims))]
		gs.steal(gs.Players[victim], gs.Players[player])
	}

	gs.Stage = NormalStage
	gs.CurrentPlayer = gs.NextPlayer()
	return nil
}

// robberVictims returns the distinct opponents with a building on t, in id order.
func (gs *GameState) robberVictims(t *HexTile, thief int) []int {
	var victims []int
	for _, v := range t.Vertices {
		vx := gs.Board.Vertices[v]
		if vx.Owner == NoPlayer || vx.Owner == thief || vx.Building == NoBuilding {
			continue
		}
		if !slices.Contains(victims, vx.Owner) {
			victims = append(victims, vx.Owner)
		}
	}
	slices.Sort(victims)
	return victims
}

// steal moves one unit, drawn uniformly from the victim's units, to the thief.
func (gs *GameState) steal(victim, thief *Player) {
	units := victim.Resources.Units()
	if len(units) == 0 {
		return
	}
	r := units[gs.rng.Intn(len(units))]
	victim.Resources[r]--
	thief.Resources[r]++
}
