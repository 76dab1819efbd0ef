package game

// checkTurn validates that player may build now. Initial placement builds
// need the initial flag and the matching placement stage; main phase builds
// need the normal stage.
func (gs *GameState) checkTurn(player int, initial bool, stage PlacementStage) error {
	if gs.Player(player) == nil {
		return ErrUnknownPlayer
	}
	switch gs.Phase {
	case InitialPlacementPhase:
		if !initial || gs.Placement != stage {
			return ErrWrongPhase
		}
	case MainPhase:
		if initial || gs.Stage != NormalStage {
			return ErrWrongPhase
		}
	default:
		return ErrWrongPhase
	}
	if player != gs.CurrentPlayer {
		return ErrNotYourTurn
	}
	return nil
}

// canSettle applies the site rules shared by both phases: the vertex exists,
// is free, and no neighbouring vertex is owned by anyone.
func (gs *GameState) canSettle(v VertexID) (*Vertex, error) {
	vx := gs.Board.Vertex(v)
	if vx == nil {
		return nil, ErrUnknownVertex
	}
	if vx.Owner != NoPlayer {
		return nil, ErrOccupied
	}
	for _, n := range vx.Adjacent {
		if gs.Board.Vertices[n].Owner != NoPlayer {
			return nil, ErrDistanceRule
		}
	}
	return vx, nil
}

// PlaceSettlement builds a settlement on v. Outside the initial placement the
// settlement costs one wood, brick, grain and wool. During the initial
// placement it is free and grants one unit from every bordering producing tile.
func (gs *GameState) PlaceSettlement(v VertexID, player int, initial bool) error {
	if err := gs.checkTurn(player, initial, PlaceSettlementStage); err != nil {
		return err
	}
	vx, err := gs.canSettle(v)
	if err != nil {
		return err
	}
	p := gs.Players[player]
	if !initial {
		if !p.Resources.Covers(SettlementCost) {
			return ErrInsufficientResources
		}
		p.Resources.Sub(SettlementCost)
	}

	vx.Owner = player
	vx.Building = Settlement
	p.VictoryPoints++

	if initial {
		for _, t := range vx.Tiles {
			if kind := gs.Board.Tiles[t].Kind; kind != Desert {
				p.Resources[kind]++
			}
		}
		gs.advancePlacement()
	}
	return nil
}

// connects reports whether a road on key would join player's network, i.e.
// an endpoint holds their building or another of their roads.
func (gs *GameState) connects(key EdgeKey, player int) bool {
	for _, v := range [2]VertexID{key.A, key.B} {
		if gs.Board.Vertices[v].Owner == player || gs.Board.touchesRoad(v, player) {
			return true
		}
	}
	return false
}

// PlaceRoad claims the road site between a and b. Outside the initial
// placement the road costs one wood and one brick.
func (gs *GameState) PlaceRoad(a, b VertexID, player int) error {
	initial := gs.Phase == InitialPlacementPhase
	if err := gs.checkTurn(player, initial, PlaceRoadStage); err != nil {
		return err
	}
	e := gs.Board.Edge(a, b)
	if e == nil {
		return ErrUnknownEdge
	}
	if e.Owner != NoPlayer {
		return ErrOccupied
	}
	if !gs.connects(e.Key, player) {
		return ErrNotConnected
	}
	p := gs.Players[player]
	if !initial {
		if !p.Resources.Covers(RoadCost) {
			return ErrInsufficientResources
		}
		p.Resources.Sub(RoadCost)
	}

	e.Owner = player
	gs.updateLongestRoad()

	if initial {
		gs.advancePlacement()
	}
	return nil
}

// UpgradeToCity replaces player's settlement on v with a city for two grain
// and three ore.
func (gs *GameState) UpgradeToCity(v VertexID, player int) error {
	if err := gs.checkTurn(player, false, PlaceSettlementStage); err != nil {
		return err
	}
	vx := gs.Board.Vertex(v)
	if vx == nil {
		return ErrUnknownVertex
	}
	if vx.Owner != player || vx.Building != Settlement {
		return ErrNotSettlement
	}
	p := gs.Players[player]
	if !p.Resources.Covers(CityCost) {
		return ErrInsufficientResources
	}

	p.Resources.Sub(CityCost)
	vx.Building = City
	p.VictoryPoints++
	return nil
}

// SettlementSites lists the vertices where a settlement satisfies the site
// rules. Cost and turn order are not considered.
func (gs *GameState) SettlementSites() []VertexID {
	var sites []VertexID
	for _, v := range gs.Board.Vertices {
		if _, err := gs.canSettle(v.ID); err == nil {
			sites = append(sites, v.ID)
		}
	}
	return sites
}

// RoadSites lists the free road sites connected to player's network.
func (gs *GameState) RoadSites(player int) []EdgeKey {
	var sites []EdgeKey
	for _, e := range gs.Board.Edges {
		if e.Owner == NoPlayer && gs.connects(e.Key, player) {
			sites = append(sites, e.Key)
		}
	}
	return sites
}

// CitySites lists player's settlements.
func (gs *GameState) CitySites(player int) []VertexID {
	var sites []VertexID
	for _, v := range gs.Board.Vertices {
		if v.Owner == player && v.Building == Settlement {
			sites = append(sites, v.ID)
		}
	}
	return sites
}
