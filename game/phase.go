package game

type Phase int

const (
	SetupPhase            Phase = iota // players are being added
	InitialPlacementPhase              // snake-order free settlement and road
	MainPhase                          // regular turns
)

func (p Phase) String() string {
	switch p {
	case SetupPhase:
		return "setup"
	case InitialPlacementPhase:
		return "initial-placement"
	case MainPhase:
		return "main"
	default:
		return "unknown"
	}
}

// PlacementStage is the step within an initial placement visit.
type PlacementStage int

const (
	PlaceSettlementStage PlacementStage = iota
	PlaceRoadStage
)

// TurnStage is the sub-phase of a main phase turn.
type TurnStage int

const (
	// NormalStage accepts builds, trades and the end of the turn.
	NormalStage TurnStage = iota
	// RobberStage waits for the robber to be moved after a seven.
	RobberStage
	// TradeWantStage waits for the resource the player wants from the bank.
	TradeWantStage
	// TradeGiveStage waits for the resource the player gives in return.
	TradeGiveStage
)

func (s TurnStage) String() string {
	switch s {
	case NormalStage:
		return "normal"
	case RobberStage:
		return "robber"
	case TradeWantStage:
		return "trade-want"
	case TradeGiveStage:
		return "trade-give"
	default:
		return "unknown"
	}
}

// StartInitialPlacement fixes the player list and begins the snake order:
// every player ascending, then every player descending.
func (gs *GameState) StartInitialPlacement() error {
	if gs.Phase != SetupPhase {
		return ErrWrongPhase
	}
	if len(gs.Players) < MinPlayers {
		return ErrNotEnoughPlayers
	}

	n := len(gs.Players)
	order := make([]int, 0, 2*n)
	for i := 0; i < n; i++ {
		order = append(order, i)
	}
	for i := n - 1; i >= 0; i-- {
		order = append(order, i)
	}

	gs.Phase = InitialPlacementPhase
	gs.Placement = PlaceSettlementStage
	gs.CurrentPlayer = order[0]
	gs.placementOrder = order[1:]
	return nil
}

// advancePlacement moves the initial placement machine after a successful build.
func (gs *GameState) advancePlacement() {
	if gs.Placement == PlaceSettlementStage {
		gs.Placement = PlaceRoadStage
		return
	}
	gs.Placement = PlaceSettlementStage
	if len(gs.placementOrder) == 0 {
		gs.Phase = MainPhase
		gs.Stage = NormalStage
		return
	}
	gs.CurrentPlayer = gs.placementOrder[0]
	gs.placementOrder = gs.placementOrder[1:]
}

// NextPlayer returns the index of the player after the current one.
func (gs *GameState) NextPlayer() int {
	return (gs.CurrentPlayer + 1) % len(gs.Players)
}

// AdvanceTurn ends the current main phase turn by rolling the dice. A seven
// resolves discards and enters the robber stage without passing the turn;
// any other roll produces resources and passes the turn. Returns the roll.
func (gs *GameState) AdvanceTurn() (int, error) {
	if gs.Phase != MainPhase || gs.Stage != NormalStage {
		return 0, ErrWrongPhase
	}

	roll := rollDice(gs.rng)
	gs.LastRoll = roll
	if roll == 7 {
		gs.ResolveSevenRoll()
		return roll, nil
	}

	gs.Distribute(roll)
	gs.CurrentPlayer = gs.NextPlayer()
	return roll, nil
}
