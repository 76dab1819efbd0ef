package game

import (
	"encoding/binary"
	"hash/fnv"
)

const (
	MinPlayers = 2
	MaxPlayers = 4

	// LongestRoadMin is the road length needed to claim the bonus.
	LongestRoadMin = 5
	// LongestRoadPoints is the victory point value of the bonus.
	LongestRoadPoints = 2
	// BankTradeRatio is how many units of one kind buy one unit from the bank.
	BankTradeRatio = 4
	// DiscardThreshold is the hand size above which a seven forces a discard.
	DiscardThreshold = 7
)

// NoTile marks the robber as off the board, on a layout without a desert.
const NoTile = -1

// PlayerColors is assigned in join order.
var PlayerColors = []string{"red", "blue", "yellow", "green"}

type Player struct {
	ID            int
	Color         string
	Resources     Hand
	VictoryPoints int
	LongestRoad   bool // holds the longest road bonus
	RoadLength    int  // longest simple road, as of the last recomputation
}

// GameState is the whole mutable game. Every rule is applied through its
// methods; the board, players and tiles are never shared with another game.
type GameState struct {
	Board         *Board
	Players       []*Player
	CurrentPlayer int
	Phase         Phase
	Placement     PlacementStage
	Stage         TurnStage
	LastRoll      int // 0 before the first roll
	RobberTile    int
	TradeWant     Resource // set in TradeGiveStage

	placementOrder []int
	rng            Rand
}

// NewGameState initializes a game on the given board in the setup phase.
// The robber starts on the desert.
func NewGameState(b *Board, rng Rand) *GameState {
	robber := NoTile
	for _, t := range b.Tiles {
		if t.Kind == Desert {
			robber = t.ID
			break
		}
	}
	return &GameState{
		Board:      b,
		Players:    []*Player{},
		Phase:      SetupPhase,
		RobberTile: robber,
		rng:        rng,
	}
}

// AddPlayer joins a new player and returns their id.
func (gs *GameState) AddPlayer() (int, error) {
	if gs.Phase != SetupPhase {
		return 0, ErrWrongPhase
	}
	if len(gs.Players) >= MaxPlayers {
		return 0, ErrTooManyPlayers
	}
	id := len(gs.Players)
	gs.Players = append(gs.Players, &Player{
		ID:    id,
		Color: PlayerColors[id%len(PlayerColors)],
	})
	return id, nil
}

// Player returns the player with the given id, or nil.
func (gs *GameState) Player(id int) *Player {
	if id < 0 || id >= len(gs.Players) {
		return nil
	}
	return gs.Players[id]
}

// Tiles returns the tile list.
func (gs *GameState) Tiles() []*HexTile {
	return gs.Board.Tiles
}

// LongestRoadHolder returns the id of the bonus holder, or NoPlayer.
func (gs *GameState) LongestRoadHolder() int {
	for _, p := range gs.Players {
		if p.LongestRoad {
			return p.ID
		}
	}
	return NoPlayer
}

// Copy returns a deep copy sharing only the immutable tiles and the
// randomness source.
func (gs *GameState) Copy() *GameState {
	players := make([]*Player, len(gs.Players))
	for i, p := range gs.Players {
		pc := *p
		players[i] = &pc
	}
	order := make([]int, len(gs.placementOrder))
	copy(order, gs.placementOrder)

	return &GameState{
		Board:          gs.Board.copy(),
		Players:        players,
		CurrentPlayer:  gs.CurrentPlayer,
		Phase:          gs.Phase,
		Placement:      gs.Placement,
		Stage:          gs.Stage,
		LastRoll:       gs.LastRoll,
		RobberTile:     gs.RobberTile,
		TradeWant:      gs.TradeWant,
		placementOrder: order,
		rng:            gs.rng,
	}
}

// Hash fingerprints every mutable field of the game.
func (gs *GameState) Hash() uint64 {
	hasher := fnv.New64a()
	write := func(v int) {
		binary.Write(hasher, binary.LittleEndian, int64(v))
	}

	write(gs.CurrentPlayer)
	write(int(gs.Phase))
	write(int(gs.Placement))
	write(int(gs.Stage))
	write(gs.LastRoll)
	write(gs.RobberTile)
	write(int(gs.TradeWant))
	write(len(gs.placementOrder))

	for _, v := range gs.Board.Vertices {
		write(v.Owner)
		write(int(v.Building))
	}
	for _, e := range gs.Board.Edges {
		write(e.Owner)
	}
	for _, p := range gs.Players {
		for _, n := range p.Resources {
			write(n)
		}
		write(p.VictoryPoints)
		if p.LongestRoad {
			write(1)
		} else {
			write(0)
		}
	}
	return hasher.Sum64()
}
