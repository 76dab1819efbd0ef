package game

import "fmt"

// ActionType represents the type of action a player can perform.
type ActionType int

const (
	SettleAction ActionType = iota
	RoadAction
	CityAction
	EndTurnAction
	RobberAction
	BankTradeAction
	StartTradeAction
	SelectTradeAction
	CancelTradeAction
)

var actionNames = [...]string{
	"settle", "road", "city", "end", "robber", "trade", "trade-start", "trade-select", "trade-cancel",
}

func (a ActionType) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Move is one action requested by the UI layer. Only the fields relevant
// to Type are read.
type Move struct {
	Type    ActionType
	Player  int
	Vertex  VertexID // settle, city, road start
	To      VertexID // road end
	Tile    int      // robber
	Give    Resource // trade
	Take    Resource // trade, trade-select
	Initial bool     // settle
}

func (m Move) String() string {
	switch m.Type {
	case SettleAction, CityAction:
		return fmt.Sprintf("%s p%d v%d", m.Type, m.Player, m.Vertex)
	case RoadAction:
		return fmt.Sprintf("%s p%d v%d-v%d", m.Type, m.Player, m.Vertex, m.To)
	case RobberAction:
		return fmt.Sprintf("%s p%d t%d", m.Type, m.Player, m.Tile)
	case BankTradeAction:
		return fmt.Sprintf("%s p%d %s->%s", m.Type, m.Player, m.Give, m.Take)
	case SelectTradeAction:
		return fmt.Sprintf("%s %s", m.Type, m.Take)
	default:
		return m.Type.String()
	}
}

// Play applies m. On error the state is unchanged, except for the trading
// overlay which closes after a second selection whatever the trade outcome.
func (gs *GameState) Play(m Move) error {
	switch m.Type {
	case SettleAction:
		return gs.PlaceSettlement(m.Vertex, m.Player, m.Initial)
	case RoadAction:
		return gs.PlaceRoad(m.Vertex, m.To, m.Player)
	case CityAction:
		return gs.UpgradeToCity(m.Vertex, m.Player)
	case EndTurnAction:
		_, err := gs.AdvanceTurn()
		return err
	case RobberAction:
		return gs.PlaceRobber(m.Tile, m.Player)
	case BankTradeAction:
		return gs.TradeWithBank(m.Player, m.Give, m.Take)
	case StartTradeAction:
		return gs.StartTrade()
	case SelectTradeAction:
		return gs.SelectTradeResource(m.Take)
	case CancelTradeAction:
		return gs.CancelTrade()
	default:
		return fmt.Errorf("unknown action %d", m.Type)
	}
}
