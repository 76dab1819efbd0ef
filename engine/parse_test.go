package engine

import (
	"testing"

	"catan/game"

	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		line    string
		initial bool
		want    game.Move
	}{
		{"settle 12", true, game.Move{Type: game.SettleAction, Player: 1, Vertex: 12, Initial: true}},
		{"settle 12", false, game.Move{Type: game.SettleAction, Player: 1, Vertex: 12}},
		{"  ROAD 3   4 ", false, game.Move{Type: game.RoadAction, Player: 1, Vertex: 3, To: 4}},
		{"city 7", false, game.Move{Type: game.CityAction, Player: 1, Vertex: 7}},
		{"end", false, game.Move{Type: game.EndTurnAction, Player: 1}},
		{"robber 5", false, game.Move{Type: game.RobberAction, Player: 1, Tile: 5}},
		{"trade wood ore", false, game.Move{Type: game.BankTradeAction, Player: 1, Give: game.Wood, Take: game.Ore}},
		{"trade-start", false, game.Move{Type: game.StartTradeAction, Player: 1}},
		{"trade-select wool", false, game.Move{Type: game.SelectTradeAction, Player: 1, Take: game.Wool}},
		{"trade-cancel", false, game.Move{Type: game.CancelTradeAction, Player: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			m, err := ParseMove(tt.line, 1, tt.initial)
			require.NoError(t, err)
			require.Equal(t, tt.want, m)
		})
	}
}

func TestParseMoveErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"", ErrUnknownCommand},
		{"build 3", ErrUnknownCommand},
		{"settle", ErrBadArgument},
		{"settle 1 2", ErrBadArgument},
		{"road 1", ErrBadArgument},
		{"road 1 b", ErrBadArgument},
		{"robber north", ErrBadArgument},
		{"end now", ErrBadArgument},
		{"trade wood", ErrBadArgument},
		{"trade wood gold", ErrBadArgument},
		{"trade-select", ErrBadArgument},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseMove(tt.line, 0, false)
			require.ErrorIs(t, err, tt.want)
		})
	}
}
