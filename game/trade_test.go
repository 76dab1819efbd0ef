package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTradeWithBank(t *testing.T) {
	t.Run("four for one", func(t *testing.T) {
		gs := newMainGame(t, 2, &scriptedRand{})
		gs.Players[0].Resources = Hand{Wood: 5}

		require.NoError(t, gs.TradeWithBank(0, Wood, Ore))
		require.Equal(t, Hand{Wood: 1, Ore: 1}, gs.Players[0].Resources)
	})

	t.Run("any player may trade", func(t *testing.T) {
		gs := newMainGame(t, 2, &scriptedRand{})
		gs.Players[1].Resources = Hand{Grain: 4}

		require.NoError(t, gs.TradeWithBank(1, Grain, Brick))
		require.Equal(t, Hand{Brick: 1}, gs.Players[1].Resources)
	})

	t.Run("rejections leave the hand unchanged", func(t *testing.T) {
		gs := newMainGame(t, 2, &scriptedRand{})
		gs.Players[0].Resources = Hand{Wood: 3, Ore: 4}
		before := gs.Hash()

		require.ErrorIs(t, gs.TradeWithBank(0, Wood, Ore), ErrInsufficientResources)
		require.ErrorIs(t, gs.TradeWithBank(0, Ore, Ore), ErrSameResource)
		require.ErrorIs(t, gs.TradeWithBank(0, Ore, Desert), ErrInvalidResource)
		require.ErrorIs(t, gs.TradeWithBank(0, Desert, Wood), ErrInvalidResource)
		require.ErrorIs(t, gs.TradeWithBank(7, Ore, Wood), ErrUnknownPlayer)
		require.Equal(t, before, gs.Hash())
	})

	t.Run("not outside regular turns", func(t *testing.T) {
		gs := newTestGame(t, 2, &scriptedRand{})
		gs.Players[0].Resources = Hand{Ore: 4}
		require.ErrorIs(t, gs.TradeWithBank(0, Ore, Wood), ErrWrongPhase)

		gs = newMainGame(t, 2, &scriptedRand{})
		gs.Players[0].Resources = Hand{Ore: 4}
		gs.Stage = RobberStage
		require.ErrorIs(t, gs.TradeWithBank(0, Ore, Wood), ErrWrongPhase)
	})
}

func TestTradeOverlay(t *testing.T) {
	t.Run("want then give", func(t *testing.T) {
		gs := newMainGame(t, 2, &scriptedRand{})
		gs.Players[0].Resources = Hand{Brick: 4}

		require.NoError(t, gs.StartTrade())
		require.Equal(t, TradeWantStage, gs.Stage)

		require.NoError(t, gs.SelectTradeResource(Wool))
		require.Equal(t, TradeGiveStage, gs.Stage)
		require.Equal(t, Wool, gs.TradeWant)

		require.NoError(t, gs.SelectTradeResource(Brick))
		require.Equal(t, Hand{Wool: 1}, gs.Players[0].Resources)
		require.Equal(t, NormalStage, gs.Stage)
		require.Equal(t, Wood, gs.TradeWant)
	})

	t.Run("a failed trade still closes the overlay", func(t *testing.T) {
		gs := newMainGame(t, 2, &scriptedRand{})
		gs.Players[0].Resources = Hand{Brick: 2}

		require.NoError(t, gs.StartTrade())
		require.NoError(t, gs.SelectTradeResource(Ore))
		require.ErrorIs(t, gs.SelectTradeResource(Brick), ErrInsufficientResources)
		require.Equal(t, NormalStage, gs.Stage)
		require.Equal(t, Hand{Brick: 2}, gs.Players[0].Resources)
	})

	t.Run("giving what is wanted trades nothing", func(t *testing.T) {
		gs := newMainGame(t, 2, &scriptedRand{})
		gs.Players[0].Resources = Hand{Ore: 8}

		require.NoError(t, gs.StartTrade())
		require.NoError(t, gs.SelectTradeResource(Ore))
		require.ErrorIs(t, gs.SelectTradeResource(Ore), ErrSameResource)
		require.Equal(t, Hand{Ore: 8}, gs.Players[0].Resources)
		require.Equal(t, NormalStage, gs.Stage)
	})

	t.Run("cancel", func(t *testing.T) {
		gs := newMainGame(t, 2, &scriptedRand{})
		gs.Players[0].Resources = Hand{Ore: 4}

		require.NoError(t, gs.StartTrade())
		require.NoError(t, gs.SelectTradeResource(Grain))
		require.NoError(t, gs.CancelTrade())
		require.Equal(t, NormalStage, gs.Stage)
		require.Equal(t, Hand{Ore: 4}, gs.Players[0].Resources)

		require.ErrorIs(t, gs.CancelTrade(), ErrWrongPhase, "nothing left to cancel")
	})

	t.Run("building and rolling wait for the overlay", func(t *testing.T) {
		gs := newMainGame(t, 2, &scriptedRand{})
		gs.Players[0].Resources = SettlementCost

		require.NoError(t, gs.StartTrade())
		require.ErrorIs(t, gs.PlaceSettlement(0, 0, false), ErrWrongPhase)
		_, err := gs.AdvanceTurn()
		require.ErrorIs(t, err, ErrWrongPhase)
		require.ErrorIs(t, gs.StartTrade(), ErrWrongPhase)
	})

	t.Run("selection outside the overlay", func(t *testing.T) {
		gs := newMainGame(t, 2, &scriptedRand{})

		require.ErrorIs(t, gs.SelectTradeResource(Wood), ErrWrongPhase)

		require.NoError(t, gs.StartTrade())
		require.ErrorIs(t, gs.SelectTradeResource(Desert), ErrInvalidResource)
		require.Equal(t, TradeWantStage, gs.Stage)
	})
}
