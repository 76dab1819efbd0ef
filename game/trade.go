package game

// TradeWithBank swaps four units of give for one unit of take.
func (gs *GameState) TradeWithBank(player int, give, take Resource) error {
	if gs.Phase != MainPhase || gs.Stage == RobberStage {
		return ErrWrongPhase
	}
	p := gs.Player(player)
	if p == nil {
		return ErrUnknownPlayer
	}
	if !give.Holdable() || !take.Holdable() {
		return ErrInvalidResource
	}
	if give == take {
		return ErrSameResource
	}
	if p.Resources[give] < BankTradeRatio {
		return ErrInsufficientResources
	}

	p.Resources[give] -= BankTradeRatio
	p.Resources[take]++
	return nil
}

// StartTrade opens the bank trading overlay for the current player.
func (gs *GameState) StartTrade() error {
	if gs.Phase != MainPhase || gs.Stage != NormalStage {
		return ErrWrongPhase
	}
	gs.Stage = TradeWantStage
	return nil
}

// SelectTradeResource records the wanted resource on the first call. The
// second call names the resource to give, attempts the trade when it differs
// from the wanted one, and closes the overlay whatever the outcome. The
// returned error is the trade's rejection, if any.
func (gs *GameState) SelectTradeResource(r Resource) error {
	if gs.Phase != MainPhase {
		return ErrWrongPhase
	}
	if !r.Holdable() {
		return ErrInvalidResource
	}

	switch gs.Stage {
	case TradeWantStage:
		gs.TradeWant = r
		gs.Stage = TradeGiveStage
		return nil
	case TradeGiveStage:
		want := gs.TradeWant
		var err error
		if r == want {
			err = ErrSameResource
		} else {
			err = gs.TradeWithBank(gs.CurrentPlayer, r, want)
		}
		gs.Stage = NormalStage
		gs.TradeWant = Wood
		return err
	default:
		return ErrWrongPhase
	}
}

// CancelTrade closes the trading overlay without trading.
func (gs *GameState) CancelTrade() error {
	if gs.Phase != MainPhase || (gs.Stage != TradeWantStage && gs.Stage != TradeGiveStage) {
		return ErrWrongPhase
	}
	gs.Stage = NormalStage
	gs.TradeWant = Wood
	return nil
}
