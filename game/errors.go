package game

import "errors"

// Rejection reasons. A rejected operation leaves the game state untouched.
var (
	ErrUnknownVertex = errors.New("unknown vertex")
	ErrUnknownEdge   = errors.New("unknown road site")
	ErrUnknownTile   = errors.New("unknown tile")
	ErrUnknownPlayer = errors.New("unknown player")

	ErrOccupied              = errors.New("site already owned")
	ErrDistanceRule          = errors.New("neighbouring vertex already owned")
	ErrNotConnected          = errors.New("road does not connect to the player's network")
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrNotSettlement         = errors.New("vertex is not a settlement owned by the player")

	ErrWrongPhase  = errors.New("action not allowed in the current phase")
	ErrNotYourTurn = errors.New("not the current player")

	ErrRobberSameTile = errors.New("robber must move to a different tile")
	ErrDesertTile     = errors.New("robber cannot be placed on the desert")

	ErrSameResource    = errors.New("cannot trade a resource for itself")
	ErrInvalidResource = errors.New("invalid resource kind")

	ErrTooManyPlayers   = errors.New("player limit reached")
	ErrNotEnoughPlayers = errors.New("not enough players")
	ErrInvalidLayout    = errors.New("invalid board layout")
)
