package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"catan/game"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgument    = errors.New("bad argument")
)

// ParseMove turns a command line into a move by player. initial marks
// settlements as initial placements.
//
//	settle <vertex>
//	road <vertex> <vertex>
//	city <vertex>
//	end
//	robber <tile>
//	trade <give> <take>
//	trade-start | trade-select <resource> | trade-cancel
func ParseMove(line string, player int, initial bool) (game.Move, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return game.Move{}, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}
	m := game.Move{Player: player}
	args := fields[1:]

	var err error
	switch fields[0] {
	case "settle":
		m.Type, m.Initial = game.SettleAction, initial
		err = want(args, 1)
		if err == nil {
			m.Vertex, err = parseVertex(args[0])
		}
	case "road":
		m.Type = game.RoadAction
		err = want(args, 2)
		if err == nil {
			m.Vertex, err = parseVertex(args[0])
		}
		if err == nil {
			m.To, err = parseVertex(args[1])
		}
	case "city":
		m.Type = game.CityAction
		err = want(args, 1)
		if err == nil {
			m.Vertex, err = parseVertex(args[0])
		}
	case "end":
		m.Type = game.EndTurnAction
		err = want(args, 0)
	case "robber":
		m.Type = game.RobberAction
		err = want(args, 1)
		if err == nil {
			m.Tile, err = parseInt(args[0])
		}
	case "trade":
		m.Type = game.BankTradeAction
		err = want(args, 2)
		if err == nil {
			m.Give, err = parseResource(args[0])
		}
		if err == nil {
			m.Take, err = parseResource(args[1])
		}
	case "trade-start":
		m.Type = game.StartTradeAction
		err = want(args, 0)
	case "trade-select":
		m.Type = game.SelectTradeAction
		err = want(args, 1)
		if err == nil {
			m.Take, err = parseResource(args[0])
		}
	case "trade-cancel":
		m.Type = game.CancelTradeAction
		err = want(args, 0)
	default:
		return game.Move{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
	if err != nil {
		return game.Move{}, fmt.Errorf("%s: %w", fields[0], err)
	}
	return m, nil
}

func want(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: want %d arguments, got %d", ErrBadArgument, n, len(args))
	}
	return nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrBadArgument, s)
	}
	return n, nil
}

func parseVertex(s string) (game.VertexID, error) {
	n, err := parseInt(s)
	return game.VertexID(n), err
}

func parseResource(s string) (game.Resource, error) {
	r, ok := game.ParseResource(s)
	if !ok {
		return 0, fmt.Errorf("%w: unknown resource %q", ErrBadArgument, s)
	}
	return r, nil
}
