package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"catan/config"
	"catan/engine"
	"catan/export"
	"catan/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	dumpConfig := flag.Bool("dump-config", false, "Print the resolved config and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *dumpConfig {
		if err := config.Dump(os.Stdout, cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}
	setupLogger(cfg.Log)

	e, err := engine.New(
		engine.WithPlayers(cfg.Game.Players),
		engine.WithSeed(cfg.Game.Seed),
		engine.WithShuffle(cfg.Game.Shuffle),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}

	run(e, cfg, os.Stdin, os.Stdout)
}

func setupLogger(cfg config.LogConfig) {
	level, _ := cfg.ZerologLevel() // validated by config.Load
	zerolog.SetGlobalLevel(level)
	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// run reads commands until EOF or quit. Game commands go to the engine;
// the rest inspect or export the game.
func run(e *engine.Engine, cfg *config.Config, in io.Reader, out io.Writer) {
	fmt.Fprintf(out, "game %s, type help for commands\n", e.ID)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt(e))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return
		case "help":
			fmt.Fprint(out, usage)
		case "show":
			e.View(func(gs *game.GameState) { show(out, gs) })
		case "sites":
			e.View(func(gs *game.GameState) { sites(out, gs) })
		case "export":
			exportGame(out, e, cfg.Export.Dir)
		default:
			if _, err := e.Exec(line); err != nil {
				fmt.Fprintf(out, "rejected: %v\n", err)
			}
		}
	}
}

const usage = `game commands (played by the current player):
  settle <vertex>            road <vertex> <vertex>     city <vertex>
  end                        robber <tile>              trade <give> <take>
  trade-start                trade-select <resource>    trade-cancel
other commands:
  show  sites  export  help  quit
`

func prompt(e *engine.Engine) string {
	var p string
	e.View(func(gs *game.GameState) {
		switch {
		case gs.Phase == game.InitialPlacementPhase && gs.Placement == game.PlaceSettlementStage:
			p = fmt.Sprintf("p%d settle> ", gs.CurrentPlayer)
		case gs.Phase == game.InitialPlacementPhase:
			p = fmt.Sprintf("p%d road> ", gs.CurrentPlayer)
		default:
			p = fmt.Sprintf("p%d %s> ", gs.CurrentPlayer, gs.Stage)
		}
	})
	return p
}

func show(out io.Writer, gs *game.GameState) {
	fmt.Fprintf(out, "phase %s, stage %s, last roll %d, robber on tile %d\n",
		gs.Phase, gs.Stage, gs.LastRoll, gs.RobberTile)
	for _, p := range gs.Players {
		marker := " "
		if p.ID == gs.CurrentPlayer {
			marker = "*"
		}
		fmt.Fprintf(out, "%s p%d %-6s vp %d road %d", marker, p.ID, p.Color, p.VictoryPoints, p.RoadLength)
		if p.LongestRoad {
			fmt.Fprint(out, " (longest road)")
		}
		for r, n := range p.Resources {
			fmt.Fprintf(out, " %s:%d", game.Resource(r), n)
		}
		fmt.Fprintln(out)
	}
	for _, t := range gs.Tiles() {
		fmt.Fprintf(out, "  tile %2d %-6s token %2d corners %v\n", t.ID, t.Kind, t.Token, t.Vertices)
	}
}

func sites(out io.Writer, gs *game.GameState) {
	fmt.Fprintf(out, "settlements: %v\n", gs.SettlementSites())
	roads := gs.RoadSites(gs.CurrentPlayer)
	pairs := make([]string, len(roads))
	for i, k := range roads {
		pairs[i] = fmt.Sprintf("%d-%d", k.A, k.B)
	}
	fmt.Fprintf(out, "roads: %s\n", strings.Join(pairs, " "))
	fmt.Fprintf(out, "cities: %v\n", gs.CitySites(gs.CurrentPlayer))
}

func exportGame(out io.Writer, e *engine.Engine, dir string) {
	w, err := export.NewWriter(dir, e.ID.String())
	if err != nil {
		log.Error().Err(err).Msg("export failed")
		return
	}
	paths, err := w.WriteSnapshot(export.Take(e.State()))
	if err != nil {
		log.Error().Err(err).Msg("export failed")
		return
	}
	turns, err := w.WriteTurns(export.TurnRecords(e.History()))
	if err != nil {
		log.Error().Err(err).Msg("export failed")
		return
	}
	log.Info().Str("dir", w.Dir()).Msg("exported")
	fmt.Fprintln(out, strings.Join(append(paths, turns), "\n"))
}
