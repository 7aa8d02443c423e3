package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/grazios/pokemon-tcg-ai/internal/game"
	gamelog "github.com/grazios/pokemon-tcg-ai/internal/log"
)

func main() {
	deck0 := flag.Int("deck0", 0, "builtin deck id for player 1 (0-2)")
	deck1 := flag.Int("deck1", 1, "builtin deck id for player 2 (0-2)")
	decksFile := flag.String("decks", "", "optional YAML deck file; overrides builtin decks")
	seed := flag.Int64("seed", time.Now().UnixNano(), "RNG seed")
	games := flag.Int("games", 1, "number of games to simulate")
	maxTurns := flag.Int("max-turns", game.DefaultMaxTurns, "turn ceiling before tie-break")
	quiet := flag.Bool("quiet", false, "suppress per-event output")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	decks, err := loadDecks(*decksFile, *deck0, *deck1)
	if err != nil {
		logger.Fatal("load decks", zap.Error(err))
	}

	wins := [2]int{}
	draws := 0
	for n := 0; n < *games; n++ {
		var events gamelog.EventLogger
		if *quiet {
			events = gamelog.NewMemoryLogger()
		} else {
			events = gamelog.NewTextLogger(os.Stdout)
		}

		g := game.NewGame(game.Config{
			Decks:       decks,
			Seed:        *seed + int64(n),
			Logger:      events,
			MaxTurns:    *maxTurns,
			RandomFirst: true,
		})

		policy := rand.New(rand.NewSource(*seed + int64(n)))
		steps := runToCompletion(g, policy)

		switch g.Winner {
		case 0, 1:
			wins[g.Winner]++
		default:
			draws++
		}
		logger.Info("game finished",
			zap.String("match_id", g.MatchID.String()),
			zap.Int("game", n+1),
			zap.Int("turns", g.TurnCount),
			zap.Int("steps", steps),
			zap.Int("winner", g.Winner),
			zap.Int("p1_prizes", g.Players[0].PrizesTaken),
			zap.Int("p2_prizes", g.Players[1].PrizesTaken),
		)
	}

	logger.Info("run summary",
		zap.Int("games", *games),
		zap.Int("p1_wins", wins[0]),
		zap.Int("p2_wins", wins[1]),
		zap.Int("draws", draws),
	)
}

// loadDecks resolves the two decks from a YAML file or the builtin lists.
func loadDecks(path string, id0, id1 int) ([2][]game.Card, error) {
	var decks [2][]game.Card
	if path != "" {
		_, d0, err := game.DeckByNumber(path, id0+1)
		if err != nil {
			return decks, err
		}
		_, d1, err := game.DeckByNumber(path, id1+1)
		if err != nil {
			return decks, err
		}
		decks[0], decks[1] = d0, d1
		return decks, nil
	}
	d0, err := game.BuildDeck(id0)
	if err != nil {
		return decks, err
	}
	d1, err := game.BuildDeck(id1)
	if err != nil {
		return decks, err
	}
	decks[0], decks[1] = d0, d1
	return decks, nil
}

// runToCompletion plays the match with a uniform random policy over the
// legal set, returning the number of steps taken.
func runToCompletion(g *game.Game, policy *rand.Rand) int {
	steps := 0
	for !g.Done {
		legal := g.LegalActions()
		if len(legal) == 0 {
			break
		}
		action := legal[policy.Intn(len(legal))]
		g.Step(action)
		steps++
	}
	return steps
}
