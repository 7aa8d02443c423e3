package game

import (
	"testing"

	"github.com/grazios/pokemon-tcg-ai/internal/log"
)

// makeDeck builds a deck whose first cards are exactly front, padded to size
// with basic Fire energy. With NoShuffle the opening hand is front[0:7] and
// the prize pool is the next six cards.
func makeDeck(front []Card, size int) []Card {
	deck := append([]Card(nil), front...)
	for len(deck) < size {
		deck = append(deck, BasicEnergy(EnergyFire))
	}
	return deck
}

// newTestGame starts a deterministic match: no shuffling, player 0 first.
func newTestGame(t *testing.T, deck0, deck1 []Card) (*Game, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	g := NewGame(Config{
		Decks:     [2][]Card{deck0, deck1},
		Seed:      1,
		Logger:    logger,
		NoShuffle: true,
	})
	return g, logger
}

// handIndex returns the current player's hand index of the named card.
func handIndex(t *testing.T, p *Player, name string) int {
	t.Helper()
	for i, c := range p.Hand {
		if c.CardName() == name {
			return i
		}
	}
	t.Fatalf("card %q not in hand of P%d", name, p.Index+1)
	return -1
}

// stepLegal asserts the action is currently legal, then applies it.
func stepLegal(t *testing.T, g *Game, action int) {
	t.Helper()
	if !isLegal(g, action) {
		t.Fatalf("action %d not legal; legal set: %v", action, g.LegalActions())
	}
	g.Step(action)
}

func isLegal(g *Game, action int) bool {
	for _, a := range g.LegalActions() {
		if a == action {
			return true
		}
	}
	return false
}
