package game

import (
	"testing"
)

func TestNestBallBenchesFromDeck(t *testing.T) {
	front := []Card{Charmander(), NestBall()}
	for i := 0; i < 11; i++ {
		front = append(front, BasicEnergy(EnergyFire))
	}
	front = append(front, Charmander()) // stays in the deck past the prizes
	deck0 := makeDeck(front, 20)
	deck1 := makeDeck([]Card{Budew()}, 20)
	g, _ := newTestGame(t, deck0, deck1)

	p := g.Players[0]
	deckBefore := len(p.Deck)
	stepLegal(t, g, PlayCardBase+handIndex(t, p, "Nest Ball"))

	if len(p.Bench) != 1 || p.Bench[0].Def.Name != "Charmander" {
		t.Fatal("Nest Ball did not bench the deck's Charmander")
	}
	if len(p.Deck) != deckBefore-1 {
		t.Errorf("deck size = %d, want %d", len(p.Deck), deckBefore-1)
	}
	if i := p.FindInDiscard(func(c Card) bool { return c.CardName() == "Nest Ball" }); i < 0 {
		t.Error("Nest Ball not discarded after use")
	}
}

func TestBossOrdersDragsBenchedPokemon(t *testing.T) {
	deck0 := makeDeck([]Card{Charmander(), BossOrders()}, 20)
	deck1 := makeDeck([]Card{Budew(), Psyduck()}, 20)
	g, _ := newTestGame(t, deck0, deck1)

	// Boss's Orders is dead with no opposing bench.
	if isLegal(g, PlayCardBase+handIndex(t, g.Players[0], "Boss's Orders")) {
		t.Error("Boss's Orders should not be legal against an empty bench")
	}
	stepLegal(t, g, EndTurn)

	p1 := g.Players[1]
	stepLegal(t, g, PlayCardBase+handIndex(t, p1, "Psyduck"))
	stepLegal(t, g, EndTurn)

	stepLegal(t, g, PlayCardBase+handIndex(t, g.Players[0], "Boss's Orders"))
	if p1.Active == nil || p1.Active.Def.Name != "Psyduck" {
		t.Fatalf("opposing active = %v, want dragged Psyduck", p1.Active)
	}
	if len(p1.Bench) != 1 || p1.Bench[0].Def.Name != "Budew" {
		t.Error("old active Budew not returned to the bench")
	}
}

func TestUltraBallNeedsCardsToDiscard(t *testing.T) {
	deck0 := makeDeck([]Card{Charmander()}, 20)
	deck1 := makeDeck([]Card{Budew()}, 20)
	g, _ := newTestGame(t, deck0, deck1)

	p := g.Players[0]
	p.Hand = []Card{UltraBall()}
	if isLegal(g, PlayCardBase+0) {
		t.Error("Ultra Ball should not be legal without two cards to discard")
	}

	p.Hand = []Card{UltraBall(), BasicEnergy(EnergyFire), BasicEnergy(EnergyFire)}
	if !isLegal(g, PlayCardBase+0) {
		t.Error("Ultra Ball should be legal with two spare cards in hand")
	}
}

func TestCounterCatcherOnlyWhileBehind(t *testing.T) {
	deck0 := makeDeck([]Card{Charmander()}, 20)
	deck1 := makeDeck([]Card{Budew(), Psyduck()}, 20)
	g, _ := newTestGame(t, deck0, deck1)

	p := g.Players[0]
	opp := g.Players[1]
	opp.Bench = append(opp.Bench, NewPokemonInstance(Psyduck().(*PokemonCard)))
	p.Hand = []Card{CounterCatcher()}

	if isLegal(g, PlayCardBase+0) {
		t.Error("Counter Catcher should not be legal at even prizes")
	}
	opp.PrizesTaken = 1
	if !isLegal(g, PlayCardBase+0) {
		t.Error("Counter Catcher should be legal while behind on prizes")
	}
}

func TestIonoShufflesAndDrawsPerPrizes(t *testing.T) {
	deck0 := makeDeck([]Card{Charmander(), Iono()}, 24)
	deck1 := makeDeck([]Card{Budew()}, 24)
	g, _ := newTestGame(t, deck0, deck1)

	p, opp := g.Players[0], g.Players[1]
	stepLegal(t, g, PlayCardBase+handIndex(t, p, "Iono"))

	// Both players hold six prizes, so both draw six.
	if len(p.Hand) != 6 {
		t.Errorf("player hand = %d cards, want 6", len(p.Hand))
	}
	if len(opp.Hand) != 6 {
		t.Errorf("opponent hand = %d cards, want 6", len(opp.Hand))
	}
	if i := p.FindInDiscard(func(c Card) bool { return c.CardName() == "Iono" }); i < 0 {
		t.Error("Iono not discarded after use")
	}
	if !p.PlayedSupporter {
		t.Error("supporter-per-turn flag not set")
	}
}

func TestToolAttachmentFillsFirstOpenSlot(t *testing.T) {
	deck0 := makeDeck([]Card{Charmander(), VitalityBand(), AirBalloon()}, 20)
	deck1 := makeDeck([]Card{Budew()}, 20)
	g, _ := newTestGame(t, deck0, deck1)

	p := g.Players[0]
	stepLegal(t, g, PlayCardBase+handIndex(t, p, "Vitality Band"))
	if p.Active.Tool == nil || p.Active.Tool.Name != "Vitality Band" {
		t.Fatal("Vitality Band not attached to the active")
	}

	// Every in-play Pokémon already holds a tool.
	if isLegal(g, PlayCardBase+handIndex(t, p, "Air Balloon")) {
		t.Error("second tool should not be legal with no open slot")
	}
}

func TestAreaZeroExpandsBenchForTeraSide(t *testing.T) {
	deck0 := makeDeck([]Card{TerapagosEx(), AreaZeroUnderdepths()}, 20)
	deck1 := makeDeck([]Card{Budew()}, 20)
	g, _ := newTestGame(t, deck0, deck1)

	p := g.Players[0]
	stepLegal(t, g, PlayCardBase+handIndex(t, p, "Area Zero Underdepths"))

	if p.MaxBench != MaxBenchSlots {
		t.Errorf("Tera side bench limit = %d, want %d", p.MaxBench, MaxBenchSlots)
	}
	if g.Players[1].MaxBench != DefaultMaxBench {
		t.Errorf("non-Tera side bench limit = %d, want %d", g.Players[1].MaxBench, DefaultMaxBench)
	}

	// Overfill, then lose the stadium: the bench shrinks back and the
	// overflow is discarded.
	for i := 0; i < 6; i++ {
		p.Bench = append(p.Bench, NewPokemonInstance(Budew().(*PokemonCard)))
	}
	g.discardStadium()
	if p.MaxBench != DefaultMaxBench {
		t.Errorf("bench limit after stadium left = %d, want %d", p.MaxBench, DefaultMaxBench)
	}
	if len(p.Bench) != DefaultMaxBench {
		t.Errorf("bench size after shrink = %d, want %d", len(p.Bench), DefaultMaxBench)
	}
	if i := p.FindInDiscard(func(c Card) bool { return c.CardName() == "Budew" }); i < 0 {
		t.Error("overflow Pokémon not discarded")
	}
}
