package game

import "testing"

func TestCursedBlastSelfKnockOutAwardsNoPrize(t *testing.T) {
	deck0 := makeDeck([]Card{Charmander()}, 20)
	deck1 := makeDeck([]Card{Psyduck()}, 20)
	g, _ := newTestGame(t, deck0, deck1)

	p := g.Players[0]
	opp := g.Players[1]
	p.Bench = append(p.Bench, NewPokemonInstance(Dusclops().(*PokemonCard)))

	stepLegal(t, g, AbilityBenchBase+0)

	if got := opp.Active.Counters(); got != 5 {
		t.Errorf("opposing active counters = %d, want 5 from Stage 1 Cursed Blast", got)
	}
	if len(p.Bench) != 0 {
		t.Error("Dusclops should knock itself out")
	}
	if i := p.FindInDiscard(func(c Card) bool { return c.CardName() == "Dusclops" }); i < 0 {
		t.Error("Dusclops not in the discard pile")
	}
	if opp.PrizesTaken != 0 {
		t.Errorf("opponent took %d prizes from a self-knockout, want 0", opp.PrizesTaken)
	}
	if p.LastKOTurn != 1 {
		t.Errorf("LastKOTurn = %d, want 1", p.LastKOTurn)
	}
}

func TestDusknoirCursedBlastHitsHarder(t *testing.T) {
	deck0 := makeDeck([]Card{Charmander()}, 20)
	deck1 := makeDeck([]Card{WellspringOgerponEx(), Psyduck()}, 20)
	g, _ := newTestGame(t, deck0, deck1)

	p := g.Players[0]
	opp := g.Players[1]
	p.Bench = append(p.Bench, NewPokemonInstance(Dusknoir().(*PokemonCard)))
	opp.Bench = append(opp.Bench, NewPokemonInstance(Psyduck().(*PokemonCard)))
	opp.Active.TakeDamage(100)

	reward, _ := g.Step(AbilityBenchBase + 0)

	// 13 counters on top of 100 damage fell the 210 HP ex for two prizes.
	if opp.Active == nil || opp.Active.Def.Name != "Psyduck" {
		t.Fatal("opponent should promote after losing the active")
	}
	if g.Players[0].PrizesTaken != 2 {
		t.Errorf("prizes taken = %d, want 2", g.Players[0].PrizesTaken)
	}
	if reward <= 0 {
		t.Errorf("reward = %v, want positive", reward)
	}
}

func TestMischievousLockSuppressesBasicAbilities(t *testing.T) {
	deck0 := makeDeck([]Card{Charmander(), FanRotom()}, 20)
	deck1 := makeDeck([]Card{Klefki()}, 20)
	g, _ := newTestGame(t, deck0, deck1)

	p := g.Players[0]
	stepLegal(t, g, PlayCardBase+handIndex(t, p, "Fan Rotom"))
	if isLegal(g, AbilityBenchBase+0) {
		t.Error("Fan Call should be locked while Klefki is active")
	}

	// The lock only reaches Basic Pokémon abilities from the Active Spot.
	g.Players[1].Active = nil
	g.Players[1].Bench = append(g.Players[1].Bench, NewPokemonInstance(Budew().(*PokemonCard)))
	g.Players[1].PromoteFromBench(0)
	if !isLegal(g, AbilityBenchBase+0) {
		t.Errorf("Fan Call should be live once the lock leaves; legal set: %v", g.LegalActions())
	}
}

func TestTealDanceOncePerTurn(t *testing.T) {
	deck0 := makeDeck([]Card{
		TealOgerponEx(), BasicEnergy(EnergyGrass), BasicEnergy(EnergyGrass),
	}, 20)
	deck1 := makeDeck([]Card{Budew()}, 20)
	g, _ := newTestGame(t, deck0, deck1)

	p := g.Players[0]
	handBefore := len(p.Hand)
	stepLegal(t, g, AbilityActive)

	if got := p.Active.TotalEnergy(); got != 1 {
		t.Errorf("attached energy = %d, want 1", got)
	}
	// One Grass left the hand, one card came back from the draw.
	if len(p.Hand) != handBefore {
		t.Errorf("hand size = %d, want %d", len(p.Hand), handBefore)
	}
	if isLegal(g, AbilityActive) {
		t.Error("Teal Dance should be spent for the turn")
	}

	stepLegal(t, g, EndTurn)
	stepLegal(t, g, EndTurn)
	if !isLegal(g, AbilityActive) {
		t.Error("Teal Dance should refresh on the next turn")
	}
}

func TestFlipTheScriptNeedsRecentKnockOut(t *testing.T) {
	deck0 := makeDeck([]Card{FezandipitiEx()}, 20)
	deck1 := makeDeck([]Card{Budew()}, 20)
	g, _ := newTestGame(t, deck0, deck1)

	if isLegal(g, AbilityActive) {
		t.Error("Flip the Script should be dead with no recent knockout")
	}

	p := g.Players[0]
	p.LastKOTurn = g.TurnCount - 1
	if !isLegal(g, AbilityActive) {
		t.Fatal("Flip the Script should be live the turn after a knockout")
	}

	handBefore := len(p.Hand)
	stepLegal(t, g, AbilityActive)
	if len(p.Hand) != handBefore+3 {
		t.Errorf("hand size = %d, want %d", len(p.Hand), handBefore+3)
	}
}

func TestRestartOnlyWithThinHand(t *testing.T) {
	deck0 := makeDeck([]Card{MewEx()}, 20)
	deck1 := makeDeck([]Card{Budew()}, 20)
	g, _ := newTestGame(t, deck0, deck1)

	// Six cards in hand after setup: too many.
	if isLegal(g, AbilityActive) {
		t.Error("Restart should not be legal with a full hand")
	}

	p := g.Players[0]
	p.Hand = p.Hand[:1]
	if !isLegal(g, AbilityActive) {
		t.Fatal("Restart should be legal with one card in hand")
	}
	stepLegal(t, g, AbilityActive)
	if len(p.Hand) != 3 {
		t.Errorf("hand size after Restart = %d, want 3", len(p.Hand))
	}
}

func TestInfernalReignPrefersActive(t *testing.T) {
	deck0 := makeDeck([]Card{Charmander(), Charmander(), Charmeleon(), CharizardEx()}, 24)
	deck1 := makeDeck([]Card{Budew()}, 24)
	g, _ := newTestGame(t, deck0, deck1)

	p := g.Players[0]
	stepLegal(t, g, PlayCardBase+handIndex(t, p, "Charmander"))
	stepLegal(t, g, EndTurn)
	stepLegal(t, g, EndTurn)

	stepLegal(t, g, EvolveActiveBase+handIndex(t, p, "Charmeleon"))
	stepLegal(t, g, EndTurn)
	stepLegal(t, g, EndTurn)

	stepLegal(t, g, EvolveActiveBase+handIndex(t, p, "Charizard ex"))
	if got := p.Active.TotalEnergy(); got != 3 {
		t.Errorf("Infernal Reign attached %d energy to the active, want 3", got)
	}
	if got := p.Bench[0].TotalEnergy(); got != 0 {
		t.Errorf("bench picked up %d energy, want 0", got)
	}
}

func TestAdrenaBrainKnockOutClearsTheTarget(t *testing.T) {
	deck0 := makeDeck([]Card{Munkidori()}, 20)
	deck1 := makeDeck([]Card{Budew()}, 20)
	g, _ := newTestGame(t, deck0, deck1)

	p, opp := g.Players[0], g.Players[1]
	p.Active.TakeDamage(30)

	// Moving three counters onto the 30 HP Budew knocks it out; the dead
	// Pokémon must leave play and the prize must be awarded immediately.
	stepLegal(t, g, AbilityActive)

	if got := p.Active.HP(); got != 110 {
		t.Errorf("Munkidori HP after healing = %d, want 110", got)
	}
	if opp.Active != nil {
		t.Fatalf("knocked-out Budew stayed in the Active Spot at %d HP", opp.Active.HP())
	}
	if got := p.PrizesTaken; got != 1 {
		t.Errorf("prizes taken = %d, want 1", got)
	}
	if !g.Done || g.Winner != 0 {
		t.Errorf("last Pokémon down should end the game; done=%v winner=%d", g.Done, g.Winner)
	}
}
