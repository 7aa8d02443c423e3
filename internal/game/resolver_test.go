package game

import (
	"math"
	"testing"

	"github.com/grazios/pokemon-tcg-ai/internal/log"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEvolutionKeepsDamage(t *testing.T) {
	deck0 := makeDeck([]Card{Charmander(), Charmeleon()}, 20)
	deck1 := makeDeck([]Card{Budew()}, 20)
	g, _ := newTestGame(t, deck0, deck1)

	g.Players[0].Active.TakeDamage(30)
	stepLegal(t, g, EndTurn)
	stepLegal(t, g, EndTurn)

	hi := handIndex(t, g.Players[0], "Charmeleon")
	stepLegal(t, g, EvolveActiveBase+hi)

	active := g.Players[0].Active
	if active.Def.Name != "Charmeleon" {
		t.Fatalf("active = %s, want Charmeleon", active.Def.Name)
	}
	if got := active.HP(); got != 70 {
		t.Errorf("HP after evolving with 30 damage = %d, want 70", got)
	}
	if len(active.Evolution) != 1 || active.Evolution[0].Name != "Charmander" {
		t.Errorf("evolution history = %v, want [Charmander]", active.Evolution)
	}
	if !active.EvolvedThisTurn {
		t.Error("EvolvedThisTurn not set")
	}
}

func TestRareCandySkipsStage1(t *testing.T) {
	deck0 := makeDeck([]Card{
		Charmander(), CharizardEx(), RareCandy(),
		BasicEnergy(EnergyFire), BasicEnergy(EnergyFire), BasicEnergy(EnergyFire), BasicEnergy(EnergyFire),
	}, 24)
	deck1 := makeDeck([]Card{Budew()}, 20)
	g, _ := newTestGame(t, deck0, deck1)

	stepLegal(t, g, EndTurn)
	stepLegal(t, g, EndTurn)

	p := g.Players[0]
	hi := handIndex(t, p, "Charizard ex")
	reward, _ := g.Step(RareCandyActiveBase + hi)

	active := p.Active
	if active.Def.Name != "Charizard ex" {
		t.Fatalf("active = %s, want Charizard ex", active.Def.Name)
	}
	if len(active.Evolution) != 1 || active.Evolution[0].Name != "Charmander" {
		t.Errorf("evolution history = %v, want [Charmander]", active.Evolution)
	}
	if i := p.FindInDiscard(func(c Card) bool { return c.CardName() == "Rare Candy" }); i < 0 {
		t.Error("Rare Candy not discarded")
	}
	// Infernal Reign fires on evolution and attaches three Fire from deck.
	if got := active.TotalEnergy(); got != 3 {
		t.Errorf("energy after Infernal Reign = %d, want 3", got)
	}
	if !almostEqual(reward, 0.15) {
		t.Errorf("reward = %v, want 0.15", reward)
	}
}

func TestWeaknessKnockOutAwardsPrizeAndPromotes(t *testing.T) {
	deck0 := makeDeck([]Card{Charmander()}, 20)
	deck1 := makeDeck([]Card{Budew(), Budew()}, 20)
	g, logger := newTestGame(t, deck0, deck1)

	stepLegal(t, g, EnergyActiveBase+0)
	stepLegal(t, g, EndTurn)

	// Player 1 benches a spare Budew so the knockout does not end the game.
	hi := handIndex(t, g.Players[1], "Budew")
	stepLegal(t, g, PlayCardBase+hi)
	stepLegal(t, g, EndTurn)

	// Heat Tackle: 30 base, doubled by Budew's Fire weakness, past 30 HP.
	reward, done := g.Step(AttackBase + 0)
	if done {
		t.Fatal("match should continue after promotion")
	}
	if !almostEqual(reward, 0.5) {
		t.Errorf("knockout reward = %v, want 0.5", reward)
	}

	p1 := g.Players[1]
	if g.Players[0].PrizesTaken != 1 {
		t.Errorf("attacker prizes taken = %d, want 1", g.Players[0].PrizesTaken)
	}
	if p1.Active == nil || p1.Active.Def.Name != "Budew" {
		t.Fatal("bench Budew not auto-promoted")
	}
	if len(p1.Bench) != 0 {
		t.Errorf("bench size = %d, want 0", len(p1.Bench))
	}
	if p1.LastKOTurn != 3 {
		t.Errorf("LastKOTurn = %d, want 3", p1.LastKOTurn)
	}
	if kos := logger.EventsOfType(log.EventKnockOut); len(kos) != 1 || kos[0].Card != "Budew" {
		t.Errorf("knockout events = %v", kos)
	}
}

func TestRetreatPaysEnergyToDiscard(t *testing.T) {
	deck0 := makeDeck([]Card{Charmander(), Hoothoot()}, 20)
	deck1 := makeDeck([]Card{Budew()}, 20)
	g, _ := newTestGame(t, deck0, deck1)

	p := g.Players[0]
	stepLegal(t, g, PlayCardBase+handIndex(t, p, "Hoothoot"))
	stepLegal(t, g, EnergyActiveBase+0)
	stepLegal(t, g, RetreatBase+0)

	if p.Active.Def.Name != "Hoothoot" {
		t.Errorf("active after retreat = %s, want Hoothoot", p.Active.Def.Name)
	}
	if len(p.Bench) != 1 || p.Bench[0].Def.Name != "Charmander" {
		t.Fatal("Charmander not returned to the bench")
	}
	if got := p.Bench[0].TotalEnergy(); got != 0 {
		t.Errorf("retreating kept %d energy, want 0", got)
	}
	if len(p.Discard) != 1 || p.Discard[0].CardName() != "Fire Energy" {
		t.Errorf("discard = %v, want the paid Fire Energy", p.Discard)
	}
}

func TestEndTurnPenaltyWithoutEnergy(t *testing.T) {
	deck0 := makeDeck([]Card{Charmander()}, 20)
	deck1 := makeDeck([]Card{Budew()}, 20)
	g, _ := newTestGame(t, deck0, deck1)

	if reward, _ := g.Step(EndTurn); !almostEqual(reward, -0.01) {
		t.Errorf("end turn with bare active: reward = %v, want -0.01", reward)
	}

	// Player 1 powers up before passing and avoids the penalty.
	stepLegal(t, g, EnergyActiveBase+0)
	if reward, _ := g.Step(EndTurn); !almostEqual(reward, 0) {
		t.Errorf("end turn with powered active: reward = %v, want 0", reward)
	}
}

func TestBenchCountersSweepPromotedReplacement(t *testing.T) {
	deck0 := makeDeck([]Card{Psyduck()}, 20)
	deck1 := makeDeck([]Card{Budew(), Budew()}, 20)
	g, _ := newTestGame(t, deck0, deck1)

	p, opp := g.Players[0], g.Players[1]
	p.Active = NewPokemonInstance(DragapultEx().(*PokemonCard))
	attachAll(p.Active, BasicEnergy(EnergyFire), BasicEnergy(EnergyPsychic))
	opp.PlaceBenchCard(Budew().(*PokemonCard))

	stepLegal(t, g, EndTurn)
	stepLegal(t, g, EndTurn)

	// Turn 3: Phantom Dive knocks out the active while its counters fell the
	// lone benched Budew, which gets auto-promoted mid-resolution. The dead
	// replacement must be swept out too, not left standing in the Active Spot.
	stepLegal(t, g, AttackBase+0)

	if opp.Active != nil || len(opp.Bench) != 0 {
		t.Fatalf("knocked-out Pokémon stayed in play: active=%v bench=%v", opp.Active, opp.Bench)
	}
	if got := p.PrizesTaken; got != 2 {
		t.Errorf("prizes taken = %d, want 2", got)
	}
	if !g.Done || g.Winner != 0 {
		t.Errorf("board wipe should end the game; done=%v winner=%d", g.Done, g.Winner)
	}
}
