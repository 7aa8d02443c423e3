package game

import (
	"github.com/grazios/pokemon-tcg-ai/internal/log"
)

// handleTrainer plays the trainer card at the given hand index. Legality has
// already vetted the precondition; handlers still bail out cleanly when the
// board shifted under them.
func (g *Game) handleTrainer(player, opponent *Player, hand int, card *TrainerCard) (float64, bool) {
	player.RemoveFromHand(hand)

	if card.Kind == TrainerSupporter {
		player.PlayedSupporter = true
	}
	if card.Kind == TrainerStadium {
		player.PlayedStadium = true
		g.setStadium(player.Index, card)
		return 0.01, true
	}
	if card.Kind == TrainerTool {
		return g.attachTool(player, card)
	}

	g.log(log.NewTrainerEvent(g.TurnCount, player.Index, card.Name))
	reward := 0.0

	switch card.Effect {
	case TrainerBossOrders:
		if len(opponent.Bench) > 0 {
			g.gustTarget(opponent)
			reward = 0.05
		}

	case TrainerIono:
		// Both players shuffle their hands into their decks and draw as
		// many cards as they have prizes remaining.
		for _, p := range []*Player{player, opponent} {
			p.ReturnHandToDeck(true)
		}
		g.drawAndLog(player, len(player.Prizes))
		g.drawAndLog(opponent, len(opponent.Prizes))
		reward = 0.02

	case TrainerDawn:
		found := 0
		for _, stage := range []Stage{StageBasic, Stage1, Stage2} {
			i := player.FindInDeck(func(c Card) bool {
				pc, isPokemon := c.(*PokemonCard)
				return isPokemon && pc.Stage == stage
			})
			if i >= 0 {
				player.Hand = append(player.Hand, player.TakeFromDeck(i))
				found++
			}
		}
		if found > 0 {
			player.Shuffle()
			reward = 0.03
		}

	case TrainerLilliesDetermination:
		player.ReturnHandToDeck(true)
		draw := 6
		if len(player.Prizes) == PrizeCount {
			draw = 8
		}
		g.drawAndLog(player, draw)
		reward = 0.02

	case TrainerCrispin:
		reward = g.resolveCrispin(player)

	case TrainerSadaVitality:
		attached := 0
		for _, inst := range player.AllInPlay() {
			if attached >= 2 || !inst.Def.IsAncient() {
				continue
			}
			i := player.FindInDiscard(isBasicEnergy)
			if i < 0 {
				break
			}
			e := player.TakeFromDiscard(i).(*EnergyCard)
			inst.Energy = append(inst.Energy, e)
			g.log(log.NewAttachEnergyEvent(g.TurnCount, player.Index, e.Name, inst.Def.Name))
			attached++
		}
		if attached > 0 {
			g.drawAndLog(player, 3)
			reward = 0.04
		}

	case TrainerBriar:
		g.BriarActive = true
		reward = 0.02

	case TrainerAcerolaMischief:
		if player.Active != nil {
			player.Active.ProtectedFromEX = true
		}
		reward = 0.02

	case TrainerTuroScenario:
		// Scoop up a benched Pokémon; attachments and pre-evolutions go
		// to the discard pile.
		if len(player.Bench) > 0 {
			inst := player.Bench[0]
			player.Bench = player.Bench[1:]
			player.Hand = append(player.Hand, inst.Def)
			for _, e := range inst.Energy {
				player.Discard = append(player.Discard, e)
			}
			if inst.Tool != nil {
				player.Discard = append(player.Discard, inst.Tool)
			}
			for _, pre := range inst.Evolution {
				player.Discard = append(player.Discard, pre)
			}
			reward = 0.01
		}

	case TrainerBuddyBuddyPoffin:
		found := 0
		for n := 0; n < 2 && player.BenchHasRoom(); n++ {
			i := player.FindInDeck(func(c Card) bool {
				pc, isPokemon := c.(*PokemonCard)
				return isPokemon && pc.IsBasic() && pc.HP <= 70
			})
			if i < 0 {
				break
			}
			pc := player.TakeFromDeck(i).(*PokemonCard)
			inst := player.PlaceBenchCard(pc)
			g.log(log.NewPlaceBenchEvent(g.TurnCount, player.Index, inst.Def.Name))
			reward += g.triggerBenchAbilities(player, inst)
			found++
		}
		if found > 0 {
			player.Shuffle()
			reward += 0.03
		}

	case TrainerNestBall:
		if player.BenchHasRoom() {
			i := player.FindInDeck(func(c Card) bool {
				pc, isPokemon := c.(*PokemonCard)
				return isPokemon && pc.IsBasic()
			})
			if i >= 0 {
				pc := player.TakeFromDeck(i).(*PokemonCard)
				inst := player.PlaceBenchCard(pc)
				player.Shuffle()
				g.log(log.NewPlaceBenchEvent(g.TurnCount, player.Index, inst.Def.Name))
				reward = 0.02 + g.triggerBenchAbilities(player, inst)
			}
		}

	case TrainerUltraBall:
		if len(player.Hand) >= 2 {
			for n := 0; n < 2; n++ {
				c := player.RemoveFromHand(len(player.Hand) - 1)
				player.Discard = append(player.Discard, c)
			}
			i := player.FindInDeck(func(c Card) bool {
				_, isPokemon := c.(*PokemonCard)
				return isPokemon
			})
			if i >= 0 {
				player.Hand = append(player.Hand, player.TakeFromDeck(i))
				player.Shuffle()
				reward = 0.03
			}
		}

	case TrainerNightStretcher:
		i := player.FindInDiscard(isPokemonOrBasicEnergy)
		if i >= 0 {
			player.Hand = append(player.Hand, player.TakeFromDiscard(i))
			reward = 0.02
		}

	case TrainerSuperRod:
		count := 0
		for n := 0; n < 3; n++ {
			i := player.FindInDiscard(isPokemonOrBasicEnergy)
			if i < 0 {
				break
			}
			player.Deck = append(player.Deck, player.TakeFromDiscard(i))
			count++
		}
		if count > 0 {
			player.Shuffle()
			reward = 0.01
		}

	case TrainerPrimeCatcher:
		if len(opponent.Bench) > 0 && len(player.Bench) > 0 {
			g.gustTarget(opponent)
			player.SwitchActive(0)
			reward = 0.05
		}

	case TrainerCounterCatcher:
		if len(opponent.Bench) > 0 {
			g.gustTarget(opponent)
			reward = 0.04
		}

	case TrainerUnfairStamp:
		for _, p := range []*Player{player, opponent} {
			p.ReturnHandToDeck(true)
		}
		g.drawAndLog(player, 5)
		g.drawAndLog(opponent, 2)
		reward = 0.04

	case TrainerEarthenVessel:
		if len(player.Hand) > 0 {
			c := player.RemoveFromHand(len(player.Hand) - 1)
			player.Discard = append(player.Discard, c)
		}
		found := 0
		for n := 0; n < 2; n++ {
			i := player.FindInDeck(isBasicEnergy)
			if i < 0 {
				break
			}
			player.Hand = append(player.Hand, player.TakeFromDeck(i))
			found++
		}
		if found > 0 {
			player.Shuffle()
			reward = 0.03
		}

	case TrainerEnergySwitch:
		if player.Active != nil {
			for _, inst := range player.Bench {
				if inst.TotalEnergy() > 0 {
					moved := inst.RemoveEnergy(1)
					player.Active.Energy = append(player.Active.Energy, moved...)
					reward = 0.02
					break
				}
			}
		}

	case TrainerGlassTrumpet:
		count := 0
		for _, inst := range player.Bench {
			if count >= 2 || !inst.Def.HasType(EnergyColorless) {
				continue
			}
			i := player.FindInDiscard(isBasicEnergy)
			if i < 0 {
				break
			}
			e := player.TakeFromDiscard(i).(*EnergyCard)
			inst.Energy = append(inst.Energy, e)
			g.log(log.NewAttachEnergyEvent(g.TurnCount, player.Index, e.Name, inst.Def.Name))
			count++
		}
		reward = 0.02 * float64(count)
	}

	player.Discard = append(player.Discard, card)
	return reward, true
}

// attachTool attaches a tool to the first Pokémon in play without one, or
// discards it if none qualify.
func (g *Game) attachTool(player *Player, card *TrainerCard) (float64, bool) {
	for _, inst := range player.AllInPlay() {
		if inst.Tool == nil {
			inst.Tool = card
			g.log(log.NewToolEvent(g.TurnCount, player.Index, card.Name, inst.Def.Name))
			return 0.01, true
		}
	}
	player.Discard = append(player.Discard, card)
	return 0, true
}

// gustTarget drags a random benched opponent Pokémon into the active spot.
func (g *Game) gustTarget(opponent *Player) {
	idx := g.rng.Intn(len(opponent.Bench))
	dragged := opponent.Bench[idx]
	opponent.Bench = append(opponent.Bench[:idx], opponent.Bench[idx+1:]...)
	if opponent.Active != nil {
		opponent.Bench = append(opponent.Bench, opponent.Active)
	}
	opponent.Active = dragged
	g.log(log.NewPromoteEvent(g.TurnCount, opponent.Index, dragged.Def.Name))
}

// resolveCrispin searches out two basic energies of different types,
// attaching one to the active and keeping the other in hand.
func (g *Game) resolveCrispin(player *Player) float64 {
	seen := map[EnergyType]int{}
	for i, c := range player.Deck {
		e, isEnergy := c.(*EnergyCard)
		if !isEnergy || e.Special {
			continue
		}
		if _, dup := seen[e.Type]; !dup {
			seen[e.Type] = i
			if len(seen) == 2 {
				break
			}
		}
	}
	if len(seen) == 0 {
		return 0
	}

	var indices []int
	for _, i := range seen {
		indices = append(indices, i)
	}
	if len(indices) == 1 {
		player.Hand = append(player.Hand, player.TakeFromDeck(indices[0]))
		player.Shuffle()
		return 0.02
	}

	// Remove the higher index first so the lower stays valid.
	hi, lo := indices[0], indices[1]
	if lo > hi {
		hi, lo = lo, hi
	}
	first := player.TakeFromDeck(hi).(*EnergyCard)
	second := player.TakeFromDeck(lo).(*EnergyCard)
	player.Hand = append(player.Hand, first)
	target := player.Active
	if target == nil && len(player.Bench) > 0 {
		target = player.Bench[0]
	}
	if target != nil {
		target.Energy = append(target.Energy, second)
		g.log(log.NewAttachEnergyEvent(g.TurnCount, player.Index, second.Name, target.Def.Name))
	} else {
		player.Hand = append(player.Hand, second)
	}
	player.Shuffle()
	return 0.04
}

func (g *Game) drawAndLog(p *Player, n int) {
	if drawn, _ := p.Draw(n); drawn > 0 {
		g.log(log.NewDrawEvent(g.TurnCount, p.Index, drawn))
	}
}

func isBasicEnergy(c Card) bool {
	e, isEnergy := c.(*EnergyCard)
	return isEnergy && !e.Special
}

func isPokemonOrBasicEnergy(c Card) bool {
	if _, isPokemon := c.(*PokemonCard); isPokemon {
		return true
	}
	return isBasicEnergy(c)
}
