package game

import (
	"github.com/grazios/pokemon-tcg-ai/internal/log"
)

// handleAbility manually triggers the Pokémon's ability. One use per ability
// per turn, shared across copies.
func (g *Game) handleAbility(player, opponent *Player, inst *PokemonInstance) (float64, bool) {
	if inst == nil || !g.canUseAbility(player, opponent, inst) {
		return 0, false
	}
	ab := inst.Def.Abilities[0]
	player.UsedAbilities[ab.Effect] = true
	g.log(log.NewAbilityEvent(g.TurnCount, player.Index, ab.Name, inst.Def.Name))
	reward := 0.0

	switch ab.Effect {
	case AbilityTealDance:
		// Attach a Grass energy from hand to this Pokémon, then draw.
		for i, c := range player.Hand {
			e, isEnergy := c.(*EnergyCard)
			if isEnergy && !e.Special && e.Type == EnergyGrass {
				player.RemoveFromHand(i)
				inst.Energy = append(inst.Energy, e)
				g.log(log.NewAttachEnergyEvent(g.TurnCount, player.Index, e.Name, inst.Def.Name))
				g.drawAndLog(player, 1)
				reward = 0.04
				break
			}
		}

	case AbilityFanCall:
		found := 0
		for n := 0; n < 3; n++ {
			i := player.FindInDeck(func(c Card) bool {
				pc, isPokemon := c.(*PokemonCard)
				return isPokemon && pc.HasType(EnergyColorless) && pc.HP <= 100
			})
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

	case AbilityFlipTheScript:
		g.drawAndLog(player, 3)
		reward = 0.03

	case AbilityQuickSearch:
		if len(player.Deck) > 0 {
			i := g.pickQuickSearchTarget(player)
			player.Hand = append(player.Hand, player.TakeFromDeck(i))
			player.Shuffle()
			reward = 0.05
		}

	case AbilityRunErrand:
		g.drawAndLog(player, 2)
		reward = 0.03

	case AbilityRestart:
		if need := 3 - len(player.Hand); need > 0 {
			g.drawAndLog(player, need)
		}
		reward = 0.02

	case AbilityCursedBlast:
		if target := opponent.Active; target != nil {
			counters := 5
			if inst.Def.Stage == Stage2 {
				counters = 13
			}
			target.PutDamageCounters(counters)
			g.log(log.NewCountersEvent(g.TurnCount, player.Index, target.Def.Name, counters))
			if target.KnockedOut() {
				reward += 0.1
			}
			reward += g.sweepKnockOuts(opponent)
		}
		// The blast knocks out its own user. No prize for the opponent.
		inst.DamageTaken = inst.Def.HP
		reward += g.handleKnockOut(player, inst, -1, true)
		reward += 0.02

	case AbilityAdrenaBrain:
		if opponent.Active != nil {
			source := inst
			for _, p := range player.AllInPlay() {
				if p != inst && p.Counters() > 0 {
					source = p
					break
				}
			}
			moved := source.Counters()
			if moved > 3 {
				moved = 3
			}
			if moved > 0 {
				source.Heal(moved * 10)
				opponent.Active.PutDamageCounters(moved)
				g.log(log.NewCountersEvent(g.TurnCount, player.Index, opponent.Active.Def.Name, moved))
				reward = 0.02
				reward += g.sweepKnockOuts(opponent)
			}
		}
	}

	return reward, true
}

// pickQuickSearchTarget chooses the deck card an expert would take: a Stage 2
// ex first, then a rare-candy catalyst, else the top card.
func (g *Game) pickQuickSearchTarget(player *Player) int {
	best := 0
	for i, c := range player.Deck {
		if pc, isPokemon := c.(*PokemonCard); isPokemon && pc.IsEX() && pc.Stage == Stage2 {
			return i
		}
		if tc, isTrainer := c.(*TrainerCard); isTrainer && tc.Effect == TrainerRareCandy {
			best = i
		}
	}
	return best
}

// triggerEvolutionAbilities fires abilities that activate when their holder
// evolves.
func (g *Game) triggerEvolutionAbilities(player *Player, inst *PokemonInstance) float64 {
	reward := 0.0
	for _, ab := range inst.Def.Abilities {
		switch ab.Effect {
		case AbilityInfernalReign:
			// Search out up to 3 basic Fire energy and attach them.
			attached := 0
			for n := 0; n < 3; n++ {
				i := player.FindInDeck(func(c Card) bool {
					e, isEnergy := c.(*EnergyCard)
					return isEnergy && !e.Special && e.Type == EnergyFire
				})
				if i < 0 {
					break
				}
				e := player.TakeFromDeck(i).(*EnergyCard)
				target := player.Active
				if target == nil && len(player.Bench) > 0 {
					target = player.Bench[0]
				}
				if target == nil {
					player.Deck = append(player.Deck, e)
					break
				}
				target.Energy = append(target.Energy, e)
				g.log(log.NewAttachEnergyEvent(g.TurnCount, player.Index, e.Name, target.Def.Name))
				attached++
			}
			if attached > 0 {
				player.Shuffle()
				g.log(log.NewAbilityEvent(g.TurnCount, player.Index, ab.Name, inst.Def.Name))
				reward += 0.1
			}

		case AbilityJewelSeeker:
			if player.HasTeraInPlay() {
				found := 0
				for n := 0; n < 2; n++ {
					i := player.FindInDeck(func(c Card) bool {
						_, isTrainer := c.(*TrainerCard)
						return isTrainer
					})
					if i < 0 {
						break
					}
					player.Hand = append(player.Hand, player.TakeFromDeck(i))
					found++
				}
				if found > 0 {
					player.Shuffle()
					g.log(log.NewAbilityEvent(g.TurnCount, player.Index, ab.Name, inst.Def.Name))
					reward += 0.05
				}
			}

		case AbilityReconDirective:
			if len(player.Deck) > 0 {
				g.drawAndLog(player, 1)
				g.log(log.NewAbilityEvent(g.TurnCount, player.Index, ab.Name, inst.Def.Name))
				reward += 0.01
			}
		}
	}
	return reward
}

// triggerBenchAbilities fires abilities that activate when their holder is
// placed on the bench.
func (g *Game) triggerBenchAbilities(player *Player, inst *PokemonInstance) float64 {
	reward := 0.0
	for _, ab := range inst.Def.Abilities {
		if ab.Effect == AbilityFlyingEntry {
			g.log(log.NewAbilityEvent(g.TurnCount, player.Index, ab.Name, inst.Def.Name))
			// Put damage counters on an opposing Pokémon.
			opponent := g.Players[1-player.Index]
			if targets := opponent.AllInPlay(); len(targets) > 0 {
				target := targets[g.rng.Intn(len(targets))]
				target.PutDamageCounters(2)
				g.log(log.NewCountersEvent(g.TurnCount, player.Index, target.Def.Name, 2))
				reward += 0.02
				reward += g.sweepKnockOuts(opponent)
			}
		}
	}
	return reward
}
