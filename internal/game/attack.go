package game

import (
	"github.com/grazios/pokemon-tcg-ai/internal/log"
)

func (g *Game) handleAttack(player, opponent *Player, idx int) (float64, bool) {
	attacker := player.Active
	if attacker == nil || !attacker.CanUseAttack(idx, g.TurnCount) {
		return 0, false
	}
	g.HasAttacked = true
	return g.resolveAttack(player, opponent, attacker, attacker.Def.Attacks[idx]), true
}

// handleCopyAttack resolves a pending copy decision by running one of the
// opponent's attacks with the copier's own stats. The copied attack needs no
// energy payment.
func (g *Game) handleCopyAttack(player, opponent *Player, idx int) (float64, bool) {
	if !g.PendingCopyAttack {
		return 0, false
	}
	g.PendingCopyAttack = false
	attacker := player.Active
	opp := opponent.Active
	if attacker == nil || opp == nil || idx < 0 || idx >= len(opp.Def.Attacks) {
		return 0, false
	}
	attack := opp.Def.Attacks[idx]
	if attack.Effect == AttackGenomeHacking {
		return 0, false
	}
	return g.resolveAttack(player, opponent, attacker, attack), true
}

// resolveAttack computes effect damage, applies it to the defending active
// with weakness and resistance, and sweeps the bench for effect knockouts.
func (g *Game) resolveAttack(player, opponent *Player, attacker *PokemonInstance, attack Attack) float64 {
	reward := 0.0
	damage := attack.Damage
	g.log(log.NewAttackEvent(g.TurnCount, player.Index, attack.Name, attacker.Def.Name))

	switch attack.Effect {
	case AttackBurningDarkness:
		damage = 180 + 30*opponent.PrizesTaken

	case AttackBellowingThunder:
		// All basic energy on the attacker's side is discarded, 70 each.
		discarded := 0
		for _, inst := range player.AllInPlay() {
			kept := inst.Energy[:0]
			for _, e := range inst.Energy {
				if e.Special {
					kept = append(kept, e)
				} else {
					player.Discard = append(player.Discard, e)
					discarded++
				}
			}
			inst.Energy = kept
		}
		damage = 70 * discarded

	case AttackPhantomDive:
		damage = 200
		for c := 0; c < 6 && len(opponent.Bench) > 0; c++ {
			target := opponent.Bench[g.rng.Intn(len(opponent.Bench))]
			target.PutDamageCounters(1)
		}

	case AttackMyriadLeafShower:
		total := attacker.TotalEnergy()
		if opponent.Active != nil {
			total += opponent.Active.TotalEnergy()
		}
		damage = 30 + 30*total

	case AttackBurstRoar:
		player.Discard = append(player.Discard, player.Hand...)
		player.Hand = nil
		if n, _ := player.Draw(6); n > 0 {
			g.log(log.NewDrawEvent(g.TurnCount, player.Index, n))
		}
		damage = 0

	case AttackUnifiedBeatdown:
		damage = 30 * len(player.Bench)

	case AttackCrownOpal:
		damage = 180

	case AttackCruelArrow:
		// 100 damage to one of the opponent's Pokémon.
		if len(opponent.Bench) > 0 {
			target := opponent.Bench[g.rng.Intn(len(opponent.Bench))]
			target.PutDamageCounters(10)
			g.log(log.NewCountersEvent(g.TurnCount, player.Index, target.Def.Name, 10))
		} else if opponent.Active != nil {
			g.applyDamage(player, attacker, opponent.Active, 100)
		}
		damage = 0

	case AttackThunderburstStorm:
		counters := attacker.TotalEnergy() * 3
		targets := opponent.AllInPlay()
		if len(targets) > 0 && counters > 0 {
			target := targets[g.rng.Intn(len(targets))]
			target.PutDamageCounters(counters)
			g.log(log.NewCountersEvent(g.TurnCount, player.Index, target.Def.Name, counters))
		}
		damage = 0

	case AttackGenomeHacking:
		// The player now chooses which opposing attack to copy.
		g.PendingCopyAttack = true
		g.log(log.NewCopyPendingEvent(g.TurnCount, player.Index, attacker.Def.Name))
		return reward

	case AttackEonBlade:
		damage = 200
		attacker.CantAttackUntil = g.TurnCount + 2

	case AttackRapidFireCombo:
		damage = 200
		for g.rng.Intn(2) == 0 {
			damage += 50
		}

	case AttackMegafireOfEnvy:
		damage = 50
		if player.LastKOTurn == g.TurnCount-1 {
			damage += 90
		}

	case AttackFlareBringer:
		for n := 0; n < 2; n++ {
			i := player.FindInDiscard(func(c Card) bool {
				e, isEnergy := c.(*EnergyCard)
				return isEnergy && !e.Special && e.Type == EnergyFire
			})
			if i < 0 {
				break
			}
			energy := player.TakeFromDiscard(i).(*EnergyCard)
			attacker.Energy = append(attacker.Energy, energy)
			g.log(log.NewAttachEnergyEvent(g.TurnCount, player.Index, energy.Name, attacker.Def.Name))
		}
		damage = 0

	case AttackShadowBind:
		damage = 150
		if opponent.Active != nil {
			opponent.Active.CantRetreatUntil = g.TurnCount + 1
		}

	case AttackBlusteryWind:
		damage = 120
		g.discardStadium()

	case AttackBlazingDestruction:
		g.discardStadium()
		damage = 0

	case AttackAssaultLanding:
		if g.Stadium == nil {
			damage = 0
		} else {
			damage = 70
		}

	case AttackTripleStab:
		damage = 0
		for n := 0; n < 3; n++ {
			if g.rng.Intn(2) == 0 {
				damage += 10
			}
		}

	case AttackCallForFamily:
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
			}
		}
		damage = 0
	}

	if attacker.Tool != nil && attacker.Tool.Effect == TrainerVitalityBand && damage > 0 {
		damage += 10
	}

	if damage > 0 && opponent.Active != nil {
		defender := opponent.Active
		if defender.ProtectedFromEX && attacker.Def.IsEX() {
			damage = 0
		}
		if damage > 0 {
			reward += rewardDamage
			g.applyDamage(player, attacker, defender, damage)
			if defender.KnockedOut() {
				reward += rewardKnockOut
				prizes := defender.Def.PrizeValue()
				if g.BriarActive && attacker.Def.IsTera() {
					prizes++
				}
				reward += g.handleKnockOut(opponent, defender, prizes, false)
			}
		}
	}

	// Effect damage can knock out the defender and benched Pokémon too; the
	// sweep also catches a dead replacement promoted by the KO above.
	reward += g.sweepKnockOuts(opponent)

	g.BriarActive = false
	return reward
}

// applyDamage applies attack damage with weakness and resistance from the
// attacker's types, floored at zero.
func (g *Game) applyDamage(player *Player, attacker, defender *PokemonInstance, damage int) {
	def := defender.Def
	if def.Weakness != EnergyNone && attacker.Def.HasType(def.Weakness) {
		damage *= def.WeaknessMult
	}
	if def.Resistance != EnergyNone && attacker.Def.HasType(def.Resistance) {
		damage -= def.ResistanceVal
	}
	if damage < 0 {
		damage = 0
	}
	defender.TakeDamage(damage)
	g.log(log.NewDamageEvent(g.TurnCount, player.Index, def.Name, damage, defender.HP()))
}
