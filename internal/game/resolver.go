package game

import (
	"github.com/grazios/pokemon-tcg-ai/internal/log"
)

// Reward shaping constants. These feed external learning code; the engine
// itself only accumulates them.
const (
	rewardPlace     = 0.01
	rewardEvolve    = 0.02
	rewardDamage    = 0.05
	rewardKnockOut  = 0.15
	rewardPerPrize  = 0.3
	rewardWin       = 1.0
	rewardBoardWipe = 0.5
)

// Step applies one action id and returns the shaped reward and whether the
// match is over. An id outside the current legal set is treated as end-turn.
func (g *Game) Step(action int) (float64, bool) {
	if g.Done {
		return 0, true
	}

	legal := false
	for _, a := range g.LegalActions() {
		if a == action {
			legal = true
			break
		}
	}
	if !legal {
		action = EndTurn
	}

	player := g.CurrentPlayer()
	opponent := g.Opponent()
	cmd := Decode(action)
	reward := 0.0

	var ok bool
	switch cmd.Kind {
	case CommandPlayCard:
		reward, ok = g.handlePlayCard(player, opponent, cmd.Hand)
	case CommandEvolveActive:
		reward, ok = g.handleEvolve(player, player.Active, cmd.Hand)
	case CommandEvolveBench:
		if cmd.Bench < len(player.Bench) {
			reward, ok = g.handleEvolve(player, player.Bench[cmd.Bench], cmd.Hand)
		}
	case CommandEnergyActive:
		ok = g.handleAttachEnergy(player, player.Active, cmd.Hand)
	case CommandEnergyBench:
		if cmd.Bench < len(player.Bench) {
			ok = g.handleAttachEnergy(player, player.Bench[cmd.Bench], cmd.Hand)
		}
	case CommandAttack:
		reward, ok = g.handleAttack(player, opponent, cmd.Attack)
	case CommandRetreat:
		ok = g.handleRetreat(player, cmd.Bench)
	case CommandRareCandyActive:
		reward, ok = g.handleRareCandy(player, player.Active, cmd.Hand)
	case CommandRareCandyBench:
		if cmd.Bench < len(player.Bench) {
			reward, ok = g.handleRareCandy(player, player.Bench[cmd.Bench], cmd.Hand)
		}
	case CommandAbilityActive:
		reward, ok = g.handleAbility(player, opponent, player.Active)
	case CommandAbilityBench:
		if cmd.Bench < len(player.Bench) {
			reward, ok = g.handleAbility(player, opponent, player.Bench[cmd.Bench])
		}
	case CommandCopyAttack:
		reward, ok = g.handleCopyAttack(player, opponent, cmd.Attack)
	case CommandEndTurn:
		g.endTurn()
		g.checkWinConditions()
		return g.endTurnPenalty, g.Done
	}

	// A handler refusing its operands means the decoded command no longer
	// matches the board. Fail soft: forfeit the rest of the turn.
	if !ok {
		g.endTurn()
	}

	g.checkWinConditions()
	return reward, g.Done
}

func (g *Game) handlePlayCard(player, opponent *Player, hand int) (float64, bool) {
	if hand < 0 || hand >= len(player.Hand) {
		return 0, false
	}
	switch card := player.Hand[hand].(type) {
	case *PokemonCard:
		if !card.IsBasic() {
			return 0, false
		}
		// An empty Active Spot takes the Basic directly.
		if player.Active == nil {
			inst := player.PlaceActive(hand)
			g.log(log.NewPlaceActiveEvent(g.TurnCount, player.Index, inst.Def.Name))
			return rewardPlace, true
		}
		if !player.BenchHasRoom() {
			return 0, false
		}
		inst := player.PlaceBench(hand)
		g.log(log.NewPlaceBenchEvent(g.TurnCount, player.Index, inst.Def.Name))
		reward := rewardPlace
		reward += g.triggerBenchAbilities(player, inst)
		return reward, true
	case *TrainerCard:
		return g.handleTrainer(player, opponent, hand, card)
	}
	return 0, false
}

func (g *Game) handleEvolve(player *Player, target *PokemonInstance, hand int) (float64, bool) {
	if target == nil || hand < 0 || hand >= len(player.Hand) {
		return 0, false
	}
	card, isPokemon := player.Hand[hand].(*PokemonCard)
	if !isPokemon || !g.canEvolveOnto(player, target, card) {
		return 0, false
	}
	player.RemoveFromHand(hand)
	from := target.Def.Name
	target.Evolve(card)
	g.log(log.NewEvolveEvent(g.TurnCount, player.Index, from, card.Name))
	g.updateBenchLimits()
	reward := rewardEvolve
	reward += g.triggerEvolutionAbilities(player, target)
	return reward, true
}

func (g *Game) handleRareCandy(player *Player, target *PokemonInstance, hand int) (float64, bool) {
	if target == nil || hand < 0 || hand >= len(player.Hand) {
		return 0, false
	}
	stage2, isPokemon := player.Hand[hand].(*PokemonCard)
	if !isPokemon || stage2.Stage != Stage2 || !g.canRareCandyOnto(target, stage2) {
		return 0, false
	}
	candy := -1
	for i, c := range player.Hand {
		if tc, isTrainer := c.(*TrainerCard); isTrainer && tc.Effect == TrainerRareCandy && i != hand {
			candy = i
			break
		}
	}
	if candy < 0 {
		return 0, false
	}

	// Remove the higher index first so the lower one stays valid.
	hi, lo := candy, hand
	if lo > hi {
		hi, lo = lo, hi
	}
	candyCard := player.Hand[candy]
	player.RemoveFromHand(hi)
	player.RemoveFromHand(lo)
	player.Discard = append(player.Discard, candyCard)

	from := target.Def.Name
	target.Evolve(stage2)
	g.log(log.NewEvolveEvent(g.TurnCount, player.Index, from, stage2.Name))
	g.updateBenchLimits()
	reward := rewardEvolve + 0.03
	reward += g.triggerEvolutionAbilities(player, target)
	return reward, true
}

func (g *Game) handleAttachEnergy(player *Player, target *PokemonInstance, hand int) bool {
	if target == nil || player.AttachedEnergy || hand < 0 || hand >= len(player.Hand) {
		return false
	}
	energy, isEnergy := player.Hand[hand].(*EnergyCard)
	if !isEnergy {
		return false
	}
	player.RemoveFromHand(hand)
	target.Energy = append(target.Energy, energy)
	player.AttachedEnergy = true
	g.log(log.NewAttachEnergyEvent(g.TurnCount, player.Index, energy.Name, target.Def.Name))
	return true
}

func (g *Game) handleRetreat(player *Player, bench int) bool {
	// With an empty active slot the retreat range promotes instead.
	if player.Active == nil {
		if bench < 0 || bench >= len(player.Bench) {
			return false
		}
		inst := player.PromoteFromBench(bench)
		g.log(log.NewPromoteEvent(g.TurnCount, player.Index, inst.Def.Name))
		return true
	}

	if bench < 0 || bench >= len(player.Bench) {
		return false
	}
	active := player.Active
	if active.CantRetreatUntil >= g.TurnCount {
		return false
	}
	cost := g.retreatCost(player, active)
	if active.TotalEnergy() < cost {
		return false
	}
	player.Discard = appendCards(player.Discard, active.RemoveEnergy(cost))
	from := active.Def.Name
	player.SwitchActive(bench)
	g.log(log.NewRetreatEvent(g.TurnCount, player.Index, from, player.Active.Def.Name))
	return true
}

func appendCards(dst []Card, energy []*EnergyCard) []Card {
	for _, e := range energy {
		dst = append(dst, e)
	}
	return dst
}

// handleKnockOut discards the knocked-out Pokémon with all attachments,
// awards prizes, and runs the immediate terminal checks. Self-KO costs
// award no prize. prizeCount overrides the printed prize value when >= 0.
func (g *Game) handleKnockOut(owner *Player, inst *PokemonInstance, prizeCount int, selfKO bool) float64 {
	taker := g.Players[1-owner.Index]
	if prizeCount < 0 {
		prizeCount = inst.Def.PrizeValue()
	}

	owner.LastKOTurn = g.TurnCount
	g.log(log.NewKnockOutEvent(g.TurnCount, owner.Index, inst.Def.Name))
	owner.DiscardPokemon(inst)

	reward := 0.0
	if !selfKO {
		taken := taker.TakePrizes(prizeCount)
		g.log(log.NewPrizeEvent(g.TurnCount, taker.Index, prizeCount, taken))
		reward = rewardPerPrize * float64(taken)

		if taker.PrizesTaken >= PrizeTarget || len(taker.Prizes) == 0 {
			g.Done = true
			g.Winner = taker.Index
			g.log(log.NewWinEvent(g.TurnCount, taker.Index, "all prizes taken"))
			return rewardWin
		}
	}

	if owner.Active == nil && len(owner.Bench) == 0 {
		g.Done = true
		g.Winner = 1 - owner.Index
		g.log(log.NewWinEvent(g.TurnCount, g.Winner, "opponent has no Pokemon left"))
		if reward < rewardBoardWipe {
			reward = rewardBoardWipe
		}
		return reward
	}

	// Auto-promote a replacement.
	if owner.Active == nil && len(owner.Bench) > 0 {
		promoted := owner.PromoteFromBench(0)
		g.log(log.NewPromoteEvent(g.TurnCount, owner.Index, promoted.Def.Name))
	}
	return reward
}

// sweepKnockOuts clears every in-play Pokémon the player has at or below
// zero HP. It re-scans after each removal so a dead replacement promoted
// mid-sweep is caught as well.
func (g *Game) sweepKnockOuts(owner *Player) float64 {
	reward := 0.0
	for !g.Done {
		var dead *PokemonInstance
		for _, inst := range owner.AllInPlay() {
			if inst.KnockedOut() {
				dead = inst
				break
			}
		}
		if dead == nil {
			break
		}
		reward += g.handleKnockOut(owner, dead, -1, false)
	}
	return reward
}
