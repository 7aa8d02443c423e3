package game

// The action space is a dense, static integer layout. Each range is sized by
// the maximum hand and bench capacity so ids stay stable regardless of the
// actual zone sizes. External consumers depend on this layout; changing it
// breaks recorded action streams.
const (
	MaxHand       = 10
	MaxBenchSlots = 8
	MaxAttacks    = 2

	PlayCardBase        = 0                                          // 0..9
	EvolveActiveBase    = PlayCardBase + MaxHand                     // 10..19
	EvolveBenchBase     = EvolveActiveBase + MaxHand                 // 20..99
	EnergyActiveBase    = EvolveBenchBase + MaxHand*MaxBenchSlots    // 100..109
	EnergyBenchBase     = EnergyActiveBase + MaxHand                 // 110..189
	AttackBase          = EnergyBenchBase + MaxHand*MaxBenchSlots    // 190..191
	RetreatBase         = AttackBase + MaxAttacks                    // 192..199
	EndTurn             = RetreatBase + MaxBenchSlots                // 200
	RareCandyActiveBase = EndTurn + 1                                // 201..210
	RareCandyBenchBase  = RareCandyActiveBase + MaxHand              // 211..290
	AbilityActive       = RareCandyBenchBase + MaxHand*MaxBenchSlots // 291
	AbilityBenchBase    = AbilityActive + 1                          // 292..299
	CopyAttackBase      = AbilityBenchBase + MaxBenchSlots           // 300..301
	NumActions          = CopyAttackBase + MaxAttacks                // 302
)

type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandPlayCard
	CommandEvolveActive
	CommandEvolveBench
	CommandEnergyActive
	CommandEnergyBench
	CommandAttack
	CommandRetreat
	CommandEndTurn
	CommandRareCandyActive
	CommandRareCandyBench
	CommandAbilityActive
	CommandAbilityBench
	CommandCopyAttack
)

// Command is a decoded action id: an operation plus operand indices. Unused
// index fields are -1.
type Command struct {
	Kind   CommandKind
	Hand   int
	Bench  int
	Attack int
}

// Decode maps an action id to its command. Ids outside the space decode to
// CommandUnknown.
func Decode(id int) Command {
	cmd := Command{Kind: CommandUnknown, Hand: -1, Bench: -1, Attack: -1}
	if id < 0 || id >= NumActions {
		return cmd
	}
	switch {
	case id < EvolveActiveBase:
		cmd.Kind = CommandPlayCard
		cmd.Hand = id - PlayCardBase
	case id < EvolveBenchBase:
		cmd.Kind = CommandEvolveActive
		cmd.Hand = id - EvolveActiveBase
	case id < EnergyActiveBase:
		r := id - EvolveBenchBase
		cmd.Kind = CommandEvolveBench
		cmd.Hand = r / MaxBenchSlots
		cmd.Bench = r % MaxBenchSlots
	case id < EnergyBenchBase:
		cmd.Kind = CommandEnergyActive
		cmd.Hand = id - EnergyActiveBase
	case id < AttackBase:
		r := id - EnergyBenchBase
		cmd.Kind = CommandEnergyBench
		cmd.Hand = r / MaxBenchSlots
		cmd.Bench = r % MaxBenchSlots
	case id < RetreatBase:
		cmd.Kind = CommandAttack
		cmd.Attack = id - AttackBase
	case id < EndTurn:
		cmd.Kind = CommandRetreat
		cmd.Bench = id - RetreatBase
	case id == EndTurn:
		cmd.Kind = CommandEndTurn
	case id < RareCandyBenchBase:
		cmd.Kind = CommandRareCandyActive
		cmd.Hand = id - RareCandyActiveBase
	case id < AbilityActive:
		r := id - RareCandyBenchBase
		cmd.Kind = CommandRareCandyBench
		cmd.Hand = r / MaxBenchSlots
		cmd.Bench = r % MaxBenchSlots
	case id == AbilityActive:
		cmd.Kind = CommandAbilityActive
	case id < CopyAttackBase:
		cmd.Kind = CommandAbilityBench
		cmd.Bench = id - AbilityBenchBase
	case id < NumActions:
		cmd.Kind = CommandCopyAttack
		cmd.Attack = id - CopyAttackBase
	}
	return cmd
}

func encodeEvolveBench(hand, bench int) int { return EvolveBenchBase + hand*MaxBenchSlots + bench }
func encodeEnergyBench(hand, bench int) int { return EnergyBenchBase + hand*MaxBenchSlots + bench }
func encodeCandyBench(hand, bench int) int  { return RareCandyBenchBase + hand*MaxBenchSlots + bench }

// LegalActions returns the ordered set of currently legal action ids for the
// player to move. Callers must re-query after every Step; the set changes
// mid-turn.
func (g *Game) LegalActions() []int {
	if g.Done {
		return nil
	}
	player := g.CurrentPlayer()
	opponent := g.Opponent()

	// A pending copy-attack decision pre-empts the normal menu.
	if g.PendingCopyAttack {
		var actions []int
		if opp := opponent.Active; opp != nil {
			for i, atk := range opp.Def.Attacks {
				if i >= MaxAttacks {
					break
				}
				// Copying a copy-effect would recurse.
				if atk.Effect == AttackGenomeHacking {
					continue
				}
				actions = append(actions, CopyAttackBase+i)
			}
		}
		actions = append(actions, EndTurn)
		return actions
	}

	if g.HasAttacked {
		return []int{EndTurn}
	}

	// With no active Pokémon the player promotes from the bench, encoded in
	// the retreat range. With an empty bench a Basic from hand goes straight
	// into the Active Spot instead.
	if player.Active == nil {
		var actions []int
		for i := range player.Bench {
			if i >= MaxBenchSlots {
				break
			}
			actions = append(actions, RetreatBase+i)
		}
		if len(actions) == 0 {
			handLimit := len(player.Hand)
			if handLimit > MaxHand {
				handLimit = MaxHand
			}
			for hi := 0; hi < handLimit; hi++ {
				if pc, ok := player.Hand[hi].(*PokemonCard); ok && pc.IsBasic() {
					actions = append(actions, PlayCardBase+hi)
				}
			}
		}
		if len(actions) == 0 {
			actions = []int{EndTurn}
		}
		return actions
	}

	var actions []int
	handLimit := len(player.Hand)
	if handLimit > MaxHand {
		handLimit = MaxHand
	}
	benchLimit := len(player.Bench)
	if benchLimit > MaxBenchSlots {
		benchLimit = MaxBenchSlots
	}

	hasRareCandy := false
	for _, c := range player.Hand {
		if tc, ok := c.(*TrainerCard); ok && tc.Effect == TrainerRareCandy {
			hasRareCandy = true
			break
		}
	}

	for hi := 0; hi < handLimit; hi++ {
		switch card := player.Hand[hi].(type) {
		case *PokemonCard:
			if card.IsBasic() && player.BenchHasRoom() {
				actions = append(actions, PlayCardBase+hi)
			}
			if card.Stage != StageBasic && !g.firstTurnForBoth() {
				if g.canEvolveOnto(player, player.Active, card) {
					actions = append(actions, EvolveActiveBase+hi)
				}
				for bi := 0; bi < benchLimit; bi++ {
					if g.canEvolveOnto(player, player.Bench[bi], card) {
						actions = append(actions, encodeEvolveBench(hi, bi))
					}
				}
			}
			if hasRareCandy && card.Stage == Stage2 && !g.firstTurnForBoth() {
				if g.canRareCandyOnto(player.Active, card) {
					actions = append(actions, RareCandyActiveBase+hi)
				}
				for bi := 0; bi < benchLimit; bi++ {
					if g.canRareCandyOnto(player.Bench[bi], card) {
						actions = append(actions, encodeCandyBench(hi, bi))
					}
				}
			}
		case *TrainerCard:
			if g.canPlayTrainer(player, opponent, card) {
				actions = append(actions, PlayCardBase+hi)
			}
		case *EnergyCard:
			if !player.AttachedEnergy {
				actions = append(actions, EnergyActiveBase+hi)
				for bi := 0; bi < benchLimit; bi++ {
					actions = append(actions, encodeEnergyBench(hi, bi))
				}
			}
		}
	}

	// Attacks are barred on the game's very first turn.
	if g.TurnCount > 1 {
		for i := range player.Active.Def.Attacks {
			if i >= MaxAttacks {
				break
			}
			if player.Active.CanUseAttack(i, g.TurnCount) {
				actions = append(actions, AttackBase+i)
			}
		}
	}

	if g.canRetreat(player) {
		for i := 0; i < benchLimit; i++ {
			actions = append(actions, RetreatBase+i)
		}
	}

	if g.canUseAbility(player, opponent, player.Active) {
		actions = append(actions, AbilityActive)
	}
	for i := 0; i < benchLimit; i++ {
		if g.canUseAbility(player, opponent, player.Bench[i]) {
			actions = append(actions, AbilityBenchBase+i)
		}
	}

	actions = append(actions, EndTurn)
	return actions
}

// firstTurnForBoth reports whether the game is still inside either player's
// first turn, during which no evolution may happen.
func (g *Game) firstTurnForBoth() bool {
	return g.TurnCount <= 2
}

func (g *Game) canEvolveOnto(player *Player, target *PokemonInstance, card *PokemonCard) bool {
	if target == nil || target.PlayedThisTurn || target.EvolvedThisTurn {
		return false
	}
	if card.EvolvesFrom == target.Def.Name {
		return true
	}
	// Transformative Start lets the holder evolve into any Stage 1.
	return target.HasAbility(AbilityTransformativeStart) && card.Stage == Stage1
}

func (g *Game) canRareCandyOnto(target *PokemonInstance, stage2 *PokemonCard) bool {
	if target == nil || target.PlayedThisTurn || target.EvolvedThisTurn {
		return false
	}
	if !target.Def.IsBasic() {
		return false
	}
	return g.registry.ChainsToBasic(stage2.Name, target.Def.Name)
}

func (g *Game) canRetreat(player *Player) bool {
	active := player.Active
	if active == nil || len(player.Bench) == 0 {
		return false
	}
	if active.CantRetreatUntil >= g.TurnCount {
		return false
	}
	return active.TotalEnergy() >= g.retreatCost(player, active)
}

// retreatCost applies tool and passive-ability modifiers.
func (g *Game) retreatCost(player *Player, inst *PokemonInstance) int {
	if inst.Def.IsBasic() {
		for _, p := range player.AllInPlay() {
			if p.HasAbility(AbilitySkyliner) {
				return 0
			}
		}
	}
	return inst.EffectiveRetreatCost()
}

// canPlayTrainer evaluates a trainer card's precondition without mutating
// any state.
func (g *Game) canPlayTrainer(player, opponent *Player, card *TrainerCard) bool {
	switch card.Kind {
	case TrainerSupporter:
		if player.PlayedSupporter {
			return false
		}
	case TrainerStadium:
		if player.PlayedStadium {
			return false
		}
		if g.Stadium != nil && g.Stadium.Name == card.Name {
			return false
		}
		return true
	case TrainerTool:
		for _, p := range player.AllInPlay() {
			if p.Tool == nil {
				return true
			}
		}
		return false
	}

	switch card.Effect {
	case TrainerBossOrders, TrainerCounterCatcher, TrainerPrimeCatcher:
		if len(opponent.Bench) == 0 {
			return false
		}
		if card.Effect == TrainerCounterCatcher && player.PrizesTaken >= opponent.PrizesTaken {
			return false
		}
		if card.Effect == TrainerPrimeCatcher && len(player.Bench) == 0 {
			return false
		}
	case TrainerRareCandy:
		// Only playable through the dedicated rare-candy action range.
		return false
	case TrainerUltraBall:
		return len(player.Hand) >= 3 // the card itself plus two to discard
	case TrainerEarthenVessel:
		return len(player.Hand) >= 2
	case TrainerUnfairStamp:
		return player.LastKOTurn == g.TurnCount-1
	case TrainerBriar:
		return len(opponent.Prizes) == 2
	case TrainerNestBall, TrainerBuddyBuddyPoffin:
		return player.BenchHasRoom()
	case TrainerTuroScenario:
		return len(player.Bench) > 0
	case TrainerAcerolaMischief:
		return player.Active != nil
	case TrainerNightStretcher, TrainerSuperRod, TrainerSadaVitality, TrainerGlassTrumpet:
		return len(player.Discard) > 0
	case TrainerEnergySwitch:
		if player.Active == nil {
			return false
		}
		for _, p := range player.Bench {
			if p.TotalEnergy() > 0 {
				return true
			}
		}
		return false
	}
	return true
}

// canUseAbility reports whether the Pokémon has a manually triggered ability
// whose precondition currently holds. Passive and auto-triggered abilities
// never appear in the legal set.
func (g *Game) canUseAbility(player, opponent *Player, inst *PokemonInstance) bool {
	if inst == nil || len(inst.Def.Abilities) == 0 {
		return false
	}
	ab := inst.Def.Abilities[0]
	if player.UsedAbilities[ab.Effect] {
		return false
	}
	// Mischievous Lock shuts off Basic Pokémon abilities while either
	// active has it.
	if inst.Def.IsBasic() && g.abilityLockActive() && ab.Effect != AbilityMischievousLock {
		return false
	}

	switch ab.Effect {
	case AbilityTealDance:
		return player.HasBasicEnergyInHand(EnergyGrass)
	case AbilityFanCall:
		return g.TurnCount <= 2 && len(player.Deck) > 0
	case AbilityFlipTheScript:
		return player.LastKOTurn == g.TurnCount-1 && len(player.Deck) > 0
	case AbilityQuickSearch, AbilityRunErrand:
		return len(player.Deck) > 0
	case AbilityRestart:
		return len(player.Hand) < 3 && len(player.Deck) > 0
	case AbilityCursedBlast:
		return opponent.Active != nil
	case AbilityAdrenaBrain:
		if opponent.Active == nil {
			return false
		}
		for _, p := range player.AllInPlay() {
			if p.Counters() > 0 {
				return true
			}
		}
		return false
	}
	return false
}

// abilityLockActive reports whether either player's active Pokémon carries
// the lock ability.
func (g *Game) abilityLockActive() bool {
	for _, p := range g.Players {
		if p.Active != nil && p.Active.HasAbility(AbilityMischievousLock) {
			return true
		}
	}
	return false
}
