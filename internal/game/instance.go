package game

// PokemonInstance is a Pokémon in play. It tracks mutable battle state on
// top of an immutable card definition. Evolving swaps Def and pushes the
// previous definition onto Evolution; damage carries over.
type PokemonInstance struct {
	Def         *PokemonCard
	DamageTaken int
	Energy      []*EnergyCard
	Tool        *TrainerCard
	Evolution   []*PokemonCard // pre-evolution cards, oldest first

	PlayedThisTurn  bool
	EvolvedThisTurn bool

	// CantAttackUntil / CantRetreatUntil block the action while the game
	// turn counter is <= the stored value. Zero means unrestricted.
	CantAttackUntil  int
	CantRetreatUntil int

	// ProtectedFromEX prevents all damage from opposing Pokémon ex until
	// the owner's next turn begins.
	ProtectedFromEX bool
}

func NewPokemonInstance(def *PokemonCard) *PokemonInstance {
	return &PokemonInstance{Def: def}
}

// HP returns remaining hit points.
func (p *PokemonInstance) HP() int {
	hp := p.Def.HP - p.DamageTaken
	if hp < 0 {
		return 0
	}
	return hp
}

func (p *PokemonInstance) KnockedOut() bool {
	return p.DamageTaken >= p.Def.HP
}

// TakeDamage applies attack damage after modifiers.
func (p *PokemonInstance) TakeDamage(amount int) {
	if amount < 0 {
		amount = 0
	}
	p.DamageTaken += amount
}

// PutDamageCounters places n damage counters (10 damage each). Counter
// placement bypasses Weakness and Resistance.
func (p *PokemonInstance) PutDamageCounters(n int) {
	if n < 0 {
		n = 0
	}
	p.DamageTaken += n * 10
}

// Counters returns the number of damage counters on this Pokémon.
func (p *PokemonInstance) Counters() int {
	return p.DamageTaken / 10
}

// Heal removes up to amount damage.
func (p *PokemonInstance) Heal(amount int) {
	p.DamageTaken -= amount
	if p.DamageTaken < 0 {
		p.DamageTaken = 0
	}
}

// Evolve replaces the definition with the evolution, keeping damage taken.
func (p *PokemonInstance) Evolve(into *PokemonCard) {
	p.Evolution = append(p.Evolution, p.Def)
	p.Def = into
	p.EvolvedThisTurn = true
	// Evolving ends lingering attack effects on this Pokémon.
	p.CantAttackUntil = 0
	p.CantRetreatUntil = 0
}

// EnergyCounts sums attached energy by provided type. Special energies that
// provide Colorless count under EnergyColorless. The returned anyCount is
// the number of attached cards that can pay for any one type (Luminous
// Energy when it is the only special energy attached).
func (p *PokemonInstance) EnergyCounts() (map[EnergyType]int, int) {
	counts := make(map[EnergyType]int)
	anyCount := 0
	specials := 0
	for _, e := range p.Energy {
		if e.Special {
			specials++
		}
	}
	for _, e := range p.Energy {
		switch e.Effect {
		case EnergyLuminous:
			// Provides every type only while it is the sole special
			// energy attached.
			if specials == 1 {
				anyCount++
			} else {
				counts[EnergyColorless]++
			}
		case EnergyJet:
			counts[EnergyColorless]++
		default:
			counts[e.Type]++
		}
	}
	return counts, anyCount
}

// CanPayCost reports whether attached energy can cover the given cost.
// Typed requirements are paid first, with any-type energy covering
// shortfalls, then Colorless requirements from whatever remains.
func (p *PokemonInstance) CanPayCost(cost map[EnergyType]int) bool {
	counts, anyCount := p.EnergyCounts()
	remaining := 0
	for t, n := range counts {
		if t != EnergyColorless {
			remaining += n
		}
	}
	remaining += counts[EnergyColorless]

	for t, need := range cost {
		if t == EnergyColorless {
			continue
		}
		have := counts[t]
		if have < need {
			short := need - have
			if anyCount < short {
				return false
			}
			anyCount -= short
			remaining -= have
		} else {
			remaining -= need
		}
	}
	remaining += anyCount
	return remaining >= cost[EnergyColorless]
}

// CanUseAttack reports whether attack i is payable and not blocked.
func (p *PokemonInstance) CanUseAttack(i, turn int) bool {
	if i < 0 || i >= len(p.Def.Attacks) {
		return false
	}
	if p.CantAttackUntil >= turn {
		return false
	}
	return p.CanPayCost(p.Def.Attacks[i].Cost)
}

// EffectiveRetreatCost applies tool modifiers.
func (p *PokemonInstance) EffectiveRetreatCost() int {
	cost := p.Def.RetreatCost
	if p.Tool != nil && p.Tool.Effect == TrainerAirBalloon {
		cost -= 2
	}
	if cost < 0 {
		cost = 0
	}
	return cost
}

// HasAbility reports whether the current definition has the given ability.
func (p *PokemonInstance) HasAbility(effect AbilityEffect) bool {
	for _, a := range p.Def.Abilities {
		if a.Effect == effect {
			return true
		}
	}
	return false
}

// AbilityNamed returns the ability with the given effect, if present.
func (p *PokemonInstance) AbilityNamed(effect AbilityEffect) (Ability, bool) {
	for _, a := range p.Def.Abilities {
		if a.Effect == effect {
			return a, true
		}
	}
	return Ability{}, false
}

// TotalEnergy returns the number of attached energy cards.
func (p *PokemonInstance) TotalEnergy() int {
	return len(p.Energy)
}

// RemoveEnergy detaches up to n energy cards and returns them.
func (p *PokemonInstance) RemoveEnergy(n int) []*EnergyCard {
	if n > len(p.Energy) {
		n = len(p.Energy)
	}
	removed := p.Energy[len(p.Energy)-n:]
	p.Energy = p.Energy[:len(p.Energy)-n]
	return removed
}

// RemoveEnergyOfType detaches one attached energy whose printed type
// matches t, returning it, or nil if none is attached.
func (p *PokemonInstance) RemoveEnergyOfType(t EnergyType) *EnergyCard {
	for i, e := range p.Energy {
		if e.Type == t && !e.Special {
			p.Energy = append(p.Energy[:i], p.Energy[i+1:]...)
			return e
		}
	}
	return nil
}

// AllCards returns every physical card in this stack: evolution chain,
// current definition, attached energy, and tool.
func (p *PokemonInstance) AllCards() []Card {
	var cards []Card
	for _, pre := range p.Evolution {
		cards = append(cards, pre)
	}
	cards = append(cards, p.Def)
	for _, e := range p.Energy {
		cards = append(cards, e)
	}
	if p.Tool != nil {
		cards = append(cards, p.Tool)
	}
	return cards
}
