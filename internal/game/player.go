package game

import (
	"math/rand"
)

const (
	HandLimit       = 10
	DefaultMaxBench = 5
	StartingHand    = 7
	PrizeCount      = 6
)

// Player holds one side's zones and per-turn state.
type Player struct {
	Index   int
	Deck    []Card
	Hand    []Card
	Active  *PokemonInstance
	Bench   []*PokemonInstance
	Prizes  []Card
	Discard []Card

	PrizesTaken int
	MaxBench    int

	// Per-turn flags, reset by StartTurn.
	AttachedEnergy  bool
	PlayedSupporter bool
	PlayedStadium   bool
	UsedAbilities   map[AbilityEffect]bool
	LastKOTurn      int // game turn on which this player last had a Pokémon KO'd

	rng *rand.Rand
}

func NewPlayer(index int, deck []Card, rng *rand.Rand) *Player {
	return &Player{
		Index:         index,
		Deck:          deck,
		MaxBench:      DefaultMaxBench,
		UsedAbilities: make(map[AbilityEffect]bool),
		LastKOTurn:    -1,
		rng:           rng,
	}
}

func (p *Player) Shuffle() {
	p.rng.Shuffle(len(p.Deck), func(i, j int) {
		p.Deck[i], p.Deck[j] = p.Deck[j], p.Deck[i]
	})
}

// Draw moves up to n cards from deck to hand. It returns the number drawn
// and false if the deck ran out before the full draw, which loses the game
// when it happens on the mandatory turn draw.
func (p *Player) Draw(n int) (int, bool) {
	drawn := 0
	for i := 0; i < n; i++ {
		if len(p.Deck) == 0 {
			return drawn, false
		}
		p.Hand = append(p.Hand, p.Deck[0])
		p.Deck = p.Deck[1:]
		drawn++
	}
	return drawn, true
}

// HasBasicEnergyInHand reports whether the hand holds a basic energy of the
// given type.
func (p *Player) HasBasicEnergyInHand(t EnergyType) bool {
	for _, c := range p.Hand {
		if ec, ok := c.(*EnergyCard); ok && !ec.Special && ec.Type == t {
			return true
		}
	}
	return false
}

// HasBasicInHand reports whether the hand contains a Basic Pokémon.
func (p *Player) HasBasicInHand() bool {
	for _, c := range p.Hand {
		if pc, ok := c.(*PokemonCard); ok && pc.IsBasic() {
			return true
		}
	}
	return false
}

// Setup shuffles, draws the opening hand with mulligan retries, and sets
// aside prizes. Returns the number of mulligans taken.
func (p *Player) Setup(shuffle bool) int {
	mulligans := 0
	for {
		if shuffle {
			p.Shuffle()
		}
		p.Draw(StartingHand)
		if p.HasBasicInHand() || mulligans >= 10 {
			break
		}
		// Return hand to deck and try again.
		p.Deck = append(p.Deck, p.Hand...)
		p.Hand = nil
		mulligans++
	}
	for i := 0; i < PrizeCount && len(p.Deck) > 0; i++ {
		p.Prizes = append(p.Prizes, p.Deck[0])
		p.Deck = p.Deck[1:]
	}
	return mulligans
}

// RemoveFromHand removes and returns the card at hand index i.
func (p *Player) RemoveFromHand(i int) Card {
	c := p.Hand[i]
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	return c
}

// PokemonAt returns the hand card at i if it is a Pokémon.
func (p *Player) PokemonAt(i int) (*PokemonCard, bool) {
	if i < 0 || i >= len(p.Hand) {
		return nil, false
	}
	pc, ok := p.Hand[i].(*PokemonCard)
	return pc, ok
}

// TrainerAt returns the hand card at i if it is a Trainer.
func (p *Player) TrainerAt(i int) (*TrainerCard, bool) {
	if i < 0 || i >= len(p.Hand) {
		return nil, false
	}
	tc, ok := p.Hand[i].(*TrainerCard)
	return tc, ok
}

// EnergyAt returns the hand card at i if it is an Energy.
func (p *Player) EnergyAt(i int) (*EnergyCard, bool) {
	if i < 0 || i >= len(p.Hand) {
		return nil, false
	}
	ec, ok := p.Hand[i].(*EnergyCard)
	return ec, ok
}

// PlaceActive puts the Basic at hand index i into the Active Spot.
func (p *Player) PlaceActive(i int) *PokemonInstance {
	pc, _ := p.PokemonAt(i)
	p.RemoveFromHand(i)
	inst := NewPokemonInstance(pc)
	inst.PlayedThisTurn = true
	p.Active = inst
	return inst
}

// PlaceBench puts the Basic at hand index i onto the Bench.
func (p *Player) PlaceBench(i int) *PokemonInstance {
	pc, _ := p.PokemonAt(i)
	p.RemoveFromHand(i)
	inst := NewPokemonInstance(pc)
	inst.PlayedThisTurn = true
	p.Bench = append(p.Bench, inst)
	return inst
}

// PlaceBenchCard benches a Basic taken from a zone other than the hand.
func (p *Player) PlaceBenchCard(pc *PokemonCard) *PokemonInstance {
	inst := NewPokemonInstance(pc)
	inst.PlayedThisTurn = true
	p.Bench = append(p.Bench, inst)
	return inst
}

// BenchHasRoom reports whether a Pokémon can be benched.
func (p *Player) BenchHasRoom() bool {
	return len(p.Bench) < p.MaxBench
}

// InstanceAt maps a target index to a Pokémon in play: 0 is the Active
// Spot, 1..MaxBench are bench slots.
func (p *Player) InstanceAt(target int) *PokemonInstance {
	if target == 0 {
		return p.Active
	}
	bench := target - 1
	if bench < 0 || bench >= len(p.Bench) {
		return nil
	}
	return p.Bench[bench]
}

// AllInPlay returns the active and bench Pokémon, active first.
func (p *Player) AllInPlay() []*PokemonInstance {
	var all []*PokemonInstance
	if p.Active != nil {
		all = append(all, p.Active)
	}
	all = append(all, p.Bench...)
	return all
}

// HasTeraInPlay reports whether any in-play Pokémon is a Tera Pokémon.
func (p *Player) HasTeraInPlay() bool {
	for _, inst := range p.AllInPlay() {
		if inst.Def.IsTera() {
			return true
		}
	}
	return false
}

// TakePrizes moves up to n prize cards to the hand.
func (p *Player) TakePrizes(n int) int {
	taken := 0
	for i := 0; i < n && len(p.Prizes) > 0; i++ {
		p.Hand = append(p.Hand, p.Prizes[0])
		p.Prizes = p.Prizes[1:]
		taken++
	}
	p.PrizesTaken += taken
	return taken
}

// PromoteFromBench moves bench slot i to the Active Spot.
func (p *Player) PromoteFromBench(i int) *PokemonInstance {
	inst := p.Bench[i]
	p.Bench = append(p.Bench[:i], p.Bench[i+1:]...)
	p.Active = inst
	return inst
}

// SwitchActive swaps the active with bench slot i without paying costs.
func (p *Player) SwitchActive(i int) {
	old := p.Active
	p.Active = p.Bench[i]
	p.Bench[i] = old
}

// DiscardPokemon moves every card of an in-play stack to the discard pile
// and removes it from play.
func (p *Player) DiscardPokemon(inst *PokemonInstance) {
	p.Discard = append(p.Discard, inst.AllCards()...)
	if p.Active == inst {
		p.Active = nil
		return
	}
	for i, b := range p.Bench {
		if b == inst {
			p.Bench = append(p.Bench[:i], p.Bench[i+1:]...)
			return
		}
	}
}

// FindInDeck returns the deck index of the first card matching pred, or -1.
func (p *Player) FindInDeck(pred func(Card) bool) int {
	for i, c := range p.Deck {
		if pred(c) {
			return i
		}
	}
	return -1
}

// TakeFromDeck removes and returns the deck card at i.
func (p *Player) TakeFromDeck(i int) Card {
	c := p.Deck[i]
	p.Deck = append(p.Deck[:i], p.Deck[i+1:]...)
	return c
}

// FindInDiscard returns the discard index of the first card matching pred,
// or -1.
func (p *Player) FindInDiscard(pred func(Card) bool) int {
	for i, c := range p.Discard {
		if pred(c) {
			return i
		}
	}
	return -1
}

// TakeFromDiscard removes and returns the discard card at i.
func (p *Player) TakeFromDiscard(i int) Card {
	c := p.Discard[i]
	p.Discard = append(p.Discard[:i], p.Discard[i+1:]...)
	return c
}

// ReturnHandToDeck shuffles the hand back into the deck.
func (p *Player) ReturnHandToDeck(shuffle bool) {
	p.Deck = append(p.Deck, p.Hand...)
	p.Hand = nil
	if shuffle {
		p.Shuffle()
	}
}

// StartTurn resets per-turn state at the beginning of this player's turn.
func (p *Player) StartTurn() {
	p.AttachedEnergy = false
	p.PlayedSupporter = false
	p.PlayedStadium = false
	p.UsedAbilities = make(map[AbilityEffect]bool)
	for _, inst := range p.AllInPlay() {
		inst.PlayedThisTurn = false
		inst.EvolvedThisTurn = false
		inst.ProtectedFromEX = false
	}
}
