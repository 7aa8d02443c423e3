package game

// --- Enums ---

type EnergyType int

const (
	EnergyNone EnergyType = iota
	EnergyGrass
	EnergyFire
	EnergyWater
	EnergyLightning
	EnergyPsychic
	EnergyFighting
	EnergyDarkness
	EnergyMetal
	EnergyDragon
	EnergyColorless
)

func (t EnergyType) String() string {
	switch t {
	case EnergyGrass:
		return "Grass"
	case EnergyFire:
		return "Fire"
	case EnergyWater:
		return "Water"
	case EnergyLightning:
		return "Lightning"
	case EnergyPsychic:
		return "Psychic"
	case EnergyFighting:
		return "Fighting"
	case EnergyDarkness:
		return "Darkness"
	case EnergyMetal:
		return "Metal"
	case EnergyDragon:
		return "Dragon"
	case EnergyColorless:
		return "Colorless"
	default:
		return "None"
	}
}

type Stage int

const (
	StageBasic Stage = iota
	Stage1
	Stage2
)

func (s Stage) String() string {
	switch s {
	case Stage1:
		return "Stage 1"
	case Stage2:
		return "Stage 2"
	default:
		return "Basic"
	}
}

type TrainerKind int

const (
	TrainerItem TrainerKind = iota
	TrainerSupporter
	TrainerStadium
	TrainerTool
)

func (k TrainerKind) String() string {
	switch k {
	case TrainerSupporter:
		return "Supporter"
	case TrainerStadium:
		return "Stadium"
	case TrainerTool:
		return "Pokemon Tool"
	default:
		return "Item"
	}
}

// Tag marks rule-box and archetype subtypes. Tags drive prize value and a
// handful of rule interactions; they are not card types.
type Tag int

const (
	TagEX Tag = iota
	TagTera
	TagAncient
	TagMega
	TagACESpec
)

// --- Effect identifiers ---
//
// Every special behavior in the resolver is keyed by one of these closed
// enums and dispatched with an exhaustive switch. Adding a card effect means
// adding an enum value and a switch arm.

type AttackEffect int

const (
	AttackPlain AttackEffect = iota
	AttackBurningDarkness
	AttackBellowingThunder
	AttackPhantomDive
	AttackMyriadLeafShower
	AttackBurstRoar
	AttackUnifiedBeatdown
	AttackCrownOpal
	AttackCruelArrow
	AttackThunderburstStorm
	AttackGenomeHacking
	AttackEonBlade
	AttackRapidFireCombo
	AttackMegafireOfEnvy
	AttackFlareBringer
	AttackShadowBind
	AttackBlusteryWind
	AttackBlazingDestruction
	AttackAssaultLanding
	AttackTripleStab
	AttackCallForFamily
)

type AbilityEffect int

const (
	AbilityNone AbilityEffect = iota
	AbilityInfernalReign
	AbilityJewelSeeker
	AbilityReconDirective
	AbilityTealDance
	AbilityFanCall
	AbilityFlipTheScript
	AbilityQuickSearch
	AbilityRunErrand
	AbilityRestart
	AbilityCursedBlast
	AbilityAdrenaBrain
	AbilityMischievousLock
	AbilityFlyingEntry
	AbilityTransformativeStart
	AbilitySkyliner
)

type TrainerEffect int

const (
	TrainerEffectNone TrainerEffect = iota
	TrainerBossOrders
	TrainerIono
	TrainerDawn
	TrainerLilliesDetermination
	TrainerCrispin
	TrainerSadaVitality
	TrainerBriar
	TrainerAcerolaMischief
	TrainerTuroScenario
	TrainerRareCandy
	TrainerBuddyBuddyPoffin
	TrainerNestBall
	TrainerUltraBall
	TrainerNightStretcher
	TrainerSuperRod
	TrainerPrimeCatcher
	TrainerCounterCatcher
	TrainerUnfairStamp
	TrainerEarthenVessel
	TrainerEnergySwitch
	TrainerGlassTrumpet
	TrainerAirBalloon
	TrainerVitalityBand
	TrainerTMEvolution
	TrainerAreaZeroUnderdepths
	TrainerArtazon
)

type EnergyEffect int

const (
	EnergyEffectNone EnergyEffect = iota
	EnergyJet
	EnergyLuminous
)

// --- Attack and Ability ---

// Attack is a single attack printed on a Pokémon card. Cost maps energy type
// to required count; an EnergyColorless entry means "any type, this many".
type Attack struct {
	Name   string
	Cost   map[EnergyType]int
	Damage int // base damage; 0 if fully effect-driven
	Effect AttackEffect
}

type Ability struct {
	Name   string
	Effect AbilityEffect
}

// --- Card definitions (immutable, shared by reference) ---

// Card is a physical card: Pokémon, Trainer, or Energy.
type Card interface {
	CardID() string
	CardName() string
}

type PokemonCard struct {
	ID            string
	Name          string
	HP            int
	Types         []EnergyType
	Weakness      EnergyType // EnergyNone if none
	WeaknessMult  int
	Resistance    EnergyType // EnergyNone if none
	ResistanceVal int
	RetreatCost   int
	Attacks       []Attack
	Abilities     []Ability
	Stage         Stage
	EvolvesFrom   string // name of pre-evolution
	Tags          []Tag
}

func (c *PokemonCard) CardID() string   { return c.ID }
func (c *PokemonCard) CardName() string { return c.Name }

func (c *PokemonCard) HasTag(t Tag) bool {
	for _, tag := range c.Tags {
		if tag == t {
			return true
		}
	}
	return false
}

func (c *PokemonCard) IsEX() bool      { return c.HasTag(TagEX) }
func (c *PokemonCard) IsTera() bool    { return c.HasTag(TagTera) }
func (c *PokemonCard) IsAncient() bool { return c.HasTag(TagAncient) }
func (c *PokemonCard) IsMega() bool    { return c.HasTag(TagMega) }
func (c *PokemonCard) IsBasic() bool   { return c.Stage == StageBasic }

// PrizeValue returns how many Prize cards the opponent takes when this
// Pokémon is Knocked Out.
func (c *PokemonCard) PrizeValue() int {
	if c.IsMega() {
		return 3
	}
	if c.IsEX() {
		return 2
	}
	return 1
}

// HasType reports whether the card has the given elemental type.
func (c *PokemonCard) HasType(t EnergyType) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

type TrainerCard struct {
	ID     string
	Name   string
	Kind   TrainerKind
	Effect TrainerEffect
	Tags   []Tag
}

func (c *TrainerCard) CardID() string   { return c.ID }
func (c *TrainerCard) CardName() string { return c.Name }

func (c *TrainerCard) IsACESpec() bool {
	for _, tag := range c.Tags {
		if tag == TagACESpec {
			return true
		}
	}
	return false
}

type EnergyCard struct {
	ID      string
	Name    string
	Type    EnergyType
	Special bool
	Effect  EnergyEffect
}

func (c *EnergyCard) CardID() string   { return c.ID }
func (c *EnergyCard) CardName() string { return c.Name }
