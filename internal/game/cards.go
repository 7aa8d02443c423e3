package game

// Card constructors. Each returns a fresh definition; definitions are
// immutable once built, so instances share them freely.

// --- Charizard line ---

// Charmander — Basic Fire. Blazing Destruction trades damage for stadium
// removal.
func Charmander() Card {
	return &PokemonCard{
		ID: "obf-026", Name: "Charmander", HP: 70,
		Types: []EnergyType{EnergyFire}, Weakness: EnergyWater, WeaknessMult: 2,
		RetreatCost: 1, Stage: StageBasic,
		Attacks: []Attack{
			{Name: "Heat Tackle", Cost: map[EnergyType]int{EnergyFire: 1}, Damage: 30},
			{Name: "Blazing Destruction", Cost: map[EnergyType]int{EnergyFire: 1}, Effect: AttackBlazingDestruction},
		},
	}
}

// Charmeleon — Stage 1 Fire. Flare Bringer recovers basic Fire energy from
// the discard pile onto the attacker.
func Charmeleon() Card {
	return &PokemonCard{
		ID: "pfl-012", Name: "Charmeleon", HP: 100,
		Types: []EnergyType{EnergyFire}, Weakness: EnergyWater, WeaknessMult: 2,
		RetreatCost: 2, Stage: Stage1, EvolvesFrom: "Charmander",
		Attacks: []Attack{
			{Name: "Combustion", Cost: map[EnergyType]int{EnergyFire: 1, EnergyColorless: 1}, Damage: 50},
			{Name: "Flare Bringer", Cost: map[EnergyType]int{EnergyFire: 1}, Effect: AttackFlareBringer},
		},
	}
}

// CharizardEx — Stage 2 Darkness, Tera. Infernal Reign attaches Fire energy
// from the deck on evolution; Burning Darkness grows with prizes taken by
// the opponent.
func CharizardEx() Card {
	return &PokemonCard{
		ID: "obf-125", Name: "Charizard ex", HP: 330,
		Types: []EnergyType{EnergyDarkness}, Weakness: EnergyGrass, WeaknessMult: 2,
		RetreatCost: 2, Stage: Stage2, EvolvesFrom: "Charmeleon",
		Tags: []Tag{TagEX, TagTera},
		Abilities: []Ability{
			{Name: "Infernal Reign", Effect: AbilityInfernalReign},
		},
		Attacks: []Attack{
			{Name: "Burning Darkness", Cost: map[EnergyType]int{EnergyFire: 2}, Damage: 180, Effect: AttackBurningDarkness},
		},
	}
}

// --- Noctowl line ---

// Hoothoot — Basic Colorless. Run Errand draws two cards once per turn.
func Hoothoot() Card {
	return &PokemonCard{
		ID: "scr-114", Name: "Hoothoot", HP: 70,
		Types: []EnergyType{EnergyColorless}, Weakness: EnergyLightning, WeaknessMult: 2,
		Resistance: EnergyFighting, ResistanceVal: 30,
		RetreatCost: 1, Stage: StageBasic,
		Abilities: []Ability{
			{Name: "Run Errand", Effect: AbilityRunErrand},
		},
		Attacks: []Attack{
			{Name: "Triple Stab", Cost: map[EnergyType]int{EnergyColorless: 1}, Effect: AttackTripleStab},
		},
	}
}

// Noctowl — Stage 1 Colorless. Jewel Seeker fetches trainers on evolution
// while a Tera Pokémon is in play.
func Noctowl() Card {
	return &PokemonCard{
		ID: "scr-115", Name: "Noctowl", HP: 100,
		Types: []EnergyType{EnergyColorless}, Weakness: EnergyLightning, WeaknessMult: 2,
		Resistance: EnergyFighting, ResistanceVal: 30,
		RetreatCost: 1, Stage: Stage1, EvolvesFrom: "Hoothoot",
		Abilities: []Ability{
			{Name: "Jewel Seeker", Effect: AbilityJewelSeeker},
		},
		Attacks: []Attack{
			{Name: "Speed Wing", Cost: map[EnergyType]int{EnergyColorless: 2}, Damage: 60},
		},
	}
}

// --- Dusknoir line ---

// Duskull — Basic Psychic.
func Duskull() Card {
	return &PokemonCard{
		ID: "pre-035", Name: "Duskull", HP: 60,
		Types: []EnergyType{EnergyPsychic}, Weakness: EnergyDarkness, WeaknessMult: 2,
		Resistance: EnergyFighting, ResistanceVal: 30,
		RetreatCost: 1, Stage: StageBasic,
		Attacks: []Attack{
			{Name: "Mumble", Cost: map[EnergyType]int{EnergyPsychic: 1}, Damage: 10},
		},
	}
}

// Dusclops — Stage 1 Psychic. Cursed Blast knocks itself out to place
// damage counters.
func Dusclops() Card {
	return &PokemonCard{
		ID: "pre-036", Name: "Dusclops", HP: 90,
		Types: []EnergyType{EnergyPsychic}, Weakness: EnergyDarkness, WeaknessMult: 2,
		Resistance: EnergyFighting, ResistanceVal: 30,
		RetreatCost: 2, Stage: Stage1, EvolvesFrom: "Duskull",
		Abilities: []Ability{
			{Name: "Cursed Blast", Effect: AbilityCursedBlast},
		},
		Attacks: []Attack{
			{Name: "Will-O-Wisp", Cost: map[EnergyType]int{EnergyPsychic: 2}, Damage: 50},
		},
	}
}

// Dusknoir — Stage 2 Psychic. The bigger Cursed Blast, plus Shadow Bind to
// trap the defender.
func Dusknoir() Card {
	return &PokemonCard{
		ID: "pre-037", Name: "Dusknoir", HP: 160,
		Types: []EnergyType{EnergyPsychic}, Weakness: EnergyDarkness, WeaknessMult: 2,
		Resistance: EnergyFighting, ResistanceVal: 30,
		RetreatCost: 2, Stage: Stage2, EvolvesFrom: "Dusclops",
		Abilities: []Ability{
			{Name: "Cursed Blast", Effect: AbilityCursedBlast},
		},
		Attacks: []Attack{
			{Name: "Shadow Bind", Cost: map[EnergyType]int{EnergyPsychic: 3}, Damage: 150, Effect: AttackShadowBind},
		},
	}
}

// --- Pidgeot line ---

// Pidgey — Basic Colorless.
func Pidgey() Card {
	return &PokemonCard{
		ID: "mew-016", Name: "Pidgey", HP: 60,
		Types: []EnergyType{EnergyColorless}, Weakness: EnergyLightning, WeaknessMult: 2,
		Resistance: EnergyFighting, ResistanceVal: 30,
		RetreatCost: 1, Stage: StageBasic,
		Attacks: []Attack{
			{Name: "Gust", Cost: map[EnergyType]int{EnergyColorless: 1}, Damage: 20},
		},
	}
}

// Pidgeotto — Stage 1 Colorless.
func Pidgeotto() Card {
	return &PokemonCard{
		ID: "mew-017", Name: "Pidgeotto", HP: 80,
		Types: []EnergyType{EnergyColorless}, Weakness: EnergyLightning, WeaknessMult: 2,
		Resistance: EnergyFighting, ResistanceVal: 30,
		RetreatCost: 1, Stage: Stage1, EvolvesFrom: "Pidgey",
		Attacks: []Attack{
			{Name: "Wing Attack", Cost: map[EnergyType]int{EnergyColorless: 2}, Damage: 30},
		},
	}
}

// PidgeotEx — Stage 2 Colorless. Quick Search takes any card from the deck
// once per turn.
func PidgeotEx() Card {
	return &PokemonCard{
		ID: "obf-164", Name: "Pidgeot ex", HP: 280,
		Types: []EnergyType{EnergyColorless}, Weakness: EnergyLightning, WeaknessMult: 2,
		Resistance: EnergyFighting, ResistanceVal: 30,
		RetreatCost: 0, Stage: Stage2, EvolvesFrom: "Pidgeotto",
		Tags: []Tag{TagEX},
		Abilities: []Ability{
			{Name: "Quick Search", Effect: AbilityQuickSearch},
		},
		Attacks: []Attack{
			{Name: "Blustery Wind", Cost: map[EnergyType]int{EnergyColorless: 2}, Damage: 120, Effect: AttackBlusteryWind},
		},
	}
}

// --- Dragapult line ---

// Dreepy — Basic Dragon.
func Dreepy() Card {
	return &PokemonCard{
		ID: "twm-128", Name: "Dreepy", HP: 70,
		Types: []EnergyType{EnergyDragon},
		RetreatCost: 1, Stage: StageBasic,
		Attacks: []Attack{
			{Name: "Bite", Cost: map[EnergyType]int{EnergyColorless: 1}, Damage: 10},
		},
	}
}

// Drakloak — Stage 1 Dragon. Recon Directive smooths the next draw on
// evolution.
func Drakloak() Card {
	return &PokemonCard{
		ID: "twm-129", Name: "Drakloak", HP: 90,
		Types: []EnergyType{EnergyDragon},
		RetreatCost: 1, Stage: Stage1, EvolvesFrom: "Dreepy",
		Abilities: []Ability{
			{Name: "Recon Directive", Effect: AbilityReconDirective},
		},
		Attacks: []Attack{
			{Name: "Dragon Headbutt", Cost: map[EnergyType]int{EnergyFire: 1, EnergyPsychic: 1}, Damage: 70},
		},
	}
}

// DragapultEx — Stage 2 Dragon. Phantom Dive sprays counters over the bench.
func DragapultEx() Card {
	return &PokemonCard{
		ID: "twm-130", Name: "Dragapult ex", HP: 320,
		Types: []EnergyType{EnergyDragon},
		RetreatCost: 1, Stage: Stage2, EvolvesFrom: "Drakloak",
		Tags: []Tag{TagEX},
		Attacks: []Attack{
			{Name: "Phantom Dive", Cost: map[EnergyType]int{EnergyFire: 1, EnergyPsychic: 1}, Damage: 200, Effect: AttackPhantomDive},
		},
	}
}

// --- Standalone attackers and support Pokémon ---

// FanRotom — Basic Colorless. Fan Call is only live on the owner's first
// turn.
func FanRotom() Card {
	return &PokemonCard{
		ID: "scr-118", Name: "Fan Rotom", HP: 80,
		Types: []EnergyType{EnergyColorless}, Weakness: EnergyLightning, WeaknessMult: 2,
		Resistance: EnergyFighting, ResistanceVal: 30,
		RetreatCost: 1, Stage: StageBasic,
		Abilities: []Ability{
			{Name: "Fan Call", Effect: AbilityFanCall},
		},
		Attacks: []Attack{
			{Name: "Assault Landing", Cost: map[EnergyType]int{EnergyColorless: 2}, Effect: AttackAssaultLanding},
		},
	}
}

// Klefki — Basic Psychic. Mischievous Lock shuts off Basic Pokémon
// abilities while Klefki is active.
func Klefki() Card {
	return &PokemonCard{
		ID: "svi-096", Name: "Klefki", HP: 70,
		Types: []EnergyType{EnergyPsychic}, Weakness: EnergyMetal, WeaknessMult: 2,
		RetreatCost: 1, Stage: StageBasic,
		Abilities: []Ability{
			{Name: "Mischievous Lock", Effect: AbilityMischievousLock},
		},
		Attacks: []Attack{
			{Name: "Joust", Cost: map[EnergyType]int{EnergyColorless: 1}, Damage: 10},
		},
	}
}

// Ditto — Basic Colorless. Transformative Start lets it evolve into any
// Stage 1.
func Ditto() Card {
	return &PokemonCard{
		ID: "mew-132", Name: "Ditto", HP: 70,
		Types: []EnergyType{EnergyColorless}, Weakness: EnergyFighting, WeaknessMult: 2,
		RetreatCost: 1, Stage: StageBasic,
		Abilities: []Ability{
			{Name: "Transformative Start", Effect: AbilityTransformativeStart},
		},
		Attacks: []Attack{
			{Name: "Ram", Cost: map[EnergyType]int{EnergyColorless: 1}, Damage: 10},
		},
	}
}

// FezandipitiEx — Basic Darkness. Flip the Script draws after losing a
// Pokémon; Cruel Arrow snipes any opposing Pokémon.
func FezandipitiEx() Card {
	return &PokemonCard{
		ID: "asc-142", Name: "Fezandipiti ex", HP: 210,
		Types: []EnergyType{EnergyDarkness}, Weakness: EnergyFighting, WeaknessMult: 2,
		RetreatCost: 1, Stage: StageBasic,
		Tags: []Tag{TagEX},
		Abilities: []Ability{
			{Name: "Flip the Script", Effect: AbilityFlipTheScript},
		},
		Attacks: []Attack{
			{Name: "Cruel Arrow", Cost: map[EnergyType]int{EnergyDarkness: 1, EnergyColorless: 2}, Effect: AttackCruelArrow},
		},
	}
}

// WellspringOgerponEx — Basic Water.
func WellspringOgerponEx() Card {
	return &PokemonCard{
		ID: "twm-064", Name: "Wellspring Mask Ogerpon ex", HP: 210,
		Types: []EnergyType{EnergyWater}, Weakness: EnergyLightning, WeaknessMult: 2,
		RetreatCost: 2, Stage: StageBasic,
		Tags: []Tag{TagEX, TagTera},
		Attacks: []Attack{
			{Name: "Torrential Pump", Cost: map[EnergyType]int{EnergyWater: 2, EnergyColorless: 1}, Damage: 100},
		},
	}
}

// TealOgerponEx — Basic Grass, Tera. Teal Dance accelerates Grass energy
// from hand.
func TealOgerponEx() Card {
	return &PokemonCard{
		ID: "twm-025", Name: "Teal Mask Ogerpon ex", HP: 210,
		Types: []EnergyType{EnergyGrass}, Weakness: EnergyFire, WeaknessMult: 2,
		RetreatCost: 1, Stage: StageBasic,
		Tags: []Tag{TagEX, TagTera},
		Abilities: []Ability{
			{Name: "Teal Dance", Effect: AbilityTealDance},
		},
		Attacks: []Attack{
			{Name: "Myriad Leaf Shower", Cost: map[EnergyType]int{EnergyGrass: 2}, Damage: 30, Effect: AttackMyriadLeafShower},
		},
	}
}

// TerapagosEx — Basic Colorless, Tera.
func TerapagosEx() Card {
	return &PokemonCard{
		ID: "scr-128", Name: "Terapagos ex", HP: 230,
		Types: []EnergyType{EnergyColorless}, Weakness: EnergyFighting, WeaknessMult: 2,
		RetreatCost: 2, Stage: StageBasic,
		Tags: []Tag{TagEX, TagTera},
		Attacks: []Attack{
			{Name: "Unified Beatdown", Cost: map[EnergyType]int{EnergyColorless: 2}, Effect: AttackUnifiedBeatdown},
			{Name: "Crown Opal", Cost: map[EnergyType]int{EnergyColorless: 3}, Damage: 180, Effect: AttackCrownOpal},
		},
	}
}

// Budew — Basic Grass.
func Budew() Card {
	return &PokemonCard{
		ID: "asc-016", Name: "Budew", HP: 30,
		Types: []EnergyType{EnergyGrass}, Weakness: EnergyFire, WeaknessMult: 2,
		RetreatCost: 1, Stage: StageBasic,
		Attacks: []Attack{
			{Name: "Itchy Pollen", Cost: map[EnergyType]int{EnergyColorless: 1}, Damage: 10},
		},
	}
}

// Munkidori — Basic Darkness. Adrena-Brain shifts damage counters onto the
// opposing active.
func Munkidori() Card {
	return &PokemonCard{
		ID: "twm-095", Name: "Munkidori", HP: 110,
		Types: []EnergyType{EnergyDarkness}, Weakness: EnergyFighting, WeaknessMult: 2,
		RetreatCost: 1, Stage: StageBasic,
		Abilities: []Ability{
			{Name: "Adrena-Brain", Effect: AbilityAdrenaBrain},
		},
		Attacks: []Attack{
			{Name: "Mind Bend", Cost: map[EnergyType]int{EnergyDarkness: 1, EnergyColorless: 1}, Damage: 60},
		},
	}
}

// Hawlucha — Basic Fighting. Flying Entry stings the opposing side as it
// hits the bench.
func Hawlucha() Card {
	return &PokemonCard{
		ID: "svi-118", Name: "Hawlucha", HP: 70,
		Types: []EnergyType{EnergyFighting}, Weakness: EnergyPsychic, WeaknessMult: 2,
		RetreatCost: 1, Stage: StageBasic,
		Abilities: []Ability{
			{Name: "Flying Entry", Effect: AbilityFlyingEntry},
		},
		Attacks: []Attack{
			{Name: "Flying Press", Cost: map[EnergyType]int{EnergyFighting: 2}, Damage: 50},
		},
	}
}

// ChiYu — Basic Fire. Megafire of Envy spikes after a knockout.
func ChiYu() Card {
	return &PokemonCard{
		ID: "par-029", Name: "Chi-Yu", HP: 110,
		Types: []EnergyType{EnergyFire}, Weakness: EnergyWater, WeaknessMult: 2,
		RetreatCost: 1, Stage: StageBasic,
		Attacks: []Attack{
			{Name: "Megafire of Envy", Cost: map[EnergyType]int{EnergyFire: 2}, Damage: 50, Effect: AttackMegafireOfEnvy},
		},
	}
}

// RagingBoltEx — Basic Dragon, Ancient. Bellowing Thunder converts every
// basic energy on the board side into raw damage.
func RagingBoltEx() Card {
	return &PokemonCard{
		ID: "tef-123", Name: "Raging Bolt ex", HP: 240,
		Types: []EnergyType{EnergyDragon},
		RetreatCost: 2, Stage: StageBasic,
		Tags: []Tag{TagEX, TagAncient},
		Attacks: []Attack{
			{Name: "Bellowing Thunder", Cost: map[EnergyType]int{EnergyLightning: 1, EnergyFighting: 1}, Effect: AttackBellowingThunder},
		},
	}
}

// RagingBolt — Basic Dragon, Ancient. The non-ex line refills the hand with
// Burst Roar.
func RagingBolt() Card {
	return &PokemonCard{
		ID: "scr-111", Name: "Raging Bolt", HP: 130,
		Types: []EnergyType{EnergyDragon},
		RetreatCost: 2, Stage: StageBasic,
		Tags: []Tag{TagAncient},
		Attacks: []Attack{
			{Name: "Burst Roar", Cost: map[EnergyType]int{EnergyLightning: 1}, Effect: AttackBurstRoar},
			{Name: "Thunderburst Storm", Cost: map[EnergyType]int{EnergyLightning: 2, EnergyFighting: 1}, Effect: AttackThunderburstStorm},
		},
	}
}

// MewEx — Basic Psychic. Restart refills a thin hand; Genome Hacking copies
// an opposing attack via the pending-copy sub-decision.
func MewEx() Card {
	return &PokemonCard{
		ID: "mew-151", Name: "Mew ex", HP: 180,
		Types: []EnergyType{EnergyPsychic}, Weakness: EnergyDarkness, WeaknessMult: 2,
		Resistance: EnergyFighting, ResistanceVal: 30,
		RetreatCost: 0, Stage: StageBasic,
		Tags: []Tag{TagEX},
		Abilities: []Ability{
			{Name: "Restart", Effect: AbilityRestart},
		},
		Attacks: []Attack{
			{Name: "Genome Hacking", Cost: map[EnergyType]int{EnergyColorless: 3}, Effect: AttackGenomeHacking},
		},
	}
}

// LatiasEx — Basic Dragon. Skyliner grants Basics free retreat; Eon Blade
// locks Latias out of attacking next turn.
func LatiasEx() Card {
	return &PokemonCard{
		ID: "ssp-076", Name: "Latias ex", HP: 220,
		Types: []EnergyType{EnergyDragon},
		RetreatCost: 1, Stage: StageBasic,
		Tags: []Tag{TagEX},
		Abilities: []Ability{
			{Name: "Skyliner", Effect: AbilitySkyliner},
		},
		Attacks: []Attack{
			{Name: "Eon Blade", Cost: map[EnergyType]int{EnergyWater: 1, EnergyPsychic: 1, EnergyColorless: 1}, Damage: 200, Effect: AttackEonBlade},
		},
	}
}

// MegaKangaskhanEx — Basic Colorless, Mega. Worth three prizes when it goes
// down.
func MegaKangaskhanEx() Card {
	return &PokemonCard{
		ID: "meg-104", Name: "Mega Kangaskhan ex", HP: 320,
		Types: []EnergyType{EnergyColorless}, Weakness: EnergyFighting, WeaknessMult: 2,
		RetreatCost: 3, Stage: StageBasic,
		Tags: []Tag{TagEX, TagMega},
		Attacks: []Attack{
			{Name: "Rapid-Fire Combo", Cost: map[EnergyType]int{EnergyColorless: 3}, Damage: 200, Effect: AttackRapidFireCombo},
		},
	}
}

// Psyduck — Basic Water.
func Psyduck() Card {
	return &PokemonCard{
		ID: "asc-039", Name: "Psyduck", HP: 70,
		Types: []EnergyType{EnergyWater}, Weakness: EnergyLightning, WeaknessMult: 2,
		RetreatCost: 1, Stage: StageBasic,
		Attacks: []Attack{
			{Name: "Call for Family", Cost: map[EnergyType]int{EnergyColorless: 1}, Effect: AttackCallForFamily},
		},
	}
}

// --- Supporters ---

func BossOrders() Card {
	return &TrainerCard{ID: "meg-114", Name: "Boss's Orders", Kind: TrainerSupporter, Effect: TrainerBossOrders}
}

func Iono() Card {
	return &TrainerCard{ID: "pal-185", Name: "Iono", Kind: TrainerSupporter, Effect: TrainerIono}
}

func Dawn() Card {
	return &TrainerCard{ID: "pfl-087", Name: "Dawn", Kind: TrainerSupporter, Effect: TrainerDawn}
}

func LilliesDetermination() Card {
	return &TrainerCard{ID: "meg-119", Name: "Lillie's Determination", Kind: TrainerSupporter, Effect: TrainerLilliesDetermination}
}

func Crispin() Card {
	return &TrainerCard{ID: "scr-133", Name: "Crispin", Kind: TrainerSupporter, Effect: TrainerCrispin}
}

func SadaVitality() Card {
	return &TrainerCard{ID: "par-170", Name: "Professor Sada's Vitality", Kind: TrainerSupporter, Effect: TrainerSadaVitality}
}

func Briar() Card {
	return &TrainerCard{ID: "scr-132", Name: "Briar", Kind: TrainerSupporter, Effect: TrainerBriar}
}

func AcerolaMischief() Card {
	return &TrainerCard{ID: "meg-113", Name: "Acerola's Mischief", Kind: TrainerSupporter, Effect: TrainerAcerolaMischief}
}

func TuroScenario() Card {
	return &TrainerCard{ID: "par-171", Name: "Professor Turo's Scenario", Kind: TrainerSupporter, Effect: TrainerTuroScenario}
}

// --- Items ---

func RareCandy() Card {
	return &TrainerCard{ID: "meg-125", Name: "Rare Candy", Kind: TrainerItem, Effect: TrainerRareCandy}
}

func BuddyBuddyPoffin() Card {
	return &TrainerCard{ID: "tef-144", Name: "Buddy-Buddy Poffin", Kind: TrainerItem, Effect: TrainerBuddyBuddyPoffin}
}

func NestBall() Card {
	return &TrainerCard{ID: "svi-181", Name: "Nest Ball", Kind: TrainerItem, Effect: TrainerNestBall}
}

func UltraBall() Card {
	return &TrainerCard{ID: "meg-131", Name: "Ultra Ball", Kind: TrainerItem, Effect: TrainerUltraBall}
}

func NightStretcher() Card {
	return &TrainerCard{ID: "asc-196", Name: "Night Stretcher", Kind: TrainerItem, Effect: TrainerNightStretcher}
}

func SuperRod() Card {
	return &TrainerCard{ID: "pal-188", Name: "Super Rod", Kind: TrainerItem, Effect: TrainerSuperRod}
}

func PrimeCatcher() Card {
	return &TrainerCard{ID: "tef-157", Name: "Prime Catcher", Kind: TrainerItem, Effect: TrainerPrimeCatcher, Tags: []Tag{TagACESpec}}
}

func CounterCatcher() Card {
	return &TrainerCard{ID: "par-160", Name: "Counter Catcher", Kind: TrainerItem, Effect: TrainerCounterCatcher}
}

func UnfairStamp() Card {
	return &TrainerCard{ID: "twm-165", Name: "Unfair Stamp", Kind: TrainerItem, Effect: TrainerUnfairStamp, Tags: []Tag{TagACESpec}}
}

func EarthenVessel() Card {
	return &TrainerCard{ID: "par-163", Name: "Earthen Vessel", Kind: TrainerItem, Effect: TrainerEarthenVessel}
}

func EnergySwitch() Card {
	return &TrainerCard{ID: "meg-115", Name: "Energy Switch", Kind: TrainerItem, Effect: TrainerEnergySwitch}
}

func GlassTrumpet() Card {
	return &TrainerCard{ID: "scr-135", Name: "Glass Trumpet", Kind: TrainerItem, Effect: TrainerGlassTrumpet}
}

// --- Tools ---

func AirBalloon() Card {
	return &TrainerCard{ID: "asc-181", Name: "Air Balloon", Kind: TrainerTool, Effect: TrainerAirBalloon}
}

func VitalityBand() Card {
	return &TrainerCard{ID: "svi-197", Name: "Vitality Band", Kind: TrainerTool, Effect: TrainerVitalityBand}
}

// TMEvolution — attaches like a tool and leaves play at end of turn.
func TMEvolution() Card {
	return &TrainerCard{ID: "par-178", Name: "Technical Machine: Evolution", Kind: TrainerTool, Effect: TrainerTMEvolution, Tags: []Tag{TagACESpec}}
}

// --- Stadiums ---

func AreaZeroUnderdepths() Card {
	return &TrainerCard{ID: "scr-131", Name: "Area Zero Underdepths", Kind: TrainerStadium, Effect: TrainerAreaZeroUnderdepths}
}

func Artazon() Card {
	return &TrainerCard{ID: "pal-171", Name: "Artazon", Kind: TrainerStadium, Effect: TrainerArtazon}
}

// --- Energy ---

// BasicEnergy builds a basic energy card of the given type.
func BasicEnergy(t EnergyType) Card {
	return &EnergyCard{
		ID:   "energy-" + t.String(),
		Name: t.String() + " Energy",
		Type: t,
	}
}

// JetEnergy — special energy providing Colorless.
func JetEnergy() Card {
	return &EnergyCard{ID: "pal-190", Name: "Jet Energy", Type: EnergyColorless, Special: true, Effect: EnergyJet}
}

// LuminousEnergy — special energy providing every type while it is the only
// special energy attached.
func LuminousEnergy() Card {
	return &EnergyCard{ID: "pal-191", Name: "Luminous Energy", Type: EnergyColorless, Special: true, Effect: EnergyLuminous}
}
