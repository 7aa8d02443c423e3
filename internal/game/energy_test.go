package game

import "testing"

func attachAll(inst *PokemonInstance, cards ...Card) {
	for _, c := range cards {
		inst.Energy = append(inst.Energy, c.(*EnergyCard))
	}
}

func TestCanPayCostTypedFirst(t *testing.T) {
	inst := NewPokemonInstance(Charmander().(*PokemonCard))
	attachAll(inst, BasicEnergy(EnergyFire), BasicEnergy(EnergyFire))

	if !inst.CanPayCost(map[EnergyType]int{EnergyFire: 2}) {
		t.Error("two Fire should pay a FF cost")
	}
	if inst.CanPayCost(map[EnergyType]int{EnergyFire: 3}) {
		t.Error("two Fire should not pay a FFF cost")
	}
	if !inst.CanPayCost(map[EnergyType]int{EnergyFire: 1, EnergyColorless: 1}) {
		t.Error("two Fire should pay F plus one Colorless")
	}
	if inst.CanPayCost(map[EnergyType]int{EnergyFire: 2, EnergyColorless: 1}) {
		t.Error("two Fire should not pay FF plus one Colorless")
	}
}

func TestCanPayCostWrongType(t *testing.T) {
	inst := NewPokemonInstance(Charmander().(*PokemonCard))
	attachAll(inst, BasicEnergy(EnergyWater), BasicEnergy(EnergyWater))

	if inst.CanPayCost(map[EnergyType]int{EnergyFire: 1}) {
		t.Error("Water energy should not pay a Fire cost")
	}
	if !inst.CanPayCost(map[EnergyType]int{EnergyColorless: 2}) {
		t.Error("any energy pays Colorless costs")
	}
}

func TestJetEnergyProvidesColorless(t *testing.T) {
	inst := NewPokemonInstance(Hoothoot().(*PokemonCard))
	attachAll(inst, JetEnergy())

	if inst.CanPayCost(map[EnergyType]int{EnergyFire: 1}) {
		t.Error("Jet Energy should not pay a typed cost")
	}
	if !inst.CanPayCost(map[EnergyType]int{EnergyColorless: 1}) {
		t.Error("Jet Energy should pay a Colorless cost")
	}
}

func TestLuminousEnergySoleSpecial(t *testing.T) {
	inst := NewPokemonInstance(DragapultEx().(*PokemonCard))
	attachAll(inst, LuminousEnergy(), BasicEnergy(EnergyFire))

	// Sole special energy: Luminous provides any one type.
	if !inst.CanPayCost(map[EnergyType]int{EnergyFire: 1, EnergyPsychic: 1}) {
		t.Error("Luminous should cover the Psychic half of Phantom Dive's cost")
	}

	// A second special energy demotes Luminous to Colorless.
	attachAll(inst, JetEnergy())
	if inst.CanPayCost(map[EnergyType]int{EnergyFire: 1, EnergyPsychic: 1}) {
		t.Error("Luminous next to another special should only provide Colorless")
	}
	if !inst.CanPayCost(map[EnergyType]int{EnergyFire: 1, EnergyColorless: 2}) {
		t.Error("demoted Luminous and Jet should still pay Colorless")
	}
}

func TestAnyEnergyCoversShortfallExactly(t *testing.T) {
	inst := NewPokemonInstance(RagingBoltEx().(*PokemonCard))
	attachAll(inst, LuminousEnergy(), BasicEnergy(EnergyLightning))

	// Cost L+F: Lightning covers L, Luminous (any) covers the F shortfall.
	if !inst.CanPayCost(map[EnergyType]int{EnergyLightning: 1, EnergyFighting: 1}) {
		t.Error("one any-type energy should cover a one-energy typed shortfall")
	}
	// But it cannot cover two shortfalls.
	if inst.CanPayCost(map[EnergyType]int{EnergyFighting: 1, EnergyWater: 1, EnergyLightning: 1}) {
		t.Error("one any-type energy cannot cover two typed shortfalls")
	}
}

func TestEffectiveRetreatCostAirBalloon(t *testing.T) {
	inst := NewPokemonInstance(TerapagosEx().(*PokemonCard))
	if got := inst.EffectiveRetreatCost(); got != 2 {
		t.Errorf("retreat cost = %d, want 2", got)
	}
	inst.Tool = AirBalloon().(*TrainerCard)
	if got := inst.EffectiveRetreatCost(); got != 0 {
		t.Errorf("retreat cost with Air Balloon = %d, want 0", got)
	}
}
