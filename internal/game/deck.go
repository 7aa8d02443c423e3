package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeckFile represents the top-level YAML structure.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry represents a single deck in the YAML file.
type DeckEntry struct {
	Name  string      `yaml:"name"`
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry represents a card and its count in a deck.
type CardEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// ParseDeckFile parses a YAML deck file and returns a map of deck name → card slice.
func ParseDeckFile(path string) (map[string][]Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}

	decks := make(map[string][]Card)
	for _, deck := range df.Decks {
		var cards []Card
		for _, entry := range deck.Cards {
			for i := 0; i < entry.Count; i++ {
				cards = append(cards, LookupCard(entry.Name))
			}
		}
		decks[deck.Name] = cards
	}

	return decks, nil
}

// DeckByNumber returns the Nth deck (1-indexed) from the deck file.
func DeckByNumber(path string, n int) (string, []Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return "", nil, fmt.Errorf("parse deck YAML: %w", err)
	}

	if n < 1 || n > len(df.Decks) {
		return "", nil, fmt.Errorf("deck %d not found (have %d decks)", n, len(df.Decks))
	}

	deck := df.Decks[n-1]
	var cards []Card
	for _, entry := range deck.Cards {
		for i := 0; i < entry.Count; i++ {
			cards = append(cards, LookupCard(entry.Name))
		}
	}

	return deck.Name, cards, nil
}

// --- Builtin decks ---

type builtinEntry struct {
	count int
	name  string
}

type builtinEnergy struct {
	count int
	etype EnergyType
}

var charizardNoctowlList = []builtinEntry{
	{3, "Hoothoot"},
	{3, "Noctowl"},
	{3, "Charmander"},
	{1, "Charmeleon"},
	{2, "Charizard ex"},
	{2, "Duskull"},
	{1, "Dusclops"},
	{1, "Dusknoir"},
	{2, "Pidgey"},
	{1, "Pidgeotto"},
	{2, "Pidgeot ex"},
	{2, "Fan Rotom"},
	{1, "Klefki"},
	{1, "Ditto"},
	{1, "Fezandipiti ex"},
	{1, "Wellspring Mask Ogerpon ex"},
	{1, "Terapagos ex"},
	{4, "Dawn"},
	{2, "Boss's Orders"},
	{1, "Iono"},
	{1, "Briar"},
	{4, "Rare Candy"},
	{4, "Buddy-Buddy Poffin"},
	{3, "Nest Ball"},
	{1, "Ultra Ball"},
	{1, "Night Stretcher"},
	{1, "Super Rod"},
	{1, "Prime Catcher"},
	{2, "Area Zero Underdepths"},
	{1, "Jet Energy"},
}

var charizardNoctowlEnergy = []builtinEnergy{
	{5, EnergyFire},
	{1, EnergyWater},
}

var dragapultCharizardList = []builtinEntry{
	{4, "Dreepy"},
	{4, "Drakloak"},
	{2, "Dragapult ex"},
	{3, "Charmander"},
	{1, "Charmeleon"},
	{2, "Charizard ex"},
	{1, "Budew"},
	{1, "Munkidori"},
	{1, "Hawlucha"},
	{1, "Chi-Yu"},
	{1, "Fezandipiti ex"},
	{4, "Lillie's Determination"},
	{3, "Boss's Orders"},
	{3, "Iono"},
	{1, "Acerola's Mischief"},
	{4, "Buddy-Buddy Poffin"},
	{4, "Ultra Ball"},
	{2, "Rare Candy"},
	{1, "Super Rod"},
	{1, "Night Stretcher"},
	{1, "Counter Catcher"},
	{1, "Unfair Stamp"},
	{1, "Air Balloon"},
	{1, "Technical Machine: Evolution"},
	{4, "Luminous Energy"},
}

var dragapultCharizardEnergy = []builtinEnergy{
	{8, EnergyFire},
}

var ragingBoltList = []builtinEntry{
	{3, "Hoothoot"},
	{3, "Noctowl"},
	{2, "Teal Mask Ogerpon ex"},
	{2, "Raging Bolt ex"},
	{2, "Fan Rotom"},
	{1, "Ditto"},
	{1, "Mew ex"},
	{1, "Wellspring Mask Ogerpon ex"},
	{1, "Fezandipiti ex"},
	{1, "Raging Bolt"},
	{1, "Latias ex"},
	{1, "Mega Kangaskhan ex"},
	{1, "Psyduck"},
	{4, "Crispin"},
	{3, "Professor Sada's Vitality"},
	{1, "Boss's Orders"},
	{1, "Professor Turo's Scenario"},
	{4, "Nest Ball"},
	{4, "Ultra Ball"},
	{2, "Earthen Vessel"},
	{2, "Night Stretcher"},
	{1, "Energy Switch"},
	{1, "Prime Catcher"},
	{1, "Glass Trumpet"},
	{1, "Vitality Band"},
	{2, "Area Zero Underdepths"},
	{1, "Artazon"},
}

var ragingBoltEnergy = []builtinEnergy{
	{5, EnergyGrass},
	{3, EnergyFighting},
	{3, EnergyLightning},
	{1, EnergyWater},
}

// BuiltinDeckNames lists the packaged decks by id order.
var BuiltinDeckNames = []string{
	"Charizard ex / Noctowl",
	"Dragapult ex / Charizard ex",
	"Raging Bolt ex / Ogerpon",
}

// BuildDeck builds one of the packaged decks by id.
func BuildDeck(id int) ([]Card, error) {
	var list []builtinEntry
	var energy []builtinEnergy
	switch id {
	case 0:
		list, energy = charizardNoctowlList, charizardNoctowlEnergy
	case 1:
		list, energy = dragapultCharizardList, dragapultCharizardEnergy
	case 2:
		list, energy = ragingBoltList, ragingBoltEnergy
	default:
		return nil, fmt.Errorf("unknown deck id %d", id)
	}

	var cards []Card
	for _, e := range list {
		for i := 0; i < e.count; i++ {
			cards = append(cards, LookupCard(e.name))
		}
	}
	for _, e := range energy {
		for i := 0; i < e.count; i++ {
			cards = append(cards, BasicEnergy(e.etype))
		}
	}
	return cards, nil
}
