package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinDecksAreLegalSize(t *testing.T) {
	for id, name := range BuiltinDeckNames {
		cards, err := BuildDeck(id)
		if err != nil {
			t.Fatalf("BuildDeck(%d): %v", id, err)
		}
		if len(cards) != 60 {
			t.Errorf("deck %d (%s) has %d cards, want 60", id, name, len(cards))
		}
	}
}

func TestBuildDeckUnknownID(t *testing.T) {
	if _, err := BuildDeck(3); err == nil {
		t.Error("BuildDeck(3) should fail")
	}
}

func writeDeckFile(t *testing.T) string {
	t.Helper()
	src := `decks:
  - name: Starter
    cards:
      - name: Charmander
        count: 4
      - name: Rare Candy
        count: 2
  - name: Owls
    cards:
      - name: Hoothoot
        count: 3
`
	path := filepath.Join(t.TempDir(), "decks.yaml")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseDeckFile(t *testing.T) {
	decks, err := ParseDeckFile(writeDeckFile(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(decks) != 2 {
		t.Fatalf("parsed %d decks, want 2", len(decks))
	}
	if got := len(decks["Starter"]); got != 6 {
		t.Errorf("Starter has %d cards, want 6", got)
	}
	if pc, ok := decks["Starter"][0].(*PokemonCard); !ok || pc.Name != "Charmander" {
		t.Errorf("Starter[0] = %v, want Charmander", decks["Starter"][0])
	}
}

func TestDeckByNumber(t *testing.T) {
	path := writeDeckFile(t)
	name, cards, err := DeckByNumber(path, 2)
	if err != nil {
		t.Fatal(err)
	}
	if name != "Owls" || len(cards) != 3 {
		t.Errorf("deck 2 = %q with %d cards, want Owls with 3", name, len(cards))
	}
	if _, _, err := DeckByNumber(path, 3); err == nil {
		t.Error("deck 3 should not exist")
	}
}
