package game

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseDeckList(t *testing.T) {
	input := `
89631139
89631139

46986414
!EXTRA
1546123
`
	dl, err := ParseDeckList(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseDeckList: %v", err)
	}
	if len(dl.Main) != 3 || dl.Main[2] != "46986414" {
		t.Errorf("main = %v", dl.Main)
	}
	if len(dl.Extra) != 1 || dl.Extra[0] != "1546123" {
		t.Errorf("extra = %v", dl.Extra)
	}
}

func TestParseDeckListMalformed(t *testing.T) {
	tests := map[string]string{
		"repeated marker":   "1\n!extra\n2\n!extra\n3\n",
		"unknown directive": "1\n!side\n2\n",
		"two ids on a line": "1 2\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseDeckList(strings.NewReader(input)); !errors.Is(err, ErrMalformedDeckList) {
				t.Errorf("err = %v, want ErrMalformedDeckList", err)
			}
		})
	}
}

func TestParseDeckFile(t *testing.T) {
	data := []byte(`
decks:
  - name: Warriors
    cards:
      - id: elf
        count: 3
      - id: jinn
    extra:
      - id: knight
        count: 2
  - name: Second
    cards:
      - id: jinn
        count: 40
`)
	decks, err := ParseDeckFile(data)
	if err != nil {
		t.Fatalf("ParseDeckFile: %v", err)
	}
	if len(decks) != 2 {
		t.Fatalf("decks = %d, want 2", len(decks))
	}
	if decks[0].Name != "Warriors" || len(decks[0].Main) != 4 || len(decks[0].Extra) != 2 {
		t.Errorf("first deck = %+v", decks[0])
	}
	if len(decks[1].Main) != 40 {
		t.Errorf("second deck main = %d, want 40", len(decks[1].Main))
	}

	if _, err := ParseDeckFile([]byte("decks:\n  - name: Bad\n    cards:\n      - count: 2\n")); !errors.Is(err, ErrMalformedDeckList) {
		t.Errorf("missing id: err = %v, want ErrMalformedDeckList", err)
	}
}

func TestLoadDeckAndBuild(t *testing.T) {
	dir := t.TempDir()
	listPath := filepath.Join(dir, "warriors.txt")
	if err := os.WriteFile(listPath, []byte(strings.Repeat("elf\n", 40)), 0o644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "decks.yaml")
	yamlData := "decks:\n  - name: A\n    cards:\n      - id: elf\n        count: 39\n  - name: B\n    cards:\n      - id: elf\n        count: 41\n"
	if err := os.WriteFile(yamlPath, []byte(yamlData), 0o644); err != nil {
		t.Fatal(err)
	}
	f := CardFactory{Templates: mapSource{"elf": vanillaMonster("Gemini Elf", 4, 1900, 900)}}

	dl, err := LoadDeck(listPath)
	if err != nil {
		t.Fatalf("LoadDeck(list): %v", err)
	}
	if _, err := dl.Build(f); err != nil {
		t.Errorf("Build: %v", err)
	}

	a, err := LoadDeck(yamlPath)
	if err != nil {
		t.Fatalf("LoadDeck(yaml): %v", err)
	}
	if _, err := a.Build(f); !errors.Is(err, ErrDeckSize) {
		t.Errorf("39-card deck: err = %v, want ErrDeckSize", err)
	}

	b, err := LoadDeck(yamlPath + "#2")
	if err != nil {
		t.Fatalf("LoadDeck(yaml#2): %v", err)
	}
	if b.Name != "B" || len(b.Main) != 41 {
		t.Errorf("deck #2 = %s with %d cards", b.Name, len(b.Main))
	}
	if _, err := LoadDeck(yamlPath + "#3"); err == nil {
		t.Error("missing deck number should fail")
	}
}
