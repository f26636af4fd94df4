package game

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// extraMarker switches a deck list into the extra deck section.
const extraMarker = "!extra"

// DeckList is a parsed list of card identifiers.
type DeckList struct {
	Name  string
	Main  []string
	Extra []string
}

// Build turns the list into a validated Deck.
func (dl DeckList) Build(f CardFactory) (*Deck, error) {
	d, err := NewDeck(f, dl.Main, dl.Extra)
	if err != nil && dl.Name != "" {
		return nil, fmt.Errorf("deck %q: %w", dl.Name, err)
	}
	return d, err
}

// ParseDeckList reads one card id per line. A line holding only "!extra"
// (any case) moves the following ids into the extra deck; blank lines are ignored.
func ParseDeckList(r io.Reader) (DeckList, error) {
	var dl DeckList
	inExtra := false
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "!") {
			if !strings.EqualFold(line, extraMarker) {
				return DeckList{}, fmt.Errorf("line %d: unknown directive %q: %w", lineNo, line, ErrMalformedDeckList)
			}
			if inExtra {
				return DeckList{}, fmt.Errorf("line %d: repeated %s marker: %w", lineNo, extraMarker, ErrMalformedDeckList)
			}
			inExtra = true
			continue
		}
		if strings.ContainsAny(line, " \t") {
			return DeckList{}, fmt.Errorf("line %d: %q is not a single card id: %w", lineNo, line, ErrMalformedDeckList)
		}
		if inExtra {
			dl.Extra = append(dl.Extra, line)
		} else {
			dl.Main = append(dl.Main, line)
		}
	}
	if err := sc.Err(); err != nil {
		return DeckList{}, fmt.Errorf("read deck list: %w", err)
	}
	return dl, nil
}

// LoadDeckList parses the deck list file at path.
func LoadDeckList(path string) (DeckList, error) {
	f, err := os.Open(path)
	if err != nil {
		return DeckList{}, err
	}
	defer f.Close()
	dl, err := ParseDeckList(f)
	if err != nil {
		return DeckList{}, fmt.Errorf("%s: %w", path, err)
	}
	dl.Name = path
	return dl, nil
}

// --- YAML deck files ---

// DeckFile represents the top-level YAML structure.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry represents a single deck in the YAML file.
type DeckEntry struct {
	Name  string      `yaml:"name"`
	Cards []CardEntry `yaml:"cards"`
	Extra []CardEntry `yaml:"extra"`
}

// CardEntry represents a card and its count in a deck.
type CardEntry struct {
	ID    string `yaml:"id"`
	Count int    `yaml:"count"`
}

func (e DeckEntry) list() DeckList {
	dl := DeckList{Name: e.Name}
	dl.Main = expandEntries(e.Cards)
	dl.Extra = expandEntries(e.Extra)
	return dl
}

func expandEntries(entries []CardEntry) []string {
	var ids []string
	for _, entry := range entries {
		n := entry.Count
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			ids = append(ids, entry.ID)
		}
	}
	return ids
}

// ParseDeckFile parses YAML deck data and returns every deck it names.
func ParseDeckFile(data []byte) ([]DeckList, error) {
	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w: %w", ErrMalformedDeckList, err)
	}
	decks := make([]DeckList, 0, len(df.Decks))
	for _, entry := range df.Decks {
		for _, c := range append(append([]CardEntry(nil), entry.Cards...), entry.Extra...) {
			if c.ID == "" || c.Count < 0 {
				return nil, fmt.Errorf("deck %q: bad card entry %+v: %w", entry.Name, c, ErrMalformedDeckList)
			}
		}
		decks = append(decks, entry.list())
	}
	return decks, nil
}

// DeckByNumber returns the Nth deck (1-indexed) from the YAML deck file at path.
func DeckByNumber(path string, n int) (DeckList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DeckList{}, err
	}
	decks, err := ParseDeckFile(data)
	if err != nil {
		return DeckList{}, err
	}
	if n < 1 || n > len(decks) {
		return DeckList{}, fmt.Errorf("deck %d not found (have %d decks)", n, len(decks))
	}
	return decks[n-1], nil
}

// LoadDeck loads a deck from either a YAML deck file ("decks.yaml#2" picks the
// second deck, default first) or a plain line-oriented deck list.
func LoadDeck(spec string) (DeckList, error) {
	path, n := spec, 1
	if i := strings.LastIndex(spec, "#"); i >= 0 {
		path = spec[:i]
		if _, err := fmt.Sscanf(spec[i+1:], "%d", &n); err != nil {
			return DeckList{}, fmt.Errorf("deck %q: bad deck number: %w", spec, err)
		}
	}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return DeckByNumber(path, n)
	}
	return LoadDeckList(path)
}
