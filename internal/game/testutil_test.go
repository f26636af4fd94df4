package game

import (
	"fmt"
	"testing"

	"github.com/peterkuimelis/duelcore/internal/log"
)

// mapSource is an in-memory TemplateSource.
type mapSource map[string]*Template

func (m mapSource) Template(id string) (*Template, error) {
	t, ok := m[id]
	if !ok {
		return nil, fmt.Errorf("card %q: %w", id, ErrUnknownCardID)
	}
	return t, nil
}

// --- Test card helpers ---

func vanillaMonster(name string, level, atk, def int) *Template {
	return &Template{
		ID:          name,
		Name:        name,
		CardType:    CardTypeMonster,
		Level:       IntPtr(level),
		Attack:      IntPtr(atk),
		Defense:     IntPtr(def),
		MonsterType: MonsterTypeNormal,
		Attribute:   AttrLIGHT,
		Race:        RaceWarrior,
	}
}

func fusionMonster(name string, level, atk, def int) *Template {
	t := vanillaMonster(name, level, atk, def)
	t.MonsterType = MonsterTypeFusion
	return t
}

func spellTemplate(name string, st SpellType) *Template {
	return &Template{ID: name, Name: name, CardType: CardTypeSpell, SpellType: st}
}

func trapTemplate(name string, tt TrapType) *Template {
	return &Template{ID: name, Name: name, CardType: CardTypeTrap, TrapType: tt}
}

// makePaddedDeck builds a main deck of size cards with top drawn first and
// level-1 filler monsters below.
func makePaddedDeck(t *testing.T, top []*Card, size int, extra ...*Card) *Deck {
	t.Helper()
	main := make([]*Card, 0, size)
	main = append(main, top...)
	for i := len(top); i < size; i++ {
		main = append(main, NewCard(vanillaMonster("Filler Token", 1, 0, 0)))
	}
	d, err := NewDeckFromCards(main, extra)
	if err != nil {
		t.Fatalf("NewDeckFromCards: %v", err)
	}
	return d
}

func cards(templates ...*Template) []*Card {
	out := make([]*Card, len(templates))
	for i, tmpl := range templates {
		out[i] = NewCard(tmpl)
	}
	return out
}

// newTestGame builds and starts an unshuffled game with player 0 going first.
func newTestGame(t *testing.T, deck0, deck1 *Deck, opts ...func(*Config)) (*Game, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	cfg := Config{Deck0: deck0, Deck1: deck1, Logger: logger, NoShuffle: true, Seed: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if err := g.StartGame(); err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	return g, logger
}

func withCombat(r CombatResolver) func(*Config) {
	return func(cfg *Config) { cfg.Combat = r }
}

// advanceTo calls NextPhase until the game reaches phase.
func advanceTo(t *testing.T, g *Game, phase Phase) {
	t.Helper()
	for i := 0; g.CurrentPhase != phase; i++ {
		if i > len(phaseOrder) {
			t.Fatalf("never reached %s (stuck at %s)", phase, g.CurrentPhase)
		}
		g.NextPhase()
	}
}

// findAction picks the first legal action of type typ acting on a card named cardName.
func findAction(g *Game, typ ActionType, cardName string) (Action, bool) {
	for _, a := range g.LegalActions() {
		if a.Type != typ {
			continue
		}
		if cardName != "" {
			c := g.ActionCard(a)
			if c == nil || c.Name != cardName {
				continue
			}
		}
		return a, true
	}
	return Action{}, false
}

func mustExecute(t *testing.T, g *Game, a Action) {
	t.Helper()
	if err := g.Check(a); err != nil {
		t.Fatalf("%s rejected: %v", a, err)
	}
	if !g.ExecuteAction(a) {
		t.Fatalf("%s failed", a)
	}
}

func handIndex(p *Player, name string) int {
	for i, c := range p.Hand {
		if c.Name == name {
			return i
		}
	}
	return -1
}
