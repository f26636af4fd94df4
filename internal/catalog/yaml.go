package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/peterkuimelis/duelcore/internal/effects"
	"github.com/peterkuimelis/duelcore/internal/game"
)

// File is the top-level YAML catalog structure.
type File struct {
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry is one card in a YAML catalog.
type CardEntry struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Type        string `yaml:"type"` // monster, spell, trap
	Description string `yaml:"description"`

	Level       *int   `yaml:"level"`
	Attack      *int   `yaml:"attack"`
	Defense     *int   `yaml:"defense"`
	MonsterType string `yaml:"monster_type"`
	Ability     string `yaml:"ability"`
	Attribute   string `yaml:"attribute"`
	Race        string `yaml:"race"`

	SpellType string `yaml:"spell_type"`
	TrapType  string `yaml:"trap_type"`

	Effects    map[string]effects.Spec `yaml:"effects"`
	Conditions map[string]effects.Spec `yaml:"conditions"`
}

// ParseYAML parses YAML catalog data and binds every card's effects.
func ParseYAML(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}
	cat := New()
	for i, entry := range f.Cards {
		t, err := entry.template()
		if err != nil {
			return nil, fmt.Errorf("card %d (%s): %w", i+1, entry.ID, err)
		}
		if err := cat.Add(t); err != nil {
			return nil, err
		}
		if err := effects.Bind(cat.effects, t.ID, entry.Effects, entry.Conditions); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

func (e CardEntry) template() (*game.Template, error) {
	if e.ID == "" || e.Name == "" {
		return nil, fmt.Errorf("id and name are required")
	}
	ct, err := game.ParseCardType(e.Type)
	if err != nil {
		return nil, err
	}
	t := &game.Template{ID: e.ID, Name: e.Name, CardType: ct, Description: strings.TrimSpace(e.Description)}

	switch ct {
	case game.CardTypeMonster:
		t.Level, t.Attack, t.Defense = e.Level, e.Attack, e.Defense
		if t.MonsterType, err = parseOptional(e.MonsterType, game.MonsterTypeNormal, game.ParseMonsterType); err != nil {
			return nil, err
		}
		if t.MonsterAbility, err = parseOptional(e.Ability, game.AbilityNone, game.ParseMonsterAbility); err != nil {
			return nil, err
		}
		if t.Attribute, err = parseOptional(e.Attribute, game.AttrNone, game.ParseAttribute); err != nil {
			return nil, err
		}
		if t.Race, err = parseOptional(e.Race, game.RaceNone, game.ParseRace); err != nil {
			return nil, err
		}
	case game.CardTypeSpell:
		if t.SpellType, err = parseOptional(e.SpellType, game.SpellNormal, game.ParseSpellType); err != nil {
			return nil, err
		}
	case game.CardTypeTrap:
		if t.TrapType, err = parseOptional(e.TrapType, game.TrapNormal, game.ParseTrapType); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// parseOptional parses s, returning def for an empty string.
func parseOptional[T any](s string, def T, parse func(string) (T, error)) (T, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return parse(s)
}
