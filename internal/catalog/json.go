package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/peterkuimelis/duelcore/internal/game"
)

// jsonCard is one entry of a JSON card database: an object keyed by card id.
type jsonCard struct {
	ID         looseString `json:"id"`
	Name       string      `json:"name"`
	EffectText string      `json:"effectText"`
	CardType   string      `json:"cardType"`
	Type       string      `json:"type"`
	Level      statValue   `json:"level"`
	Atk        statValue   `json:"atk"`
	Def        statValue   `json:"def"`
	Attribute  string      `json:"attribute"`
	Race       string      `json:"race"`
	Property   string      `json:"property"`
}

// looseString accepts either a JSON string or a number.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = looseString(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id %s: %w", data, err)
	}
	*s = looseString(n.String())
	return nil
}

// statValue accepts a number, a numeric string, or "?" (undefined).
type statValue struct {
	v *int
}

func (s *statValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		s.v = &n
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("stat %s: %w", data, err)
	}
	str = strings.TrimSpace(str)
	if str == "" || str == "?" {
		return nil
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return fmt.Errorf("stat %q: %w", str, err)
	}
	s.v = &n
	return nil
}

// ParseJSON parses a JSON card database. Cards from it carry no effects.
func ParseJSON(data []byte) (*Catalog, error) {
	var raw map[string]jsonCard
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog JSON: %w", err)
	}
	cat := New()
	for _, key := range sortedKeys(raw) {
		jc := raw[key]
		t, err := jc.template(key)
		if err != nil {
			return nil, fmt.Errorf("card %s: %w", key, err)
		}
		if err := cat.Add(t); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

func (jc jsonCard) template(key string) (*game.Template, error) {
	id := string(jc.ID)
	if id == "" {
		id = key
	}
	ct, err := game.ParseCardType(jc.CardType)
	if err != nil {
		return nil, err
	}
	t := &game.Template{ID: id, Name: jc.Name, CardType: ct, Description: jc.EffectText}

	switch ct {
	case game.CardTypeMonster:
		t.Level, t.Attack, t.Defense = jc.Level.v, jc.Atk.v, jc.Def.v
		t.MonsterType, t.Race = monsterTypeOrRace(jc.Type)
		if jc.Race != "" {
			if t.Race, err = game.ParseRace(jc.Race); err != nil {
				return nil, err
			}
		}
		if t.Attribute, err = parseOptional(jc.Attribute, game.AttrNone, game.ParseAttribute); err != nil {
			return nil, err
		}
	case game.CardTypeSpell:
		if t.SpellType, err = parseOptional(jc.Property, game.SpellNormal, game.ParseSpellType); err != nil {
			return nil, err
		}
	case game.CardTypeTrap:
		if t.TrapType, err = parseOptional(jc.Property, game.TrapNormal, game.ParseTrapType); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// monsterTypeOrRace reads the "type" field, which some databases fill with
// the frame ("Effect Monster") and others with the creature type ("Dragon").
func monsterTypeOrRace(s string) (game.MonsterType, game.Race) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), " monster")
	if s == "" {
		return game.MonsterTypeNormal, game.RaceNone
	}
	if mt, err := game.ParseMonsterType(s); err == nil {
		return mt, game.RaceNone
	}
	if r, err := game.ParseRace(s); err == nil {
		return game.MonsterTypeNormal, r
	}
	return game.MonsterTypeNormal, game.RaceNone
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
