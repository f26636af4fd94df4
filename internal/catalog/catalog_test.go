package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/duelcore/internal/game"
)

func TestDefaultCatalog(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	assert.Greater(t, cat.Len(), 10)

	bewd, err := cat.Template("blue_eyes_white_dragon")
	require.NoError(t, err)
	assert.Equal(t, "Blue-Eyes White Dragon", bewd.Name)
	assert.Equal(t, game.CardTypeMonster, bewd.CardType)
	assert.Equal(t, game.MonsterTypeNormal, bewd.MonsterType)
	assert.Equal(t, game.AttrLIGHT, bewd.Attribute)
	assert.Equal(t, game.RaceDragon, bewd.Race)
	require.NotNil(t, bewd.Attack)
	assert.Equal(t, 3000, *bewd.Attack)

	_, err = cat.Template("nope")
	assert.ErrorIs(t, err, game.ErrUnknownCardID)
}

func TestDefaultCatalogBindsEffects(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	c, err := cat.Factory().NewCard("pot_of_plenty")
	require.NoError(t, err)
	assert.True(t, c.HasEffect("draw"))

	fusion, err := cat.Factory().NewCard("twin_headed_dragon")
	require.NoError(t, err)
	assert.True(t, fusion.HasCondition(game.ConditionSpecialSummon))
	assert.True(t, fusion.MonsterType.IsExtraDeck())
	assert.True(t, fusion.HasEffect("recall"))

	wanderer, err := cat.Factory().NewCard("grave_wanderer")
	require.NoError(t, err)
	assert.True(t, wanderer.HasEffect("vanish"))

	beast, err := cat.Factory().NewCard("rush_recklessly_beast")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"calm", "rally"}, beast.EffectNames())
}

func TestStarterDecksBuild(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	decks, err := StarterDecks()
	require.NoError(t, err)
	require.Len(t, decks, 2)

	for _, dl := range decks {
		d, err := dl.Build(cat.Factory())
		require.NoError(t, err, dl.Name)
		assert.Len(t, d.MainDeck, game.MinDeckSize, dl.Name)
		assert.NotEmpty(t, d.ExtraDeck, dl.Name)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := map[string]string{
		"bad yaml":     "cards: [",
		"missing name": "cards:\n  - id: x\n    type: monster\n",
		"bad type":     "cards:\n  - id: x\n    name: X\n    type: ritual\n",
		"bad race":     "cards:\n  - id: x\n    name: X\n    type: monster\n    race: robot\n",
		"bad effect":   "cards:\n  - id: x\n    name: X\n    type: spell\n    effects:\n      e:\n        kind: nuke\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseYAML([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestParseYAMLDuplicateID(t *testing.T) {
	data := "cards:\n  - id: x\n    name: X\n    type: trap\n  - id: x\n    name: Y\n    type: trap\n"
	_, err := ParseYAML([]byte(data))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

const sampleJSON = `{
  "4007": {"id": 4007, "name": "Blue-Eyes White Dragon", "cardType": "monster",
    "type": "Normal Monster", "level": 8, "atk": 3000, "def": "2500", "attribute": "LIGHT",
    "effectText": "This legendary dragon is a powerful engine of destruction."},
  "5000": {"id": "5000", "name": "Mystery Beast", "cardType": "monster",
    "type": "Beast", "level": 4, "atk": "?", "def": null, "attribute": "EARTH"},
  "4844": {"id": 4844, "name": "Mystical Space Typhoon", "cardType": "spell",
    "property": "Quick-Play", "effectText": "Target 1 Spell/Trap on the field; destroy that target."},
  "4861": {"id": 4861, "name": "Trap Hole", "cardType": "trap", "property": "Normal"}
}`

func TestParseJSON(t *testing.T) {
	cat, err := ParseJSON([]byte(sampleJSON))
	require.NoError(t, err)
	assert.Equal(t, []string{"4007", "4844", "4861", "5000"}, cat.IDs())

	bewd, err := cat.Template("4007")
	require.NoError(t, err)
	assert.Equal(t, game.MonsterTypeNormal, bewd.MonsterType)
	assert.Equal(t, 2500, *bewd.Defense)
	assert.Equal(t, game.AttrLIGHT, bewd.Attribute)
	assert.Contains(t, bewd.Description, "legendary")

	beast, err := cat.Template("5000")
	require.NoError(t, err)
	assert.Nil(t, beast.Attack, "? stat is undefined")
	assert.Nil(t, beast.Defense)
	assert.Equal(t, game.RaceBeast, beast.Race)

	mst, err := cat.Template("4844")
	require.NoError(t, err)
	assert.Equal(t, game.SpellQuickPlay, mst.SpellType)

	hole, ok := cat.FindByName("trap hole")
	require.True(t, ok)
	assert.Equal(t, game.TrapNormal, hole.TrapType)
}

func TestParseJSONBadStat(t *testing.T) {
	_, err := ParseJSON([]byte(`{"1": {"id": 1, "name": "X", "cardType": "monster", "atk": "lots"}}`))
	assert.Error(t, err)
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "cards.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(sampleJSON), 0o644))
	cat, err := Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 4, cat.Len())

	yamlPath := filepath.Join(dir, "cards.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("cards:\n  - id: a\n    name: A\n    type: spell\n    spell_type: field\n"), 0o644))
	cat, err = LoadOrDefault(yamlPath)
	require.NoError(t, err)
	tmpl, err := cat.Template("a")
	require.NoError(t, err)
	assert.Equal(t, game.SpellField, tmpl.SpellType)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
