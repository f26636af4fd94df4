// Package catalog holds the card templates a game is built from and binds
// their data-driven effects.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterkuimelis/duelcore/internal/game"
)

//go:embed data/*
var dataFS embed.FS

// Embedded data used when no catalog or deck paths are configured.
const (
	DefaultCatalogName = "data/starter.yaml"
	DefaultDecksName   = "data/starter_decks.yaml"
)

var ErrDuplicateID = errors.New("duplicate card id")

// Catalog is an immutable-after-load set of templates keyed by id.
type Catalog struct {
	templates map[string]*game.Template
	effects   *game.EffectRegistry
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		templates: make(map[string]*game.Template),
		effects:   game.NewEffectRegistry(),
	}
}

// Add registers a template. Ids must be unique.
func (c *Catalog) Add(t *game.Template) error {
	if t == nil || t.ID == "" {
		return errors.New("template without id")
	}
	if _, ok := c.templates[t.ID]; ok {
		return fmt.Errorf("%q: %w", t.ID, ErrDuplicateID)
	}
	c.templates[t.ID] = t
	return nil
}

// Template implements game.TemplateSource.
func (c *Catalog) Template(id string) (*game.Template, error) {
	t, ok := c.templates[id]
	if !ok {
		return nil, fmt.Errorf("card %q: %w", id, game.ErrUnknownCardID)
	}
	return t, nil
}

// Effects returns the registry holding effects bound at load time.
func (c *Catalog) Effects() *game.EffectRegistry {
	return c.effects
}

// Factory returns a CardFactory over this catalog.
func (c *Catalog) Factory() game.CardFactory {
	return game.CardFactory{Templates: c, Effects: c.effects}
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}

// IDs returns every template id, sorted.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.templates))
	for id := range c.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FindByName returns the first template whose name matches, ignoring case.
func (c *Catalog) FindByName(name string) (*game.Template, bool) {
	for _, id := range c.IDs() {
		if strings.EqualFold(c.templates[id].Name, name) {
			return c.templates[id], true
		}
	}
	return nil, false
}

// Load reads a catalog file; ".json" files use the JSON card database
// layout, everything else is YAML.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := parse(path, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Default returns the embedded starter catalog.
func Default() (*Catalog, error) {
	data, err := dataFS.ReadFile(DefaultCatalogName)
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}
	return ParseYAML(data)
}

// StarterDecks returns the embedded decks built for the starter catalog.
func StarterDecks() ([]game.DeckList, error) {
	data, err := dataFS.ReadFile(DefaultDecksName)
	if err != nil {
		return nil, fmt.Errorf("read embedded decks: %w", err)
	}
	return game.ParseDeckFile(data)
}

// LoadOrDefault loads path, or the embedded catalog when path is empty.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

func parse(path string, data []byte) (*Catalog, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(data)
	}
	return ParseYAML(data)
}
