// Package match assembles a ready-to-start game from configuration.
package match

import (
	"fmt"

	"github.com/peterkuimelis/duelcore/internal/catalog"
	"github.com/peterkuimelis/duelcore/internal/config"
	"github.com/peterkuimelis/duelcore/internal/game"
	"github.com/peterkuimelis/duelcore/internal/log"
)

// Setup is a built but not yet started game together with its catalog.
type Setup struct {
	Game    *game.Game
	Catalog *catalog.Catalog
	Decks   [2]game.DeckList
}

// Options carries runtime collaborators that do not come from the config file.
type Options struct {
	Logger log.EventLogger
	Combat game.CombatResolver
}

// New loads the catalog and both decks named by cfg and builds a game.
// An empty deck source picks the matching embedded starter deck.
func New(cfg config.Config, opts Options) (*Setup, error) {
	cat, err := catalog.LoadOrDefault(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	lists, err := LoadDeckLists(cfg.DeckSpecs())
	if err != nil {
		return nil, err
	}

	var decks [2]*game.Deck
	for i, dl := range lists {
		d, err := dl.Build(cat.Factory())
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i, err)
		}
		decks[i] = d
	}

	g, err := game.NewGame(game.Config{
		Deck0:          decks[0],
		Deck1:          decks[1],
		Names:          cfg.PlayerNames(),
		StartingPlayer: cfg.StartingPlayer,
		Logger:         opts.Logger,
		Seed:           cfg.Seed,
		NoShuffle:      cfg.NoShuffle,
		Combat:         opts.Combat,
	})
	if err != nil {
		return nil, err
	}
	return &Setup{Game: g, Catalog: cat, Decks: lists}, nil
}

// LoadDeckLists resolves both seats' deck sources.
func LoadDeckLists(specs [2]string) ([2]game.DeckList, error) {
	var lists [2]game.DeckList
	var starters []game.DeckList
	for i, spec := range specs {
		if spec != "" {
			dl, err := game.LoadDeck(spec)
			if err != nil {
				return lists, fmt.Errorf("player %d deck: %w", i, err)
			}
			lists[i] = dl
			continue
		}
		if starters == nil {
			var err error
			if starters, err = catalog.StarterDecks(); err != nil {
				return lists, err
			}
		}
		lists[i] = starters[i%len(starters)]
	}
	return lists, nil
}
