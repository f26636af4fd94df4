package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peterkuimelis/duelcore/internal/catalog"
	"github.com/peterkuimelis/duelcore/internal/game"
	"github.com/peterkuimelis/duelcore/internal/match"
)

var validateCmd = &cobra.Command{
	Use:   "validate [deck...]",
	Short: "Check the card catalog and deck lists",
	Long: `Load the configured catalog and build every given deck against it.
A deck is a plain list (one card id per line, "!extra" starts the extra
deck) or a YAML deck file, optionally "decks.yaml#N" for the Nth deck.
With no arguments the configured (or starter) decks are checked.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.LogLevel)

	cat, err := catalog.LoadOrDefault(cfg.Catalog)
	if err != nil {
		return err
	}
	logger.Info("catalog loaded", "cards", cat.Len())

	var lists []game.DeckList
	if len(args) == 0 {
		seats, err := match.LoadDeckLists(cfg.DeckSpecs())
		if err != nil {
			return err
		}
		lists = seats[:]
	}
	for _, spec := range args {
		dl, err := game.LoadDeck(spec)
		if err != nil {
			return err
		}
		lists = append(lists, dl)
	}

	var failed error
	for _, dl := range lists {
		d, err := dl.Build(cat.Factory())
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "FAIL  %s: %v\n", dl.Name, err)
			failed = errors.Join(failed, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok    %s: %d main, %d extra\n", dl.Name, len(d.MainDeck), len(d.ExtraDeck))
	}
	if failed != nil {
		return fmt.Errorf("deck validation failed: %w", failed)
	}
	return nil
}
