package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/peterkuimelis/duelcore/internal/catalog"
	"github.com/peterkuimelis/duelcore/internal/game"
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List the cards in the catalog",
	RunE:  runCards,
}

func runCards(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := catalog.LoadOrDefault(cfg.Catalog)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, id := range cat.IDs() {
		if len(id) > maxIDLen {
			maxIDLen = len(id)
		}
	}
	fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxIDLen, "ID", "Type", "Name")
	fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "----")

	for _, id := range cat.IDs() {
		t, err := cat.Template(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-*s  %-7s  %s%s\n", maxIDLen, id, t.CardType, t.Name, cardDetail(t, cat.Factory()))
	}
	return nil
}

func cardDetail(t *game.Template, f game.CardFactory) string {
	var parts []string
	if t.CardType == game.CardTypeMonster {
		parts = append(parts, fmt.Sprintf("%s/%s", stat(t.Attack), stat(t.Defense)))
		if t.Level != nil {
			parts = append(parts, fmt.Sprintf("level %d", *t.Level))
		}
	}
	if c, err := f.NewCard(t.ID); err == nil {
		if names := c.EffectNames(); len(names) > 0 {
			parts = append(parts, "effects: "+strings.Join(names, ", "))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "  (" + strings.Join(parts, "; ") + ")"
}

func stat(v *int) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprint(*v)
}
