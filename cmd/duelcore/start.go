package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peterkuimelis/duelcore/internal/game"
	"github.com/peterkuimelis/duelcore/internal/log"
	"github.com/peterkuimelis/duelcore/internal/match"
)

var (
	flagStartJSON   bool
	flagStartViewer int
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a game and print the opening state",
	Long: `Build a game from the configured catalog and decks, start it and
print the opening events followed by the state from one player's view
and that player's legal actions.`,
	RunE: runStart,
}

func init() {
	startCmd.Flags().BoolVar(&flagStartJSON, "json", false, "Print the state view as JSON")
	startCmd.Flags().IntVar(&flagStartViewer, "viewer", 0, "Player whose view is printed (0 or 1)")
}

func runStart(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagStartViewer != 0 && flagStartViewer != 1 {
		return fmt.Errorf("viewer must be 0 or 1")
	}
	out := cmd.OutOrStdout()

	var logger log.EventLogger = log.NewMemoryLogger()
	if !flagStartJSON {
		logger = log.NewTextLogger(out)
	}
	setup, err := match.New(cfg, match.Options{Logger: logger})
	if err != nil {
		return err
	}
	g := setup.Game
	if err := g.StartGame(); err != nil {
		return err
	}

	view := g.View(flagStartViewer)
	if flagStartJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	fmt.Fprintln(out)
	printView(cmd, view)
	fmt.Fprintln(out, "\nLegal actions:")
	for i, a := range g.LegalActionsFor(flagStartViewer) {
		fmt.Fprintf(out, "  %2d. %s\n", i, a)
	}
	return nil
}

func printView(cmd *cobra.Command, v game.StateView) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Turn %d, %s", v.Turn, v.Phase)
	if v.IsYourTurn {
		fmt.Fprint(out, " (your turn)")
	}
	fmt.Fprintln(out)
	for _, side := range []struct {
		label string
		p     game.PlayerView
	}{{"You", v.You}, {"Opponent", v.Opponent}} {
		p := side.p
		fmt.Fprintf(out, "%s: %s  LP %d  hand %d  deck %d  extra %d  graveyard %d\n",
			side.label, p.Name, p.LifePoints, p.HandCount, p.DeckCount, p.ExtraDeckCount, len(p.Graveyard))
		for _, name := range p.Hand {
			fmt.Fprintf(out, "    hand: %s\n", name)
		}
	}
}
