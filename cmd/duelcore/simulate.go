package main

import (
	"fmt"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/peterkuimelis/duelcore/internal/agent"
	"github.com/peterkuimelis/duelcore/internal/log"
	"github.com/peterkuimelis/duelcore/internal/match"
)

var (
	flagSimGames   int
	flagSimVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play games between random agents",
	Long: `Play games to completion with both seats driven by agents that pick
uniformly among legal actions. No combat resolver is configured, so games
end by deck out (or at max_turns). With --seed the run is reproducible.
At --log-level debug every game event is logged to stderr.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimGames, "games", 1, "Number of games to play")
	simulateCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Print every game event")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.LogLevel)
	out := cmd.OutOrStdout()

	runSeed := resolveRunSeed(cfg.Seed, time.Now)
	if cfg.Seed == 0 {
		logger.Info("no seed configured", "seed", runSeed)
	}

	wins := [2]int{}
	for i := 0; i < flagSimGames; i++ {
		gameCfg := cfg
		gameCfg.Seed = simulationSeed(runSeed, i)
		var events log.EventLogger
		switch {
		case flagSimVerbose:
			events = log.NewTextLogger(out)
		case logger.GetLevel() <= charmlog.DebugLevel:
			events = log.NewStructuredLogger(logger.WithPrefix(fmt.Sprintf("game %d", i+1)), charmlog.DebugLevel)
		default:
			events = log.NewMemoryLogger()
		}
		setup, err := match.New(gameCfg, match.Options{Logger: events})
		if err != nil {
			return err
		}
		if err := setup.Game.StartGame(); err != nil {
			return err
		}

		seed := gameCfg.Seed
		runner := &agent.Runner{
			Game:        setup.Game,
			Controllers: [2]agent.Controller{agent.NewRandom(seed + 1), agent.NewRandom(seed + 2)},
			MaxTurns:    cfg.MaxTurns,
			Log:         logger,
		}
		res, err := runner.Run(cmd.Context())
		if err != nil {
			return err
		}
		if res.Winner >= 0 {
			wins[res.Winner]++
		}
		outcome := res.Result
		if res.TimedOut {
			outcome = fmt.Sprintf("stopped after %d turns", cfg.MaxTurns)
		}
		logger.Info("game finished", "game", i+1, "turns", res.Turns, "actions", res.Actions, "failed", res.Failed)
		fmt.Fprintf(out, "game %d: %s (%d turns, %d actions)\n", i+1, outcome, res.Turns, res.Actions)
	}
	fmt.Fprintf(out, "wins: %s %d, %s %d\n", cfg.Names.Player0, wins[0], cfg.Names.Player1, wins[1])
	return nil
}

// resolveRunSeed returns seed, or a clock-derived seed when it is 0.
func resolveRunSeed(seed int64, now func() time.Time) int64 {
	if seed != 0 {
		return seed
	}
	return now().UnixNano()
}

// simulationSeed is the seed of game i in a run; it also drives both agents.
func simulationSeed(runSeed int64, game int) int64 {
	return runSeed + int64(game)
}
