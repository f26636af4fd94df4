// duelcore runs and inspects trading card game duels.
//
// Usage:
//
//	duelcore validate [deck...]  - Check the catalog and deck lists
//	duelcore start               - Start a game and print the opening state
//	duelcore simulate            - Play random games to completion
//	duelcore mcp                 - Serve games as MCP tools over stdio
//	duelcore cards               - List the catalog
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.duelcore, ./configs, embedded)
//	--catalog <path>    - Card catalog (YAML or JSON)
//	--seed <value>      - Shuffle seed (0 = time based)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/peterkuimelis/duelcore/internal/config"
)

// version is overridden at build time with -ldflags.
var version = "dev"

var (
	// Global flags
	flagConfig   string
	flagCatalog  string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duelcore",
	Short: "duelcore - a two-player trading card game rules engine",
	Long: `duelcore runs two-player trading card game duels: card catalogs,
deck validation, the phase and turn state machine and action legality.

Examples:
  duelcore validate decks/warriors.txt
  duelcore start --seed 42
  duelcore simulate --games 10
  duelcore mcp`,
	SilenceUsage: true,
	Version:      version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Card catalog path (YAML or JSON; empty = embedded starter catalog)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Shuffle seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(cardsCmd)
}

// loadConfig reads the config file and applies global flags set on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.Catalog = flagCatalog
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger returns the process logger. It writes to stderr so stdout stays
// free for game output and the MCP transport.
func newLogger(level string) *charmlog.Logger {
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          "duelcore",
	})
	if lvl, err := charmlog.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}
