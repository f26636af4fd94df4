package main

import (
	"github.com/spf13/cobra"

	"github.com/peterkuimelis/duelcore/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve games as MCP tools over stdio",
	Long: `Start an MCP server on stdin/stdout. An MCP client can create games
(new_game), inspect them (get_state, list_actions) and drive both seats
(take_action, execute_action, next_phase). Logs go to stderr.`,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.LogLevel)
	logger.Info("serving MCP over stdio", "catalog", cfg.Catalog)
	return mcp.NewServer(cfg, logger).ServeStdio(version)
}
