// Package mcp exposes duelcore games as MCP tools over stdio so an external
// agent can play both seats through the engine's public API.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/duelcore/internal/config"
)

// Server binds tool handlers to a session Manager.
type Server struct {
	Sessions *Manager
	Log      *charmlog.Logger
}

// NewServer returns a Server whose games are built from cfg.
func NewServer(cfg config.Config, logger *charmlog.Logger) *Server {
	return &Server{Sessions: NewManager(cfg), Log: logger}
}

// MCPServer builds an mcp-go server with every tool registered.
func (s *Server) MCPServer(version string) *server.MCPServer {
	srv := server.NewMCPServer("duelcore", version)
	s.RegisterTools(srv)
	return srv
}

// ServeStdio serves the tools on stdin/stdout until the client disconnects.
func (s *Server) ServeStdio(version string) error {
	return server.ServeStdio(s.MCPServer(version))
}

// RegisterTools adds all game tools to the MCP server.
func (s *Server) RegisterTools(srv *server.MCPServer) {
	srv.AddTool(newGameTool(), s.handleNewGame)
	srv.AddTool(listActionsTool(), s.handleListActions)
	srv.AddTool(takeActionTool(), s.handleTakeAction)
	srv.AddTool(executeActionTool(), s.handleExecuteAction)
	srv.AddTool(nextPhaseTool(), s.handleNextPhase)
	srv.AddTool(getStateTool(), s.handleGetState)
	srv.AddTool(endGameTool(), s.handleEndGame)
}

// --- Tool definitions ---

func newGameTool() mcp.Tool {
	return mcp.NewTool("new_game",
		mcp.WithDescription("Create and start a new game. Returns the session id, the opening state from the "+
			"starting player's view and the opening events."),
		mcp.WithNumber("seed", mcp.Description("Shuffle seed; omitted uses the configured seed")),
		mcp.WithNumber("starting_player", mcp.Description("0 or 1")),
		mcp.WithString("deck0", mcp.Description("Deck source for player 0 (deck list path or decks.yaml#N)")),
		mcp.WithString("deck1", mcp.Description("Deck source for player 1")),
	)
}

func listActionsTool() mcp.Tool {
	return mcp.NewTool("list_actions",
		mcp.WithDescription("List the legal actions of a player. The turn player always has End Turn; "+
			"the other player only sees trap activations."),
		mcp.WithString("session_id", mcp.Required()),
		mcp.WithNumber("player", mcp.Description("0 or 1; omitted means the turn player")),
	)
}

func takeActionTool() mcp.Tool {
	return mcp.NewTool("take_action",
		mcp.WithDescription("Take the action at the given index of list_actions for the same player."),
		mcp.WithString("session_id", mcp.Required()),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based index into the action list")),
		mcp.WithNumber("player", mcp.Description("0 or 1; omitted means the turn player")),
	)
}

func executeActionTool() mcp.Tool {
	return mcp.NewTool("execute_action",
		mcp.WithDescription("Execute an explicitly described action. Illegal actions are rejected with the reason "+
			"and leave the game unchanged."),
		mcp.WithString("session_id", mcp.Required()),
		mcp.WithObject("action", mcp.Required(), mcp.Description(
			`Action object: {"type": "normal_summon", "hand_index": 0, "position": "face_up_attack"}. `+
				`Other fields: player, zone, target, tributes, source, card_id, graveyard_index, banished_index, effect, args.`)),
	)
}

func nextPhaseTool() mcp.Tool {
	return mcp.NewTool("next_phase",
		mcp.WithDescription("Advance to the next phase; leaving the End Phase passes the turn."),
		mcp.WithString("session_id", mcp.Required()),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get the state from one player's perspective and any events since the last call. Read-only."),
		mcp.WithString("session_id", mcp.Required()),
		mcp.WithNumber("player", mcp.Description("Viewer, 0 or 1; omitted means the turn player")),
	)
}

func endGameTool() mcp.Tool {
	return mcp.NewTool("end_game",
		mcp.WithDescription("Discard a session."),
		mcp.WithString("session_id", mcp.Required()),
	)
}

// --- Tool handlers ---

func (s *Server) handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var opts GameOptions
	if err := decode(request.GetArguments(), &opts); err != nil {
		return mcp.NewToolResultErrorf("Bad arguments: %v", err), nil
	}
	sess, err := s.Sessions.Create(opts)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}
	s.debug("new game", "session", sess.ID)
	resp, err := sess.State(-1)
	return s.result(resp, err)
}

func (s *Server) handleListActions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := s.session(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	resp, err := sess.Actions(request.GetInt("player", -1))
	return s.result(resp, err)
}

func (s *Server) handleTakeAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := s.session(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	resp, err := sess.TakeAction(request.GetInt("player", -1), request.GetInt("index", -1))
	return s.result(resp, err)
}

func (s *Server) handleExecuteAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := s.session(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	raw, ok := request.GetArguments()["action"]
	if !ok {
		return mcp.NewToolResultError("action is required"), nil
	}
	a, err := parseAction(raw, sess.TurnPlayer())
	if err != nil {
		return mcp.NewToolResultErrorf("Bad action: %v", err), nil
	}
	resp, err := sess.Execute(a)
	return s.result(resp, err)
}

func (s *Server) handleNextPhase(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := s.session(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.result(sess.NextPhase(), nil)
}

func (s *Server) handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := s.session(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	resp, err := sess.State(request.GetInt("player", -1))
	return s.result(resp, err)
}

func (s *Server) handleEndGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetString("session_id", "")
	if err := s.Sessions.Close(id); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.debug("end game", "session", id)
	return mcp.NewToolResultText(fmt.Sprintf(`{"session_id": %q, "closed": true}`, id)), nil
}

// --- helpers ---

func (s *Server) session(request mcp.CallToolRequest) (*Session, error) {
	id := request.GetString("session_id", "")
	if id == "" {
		return nil, fmt.Errorf("session_id is required")
	}
	return s.Sessions.Get(id)
}

func (s *Server) result(resp *ToolResponse, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		s.debug("tool error", "err", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (s *Server) debug(msg string, keyvals ...any) {
	if s.Log != nil {
		s.Log.Debug(msg, keyvals...)
	}
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
