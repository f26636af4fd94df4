package mcp

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/peterkuimelis/duelcore/internal/config"
	"github.com/peterkuimelis/duelcore/internal/game"
	"github.com/peterkuimelis/duelcore/internal/log"
	"github.com/peterkuimelis/duelcore/internal/match"
)

// MaxSessions bounds how many games one server keeps open.
const MaxSessions = 16

var (
	ErrNoSession = errors.New("no such session")
	ErrTooMany   = errors.New("too many sessions")
	ErrBadIndex  = errors.New("action index out of range")
	ErrBadPlayer = errors.New("player must be 0 or 1")
	ErrRejected  = errors.New("action rejected")
)

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	SessionID string          `json:"session_id"`
	Events    []EventView     `json:"events"`
	State     *game.StateView `json:"state,omitempty"`
	Actions   []ActionView    `json:"actions,omitempty"`
	GameOver  bool            `json:"game_over"`
	Winner    int             `json:"winner"`
	Result    string          `json:"result,omitempty"`
}

// EventView is a simplified game event for the client.
type EventView struct {
	Seq     int    `json:"seq"`
	Turn    int    `json:"turn"`
	Phase   string `json:"phase"`
	Player  int    `json:"player"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// ActionView is a numbered action choice.
type ActionView struct {
	Index  int    `json:"index"`
	Type   string `json:"type"`
	Player int    `json:"player"`
	Desc   string `json:"desc"`
}

// Session is one game driven over MCP. Its mutex serialises all access to the game.
type Session struct {
	ID string

	mu      sync.Mutex
	game    *game.Game
	logger  *log.MemoryLogger
	lastSeq int
}

// Manager owns the live sessions of one server process.
type Manager struct {
	cfg     config.Config
	max     int
	mu      sync.Mutex
	session map[string]*Session
}

// NewManager returns a Manager that builds games from cfg.
func NewManager(cfg config.Config) *Manager {
	return &Manager{cfg: cfg, max: MaxSessions, session: make(map[string]*Session)}
}

// GameOptions overrides config values for one new game.
type GameOptions struct {
	Seed           *int64 `json:"seed"`
	StartingPlayer *int   `json:"starting_player"`
	Deck0          string `json:"deck0"`
	Deck1          string `json:"deck1"`
}

// Create builds and starts a new game.
func (m *Manager) Create(opts GameOptions) (*Session, error) {
	cfg := m.cfg
	if opts.Seed != nil {
		cfg.Seed = *opts.Seed
	}
	if opts.StartingPlayer != nil {
		cfg.StartingPlayer = *opts.StartingPlayer
	}
	if opts.Deck0 != "" {
		cfg.Decks.Player0 = opts.Deck0
	}
	if opts.Deck1 != "" {
		cfg.Decks.Player1 = opts.Deck1
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.session) >= m.max {
		return nil, fmt.Errorf("%d open: %w", len(m.session), ErrTooMany)
	}

	logger := log.NewMemoryLogger()
	setup, err := match.New(cfg, match.Options{Logger: logger})
	if err != nil {
		return nil, err
	}
	if err := setup.Game.StartGame(); err != nil {
		return nil, err
	}
	s := &Session{ID: uuid.NewString(), game: setup.Game, logger: logger}
	m.session[s.ID] = s
	return s, nil
}

// Get looks a session up by id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.session[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrNoSession)
	}
	return s, nil
}

// Close removes a session.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.session[id]; !ok {
		return fmt.Errorf("%q: %w", id, ErrNoSession)
	}
	delete(m.session, id)
	return nil
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.session)
}

// --- Session operations ---

// Actions lists the legal actions of player (-1 for the turn player).
func (s *Session) Actions(player int) (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pi, err := s.player(player)
	if err != nil {
		return nil, err
	}
	resp := s.response(pi)
	resp.Actions = actionViews(s.game.LegalActionsFor(pi))
	return resp, nil
}

// TakeAction executes the index-th legal action of player.
func (s *Session) TakeAction(player, index int) (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pi, err := s.player(player)
	if err != nil {
		return nil, err
	}
	actions := s.game.LegalActionsFor(pi)
	if index < 0 || index >= len(actions) {
		return nil, fmt.Errorf("%d not in 0-%d: %w", index, len(actions)-1, ErrBadIndex)
	}
	return s.execute(actions[index])
}

// Execute runs an explicitly described action.
func (s *Session) Execute(a game.Action) (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.execute(a)
}

func (s *Session) execute(a game.Action) (*ToolResponse, error) {
	if err := s.game.Check(a); err != nil {
		// Logged as a rejection so the client sees it in the event stream.
		s.game.ExecuteAction(a)
		return nil, fmt.Errorf("%s: %w: %w", a, ErrRejected, err)
	}
	if !s.game.ExecuteAction(a) {
		return nil, fmt.Errorf("%s had no effect: %w", a, ErrRejected)
	}
	resp := s.response(a.Player)
	resp.Actions = actionViews(s.game.LegalActionsFor(a.Player))
	return resp, nil
}

// NextPhase advances the phase.
func (s *Session) NextPhase() *ToolResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.NextPhase()
	return s.response(s.game.CurrentPlayerIdx)
}

// State returns the view of player (-1 for the turn player) plus new events.
func (s *Session) State(player int) (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pi, err := s.player(player)
	if err != nil {
		return nil, err
	}
	return s.response(pi), nil
}

// TurnPlayer returns the index of the player whose turn it is.
func (s *Session) TurnPlayer() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.CurrentPlayerIdx
}

// Snapshot returns the full unfiltered state.
func (s *Session) Snapshot() game.GameSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

func (s *Session) player(player int) (int, error) {
	switch player {
	case -1:
		return s.game.CurrentPlayerIdx, nil
	case 0, 1:
		return player, nil
	}
	return 0, fmt.Errorf("%d: %w", player, ErrBadPlayer)
}

// response builds a ToolResponse from viewer's perspective and drains the
// events logged since the previous response.
func (s *Session) response(viewer int) *ToolResponse {
	view := s.game.View(viewer)
	resp := &ToolResponse{
		SessionID: s.ID,
		Events:    []EventView{},
		State:     &view,
		GameOver:  s.game.GameOver,
		Winner:    s.game.Winner,
		Result:    s.game.Result,
	}
	for _, e := range s.logger.Since(s.lastSeq) {
		resp.Events = append(resp.Events, EventView{
			Seq:     e.Seq,
			Turn:    e.Turn,
			Phase:   e.Phase,
			Player:  e.Player,
			Type:    e.Type.String(),
			Card:    e.Card,
			Details: e.Details,
		})
		s.lastSeq = e.Seq
	}
	return resp
}

func actionViews(actions []game.Action) []ActionView {
	views := make([]ActionView, len(actions))
	for i, a := range actions {
		views[i] = ActionView{Index: i, Type: a.Type.String(), Player: a.Player, Desc: a.String()}
	}
	return views
}
