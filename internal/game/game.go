package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/peterkuimelis/duelcore/internal/log"
)

const (
	// OpeningHandStarter is the starting player's opening hand; it stands in
	// for the skipped first draw.
	OpeningHandStarter = 6
	OpeningHandOther   = 5
)

// CombatContext is handed to a CombatResolver when an attack is declared.
type CombatContext struct {
	Game      *Game
	Attacker  *Card
	Target    *Card // nil for a direct attack
	Attacking *Player
	Defending *Player
}

// CombatResolver resolves a declared attack. The engine ships no damage
// algorithm; embedders supply one.
type CombatResolver interface {
	ResolveAttack(ctx *CombatContext) bool
}

// CombatFunc adapts a function to the CombatResolver interface.
type CombatFunc func(ctx *CombatContext) bool

func (f CombatFunc) ResolveAttack(ctx *CombatContext) bool { return f(ctx) }

// Config holds configuration for creating a new game.
type Config struct {
	Deck0          *Deck
	Deck1          *Deck
	Names          [2]string
	StartingPlayer int
	Logger         log.EventLogger
	Seed           int64 // RNG seed (0 for random)
	NoShuffle      bool  // skip deck shuffle (for deterministic tests)
	Combat         CombatResolver
}

// Game orchestrates two players through the phase/turn state machine.
type Game struct {
	Players          [2]*Player
	CurrentPlayerIdx int
	OpponentIdx      int
	TurnCount        int
	CurrentPhase     Phase

	GameOver bool
	Winner   int // player index, -1 while undecided
	Result   string

	Logger log.EventLogger
	combat CombatResolver
	rng    *rand.Rand
}

// NewGame builds a game from two validated decks. Decks are shuffled unless
// cfg.NoShuffle is set.
func NewGame(cfg Config) (*Game, error) {
	if cfg.Deck0 == nil || cfg.Deck1 == nil {
		return nil, ErrMissingDeck
	}
	if cfg.StartingPlayer != 0 && cfg.StartingPlayer != 1 {
		return nil, fmt.Errorf("starting player must be 0 or 1, got %d", cfg.StartingPlayer)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	names := cfg.Names
	for i := range names {
		if names[i] == "" {
			names[i] = fmt.Sprintf("Player %d", i+1)
		}
	}

	g := &Game{
		Players: [2]*Player{
			NewPlayer(0, names[0], cfg.Deck0),
			NewPlayer(1, names[1], cfg.Deck1),
		},
		CurrentPlayerIdx: cfg.StartingPlayer,
		OpponentIdx:      1 - cfg.StartingPlayer,
		CurrentPhase:     PhaseNone,
		Winner:           -1,
		Logger:           logger,
		combat:           cfg.Combat,
		rng:              rand.New(rand.NewSource(seed)),
	}

	if !cfg.NoShuffle {
		for i, p := range g.Players {
			p.Deck.Shuffle(g.rng)
			g.log(log.NewShuffleEvent(0, "", i))
		}
	}
	return g, nil
}

// CurrentPlayer returns the turn player.
func (g *Game) CurrentPlayer() *Player {
	return g.Players[g.CurrentPlayerIdx]
}

// Opponent returns the non-turn player.
func (g *Game) Opponent() *Player {
	return g.Players[g.OpponentIdx]
}

// OwnerOf returns the player that owns card, or nil.
func (g *Game) OwnerOf(card *Card) *Player {
	if card == nil || card.Owner < 0 || card.Owner > 1 {
		return nil
	}
	return g.Players[card.Owner]
}

// Rand exposes the game's seeded RNG to effects that need randomness.
func (g *Game) Rand() *rand.Rand {
	return g.rng
}

// StartGame deals opening hands: six cards for the starting player, five for
// the other. The starting player skips the draw of the first Draw Phase.
func (g *Game) StartGame() error {
	if g.CurrentPhase != PhaseNone {
		return ErrAlreadyStarted
	}
	g.TurnCount = 1
	g.CurrentPhase = PhaseDraw
	g.log(log.NewTurnEvent(g.TurnCount, g.CurrentPlayerIdx))

	g.draw(g.CurrentPlayer(), OpeningHandStarter)
	g.draw(g.Opponent(), OpeningHandOther)
	g.CheckGameOver()
	return nil
}

// NextPhase advances to the next phase of the cycle. Wrapping past the End
// Phase ends the turn; entering the Draw Phase draws one card for the new
// turn player.
func (g *Game) NextPhase() Phase {
	if g.CurrentPhase == PhaseNone || g.GameOver {
		return g.CurrentPhase
	}

	next := 0
	for i, p := range phaseOrder {
		if p == g.CurrentPhase {
			next = (i + 1) % len(phaseOrder)
			break
		}
	}
	if next == 0 {
		g.endTurn()
	}

	g.CurrentPhase = phaseOrder[next]
	g.log(log.NewPhaseChangeEvent(g.TurnCount, g.CurrentPhase.String(), g.CurrentPlayerIdx))

	if g.CurrentPhase == PhaseDraw {
		g.draw(g.CurrentPlayer(), 1)
	}
	g.CheckGameOver()
	return g.CurrentPhase
}

// endTurn resets the player whose turn is ending and hands the turn over.
func (g *Game) endTurn() {
	g.CurrentPlayer().ResetTurnState()
	g.CurrentPlayerIdx, g.OpponentIdx = g.OpponentIdx, g.CurrentPlayerIdx
	g.TurnCount++
	g.log(log.NewTurnEvent(g.TurnCount, g.CurrentPlayerIdx))
}

func (g *Game) draw(p *Player, count int) {
	remaining := p.Deck.RemainingCards()
	if drawn := p.Draw(count); drawn != nil {
		g.log(log.NewDrawEvent(g.TurnCount, g.CurrentPhase.String(), p.Index, len(drawn)))
		return
	}
	if p.HasLost {
		g.log(log.NewDeckOutEvent(g.TurnCount, g.CurrentPhase.String(), p.Index, count, remaining))
	}
}

// CheckGameOver ends the game if either player has lost. Player 0 is checked
// before player 1; the winner is the other player.
func (g *Game) CheckGameOver() bool {
	if g.GameOver {
		return true
	}
	for i, p := range g.Players {
		if !p.HasLost {
			continue
		}
		g.GameOver = true
		g.Winner = 1 - i
		g.Result = fmt.Sprintf("%s wins, %s lost", g.Players[g.Winner].Name, p.Name)
		g.log(log.NewWinEvent(g.TurnCount, g.CurrentPhase.String(), g.Winner, p.Name+" lost"))
		return true
	}
	return false
}

// log emits a game event through the logger.
func (g *Game) log(event log.GameEvent) {
	if g.Logger != nil {
		g.Logger.Log(event)
	}
}
