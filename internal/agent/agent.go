// Package agent drives games through the engine's public API: it lists
// legal actions, lets a Controller pick one, and advances phases.
package agent

import (
	"context"
	"math/rand"

	charmlog "github.com/charmbracelet/log"

	"github.com/peterkuimelis/duelcore/internal/game"
)

// Controller chooses an action for a player. Returning ok=false passes,
// which for the turn player advances to the next phase.
type Controller interface {
	ChooseAction(ctx context.Context, g *game.Game, player int, actions []game.Action) (a game.Action, ok bool, err error)
}

// Random picks uniformly among legal actions and passes with PassChance.
// EndTurn is never picked; passing through the phases ends the turn.
type Random struct {
	PassChance float64
	rng        *rand.Rand
}

// NewRandom returns a Random controller with its own seeded source.
func NewRandom(seed int64) *Random {
	return &Random{PassChance: 0.25, rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) ChooseAction(_ context.Context, _ *game.Game, _ int, actions []game.Action) (game.Action, bool, error) {
	var choices []game.Action
	for _, a := range actions {
		if a.Type != game.ActionEndTurn {
			choices = append(choices, a)
		}
	}
	if len(choices) == 0 || r.rng.Float64() < r.PassChance {
		return game.Action{}, false, nil
	}
	return choices[r.rng.Intn(len(choices))], true, nil
}

// ControllerFunc adapts a function to the Controller interface.
type ControllerFunc func(ctx context.Context, g *game.Game, player int, actions []game.Action) (game.Action, bool, error)

func (f ControllerFunc) ChooseAction(ctx context.Context, g *game.Game, player int, actions []game.Action) (game.Action, bool, error) {
	return f(ctx, g, player, actions)
}

// Passive always passes.
type Passive struct{}

func (Passive) ChooseAction(context.Context, *game.Game, int, []game.Action) (game.Action, bool, error) {
	return game.Action{}, false, nil
}

// MaxActionsPerPhase bounds how many actions the turn player may take before
// the runner forces the phase forward.
const MaxActionsPerPhase = 30

// Result summarises a finished run.
type Result struct {
	Winner   int // -1 when no one won
	Turns    int
	Actions  int
	Failed   int // rejected actions and effects that did nothing
	Result   string
	TimedOut bool // stopped at MaxTurns
}

// Runner plays a started game to completion.
type Runner struct {
	Game        *game.Game
	Controllers [2]Controller
	MaxTurns    int // 0 means unbounded
	Log         *charmlog.Logger
}

// Run loops until the game ends, MaxTurns is exceeded, or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	g := r.Game
	var res Result
	for !g.GameOver {
		if err := ctx.Err(); err != nil {
			return r.result(res), err
		}
		if r.MaxTurns > 0 && g.TurnCount > r.MaxTurns {
			res.TimedOut = true
			break
		}
		if err := r.playPhase(ctx, &res); err != nil {
			return r.result(res), err
		}
		if g.GameOver {
			break
		}
		if g.CurrentPhase == game.PhaseEnd && g.CurrentPlayer().HandCount() > game.MaxHandSize {
			if err := r.discardDown(ctx, &res); err != nil {
				return r.result(res), err
			}
		}
		g.NextPhase()
	}
	return r.result(res), nil
}

// playPhase lets the turn player act until they pass, offering the
// opponent a response after every executed action.
func (r *Runner) playPhase(ctx context.Context, res *Result) error {
	g := r.Game
	for n := 0; n < MaxActionsPerPhase && !g.GameOver; n++ {
		pi := g.CurrentPlayerIdx
		acted, err := r.offer(ctx, pi, g.LegalActionsFor(pi), res)
		if err != nil || !acted {
			return err
		}
		if g.GameOver {
			return nil
		}
		if _, err := r.offer(ctx, g.OpponentIdx, g.LegalActionsFor(g.OpponentIdx), res); err != nil {
			return err
		}
	}
	return nil
}

// discardDown forces End Phase discards; passing picks the first card.
func (r *Runner) discardDown(ctx context.Context, res *Result) error {
	g := r.Game
	pi := g.CurrentPlayerIdx
	for g.CurrentPlayer().HandCount() > game.MaxHandSize {
		var discards []game.Action
		for _, a := range g.LegalActionsFor(pi) {
			if a.Type == game.ActionDiscard {
				discards = append(discards, a)
			}
		}
		if len(discards) == 0 {
			return nil
		}
		a, ok, err := r.controller(pi).ChooseAction(ctx, g, pi, discards)
		if err != nil {
			return err
		}
		if !ok || a.Type != game.ActionDiscard {
			a = discards[0]
		}
		r.execute(a, res)
	}
	return nil
}

func (r *Runner) offer(ctx context.Context, pi int, actions []game.Action, res *Result) (bool, error) {
	if len(actions) == 0 {
		return false, nil
	}
	a, ok, err := r.controller(pi).ChooseAction(ctx, r.Game, pi, actions)
	if err != nil || !ok {
		return false, err
	}
	a.Player = pi
	r.execute(a, res)
	return true, nil
}

func (r *Runner) execute(a game.Action, res *Result) {
	if r.Game.ExecuteAction(a) {
		res.Actions++
		if r.Log != nil {
			r.Log.Debug("action", "turn", r.Game.TurnCount, "player", a.Player, "action", a.String())
		}
		return
	}
	res.Failed++
	if r.Log != nil {
		r.Log.Debug("action failed", "player", a.Player, "action", a.String(), "err", r.Game.Check(a))
	}
}

func (r *Runner) controller(pi int) Controller {
	if c := r.Controllers[pi]; c != nil {
		return c
	}
	return Passive{}
}

func (r *Runner) result(res Result) Result {
	res.Winner = r.Game.Winner
	res.Turns = r.Game.TurnCount
	res.Result = r.Game.Result
	return res
}
