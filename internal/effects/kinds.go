package effects

import (
	"fmt"

	"github.com/peterkuimelis/duelcore/internal/game"
	"github.com/peterkuimelis/duelcore/internal/log"
)

// --- Effect kinds ---

type drawParams struct {
	Count  int    `json:"count"`
	Target string `json:"target"`
}

// buildDraw: target player draws count cards. Fails without drawing when the
// deck is too short, since drawing past the deck would lose the game.
func buildDraw(params map[string]any) (game.Effect, error) {
	p := drawParams{Count: 1}
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if p.Count < 1 {
		return nil, fmt.Errorf("%w: count %d", ErrBadParams, p.Count)
	}
	target, err := checkTarget(p.Target)
	if err != nil {
		return nil, err
	}
	return game.EffectFunc(func(ctx *game.EffectContext) bool {
		pl := targetPlayer(ctx, target)
		if pl == nil || pl.Deck.RemainingCards() < p.Count {
			return false
		}
		drawn := pl.Draw(p.Count)
		turn, phase := turnAndPhase(ctx)
		emit(ctx, log.NewDrawEvent(turn, phase, pl.Index, len(drawn)))
		return true
	}), nil
}

type modifyStatsParams struct {
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Level   int `json:"level"`
}

// buildModifyStats adds to the card's own modifiers.
func buildModifyStats(params map[string]any) (game.Effect, error) {
	var p modifyStatsParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if p == (modifyStatsParams{}) {
		return nil, fmt.Errorf("%w: no stat changes", ErrBadParams)
	}
	return game.EffectFunc(func(ctx *game.EffectContext) bool {
		c := ctx.Card
		if c == nil || !c.IsMonster() {
			return false
		}
		c.AttackModifier += p.Attack
		c.DefenseModifier += p.Defense
		c.LevelModifier += p.Level
		return true
	}), nil
}

type addCounterParams struct {
	Counter string `json:"counter"`
	Amount  int    `json:"amount"`
}

func buildAddCounter(params map[string]any) (game.Effect, error) {
	p := addCounterParams{Amount: 1}
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if p.Counter == "" || p.Amount == 0 {
		return nil, fmt.Errorf("%w: counter %q amount %d", ErrBadParams, p.Counter, p.Amount)
	}
	return game.EffectFunc(func(ctx *game.EffectContext) bool {
		if ctx.Card == nil {
			return false
		}
		// Removing counters the card does not have does nothing.
		if p.Amount < 0 && ctx.Card.Counters[p.Counter] == 0 {
			return false
		}
		ctx.Card.AddCounter(p.Counter, p.Amount)
		return true
	}), nil
}

type lifePointsParams struct {
	Amount int    `json:"amount"`
	Target string `json:"target"`
}

// buildLifePoints changes the target player's life points; negative amounts
// are damage. Reaching 0 loses the game.
func buildLifePoints(params map[string]any) (game.Effect, error) {
	var p lifePointsParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if p.Amount == 0 {
		return nil, fmt.Errorf("%w: amount 0", ErrBadParams)
	}
	target, err := checkTarget(p.Target)
	if err != nil {
		return nil, err
	}
	return game.EffectFunc(func(ctx *game.EffectContext) bool {
		pl := targetPlayer(ctx, target)
		if pl == nil {
			return false
		}
		old, updated := pl.AdjustLifePoints(p.Amount)
		turn, phase := turnAndPhase(ctx)
		emit(ctx, log.NewLifePointChangeEvent(turn, phase, pl.Index, old, updated))
		return true
	}), nil
}

type sendToGraveyardParams struct {
	Reason string `json:"reason"`
}

// buildSendToGraveyard sends the card itself to its owner's graveyard.
func buildSendToGraveyard(params map[string]any) (game.Effect, error) {
	p := sendToGraveyardParams{Reason: "effect"}
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	return game.EffectFunc(func(ctx *game.EffectContext) bool {
		c := ctx.Card
		if c == nil || c.Location == game.LocationGraveyard || ctx.Game == nil {
			return false
		}
		owner := ctx.Game.OwnerOf(c)
		if owner == nil {
			return false
		}
		owner.SendToGraveyard(c)
		turn, phase := turnAndPhase(ctx)
		emit(ctx, log.NewSendToGraveyardEvent(turn, phase, owner.Index, c.Name, p.Reason))
		return true
	}), nil
}

// buildBanish removes the card itself from play.
func buildBanish(params map[string]any) (game.Effect, error) {
	if err := decodeParams(params, &struct{}{}); err != nil {
		return nil, err
	}
	return game.EffectFunc(func(ctx *game.EffectContext) bool {
		c := ctx.Card
		if c == nil || c.Location == game.LocationBanished || ctx.Game == nil {
			return false
		}
		owner := ctx.Game.OwnerOf(c)
		if owner == nil {
			return false
		}
		owner.BanishCard(c)
		turn, phase := turnAndPhase(ctx)
		emit(ctx, log.NewBanishEvent(turn, phase, owner.Index, c.Name))
		return true
	}), nil
}

type returnToDeckParams struct {
	Position int `json:"position"`
}

// buildReturnToDeck puts the card back into its owner's deck at position
// (0 top, -1 bottom). Extra deck monsters go back to the extra deck.
func buildReturnToDeck(params map[string]any) (game.Effect, error) {
	p := returnToDeckParams{Position: -1}
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if p.Position < -1 {
		return nil, fmt.Errorf("%w: position %d", ErrBadParams, p.Position)
	}
	return game.EffectFunc(func(ctx *game.EffectContext) bool {
		c := ctx.Card
		if c == nil || ctx.Game == nil {
			return false
		}
		if c.Location == game.LocationDeck || c.Location == game.LocationExtraDeck {
			return false
		}
		owner := ctx.Game.OwnerOf(c)
		if owner == nil {
			return false
		}
		owner.ReturnToDeck(c, p.Position)
		turn, phase := turnAndPhase(ctx)
		emit(ctx, log.NewReturnToDeckEvent(turn, phase, owner.Index, c.Name))
		return true
	}), nil
}

// buildClearModifiers drops every stat modifier on the card. It fails when
// there is nothing to clear.
func buildClearModifiers(params map[string]any) (game.Effect, error) {
	if err := decodeParams(params, &struct{}{}); err != nil {
		return nil, err
	}
	return game.EffectFunc(func(ctx *game.EffectContext) bool {
		c := ctx.Card
		if c == nil || !c.IsMonster() {
			return false
		}
		if c.AttackModifier == 0 && c.DefenseModifier == 0 && c.LevelModifier == 0 {
			return false
		}
		c.ClearModifiers()
		return true
	}), nil
}

// --- Condition kinds ---

func buildAlways(params map[string]any) (game.Condition, error) {
	if err := decodeParams(params, &struct{}{}); err != nil {
		return nil, err
	}
	return game.ConditionFunc(func(*game.EffectContext) bool { return true }), nil
}

type inPhaseParams struct {
	Phases []string `json:"phases"`
}

func buildInPhase(params map[string]any) (game.Condition, error) {
	var p inPhaseParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if len(p.Phases) == 0 {
		return nil, fmt.Errorf("%w: no phases", ErrBadParams)
	}
	allowed := make(map[game.Phase]bool, len(p.Phases))
	for _, s := range p.Phases {
		ph, err := game.ParsePhase(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadParams, err)
		}
		allowed[ph] = true
	}
	return game.ConditionFunc(func(ctx *game.EffectContext) bool {
		return ctx.Game != nil && allowed[ctx.Game.CurrentPhase]
	}), nil
}

type countersAtLeastParams struct {
	Counter string `json:"counter"`
	Amount  int    `json:"amount"`
}

func buildCountersAtLeast(params map[string]any) (game.Condition, error) {
	p := countersAtLeastParams{Amount: 1}
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if p.Counter == "" {
		return nil, fmt.Errorf("%w: counter missing", ErrBadParams)
	}
	return game.ConditionFunc(func(ctx *game.EffectContext) bool {
		return ctx.Card != nil && ctx.Card.Counters[p.Counter] >= p.Amount
	}), nil
}

type lifePointsAtMostParams struct {
	Amount int    `json:"amount"`
	Target string `json:"target"`
}

func buildLifePointsAtMost(params map[string]any) (game.Condition, error) {
	var p lifePointsAtMostParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	target, err := checkTarget(p.Target)
	if err != nil {
		return nil, err
	}
	return game.ConditionFunc(func(ctx *game.EffectContext) bool {
		pl := targetPlayer(ctx, target)
		return pl != nil && pl.LifePoints <= p.Amount
	}), nil
}
