// Package effects builds game.Effect and game.Condition values from catalog
// data. Each entry names a generic kind ("draw", "modify_stats", ...) plus
// kind-specific params.
package effects

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/mitchellh/mapstructure"

	"github.com/peterkuimelis/duelcore/internal/game"
	"github.com/peterkuimelis/duelcore/internal/log"
)

var (
	ErrUnknownKind = errors.New("unknown effect kind")
	ErrBadParams   = errors.New("bad effect params")
)

// Spec is the serialized form of one effect or condition.
type Spec struct {
	Kind   string         `yaml:"kind" json:"kind"`
	Params map[string]any `yaml:"params,omitempty" json:"params,omitempty"`
}

// Target selects which player an effect or condition looks at.
const (
	TargetSelf     = "self"
	TargetOpponent = "opponent"
)

type effectBuilder func(params map[string]any) (game.Effect, error)
type conditionBuilder func(params map[string]any) (game.Condition, error)

var effectKinds = map[string]effectBuilder{
	"draw":              buildDraw,
	"modify_stats":      buildModifyStats,
	"add_counter":       buildAddCounter,
	"life_points":       buildLifePoints,
	"send_to_graveyard": buildSendToGraveyard,
	"banish":            buildBanish,
	"return_to_deck":    buildReturnToDeck,
	"clear_modifiers":   buildClearModifiers,
}

var conditionKinds = map[string]conditionBuilder{
	"always":              buildAlways,
	"in_phase":            buildInPhase,
	"counters_at_least":   buildCountersAtLeast,
	"life_points_at_most": buildLifePointsAtMost,
}

// EffectKinds lists the registered effect kinds, sorted.
func EffectKinds() []string { return sortedKeys(effectKinds) }

// ConditionKinds lists the registered condition kinds, sorted.
func ConditionKinds() []string { return sortedKeys(conditionKinds) }

// Build turns a spec into an Effect.
func Build(spec Spec) (game.Effect, error) {
	b, ok := effectKinds[spec.Kind]
	if !ok {
		return nil, fmt.Errorf("%q: %w", spec.Kind, ErrUnknownKind)
	}
	e, err := b(spec.Params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", spec.Kind, err)
	}
	return e, nil
}

// BuildCondition turns a spec into a Condition.
func BuildCondition(spec Spec) (game.Condition, error) {
	b, ok := conditionKinds[spec.Kind]
	if !ok {
		return nil, fmt.Errorf("condition %q: %w", spec.Kind, ErrUnknownKind)
	}
	c, err := b(spec.Params)
	if err != nil {
		return nil, fmt.Errorf("condition %s: %w", spec.Kind, err)
	}
	return c, nil
}

// Bind builds every spec and registers it for templateID.
func Bind(reg *game.EffectRegistry, templateID string, effects, conditions map[string]Spec) error {
	for _, name := range sortedKeys(effects) {
		e, err := Build(effects[name])
		if err != nil {
			return fmt.Errorf("card %s effect %q: %w", templateID, name, err)
		}
		reg.Register(templateID, name, e)
	}
	for _, name := range sortedKeys(conditions) {
		c, err := BuildCondition(conditions[name])
		if err != nil {
			return fmt.Errorf("card %s condition %q: %w", templateID, name, err)
		}
		reg.RegisterCondition(templateID, name, c)
	}
	return nil
}

// decodeParams decodes untyped params into out, rejecting unknown keys.
func decodeParams(params map[string]any, out any) error {
	decoderConfig := &mapstructure.DecoderConfig{
		DecodeHook:  stringToIntHookFunc(),
		Result:      out,
		TagName:     "json",
		ErrorUnused: true,
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return err
	}
	if err := decoder.Decode(params); err != nil {
		return fmt.Errorf("%w: %v", ErrBadParams, err)
	}
	return nil
}

// stringToIntHookFunc lets numeric params arrive as strings ("2").
func stringToIntHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		if from == reflect.String && to == reflect.Int {
			return strconv.Atoi(data.(string))
		}
		return data, nil
	}
}

func checkTarget(target string) (string, error) {
	switch target {
	case "", TargetSelf:
		return TargetSelf, nil
	case TargetOpponent:
		return TargetOpponent, nil
	}
	return "", fmt.Errorf("%w: target %q", ErrBadParams, target)
}

// targetPlayer resolves target relative to the activating player.
func targetPlayer(ctx *game.EffectContext, target string) *game.Player {
	self := ctx.Player
	if self == nil && ctx.Game != nil {
		self = ctx.Game.OwnerOf(ctx.Card)
	}
	if self == nil || target == TargetSelf {
		return self
	}
	if ctx.Game == nil {
		return nil
	}
	return ctx.Game.Players[1-self.Index]
}

func emit(ctx *game.EffectContext, event log.GameEvent) {
	if ctx.Game != nil && ctx.Game.Logger != nil {
		ctx.Game.Logger.Log(event)
	}
}

func turnAndPhase(ctx *game.EffectContext) (int, string) {
	if ctx.Game == nil {
		return 0, ""
	}
	return ctx.Game.TurnCount, ctx.Game.CurrentPhase.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
