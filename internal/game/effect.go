package game

// Well-known effect and condition names the engine itself looks up.
const (
	// ConditionSpecialSummon grants a card permission to be special summoned.
	ConditionSpecialSummon = "special_summon"
	// ConditionActivate, when registered, gates effect activation of the card.
	ConditionActivate = "activate"
)

// EffectContext is passed to every effect and condition invocation.
type EffectContext struct {
	Game   *Game
	Player *Player // the player activating the effect
	Card   *Card   // the card the effect belongs to
	Args   map[string]any
}

// Effect is a named piece of per-card behaviour. Apply reports whether the
// effect did anything.
type Effect interface {
	Apply(ctx *EffectContext) bool
}

// Condition is a named predicate over the game state.
type Condition interface {
	Check(ctx *EffectContext) bool
}

// EffectFunc adapts a plain function to the Effect interface.
type EffectFunc func(ctx *EffectContext) bool

func (f EffectFunc) Apply(ctx *EffectContext) bool { return f(ctx) }

// ConditionFunc adapts a plain function to the Condition interface.
type ConditionFunc func(ctx *EffectContext) bool

func (f ConditionFunc) Check(ctx *EffectContext) bool { return f(ctx) }

// EffectRegistry maps card template ids to their named effects and conditions.
// It is filled at data-load time and consulted when card instances are built.
type EffectRegistry struct {
	effects    map[string]map[string]Effect
	conditions map[string]map[string]Condition
}

func NewEffectRegistry() *EffectRegistry {
	return &EffectRegistry{
		effects:    make(map[string]map[string]Effect),
		conditions: make(map[string]map[string]Condition),
	}
}

// Register binds an effect to a template under the given name, replacing any previous binding.
func (r *EffectRegistry) Register(templateID, name string, e Effect) {
	if r.effects[templateID] == nil {
		r.effects[templateID] = make(map[string]Effect)
	}
	r.effects[templateID][name] = e
}

// RegisterCondition binds a condition to a template under the given name.
func (r *EffectRegistry) RegisterCondition(templateID, name string, c Condition) {
	if r.conditions[templateID] == nil {
		r.conditions[templateID] = make(map[string]Condition)
	}
	r.conditions[templateID][name] = c
}

// EffectsFor returns a copy of the effects registered for a template.
func (r *EffectRegistry) EffectsFor(templateID string) map[string]Effect {
	out := make(map[string]Effect)
	if r == nil {
		return out
	}
	for name, e := range r.effects[templateID] {
		out[name] = e
	}
	return out
}

// ConditionsFor returns a copy of the conditions registered for a template.
func (r *EffectRegistry) ConditionsFor(templateID string) map[string]Condition {
	out := make(map[string]Condition)
	if r == nil {
		return out
	}
	for name, c := range r.conditions[templateID] {
		out[name] = c
	}
	return out
}
