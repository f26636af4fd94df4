package game

import (
	"fmt"
	"sort"
)

// --- Card template (static, from the catalog) ---

// Template is the immutable record a card instance is built from.
type Template struct {
	ID             string
	Name           string
	CardType       CardType
	Description    string
	Level          *int
	Attack         *int
	Defense        *int
	MonsterType    MonsterType
	MonsterAbility MonsterAbility
	Attribute      Attribute
	Race           Race
	SpellType      SpellType
	TrapType       TrapType
}

// TemplateSource supplies card templates by identifier.
type TemplateSource interface {
	Template(id string) (*Template, error)
}

// CardFactory builds fresh card instances from templates and binds the
// effects registered for each template.
type CardFactory struct {
	Templates TemplateSource
	Effects   *EffectRegistry
}

// NewCard returns a new mutable instance of the template with the given id.
func (f CardFactory) NewCard(id string) (*Card, error) {
	if f.Templates == nil {
		return nil, fmt.Errorf("card %q: %w", id, ErrUnknownCardID)
	}
	tmpl, err := f.Templates.Template(id)
	if err != nil {
		return nil, err
	}
	c := NewCard(tmpl)
	c.Effects = f.Effects.EffectsFor(id)
	c.Conditions = f.Effects.ConditionsFor(id)
	return c, nil
}

// --- Card instance ---

// Card is one instance of a template in play. Two copies of the same template
// share an ID but are distinct instances.
type Card struct {
	ID          string
	Name        string
	CardType    CardType
	Description string

	// Monster-only
	Level          *int
	Attack         *int
	Defense        *int
	MonsterType    MonsterType
	MonsterAbility MonsterAbility
	Attribute      Attribute
	Race           Race

	SpellType SpellType
	TrapType  TrapType

	Position Position // nil while not placed
	Location Location
	Owner    int // player index, -1 when unowned

	AttackModifier  int
	DefenseModifier int
	LevelModifier   int
	Counters        map[string]int

	// Per-turn flags, reset by ResetTurnFlags
	CanAttack               bool
	CanChangePosition       bool
	CanActivateEffect       bool
	SummonedThisTurn        bool
	PositionChangedThisTurn bool
	EffectActivatedThisTurn bool

	TurnPlaced int // turn the card last entered the field

	Effects    map[string]Effect
	Conditions map[string]Condition
}

// NewCard creates an unplaced instance of tmpl with no effects bound.
func NewCard(tmpl *Template) *Card {
	c := &Card{
		ID:             tmpl.ID,
		Name:           tmpl.Name,
		CardType:       tmpl.CardType,
		Description:    tmpl.Description,
		SpellType:      tmpl.SpellType,
		TrapType:       tmpl.TrapType,
		Owner:          -1,
		Counters:       make(map[string]int),
		Effects:        make(map[string]Effect),
		Conditions:     make(map[string]Condition),
		MonsterType:    tmpl.MonsterType,
		MonsterAbility: tmpl.MonsterAbility,
		Attribute:      tmpl.Attribute,
		Race:           tmpl.Race,
	}
	if tmpl.CardType == CardTypeMonster {
		c.Level = copyInt(tmpl.Level)
		c.Attack = copyInt(tmpl.Attack)
		c.Defense = copyInt(tmpl.Defense)
	}
	c.ResetTurnFlags()
	return c
}

func (c *Card) String() string {
	if c == nil {
		return "(empty)"
	}
	return c.Name
}

// CurrentAttack returns base ATK plus modifier; ok is false when ATK is undefined.
func (c *Card) CurrentAttack() (int, bool) {
	return withModifier(c.Attack, c.AttackModifier)
}

// CurrentDefense returns base DEF plus modifier; ok is false when DEF is undefined.
func (c *Card) CurrentDefense() (int, bool) {
	return withModifier(c.Defense, c.DefenseModifier)
}

// CurrentLevel returns base level plus modifier; ok is false when level is undefined.
func (c *Card) CurrentLevel() (int, bool) {
	return withModifier(c.Level, c.LevelModifier)
}

func (c *Card) IsMonster() bool { return c.CardType == CardTypeMonster }
func (c *Card) IsSpell() bool   { return c.CardType == CardTypeSpell }
func (c *Card) IsTrap() bool    { return c.CardType == CardTypeTrap }

// IsFieldSpell reports whether the card is a Field Spell.
func (c *Card) IsFieldSpell() bool {
	return c.IsSpell() && c.SpellType == SpellField
}

// IsFaceUp reports whether the card is placed face-up.
func (c *Card) IsFaceUp() bool {
	return c.Position != nil && c.Position.FaceUp()
}

// MonsterPosition returns the card's monster position, or 0 if it has none.
func (c *Card) MonsterPosition() MonsterPosition {
	if p, ok := c.Position.(MonsterPosition); ok {
		return p
	}
	return 0
}

// positionKind is the Position variant this card accepts.
func (c *Card) positionKind() PositionKind {
	if c.IsMonster() {
		return PositionKindMonster
	}
	return PositionKindSpellTrap
}

// SetPosition changes the card's position. The variant must match the card
// type; on mismatch the existing position is kept.
func (c *Card) SetPosition(pos Position) error {
	if pos == nil || !pos.Valid() || pos.Kind() != c.positionKind() {
		return fmt.Errorf("%s: %v for %s card: %w", c.Name, pos, c.CardType, ErrInvalidPositionKind)
	}
	c.Position = pos
	c.PositionChangedThisTurn = true
	return nil
}

// TributesRequired returns how many tributes a normal/tribute summon of this monster needs.
func (c *Card) TributesRequired() int {
	level, ok := c.CurrentLevel()
	if !ok || level <= 4 {
		return 0
	}
	if level <= 6 {
		return 1
	}
	return 2
}

func (c *Card) CanBeSummoned() bool {
	return c.IsMonster()
}

// CanBeActivated reports activation eligibility. Phase and face-down legality
// are the caller's concern.
func (c *Card) CanBeActivated() bool {
	if c.IsMonster() {
		return c.CanActivateEffect
	}
	return true
}

// ResetTurnFlags restores all per-turn flags to their defaults.
func (c *Card) ResetTurnFlags() {
	c.CanAttack = true
	c.CanChangePosition = true
	c.CanActivateEffect = true
	c.SummonedThisTurn = false
	c.PositionChangedThisTurn = false
	c.EffectActivatedThisTurn = false
}

// clearPlacement drops field-only state when the card leaves the field.
func (c *Card) clearPlacement() {
	c.Position = nil
}

// HasEffect reports whether an effect with the given name is bound.
func (c *Card) HasEffect(name string) bool {
	_, ok := c.Effects[name]
	return ok
}

// HasCondition reports whether a condition with the given name is bound.
func (c *Card) HasCondition(name string) bool {
	_, ok := c.Conditions[name]
	return ok
}

// ApplyEffect invokes the named effect. A missing effect is a no-op that returns false.
func (c *Card) ApplyEffect(name string, ctx *EffectContext) bool {
	e, ok := c.Effects[name]
	if !ok || e == nil {
		return false
	}
	return e.Apply(c.effectContext(ctx))
}

// CheckCondition evaluates the named condition, defaulting to false when absent.
func (c *Card) CheckCondition(name string, ctx *EffectContext) bool {
	cond, ok := c.Conditions[name]
	if !ok || cond == nil {
		return false
	}
	return cond.Check(c.effectContext(ctx))
}

func (c *Card) effectContext(ctx *EffectContext) *EffectContext {
	if ctx == nil {
		ctx = &EffectContext{}
	}
	if ctx.Card == nil {
		ctx.Card = c
	}
	return ctx
}

// AddCounter adds n (possibly negative) to a named counter, dropping it at zero.
func (c *Card) AddCounter(name string, n int) int {
	v := c.Counters[name] + n
	if v <= 0 {
		delete(c.Counters, name)
		return 0
	}
	c.Counters[name] = v
	return v
}

// ClearModifiers removes all stat modifiers. Turn resets never do this.
func (c *Card) ClearModifiers() {
	c.AttackModifier = 0
	c.DefenseModifier = 0
	c.LevelModifier = 0
}

// EffectNames returns the bound effect names in sorted order.
func (c *Card) EffectNames() []string {
	names := make([]string, 0, len(c.Effects))
	for name := range c.Effects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func withModifier(base *int, mod int) (int, bool) {
	if base == nil {
		return 0, false
	}
	return *base + mod, true
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// IntPtr is a convenience for building templates.
func IntPtr(v int) *int { return &v }
