package game

import (
	"fmt"
	"strings"

	"github.com/peterkuimelis/duelcore/internal/log"
)

// --- Action types ---

type ActionType int

const (
	ActionDraw ActionType = iota
	ActionNormalSummon
	ActionTributeSummon
	ActionFlipSummon
	ActionSpecialSummon
	ActionActivateSpell
	ActionActivateSpellEffect
	ActionSetSpell
	ActionActivateTrap
	ActionActivateTrapEffect
	ActionSetTrap
	ActionActivateMonsterEffect
	ActionChangeMonsterPosition
	ActionDiscard
	ActionEndTurn
	ActionAttack
	ActionDirectAttack
)

func (a ActionType) String() string {
	switch a {
	case ActionDraw:
		return "Draw"
	case ActionNormalSummon:
		return "Normal Summon"
	case ActionTributeSummon:
		return "Tribute Summon"
	case ActionFlipSummon:
		return "Flip Summon"
	case ActionSpecialSummon:
		return "Special Summon"
	case ActionActivateSpell:
		return "Activate Spell"
	case ActionActivateSpellEffect:
		return "Activate Spell Effect"
	case ActionSetSpell:
		return "Set Spell"
	case ActionActivateTrap:
		return "Activate Trap"
	case ActionActivateTrapEffect:
		return "Activate Trap Effect"
	case ActionSetTrap:
		return "Set Trap"
	case ActionActivateMonsterEffect:
		return "Activate Monster Effect"
	case ActionChangeMonsterPosition:
		return "Change Monster Position"
	case ActionDiscard:
		return "Discard"
	case ActionEndTurn:
		return "End Turn"
	case ActionAttack:
		return "Attack"
	case ActionDirectAttack:
		return "Direct Attack"
	default:
		return "Unknown"
	}
}

// ParseActionType accepts either the display name ("Normal Summon") or its
// snake_case form ("normal_summon").
func ParseActionType(s string) (ActionType, error) {
	key := normalizeKey(s)
	for a := ActionDraw; a <= ActionDirectAttack; a++ {
		if normalizeKey(a.String()) == key {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownActionType)
}

// Action represents a player action with all necessary details. Which fields
// matter depends on Type.
type Action struct {
	Type           ActionType
	Player         int      // acting player
	HandIndex      int      // card in hand
	Zone           int      // monster or spell/trap zone of the acting player's card
	Target         int      // opponent monster zone attacked
	Position       Position // requested position
	Tributes       []int    // monster zones to tribute, in payment order
	Source         Location // where the card comes from (special summon, spell activation)
	CardID         string   // extra deck card to special summon
	GraveyardIndex int
	BanishedIndex  int
	Effect         string // effect name to apply
	Args           map[string]any
	Desc           string // human-readable description
}

func (a Action) String() string {
	if a.Desc != "" {
		return a.Desc
	}
	return a.Type.String()
}

// Check reports why a would be rejected, or nil if it may be executed. It
// never mutates the game.
func (g *Game) Check(a Action) error {
	if g.CurrentPhase == PhaseNone {
		return ErrNotStarted
	}
	if g.GameOver {
		return ErrGameOver
	}
	if a.Player != 0 && a.Player != 1 {
		return fmt.Errorf("player %d: %w", a.Player, ErrIndexOutOfRange)
	}
	if a.Player != g.CurrentPlayerIdx && a.Type != ActionActivateTrap && a.Type != ActionActivateTrapEffect {
		return ErrNotYourTurn
	}
	p := g.Players[a.Player]

	switch a.Type {
	case ActionDraw:
		return ErrNotPlayerAction

	case ActionNormalSummon, ActionTributeSummon:
		if !g.CurrentPhase.IsMain() {
			return ErrWrongPhase
		}
		if p.NormalSummonUsed {
			return ErrSummonUsed
		}
		card, err := handCard(p, a.HandIndex, CardTypeMonster)
		if err != nil {
			return err
		}
		if err := normalSummonPosition(a.Position); err != nil {
			return err
		}
		required := card.TributesRequired()
		if a.Type == ActionNormalSummon {
			if required != 0 || len(a.Tributes) != 0 {
				return fmt.Errorf("%s needs %d tribute(s): %w", card.Name, required, ErrSummonCost)
			}
			if len(p.Field.FreeMonsterZones()) == 0 {
				return ErrNoFreeZone
			}
			return nil
		}
		if required == 0 || len(a.Tributes) != required {
			return fmt.Errorf("%s needs %d tribute(s), got %d: %w", card.Name, required, len(a.Tributes), ErrSummonCost)
		}
		seen := make(map[int]bool, len(a.Tributes))
		for _, zone := range a.Tributes {
			if seen[zone] {
				return fmt.Errorf("zone %d tributed twice: %w", zone, ErrSummonCost)
			}
			seen[zone] = true
			if p.Field.MonsterAt(zone) == nil {
				return fmt.Errorf("tribute zone %d: %w", zone, ErrEmptyZone)
			}
		}
		return nil

	case ActionFlipSummon:
		if !g.CurrentPhase.IsMain() {
			return ErrWrongPhase
		}
		if p.NormalSummonUsed {
			return ErrSummonUsed
		}
		m, err := monsterAt(p, a.Zone)
		if err != nil {
			return err
		}
		if m.MonsterPosition() != FaceDownDefense {
			return ErrInvalidPosition
		}
		if m.SummonedThisTurn || m.TurnPlaced >= g.TurnCount {
			return ErrOncePerTurn
		}
		return nil

	case ActionSpecialSummon:
		card, err := g.specialSummonCard(p, a)
		if err != nil {
			return err
		}
		pos, ok := a.Position.(MonsterPosition)
		if !ok || !pos.Valid() {
			return ErrInvalidPosition
		}
		if !card.CheckCondition(ConditionSpecialSummon, g.effectContext(p, card, a.Args)) {
			return ErrConditionFailed
		}
		if len(p.Field.FreeMonsterZones()) == 0 {
			return ErrNoFreeZone
		}
		return nil

	case ActionActivateSpell:
		if !g.CurrentPhase.IsMain() {
			return ErrWrongPhase
		}
		if a.Source == LocationHand {
			card, err := handCard(p, a.HandIndex, CardTypeSpell)
			if err != nil {
				return err
			}
			if !card.IsFieldSpell() && len(p.Field.FreeSpellTrapZones()) == 0 {
				return ErrNoFreeZone
			}
			return nil
		}
		card, err := spellTrapAt(p, a.Zone, CardTypeSpell)
		if err != nil {
			return err
		}
		if card.IsFaceUp() {
			return ErrNotActivatable
		}
		return nil

	case ActionSetSpell, ActionSetTrap:
		if !g.CurrentPhase.IsMain() {
			return ErrWrongPhase
		}
		want := CardTypeSpell
		if a.Type == ActionSetTrap {
			want = CardTypeTrap
		}
		card, err := handCard(p, a.HandIndex, want)
		if err != nil {
			return err
		}
		if !card.IsFieldSpell() && len(p.Field.FreeSpellTrapZones()) == 0 {
			return ErrNoFreeZone
		}
		return nil

	case ActionActivateTrap:
		card, err := spellTrapAt(p, a.Zone, CardTypeTrap)
		if err != nil {
			return err
		}
		if card.IsFaceUp() {
			return ErrNotActivatable
		}
		if card.TurnPlaced >= g.TurnCount {
			return ErrOncePerTurn
		}
		return nil

	case ActionActivateSpellEffect, ActionActivateTrapEffect:
		if a.Type == ActionActivateSpellEffect && !g.CurrentPhase.IsMain() {
			return ErrWrongPhase
		}
		want := CardTypeSpell
		if a.Type == ActionActivateTrapEffect {
			want = CardTypeTrap
		}
		card, err := spellTrapAt(p, a.Zone, want)
		if err != nil {
			return err
		}
		if !card.IsFaceUp() {
			return ErrNotActivatable
		}
		return g.checkEffect(p, card, a)

	case ActionActivateMonsterEffect:
		m, err := monsterAt(p, a.Zone)
		if err != nil {
			return err
		}
		if !m.IsFaceUp() || !m.CanBeActivated() {
			return ErrNotActivatable
		}
		return g.checkEffect(p, m, a)

	case ActionChangeMonsterPosition:
		if !g.CurrentPhase.IsMain() {
			return ErrWrongPhase
		}
		m, err := monsterAt(p, a.Zone)
		if err != nil {
			return err
		}
		if !m.IsFaceUp() {
			return ErrInvalidPosition
		}
		pos, ok := a.Position.(MonsterPosition)
		if !ok || pos == FaceDownDefense || !pos.Valid() || pos == m.MonsterPosition() {
			return ErrInvalidPosition
		}
		if !m.CanChangePosition || m.PositionChangedThisTurn {
			return ErrOncePerTurn
		}
		return nil

	case ActionDiscard:
		if p.HandCard(a.HandIndex) == nil {
			return fmt.Errorf("hand index %d: %w", a.HandIndex, ErrIndexOutOfRange)
		}
		return nil

	case ActionEndTurn:
		return nil

	case ActionAttack, ActionDirectAttack:
		if g.CurrentPhase != PhaseBattle {
			return ErrWrongPhase
		}
		if g.combat == nil {
			return ErrNoCombatResolver
		}
		if !p.CanConductBattlePhase {
			return ErrWrongPhase
		}
		m, err := monsterAt(p, a.Zone)
		if err != nil {
			return err
		}
		if m.MonsterPosition() != FaceUpAttack {
			return ErrInvalidPosition
		}
		if !m.CanAttack {
			return ErrOncePerTurn
		}
		if a.Type == ActionAttack && g.Players[1-a.Player].Field.MonsterAt(a.Target) == nil {
			return fmt.Errorf("attack target zone %d: %w", a.Target, ErrEmptyZone)
		}
		return nil
	}
	return fmt.Errorf("%d: %w", a.Type, ErrUnknownActionType)
}

// ExecuteAction applies a if it is legal. A rejected action returns false and
// leaves the game unchanged; a successful one ends with a game-over check.
func (g *Game) ExecuteAction(a Action) bool {
	if err := g.Check(a); err != nil {
		g.log(log.NewRejectedEvent(g.TurnCount, g.CurrentPhase.String(), a.Player, a.String(), err))
		return false
	}
	if !g.apply(a) {
		return false
	}
	g.CheckGameOver()
	return true
}

func (g *Game) apply(a Action) bool {
	p := g.Players[a.Player]
	turn, phase := g.TurnCount, g.CurrentPhase.String()

	switch a.Type {
	case ActionNormalSummon, ActionTributeSummon:
		card := p.Hand[a.HandIndex]
		pos := a.Position.(MonsterPosition)
		var tributes []string
		for _, zone := range a.Tributes {
			tributes = append(tributes, p.Field.MonsterAt(zone).Name)
		}
		if !p.SummonMonster(a.HandIndex, pos, a.Tributes) {
			return false
		}
		p.NormalSummonUsed = true
		card.TurnPlaced = turn
		zone := zoneOf(p.Field.MonsterZones[:], card)
		switch {
		case len(tributes) > 0:
			g.log(log.NewTributeSummonEvent(turn, phase, p.Index, card.Name, zone, tributes))
		case pos == FaceDownDefense:
			g.log(log.NewSetMonsterEvent(turn, phase, p.Index, zone))
		default:
			g.log(log.NewNormalSummonEvent(turn, phase, p.Index, card.Name, zone))
		}
		return true

	case ActionFlipSummon:
		m := p.Field.MonsterAt(a.Zone)
		if !p.FlipSummon(a.Zone) {
			return false
		}
		g.log(log.NewFlipSummonEvent(turn, phase, p.Index, m.Name, a.Zone))
		return true

	case ActionSpecialSummon:
		card, _ := g.specialSummonCard(p, a)
		pos := a.Position.(MonsterPosition)
		if a.Source == LocationExtraDeck {
			if !p.SpecialSummonFromExtraDeck(a.CardID, pos, AnyZone) {
				return false
			}
		} else if !p.SpecialSummon(card, pos, AnyZone) {
			return false
		}
		card.TurnPlaced = turn
		g.log(log.NewSpecialSummonEvent(turn, phase, p.Index, card.Name, a.Source.String()))
		return true

	case ActionActivateSpell:
		var card *Card
		if a.Source == LocationHand {
			card = p.Hand[a.HandIndex]
			if !p.ActivateFromHand(a.HandIndex) {
				return false
			}
			card.TurnPlaced = turn
		} else {
			card = p.Field.SpellTrapAt(a.Zone)
			if !p.ActivateSpellTrap(a.Zone) {
				return false
			}
		}
		g.log(log.NewActivateEvent(turn, phase, p.Index, card.Name))
		return true

	case ActionSetSpell, ActionSetTrap:
		card := p.Hand[a.HandIndex]
		if !p.SetSpellTrap(a.HandIndex) {
			return false
		}
		card.TurnPlaced = turn
		g.log(log.NewSetSpellTrapEvent(turn, phase, p.Index))
		return true

	case ActionActivateTrap:
		card := p.Field.SpellTrapAt(a.Zone)
		if !p.ActivateSpellTrap(a.Zone) {
			return false
		}
		g.log(log.NewActivateEvent(turn, phase, p.Index, card.Name))
		return true

	case ActionActivateSpellEffect, ActionActivateTrapEffect:
		card := p.Field.SpellTrapAt(a.Zone)
		if !card.ApplyEffect(a.Effect, g.effectContext(p, card, a.Args)) {
			return false
		}
		card.EffectActivatedThisTurn = true
		g.log(log.NewEffectEvent(turn, phase, p.Index, card.Name, a.Effect))
		return true

	case ActionActivateMonsterEffect:
		m := p.Field.MonsterAt(a.Zone)
		if !m.ApplyEffect(a.Effect, g.effectContext(p, m, a.Args)) {
			return false
		}
		m.EffectActivatedThisTurn = true
		g.log(log.NewEffectEvent(turn, phase, p.Index, m.Name, a.Effect))
		return true

	case ActionChangeMonsterPosition:
		m := p.Field.MonsterAt(a.Zone)
		if err := m.SetPosition(a.Position); err != nil {
			return false
		}
		m.CanChangePosition = false
		g.log(log.NewChangePositionEvent(turn, phase, p.Index, m.Name, a.Position.String()))
		return true

	case ActionDiscard:
		card := p.Hand[a.HandIndex]
		if !p.Discard(a.HandIndex) {
			return false
		}
		g.log(log.NewDiscardEvent(turn, phase, p.Index, card.Name))
		return true

	case ActionEndTurn:
		for g.TurnCount == turn && !g.GameOver {
			g.NextPhase()
		}
		return true

	case ActionAttack, ActionDirectAttack:
		ctx := &CombatContext{
			Game:      g,
			Attacker:  p.Field.MonsterAt(a.Zone),
			Attacking: p,
			Defending: g.Players[1-a.Player],
		}
		target := "directly"
		if a.Type == ActionAttack {
			ctx.Target = ctx.Defending.Field.MonsterAt(a.Target)
			target = ctx.Target.Name
		}
		g.log(log.NewAttackDeclareEvent(turn, p.Index, ctx.Attacker.Name, target))
		if !g.combat.ResolveAttack(ctx) {
			return false
		}
		ctx.Attacker.CanAttack = false
		return true
	}
	return false
}

// LegalActions enumerates every action the turn player could take right now
// that passes Check. End Turn is always included while the game runs.
func (g *Game) LegalActions() []Action {
	return g.LegalActionsFor(g.CurrentPlayerIdx)
}

// LegalActionsFor lists the legal actions of player. For the non-turn player
// that is only trap activations in response.
func (g *Game) LegalActionsFor(pi int) []Action {
	if g.CurrentPhase == PhaseNone || g.GameOver || (pi != 0 && pi != 1) {
		return nil
	}
	p := g.Players[pi]
	var candidates []Action
	if pi == g.CurrentPlayerIdx {
		candidates = g.turnPlayerCandidates(pi)
	}

	for zone := 0; zone <= FieldSpellZone; zone++ {
		card := p.Field.SpellTrapAt(zone)
		if card == nil {
			continue
		}
		activate, effect := ActionActivateSpell, ActionActivateSpellEffect
		if card.IsTrap() {
			activate, effect = ActionActivateTrap, ActionActivateTrapEffect
		}
		candidates = append(candidates, Action{Type: activate, Player: pi, Zone: zone, Source: LocationField,
			Desc: fmt.Sprintf("Activate set %s", card.Name)})
		for _, name := range card.EffectNames() {
			candidates = append(candidates, Action{Type: effect, Player: pi, Zone: zone, Effect: name,
				Desc: fmt.Sprintf("Activate %s: %s", card.Name, name)})
		}
	}

	var actions []Action
	for _, a := range candidates {
		if g.Check(a) == nil {
			actions = append(actions, a)
		}
	}
	if pi == g.CurrentPlayerIdx {
		actions = append(actions, Action{Type: ActionEndTurn, Player: pi, Desc: "End Turn"})
	}
	return actions
}

func (g *Game) turnPlayerCandidates(pi int) []Action {
	p := g.Players[pi]
	var candidates []Action

	for i, card := range p.Hand {
		switch {
		case card.IsMonster():
			if n := card.TributesRequired(); n == 0 {
				atk, _ := card.CurrentAttack()
				candidates = append(candidates,
					Action{Type: ActionNormalSummon, Player: pi, HandIndex: i, Position: FaceUpAttack,
						Desc: fmt.Sprintf("Normal Summon %s (ATK %d)", card.Name, atk)},
					Action{Type: ActionNormalSummon, Player: pi, HandIndex: i, Position: FaceDownDefense,
						Desc: fmt.Sprintf("Set %s", card.Name)})
			} else {
				for _, tributes := range zoneCombinations(occupiedZones(p.Field), n) {
					candidates = append(candidates, Action{
						Type: ActionTributeSummon, Player: pi, HandIndex: i, Position: FaceUpAttack, Tributes: tributes,
						Desc: fmt.Sprintf("Tribute Summon %s tributing zone(s) %s", card.Name, zoneList(tributes)),
					})
				}
			}
			candidates = append(candidates, Action{
				Type: ActionSpecialSummon, Player: pi, HandIndex: i, Source: LocationHand, Position: FaceUpAttack,
				Desc: fmt.Sprintf("Special Summon %s from hand", card.Name),
			})
		case card.IsSpell():
			candidates = append(candidates,
				Action{Type: ActionActivateSpell, Player: pi, HandIndex: i, Source: LocationHand,
					Desc: fmt.Sprintf("Activate %s", card.Name)},
				Action{Type: ActionSetSpell, Player: pi, HandIndex: i,
					Desc: fmt.Sprintf("Set %s", card.Name)})
		case card.IsTrap():
			candidates = append(candidates, Action{Type: ActionSetTrap, Player: pi, HandIndex: i,
				Desc: fmt.Sprintf("Set %s", card.Name)})
		}
		if g.CurrentPhase == PhaseEnd && len(p.Hand) > MaxHandSize {
			candidates = append(candidates, Action{Type: ActionDiscard, Player: pi, HandIndex: i,
				Desc: fmt.Sprintf("Discard %s", card.Name)})
		}
	}

	for i, card := range p.Graveyard {
		candidates = append(candidates, Action{
			Type: ActionSpecialSummon, Player: pi, GraveyardIndex: i, Source: LocationGraveyard, Position: FaceUpAttack,
			Desc: fmt.Sprintf("Special Summon %s from graveyard", card.Name),
		})
	}
	for i, card := range p.Banished {
		candidates = append(candidates, Action{
			Type: ActionSpecialSummon, Player: pi, BanishedIndex: i, Source: LocationBanished, Position: FaceUpAttack,
			Desc: fmt.Sprintf("Special Summon %s from banishment", card.Name),
		})
	}
	seen := make(map[string]bool)
	for _, card := range p.Deck.ExtraDeck {
		if seen[card.ID] {
			continue
		}
		seen[card.ID] = true
		candidates = append(candidates, Action{
			Type: ActionSpecialSummon, Player: pi, CardID: card.ID, Source: LocationExtraDeck, Position: FaceUpAttack,
			Desc: fmt.Sprintf("Special Summon %s from extra deck", card.Name),
		})
	}

	for zone, m := range p.Field.MonsterZones {
		if m == nil {
			continue
		}
		other := FaceUpDefense
		if m.MonsterPosition() == FaceUpDefense {
			other = FaceUpAttack
		}
		candidates = append(candidates,
			Action{Type: ActionFlipSummon, Player: pi, Zone: zone,
				Desc: fmt.Sprintf("Flip Summon %s in Zone %d", m.Name, zone+1)},
			Action{Type: ActionChangeMonsterPosition, Player: pi, Zone: zone, Position: other,
				Desc: fmt.Sprintf("Change %s to %s", m.Name, other)},
			Action{Type: ActionDirectAttack, Player: pi, Zone: zone,
				Desc: fmt.Sprintf("%s attacks directly", m.Name)})
		for target, t := range g.Opponent().Field.MonsterZones {
			if t == nil {
				continue
			}
			desc := fmt.Sprintf("%s attacks face-down monster in Zone %d", m.Name, target+1)
			if t.IsFaceUp() {
				desc = fmt.Sprintf("%s attacks %s", m.Name, t.Name)
			}
			candidates = append(candidates, Action{Type: ActionAttack, Player: pi, Zone: zone, Target: target, Desc: desc})
		}
		for _, name := range m.EffectNames() {
			candidates = append(candidates, Action{Type: ActionActivateMonsterEffect, Player: pi, Zone: zone, Effect: name,
				Desc: fmt.Sprintf("Activate %s: %s", m.Name, name)})
		}
	}

	return candidates
}

// ActionCard returns the card an action acts on, or nil (End Turn, or a
// stale index).
func (g *Game) ActionCard(a Action) *Card {
	if a.Player != 0 && a.Player != 1 {
		return nil
	}
	p := g.Players[a.Player]
	switch a.Type {
	case ActionNormalSummon, ActionTributeSummon, ActionSetSpell, ActionSetTrap, ActionDiscard:
		return p.HandCard(a.HandIndex)
	case ActionSpecialSummon:
		card, _ := g.specialSummonCard(p, a)
		return card
	case ActionActivateSpell:
		if a.Source == LocationHand {
			return p.HandCard(a.HandIndex)
		}
		return p.Field.SpellTrapAt(a.Zone)
	case ActionActivateTrap, ActionActivateSpellEffect, ActionActivateTrapEffect:
		return p.Field.SpellTrapAt(a.Zone)
	case ActionFlipSummon, ActionActivateMonsterEffect, ActionChangeMonsterPosition, ActionAttack, ActionDirectAttack:
		return p.Field.MonsterAt(a.Zone)
	}
	return nil
}

// --- helpers ---

func (g *Game) effectContext(p *Player, card *Card, args map[string]any) *EffectContext {
	return &EffectContext{Game: g, Player: p, Card: card, Args: args}
}

// checkEffect verifies that card carries a.Effect and that its optional
// activation condition holds.
func (g *Game) checkEffect(p *Player, card *Card, a Action) error {
	if !card.HasEffect(a.Effect) {
		return fmt.Errorf("%s has no effect %q: %w", card.Name, a.Effect, ErrUnknownEffect)
	}
	if card.HasCondition(ConditionActivate) && !card.CheckCondition(ConditionActivate, g.effectContext(p, card, a.Args)) {
		return ErrConditionFailed
	}
	return nil
}

// specialSummonCard locates the card a special summon action refers to.
func (g *Game) specialSummonCard(p *Player, a Action) (*Card, error) {
	var card *Card
	switch a.Source {
	case LocationHand:
		card = p.HandCard(a.HandIndex)
	case LocationGraveyard:
		if a.GraveyardIndex >= 0 && a.GraveyardIndex < len(p.Graveyard) {
			card = p.Graveyard[a.GraveyardIndex]
		}
	case LocationBanished:
		if a.BanishedIndex >= 0 && a.BanishedIndex < len(p.Banished) {
			card = p.Banished[a.BanishedIndex]
		}
	case LocationExtraDeck:
		for _, c := range p.Deck.ExtraDeck {
			if c.ID == a.CardID {
				card = c
				break
			}
		}
	default:
		return nil, fmt.Errorf("special summon from %s: %w", a.Source, ErrInvalidPosition)
	}
	if card == nil {
		return nil, fmt.Errorf("special summon from %s: %w", a.Source, ErrIndexOutOfRange)
	}
	if !card.IsMonster() {
		return nil, ErrWrongCardType
	}
	return card, nil
}

func handCard(p *Player, index int, want CardType) (*Card, error) {
	card := p.HandCard(index)
	if card == nil {
		return nil, fmt.Errorf("hand index %d: %w", index, ErrIndexOutOfRange)
	}
	if card.CardType != want {
		return nil, fmt.Errorf("%s is a %s, not a %s: %w", card.Name, card.CardType, want, ErrWrongCardType)
	}
	return card, nil
}

func monsterAt(p *Player, zone int) (*Card, error) {
	if zone < 0 || zone >= MonsterZoneCount {
		return nil, fmt.Errorf("monster zone %d: %w", zone, ErrIndexOutOfRange)
	}
	m := p.Field.MonsterAt(zone)
	if m == nil {
		return nil, fmt.Errorf("monster zone %d: %w", zone, ErrEmptyZone)
	}
	return m, nil
}

func spellTrapAt(p *Player, zone int, want CardType) (*Card, error) {
	if zone < 0 || zone > FieldSpellZone {
		return nil, fmt.Errorf("spell/trap zone %d: %w", zone, ErrIndexOutOfRange)
	}
	card := p.Field.SpellTrapAt(zone)
	if card == nil {
		return nil, fmt.Errorf("spell/trap zone %d: %w", zone, ErrEmptyZone)
	}
	if card.CardType != want {
		return nil, fmt.Errorf("%s is a %s, not a %s: %w", card.Name, card.CardType, want, ErrWrongCardType)
	}
	return card, nil
}

// normalSummonPosition accepts face-up attack (summon) or face-down defense (set).
func normalSummonPosition(pos Position) error {
	mp, ok := pos.(MonsterPosition)
	if !ok || (mp != FaceUpAttack && mp != FaceDownDefense) {
		return ErrInvalidPosition
	}
	return nil
}

func zoneOf(zones []*Card, card *Card) int {
	for i, c := range zones {
		if c == card {
			return i
		}
	}
	return NoZone
}

func occupiedZones(f *Field) []int {
	var zones []int
	for i, m := range f.MonsterZones {
		if m != nil {
			zones = append(zones, i)
		}
	}
	return zones
}

// zoneCombinations returns every n-element subset of zones, in order.
func zoneCombinations(zones []int, n int) [][]int {
	if n == 0 {
		return [][]int{nil}
	}
	var out [][]int
	for i := 0; i+n <= len(zones); i++ {
		for _, rest := range zoneCombinations(zones[i+1:], n-1) {
			combo := append([]int{zones[i]}, rest...)
			out = append(out, combo)
		}
	}
	return out
}

func zoneList(zones []int) string {
	parts := make([]string, len(zones))
	for i, z := range zones {
		parts[i] = fmt.Sprint(z + 1)
	}
	return strings.Join(parts, ", ")
}
