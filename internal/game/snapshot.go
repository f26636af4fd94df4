package game

// --- Full snapshots ---
//
// Snapshots are detached copies: mutating one never touches the game.

type CardSnapshot struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	CardType       string         `json:"card_type"`
	Description    string         `json:"description,omitempty"`
	Level          *int           `json:"level,omitempty"`
	Attack         *int           `json:"attack,omitempty"`
	Defense        *int           `json:"defense,omitempty"`
	CurrentLevel   *int           `json:"current_level,omitempty"`
	CurrentAttack  *int           `json:"current_attack,omitempty"`
	CurrentDefense *int           `json:"current_defense,omitempty"`
	MonsterType    string         `json:"monster_type,omitempty"`
	MonsterAbility string         `json:"monster_ability,omitempty"`
	Attribute      string         `json:"attribute,omitempty"`
	Race           string         `json:"race,omitempty"`
	SpellType      string         `json:"spell_type,omitempty"`
	TrapType       string         `json:"trap_type,omitempty"`
	Position       string         `json:"position,omitempty"`
	Location       string         `json:"location"`
	Owner          int            `json:"owner"`
	Modifiers      [3]int         `json:"modifiers"` // attack, defense, level
	Counters       map[string]int `json:"counters,omitempty"`
	Effects        []string       `json:"effects,omitempty"`

	CanAttack               bool `json:"can_attack"`
	CanChangePosition       bool `json:"can_change_position"`
	CanActivateEffect       bool `json:"can_activate_effect"`
	SummonedThisTurn        bool `json:"summoned_this_turn"`
	PositionChangedThisTurn bool `json:"position_changed_this_turn"`
	EffectActivatedThisTurn bool `json:"effect_activated_this_turn"`
}

type DeckSnapshot struct {
	MainDeck       []CardSnapshot `json:"main_deck"`
	ExtraDeck      []CardSnapshot `json:"extra_deck"`
	MainDeckCount  int            `json:"main_deck_count"`
	ExtraDeckCount int            `json:"extra_deck_count"`
}

type FieldSnapshot struct {
	MonsterZones   [MonsterZoneCount]*CardSnapshot   `json:"monster_zones"`
	SpellTrapZones [SpellTrapZoneCount]*CardSnapshot `json:"spell_trap_zones"`
	FieldSpell     *CardSnapshot                     `json:"field_spell,omitempty"`
}

type PlayerSnapshot struct {
	Index                 int            `json:"index"`
	Name                  string         `json:"name"`
	LifePoints            int            `json:"life_points"`
	Deck                  DeckSnapshot   `json:"deck"`
	Field                 FieldSnapshot  `json:"field"`
	Hand                  []CardSnapshot `json:"hand"`
	Graveyard             []CardSnapshot `json:"graveyard"`
	Banished              []CardSnapshot `json:"banished"`
	DeckCount             int            `json:"deck_count"`
	HandCount             int            `json:"hand_count"`
	GraveyardCount        int            `json:"graveyard_count"`
	BanishedCount         int            `json:"banished_count"`
	NormalSummonUsed      bool           `json:"normal_summon_used"`
	CanConductBattlePhase bool           `json:"can_conduct_battle_phase"`
	HasLost               bool           `json:"has_lost"`
}

type GameSnapshot struct {
	Players       [2]PlayerSnapshot `json:"players"`
	CurrentPlayer int               `json:"current_player"`
	Opponent      int               `json:"opponent"`
	TurnCount     int               `json:"turn_count"`
	Phase         string            `json:"phase"`
	GameOver      bool              `json:"game_over"`
	Winner        int               `json:"winner"`
}

func (c *Card) Snapshot() CardSnapshot {
	s := CardSnapshot{
		ID:          c.ID,
		Name:        c.Name,
		CardType:    c.CardType.String(),
		Description: c.Description,
		Level:       copyInt(c.Level),
		Attack:      copyInt(c.Attack),
		Defense:     copyInt(c.Defense),
		Location:    c.Location.String(),
		Owner:       c.Owner,
		Modifiers:   [3]int{c.AttackModifier, c.DefenseModifier, c.LevelModifier},
		Effects:     c.EffectNames(),

		CanAttack:               c.CanAttack,
		CanChangePosition:       c.CanChangePosition,
		CanActivateEffect:       c.CanActivateEffect,
		SummonedThisTurn:        c.SummonedThisTurn,
		PositionChangedThisTurn: c.PositionChangedThisTurn,
		EffectActivatedThisTurn: c.EffectActivatedThisTurn,
	}
	switch c.CardType {
	case CardTypeMonster:
		s.MonsterType = c.MonsterType.String()
		if c.MonsterAbility != AbilityNone {
			s.MonsterAbility = c.MonsterAbility.String()
		}
		if v, ok := c.CurrentAttack(); ok {
			s.CurrentAttack = &v
		}
		if v, ok := c.CurrentDefense(); ok {
			s.CurrentDefense = &v
		}
		if v, ok := c.CurrentLevel(); ok {
			s.CurrentLevel = &v
		}
		s.Attribute = c.Attribute.String()
		s.Race = c.Race.String()
	case CardTypeSpell:
		s.SpellType = c.SpellType.String()
	case CardTypeTrap:
		s.TrapType = c.TrapType.String()
	}
	if c.Position != nil {
		s.Position = c.Position.String()
	}
	if len(c.Counters) > 0 {
		s.Counters = make(map[string]int, len(c.Counters))
		for k, v := range c.Counters {
			s.Counters[k] = v
		}
	}
	return s
}

func (d *Deck) Snapshot() DeckSnapshot {
	return DeckSnapshot{
		MainDeck:       snapshotCards(d.MainDeck),
		ExtraDeck:      snapshotCards(d.ExtraDeck),
		MainDeckCount:  len(d.MainDeck),
		ExtraDeckCount: len(d.ExtraDeck),
	}
}

func (f *Field) Snapshot() FieldSnapshot {
	var s FieldSnapshot
	for i, c := range f.MonsterZones {
		s.MonsterZones[i] = snapshotPtr(c)
	}
	for i, c := range f.SpellTrapZones {
		s.SpellTrapZones[i] = snapshotPtr(c)
	}
	s.FieldSpell = snapshotPtr(f.FieldSpell)
	return s
}

func (p *Player) Snapshot() PlayerSnapshot {
	return PlayerSnapshot{
		Index:                 p.Index,
		Name:                  p.Name,
		LifePoints:            p.LifePoints,
		Deck:                  p.Deck.Snapshot(),
		Field:                 p.Field.Snapshot(),
		Hand:                  snapshotCards(p.Hand),
		Graveyard:             snapshotCards(p.Graveyard),
		Banished:              snapshotCards(p.Banished),
		DeckCount:             p.Deck.RemainingCards(),
		HandCount:             len(p.Hand),
		GraveyardCount:        len(p.Graveyard),
		BanishedCount:         len(p.Banished),
		NormalSummonUsed:      p.NormalSummonUsed,
		CanConductBattlePhase: p.CanConductBattlePhase,
		HasLost:               p.HasLost,
	}
}

// Snapshot returns the full game tree, hidden information included.
func (g *Game) Snapshot() GameSnapshot {
	return GameSnapshot{
		Players:       [2]PlayerSnapshot{g.Players[0].Snapshot(), g.Players[1].Snapshot()},
		CurrentPlayer: g.CurrentPlayerIdx,
		Opponent:      g.OpponentIdx,
		TurnCount:     g.TurnCount,
		Phase:         g.CurrentPhase.String(),
		GameOver:      g.GameOver,
		Winner:        g.Winner,
	}
}

func snapshotCards(cards []*Card) []CardSnapshot {
	out := make([]CardSnapshot, len(cards))
	for i, c := range cards {
		out[i] = c.Snapshot()
	}
	return out
}

func snapshotPtr(c *Card) *CardSnapshot {
	if c == nil {
		return nil
	}
	s := c.Snapshot()
	return &s
}

// --- Perspective views ---

// StateView is the game as one player may see it: the opponent's hand and
// every face-down card the viewer does not own are hidden.
type StateView struct {
	You        PlayerView `json:"you"`
	Opponent   PlayerView `json:"opponent"`
	Turn       int        `json:"turn"`
	Phase      string     `json:"phase"`
	IsYourTurn bool       `json:"is_your_turn"`
	GameOver   bool       `json:"game_over"`
	Winner     int        `json:"winner"`
}

// PlayerView is one side of the board from the viewer's perspective.
type PlayerView struct {
	Name           string                       `json:"name"`
	LifePoints     int                          `json:"life_points"`
	HandCount      int                          `json:"hand_count"`
	Hand           []string                     `json:"hand,omitempty"` // card names (only for "you")
	Monsters       [MonsterZoneCount]ZoneView   `json:"monsters"`
	SpellTraps     [SpellTrapZoneCount]ZoneView `json:"spell_traps"`
	FieldSpell     *ZoneView                    `json:"field_spell,omitempty"`
	Graveyard      []string                     `json:"graveyard"`
	BanishedCount  int                          `json:"banished_count"`
	DeckCount      int                          `json:"deck_count"`
	ExtraDeckCount int                          `json:"extra_deck_count"`
}

// ZoneView is a single zone; hidden cards show only FaceDown.
type ZoneView struct {
	Empty    bool           `json:"empty,omitempty"`
	FaceDown bool           `json:"face_down,omitempty"`
	Name     string         `json:"name,omitempty"`
	ATK      int            `json:"atk,omitempty"`
	DEF      int            `json:"def,omitempty"`
	Position string         `json:"position,omitempty"`
	Counters map[string]int `json:"counters,omitempty"`
}

// View builds the StateView for viewer. Anything but 0 or 1 yields the
// zero view.
func (g *Game) View(viewer int) StateView {
	if viewer != 0 && viewer != 1 {
		return StateView{}
	}
	return StateView{
		You:        buildPlayerView(g.Players[viewer], true),
		Opponent:   buildPlayerView(g.Players[1-viewer], false),
		Turn:       g.TurnCount,
		Phase:      g.CurrentPhase.String(),
		IsYourTurn: g.CurrentPlayerIdx == viewer,
		GameOver:   g.GameOver,
		Winner:     g.Winner,
	}
}

func buildPlayerView(p *Player, own bool) PlayerView {
	pv := PlayerView{
		Name:           p.Name,
		LifePoints:     p.LifePoints,
		HandCount:      len(p.Hand),
		Graveyard:      cardNames(p.Graveyard),
		BanishedCount:  len(p.Banished),
		DeckCount:      p.Deck.RemainingCards(),
		ExtraDeckCount: p.Deck.ExtraDeckCount(),
	}
	if own {
		pv.Hand = cardNames(p.Hand)
	}
	for i, c := range p.Field.MonsterZones {
		pv.Monsters[i] = buildZoneView(c, own)
	}
	for i, c := range p.Field.SpellTrapZones {
		pv.SpellTraps[i] = buildZoneView(c, own)
	}
	if p.Field.FieldSpell != nil {
		zv := buildZoneView(p.Field.FieldSpell, own)
		pv.FieldSpell = &zv
	}
	return pv
}

func buildZoneView(c *Card, own bool) ZoneView {
	if c == nil {
		return ZoneView{Empty: true}
	}
	if !c.IsFaceUp() && !own {
		return ZoneView{FaceDown: true}
	}
	zv := ZoneView{
		FaceDown: !c.IsFaceUp(),
		Name:     c.Name,
	}
	if c.Position != nil {
		zv.Position = c.Position.String()
	}
	if atk, ok := c.CurrentAttack(); ok {
		zv.ATK = atk
	}
	if def, ok := c.CurrentDefense(); ok {
		zv.DEF = def
	}
	if len(c.Counters) > 0 {
		zv.Counters = make(map[string]int, len(c.Counters))
		for k, v := range c.Counters {
			zv.Counters[k] = v
		}
	}
	return zv
}

func cardNames(cards []*Card) []string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Name
	}
	return names
}
