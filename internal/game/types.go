package game

import (
	"fmt"
	"strings"
)

// --- Enums ---

type Phase int

const (
	PhaseNone Phase = iota
	PhaseDraw
	PhaseStandby
	PhaseMain1
	PhaseBattle
	PhaseMain2
	PhaseEnd
)

// phaseOrder is the fixed cycle a turn walks through.
var phaseOrder = []Phase{PhaseDraw, PhaseStandby, PhaseMain1, PhaseBattle, PhaseMain2, PhaseEnd}

func (p Phase) String() string {
	switch p {
	case PhaseDraw:
		return "Draw Phase"
	case PhaseStandby:
		return "Standby Phase"
	case PhaseMain1:
		return "Main Phase 1"
	case PhaseBattle:
		return "Battle Phase"
	case PhaseMain2:
		return "Main Phase 2"
	case PhaseEnd:
		return "End Phase"
	default:
		return "None"
	}
}

// IsMain reports whether p is one of the two main phases.
func (p Phase) IsMain() bool {
	return p == PhaseMain1 || p == PhaseMain2
}

// ParsePhase accepts the display name or the snake_case key ("main_phase_1").
func ParsePhase(s string) (Phase, error) {
	key := normalizeKey(s)
	for _, p := range phaseOrder {
		if key == normalizeKey(p.String()) {
			return p, nil
		}
	}
	switch key {
	case "draw", "draw_phase":
		return PhaseDraw, nil
	case "standby", "standby_phase":
		return PhaseStandby, nil
	case "main1", "main_1", "main_phase_1":
		return PhaseMain1, nil
	case "battle", "battle_phase":
		return PhaseBattle, nil
	case "main2", "main_2", "main_phase_2":
		return PhaseMain2, nil
	case "end", "end_phase":
		return PhaseEnd, nil
	}
	return PhaseNone, fmt.Errorf("unknown phase %q", s)
}

type CardType int

const (
	CardTypeMonster CardType = iota
	CardTypeSpell
	CardTypeTrap
)

var cardTypeNames = map[CardType]string{
	CardTypeMonster: "monster",
	CardTypeSpell:   "spell",
	CardTypeTrap:    "trap",
}

func (ct CardType) String() string { return enumName(cardTypeNames, ct) }

func ParseCardType(s string) (CardType, error) { return parseEnum("card type", s, cardTypeNames) }

type MonsterType int

const (
	MonsterTypeNone MonsterType = iota
	MonsterTypeNormal
	MonsterTypeEffect
	MonsterTypeFusion
	MonsterTypeRitual
	MonsterTypeSynchro
	MonsterTypeXyz
	MonsterTypeLink
)

var monsterTypeNames = map[MonsterType]string{
	MonsterTypeNone:    "",
	MonsterTypeNormal:  "normal",
	MonsterTypeEffect:  "effect",
	MonsterTypeFusion:  "fusion",
	MonsterTypeRitual:  "ritual",
	MonsterTypeSynchro: "synchro",
	MonsterTypeXyz:     "xyz",
	MonsterTypeLink:    "link",
}

func (mt MonsterType) String() string { return enumName(monsterTypeNames, mt) }

// IsExtraDeck reports whether monsters of this type live in the extra deck.
func (mt MonsterType) IsExtraDeck() bool {
	switch mt {
	case MonsterTypeFusion, MonsterTypeSynchro, MonsterTypeXyz, MonsterTypeLink:
		return true
	}
	return false
}

func ParseMonsterType(s string) (MonsterType, error) {
	return parseEnum("monster type", s, monsterTypeNames)
}

type MonsterAbility int

const (
	AbilityNone MonsterAbility = iota
	AbilityFlip
	AbilityToon
	AbilitySpirit
	AbilityUnion
	AbilityGemini
	AbilityTuner
)

var monsterAbilityNames = map[MonsterAbility]string{
	AbilityNone:   "none",
	AbilityFlip:   "flip",
	AbilityToon:   "toon",
	AbilitySpirit: "spirit",
	AbilityUnion:  "union",
	AbilityGemini: "gemini",
	AbilityTuner:  "tuner",
}

func (a MonsterAbility) String() string { return enumName(monsterAbilityNames, a) }

func ParseMonsterAbility(s string) (MonsterAbility, error) {
	return parseEnum("monster ability", s, monsterAbilityNames)
}

type Attribute int

const (
	AttrNone Attribute = iota
	AttrLIGHT
	AttrDARK
	AttrEARTH
	AttrWATER
	AttrFIRE
	AttrWIND
	AttrDIVINE
)

var attributeNames = map[Attribute]string{
	AttrNone:   "",
	AttrLIGHT:  "light",
	AttrDARK:   "dark",
	AttrEARTH:  "earth",
	AttrWATER:  "water",
	AttrFIRE:   "fire",
	AttrWIND:   "wind",
	AttrDIVINE: "divine",
}

func (a Attribute) String() string { return enumName(attributeNames, a) }

func ParseAttribute(s string) (Attribute, error) { return parseEnum("attribute", s, attributeNames) }

// Race is the monster's creature type ("race" is the older name).
type Race int

const (
	RaceNone Race = iota
	RaceAqua
	RaceBeast
	RaceBeastWarrior
	RaceCyberse
	RaceDinosaur
	RaceDivineBeast
	RaceDragon
	RaceFairy
	RaceFiend
	RaceFish
	RaceIllusion
	RaceInsect
	RaceMachine
	RacePlant
	RacePsychic
	RacePyro
	RaceReptile
	RaceRock
	RaceSeaSerpent
	RaceSpellcaster
	RaceThunder
	RaceWarrior
	RaceWingedBeast
	RaceWyrm
	RaceZombie
)

var raceNames = map[Race]string{
	RaceNone:         "",
	RaceAqua:         "aqua",
	RaceBeast:        "beast",
	RaceBeastWarrior: "beast_warrior",
	RaceCyberse:      "cyberse",
	RaceDinosaur:     "dinosaur",
	RaceDivineBeast:  "divine_beast",
	RaceDragon:       "dragon",
	RaceFairy:        "fairy",
	RaceFiend:        "fiend",
	RaceFish:         "fish",
	RaceIllusion:     "illusion",
	RaceInsect:       "insect",
	RaceMachine:      "machine",
	RacePlant:        "plant",
	RacePsychic:      "psychic",
	RacePyro:         "pyro",
	RaceReptile:      "reptile",
	RaceRock:         "rock",
	RaceSeaSerpent:   "sea_serpent",
	RaceSpellcaster:  "spellcaster",
	RaceThunder:      "thunder",
	RaceWarrior:      "warrior",
	RaceWingedBeast:  "winged_beast",
	RaceWyrm:         "wyrm",
	RaceZombie:       "zombie",
}

func (r Race) String() string { return enumName(raceNames, r) }

func ParseRace(s string) (Race, error) { return parseEnum("race", s, raceNames) }

type SpellType int

const (
	SpellNormal SpellType = iota
	SpellContinuous
	SpellField
	SpellEquip
	SpellQuickPlay
	SpellRitual
)

var spellTypeNames = map[SpellType]string{
	SpellNormal:     "normal",
	SpellContinuous: "continuous",
	SpellField:      "field",
	SpellEquip:      "equip",
	SpellQuickPlay:  "quick_play",
	SpellRitual:     "ritual",
}

func (st SpellType) String() string { return enumName(spellTypeNames, st) }

func ParseSpellType(s string) (SpellType, error) { return parseEnum("spell type", s, spellTypeNames) }

type TrapType int

const (
	TrapNormal TrapType = iota
	TrapContinuous
	TrapCounter
)

var trapTypeNames = map[TrapType]string{
	TrapNormal:     "normal",
	TrapContinuous: "continuous",
	TrapCounter:    "counter",
}

func (tt TrapType) String() string { return enumName(trapTypeNames, tt) }

func ParseTrapType(s string) (TrapType, error) { return parseEnum("trap type", s, trapTypeNames) }

// --- Positions ---

// PositionKind tags which family a Position belongs to.
type PositionKind int

const (
	PositionKindMonster PositionKind = iota + 1
	PositionKindSpellTrap
)

// Position is the placement sub-state of a card on the field. It is either a
// MonsterPosition or a SpellTrapPosition; the variant must match the card type.
type Position interface {
	Kind() PositionKind
	FaceUp() bool
	Valid() bool
	String() string
}

type MonsterPosition int

const (
	FaceUpAttack MonsterPosition = iota + 1
	FaceUpDefense
	FaceDownDefense
)

func (p MonsterPosition) Kind() PositionKind { return PositionKindMonster }

func (p MonsterPosition) FaceUp() bool { return p != FaceDownDefense }

func (p MonsterPosition) Valid() bool { return p >= FaceUpAttack && p <= FaceDownDefense }

// IsAttack reports whether the monster is in attack position.
func (p MonsterPosition) IsAttack() bool { return p == FaceUpAttack }

func (p MonsterPosition) String() string {
	switch p {
	case FaceUpAttack:
		return "face_up_attack"
	case FaceUpDefense:
		return "face_up_defense"
	case FaceDownDefense:
		return "face_down_defense"
	default:
		return "invalid"
	}
}

type SpellTrapPosition int

const (
	FaceUp SpellTrapPosition = iota + 1
	FaceDown
)

func (p SpellTrapPosition) Kind() PositionKind { return PositionKindSpellTrap }

func (p SpellTrapPosition) FaceUp() bool { return p == FaceUp }

func (p SpellTrapPosition) Valid() bool { return p == FaceUp || p == FaceDown }

func (p SpellTrapPosition) String() string {
	switch p {
	case FaceUp:
		return "face_up"
	case FaceDown:
		return "face_down"
	default:
		return "invalid"
	}
}

// ParsePosition resolves any position key into its variant.
func ParsePosition(s string) (Position, error) {
	switch normalizeKey(s) {
	case "face_up_attack", "attack", "atk":
		return FaceUpAttack, nil
	case "face_up_defense", "defense", "def":
		return FaceUpDefense, nil
	case "face_down_defense", "set":
		return FaceDownDefense, nil
	case "face_up":
		return FaceUp, nil
	case "face_down":
		return FaceDown, nil
	}
	return nil, fmt.Errorf("unknown position %q", s)
}

// --- Locations ---

type Location int

const (
	LocationNone Location = iota
	LocationDeck
	LocationHand
	LocationField
	LocationGraveyard
	LocationBanished
	LocationExtraDeck
)

func (l Location) String() string {
	switch l {
	case LocationDeck:
		return "deck"
	case LocationHand:
		return "hand"
	case LocationField:
		return "field"
	case LocationGraveyard:
		return "graveyard"
	case LocationBanished:
		return "banished"
	case LocationExtraDeck:
		return "extra_deck"
	default:
		return "none"
	}
}

func ParseLocation(s string) (Location, error) {
	key := normalizeKey(s)
	for l := LocationDeck; l <= LocationExtraDeck; l++ {
		if key == l.String() {
			return l, nil
		}
	}
	if key == "extra" {
		return LocationExtraDeck, nil
	}
	return LocationNone, fmt.Errorf("unknown location %q", s)
}

// --- enum helpers ---

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return s
}

func enumName[T comparable](names map[T]string, v T) string {
	if name, ok := names[v]; ok {
		return name
	}
	return "unknown"
}

func parseEnum[T comparable](what, s string, names map[T]string) (T, error) {
	key := normalizeKey(s)
	for v, name := range names {
		if name == key {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", what, s)
}
