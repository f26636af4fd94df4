package game

const (
	MonsterZoneCount   = 5
	SpellTrapZoneCount = 5

	// AnyZone asks a placement to use the first free zone.
	AnyZone = -1
	// NoZone is returned when a placement fails.
	NoZone = -1
	// FieldSpellZone addresses the field-spell slot in spell/trap zone operations.
	FieldSpellZone = SpellTrapZoneCount
)

// Field is one player's zone layout. A card occupies at most one zone.
type Field struct {
	MonsterZones   [MonsterZoneCount]*Card
	SpellTrapZones [SpellTrapZoneCount]*Card
	FieldSpell     *Card
}

// PlaceMonster puts card into zone (or the first free zone for AnyZone) and
// returns the zone used, or NoZone with the field untouched.
func (f *Field) PlaceMonster(card *Card, pos MonsterPosition, zone int) int {
	if card == nil || f.Contains(card) {
		return NoZone
	}
	idx := freeZone(f.MonsterZones[:], zone)
	if idx == NoZone {
		return NoZone
	}
	if err := card.SetPosition(pos); err != nil {
		return NoZone
	}
	f.MonsterZones[idx] = card
	card.Location = LocationField
	return idx
}

// PlaceSpellTrap is the spell/trap zone counterpart of PlaceMonster.
func (f *Field) PlaceSpellTrap(card *Card, pos SpellTrapPosition, zone int) int {
	if card == nil || f.Contains(card) {
		return NoZone
	}
	idx := freeZone(f.SpellTrapZones[:], zone)
	if idx == NoZone {
		return NoZone
	}
	if err := card.SetPosition(pos); err != nil {
		return NoZone
	}
	f.SpellTrapZones[idx] = card
	card.Location = LocationField
	return idx
}

// PlaceFieldSpell puts a Field Spell in the field-spell slot. Any card already
// there is overwritten; moving it elsewhere first is the caller's job.
func (f *Field) PlaceFieldSpell(card *Card, pos SpellTrapPosition) bool {
	if card == nil || !card.IsFieldSpell() || f.Contains(card) {
		return false
	}
	if err := card.SetPosition(pos); err != nil {
		return false
	}
	f.FieldSpell = card
	card.Location = LocationField
	return true
}

func freeZone(zones []*Card, zone int) int {
	if zone != AnyZone {
		if zone < 0 || zone >= len(zones) || zones[zone] != nil {
			return NoZone
		}
		return zone
	}
	for i, z := range zones {
		if z == nil {
			return i
		}
	}
	return NoZone
}

// RemoveCard clears the first zone holding card: monster zones, then
// spell/trap zones, then the field-spell slot.
func (f *Field) RemoveCard(card *Card) bool {
	for i, z := range f.MonsterZones {
		if z == card && z != nil {
			f.MonsterZones[i] = nil
			return true
		}
	}
	for i, z := range f.SpellTrapZones {
		if z == card && z != nil {
			f.SpellTrapZones[i] = nil
			return true
		}
	}
	if f.FieldSpell != nil && f.FieldSpell == card {
		f.FieldSpell = nil
		return true
	}
	return false
}

// Contains reports whether card occupies any zone.
func (f *Field) Contains(card *Card) bool {
	if card == nil {
		return false
	}
	for _, z := range f.MonsterZones {
		if z == card {
			return true
		}
	}
	for _, z := range f.SpellTrapZones {
		if z == card {
			return true
		}
	}
	return f.FieldSpell == card
}

// MonsterAt returns the card in a monster zone, or nil.
func (f *Field) MonsterAt(zone int) *Card {
	if zone < 0 || zone >= MonsterZoneCount {
		return nil
	}
	return f.MonsterZones[zone]
}

// SpellTrapAt returns the card in a spell/trap zone, or nil. FieldSpellZone
// addresses the field-spell slot.
func (f *Field) SpellTrapAt(zone int) *Card {
	if zone == FieldSpellZone {
		return f.FieldSpell
	}
	if zone < 0 || zone >= SpellTrapZoneCount {
		return nil
	}
	return f.SpellTrapZones[zone]
}

// Monsters returns all non-nil monsters on the field.
func (f *Field) Monsters() []*Card {
	var result []*Card
	for _, z := range f.MonsterZones {
		if z != nil {
			result = append(result, z)
		}
	}
	return result
}

// MonsterCount returns the number of occupied monster zones.
func (f *Field) MonsterCount() int {
	return len(f.Monsters())
}

// FreeMonsterZones returns all empty monster zone indices.
func (f *Field) FreeMonsterZones() []int {
	return freeZones(f.MonsterZones[:])
}

// FreeSpellTrapZones returns all empty spell/trap zone indices.
func (f *Field) FreeSpellTrapZones() []int {
	return freeZones(f.SpellTrapZones[:])
}

func freeZones(zones []*Card) []int {
	var result []int
	for i, z := range zones {
		if z == nil {
			result = append(result, i)
		}
	}
	return result
}

// Cards returns every card on the field.
func (f *Field) Cards() []*Card {
	result := f.Monsters()
	for _, z := range f.SpellTrapZones {
		if z != nil {
			result = append(result, z)
		}
	}
	if f.FieldSpell != nil {
		result = append(result, f.FieldSpell)
	}
	return result
}

// ResetTurnState resets per-turn flags on every card on the field.
func (f *Field) ResetTurnState() {
	for _, c := range f.Cards() {
		c.ResetTurnFlags()
	}
}
