package game

import "testing"

func TestPlaceMonsterFirstFreeZone(t *testing.T) {
	var f Field
	a := NewCard(vanillaMonster("A", 4, 0, 0))
	b := NewCard(vanillaMonster("B", 4, 0, 0))

	if z := f.PlaceMonster(a, FaceUpAttack, 2); z != 2 {
		t.Fatalf("explicit zone = %d, want 2", z)
	}
	if z := f.PlaceMonster(b, FaceDownDefense, AnyZone); z != 0 {
		t.Fatalf("AnyZone = %d, want 0", z)
	}
	if a.Location != LocationField || a.Position != FaceUpAttack {
		t.Errorf("placed card location=%s position=%v", a.Location, a.Position)
	}
	if got := f.FreeMonsterZones(); len(got) != 3 || got[0] != 1 {
		t.Errorf("FreeMonsterZones = %v, want [1 3 4]", got)
	}
}

func TestPlaceMonsterFailureLeavesFieldUntouched(t *testing.T) {
	var f Field
	a := NewCard(vanillaMonster("A", 4, 0, 0))
	b := NewCard(vanillaMonster("B", 4, 0, 0))
	f.PlaceMonster(a, FaceUpAttack, 0)

	if z := f.PlaceMonster(b, FaceUpAttack, 0); z != NoZone {
		t.Errorf("occupied zone = %d, want NoZone", z)
	}
	if z := f.PlaceMonster(b, FaceUpAttack, MonsterZoneCount); z != NoZone {
		t.Errorf("out of range zone = %d, want NoZone", z)
	}
	if z := f.PlaceMonster(a, FaceUpAttack, AnyZone); z != NoZone {
		t.Errorf("placing the same card twice = %d, want NoZone", z)
	}
	if b.Location != LocationNone || b.Position != nil {
		t.Errorf("rejected card mutated: location=%s position=%v", b.Location, b.Position)
	}
	if f.MonsterCount() != 1 {
		t.Errorf("MonsterCount = %d, want 1", f.MonsterCount())
	}

	for i := 1; i < MonsterZoneCount; i++ {
		f.PlaceMonster(NewCard(vanillaMonster("F", 1, 0, 0)), FaceUpAttack, AnyZone)
	}
	if z := f.PlaceMonster(b, FaceUpAttack, AnyZone); z != NoZone {
		t.Errorf("full field = %d, want NoZone", z)
	}
}

func TestPlaceFieldSpell(t *testing.T) {
	var f Field
	normal := NewCard(spellTemplate("Dark Hole", SpellNormal))
	if f.PlaceFieldSpell(normal, FaceUp) {
		t.Error("non-field spell accepted into field slot")
	}

	yami := NewCard(spellTemplate("Yami", SpellField))
	if !f.PlaceFieldSpell(yami, FaceDown) {
		t.Fatal("PlaceFieldSpell failed")
	}
	if f.SpellTrapAt(FieldSpellZone) != yami {
		t.Error("SpellTrapAt(FieldSpellZone) should address the field slot")
	}

	sogen := NewCard(spellTemplate("Sogen", SpellField))
	f.PlaceFieldSpell(sogen, FaceUp)
	if f.FieldSpell != sogen {
		t.Error("field slot not overwritten")
	}
}

func TestRemoveCard(t *testing.T) {
	var f Field
	m := NewCard(vanillaMonster("M", 4, 0, 0))
	s := NewCard(trapTemplate("T", TrapNormal))
	fs := NewCard(spellTemplate("FS", SpellField))
	f.PlaceMonster(m, FaceUpAttack, AnyZone)
	f.PlaceSpellTrap(s, FaceDown, 3)
	f.PlaceFieldSpell(fs, FaceUp)

	if len(f.Cards()) != 3 {
		t.Fatalf("Cards = %d, want 3", len(f.Cards()))
	}
	for _, c := range []*Card{s, fs, m} {
		if !f.RemoveCard(c) {
			t.Errorf("RemoveCard(%s) = false", c)
		}
		if f.Contains(c) {
			t.Errorf("%s still on field", c)
		}
	}
	if f.RemoveCard(m) {
		t.Error("removing an absent card should return false")
	}
}

func TestFieldResetTurnState(t *testing.T) {
	var f Field
	m := NewCard(vanillaMonster("M", 4, 0, 0))
	s := NewCard(spellTemplate("FS", SpellField))
	f.PlaceMonster(m, FaceUpAttack, AnyZone)
	f.PlaceFieldSpell(s, FaceUp)
	m.CanAttack = false
	s.EffectActivatedThisTurn = true

	f.ResetTurnState()
	if !m.CanAttack || s.EffectActivatedThisTurn {
		t.Error("ResetTurnState did not reach every occupied zone")
	}
}
