package game

import "testing"

func newTestPlayer(t *testing.T, top []*Card, extra ...*Card) *Player {
	t.Helper()
	return NewPlayer(0, "P1", makePaddedDeck(t, top, 40, extra...))
}

func TestPlayerDrawInsufficientLoses(t *testing.T) {
	p := newTestPlayer(t, nil)
	p.Draw(38)
	if p.HandCount() != 38 {
		t.Fatalf("hand = %d, want 38", p.HandCount())
	}
	if got := p.Draw(3); got != nil {
		t.Errorf("short draw returned %d cards", len(got))
	}
	if !p.HasLost {
		t.Error("drawing past the deck should lose")
	}
	if p.HandCount() != 38 || p.Deck.RemainingCards() != 2 {
		t.Errorf("short draw changed zones: hand=%d deck=%d", p.HandCount(), p.Deck.RemainingCards())
	}
}

func TestPlayerHandFieldGraveyardRoundTrip(t *testing.T) {
	p := newTestPlayer(t, cards(vanillaMonster("Gemini Elf", 4, 1900, 900)))
	p.Draw(1)
	elf := p.Hand[0]
	if elf.Location != LocationHand || elf.Owner != 0 {
		t.Fatalf("drawn card location=%s owner=%d", elf.Location, elf.Owner)
	}

	if !p.SummonMonster(0, FaceUpAttack, nil) {
		t.Fatal("SummonMonster failed")
	}
	if p.HandCount() != 0 || p.Field.MonsterAt(0) != elf || elf.Location != LocationField {
		t.Fatal("monster not moved from hand to field")
	}
	if !elf.SummonedThisTurn {
		t.Error("SummonedThisTurn not set")
	}

	p.SendToGraveyard(elf)
	if p.Field.Contains(elf) || len(p.Graveyard) != 1 || elf.Location != LocationGraveyard {
		t.Fatal("monster not moved from field to graveyard")
	}
	if elf.Position != nil {
		t.Error("graveyard card kept its field position")
	}

	// Sending a card already in the graveyard moves it instead of duplicating it.
	p.SendToGraveyard(elf)
	if len(p.Graveyard) != 1 {
		t.Errorf("graveyard = %d cards, want 1", len(p.Graveyard))
	}

	p.BanishCard(elf)
	if len(p.Graveyard) != 0 || len(p.Banished) != 1 || elf.Location != LocationBanished {
		t.Error("banish did not move the card out of the graveyard")
	}

	p.ReturnToDeck(elf, 0)
	if p.Deck.MainDeck[0] != elf || len(p.Banished) != 0 {
		t.Error("ReturnToDeck did not move the banished card to the top of the deck")
	}
}

func TestSummonMonsterTributeQuirk(t *testing.T) {
	p := newTestPlayer(t, cards(vanillaMonster("Summoned Skull", 6, 2500, 1200)))
	p.Draw(1)
	fodder := NewCard(vanillaMonster("Fodder", 1, 0, 0))
	fodder.Owner = 0
	p.Field.PlaceMonster(fodder, FaceUpAttack, 0)

	// Zone 3 is empty: the first tribute is paid, then the summon stops.
	if p.SummonMonster(0, FaceUpAttack, []int{0, 3}) {
		t.Fatal("summon with an empty tribute zone succeeded")
	}
	if fodder.Location != LocationGraveyard || len(p.Graveyard) != 1 {
		t.Error("tribute paid before the failure should stay in the graveyard")
	}
	if p.HandCount() != 1 || p.Hand[0].Name != "Summoned Skull" {
		t.Error("summoned card should remain in hand")
	}
}

func TestSummonMonsterWithTribute(t *testing.T) {
	p := newTestPlayer(t, cards(vanillaMonster("Summoned Skull", 6, 2500, 1200)))
	p.Draw(1)
	fodder := NewCard(vanillaMonster("Fodder", 1, 0, 0))
	p.Field.PlaceMonster(fodder, FaceUpAttack, 2)

	if !p.SummonMonster(0, FaceUpAttack, []int{2}) {
		t.Fatal("tribute summon failed")
	}
	if p.Field.MonsterAt(0) == nil || p.Field.MonsterAt(0).Name != "Summoned Skull" {
		t.Error("tributed monster not in first free zone")
	}
	if p.Field.MonsterAt(2) != nil {
		t.Error("tribute still on field")
	}
}

func TestSummonMonsterFullFieldRestoresHand(t *testing.T) {
	top := cards(vanillaMonster("A", 4, 0, 0), vanillaMonster("B", 4, 0, 0))
	p := newTestPlayer(t, top)
	p.Draw(2)
	for i := 0; i < MonsterZoneCount; i++ {
		p.Field.PlaceMonster(NewCard(vanillaMonster("F", 1, 0, 0)), FaceUpAttack, AnyZone)
	}
	if p.SummonMonster(0, FaceUpAttack, nil) {
		t.Fatal("summon onto a full field succeeded")
	}
	if p.HandCount() != 2 || p.Hand[0].Name != "A" || p.Hand[0].Location != LocationHand {
		t.Error("hand not restored in place")
	}
}

func TestSetSpellTrapDisplacesFieldSpell(t *testing.T) {
	top := cards(spellTemplate("Yami", SpellField), spellTemplate("Sogen", SpellField), trapTemplate("Trap Hole", TrapNormal))
	p := newTestPlayer(t, top)
	p.Draw(3)

	if !p.SetSpellTrap(0) {
		t.Fatal("set Yami failed")
	}
	yami := p.Field.FieldSpell
	if !p.ActivateFromHand(0) {
		t.Fatal("activate Sogen failed")
	}
	if p.Field.FieldSpell.Name != "Sogen" || !p.Field.FieldSpell.IsFaceUp() {
		t.Error("Sogen should be face-up in the field slot")
	}
	if yami.Location != LocationGraveyard || len(p.Graveyard) != 1 {
		t.Error("displaced field spell should go to the graveyard")
	}

	if !p.SetSpellTrap(0) {
		t.Fatal("set trap failed")
	}
	trap := p.Field.SpellTrapAt(0)
	if trap == nil || trap.Position != FaceDown {
		t.Fatal("trap not set face-down in zone 0")
	}
	if !p.ActivateSpellTrap(0) || !trap.IsFaceUp() || !trap.EffectActivatedThisTurn {
		t.Error("ActivateSpellTrap should flip the trap face-up and mark it")
	}
}

func TestSpecialSummonFromExtraDeckUndo(t *testing.T) {
	fus := NewCard(fusionMonster("Dragon Master Knight", 12, 5000, 5000))
	p := newTestPlayer(t, nil, fus)
	for i := 0; i < MonsterZoneCount; i++ {
		p.Field.PlaceMonster(NewCard(vanillaMonster("F", 1, 0, 0)), FaceUpAttack, AnyZone)
	}
	if p.SpecialSummonFromExtraDeck(fus.ID, FaceUpAttack, AnyZone) {
		t.Fatal("special summon onto a full field succeeded")
	}
	if p.Deck.ExtraDeckCount() != 1 || fus.Location != LocationExtraDeck {
		t.Error("extra deck card not restored")
	}

	p.SendToGraveyard(p.Field.MonsterAt(4))
	if !p.SpecialSummonFromExtraDeck(fus.ID, FaceUpDefense, AnyZone) {
		t.Fatal("special summon failed")
	}
	if p.Field.MonsterAt(4) != fus || !fus.SummonedThisTurn {
		t.Error("fusion not placed in the freed zone")
	}

	p.ReturnToDeck(fus, -1)
	if fus.Location != LocationExtraDeck || p.Deck.ExtraDeckCount() != 1 {
		t.Error("extra deck monsters should return to the extra deck")
	}
}

func TestSpecialSummonFromGraveyard(t *testing.T) {
	p := newTestPlayer(t, cards(vanillaMonster("Gemini Elf", 4, 1900, 900)))
	p.Draw(1)
	p.Discard(0)
	elf := p.Graveyard[0]

	if !p.SpecialSummon(elf, FaceUpAttack, AnyZone) {
		t.Fatal("SpecialSummon from graveyard failed")
	}
	if len(p.Graveyard) != 0 || elf.Location != LocationField {
		t.Error("card not moved from graveyard to field")
	}
}

func TestFlipSummon(t *testing.T) {
	p := newTestPlayer(t, cards(vanillaMonster("Man-Eater Bug", 2, 450, 600)))
	p.Draw(1)
	p.SummonMonster(0, FaceDownDefense, nil)
	bug := p.Field.MonsterAt(0)

	if p.FlipSummon(0) {
		t.Fatal("flip summon on the turn it was set")
	}
	p.ResetTurnState()
	if !p.FlipSummon(0) {
		t.Fatal("flip summon failed")
	}
	if bug.Position != FaceUpAttack || bug.CanChangePosition {
		t.Errorf("flipped monster position=%v canChange=%v", bug.Position, bug.CanChangePosition)
	}
}

func TestAdjustLifePoints(t *testing.T) {
	p := newTestPlayer(t, nil)
	old, updated := p.AdjustLifePoints(-1000)
	if old != StartingLifePoints || updated != StartingLifePoints-1000 {
		t.Errorf("AdjustLifePoints = %d, %d", old, updated)
	}
	if _, updated := p.AdjustLifePoints(-10000); updated != 0 || !p.HasLost {
		t.Errorf("life points = %d, hasLost = %v; want 0, true", updated, p.HasLost)
	}
	p.AdjustLifePoints(500)
	if !p.HasLost {
		t.Error("HasLost must be sticky")
	}
}
