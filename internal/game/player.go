package game

const (
	StartingLifePoints = 8000
	// MaxHandSize is the End Phase hand limit. Nothing enforces it; LegalActions
	// only offers discards in the End Phase while the hand is over it.
	MaxHandSize = 5
)

// Player represents one player's entire state.
type Player struct {
	Index     int
	Name      string
	Deck      *Deck
	Field     *Field
	Hand      []*Card
	Graveyard []*Card
	Banished  []*Card

	LifePoints int

	// Per-turn flags
	NormalSummonUsed      bool
	CanConductBattlePhase bool

	HasLost bool // sticky: never cleared once set
}

// NewPlayer creates a player around deck and marks every deck card as owned by index.
func NewPlayer(index int, name string, deck *Deck) *Player {
	deck.setOwner(index)
	return &Player{
		Index:                 index,
		Name:                  name,
		Deck:                  deck,
		Field:                 &Field{},
		LifePoints:            StartingLifePoints,
		CanConductBattlePhase: true,
	}
}

// Draw moves count cards from the deck to the hand. If the deck holds fewer
// than count cards the player loses immediately and nothing is drawn.
func (p *Player) Draw(count int) []*Card {
	if count > p.Deck.RemainingCards() {
		p.HasLost = true
		return nil
	}
	drawn := p.Deck.Draw(count)
	for _, c := range drawn {
		c.Location = LocationHand
	}
	p.Hand = append(p.Hand, drawn...)
	return drawn
}

// HandCount returns the number of cards in hand.
func (p *Player) HandCount() int {
	return len(p.Hand)
}

// HandCard returns the card at a hand index, or nil.
func (p *Player) HandCard(index int) *Card {
	if index < 0 || index >= len(p.Hand) {
		return nil
	}
	return p.Hand[index]
}

// SummonMonster summons the monster at handIndex, first paying tributes from
// the listed monster zones in order. Tributes already paid stay paid if a
// later tribute zone is empty or placement fails; the hand itself is restored.
func (p *Player) SummonMonster(handIndex int, pos MonsterPosition, tributes []int) bool {
	card := p.HandCard(handIndex)
	if card == nil || !card.IsMonster() || !card.CanBeSummoned() || !pos.Valid() {
		return false
	}

	for _, zone := range tributes {
		m := p.Field.MonsterAt(zone)
		if m == nil {
			return false
		}
		p.SendToGraveyard(m)
	}

	p.removeHandIndex(handIndex)
	if p.Field.PlaceMonster(card, pos, AnyZone) == NoZone {
		p.insertHand(handIndex, card)
		return false
	}
	card.SummonedThisTurn = true
	return true
}

// FlipSummon turns a face-down defense monster face-up attack. A monster set
// this turn cannot be flip summoned.
func (p *Player) FlipSummon(zone int) bool {
	m := p.Field.MonsterAt(zone)
	if m == nil || m.MonsterPosition() != FaceDownDefense || m.SummonedThisTurn {
		return false
	}
	if err := m.SetPosition(FaceUpAttack); err != nil {
		return false
	}
	m.CanChangePosition = false
	return true
}

// SpecialSummon special summons card from wherever it currently is: hand,
// graveyard, banished pile or extra deck.
func (p *Player) SpecialSummon(card *Card, pos MonsterPosition, zone int) bool {
	if card == nil || !card.CanBeSummoned() {
		return false
	}
	switch card.Location {
	case LocationHand:
		return p.SpecialSummonFromHand(indexOf(p.Hand, card), pos, zone)
	case LocationGraveyard:
		return p.SpecialSummonFromGraveyard(indexOf(p.Graveyard, card), pos, zone)
	case LocationExtraDeck:
		i := indexOf(p.Deck.ExtraDeck, card)
		if i < 0 {
			return false
		}
		p.Deck.ExtraDeck = removeAt(p.Deck.ExtraDeck, i)
		return p.placeSummoned(card, pos, zone, func() {
			p.Deck.ExtraDeck = insertAt(p.Deck.ExtraDeck, i, card)
			card.Location = LocationExtraDeck
		})
	case LocationBanished:
		i := indexOf(p.Banished, card)
		if i < 0 {
			return false
		}
		p.Banished = removeAt(p.Banished, i)
		return p.placeSummoned(card, pos, zone, func() {
			p.Banished = insertAt(p.Banished, i, card)
			card.Location = LocationBanished
		})
	}
	return false
}

// SpecialSummonFromHand special summons the monster at handIndex.
func (p *Player) SpecialSummonFromHand(handIndex int, pos MonsterPosition, zone int) bool {
	card := p.HandCard(handIndex)
	if card == nil || !card.CanBeSummoned() {
		return false
	}
	p.removeHandIndex(handIndex)
	return p.placeSummoned(card, pos, zone, func() { p.insertHand(handIndex, card) })
}

// SpecialSummonFromExtraDeck special summons the first extra deck card with the given id.
func (p *Player) SpecialSummonFromExtraDeck(id string, pos MonsterPosition, zone int) bool {
	card := p.Deck.TakeFromExtraDeck(id)
	if card == nil {
		return false
	}
	if !card.CanBeSummoned() {
		p.Deck.returnToExtraDeck(card)
		return false
	}
	return p.placeSummoned(card, pos, zone, func() { p.Deck.returnToExtraDeck(card) })
}

// SpecialSummonFromGraveyard special summons the monster at a graveyard index.
func (p *Player) SpecialSummonFromGraveyard(index int, pos MonsterPosition, zone int) bool {
	if index < 0 || index >= len(p.Graveyard) {
		return false
	}
	card := p.Graveyard[index]
	if !card.CanBeSummoned() {
		return false
	}
	p.Graveyard = removeAt(p.Graveyard, index)
	return p.placeSummoned(card, pos, zone, func() {
		p.Graveyard = insertAt(p.Graveyard, index, card)
		card.Location = LocationGraveyard
	})
}

func (p *Player) placeSummoned(card *Card, pos MonsterPosition, zone int, undo func()) bool {
	if p.Field.PlaceMonster(card, pos, zone) == NoZone {
		undo()
		return false
	}
	card.SummonedThisTurn = true
	return true
}

// SetSpellTrap sets the spell or trap at handIndex face-down. Field Spells go
// to the field-spell slot, sending any previous Field Spell to the graveyard.
func (p *Player) SetSpellTrap(handIndex int) bool {
	card := p.HandCard(handIndex)
	if card == nil || !(card.IsSpell() || card.IsTrap()) {
		return false
	}
	return p.placeFromHand(handIndex, FaceDown)
}

// ActivateFromHand plays the spell at handIndex face-up and marks it activated.
func (p *Player) ActivateFromHand(handIndex int) bool {
	card := p.HandCard(handIndex)
	if card == nil || !card.IsSpell() || !card.CanBeActivated() {
		return false
	}
	if !p.placeFromHand(handIndex, FaceUp) {
		return false
	}
	card.EffectActivatedThisTurn = true
	return true
}

func (p *Player) placeFromHand(handIndex int, pos SpellTrapPosition) bool {
	card := p.Hand[handIndex]
	p.removeHandIndex(handIndex)

	if card.IsFieldSpell() {
		old := p.Field.FieldSpell
		if !p.Field.PlaceFieldSpell(card, pos) {
			p.insertHand(handIndex, card)
			return false
		}
		if old != nil {
			p.SendToGraveyard(old)
		}
		return true
	}

	if p.Field.PlaceSpellTrap(card, pos, AnyZone) == NoZone {
		p.insertHand(handIndex, card)
		return false
	}
	return true
}

// ActivateSpellTrap flips the card in a spell/trap zone (or FieldSpellZone)
// face-up and marks it activated. It does not run any effect.
func (p *Player) ActivateSpellTrap(zone int) bool {
	card := p.Field.SpellTrapAt(zone)
	if card == nil || !card.CanBeActivated() {
		return false
	}
	if err := card.SetPosition(FaceUp); err != nil {
		return false
	}
	card.EffectActivatedThisTurn = true
	return true
}

// SendToGraveyard moves card from wherever it is recorded to be into the graveyard.
func (p *Player) SendToGraveyard(card *Card) {
	p.detach(card)
	p.Graveyard = append(p.Graveyard, card)
	card.Location = LocationGraveyard
}

// BanishCard moves card from wherever it is recorded to be into the banished pile.
func (p *Player) BanishCard(card *Card) {
	p.detach(card)
	p.Banished = append(p.Banished, card)
	card.Location = LocationBanished
}

// Discard sends the card at handIndex to the graveyard.
func (p *Player) Discard(handIndex int) bool {
	card := p.HandCard(handIndex)
	if card == nil {
		return false
	}
	p.SendToGraveyard(card)
	return true
}

// ReturnToDeck puts card back into the deck at position (0 top, -1 bottom).
// Extra deck monsters return to the extra deck instead.
func (p *Player) ReturnToDeck(card *Card, position int) {
	p.detach(card)
	if card.MonsterType.IsExtraDeck() {
		p.Deck.returnToExtraDeck(card)
		return
	}
	p.Deck.ReturnToDeck(card, position)
}

// AdjustLifePoints adds delta to the player's life points, clamping at 0.
// Reaching 0 loses the game.
func (p *Player) AdjustLifePoints(delta int) (old, updated int) {
	old = p.LifePoints
	p.LifePoints += delta
	if p.LifePoints <= 0 {
		p.LifePoints = 0
		p.HasLost = true
	}
	return old, p.LifePoints
}

// ResetTurnState clears per-turn usage flags for the player and their field.
func (p *Player) ResetTurnState() {
	p.NormalSummonUsed = false
	p.CanConductBattlePhase = true
	p.Field.ResetTurnState()
}

// detach removes card from the container its Location names.
func (p *Player) detach(card *Card) {
	switch card.Location {
	case LocationHand:
		p.Hand = removeCard(p.Hand, card)
	case LocationField:
		p.Field.RemoveCard(card)
	case LocationGraveyard:
		p.Graveyard = removeCard(p.Graveyard, card)
	case LocationBanished:
		p.Banished = removeCard(p.Banished, card)
	case LocationDeck:
		p.Deck.MainDeck = removeCard(p.Deck.MainDeck, card)
	case LocationExtraDeck:
		p.Deck.ExtraDeck = removeCard(p.Deck.ExtraDeck, card)
	}
	card.clearPlacement()
}

func (p *Player) removeHandIndex(i int) {
	p.Hand = removeAt(p.Hand, i)
}

func (p *Player) insertHand(i int, card *Card) {
	p.Hand = insertAt(p.Hand, i, card)
	card.Location = LocationHand
}

func removeAt(cards []*Card, i int) []*Card {
	return append(cards[:i:i], cards[i+1:]...)
}

func insertAt(cards []*Card, i int, card *Card) []*Card {
	if i >= len(cards) {
		return append(cards, card)
	}
	out := make([]*Card, 0, len(cards)+1)
	out = append(out, cards[:i]...)
	out = append(out, card)
	return append(out, cards[i:]...)
}

func indexOf(cards []*Card, card *Card) int {
	for i, c := range cards {
		if c == card {
			return i
		}
	}
	return -1
}

func removeCard(cards []*Card, card *Card) []*Card {
	for i, c := range cards {
		if c == card {
			return removeAt(cards, i)
		}
	}
	return cards
}
