package game

import (
	"fmt"
	"math/rand"
)

const (
	MinDeckSize      = 40
	MaxDeckSize      = 60
	MaxExtraDeckSize = 15
)

// Deck is one player's draw pile plus extra deck. MainDeck[0] is the top card.
type Deck struct {
	MainDeck  []*Card
	ExtraDeck []*Card
}

// NewDeck builds fresh card instances for every id and validates deck sizes.
func NewDeck(f CardFactory, mainIDs, extraIDs []string) (*Deck, error) {
	if err := checkDeckSize(len(mainIDs), len(extraIDs)); err != nil {
		return nil, err
	}
	main := make([]*Card, 0, len(mainIDs))
	for _, id := range mainIDs {
		c, err := f.NewCard(id)
		if err != nil {
			return nil, fmt.Errorf("main deck: %w", err)
		}
		main = append(main, c)
	}
	extra := make([]*Card, 0, len(extraIDs))
	for _, id := range extraIDs {
		c, err := f.NewCard(id)
		if err != nil {
			return nil, fmt.Errorf("extra deck: %w", err)
		}
		extra = append(extra, c)
	}
	return NewDeckFromCards(main, extra)
}

// NewDeckFromCards wraps already-built instances in a Deck.
func NewDeckFromCards(main, extra []*Card) (*Deck, error) {
	if err := checkDeckSize(len(main), len(extra)); err != nil {
		return nil, err
	}
	d := &Deck{
		MainDeck:  append([]*Card(nil), main...),
		ExtraDeck: append([]*Card(nil), extra...),
	}
	for _, c := range d.MainDeck {
		c.Location = LocationDeck
	}
	for _, c := range d.ExtraDeck {
		c.Location = LocationExtraDeck
	}
	return d, nil
}

func checkDeckSize(main, extra int) error {
	if main < MinDeckSize || main > MaxDeckSize {
		return fmt.Errorf("main deck has %d cards, must contain between %d and %d: %w", main, MinDeckSize, MaxDeckSize, ErrDeckSize)
	}
	if extra > MaxExtraDeckSize {
		return fmt.Errorf("extra deck has %d cards, cannot contain more than %d: %w", extra, MaxExtraDeckSize, ErrDeckSize)
	}
	return nil
}

// Shuffle randomizes the main deck order.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.MainDeck), func(i, j int) {
		d.MainDeck[i], d.MainDeck[j] = d.MainDeck[j], d.MainDeck[i]
	})
}

// Draw removes up to count cards from the top of the deck. A short deck
// yields fewer cards rather than an error.
func (d *Deck) Draw(count int) []*Card {
	if count <= 0 {
		return nil
	}
	if count > len(d.MainDeck) {
		count = len(d.MainDeck)
	}
	drawn := make([]*Card, count)
	copy(drawn, d.MainDeck[:count])
	d.MainDeck = d.MainDeck[count:]
	return drawn
}

// ReturnToDeck inserts a card at the top (0), bottom (-1) or a given index.
func (d *Deck) ReturnToDeck(card *Card, position int) {
	switch {
	case position == -1 || position >= len(d.MainDeck):
		d.MainDeck = append(d.MainDeck, card)
	case position <= 0:
		d.MainDeck = append([]*Card{card}, d.MainDeck...)
	default:
		d.MainDeck = append(d.MainDeck[:position], append([]*Card{card}, d.MainDeck[position:]...)...)
	}
	card.Location = LocationDeck
	card.clearPlacement()
}

// RemainingCards returns the number of cards left in the main deck.
func (d *Deck) RemainingCards() int {
	return len(d.MainDeck)
}

// ExtraDeckCount returns the number of cards in the extra deck.
func (d *Deck) ExtraDeckCount() int {
	return len(d.ExtraDeck)
}

// TakeFromExtraDeck removes and returns the first extra deck card with the
// given template id, or nil if there is none.
func (d *Deck) TakeFromExtraDeck(id string) *Card {
	for i, c := range d.ExtraDeck {
		if c.ID == id {
			d.ExtraDeck = append(d.ExtraDeck[:i], d.ExtraDeck[i+1:]...)
			return c
		}
	}
	return nil
}

// returnToExtraDeck puts a card back into the extra deck pool.
func (d *Deck) returnToExtraDeck(card *Card) {
	d.ExtraDeck = append(d.ExtraDeck, card)
	card.Location = LocationExtraDeck
	card.clearPlacement()
}

func (d *Deck) setOwner(player int) {
	for _, c := range d.MainDeck {
		c.Owner = player
	}
	for _, c := range d.ExtraDeck {
		c.Owner = player
	}
}
