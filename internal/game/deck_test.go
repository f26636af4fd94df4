package game

import (
	"errors"
	"math/rand"
	"testing"
)

func repeatIDs(id string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = id
	}
	return ids
}

func TestNewDeckSizes(t *testing.T) {
	f := CardFactory{Templates: mapSource{
		"m":   vanillaMonster("M", 4, 1000, 1000),
		"fus": fusionMonster("F", 8, 3000, 2500),
	}}
	tests := []struct {
		name  string
		main  int
		extra int
		ok    bool
	}{
		{"too small", 39, 0, false},
		{"minimum", 40, 0, true},
		{"maximum", 60, 15, true},
		{"too large", 61, 0, false},
		{"extra too large", 40, 16, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDeck(f, repeatIDs("m", tt.main), repeatIDs("fus", tt.extra))
			if !tt.ok {
				if !errors.Is(err, ErrDeckSize) {
					t.Fatalf("err = %v, want ErrDeckSize", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewDeck: %v", err)
			}
			if d.RemainingCards() != tt.main || d.ExtraDeckCount() != tt.extra {
				t.Errorf("sizes = %d/%d, want %d/%d", d.RemainingCards(), d.ExtraDeckCount(), tt.main, tt.extra)
			}
			for _, c := range d.MainDeck {
				if c.Location != LocationDeck {
					t.Fatalf("main deck card location = %s", c.Location)
				}
			}
			for _, c := range d.ExtraDeck {
				if c.Location != LocationExtraDeck {
					t.Fatalf("extra deck card location = %s", c.Location)
				}
			}
		})
	}
}

func TestNewDeckUnknownID(t *testing.T) {
	f := CardFactory{Templates: mapSource{"m": vanillaMonster("M", 4, 0, 0)}}
	ids := append(repeatIDs("m", 39), "ghost")
	if _, err := NewDeck(f, ids, nil); !errors.Is(err, ErrUnknownCardID) {
		t.Errorf("err = %v, want ErrUnknownCardID", err)
	}
}

func TestDeckDrawAndShortDraw(t *testing.T) {
	top := cards(vanillaMonster("A", 4, 0, 0), vanillaMonster("B", 4, 0, 0))
	d := makePaddedDeck(t, top, 40)

	drawn := d.Draw(2)
	if len(drawn) != 2 || drawn[0].Name != "A" || drawn[1].Name != "B" {
		t.Fatalf("Draw(2) = %v, want [A B]", drawn)
	}
	if d.RemainingCards() != 38 {
		t.Errorf("remaining = %d, want 38", d.RemainingCards())
	}

	rest := d.Draw(100)
	if len(rest) != 38 || d.RemainingCards() != 0 {
		t.Errorf("short draw returned %d cards, %d left", len(rest), d.RemainingCards())
	}
	if got := d.Draw(1); len(got) != 0 {
		t.Errorf("draw from empty deck returned %d cards", len(got))
	}
}

func TestDeckReturnToDeck(t *testing.T) {
	d := makePaddedDeck(t, cards(vanillaMonster("Top", 4, 0, 0)), 40)
	n := d.RemainingCards()

	bottom := NewCard(vanillaMonster("Bottom", 4, 0, 0))
	bottom.Position = FaceUpAttack
	d.ReturnToDeck(bottom, -1)
	if d.MainDeck[len(d.MainDeck)-1] != bottom {
		t.Error("-1 should return to the bottom")
	}
	if bottom.Location != LocationDeck || bottom.Position != nil {
		t.Errorf("returned card location=%s position=%v", bottom.Location, bottom.Position)
	}

	top := NewCard(vanillaMonster("NewTop", 4, 0, 0))
	d.ReturnToDeck(top, 0)
	if d.MainDeck[0] != top {
		t.Error("0 should return to the top")
	}

	mid := NewCard(vanillaMonster("Mid", 4, 0, 0))
	d.ReturnToDeck(mid, 2)
	if d.MainDeck[2] != mid {
		t.Error("2 should insert at index 2")
	}

	far := NewCard(vanillaMonster("Far", 4, 0, 0))
	d.ReturnToDeck(far, 1000)
	if d.MainDeck[len(d.MainDeck)-1] != far {
		t.Error("out-of-range index should clamp to the bottom")
	}
	if d.RemainingCards() != n+4 {
		t.Errorf("remaining = %d, want %d", d.RemainingCards(), n+4)
	}
}

func TestDeckShufflePreservesCards(t *testing.T) {
	main := make([]*Card, 40)
	for i := range main {
		main[i] = NewCard(vanillaMonster("M", 4, i, 0))
	}
	d, err := NewDeckFromCards(main, nil)
	if err != nil {
		t.Fatal(err)
	}
	d.Shuffle(rand.New(rand.NewSource(42)))

	seen := make(map[*Card]bool)
	for _, c := range d.MainDeck {
		seen[c] = true
	}
	if len(seen) != 40 {
		t.Fatalf("shuffle lost cards: %d unique", len(seen))
	}
	for _, c := range main {
		if !seen[c] {
			t.Fatal("shuffle dropped a card")
		}
	}
}

func TestTakeFromExtraDeck(t *testing.T) {
	fus := NewCard(fusionMonster("Dragon Master Knight", 12, 5000, 5000))
	d := makePaddedDeck(t, nil, 40, fus)

	if c := d.TakeFromExtraDeck("nope"); c != nil {
		t.Error("unknown id should return nil")
	}
	if c := d.TakeFromExtraDeck(fus.ID); c != fus {
		t.Errorf("TakeFromExtraDeck = %v, want %v", c, fus)
	}
	if d.ExtraDeckCount() != 0 {
		t.Errorf("extra deck count = %d, want 0", d.ExtraDeckCount())
	}
}
