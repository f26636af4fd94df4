package game

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestViewHidesOpponentSecrets(t *testing.T) {
	top0 := cards(vanillaMonster("Man-Eater Bug", 2, 450, 600), trapTemplate("Trap Hole", TrapNormal))
	g, _ := newTestGame(t, makePaddedDeck(t, top0, 40), makePaddedDeck(t, nil, 40))
	advanceTo(t, g, PhaseMain1)
	mustExecute(t, g, Action{Type: ActionNormalSummon, Player: 0, HandIndex: 0, Position: FaceDownDefense})
	mustExecute(t, g, Action{Type: ActionSetTrap, Player: 0, HandIndex: 0})

	own := g.View(0)
	if !own.IsYourTurn || len(own.You.Hand) != own.You.HandCount {
		t.Error("own view should list the hand")
	}
	if own.You.Monsters[0].Name != "Man-Eater Bug" || !own.You.Monsters[0].FaceDown {
		t.Errorf("own set monster = %+v", own.You.Monsters[0])
	}

	opp := g.View(1)
	if opp.IsYourTurn {
		t.Error("player 1 view claims it is their turn")
	}
	if opp.Opponent.Hand != nil || opp.Opponent.HandCount != own.You.HandCount {
		t.Error("opponent hand should be hidden but counted")
	}
	if z := opp.Opponent.Monsters[0]; !z.FaceDown || z.Name != "" || z.ATK != 0 {
		t.Errorf("face-down monster leaked: %+v", z)
	}
	if z := opp.Opponent.SpellTraps[0]; !z.FaceDown || z.Name != "" {
		t.Errorf("face-down trap leaked: %+v", z)
	}
	if !opp.Opponent.Monsters[1].Empty {
		t.Error("empty zone not marked empty")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	top := cards(vanillaMonster("Gemini Elf", 4, 1900, 900))
	g, _ := newTestGame(t, makePaddedDeck(t, top, 40), makePaddedDeck(t, nil, 40))
	p := g.Players[0]
	p.Hand[0].AddCounter("spell", 1)

	snap := g.Snapshot()
	snap.Players[0].Hand[0].Counters["spell"] = 99
	*snap.Players[0].Hand[0].Attack = 0

	if p.Hand[0].Counters["spell"] != 1 {
		t.Error("snapshot shares counters with the card")
	}
	if atk, _ := p.Hand[0].CurrentAttack(); atk != 1900 {
		t.Error("snapshot shares base stats with the card")
	}

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back GameSnapshot
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Phase != PhaseDraw.String() || back.Winner != -1 || len(back.Players[0].Hand) != OpeningHandStarter {
		t.Errorf("round trip lost data: phase=%s winner=%d", back.Phase, back.Winner)
	}
}

func TestSnapshotCarriesCurrentStatsAndCounts(t *testing.T) {
	flip := vanillaMonster("Man-Eater Bug", 2, 1400, 600)
	flip.MonsterAbility = AbilityFlip
	g, _ := newTestGame(t, makePaddedDeck(t, cards(flip), 40), makePaddedDeck(t, nil, 40))
	p := g.Players[0]
	p.Hand[0].AttackModifier = 500
	p.Hand[0].DefenseModifier = -200

	cs := p.Hand[0].Snapshot()
	if cs.CurrentAttack == nil || *cs.CurrentAttack != 1900 {
		t.Errorf("current_attack = %v, want 1900", cs.CurrentAttack)
	}
	if cs.CurrentDefense == nil || *cs.CurrentDefense != 400 {
		t.Errorf("current_defense = %v, want 400", cs.CurrentDefense)
	}
	if *cs.Attack != 1400 {
		t.Errorf("base attack changed: %d", *cs.Attack)
	}
	if cs.MonsterAbility != "flip" {
		t.Errorf("monster_ability = %q", cs.MonsterAbility)
	}

	data, err := json.Marshal(cs)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"current_attack":1900`, `"current_defense":400`, `"monster_ability":"flip"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("card JSON missing %s: %s", key, data)
		}
	}

	ps := p.Snapshot()
	if ps.Deck.MainDeckCount != 40-OpeningHandStarter || ps.DeckCount != ps.Deck.MainDeckCount {
		t.Errorf("deck counts = %d/%d", ps.Deck.MainDeckCount, ps.DeckCount)
	}
	if ps.HandCount != OpeningHandStarter || ps.GraveyardCount != 0 || ps.BanishedCount != 0 {
		t.Errorf("pile counts = hand %d grave %d banished %d", ps.HandCount, ps.GraveyardCount, ps.BanishedCount)
	}

	spell := NewCard(spellTemplate("Pot", SpellNormal))
	if s := spell.Snapshot(); s.CurrentAttack != nil || s.MonsterAbility != "" {
		t.Errorf("spell snapshot has monster stats: %+v", s)
	}
}

func TestViewRejectsUnknownViewer(t *testing.T) {
	g, _ := newTestGame(t, makePaddedDeck(t, nil, 40), makePaddedDeck(t, nil, 40))
	for _, viewer := range []int{-1, 2, 7} {
		v := g.View(viewer)
		if v.You.Name != "" || v.Turn != 0 {
			t.Errorf("View(%d) = %+v, want zero view", viewer, v)
		}
	}
}
