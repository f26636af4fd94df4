package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
)

func TestMemoryLoggerSequence(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewTurnEvent(1, 0))
	l.Log(NewDrawEvent(1, "Draw Phase", 0, 6))
	l.Log(NewDrawEvent(1, "Draw Phase", 1, 5))

	events := l.Events()
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	for i, e := range events {
		if e.Seq != i+1 {
			t.Errorf("event %d has seq %d", i, e.Seq)
		}
	}
	if got := len(l.EventsOfType(EventDraw)); got != 2 {
		t.Errorf("EventsOfType(Draw) = %d, want 2", got)
	}
	if got := l.LastEvent().Player; got != 1 {
		t.Errorf("last event player = %d, want 1", got)
	}
	if got := l.Since(1); len(got) != 2 || got[0].Seq != 2 {
		t.Errorf("Since(1) = %+v", got)
	}
	if got := l.Since(3); got != nil {
		t.Errorf("Since(3) = %+v, want nil", got)
	}
}

func TestLastEventEmpty(t *testing.T) {
	if e := NewMemoryLogger().LastEvent(); e.Seq != 0 {
		t.Errorf("LastEvent on empty logger = %+v", e)
	}
}

func TestTextLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf)
	l.Log(NewTributeSummonEvent(3, "Main Phase 1", 0, "Summoned Skull", 1, []string{"Celtic Guardian"}))

	out := buf.String()
	if !strings.HasPrefix(out, "T3  Main Phase 1") {
		t.Errorf("unexpected prefix: %q", out)
	}
	if !strings.Contains(out, "P1 tribute summons Summoned Skull to Monster Zone 2 (tributed: Celtic Guardian)") {
		t.Errorf("unexpected details: %q", out)
	}
	if len(l.Events()) != 1 {
		t.Errorf("TextLogger should also keep events")
	}
}

func TestRejectedEventCarriesReason(t *testing.T) {
	e := NewRejectedEvent(2, "Battle Phase", 1, "Normal Summon", errors.New("action not allowed in this phase"))
	if e.Type != EventRejected {
		t.Fatalf("type = %v", e.Type)
	}
	if !strings.Contains(e.Details, "P2: Normal Summon rejected (action not allowed in this phase)") {
		t.Errorf("details = %q", e.Details)
	}
}

func TestAttackDeclareDirect(t *testing.T) {
	e := NewAttackDeclareEvent(4, 0, "Gemini Elf", "")
	if !strings.HasSuffix(e.Details, "Gemini Elf → direct") {
		t.Errorf("details = %q", e.Details)
	}
}

func TestStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	out := charmlog.NewWithOptions(&buf, charmlog.Options{Formatter: charmlog.LogfmtFormatter})
	l := NewStructuredLogger(out, charmlog.InfoLevel)
	l.Log(NewNormalSummonEvent(1, "Main Phase 1", 0, "Celtic Guardian", 0))

	got := buf.String()
	for _, want := range []string{"msg=NormalSummon", "seq=1", "card=\"Celtic Guardian\"", "player=0"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
	if l.LastEvent().Seq != 1 {
		t.Errorf("event not stored")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventRejected.String() != "Rejected" || EventType(999).String() != "Unknown" {
		t.Error("unexpected EventType names")
	}
}
