package log

import (
	charmlog "github.com/charmbracelet/log"
)

// StructuredLogger forwards game events to a process logger as key/value
// records while keeping them in memory like MemoryLogger.
type StructuredLogger struct {
	MemoryLogger
	out   *charmlog.Logger
	level charmlog.Level
}

// NewStructuredLogger writes every event to out at the given level.
func NewStructuredLogger(out *charmlog.Logger, level charmlog.Level) *StructuredLogger {
	return &StructuredLogger{out: out, level: level}
}

func (l *StructuredLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	event = l.LastEvent()
	keyvals := []any{"seq", event.Seq, "turn", event.Turn, "phase", event.Phase, "player", event.Player}
	if event.Card != "" {
		keyvals = append(keyvals, "card", event.Card)
	}
	keyvals = append(keyvals, "details", event.Details)
	l.out.Log(l.level, event.Type.String(), keyvals...)
}
