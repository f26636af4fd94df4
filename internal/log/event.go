package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventPhaseChange EventType = iota
	EventNewTurn
	EventDraw
	EventNormalSummon
	EventTributeSummon
	EventFlipSummon
	EventSpecialSummon
	EventSetMonster
	EventSetSpellTrap
	EventChangePosition
	EventActivate
	EventEffect
	EventSendToGraveyard
	EventBanish
	EventDiscard
	EventReturnToDeck
	EventLifePointChange
	EventAttackDeclare
	EventDeckOut
	EventWin
	EventShuffle
	EventRejected // an action failed validation and left the state untouched
)

func (e EventType) String() string {
	switch e {
	case EventPhaseChange:
		return "PhaseChange"
	case EventNewTurn:
		return "NewTurn"
	case EventDraw:
		return "Draw"
	case EventNormalSummon:
		return "NormalSummon"
	case EventTributeSummon:
		return "TributeSummon"
	case EventFlipSummon:
		return "FlipSummon"
	case EventSpecialSummon:
		return "SpecialSummon"
	case EventSetMonster:
		return "SetMonster"
	case EventSetSpellTrap:
		return "SetSpellTrap"
	case EventChangePosition:
		return "ChangePosition"
	case EventActivate:
		return "Activate"
	case EventEffect:
		return "Effect"
	case EventSendToGraveyard:
		return "SendToGraveyard"
	case EventBanish:
		return "Banish"
	case EventDiscard:
		return "Discard"
	case EventReturnToDeck:
		return "ReturnToDeck"
	case EventLifePointChange:
		return "LifePointChange"
	case EventAttackDeclare:
		return "AttackDeclare"
	case EventDeckOut:
		return "DeckOut"
	case EventWin:
		return "Win"
	case EventShuffle:
		return "Shuffle"
	case EventRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a game.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based)
	Phase   string    // current phase name (e.g. "Main Phase 1")
	Player  int       // acting player (0 or 1)
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
