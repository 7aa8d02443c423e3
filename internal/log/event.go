package log

// EventType enumerates all observable match events.
type EventType int

const (
	EventNewTurn EventType = iota
	EventDraw
	EventShuffle
	EventMulligan
	EventPlaceActive
	EventPlaceBench
	EventEvolve
	EventAttachEnergy
	EventTrainer
	EventStadium
	EventTool
	EventAbility
	EventAttack
	EventDamage
	EventCounters
	EventKnockOut
	EventPrize
	EventPromote
	EventRetreat
	EventDiscard
	EventCopyPending
	EventEndTurn
	EventWin
)

func (e EventType) String() string {
	switch e {
	case EventNewTurn:
		return "NewTurn"
	case EventDraw:
		return "Draw"
	case EventShuffle:
		return "Shuffle"
	case EventMulligan:
		return "Mulligan"
	case EventPlaceActive:
		return "PlaceActive"
	case EventPlaceBench:
		return "PlaceBench"
	case EventEvolve:
		return "Evolve"
	case EventAttachEnergy:
		return "AttachEnergy"
	case EventTrainer:
		return "Trainer"
	case EventStadium:
		return "Stadium"
	case EventTool:
		return "Tool"
	case EventAbility:
		return "Ability"
	case EventAttack:
		return "Attack"
	case EventDamage:
		return "Damage"
	case EventCounters:
		return "Counters"
	case EventKnockOut:
		return "KnockOut"
	case EventPrize:
		return "Prize"
	case EventPromote:
		return "Promote"
	case EventRetreat:
		return "Retreat"
	case EventDiscard:
		return "Discard"
	case EventCopyPending:
		return "CopyPending"
	case EventEndTurn:
		return "EndTurn"
	case EventWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a match.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based)
	Player  int       // acting player (0 or 1)
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
