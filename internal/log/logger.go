package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging match events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// playerName returns "P1" or "P2" for display.
func playerName(p int) string {
	return fmt.Sprintf("P%d", p+1)
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	return fmt.Sprintf("T%-3d %-13s| %s", e.Turn, e.Type.String(), e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewTurnEvent(turn int, player int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventNewTurn,
		Details: fmt.Sprintf("=== Turn %d (%s) ===", turn, playerName(player)),
	}
}

func NewDrawEvent(turn int, player int, count int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventDraw,
		Details: fmt.Sprintf("%s draws %d card(s)", playerName(player), count),
	}
}

func NewShuffleEvent(turn int, player int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventShuffle,
		Details: fmt.Sprintf("%s shuffles their deck", playerName(player)),
	}
}

func NewMulliganEvent(turn int, player int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventMulligan,
		Details: fmt.Sprintf("%s mulligans (no Basic in opening hand)", playerName(player)),
	}
}

func NewPlaceActiveEvent(turn int, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventPlaceActive,
		Card:    cardName,
		Details: fmt.Sprintf("%s puts %s into the Active Spot", playerName(player), cardName),
	}
}

func NewPlaceBenchEvent(turn int, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventPlaceBench,
		Card:    cardName,
		Details: fmt.Sprintf("%s benches %s", playerName(player), cardName),
	}
}

func NewEvolveEvent(turn int, player int, fromName, toName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventEvolve,
		Card:    toName,
		Details: fmt.Sprintf("%s evolves %s into %s", playerName(player), fromName, toName),
	}
}

func NewAttachEnergyEvent(turn int, player int, energyName, targetName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventAttachEnergy,
		Card:    energyName,
		Details: fmt.Sprintf("%s attaches %s to %s", playerName(player), energyName, targetName),
	}
}

func NewTrainerEvent(turn int, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventTrainer,
		Card:    cardName,
		Details: fmt.Sprintf("%s plays %s", playerName(player), cardName),
	}
}

func NewStadiumEvent(turn int, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventStadium,
		Card:    cardName,
		Details: fmt.Sprintf("%s brings %s into play", playerName(player), cardName),
	}
}

func NewToolEvent(turn int, player int, toolName, targetName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventTool,
		Card:    toolName,
		Details: fmt.Sprintf("%s attaches %s to %s", playerName(player), toolName, targetName),
	}
}

func NewAbilityEvent(turn int, player int, abilityName, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventAbility,
		Card:    cardName,
		Details: fmt.Sprintf("%s uses %s's %s", playerName(player), cardName, abilityName),
	}
}

func NewAttackEvent(turn int, player int, attackName, attackerName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventAttack,
		Card:    attackerName,
		Details: fmt.Sprintf("%s attacks with %s's %s", playerName(player), attackerName, attackName),
	}
}

func NewDamageEvent(turn int, player int, targetName string, amount int, remaining int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventDamage,
		Card:    targetName,
		Details: fmt.Sprintf("%s takes %d damage (%d HP left)", targetName, amount, remaining),
	}
}

func NewCountersEvent(turn int, player int, targetName string, count int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventCounters,
		Card:    targetName,
		Details: fmt.Sprintf("%d damage counter(s) put on %s", count, targetName),
	}
}

func NewKnockOutEvent(turn int, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventKnockOut,
		Card:    cardName,
		Details: fmt.Sprintf("%s's %s is Knocked Out", playerName(player), cardName),
	}
}

func NewPrizeEvent(turn int, player int, count int, taken int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventPrize,
		Details: fmt.Sprintf("%s takes %d Prize card(s) (%d total)", playerName(player), count, taken),
	}
}

func NewPromoteEvent(turn int, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventPromote,
		Card:    cardName,
		Details: fmt.Sprintf("%s promotes %s to the Active Spot", playerName(player), cardName),
	}
}

func NewRetreatEvent(turn int, player int, fromName, toName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventRetreat,
		Card:    fromName,
		Details: fmt.Sprintf("%s retreats %s for %s", playerName(player), fromName, toName),
	}
}

func NewDiscardEvent(turn int, player int, cardName, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventDiscard,
		Card:    cardName,
		Details: fmt.Sprintf("%s discards %s (%s)", playerName(player), cardName, reason),
	}
}

func NewCopyPendingEvent(turn int, player int, attackerName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventCopyPending,
		Card:    attackerName,
		Details: fmt.Sprintf("%s must choose an opposing attack for %s to copy", playerName(player), attackerName),
	}
}

func NewEndTurnEvent(turn int, player int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventEndTurn,
		Details: fmt.Sprintf("%s ends their turn", playerName(player)),
	}
}

func NewWinEvent(turn int, winner int, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  winner,
		Type:    EventWin,
		Details: fmt.Sprintf("%s wins! (%s)", playerName(winner), reason),
	}
}

func NewDrawGameEvent(turn int, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  -1,
		Type:    EventWin,
		Details: fmt.Sprintf("Match drawn (%s)", reason),
	}
}
