package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging resolution events. This doubles
// as the "log sink / log collector" external collaborator: Log is the sink,
// Events is what a collector queries back.
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

// NextSequenceNumber returns the sequence number the next logged event will receive.
func (l *MemoryLogger) NextSequenceNumber() int {
	return l.seq + 1
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

func seatName(seat int) string {
	return fmt.Sprintf("Seat %d", seat)
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	phase := e.Phase
	if phase == "" {
		phase = "        "
	}
	for len(phase) < 12 {
		phase += " "
	}
	return fmt.Sprintf("T%-2d %s| %s", e.Turn, phase, e.Details)
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

func NewPhaseChangeEvent(turn int, phase string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventPhaseChange,
		Details: fmt.Sprintf("Phase -> %s", phase),
	}
}

func NewTurnEvent(turn int, seat int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Draw Phase",
		Seat:    seat,
		Type:    EventNewTurn,
		Details: fmt.Sprintf("=== Turn %d (%s) ===", turn, seatName(seat)),
	}
}

func NewDrawEvent(turn int, phase string, seat int, n int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Seat:    seat,
		Type:    EventDraw,
		Details: fmt.Sprintf("%s draws %d card(s)", seatName(seat), n),
	}
}

func NewCardUsedEvent(turn int, phase string, seat int, cardName string, targets []int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Seat:    seat,
		Type:    EventCardUsed,
		Card:    cardName,
		Details: fmt.Sprintf("%s uses %s (targets: %v)", seatName(seat), cardName, targets),
	}
}

func NewBeforeDamageEvent(turn int, source, target, amount int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Seat:    target,
		Type:    EventBeforeDamage,
		Details: fmt.Sprintf("Before damage: %s -> %s amount %d", seatName(source), seatName(target), amount),
	}
}

func NewDamageCreatedEvent(turn int, source, target, amount int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Seat:    target,
		Type:    EventDamageCreated,
		Details: fmt.Sprintf("Damage created: %s -> %s amount %d", seatName(source), seatName(target), amount),
	}
}

func NewDamageAppliedEvent(turn int, target int, previous, current, amount int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Seat:    target,
		Type:    EventDamageApplied,
		Details: fmt.Sprintf("%s health: %d -> %d (damage %d)", seatName(target), previous, current, amount),
	}
}

func NewDamageResolvedEvent(turn int, target int, amount int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Seat:    target,
		Type:    EventDamageResolved,
		Details: fmt.Sprintf("Damage resolved for %s, amount %d", seatName(target), amount),
	}
}

func NewAfterDamageEvent(turn int, target int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Seat:    target,
		Type:    EventAfterDamage,
		Details: fmt.Sprintf("After damage resolved for %s", seatName(target)),
	}
}

func NewDyingStartEvent(turn int, seat int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Seat:    seat,
		Type:    EventDyingStart,
		Details: fmt.Sprintf("%s enters dying state", seatName(seat)),
	}
}

func NewPlayerDiedEvent(turn int, seat int, killer int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Seat:    seat,
		Type:    EventPlayerDied,
		Details: fmt.Sprintf("%s dies (killer: %s)", seatName(seat), seatName(killer)),
	}
}

func NewBeforeRecoverEvent(turn int, seat int, amount int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Seat:    seat,
		Type:    EventBeforeRecover,
		Details: fmt.Sprintf("Before recover: %s amount %d", seatName(seat), amount),
	}
}

func NewAfterRecoverEvent(turn int, seat int, previous, current int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Seat:    seat,
		Type:    EventAfterRecover,
		Details: fmt.Sprintf("%s health: %d -> %d (recover)", seatName(seat), previous, current),
	}
}

func NewChainLinkEvent(turn int, seat int, cardName string, chainIndex int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Seat:    seat,
		Type:    EventChainLink,
		Card:    cardName,
		Details: fmt.Sprintf("Chain Link %d: %s activates %s", chainIndex, seatName(seat), cardName),
	}
}

func NewChainResolveEvent(turn int, seat int, cardName string, chainIndex int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Seat:    seat,
		Type:    EventChainResolve,
		Card:    cardName,
		Details: fmt.Sprintf("Chain Link %d resolves: %s", chainIndex, cardName),
	}
}

func NewNullificationResultEvent(turn int, key string, isNullified bool, count int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventNullificationResult,
		Details: fmt.Sprintf("Nullification[%s]: nullified=%v count=%d", key, isNullified, count),
	}
}

func NewResponseProvidedEvent(turn int, seat int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Seat:    seat,
		Type:    EventResponseProvided,
		Card:    cardName,
		Details: fmt.Sprintf("%s responds with %s", seatName(seat), cardName),
	}
}

func NewResponsePassedEvent(turn int, seat int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Seat:    seat,
		Type:    EventResponsePassed,
		Details: fmt.Sprintf("%s passes", seatName(seat)),
	}
}

func NewResponseWindowResultEvent(turn int, kind string, unitsProvided, unitsRequired int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventResponseWindowResult,
		Details: fmt.Sprintf("Response window (%s) result: %d/%d units", kind, unitsProvided, unitsRequired),
	}
}

func NewDelayedTrickPlacedEvent(turn int, target int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Seat:    target,
		Type:    EventDelayedTrickPlaced,
		Card:    cardName,
		Details: fmt.Sprintf("%s placed in %s's judgement zone", cardName, seatName(target)),
	}
}

func NewJudgementFlipEvent(turn int, seat int, cardName string, success bool) GameEvent {
	return GameEvent{
		Turn:    turn,
		Seat:    seat,
		Type:    EventJudgementFlip,
		Card:    cardName,
		Details: fmt.Sprintf("%s judgement for %s: success=%v", seatName(seat), cardName, success),
	}
}

func NewJudgementCompleteEvent(turn int, seat int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Seat:    seat,
		Type:    EventJudgementComplete,
		Card:    cardName,
		Details: fmt.Sprintf("%s judgement complete for %s", seatName(seat), cardName),
	}
}

func NewWeaponTransferredEvent(turn int, from, to int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Seat:    to,
		Type:    EventWeaponTransferred,
		Card:    cardName,
		Details: fmt.Sprintf("%s transfers to %s from %s", cardName, seatName(to), seatName(from)),
	}
}

func NewForcedSlashUseRequestedEvent(turn int, seat int, target int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Seat:    seat,
		Type:    EventForcedSlashUseRequested,
		Details: fmt.Sprintf("%s asked to Slash %s", seatName(seat), seatName(target)),
	}
}

func NewForcedSlashUseResolvedEvent(turn int, seat int, used bool) GameEvent {
	return GameEvent{
		Turn:    turn,
		Seat:    seat,
		Type:    EventForcedSlashUseResolved,
		Details: fmt.Sprintf("%s forced slash resolved: used=%v", seatName(seat), used),
	}
}

func NewCardMovedEvent(turn int, cardName, from, to string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventCardMoved,
		Card:    cardName,
		Details: fmt.Sprintf("%s moves %s -> %s", cardName, from, to),
	}
}

func NewWinEvent(turn int, seat int, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Seat:    seat,
		Type:    EventWin,
		Details: fmt.Sprintf("%s wins (%s)", seatName(seat), reason),
	}
}
