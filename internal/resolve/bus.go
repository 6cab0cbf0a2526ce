package resolve

import "github.com/sanguo/resolver/internal/log"

// BusEventKind discriminates the payload carried by an Event. "Before"
// kinds carry mutable outgoing fields a subscriber may set (prevention,
// modification amount); subscribers must not push resolvers themselves —
// they may only enqueue intentions into the chain's IntermediateResults
// for a later resolver to honor (spec §5).
type BusEventKind int

const (
	EventCardUsed BusEventKind = iota
	EventBeforeDamage
	EventDamageCreated
	EventDamageApplied
	EventDamageResolved
	EventAfterDamage
	EventBeforeRecover
	EventAfterCardTargetsDeclared
	EventAfterSlashDodged
	EventSlashNegatedByDodge
	EventDelayedTrickPlaced
	EventWeaponTransferred
	EventForcedSlashUseRequested
	EventForcedSlashUseResolved
)

// Event is the mutable payload fanned out to subscribers of one kind.
// Resolvers read Data for context and, for "Before" kinds, write to
// Prevented/Modification to influence the outcome the publishing resolver
// applies after Publish returns.
type Event struct {
	Kind         BusEventKind
	Game         *Game
	Source       Seat
	Target       Seat
	Card         *Card
	Damage       *DamageDescriptor
	Prevented    bool
	Modification int
	Data         map[string]any
}

// Handler observes or mutates an Event fired by Publish.
type Handler func(ctx *ResolutionContext, ev *Event)

// EventBus fans out events to subscribers in registration order (spec §5,
// §6). Subscribers are pure with respect to the resolution stack: they
// must not push resolvers, only write into the event or the chain's
// intermediate-results.
type EventBus struct {
	handlers map[BusEventKind][]Handler
}

// NewEventBus constructs an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[BusEventKind][]Handler)}
}

// Subscribe registers a handler for the given event kind. Handlers fire in
// the order they were subscribed.
func (b *EventBus) Subscribe(kind BusEventKind, h Handler) {
	b.handlers[kind] = append(b.handlers[kind], h)
}

// Publish fans an event out synchronously to every subscriber of its kind.
func (b *EventBus) Publish(ctx *ResolutionContext, ev *Event) {
	for _, h := range b.handlers[ev.Kind] {
		h(ctx, ev)
	}
}

func logEventType(kind BusEventKind) log.EventType {
	switch kind {
	case EventCardUsed:
		return log.EventCardUsed
	case EventBeforeDamage:
		return log.EventBeforeDamage
	case EventDamageCreated:
		return log.EventDamageCreated
	case EventDamageApplied:
		return log.EventDamageApplied
	case EventDamageResolved:
		return log.EventDamageResolved
	case EventAfterDamage:
		return log.EventAfterDamage
	case EventBeforeRecover:
		return log.EventBeforeRecover
	case EventAfterCardTargetsDeclared:
		return log.EventAfterCardTargetsDeclared
	case EventAfterSlashDodged:
		return log.EventAfterSlashDodged
	case EventSlashNegatedByDodge:
		return log.EventSlashNegatedByDodge
	case EventDelayedTrickPlaced:
		return log.EventDelayedTrickPlaced
	case EventWeaponTransferred:
		return log.EventWeaponTransferred
	case EventForcedSlashUseRequested:
		return log.EventForcedSlashUseRequested
	case EventForcedSlashUseResolved:
		return log.EventForcedSlashUseResolved
	default:
		return log.EventCardUsed
	}
}
