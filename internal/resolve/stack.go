package resolve

import "github.com/sanguo/resolver/internal/log"

// Resolver is anything the stack can run. Resolve is called once when the
// resolver reaches the top of the stack and is popped; pushing further
// resolvers from within Resolve is how the chain grows (spec §3).
type Resolver interface {
	// Name identifies the resolver in history/log output.
	Name() string
	// Resolve executes the resolver's effect. Returning an error halts the
	// drain: the stack stops popping further resolvers and surfaces the
	// error to the caller (spec §4.1/§7).
	Resolve(ctx *ResolutionContext) error
}

// ResolverFunc adapts a plain function to the Resolver interface for
// resolvers with no state worth a named type (ad hoc continuations pushed
// by another resolver, e.g. "apply the dodge result").
type ResolverFunc struct {
	FuncName string
	Fn       func(ctx *ResolutionContext) error
}

func (f ResolverFunc) Name() string { return f.FuncName }
func (f ResolverFunc) Resolve(ctx *ResolutionContext) error {
	return f.Fn(ctx)
}

// ResolutionRecord is one completed entry in the stack's history, kept
// after the resolver that produced it has already been popped (spec §3).
type ResolutionRecord struct {
	Name string
	Err  error
}

// ResolutionStack is the engine's single LIFO execution structure. Every
// card use, damage, dying flow and judgement runs as a resolver pushed
// here (response and nullification windows run inline inside the resolver
// that opens them); the stack drains strictly last-in-first-out and
// never re-orders or peeks ahead (spec §3).
type ResolutionStack struct {
	pending []Resolver
	history []ResolutionRecord
}

// NewResolutionStack builds an empty stack.
func NewResolutionStack() *ResolutionStack {
	return &ResolutionStack{}
}

// Push adds a resolver to the top of the stack. Resolvers at the top run
// first, so pushing a cleanup continuation before a resolver runs is how a
// resolver schedules "and then, after everything this triggers settles".
func (s *ResolutionStack) Push(r Resolver) {
	s.pending = append(s.pending, r)
}

// IsEmpty reports whether the stack has no pending resolvers.
func (s *ResolutionStack) IsEmpty() bool {
	return len(s.pending) == 0
}

// Len reports the number of pending resolvers.
func (s *ResolutionStack) Len() int {
	return len(s.pending)
}

// History returns completed resolution records in execution order.
func (s *ResolutionStack) History() []ResolutionRecord {
	return s.history
}

// pop removes and returns the top resolver, or nil if empty.
func (s *ResolutionStack) pop() Resolver {
	n := len(s.pending)
	if n == 0 {
		return nil
	}
	r := s.pending[n-1]
	s.pending = s.pending[:n-1]
	return r
}

// Drain repeatedly pops and resolves until the stack is empty or a resolver
// fails. A resolver that pushes more resolvers during Resolve causes those
// to run before anything that was already below it (spec §3's LIFO
// guarantee). The first error encountered is recorded in history alongside
// its resolver, and the drain stops immediately — spec §4.1/§7: the outer
// driver stops and surfaces the failure rather than continuing to run
// resolvers still pending beneath the one that failed.
func (s *ResolutionStack) Drain(ctx *ResolutionContext) error {
	for !s.IsEmpty() {
		r := s.pop()
		err := r.Resolve(ctx)
		s.history = append(s.history, ResolutionRecord{Name: r.Name(), Err: err})
		if err != nil {
			return err
		}
	}
	return nil
}

// chainLogger bridges the engine's domain events into the teacher-style
// EventLogger. It forwards each event as built: the sink assigns Seq, and
// the turn, phase and seat are whatever the event's constructor was given.
type chainLogger struct {
	sink log.EventLogger
	turn int
	seat int
}

func newChainLogger() *chainLogger {
	return &chainLogger{}
}

// Attach points the logger at a concrete sink (tests may leave this nil,
// in which case log calls are no-ops).
func (c *chainLogger) Attach(sink log.EventLogger) {
	c.sink = sink
}

// SetContext records an ambient turn/seat on the logger. Emit does not
// apply them to events.
func (c *chainLogger) SetContext(turn int, seat Seat) {
	c.turn = turn
	c.seat = int(seat)
}

// Emit forwards a fully-built event to the sink, if one is attached. The
// sink itself assigns Seq (MemoryLogger.Log increments its own counter), so
// callers need not worry about sequencing.
func (c *chainLogger) Emit(ev log.GameEvent) {
	if c.sink == nil {
		return
	}
	c.sink.Log(ev)
}
