package resolve

import "github.com/sanguo/resolver/internal/log"

// JudgePhaseResolver runs every delayed trick card sitting in seat's
// judgement zone, oldest first, before anything else happens in the turn
// (spec §4.6). StartTurn builds one JudgementResolver per card, recovering
// each card's predicate and effect factory from its subtype via
// predicateAndEffectFor; JudgePhaseResolver itself only pushes them.
type JudgePhaseResolver struct {
	Seat  Seat
	Cards []*JudgementResolver // one per card currently in the judgement zone, in order
}

func (r *JudgePhaseResolver) Name() string { return "JudgePhase" }

func (r *JudgePhaseResolver) Resolve(ctx *ResolutionContext) error {
	ctx.Game.Phase = PhaseJudge
	if ctx.Logger != nil {
		ctx.Logger.Emit(log.NewPhaseChangeEvent(ctx.Game.Turn, ctx.Game.Phase.String()))
	}
	// Push in reverse so the oldest card (index 0) resolves first — LIFO.
	for i := len(r.Cards) - 1; i >= 0; i-- {
		ctx.Stack.Push(r.Cards[i])
	}
	return nil
}

// DrawPhaseResolver draws a fixed number of cards (conventionally two) for
// seat (spec §4.6). StartTurn pushes it beneath JudgePhaseResolver so the
// judgement sweep always completes first within the same turn.
type DrawPhaseResolver struct {
	Seat  Seat
	Count int
}

func (r *DrawPhaseResolver) Name() string { return "DrawPhase" }

func (r *DrawPhaseResolver) Resolve(ctx *ResolutionContext) error {
	ctx.Game.Phase = PhaseDraw
	if ctx.Logger != nil {
		ctx.Logger.Emit(log.NewPhaseChangeEvent(ctx.Game.Turn, ctx.Game.Phase.String()))
	}
	n := r.Count
	if n <= 0 {
		n = 2
	}
	drawn := ctx.Move.DrawCards(ctx.Game, r.Seat, n)
	if ctx.Logger != nil {
		ctx.Logger.Emit(log.NewDrawEvent(ctx.Game.Turn, ctx.Game.Phase.String(), int(r.Seat), len(drawn)))
	}
	return nil
}

// StartTurn pushes one seat's Judge-then-Draw phase pair onto the stack
// and drains it, advancing Game.Turn/CurrentSeat first (spec §4.6). Play
// and Discard phases are left to the calling layer (for example a test's
// own scripted sequence of UseCard calls; cmd/resolversim runs only the
// Judge and Draw phases) since they are simply
// "the active player may call UseCard any number of times" with no
// resolver-core behavior of their own beyond what UseCard already does.
func StartTurn(ctx *ResolutionContext, seat Seat) error {
	ctx.Game.Turn++
	ctx.Game.CurrentSeat = seat
	if ctx.Logger != nil {
		ctx.Logger.Emit(log.NewTurnEvent(ctx.Game.Turn, int(seat)))
	}

	p := ctx.Game.Player(seat)
	if p == nil {
		return errInvalidTarget(seat, "no such seat")
	}
	p.ResetTurnFlags()

	var judgements []*JudgementResolver
	for _, c := range p.Judgement.Cards() {
		pred, effect := predicateAndEffectFor(c)
		judgements = append(judgements, &JudgementResolver{Owner: seat, Card: c, Predicate: pred, Effect: effect})
	}

	ctx.Stack.Push(&DrawPhaseResolver{Seat: seat, Count: 2})
	ctx.Stack.Push(&JudgePhaseResolver{Seat: seat, Cards: judgements})
	return ctx.Stack.Drain(ctx)
}

// predicateAndEffectFor recovers the judgement predicate and effect
// factory for a card already sitting in a judgement zone. A judgement zone
// stores only the Card, so StartTurn calls this for every card there. The
// concrete delayed
// trick catalog is out of scope (spec §1); this switch covers the two
// delayed tricks the resolver core knows about natively.
func predicateAndEffectFor(c *Card) (judgementPredicate, delayedEffectFactory) {
	switch c.Subtype() {
	case SubtypeLightningBolt:
		return lightningBoltSucceeds, newLightningBoltEffect
	default:
		return amusedDistractionSucceeds, newAmusedDistractionEffect
	}
}
