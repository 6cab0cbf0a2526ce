package resolve

import (
	"fmt"

	"github.com/sanguo/resolver/internal/log"
)

func init() {
	registerResolver("UseLightningBolt", SubtypeLightningBolt, newDelayedTrickResolver(lightningBoltSucceeds, newLightningBoltEffect))
	registerResolver("UseAmusedDistraction", SubtypeAmusedDistraction, newDelayedTrickResolver(amusedDistractionSucceeds, newAmusedDistractionEffect))
}

// judgementPredicate decides whether a flipped card satisfies the trick
// (spec §4.6): Lightning Bolt hits on a Spade 2-9, Amused Distraction's
// analogue (a discard-the-hand delayed trick) hits on a red suit (Heart
// or Diamond).
type judgementPredicate func(Suit, int) bool

func lightningBoltSucceeds(suit Suit, rank int) bool {
	return suit == SuitSpade && rank >= 2 && rank <= 9
}

func amusedDistractionSucceeds(suit Suit, rank int) bool {
	return suit.IsRed()
}

// delayedEffectFactory builds the resolver that runs once a judgement
// succeeds for a given delayed trick.
type delayedEffectFactory func(target Seat, card *Card) Resolver

func newDelayedTrickResolver(pred judgementPredicate, effect delayedEffectFactory) ResolverFactory {
	return func(action *ActionDescriptor, card *Card) Resolver {
		return &DelayedTrickResolver{Source: action.Source, Target: action.TargetSeats[0], Card: card, Predicate: pred, Effect: effect}
	}
}

// DelayedTrickResolver places a delayed trick card into target's judgement
// zone (spec §4.5's deferred move, §4.6's delayed-trick flow). Its own
// judgement and effect do not run now — they run later, when StartTurn
// for target builds a JudgementResolver for each card in target's
// judgement zone and JudgePhaseResolver pushes them. Only the card itself
// goes into the zone; the Predicate and Effect held here are not carried
// along with it (StartTurn recovers them from the card's subtype).
type DelayedTrickResolver struct {
	Source    Seat
	Target    Seat
	Card      *Card
	Predicate judgementPredicate
	Effect    delayedEffectFactory
}

func (r *DelayedTrickResolver) Name() string { return "DelayedTrickPlace:" + r.Card.Def.Name }

func (r *DelayedTrickResolver) Resolve(ctx *ResolutionContext) error {
	source := ctx.Game.Player(r.Source)
	target := ctx.Game.Player(r.Target)
	if source == nil || target == nil {
		return errInvalidTarget(r.Target, "no such seat")
	}
	source.Hand.remove(r.Card.ID)
	target.Judgement.push(r.Card)
	if ctx.Logger != nil {
		ctx.Logger.Emit(log.NewDelayedTrickPlacedEvent(ctx.Game.Turn, int(r.Target), r.Card.Def.Name))
	}
	return nil
}

// JudgementResolver runs one delayed trick's judgement during its owner's
// judgement phase (spec §4.6): offer a nullification chain, then flip a
// card from the draw pile and evaluate it. A success runs the trick's
// effect and discards the card; a failure transfers the card face up,
// unresolved, to the next alive player's judgement zone (spec §8 scenario
// F), where it will be judged again on that player's own judgement phase.
type JudgementResolver struct {
	Owner     Seat
	Card      *Card
	Predicate judgementPredicate
	Effect    delayedEffectFactory
}

func (r *JudgementResolver) Name() string { return "Judgement:" + r.Card.Def.Name }

func (r *JudgementResolver) Resolve(ctx *ResolutionContext) error {
	key := fmt.Sprintf("nullify:%d:%d", r.Card.ID, r.Owner)
	if ResolveNullificationChain(ctx, NullificationTarget{Key: key, Card: r.Card, Source: r.Owner, Beneficiary: r.Owner}) {
		return r.complete(ctx)
	}

	result, err := ctx.Judgement.PerformJudgement(ctx, r.Owner, r.Predicate)
	if err != nil {
		return err
	}
	if ctx.Logger != nil {
		ctx.Logger.Emit(log.NewJudgementFlipEvent(ctx.Game.Turn, int(r.Owner), r.Card.Def.Name, result.Success))
	}
	ctx.Game.DiscardPile.push(result.Card)

	if result.Success {
		ctx.Stack.Push(r.Effect(r.Owner, r.Card))
		return r.complete(ctx)
	}

	next := ctx.Game.NextSeat(r.Owner)
	nextAlive := ctx.Game.AliveSeatOrderFrom(next)
	if len(nextAlive) == 0 {
		return r.complete(ctx)
	}
	dest := ctx.Game.Player(nextAlive[0])
	owner := ctx.Game.Player(r.Owner)
	if owner.Judgement.remove(r.Card.ID) != nil {
		dest.Judgement.push(r.Card)
	}
	return nil
}

func (r *JudgementResolver) complete(ctx *ResolutionContext) error {
	owner := ctx.Game.Player(r.Owner)
	if owner != nil {
		if c := owner.Judgement.remove(r.Card.ID); c != nil {
			ctx.Game.DiscardPile.push(c)
		}
	}
	if ctx.Logger != nil {
		ctx.Logger.Emit(log.NewJudgementCompleteEvent(ctx.Game.Turn, int(r.Owner), r.Card.Def.Name))
	}
	return nil
}

func newLightningBoltEffect(target Seat, card *Card) Resolver {
	return &DamageResolver{Damage: &DamageDescriptor{
		Source:        target,
		Target:        target,
		Amount:        3,
		Type:          DamageThunder,
		Reason:        card.Def.Name,
		CausingCards:  []*Card{card},
		Preventable:   false,
		TriggersDying: true,
	}}
}

func newAmusedDistractionEffect(target Seat, card *Card) Resolver {
	return ResolverFunc{
		FuncName: "AmusedDistractionEffect",
		Fn: func(ctx *ResolutionContext) error {
			p := ctx.Game.Player(target)
			if p == nil {
				return errInvalidTarget(target, "no such seat")
			}
			return ctx.Move.DiscardFromHand(ctx.Game, target, p.Hand.Cards())
		},
	}
}
