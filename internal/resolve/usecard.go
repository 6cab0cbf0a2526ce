package resolve

import "github.com/sanguo/resolver/internal/log"

// ResolverFactory builds the specific resolver for one action id once its
// card and targets are settled. Each card resolver file registers its own
// factory into dispatchTable via registerResolver at package init, the way
// the teacher's registry.go builds its card table.
type ResolverFactory func(action *ActionDescriptor, card *Card) Resolver

// actionSpec is the static shape of one usable action id: what subtype the
// conversion step must produce, and which resolver to dispatch to.
type actionSpec struct {
	want    Subtype
	factory ResolverFactory
}

var dispatchTable = map[string]actionSpec{}

// registerResolver wires one action id's expected subtype and resolver
// factory into the dispatch table. Resolver files call this from init().
func registerResolver(actionID string, want Subtype, factory ResolverFactory) {
	dispatchTable[actionID] = actionSpec{want: want, factory: factory}
}

// UseCard runs the full nine-step use-card pipeline (spec §4.2):
//  1. validate the action against current rules
//  2. resolve the wanted subtype for this action id
//  3. convert selected cards into the wanted subtype (spec §4.4)
//  4. re-validate after conversion; the rule service is handed the same
//     action as in step 1 (the original card ids), not the converted card
//  5. declare targets and let skills override them
//  6. move the card per its move strategy (spec §4.5)
//  7. dispatch to the specific resolver
//  8. drain the resolution stack the dispatched resolver grows
//  9. cleanup: log the use (the chain's blackboard is left as it is, so
//     callers can read its results afterwards)
func UseCard(ctx *ResolutionContext, action *ActionDescriptor) error {
	// 1. validate
	if ok, key, details := ctx.Rules.ValidateActionBeforeResolve(ctx, action); !ok {
		return errRuleValidationFailed(key, details)
	}

	spec, known := dispatchTable[action.ActionID]
	if !known {
		return errInvalidState("unknown action id " + action.ActionID)
	}

	// 2+3. conversion
	originals := cardsByID(ctx.Game, action.Source, action.CardCandidates)
	if len(originals) == 0 {
		return errCardNotFound(0)
	}
	converted, err := ConvertForUse(ctx, action.Source, spec.want, originals)
	if err != nil {
		return err
	}

	// 4. re-validate
	if ok, key, details := ctx.Rules.ValidateActionBeforeResolve(ctx, action); !ok {
		return errRuleValidationFailed(key, details)
	}

	// 5. declare targets, honoring a skill override for single-target cards
	targets := action.TargetSeats
	if len(targets) == 1 {
		if newTarget, ok := ctx.Skills.SlashTargetOverride(ctx, action.Source, targets[0]); ok {
			targets = []Seat{newTarget}
		}
	}
	declared := action.clone()
	declared.TargetSeats = targets
	ctx.Publish(&Event{Kind: EventAfterCardTargetsDeclared, Source: action.Source, Card: converted.Card, Data: map[string]any{"targets": targets}})

	// 6. move strategy: immediate moves happen here; deferred moves are the
	// specific resolver's own responsibility (it knows the destination zone).
	if MoveStrategyFor(converted.Card) == MoveImmediate && !converted.Card.IsVirtual() {
		mover := ctx.Move
		owner := ctx.Game.Player(action.Source)
		_ = mover.MoveMany(CardMoveDescriptor{
			Game:   ctx.Game,
			Cards:  []*Card{converted.Card},
			From:   owner.Hand,
			To:     ctx.Game.DiscardPile,
			Reason: MoveDiscard,
		})
	}
	if converted.Converted {
		owner := ctx.Game.Player(action.Source)
		_ = mover(ctx).DiscardFromHand(ctx.Game, action.Source, materialsStillInHand(owner, converted.Materials))
	}

	ctx.Publish(&Event{Kind: EventCardUsed, Source: action.Source, Card: converted.Card, Data: map[string]any{"targets": targets}})

	// 7. dispatch
	resolver := spec.factory(declared, converted.Card)
	ctx.Stack.Push(resolver)

	// 8. drain
	drainErr := ctx.Stack.Drain(ctx)

	// 9. cleanup
	if ctx.Logger != nil {
		ctx.Logger.Emit(log.NewCardUsedEvent(ctx.Game.Turn, ctx.Game.Phase.String(), int(action.Source), converted.Card.Def.Name, seatInts(targets)))
	}

	return drainErr
}

func mover(ctx *ResolutionContext) CardMoveService { return ctx.Move }

// materialsStillInHand filters materials down to those the owner still
// holds — a conversion skill may already have moved some of its own
// materials (e.g. discarding them as its own cost) before Convert returns.
func materialsStillInHand(owner *Player, materials []*Card) []*Card {
	var still []*Card
	for _, m := range materials {
		if owner.Hand.Contains(m.ID) {
			still = append(still, m)
		}
	}
	return still
}

func cardsByID(g *Game, seat Seat, ids []int) []*Card {
	p := g.Player(seat)
	if p == nil {
		return nil
	}
	var out []*Card
	for _, id := range ids {
		if c := p.Hand.Find(id); c != nil {
			out = append(out, c)
			continue
		}
		if c := p.Equipment.Find(id); c != nil {
			out = append(out, c)
		}
	}
	return out
}

func seatInts(seats []Seat) []int {
	out := make([]int, len(seats))
	for i, s := range seats {
		out[i] = int(s)
	}
	return out
}

func (a *ActionDescriptor) clone() *ActionDescriptor {
	c := *a
	c.TargetSeats = append([]Seat(nil), a.TargetSeats...)
	c.CardCandidates = append([]int(nil), a.CardCandidates...)
	return &c
}
