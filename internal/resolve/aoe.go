package resolve

import "fmt"

func init() {
	registerResolver("UseBarbarianInvasion", SubtypeBarbarianInvasion, newAOEResolver(SubtypeSlash))
	registerResolver("UseArrowsVolley", SubtypeArrowsVolley, newAOEResolver(SubtypeDodge))
}

func newAOEResolver(want Subtype) ResolverFactory {
	return func(action *ActionDescriptor, card *Card) Resolver {
		return &AOEResolver{Source: action.Source, Card: card, Want: want}
	}
}

// AOEResolver resolves an area trick against every other alive player
// (spec §4.6): Barbarian Invasion demands a Slash from each, Arrows Volley
// demands a Dodge. A single nullification chain is offered for the card
// as a whole before the sweep begins; it is not re-offered per target,
// matching how a single Wuxiekeji answers the whole card rather than each
// victim individually.
type AOEResolver struct {
	Source Seat
	Card   *Card
	Want   Subtype
}

func (r *AOEResolver) Name() string { return "AOE:" + r.Card.Def.Name }

func (r *AOEResolver) Resolve(ctx *ResolutionContext) error {
	key := fmt.Sprintf("nullify:%d", r.Card.ID)
	if ResolveNullificationChain(ctx, NullificationTarget{Key: key, Card: r.Card, Source: r.Source, Beneficiary: r.Source}) {
		return nil
	}

	for _, target := range ctx.Game.AliveSeatOrderFrom(ctx.Game.NextSeat(r.Source)) {
		if target == r.Source {
			continue
		}
		window := ResponseWindow{Responder: target, Want: r.Want, UnitsRequired: 1, AssistKind: ResponseKindDodge}
		result := OpenResponseWindow(ctx, window)
		if result.Outcome == ResponseSuccess {
			continue
		}
		ctx.Stack.Push(&DamageResolver{Damage: &DamageDescriptor{
			Source:        r.Source,
			Target:        target,
			Amount:        1,
			Type:          DamageNormal,
			Reason:        r.Card.Def.Name,
			CausingCards:  []*Card{r.Card},
			Preventable:   true,
			TriggersDying: true,
		}})
		// Drain now so this target's damage (and any dying/rescue it
		// triggers) fully resolves before the sweep moves to the next
		// target, preserving turn order instead of LIFO-reversing it.
		if err := ctx.Stack.Drain(ctx); err != nil {
			return err
		}
	}
	return nil
}
