package resolve

import "fmt"

func init() {
	registerResolver("UseDuel", SubtypeDuel, newDuelResolver)
}

func newDuelResolver(action *ActionDescriptor, card *Card) Resolver {
	return &DuelResolver{Source: action.Source, Target: action.TargetSeats[0], Card: card}
}

// DuelResolver resolves the Duel trick (spec §4.6): source and target
// alternate being asked for a Slash, starting with target, with each
// successive refusal assigning one point of normal damage to the refuser
// and ending the duel. A nullification chain is offered once, against the
// target, before the exchange begins.
type DuelResolver struct {
	Source Seat
	Target Seat
	Card   *Card
}

func (r *DuelResolver) Name() string { return "Duel" }

func (r *DuelResolver) Resolve(ctx *ResolutionContext) error {
	key := fmt.Sprintf("nullify:%d:%d", r.Card.ID, r.Target)
	if ResolveNullificationChain(ctx, NullificationTarget{Key: key, Card: r.Card, Source: r.Source, Beneficiary: r.Target}) {
		return nil
	}

	asker, respondent := r.Source, r.Target
	for {
		_, supplied := r.askForSlash(ctx, respondent)
		if !supplied {
			ctx.Stack.Push(&DamageResolver{Damage: &DamageDescriptor{
				Source:        asker,
				Target:        respondent,
				Amount:        1,
				Type:          DamageNormal,
				Reason:        r.Card.Def.Name,
				CausingCards:  []*Card{r.Card},
				Preventable:   true,
				TriggersDying: true,
			}})
			return nil
		}
		asker, respondent = respondent, asker
	}
}

func (r *DuelResolver) askForSlash(ctx *ResolutionContext, seat Seat) (*Card, bool) {
	_, card, ok := UseAssistance(ctx, seat, SubtypeSlash, ResponseKindSlash)
	return card, ok
}
