package resolve

import "fmt"

func init() {
	registerResolver("UseDismantle", SubtypeDismantle, newTargetedTrickResolver(targetedTrickDiscard))
	registerResolver("UseSnatch", SubtypeSnatch, newTargetedTrickResolver(targetedTrickTake))
	registerResolver("UseBorrowKnife", SubtypeBorrowKnife, newBorrowKnifeResolver)
}

type targetedTrickMode int

const (
	targetedTrickDiscard targetedTrickMode = iota // Guohe Chaiqiao: send to discard pile
	targetedTrickTake                             // Shunshou Qianyang: take into source's hand
)

func newTargetedTrickResolver(mode targetedTrickMode) ResolverFactory {
	return func(action *ActionDescriptor, card *Card) Resolver {
		return &TargetedTrickResolver{Source: action.Source, Target: action.TargetSeats[0], Card: card, Mode: mode}
	}
}

// TargetedTrickResolver resolves the shared shape of Dismantle and Snatch
// (spec §4.6): after a nullification chain against target, the source
// chooses one card anywhere in target's hand or equipment (the same
// candidates for Dismantle and Snatch; the judgement zone is not offered)
// and either sends it to the discard pile or takes it into their own hand.
type TargetedTrickResolver struct {
	Source Seat
	Target Seat
	Card   *Card
	Mode   targetedTrickMode
}

func (r *TargetedTrickResolver) Name() string { return "TargetedTrick:" + r.Card.Def.Name }

func (r *TargetedTrickResolver) Resolve(ctx *ResolutionContext) error {
	key := fmt.Sprintf("nullify:%d:%d", r.Card.ID, r.Target)
	if ResolveNullificationChain(ctx, NullificationTarget{Key: key, Card: r.Card, Source: r.Source, Beneficiary: r.Target}) {
		return nil
	}

	target := ctx.Game.Player(r.Target)
	if target == nil {
		return errInvalidTarget(r.Target, "no such seat")
	}

	candidates := append(append([]*Card{}, target.Hand.Cards()...), target.Equipment.Cards()...)
	if len(candidates) == 0 {
		return nil
	}
	ids := make([]int, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID
	}

	req := NewChoiceRequest(r.Source, ChoiceSelectCards, "choose a card from "+fmt.Sprint(r.Target))
	req.AllowedCards = ids
	res := ctx.Choose(req)
	chosenID := ids[0]
	if len(res.SelectedCards) > 0 {
		chosenID = res.SelectedCards[0]
	}

	var chosen *Card
	if c := target.Hand.remove(chosenID); c != nil {
		chosen = c
	} else if c := target.Equipment.remove(chosenID); c != nil {
		chosen = c
	}
	if chosen == nil {
		return errCardNotFound(chosenID)
	}

	switch r.Mode {
	case targetedTrickTake:
		source := ctx.Game.Player(r.Source)
		source.Hand.push(chosen)
	default:
		ctx.Game.DiscardPile.push(chosen)
	}
	return nil
}

func newBorrowKnifeResolver(action *ActionDescriptor, card *Card) Resolver {
	return &BorrowKnifeResolver{Source: action.Source, Target: action.TargetSeats[0], ForcedVictim: action.TargetSeats[1], Card: card}
}

// BorrowKnifeResolver resolves Jiedaoshaeren (spec §4.6, §4.9): after a
// nullification chain against target, target is forced to use a Slash
// against ForcedVictim via the same use-assistance mechanism Borrow
// Knife's forced-use flow is grounded on (slash.go's ForcedSlashResolver).
// If target cannot or will not supply a Slash and their weapon is still
// equipped, the weapon is transferred to Source instead (spec §4.6: refusal
// or inability moves the weapon itself, removing its skill from target).
type BorrowKnifeResolver struct {
	Source       Seat
	Target       Seat
	ForcedVictim Seat
	Card         *Card
}

func (r *BorrowKnifeResolver) Name() string { return "BorrowKnife" }

func (r *BorrowKnifeResolver) Resolve(ctx *ResolutionContext) error {
	nullifyKey := fmt.Sprintf("nullify:%d:%d", r.Card.ID, r.Target)
	if ResolveNullificationChain(ctx, NullificationTarget{Key: nullifyKey, Card: r.Card, Source: r.Source, Beneficiary: r.Target}) {
		return nil
	}

	resultKey := fmt.Sprintf("borrowknife:%d:%d:used", r.Card.ID, r.Target)
	target := r.Target
	// Pushed first so it runs after ForcedSlashResolver (LIFO): transfer the
	// target's weapon to Source only if the forced Slash was never supplied.
	ctx.Stack.Push(ResolverFunc{
		FuncName: "BorrowKnife:weaponFallback",
		Fn: func(ctx *ResolutionContext) error {
			if ctx.Results.GetBool(resultKey) {
				return nil
			}
			p := ctx.Game.Player(target)
			if p == nil {
				return nil
			}
			if weapon := p.EquippedWeapon(); weapon != nil {
				return TransferWeapon(ctx, weapon, target, r.Source)
			}
			return nil
		},
	})
	ctx.Stack.Push(&ForcedSlashResolver{Beneficiary: r.Target, ForcedTarget: r.ForcedVictim, ResultKey: resultKey})
	return nil
}
