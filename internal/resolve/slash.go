package resolve

import "github.com/sanguo/resolver/internal/log"

func init() {
	registerResolver("UseSlash", SubtypeSlash, newSlashResolver)
}

func newSlashResolver(action *ActionDescriptor, card *Card) Resolver {
	return &SlashResolver{Source: action.Source, Targets: action.TargetSeats, Card: card}
}

// SlashResolver resolves a basic Slash against one or more declared
// targets (spec §4.6). For each target it opens a dodge response window —
// unless the source's skills forbid the target from dodging — requiring
// as many Dodge units as the skill manager demands (normally one), then
// applies one point of normal damage if the window did not succeed.
type SlashResolver struct {
	Source  Seat
	Targets []Seat
	Card    *Card
}

func (r *SlashResolver) Name() string { return "Slash" }

func (r *SlashResolver) Resolve(ctx *ResolutionContext) error {
	for _, target := range r.Targets {
		if err := r.resolveOne(ctx, target); err != nil {
			return err
		}
	}
	return nil
}

func (r *SlashResolver) resolveOne(ctx *ResolutionContext, target Seat) error {
	p := ctx.Game.Player(target)
	if p == nil {
		return errInvalidTarget(target, "no such seat")
	}
	if !p.Alive {
		return errTargetNotAlive(target)
	}

	if !ctx.Skills.ForbidsDodge(ctx, r.Source, target) {
		need := ctx.Skills.RequiredDodgeCount(ctx, r.Source, target)
		if need <= 0 {
			need = 1
		}
		window := ResponseWindow{
			Responder:        target,
			Want:             SubtypeDodge,
			UnitsRequired:    need,
			AssistKind:       ResponseKindDodge,
			Nullifiable:      true,
			NullifyKeyPrefix: "SlashDodgeNullification",
		}
		result := OpenResponseWindow(ctx, window)
		if result.Outcome == ResponseSuccess {
			ctx.Publish(&Event{Kind: EventAfterSlashDodged, Source: r.Source, Target: target, Card: r.Card})
			ctx.Publish(&Event{Kind: EventSlashNegatedByDodge, Source: r.Source, Target: target, Card: r.Card})
			return nil
		}
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
	return nil
}

// ForcedSlashResolver drives the Borrow-Knife style forced-use flow (spec
// §4.9): beneficiary is required to use a Slash against forcedTarget, with
// any willing use-assistant allowed to supply the card instead. If nobody
// can supply one, the request resolves with no Slash used and that outcome
// is recorded under ResultKey, where Borrow Knife's weapon fallback reads it.
type ForcedSlashResolver struct {
	Beneficiary  Seat
	ForcedTarget Seat
	// ResultKey, if non-empty, records the use outcome as a bool into the
	// chain's blackboard so a caller pushed below this resolver (e.g.
	// Borrow Knife's weapon-transfer fallback) can react to it.
	ResultKey string
}

func (r *ForcedSlashResolver) Name() string { return "ForcedSlash" }

func (r *ForcedSlashResolver) Resolve(ctx *ResolutionContext) error {
	if ctx.Logger != nil {
		ctx.Logger.Emit(log.NewForcedSlashUseRequestedEvent(ctx.Game.Turn, int(r.Beneficiary), int(r.ForcedTarget)))
	}

	seat, cardID, ok := findForcedSlashSupplier(ctx, r.Beneficiary)
	if ctx.Logger != nil {
		ctx.Logger.Emit(log.NewForcedSlashUseResolvedEvent(ctx.Game.Turn, int(r.Beneficiary), ok))
	}
	if r.ResultKey != "" {
		ctx.Results.Set(r.ResultKey, ok)
	}
	if !ok {
		return nil
	}

	// Route through the normal use-card pipeline (spec §4.6) so the forced
	// Slash fires CardUsedEvent, re-validates, and converts like any other
	// Slash use — it just never got there through the owner's own turn.
	return UseCard(ctx, &ActionDescriptor{
		ActionID:       "UseSlash",
		Source:         seat,
		CardCandidates: []int{cardID},
		TargetSeats:    []Seat{r.ForcedTarget},
	})
}

// findForcedSlashSupplier asks the assistance chain, then beneficiary
// itself, which seat will supply the forced Slash — without discarding the
// card, since the chosen card is instead fed into UseCard's own move step.
func findForcedSlashSupplier(ctx *ResolutionContext, beneficiary Seat) (Seat, int, bool) {
	for _, assistant := range ctx.Skills.ResponseAssistants(ctx, beneficiary, ResponseKindSlash) {
		if id, ok := offerForcedSlash(ctx, assistant); ok {
			return assistant, id, true
		}
	}
	if id, ok := offerForcedSlash(ctx, beneficiary); ok {
		return beneficiary, id, true
	}
	return beneficiary, 0, false
}

// offerForcedSlash asks seat whether it will supply the forced Slash,
// constrained to its own legal Slash cards. It leaves the card in seat's
// hand on a yes; the caller's UseCard call moves it.
func offerForcedSlash(ctx *ResolutionContext, seat Seat) (int, bool) {
	legal := ctx.Rules.LegalResponseCards(ctx, seat, SubtypeSlash)
	if len(legal) == 0 {
		return 0, false
	}
	req := NewChoiceRequest(seat, ChoiceSelectCards, "use a forced Slash")
	req.AllowedCards = legal
	req.CanPass = true
	res := ctx.Choose(req)
	if res.IsPass() || len(res.SelectedCards) == 0 {
		return 0, false
	}
	return res.SelectedCards[0], true
}
