package resolve

import "github.com/sanguo/resolver/internal/log"

// DyingResolver runs the rescue flow for a player whose health has
// dropped to zero or below (spec §4.10). Every alive seat, starting from
// the dying seat itself and proceeding in turn order, gets a chance each
// round to offer a Peach; rounds repeat until the dying player's health is
// restored above zero or a full round passes with nobody offering one, at
// which point the player dies. The rescue loop enforces no cap of its own
// on how many Peaches a single seat may offer across rounds — spec §9
// leaves that to the rule service, which DyingResolver consults via
// LegalResponseCards same as any other response.
type DyingResolver struct {
	Seat   Seat
	Killer Seat
}

func (r *DyingResolver) Name() string { return "Dying" }

func (r *DyingResolver) Resolve(ctx *ResolutionContext) error {
	p := ctx.Game.Player(r.Seat)
	if p == nil {
		return errInvalidTarget(r.Seat, "no such seat")
	}
	if p.CurrentHealth > 0 {
		return nil
	}

	if ctx.Logger != nil {
		ctx.Logger.Emit(log.NewDyingStartEvent(ctx.Game.Turn, int(r.Seat)))
	}

	for p.CurrentHealth <= 0 {
		rescued := false
		for _, seat := range ctx.Game.AliveSeatOrderFrom(r.Seat) {
			window := ResponseWindow{Responder: seat, Want: SubtypePeach, UnitsRequired: 1, AssistKind: ResponseKindDodge}
			result := OpenResponseWindow(ctx, window)
			if result.Outcome != ResponseSuccess {
				continue
			}
			ctx.Stack.Push(&RecoverResolver{Seat: r.Seat, Amount: 1})
			if err := ctx.Stack.Drain(ctx); err != nil {
				return err
			}
			rescued = true
			break
		}
		if !rescued {
			break
		}
		if p.CurrentHealth > 0 {
			break
		}
	}

	if p.CurrentHealth > 0 {
		return nil
	}

	p.Alive = false
	if ctx.Logger != nil {
		ctx.Logger.Emit(log.NewPlayerDiedEvent(ctx.Game.Turn, int(r.Seat), int(r.Killer)))
	}
	return nil
}
