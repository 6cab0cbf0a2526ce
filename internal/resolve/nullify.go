package resolve

import "github.com/sanguo/resolver/internal/log"

// NullificationTarget identifies what a nullification chain is arguing
// over — the use of one card against one beneficiary (spec §4.8). Key
// must be unique per concurrently-open nullification window so that two
// windows opened for two different Harvest recipients in the same chain
// don't share intermediate-results state.
type NullificationTarget struct {
	Key        string
	Card       *Card
	Source     Seat
	Beneficiary Seat
}

// ResolveNullificationChain runs the full nullification protocol for one
// target (spec §4.8): repeatedly ask, in turn order starting from the
// beneficiary for the first link and from the seat after whoever last
// added a link thereafter, whether anyone wants to add another
// Dismantle-the-Alliance-style nullification; stop once a full lap passes
// with nobody adding a link. The final link count's parity decides the
// outcome — an odd number of nullifications means the original effect is
// nullified, an even number (including zero) means it goes through.
func ResolveNullificationChain(ctx *ResolutionContext, target NullificationTarget) bool {
	count := 0
	from := target.Beneficiary

	for {
		added := false
		for _, seat := range ctx.Game.AliveSeatOrderFrom(from) {
			if offerNullificationLink(ctx, target, seat) {
				count++
				from = ctx.Game.NextSeat(seat)
				added = true
				break
			}
		}
		if !added {
			break
		}
	}

	nullified := count%2 == 1
	if ctx.Logger != nil {
		ctx.Logger.Emit(log.NewNullificationResultEvent(ctx.Game.Turn, target.Key, nullified, count))
	}
	ctx.Results.Set(target.Key+":nullified", nullified)
	ctx.Results.Set(target.Key+":count", count)
	return nullified
}

// offerNullificationLink asks seat, and failing that its assistance chain,
// whether it wants to add a link. It returns true if a link was added.
func offerNullificationLink(ctx *ResolutionContext, target NullificationTarget, seat Seat) bool {
	window := ResponseWindow{
		Responder:     seat,
		Want:          SubtypeNullification,
		UnitsRequired: 1,
		AssistKind:    ResponseKindNullification,
	}
	result := OpenResponseWindow(ctx, window)
	return result.Outcome == ResponseSuccess
}
