package resolve

func init() {
	registerResolver("UsePeach", SubtypePeach, newPeachResolver)
}

func newPeachResolver(action *ActionDescriptor, card *Card) Resolver {
	return &PeachResolver{Source: action.Source}
}

// PeachResolver restores one point of health to its user. Peach played
// directly (rather than offered into a dying rescue window, which
// DyingResolver handles itself via OpenResponseWindow) only has an effect
// if its user is currently missing health (spec §4.6).
type PeachResolver struct {
	Source Seat
}

func (r *PeachResolver) Name() string { return "Peach" }

func (r *PeachResolver) Resolve(ctx *ResolutionContext) error {
	p := ctx.Game.Player(r.Source)
	if p == nil {
		return errInvalidTarget(r.Source, "no such seat")
	}
	if p.HealthDeficit() == 0 {
		return nil
	}
	ctx.Stack.Push(&RecoverResolver{Seat: r.Source, Amount: 1})
	return nil
}
