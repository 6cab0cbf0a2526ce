package resolve

// UseAssistance implements the Jijiang-style generic mechanism: before a
// seat is required to use a card it may not have (the Slash each Duel
// round demands, for example), give every other
// seat willing to volunteer a chance to supply the card in its place
// (spec §4.9). It mirrors OpenResponseWindow's assistant-first polling but
// is keyed on ResponseKindSlash/ResponseKindDodge rather than a literal
// response window, since a use-assistance offer is not itself a response
// to anything — it substitutes for the seat's own forced action.
//
// UseAssistance returns the seat that actually supplies the card (which
// may be the original beneficiary) and the card itself, or ok=false if
// nobody — beneficiary included — can or will supply one.
func UseAssistance(ctx *ResolutionContext, beneficiary Seat, want Subtype, kind ResponseKind) (Seat, *Card, bool) {
	for _, assistant := range ctx.Skills.ResponseAssistants(ctx, beneficiary, kind) {
		if card, ok := askForResponse(ctx, assistant, want); ok {
			return assistant, card, true
		}
	}
	if card, ok := askForResponse(ctx, beneficiary, want); ok {
		return beneficiary, card, true
	}
	return beneficiary, nil, false
}
