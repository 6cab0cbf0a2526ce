package resolve

// ConversionResult is what the conversion executor hands back to the
// use-card pipeline: either the original cards unchanged, or a synthesized
// virtual card plus the materials consumed to make it (spec §4.4).
type ConversionResult struct {
	Card      *Card
	Materials []*Card
	Converted bool
}

// ConvertForUse runs the card-conversion step of the use-card pipeline.
// want is the subtype the context requires (e.g. responding to a slash
// needs SubtypeDodge); originals is what the player actually selected.
//
// Strategy, tried in order (spec §4.4):
//  1. Pre-resolved: originals already is exactly one card of the wanted
//     subtype — nothing to convert.
//  2. Multi-card: a skill consuming exactly len(originals) cards can
//     produce the wanted subtype from them.
//  3. Single-card: a skill can reinterpret a single selected card as the
//     wanted subtype, trying each candidate skill in catalog order.
//
// The first strategy that succeeds wins; ConvertForUse never asks the
// skill manager for more than one candidate conversion per strategy tier,
// matching the teacher's effect-resolution preference for the first
// matching triggerable over an exhaustive search.
func ConvertForUse(ctx *ResolutionContext, seat Seat, want Subtype, originals []*Card) (ConversionResult, error) {
	if len(originals) == 1 && originals[0].Subtype() == want {
		return ConversionResult{Card: originals[0], Materials: originals, Converted: false}, nil
	}

	if len(originals) > 0 {
		for _, skill := range ctx.Skills.MultiCardConversionSkills(seat, want, len(originals)) {
			if skill.RequiredCardCount() != len(originals) {
				continue
			}
			converted, err := skill.Convert(ctx, seat, originals)
			if err != nil {
				return ConversionResult{}, err
			}
			return ConversionResult{Card: converted, Materials: originals, Converted: true}, nil
		}
	}

	if len(originals) == 1 {
		for _, skill := range ctx.Skills.SingleCardConversionSkills(seat, want) {
			if skill.RequiredCardCount() != 1 {
				continue
			}
			converted, err := skill.Convert(ctx, seat, originals)
			if err != nil {
				return ConversionResult{}, err
			}
			return ConversionResult{Card: converted, Materials: originals, Converted: true}, nil
		}
	}

	if len(originals) == 1 {
		return ConversionResult{Card: originals[0], Materials: originals, Converted: false}, nil
	}
	return ConversionResult{}, errRuleValidationFailed("no conversion strategy matched", map[string]any{
		"want":      want.String(),
		"cardCount": len(originals),
	})
}

// NewVirtualCard synthesizes a card with a negative, chain-unique id so it
// never collides with a real card instance (spec §4.4's "virtual cards
// have negative ids"). seq should be a small per-chain counter supplied by
// the caller (the skill itself, typically starting at 1).
func NewVirtualCard(def *CardDef, suit Suit, rank int, seq int) *Card {
	return &Card{ID: -seq, Def: def, Suit: suit, Rank: rank}
}
