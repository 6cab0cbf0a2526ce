package resolve

import "fmt"

func init() {
	registerResolver("UseHarvest", SubtypeHarvest, newHarvestResolver)
}

func newHarvestResolver(action *ActionDescriptor, card *Card) Resolver {
	return &HarvestResolver{Source: action.Source, Card: card}
}

// HarvestResolver resolves a Harvest-style pool draft (spec §4.6): one
// card per currently-alive player is revealed face up into the shared
// pool, then each alive player in turn order — starting with Source —
// picks one remaining card for their hand. A nullification chain may be
// raised against any other player's pick before they choose, but never
// against Source's own (an asymmetry spec §9's open questions leaves
// intact: Source drafted first and unopposed). A target whose pick is
// nullified gets nothing; their reserved card is discarded instead.
type HarvestResolver struct {
	Source Seat
	Card   *Card
}

func (r *HarvestResolver) Name() string { return "Harvest" }

func (r *HarvestResolver) Resolve(ctx *ResolutionContext) error {
	order := ctx.Game.AliveSeatOrderFrom(r.Source)

	for range order {
		c := ctx.Game.DrawPile.pop()
		if c == nil {
			break
		}
		ctx.Game.Pool.push(c)
	}

	for _, seat := range order {
		if seat != r.Source {
			key := fmt.Sprintf("nullify:%d:%d", r.Card.ID, seat)
			if ResolveNullificationChain(ctx, NullificationTarget{Key: key, Card: r.Card, Source: r.Source, Beneficiary: seat}) {
				if discard := ctx.Game.Pool.pop(); discard != nil {
					ctx.Game.DiscardPile.push(discard)
				}
				continue
			}
		}
		if err := r.offerPick(ctx, seat); err != nil {
			return err
		}
	}

	for {
		leftover := ctx.Game.Pool.pop()
		if leftover == nil {
			break
		}
		ctx.Game.DiscardPile.push(leftover)
	}
	return nil
}

func (r *HarvestResolver) offerPick(ctx *ResolutionContext, seat Seat) error {
	pool := ctx.Game.Pool.Cards()
	if len(pool) == 0 {
		return nil
	}
	ids := make([]int, len(pool))
	for i, c := range pool {
		ids[i] = c.ID
	}
	req := NewChoiceRequest(seat, ChoiceSelectCards, "pick a card from the "+r.Card.Def.Name+" pool")
	req.AllowedCards = ids
	res := ctx.Choose(req)
	chosenID := ids[0]
	if len(res.SelectedCards) > 0 {
		chosenID = res.SelectedCards[0]
	}
	c := ctx.Game.Pool.remove(chosenID)
	if c == nil {
		return errCardNotFound(chosenID)
	}
	p := ctx.Game.Player(seat)
	p.Hand.push(c)
	return nil
}
