package resolve

import (
	"fmt"

	"github.com/sanguo/resolver/internal/log"
)

// ResponseOutcome is the terminal state of a response window (spec §4.7).
type ResponseOutcome int

const (
	// NoResponse means the window closed with fewer than the required
	// units collected (possibly none) from the responder and the
	// assistance chain together.
	NoResponse ResponseOutcome = iota
	// ResponseSuccess means the required number of response units was met.
	ResponseSuccess
	// ResponseFailed is reserved for a responder committing and then
	// failing to meet the requirement on a later unit; the engine never
	// produces it today (open question, see design notes) and callers
	// should treat it identically to NoResponse.
	ResponseFailed
)

// ResponseWindow describes one poll for a response card from a single
// seat, plus any assistants the skill manager names for it (spec §4.7). UnitsRequired lets a single
// window demand more than one copy (Wushuang-style double-dodge).
type ResponseWindow struct {
	Responder     Seat
	Want          Subtype
	UnitsRequired int
	// AssistKind lets the assistance chain (spec §4.9) find volunteers
	// willing to answer on Responder's behalf before falling back to
	// asking Responder directly.
	AssistKind ResponseKind
	// Nullifiable marks that every card this window collects is itself a
	// nullifiable effect (spec §8 scenario B: a Dodge played in response
	// to a Slash can be countered by a Nullification before it negates
	// anything). A nullified unit is discarded like any other provided
	// card but does not count toward UnitsRequired, so the window keeps
	// polling as if nothing had been offered.
	Nullifiable bool
	// NullifyKeyPrefix names the blackboard key each nullification chain
	// spawned by this window is recorded under, suffixed with "_N" for
	// the Nth unit offered ("SlashDodgeNullification_1"). Required when
	// Nullifiable is set.
	NullifyKeyPrefix string
}

// ResponseResult is what OpenResponseWindow returns.
type ResponseResult struct {
	Outcome      ResponseOutcome
	UnitsUsed    []*Card
	AnsweredBy   Seat // may differ from window.Responder when an assistant answered
	UnitsCollected int
}

// OpenResponseWindow polls for up to window.UnitsRequired response cards.
// It first gives the assistance chain (spec §4.9) a chance to supply a
// volunteer before asking the responder directly; each unit is gathered
// independently (a volunteer can answer one unit and the responder the
// next), repeating until UnitsRequired is met or somebody passes.
func OpenResponseWindow(ctx *ResolutionContext, window ResponseWindow) ResponseResult {
	need := window.UnitsRequired
	if need <= 0 {
		need = 1
	}
	var used []*Card
	answeredBy := window.Responder
	offered := 0

	for len(used) < need {
		seat, card, ok := pollOneUnit(ctx, window)
		if !ok {
			break
		}
		offered++
		if window.Nullifiable {
			key := fmt.Sprintf("%s_%d", window.NullifyKeyPrefix, offered)
			target := NullificationTarget{Key: key, Source: seat, Beneficiary: window.Responder, Card: card}
			if ResolveNullificationChain(ctx, target) {
				// Nullified: already discarded by askForResponse, but it
				// never counts toward the window's requirement.
				continue
			}
		}
		answeredBy = seat
		used = append(used, card)
	}

	result := ResponseResult{UnitsUsed: used, UnitsCollected: len(used), AnsweredBy: answeredBy}
	if len(used) >= need {
		result.Outcome = ResponseSuccess
	} else {
		result.Outcome = NoResponse
	}

	logWindowResult(ctx, window, result)
	return result
}

// pollOneUnit asks the assistance chain for a volunteer, then the
// responder, returning the seat that answered and the card it answered
// with. ok is false when nobody (assistant or responder) could answer.
func pollOneUnit(ctx *ResolutionContext, window ResponseWindow) (Seat, *Card, bool) {
	for _, assistant := range ctx.Skills.ResponseAssistants(ctx, window.Responder, window.AssistKind) {
		if card, ok := askForResponse(ctx, assistant, window.Want); ok {
			return assistant, card, true
		}
	}
	card, ok := askForResponse(ctx, window.Responder, window.Want)
	return window.Responder, card, ok
}

func firstOrNil(f func() (*Card, bool)) *Card {
	c, ok := f()
	if !ok {
		return nil
	}
	return c
}

// askForResponse asks seat whether it wants to provide a response of the
// wanted subtype, constrained to its own legal response cards.
func askForResponse(ctx *ResolutionContext, seat Seat, want Subtype) (*Card, bool) {
	legal := ctx.Rules.LegalResponseCards(ctx, seat, want)
	if len(legal) == 0 {
		return nil, false
	}
	req := NewChoiceRequest(seat, ChoiceSelectCards, "respond with "+want.String())
	req.AllowedCards = legal
	req.CanPass = true
	res := ctx.Choose(req)
	if res.IsPass() || len(res.SelectedCards) == 0 {
		logPass(ctx, seat)
		return nil, false
	}
	cardID := res.SelectedCards[0]
	card := findCardByID(ctx.Game, cardID)
	if card == nil {
		return nil, false
	}
	owner := ctx.Game.Player(seat)
	if owner != nil && owner.Hand.remove(card.ID) != nil {
		ctx.Game.DiscardPile.push(card)
	}
	logProvided(ctx, seat, card)
	return card, true
}

// findCardByID searches every player's hand for a card id — response cards
// always come from hand (or a conversion skill producing a virtual card
// already placed there by the caller before the window opens).
func findCardByID(g *Game, id int) *Card {
	for _, p := range g.Players {
		if c := p.Hand.Find(id); c != nil {
			return c
		}
	}
	return nil
}

func logWindowResult(ctx *ResolutionContext, window ResponseWindow, result ResponseResult) {
	if ctx.Logger == nil {
		return
	}
	need := window.UnitsRequired
	if need <= 0 {
		need = 1
	}
	ctx.Logger.Emit(log.NewResponseWindowResultEvent(ctx.Game.Turn, window.Want.String(), result.UnitsCollected, need))
}

func logPass(ctx *ResolutionContext, seat Seat) {
	if ctx.Logger == nil {
		return
	}
	ctx.Logger.Emit(log.NewResponsePassedEvent(ctx.Game.Turn, int(seat)))
}

func logProvided(ctx *ResolutionContext, seat Seat, card *Card) {
	if ctx.Logger == nil {
		return
	}
	ctx.Logger.Emit(log.NewResponseProvidedEvent(ctx.Game.Turn, int(seat), card.String()))
}
