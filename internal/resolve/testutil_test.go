package resolve

import "testing"

// ScriptedChooser answers ChoiceRequests from a predefined script, seat by
// seat, discriminator by discriminator — the same shape as the teacher's
// ScriptedController: a fluent builder of canned answers consumed in
// order, falling back to a pass when the script runs out.
type ScriptedChooser struct {
	t       *testing.T
	cards   map[Seat][][]int
	confirm map[Seat][]bool
}

// NewScriptedChooser builds an empty script.
func NewScriptedChooser(t *testing.T) *ScriptedChooser {
	return &ScriptedChooser{
		t:       t,
		cards:   make(map[Seat][][]int),
		confirm: make(map[Seat][]bool),
	}
}

// WillSelectCards queues seat's next ChooseSelectCards answer.
func (s *ScriptedChooser) WillSelectCards(seat Seat, ids ...int) *ScriptedChooser {
	s.cards[seat] = append(s.cards[seat], ids)
	return s
}

// WillPass queues seat's next answer as an empty-selection pass.
func (s *ScriptedChooser) WillPass(seat Seat) *ScriptedChooser {
	s.cards[seat] = append(s.cards[seat], nil)
	return s
}

// WillConfirm queues seat's next ChooseConfirm answer.
func (s *ScriptedChooser) WillConfirm(seat Seat, answer bool) *ScriptedChooser {
	s.confirm[seat] = append(s.confirm[seat], answer)
	return s
}

// Func adapts the script into a PlayerChoiceFunc.
func (s *ScriptedChooser) Func() PlayerChoiceFunc {
	return func(req ChoiceRequest) ChoiceResult {
		switch req.Discriminator {
		case ChoiceConfirm:
			queue := s.confirm[req.Seat]
			if len(queue) == 0 {
				return ChoiceResult{RequestID: req.ID, Seat: req.Seat, Passed: true}
			}
			answer := queue[0]
			s.confirm[req.Seat] = queue[1:]
			return ChoiceResult{RequestID: req.ID, Seat: req.Seat, Confirm: answer}
		default:
			queue := s.cards[req.Seat]
			if len(queue) == 0 {
				return ChoiceResult{RequestID: req.ID, Seat: req.Seat, Passed: true}
			}
			ids := queue[0]
			s.cards[req.Seat] = queue[1:]
			if len(ids) == 0 {
				return ChoiceResult{RequestID: req.ID, Seat: req.Seat, Passed: true}
			}
			return ChoiceResult{RequestID: req.ID, Seat: req.Seat, SelectedCards: ids}
		}
	}
}

// newTestContext builds a two-or-more seat game with a memory logger, the
// strict rule service, default move/judgement services, and the given
// script as its choice function.
func newTestContext(t *testing.T, seats int, chooser *ScriptedChooser) (*ResolutionContext, *Game) {
	t.Helper()
	g := NewGame(seats, 4)
	ctx := NewResolutionContext(g, NewStrictRuleService(), &DefaultCardMoveService{}, DefaultJudgementService{}, chooser.Func())
	return ctx, g
}

func mustDef(subtype Subtype, name string) *CardDef {
	return &CardDef{DefID: name, Name: name, Category: categoryFor(subtype), Subtype: subtype}
}

func categoryFor(s Subtype) Category {
	switch s {
	case SubtypeWeapon, SubtypeArmor, SubtypeOffenseHorse, SubtypeDefenseHorse:
		return CategoryEquip
	case SubtypeSlash, SubtypePeach, SubtypeDodge:
		return CategoryBasic
	default:
		return CategoryTrick
	}
}

var (
	defSlash         = mustDef(SubtypeSlash, "Slash")
	defPeach         = mustDef(SubtypePeach, "Peach")
	defDodge         = mustDef(SubtypeDodge, "Dodge")
	defNullification = mustDef(SubtypeNullification, "Nullification")
	defDuel          = mustDef(SubtypeDuel, "Duel")
	defHarvest       = mustDef(SubtypeHarvest, "Harvest")
	defLightning     = mustDef(SubtypeLightningBolt, "Lightning Bolt")
)

func dealCard(g *Game, seat Seat, def *CardDef, suit Suit, rank int) *Card {
	c := &Card{ID: g.NextCardID(), Def: def, Suit: suit, Rank: rank}
	g.Player(seat).Hand.Seed(c)
	return c
}
