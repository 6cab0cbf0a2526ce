package resolve

// This file specifies the external collaborators the resolver core calls
// out to (spec §6): the rule service, the card-move service, the
// judgement service, and the skill manager. Concrete rule/skill catalogs
// are out of scope (spec §1); the interfaces here are the contract, and
// the Default* implementations are thin, engine-local stand-ins used by
// tests and the CLI scenario runner — grounded in the teacher's direct
// zone-mutation style (state.go's RemoveFromHand/SendToScrapheap) rather
// than the teacher's own service-free shortcuts, since the spec calls
// these out as first-class collaborators.

// RuleService validates actions and enumerates legal targets.
type RuleService interface {
	// ValidateActionBeforeResolve re-checks legality just before a specific
	// resolver runs (spec §4.2 step 3, §4.6 Borrow-Knife re-validation).
	ValidateActionBeforeResolve(ctx *ResolutionContext, action *ActionDescriptor) (allowed bool, messageKey string, details map[string]any)

	// LegalTargetsForUse enumerates legal targets for a pending card usage.
	LegalTargetsForUse(ctx *ResolutionContext, action *ActionDescriptor) (hasAny bool, seats []Seat)

	// LegalResponseCards returns the card ids in seat's hand (and any
	// conversion-skill-generable virtual cards) that legally answer a
	// response window of the given subtype.
	LegalResponseCards(ctx *ResolutionContext, seat Seat, want Subtype) []int
}

// MoveReason classifies why a card-move descriptor was issued.
type MoveReason int

const (
	MoveDiscard MoveReason = iota
	MoveEquip
	MoveDraw
	MoveJudgement
	MovePlay
)

// CardMoveDescriptor carries one move's parameters (spec §6).
type CardMoveDescriptor struct {
	Game    *Game
	Cards   []*Card
	From    *Zone
	To      *Zone
	Reason  MoveReason
	ToFront bool // ordering hint: true = insert at the front (index 0), false = append at the end (the top)
}

// CardMoveService mutates zone contents; every zone mutation in the
// engine goes through it so moves stay totally ordered (spec §3, §6).
type CardMoveService interface {
	DrawCards(g *Game, seat Seat, n int) []*Card
	DiscardFromHand(g *Game, seat Seat, cards []*Card) error
	MoveSingle(d CardMoveDescriptor) error
	MoveMany(d CardMoveDescriptor) error
}

// JudgementResult is the outcome of flipping a judgement card.
type JudgementResult struct {
	Success bool
	Card    *Card
	Suit    Suit
	Rank    int
}

// JudgementService performs card flips for delayed tricks.
type JudgementService interface {
	PerformJudgement(ctx *ResolutionContext, seat Seat, succeeds func(Suit, int) bool) (JudgementResult, error)
	CompleteJudgement(g *Game, seat Seat, card *Card, move CardMoveService) error
}

// ConversionSkill synthesises a virtual card from one or more material
// cards (spec §4.4). The concrete skill catalog is out of scope; this is
// the shape the conversion executor invokes.
type ConversionSkill interface {
	Name() string
	RequiredCardCount() int
	TargetSubtype() Subtype
	Convert(ctx *ResolutionContext, seat Seat, originals []*Card) (*Card, error)
}

// ResponseKind distinguishes what a response-assistance chain is helping with.
type ResponseKind int

const (
	ResponseKindDodge ResponseKind = iota
	ResponseKindSlash
	ResponseKindNullification
)

// SkillManager is the scoped interface the conversion executor, slash
// resolver, and response-assistance chains consult for active skills
// (spec §4.4, §4.6, §4.9). The concrete skill catalog lives outside this
// engine (spec §1); NopSkillManager is the zero-skill default.
type SkillManager interface {
	SingleCardConversionSkills(seat Seat, expected Subtype) []ConversionSkill
	MultiCardConversionSkills(seat Seat, expected Subtype, cardCount int) []ConversionSkill

	// RequiredDodgeCount returns how many dodge units a slash response
	// window requires from target (normally 1; a Wushuang-style skill on
	// the source can raise it).
	RequiredDodgeCount(ctx *ResolutionContext, source, target Seat) int

	// ForbidsDodge reports whether a source-player skill prevents target
	// from using Dodge at all.
	ForbidsDodge(ctx *ResolutionContext, source, target Seat) bool

	// SlashTargetOverride lets a skill re-route a slash to a different
	// target after targets are declared. ok is false when no override applies.
	SlashTargetOverride(ctx *ResolutionContext, source, original Seat) (newTarget Seat, ok bool)

	// ResponseAssistants enumerates seats willing to be asked whether they
	// want to provide a response on beneficiary's behalf (spec §4.9).
	ResponseAssistants(ctx *ResolutionContext, beneficiary Seat, kind ResponseKind) []Seat
}

// NopSkillManager is a SkillManager with no active skills — the default
// when no skill catalog is wired in.
type NopSkillManager struct{}

func (NopSkillManager) SingleCardConversionSkills(Seat, Subtype) []ConversionSkill { return nil }
func (NopSkillManager) MultiCardConversionSkills(Seat, Subtype, int) []ConversionSkill {
	return nil
}
func (NopSkillManager) RequiredDodgeCount(*ResolutionContext, Seat, Seat) int { return 1 }
func (NopSkillManager) ForbidsDodge(*ResolutionContext, Seat, Seat) bool      { return false }
func (NopSkillManager) SlashTargetOverride(*ResolutionContext, Seat, Seat) (Seat, bool) {
	return 0, false
}
func (NopSkillManager) ResponseAssistants(*ResolutionContext, Seat, ResponseKind) []Seat { return nil }

// StrictRuleService is a minimal RuleService: it only checks that the
// source seat is alive and holds every candidate card, and that every
// declared target is alive. It has no concept of range, hand-limit, or
// skill-granted exceptions — those live in the concrete rule catalog
// (spec §1), which this engine does not ship.
type StrictRuleService struct{}

// NewStrictRuleService constructs the engine's baseline rule service.
func NewStrictRuleService() *StrictRuleService {
	return &StrictRuleService{}
}

func (StrictRuleService) ValidateActionBeforeResolve(ctx *ResolutionContext, action *ActionDescriptor) (bool, string, map[string]any) {
	p := ctx.Game.Player(action.Source)
	if p == nil || !p.Alive {
		return false, "source not alive", map[string]any{"seat": action.Source}
	}
	for _, id := range action.CardCandidates {
		if !p.Hand.Contains(id) && !p.Equipment.Contains(id) {
			return false, "card not available to source", map[string]any{"cardID": id}
		}
	}
	for _, t := range action.TargetSeats {
		tp := ctx.Game.Player(t)
		if tp == nil || !tp.Alive {
			return false, "target not alive", map[string]any{"seat": t}
		}
	}
	return true, "", nil
}

func (StrictRuleService) LegalTargetsForUse(ctx *ResolutionContext, action *ActionDescriptor) (bool, []Seat) {
	seats := ctx.Game.AliveSeats()
	return len(seats) > 0, seats
}

func (StrictRuleService) LegalResponseCards(ctx *ResolutionContext, seat Seat, want Subtype) []int {
	p := ctx.Game.Player(seat)
	if p == nil {
		return nil
	}
	var ids []int
	for _, c := range p.Hand.Cards() {
		if c.Subtype() == want {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// --- Default local implementations, grounded on the teacher's direct
// zone-mutation style in state.go. ---

// DefaultCardMoveService mutates Game zones directly and logs every move.
type DefaultCardMoveService struct {
	Logger EventLoggerFunc
}

// EventLoggerFunc adapts a plain function into something MoveSingle/MoveMany
// can call to record a move — kept minimal so tests can pass nil.
type EventLoggerFunc func(cardName, from, to string)

func (s *DefaultCardMoveService) DrawCards(g *Game, seat Seat, n int) []*Card {
	p := g.Player(seat)
	if p == nil {
		return nil
	}
	var drawn []*Card
	for i := 0; i < n; i++ {
		c := g.DrawPile.pop()
		if c == nil {
			break
		}
		p.Hand.push(c)
		drawn = append(drawn, c)
		s.log(c.String(), "DrawPile", "Hand")
	}
	return drawn
}

func (s *DefaultCardMoveService) DiscardFromHand(g *Game, seat Seat, cards []*Card) error {
	p := g.Player(seat)
	if p == nil {
		return errInvalidState("unknown seat")
	}
	for _, c := range cards {
		if p.Hand.remove(c.ID) == nil {
			return errCardNotFound(c.ID)
		}
		g.DiscardPile.push(c)
		s.log(c.String(), "Hand", "DiscardPile")
	}
	return nil
}

func (s *DefaultCardMoveService) MoveSingle(d CardMoveDescriptor) error {
	return s.MoveMany(d)
}

func (s *DefaultCardMoveService) MoveMany(d CardMoveDescriptor) error {
	for _, c := range d.Cards {
		if d.From != nil && d.From.remove(c.ID) == nil {
			return errCardNotFound(c.ID)
		}
		if d.To != nil {
			if d.ToFront {
				d.To.pushFront(c)
			} else {
				d.To.push(c)
			}
		}
		from, to := "?", "?"
		if d.From != nil {
			from = d.From.Kind.String()
		}
		if d.To != nil {
			to = d.To.Kind.String()
		}
		s.log(c.String(), from, to)
	}
	return nil
}

func (s *DefaultCardMoveService) log(card, from, to string) {
	if s.Logger != nil {
		s.Logger(card, from, to)
	}
}

// DefaultJudgementService draws from the top of the draw pile and
// evaluates a caller-supplied success predicate over suit/rank.
type DefaultJudgementService struct{}

func (DefaultJudgementService) PerformJudgement(ctx *ResolutionContext, seat Seat, succeeds func(Suit, int) bool) (JudgementResult, error) {
	g := ctx.Game
	c := g.DrawPile.pop()
	if c == nil {
		return JudgementResult{}, errInvalidState("draw pile empty during judgement")
	}
	return JudgementResult{Success: succeeds(c.Suit, c.Rank), Card: c, Suit: c.Suit, Rank: c.Rank}, nil
}

func (DefaultJudgementService) CompleteJudgement(g *Game, seat Seat, card *Card, move CardMoveService) error {
	p := g.Player(seat)
	if p == nil {
		return errInvalidState("unknown seat")
	}
	if p.Judgement.remove(card.ID) == nil {
		return errCardNotFound(card.ID)
	}
	g.DiscardPile.push(card)
	return nil
}
