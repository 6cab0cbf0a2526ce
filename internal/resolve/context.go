package resolve

// ResolutionContext is the read-mostly handle every resolver receives on
// Resolve (spec §4.3). It bundles the shared game state together with the
// engine's collaborators so a resolver never has to reach for package-level
// state. WithResults produces a shallow child with its own blackboard, so
// nested code can reassign the child's fields without touching the
// parent's.
type ResolutionContext struct {
	Game   *Game
	Stack  *ResolutionStack
	Bus    *EventBus
	Logger *chainLogger

	Rules      RuleService
	Move       CardMoveService
	Judgement  JudgementService
	Skills     SkillManager
	ChoiceFunc PlayerChoiceFunc

	// Results is the blackboard shared by every resolver run with this
	// context. Nothing in the engine replaces or clears it between
	// top-level actions; WithResults gives a child context a fresh one.
	Results *IntermediateResults
}

// NewResolutionContext builds a context with NopSkillManager and the given
// collaborators; pass nil for ChoiceFunc only in tests that never reach a
// choice point.
func NewResolutionContext(g *Game, rules RuleService, move CardMoveService, judgement JudgementService, choice PlayerChoiceFunc) *ResolutionContext {
	return &ResolutionContext{
		Game:       g,
		Stack:      NewResolutionStack(),
		Bus:        NewEventBus(),
		Logger:     newChainLogger(),
		Rules:      rules,
		Move:       move,
		Judgement:  judgement,
		Skills:     NopSkillManager{},
		ChoiceFunc: choice,
		Results:    NewIntermediateResults(),
	}
}

// WithResults returns a shallow copy of ctx with a fresh blackboard, for a
// logically independent sub-chain that shares the same stack, bus and
// services. No resolver in this package calls it.
func (ctx *ResolutionContext) WithResults() *ResolutionContext {
	child := *ctx
	child.Results = NewIntermediateResults()
	return &child
}

// Choose blocks on the configured PlayerChoiceFunc. It is the engine's only
// suspension point (spec §2): every other operation in the resolver core is
// synchronous and single-threaded.
func (ctx *ResolutionContext) Choose(req ChoiceRequest) ChoiceResult {
	if ctx.ChoiceFunc == nil {
		return ChoiceResult{RequestID: req.ID, Seat: req.Seat, Passed: true}
	}
	return ctx.ChoiceFunc(req)
}

// Publish is a convenience forward to ctx.Bus.Publish.
func (ctx *ResolutionContext) Publish(ev *Event) {
	ev.Game = ctx.Game
	ctx.Bus.Publish(ctx, ev)
}
