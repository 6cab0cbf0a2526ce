package resolve

import "testing"

func TestResolutionStackLIFOOrder(t *testing.T) {
	stack := NewResolutionStack()
	var order []string

	record := func(name string) Resolver {
		return ResolverFunc{FuncName: name, Fn: func(ctx *ResolutionContext) error {
			order = append(order, name)
			return nil
		}}
	}

	// Pushing a resolver that itself pushes two more should run the nested
	// pair before anything pushed earlier but below it.
	stack.Push(record("bottom"))
	stack.Push(ResolverFunc{FuncName: "middle", Fn: func(ctx *ResolutionContext) error {
		order = append(order, "middle")
		ctx.Stack.Push(record("nested-2"))
		ctx.Stack.Push(record("nested-1"))
		return nil
	}})

	ctx := &ResolutionContext{Stack: stack}
	if err := stack.Drain(ctx); err != nil {
		t.Fatalf("Drain returned error: %v", err)
	}

	want := []string{"middle", "nested-1", "nested-2", "bottom"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestResolutionStackHistoryRecordsErrors(t *testing.T) {
	stack := NewResolutionStack()
	stack.Push(ResolverFunc{FuncName: "failing", Fn: func(ctx *ResolutionContext) error {
		return errInvalidState("boom")
	}})

	ctx := &ResolutionContext{Stack: stack}
	if err := stack.Drain(ctx); err == nil {
		t.Fatal("expected Drain to surface the resolver's error")
	}

	hist := stack.History()
	if len(hist) != 1 || hist[0].Name != "failing" || hist[0].Err == nil {
		t.Fatalf("unexpected history: %+v", hist)
	}
}

func TestResolutionStackDrainStopsOnFirstError(t *testing.T) {
	stack := NewResolutionStack()
	var ranAfterFailure bool

	// Pushed first so it sits below the failing resolver and would run
	// next if Drain kept going after an error.
	stack.Push(ResolverFunc{FuncName: "below", Fn: func(ctx *ResolutionContext) error {
		ranAfterFailure = true
		return nil
	}})
	stack.Push(ResolverFunc{FuncName: "failing", Fn: func(ctx *ResolutionContext) error {
		return errInvalidState("boom")
	}})

	ctx := &ResolutionContext{Stack: stack}
	if err := stack.Drain(ctx); err == nil {
		t.Fatal("expected Drain to surface the resolver's error")
	}
	if ranAfterFailure {
		t.Fatal("Drain should not run resolvers still pending beneath a failed one")
	}
	if stack.IsEmpty() {
		t.Fatal("expected the unreached resolver to remain on the stack")
	}

	hist := stack.History()
	if len(hist) != 1 || hist[0].Name != "failing" || hist[0].Err == nil {
		t.Fatalf("unexpected history: %+v", hist)
	}
}

func TestIsEmptyAndLen(t *testing.T) {
	stack := NewResolutionStack()
	if !stack.IsEmpty() {
		t.Fatal("new stack should be empty")
	}
	stack.Push(ResolverFunc{FuncName: "x", Fn: func(ctx *ResolutionContext) error { return nil }})
	if stack.IsEmpty() || stack.Len() != 1 {
		t.Fatalf("expected len 1, got %d", stack.Len())
	}
}
