package resolve

import "testing"

func TestOpenResponseWindowSuccessWithSingleUnit(t *testing.T) {
	chooser := NewScriptedChooser(t)
	ctx, g := newTestContext(t, 2, chooser)

	dodge := dealCard(g, 1, defDodge, SuitSpade, 3)
	chooser.WillSelectCards(1, dodge.ID)

	result := OpenResponseWindow(ctx, ResponseWindow{Responder: 1, Want: SubtypeDodge, UnitsRequired: 1})
	if result.Outcome != ResponseSuccess {
		t.Fatalf("expected ResponseSuccess, got %v", result.Outcome)
	}
	if g.Player(1).Hand.Contains(dodge.ID) {
		t.Fatal("expected used dodge to leave hand")
	}
	if !g.DiscardPile.Contains(dodge.ID) {
		t.Fatal("expected used dodge to land in discard pile")
	}
}

func TestOpenResponseWindowNoResponseWhenHandEmpty(t *testing.T) {
	chooser := NewScriptedChooser(t)
	ctx, _ := newTestContext(t, 2, chooser)

	result := OpenResponseWindow(ctx, ResponseWindow{Responder: 1, Want: SubtypeDodge, UnitsRequired: 1})
	if result.Outcome != NoResponse {
		t.Fatalf("expected NoResponse, got %v", result.Outcome)
	}
}

func TestOpenResponseWindowRequiresMultipleUnits(t *testing.T) {
	chooser := NewScriptedChooser(t)
	ctx, g := newTestContext(t, 2, chooser)

	d1 := dealCard(g, 1, defDodge, SuitSpade, 3)
	d2 := dealCard(g, 1, defDodge, SuitSpade, 4)
	chooser.WillSelectCards(1, d1.ID)
	chooser.WillSelectCards(1, d2.ID)

	result := OpenResponseWindow(ctx, ResponseWindow{Responder: 1, Want: SubtypeDodge, UnitsRequired: 2})
	if result.Outcome != ResponseSuccess {
		t.Fatalf("expected ResponseSuccess with two units, got %v", result.Outcome)
	}
	if result.UnitsCollected != 2 {
		t.Fatalf("expected 2 units collected, got %d", result.UnitsCollected)
	}
}

func TestOpenResponseWindowFailsWhenOnlyOneOfTwoUnitsAvailable(t *testing.T) {
	chooser := NewScriptedChooser(t)
	ctx, g := newTestContext(t, 2, chooser)

	d1 := dealCard(g, 1, defDodge, SuitSpade, 3)
	chooser.WillSelectCards(1, d1.ID)
	// second poll: no more dodges in hand, LegalResponseCards returns empty

	result := OpenResponseWindow(ctx, ResponseWindow{Responder: 1, Want: SubtypeDodge, UnitsRequired: 2})
	if result.Outcome != NoResponse {
		t.Fatalf("expected NoResponse when only one of two required units is available, got %v", result.Outcome)
	}
	if result.UnitsCollected != 1 {
		t.Fatalf("expected 1 unit collected before the window failed, got %d", result.UnitsCollected)
	}
}
