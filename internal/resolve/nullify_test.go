package resolve

import "testing"

func TestNullificationChainParityEven(t *testing.T) {
	// No nullification cards in anyone's hand: zero links, even, not nullified.
	chooser := NewScriptedChooser(t)
	ctx, g := newTestContext(t, 3, chooser)
	_ = g

	target := NullificationTarget{Key: "t1", Source: 0, Beneficiary: 0, Card: &Card{ID: 1, Def: defDuel}}
	if nullified := ResolveNullificationChain(ctx, target); nullified {
		t.Fatal("expected even (zero) link count to not be nullified")
	}
}

func TestNullificationChainParityOdd(t *testing.T) {
	chooser := NewScriptedChooser(t)
	ctx, g := newTestContext(t, 3, chooser)

	// Seat 1 offers exactly one Nullification; seat 2 has none.
	n := dealCard(g, 1, defNullification, SuitClub, 5)
	chooser.WillSelectCards(1, n.ID)

	target := NullificationTarget{Key: "t1", Source: 0, Beneficiary: 0, Card: &Card{ID: 1, Def: defDuel}}
	if nullified := ResolveNullificationChain(ctx, target); !nullified {
		t.Fatal("expected one link (odd count) to nullify")
	}
	if !ctx.Results.GetBool("t1:nullified") {
		t.Fatal("expected blackboard to record nullified=true")
	}
	if g.Player(1).Hand.Contains(n.ID) {
		t.Fatal("expected the nullification card to leave seat 1's hand")
	}
}

func TestNullificationChainTwoLinksIsEven(t *testing.T) {
	chooser := NewScriptedChooser(t)
	ctx, g := newTestContext(t, 3, chooser)

	n1 := dealCard(g, 1, defNullification, SuitClub, 5)
	n2 := dealCard(g, 2, defNullification, SuitClub, 6)
	chooser.WillSelectCards(1, n1.ID)
	chooser.WillSelectCards(2, n2.ID)

	target := NullificationTarget{Key: "t1", Source: 0, Beneficiary: 0, Card: &Card{ID: 1, Def: defDuel}}
	if nullified := ResolveNullificationChain(ctx, target); nullified {
		t.Fatal("expected two links (even count) to not nullify")
	}
}
