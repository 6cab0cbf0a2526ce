package resolve

import (
	"testing"

	"github.com/sanguo/resolver/internal/log"
)

// TestScenarioA_BasicSlashNoDodge covers spec §8 scenario A: a plain Slash
// against a target with no Dodge in hand lands for one point of normal
// damage, and the used card ends up in the discard pile.
func TestScenarioA_BasicSlashNoDodge(t *testing.T) {
	chooser := NewScriptedChooser(t)
	ctx, g := newTestContext(t, 4, chooser)
	logger := log.NewMemoryLogger()
	ctx.Logger.Attach(logger)

	slash := dealCard(g, 0, defSlash, SuitSpade, 7)
	slash.ID = 10

	err := UseCard(ctx, &ActionDescriptor{
		ActionID:       "UseSlash",
		Source:         0,
		CardCandidates: []int{slash.ID},
		TargetSeats:    []Seat{1},
	})
	if err != nil {
		t.Fatalf("UseCard returned error: %v", err)
	}

	if g.Player(0).Hand.Contains(slash.ID) {
		t.Fatal("expected slash to leave seat 0's hand")
	}
	if !g.DiscardPile.Contains(slash.ID) {
		t.Fatal("expected slash in discard pile")
	}
	if g.Player(1).CurrentHealth != 3 {
		t.Fatalf("expected seat 1 health 3, got %d", g.Player(1).CurrentHealth)
	}

	applied := logger.EventsOfType(log.EventDamageApplied)
	if len(applied) != 1 {
		t.Fatalf("expected exactly one DamageApplied event, got %d", len(applied))
	}
	after := logger.EventsOfType(log.EventAfterDamage)
	if len(after) != 1 {
		t.Fatalf("expected exactly one AfterDamage event, got %d", len(after))
	}
}

// TestScenarioB_SlashDodgeNullified covers spec §8 scenario B: seat 1
// dodges, but seat 2 nullifies the Dodge itself, so the Slash still lands.
func TestScenarioB_SlashDodgeNullified(t *testing.T) {
	chooser := NewScriptedChooser(t)
	ctx, g := newTestContext(t, 4, chooser)

	slash := dealCard(g, 0, defSlash, SuitSpade, 7)
	slash.ID = 10
	dodge := dealCard(g, 1, defDodge, SuitHeart, 2)
	dodge.ID = 11
	nullify := dealCard(g, 2, defNullification, SuitClub, 5)
	nullify.ID = 12

	chooser.WillSelectCards(1, dodge.ID)
	chooser.WillSelectCards(2, nullify.ID)

	err := UseCard(ctx, &ActionDescriptor{
		ActionID:       "UseSlash",
		Source:         0,
		CardCandidates: []int{slash.ID},
		TargetSeats:    []Seat{1},
	})
	if err != nil {
		t.Fatalf("UseCard returned error: %v", err)
	}

	if g.Player(1).CurrentHealth != 3 {
		t.Fatalf("expected seat 1 health 3 (slash still lands), got %d", g.Player(1).CurrentHealth)
	}
	if !g.DiscardPile.Contains(dodge.ID) {
		t.Fatal("expected the nullified dodge in discard")
	}
	if !g.DiscardPile.Contains(nullify.ID) {
		t.Fatal("expected the nullification card in discard")
	}
	if !ctx.Results.GetBool("SlashDodgeNullification_1:nullified") {
		t.Fatal("expected the dodge's nullification chain to be recorded as nullified")
	}
	if got := ctx.Results.GetInt("SlashDodgeNullification_1:count"); got != 1 {
		t.Fatalf("expected chain count 1, got %d", got)
	}
}

// TestScenarioC_DuelUntilDamage covers spec §8 scenario C: target supplies
// one Slash back, source fails to supply a second, so source takes the hit.
func TestScenarioC_DuelUntilDamage(t *testing.T) {
	chooser := NewScriptedChooser(t)
	ctx, g := newTestContext(t, 4, chooser)

	duel := dealCard(g, 0, defDuel, SuitSpade, 1)
	duel.ID = 20
	reply := dealCard(g, 1, defSlash, SuitHeart, 9)
	reply.ID = 21

	chooser.WillSelectCards(1, reply.ID)
	// seat 0 has no further Slash to supply and passes implicitly.

	err := UseCard(ctx, &ActionDescriptor{
		ActionID:       "UseDuel",
		Source:         0,
		CardCandidates: []int{duel.ID},
		TargetSeats:    []Seat{1},
	})
	if err != nil {
		t.Fatalf("UseCard returned error: %v", err)
	}

	if !g.DiscardPile.Contains(reply.ID) {
		t.Fatal("expected seat 1's reply slash in discard")
	}
	if g.Player(0).CurrentHealth != 3 {
		t.Fatalf("expected seat 0 (the duel's loser) to take 1 damage, got health %d", g.Player(0).CurrentHealth)
	}
	if g.Player(1).CurrentHealth != 4 {
		t.Fatalf("expected seat 1 to take no damage, got health %d", g.Player(1).CurrentHealth)
	}
}

// TestScenarioD_DyingThenRescue covers spec §8 scenario D: a seat reduced
// to zero health is rescued mid-window by a Peach from another seat.
func TestScenarioD_DyingThenRescue(t *testing.T) {
	chooser := NewScriptedChooser(t)
	ctx, g := newTestContext(t, 4, chooser)
	logger := log.NewMemoryLogger()
	ctx.Logger.Attach(logger)

	g.Player(0).CurrentHealth = 1

	slash := dealCard(g, 1, defSlash, SuitSpade, 7)
	slash.ID = 10
	peach := dealCard(g, 2, defPeach, SuitHeart, 6)
	peach.ID = 30

	chooser.WillSelectCards(2, peach.ID)

	err := UseCard(ctx, &ActionDescriptor{
		ActionID:       "UseSlash",
		Source:         1,
		CardCandidates: []int{slash.ID},
		TargetSeats:    []Seat{0},
	})
	if err != nil {
		t.Fatalf("UseCard returned error: %v", err)
	}

	if g.Player(0).CurrentHealth != 1 {
		t.Fatalf("expected seat 0 back to 1 health after rescue, got %d", g.Player(0).CurrentHealth)
	}
	if !g.Player(0).Alive {
		t.Fatal("expected seat 0 to still be alive")
	}
	if !g.DiscardPile.Contains(peach.ID) {
		t.Fatal("expected the rescuing peach in discard")
	}
	if len(logger.EventsOfType(log.EventDyingStart)) != 1 {
		t.Fatalf("expected exactly one DyingStart event, got %d", len(logger.EventsOfType(log.EventDyingStart)))
	}
	if len(logger.EventsOfType(log.EventPlayerDied)) != 0 {
		t.Fatal("expected no PlayerDied event")
	}
}

// TestScenarioE_HarvestWithOneNullifiedTarget covers spec §8 scenario E:
// source drafts unopposed, one recipient's pick is nullified and discarded
// outright, the remaining recipient drafts normally, and leftovers go to
// the discard pile.
func TestScenarioE_HarvestWithOneNullifiedTarget(t *testing.T) {
	chooser := NewScriptedChooser(t)
	ctx, g := newTestContext(t, 3, chooser)

	harvest := dealCard(g, 0, defHarvest, SuitSpade, 1)
	harvest.ID = 40

	c1 := &Card{ID: 41, Def: defSlash, Suit: SuitSpade, Rank: 2}
	c2 := &Card{ID: 42, Def: defSlash, Suit: SuitHeart, Rank: 3}
	c3 := &Card{ID: 43, Def: defSlash, Suit: SuitClub, Rank: 4}
	// Seed so DrawPile.pop() (from the end) yields c1, then c2, then c3 —
	// matching the reveal order source, seat1, seat2 expect to see.
	g.DrawPile.Seed(c3, c2, c1)

	nullify := dealCard(g, 2, defNullification, SuitClub, 5)

	chooser.WillSelectCards(0, c1.ID)
	chooser.WillSelectCards(2, nullify.ID) // seat 2 nullifies seat 1's pick
	chooser.WillSelectCards(2, c2.ID)      // seat 2's own pick

	err := UseCard(ctx, &ActionDescriptor{
		ActionID:       "UseHarvest",
		Source:         0,
		CardCandidates: []int{harvest.ID},
		TargetSeats:    nil,
	})
	if err != nil {
		t.Fatalf("UseCard returned error: %v", err)
	}

	if !g.Player(0).Hand.Contains(c1.ID) {
		t.Fatal("expected seat 0 to keep its unopposed pick")
	}
	if g.Player(1).Hand.Contains(c2.ID) || g.Player(1).Hand.Contains(c3.ID) {
		t.Fatal("expected seat 1 to receive nothing (its pick was nullified)")
	}
	if !g.Player(2).Hand.Contains(c2.ID) {
		t.Fatal("expected seat 2 to receive its drafted card")
	}
	if !g.DiscardPile.Contains(c3.ID) {
		t.Fatal("expected the card reserved for seat 1's nullified pick in discard")
	}
	if !g.DiscardPile.Contains(harvest.ID) {
		t.Fatal("expected the harvest card itself in discard")
	}
}

// TestScenarioF_LightningBoltFailureTransfers covers spec §8 scenario F: a
// failed judgement leaves the delayed trick unresolved and moves it to the
// next alive player's judgement zone instead of discarding it.
func TestScenarioF_LightningBoltFailureTransfers(t *testing.T) {
	chooser := NewScriptedChooser(t)
	ctx, g := newTestContext(t, 3, chooser)

	bolt := &Card{ID: 50, Def: defLightning, Suit: SuitSpade, Rank: 1}
	g.Player(0).Judgement.Seed(bolt)

	flip := &Card{ID: 51, Def: defSlash, Suit: SuitDiamond, Rank: 8}
	g.DrawPile.Seed(flip)

	resolver := &JudgementResolver{
		Owner:     0,
		Card:      bolt,
		Predicate: lightningBoltSucceeds,
		Effect:    newLightningBoltEffect,
	}
	ctx.Stack.Push(resolver)
	if err := ctx.Stack.Drain(ctx); err != nil {
		t.Fatalf("Drain returned error: %v", err)
	}

	if g.DiscardPile.Contains(bolt.ID) {
		t.Fatal("expected the lightning bolt card to stay out of discard on failure")
	}
	if !g.DiscardPile.Contains(flip.ID) {
		t.Fatal("expected the flipped judgement card itself to be discarded")
	}
	if g.Player(0).Judgement.Contains(bolt.ID) {
		t.Fatal("expected the bolt to leave seat 0's judgement zone")
	}
	if !g.Player(1).Judgement.Contains(bolt.ID) {
		t.Fatal("expected the bolt to transfer to seat 1's judgement zone")
	}
	if g.Player(0).CurrentHealth != 4 {
		t.Fatalf("expected no damage applied on a failed judgement, got health %d", g.Player(0).CurrentHealth)
	}
}
