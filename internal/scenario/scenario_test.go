package scenario

import (
	"testing"

	"github.com/sanguo/resolver/internal/resolve"
)

func TestBuildSeedsPlayersAndDrawPile(t *testing.T) {
	f := &File{
		StartingHealth: 4,
		DrawPile: []CardEntry{
			{DefID: "slash", Suit: "Spade", Rank: 7, Count: 2},
		},
		Players: []PlayerEntry{
			{
				Health: 3,
				Hand: []CardEntry{
					{DefID: "dodge", Suit: "Heart", Rank: 2},
				},
			},
			{
				Equipment: []CardEntry{
					{DefID: "weapon", Suit: "Club", Rank: 5},
				},
			},
		},
	}

	g, err := Build(f, resolve.BuiltinCatalog)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if len(g.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(g.Players))
	}
	if g.Player(0).CurrentHealth != 3 || g.Player(0).MaxHealth != 3 {
		t.Fatalf("expected seat 0 health overridden to 3, got current=%d max=%d", g.Player(0).CurrentHealth, g.Player(0).MaxHealth)
	}
	if g.Player(1).CurrentHealth != 4 {
		t.Fatalf("expected seat 1 to keep the starting health of 4, got %d", g.Player(1).CurrentHealth)
	}
	if g.DrawPile.Len() != 2 {
		t.Fatalf("expected 2 drawn slashes seeded, got %d", g.DrawPile.Len())
	}
	if g.Player(0).Hand.Len() != 1 {
		t.Fatalf("expected seat 0 to have 1 card in hand, got %d", g.Player(0).Hand.Len())
	}
	if g.Player(1).Equipment.Len() != 1 {
		t.Fatalf("expected seat 1 to have 1 equipped card, got %d", g.Player(1).Equipment.Len())
	}
}

func TestBuildRejectsUnknownDefID(t *testing.T) {
	f := &File{
		Players: []PlayerEntry{
			{Hand: []CardEntry{{DefID: "not-a-real-card"}}},
		},
	}
	if _, err := Build(f, resolve.BuiltinCatalog); err == nil {
		t.Fatal("expected an error for an unknown card defId")
	}
}

func TestParseSuit(t *testing.T) {
	cases := map[string]resolve.Suit{
		"Spade":   resolve.SuitSpade,
		"Heart":   resolve.SuitHeart,
		"Club":    resolve.SuitClub,
		"Diamond": resolve.SuitDiamond,
		"":        resolve.SuitNone,
		"bogus":   resolve.SuitNone,
	}
	for in, want := range cases {
		if got := parseSuit(in); got != want {
			t.Errorf("parseSuit(%q) = %v, want %v", in, got, want)
		}
	}
}
