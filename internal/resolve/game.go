package resolve

import "fmt"

// Phase names the current step of the active player's turn. The
// resolution core only needs enough phase structure to give the
// draw-phase and delayed-trick judgement resolvers somewhere to run
// from (spec §4.6); the rest of the turn loop is deliberately thin.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseDraw
	PhaseJudge
	PhasePlay
	PhaseDiscard
)

func (p Phase) String() string {
	switch p {
	case PhaseDraw:
		return "Draw Phase"
	case PhaseJudge:
		return "Judge Phase"
	case PhasePlay:
		return "Play Phase"
	case PhaseDiscard:
		return "Discard Phase"
	default:
		return "None"
	}
}

// Game is the resolution engine's root data model: seated players, the
// shared draw/discard piles, and whose turn it currently is (spec §3).
type Game struct {
	Players     []*Player
	DrawPile    *Zone
	DiscardPile *Zone
	Pool        *Zone // shared public pool used by Harvest-style resolvers
	Turn        int
	CurrentSeat Seat
	Phase       Phase

	nextCardID int
}

// NewGame constructs a game with n seated players at the given starting health.
func NewGame(n int, startingHealth int) *Game {
	g := &Game{
		DrawPile:    NewZone(ZoneDrawPile, 0, true),
		DiscardPile: NewZone(ZoneDiscardPile, 0, false),
		Pool:        NewZone(ZonePool, 0, false),
	}
	for i := 0; i < n; i++ {
		g.Players = append(g.Players, NewPlayer(Seat(i), startingHealth))
	}
	return g
}

// NextCardID allocates the next positive card instance id.
func (g *Game) NextCardID() int {
	g.nextCardID++
	return g.nextCardID
}

// Player returns the player at the given seat, or nil if out of range.
func (g *Game) Player(seat Seat) *Player {
	if int(seat) < 0 || int(seat) >= len(g.Players) {
		return nil
	}
	return g.Players[seat]
}

// AliveSeats returns seats with Alive == true, in seat order.
func (g *Game) AliveSeats() []Seat {
	var out []Seat
	for _, p := range g.Players {
		if p.Alive {
			out = append(out, p.Seat)
		}
	}
	return out
}

// AliveCount returns the number of players still alive.
func (g *Game) AliveCount() int {
	n := 0
	for _, p := range g.Players {
		if p.Alive {
			n++
		}
	}
	return n
}

// SeatOrderFrom returns all seats in turn order starting at `from`,
// wrapping around the table exactly once (used by response windows,
// harvest, and nullification, all of which poll "starting from X").
func (g *Game) SeatOrderFrom(from Seat) []Seat {
	n := len(g.Players)
	out := make([]Seat, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Seat((int(from)+i)%n))
	}
	return out
}

// AliveSeatOrderFrom is SeatOrderFrom filtered to seats still alive.
func (g *Game) AliveSeatOrderFrom(from Seat) []Seat {
	var out []Seat
	for _, s := range g.SeatOrderFrom(from) {
		if p := g.Player(s); p != nil && p.Alive {
			out = append(out, s)
		}
	}
	return out
}

// NextSeat returns the seat after `from` in table order.
func (g *Game) NextSeat(from Seat) Seat {
	return Seat((int(from) + 1) % len(g.Players))
}

func (g *Game) String() string {
	return fmt.Sprintf("Game{turn=%d seat=%d phase=%s}", g.Turn, g.CurrentSeat, g.Phase)
}
