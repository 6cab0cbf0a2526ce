package resolve

// ZoneKind names the kind of zone a card sits in.
type ZoneKind int

const (
	ZoneDrawPile ZoneKind = iota
	ZoneDiscardPile
	ZoneHand
	ZoneEquipment
	ZoneJudgement
	ZonePool // public pool used by Harvest-style cards
)

func (z ZoneKind) String() string {
	switch z {
	case ZoneDrawPile:
		return "DrawPile"
	case ZoneDiscardPile:
		return "DiscardPile"
	case ZoneHand:
		return "Hand"
	case ZoneEquipment:
		return "Equipment"
	case ZoneJudgement:
		return "Judgement"
	case ZonePool:
		return "Pool"
	default:
		return "Unknown"
	}
}

// Zone is an ordered, optionally owned, optionally hidden container of
// cards. Cards only ever move between zones through Game's move helpers,
// so that every move can be logged in total order (spec §3).
type Zone struct {
	Kind   ZoneKind
	Owner  Seat // meaningful only for per-player zones; ignored for shared piles
	Hidden bool
	cards  []*Card
}

// NewZone constructs an empty zone.
func NewZone(kind ZoneKind, owner Seat, hidden bool) *Zone {
	return &Zone{Kind: kind, Owner: owner, Hidden: hidden}
}

// Cards returns the zone's contents in order. The slice is a copy; callers
// must not mutate zone contents except through Zone's own methods.
func (z *Zone) Cards() []*Card {
	out := make([]*Card, len(z.cards))
	copy(out, z.cards)
	return out
}

// Len returns the number of cards currently in the zone.
func (z *Zone) Len() int { return len(z.cards) }

// Contains reports whether the given card id is present in the zone.
func (z *Zone) Contains(id int) bool {
	for _, c := range z.cards {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Find returns the card with the given id, or nil if absent.
func (z *Zone) Find(id int) *Card {
	for _, c := range z.cards {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// push appends a card to the top of the zone (used for draw piles where
// the end of the slice is conventionally the top).
func (z *Zone) push(c *Card) {
	z.cards = append(z.cards, c)
}

// Seed appends cards directly into the zone, bypassing the move services.
// It exists for scenario loading and test setup, where there is no "from"
// zone a card is moving out of — only an initial placement.
func (z *Zone) Seed(cards ...*Card) {
	z.cards = append(z.cards, cards...)
}

// pushFront inserts a card at the front (index 0) of the zone — the
// opposite end from push. MoveMany uses it for a descriptor with ToFront
// set.
func (z *Zone) pushFront(c *Card) {
	z.cards = append([]*Card{c}, z.cards...)
}

// pop removes and returns the top card, or nil if the zone is empty.
func (z *Zone) pop() *Card {
	if len(z.cards) == 0 {
		return nil
	}
	c := z.cards[len(z.cards)-1]
	z.cards = z.cards[:len(z.cards)-1]
	return c
}

// remove deletes a card by id from anywhere in the zone. Returns the
// removed card, or nil if not present.
func (z *Zone) remove(id int) *Card {
	for i, c := range z.cards {
		if c.ID == id {
			z.cards = append(z.cards[:i], z.cards[i+1:]...)
			return c
		}
	}
	return nil
}
