// Package scenario loads fixed game setups from YAML so tests and the CLI
// scenario runner can build a resolve.Game without hand-writing Go struct
// literals for every card. It follows the teacher's deck.go: parse the
// whole file into a typed struct, then expand counts into concrete cards.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sanguo/resolver/internal/resolve"
)

// File is the top-level YAML document shape.
type File struct {
	StartingHealth int            `yaml:"startingHealth"`
	DrawPile       []CardEntry    `yaml:"drawPile"`
	Players        []PlayerEntry  `yaml:"players"`
}

// PlayerEntry seeds one seat's starting hand, equipment and health.
type PlayerEntry struct {
	Health    int         `yaml:"health"`
	Hand      []CardEntry `yaml:"hand"`
	Equipment []CardEntry `yaml:"equipment"`
}

// CardEntry names a card def id, its suit/rank, and how many copies.
type CardEntry struct {
	DefID string `yaml:"defId"`
	Name  string `yaml:"name"`
	Suit  string `yaml:"suit"`
	Rank  int    `yaml:"rank"`
	Count int    `yaml:"count"`
}

// CardCatalog resolves a defId into a resolve.CardDef. The concrete card
// catalog is an external collaborator (spec §1); scenario loading only
// needs enough of it to look defIds up by name.
type CardCatalog interface {
	Lookup(defID string) (*resolve.CardDef, bool)
}

// Load parses a scenario file at path and builds a resolve.Game from it,
// using catalog to resolve each entry's defId into a CardDef.
func Load(path string, catalog CardCatalog) (*resolve.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}
	return Build(&f, catalog)
}

// Build turns an already-parsed File into a live Game.
func Build(f *File, catalog CardCatalog) (*resolve.Game, error) {
	startingHealth := f.StartingHealth
	if startingHealth <= 0 {
		startingHealth = 4
	}
	g := resolve.NewGame(len(f.Players), startingHealth)

	for _, entry := range f.DrawPile {
		cards, err := expand(g, catalog, entry)
		if err != nil {
			return nil, err
		}
		for _, c := range cards {
			g.DrawPile.Seed(c)
		}
	}

	for i, pe := range f.Players {
		p := g.Player(resolve.Seat(i))
		if pe.Health > 0 {
			p.CurrentHealth = pe.Health
			p.MaxHealth = pe.Health
		}
		for _, entry := range pe.Hand {
			cards, err := expand(g, catalog, entry)
			if err != nil {
				return nil, err
			}
			for _, c := range cards {
				p.Hand.Seed(c)
			}
		}
		for _, entry := range pe.Equipment {
			cards, err := expand(g, catalog, entry)
			if err != nil {
				return nil, err
			}
			for _, c := range cards {
				p.Equipment.Seed(c)
			}
		}
	}

	return g, nil
}

func expand(g *resolve.Game, catalog CardCatalog, entry CardEntry) ([]*resolve.Card, error) {
	def, ok := catalog.Lookup(entry.DefID)
	if !ok {
		return nil, fmt.Errorf("scenario: unknown card defId %q", entry.DefID)
	}
	count := entry.Count
	if count <= 0 {
		count = 1
	}
	suit := parseSuit(entry.Suit)
	var out []*resolve.Card
	for i := 0; i < count; i++ {
		out = append(out, &resolve.Card{ID: g.NextCardID(), Def: def, Suit: suit, Rank: entry.Rank})
	}
	return out, nil
}

func parseSuit(s string) resolve.Suit {
	switch s {
	case "Spade":
		return resolve.SuitSpade
	case "Heart":
		return resolve.SuitHeart
	case "Club":
		return resolve.SuitClub
	case "Diamond":
		return resolve.SuitDiamond
	default:
		return resolve.SuitNone
	}
}
