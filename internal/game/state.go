package game

import (
	"github.com/u9djfgoj/gigathon-project/internal/card"
)

// Moves returns how many draws and successful moves have been made
func (g *Game) Moves() int {
	return g.moves
}

// StockCount returns the number of face-down cards left to draw
func (g *Game) StockCount() int {
	return g.stock.Len()
}

// WasteCount returns the number of cards on the waste
func (g *Game) WasteCount() int {
	return g.waste.Len()
}

// WasteTop returns a copy of the waste's top card
func (g *Game) WasteTop() (card.Card, bool) {
	return peek(g.waste.Top())
}

// FoundationTop returns a copy of the top card on the foundation for suit
func (g *Game) FoundationTop(s card.Suit) (card.Card, bool) {
	if !s.Valid() {
		return card.Card{}, false
	}
	return peek(g.foundations[s].Top())
}

// FoundationCount returns how many cards the foundation for suit holds
func (g *Game) FoundationCount(s card.Suit) int {
	if !s.Valid() {
		return 0
	}
	return g.foundations[s].Len()
}

// Column returns copies of column i's cards bottom to top, or nil when i is
// not a column.
func (g *Game) Column(i int) []card.Card {
	if i < 0 || i >= NumColumns {
		return nil
	}
	return values(g.columns[i].Cards())
}

// Snapshot is a copy of every pile, bottom to top. Changing it does not
// affect the game.
type Snapshot struct {
	Stock       []card.Card
	Waste       []card.Card
	Foundations [4][]card.Card
	Columns     [NumColumns][]card.Card
}

// Snapshot copies the current table
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Stock: values(g.stock.Cards()),
		Waste: values(g.waste.Cards()),
	}
	for i, f := range g.foundations {
		s.Foundations[i] = values(f.Cards())
	}
	for i, col := range g.columns {
		s.Columns[i] = values(col.Cards())
	}
	return s
}

func peek(c *card.Card) (card.Card, bool) {
	if c == nil {
		return card.Card{}, false
	}
	return *c, true
}

func values(cards []*card.Card) []card.Card {
	out := make([]card.Card, len(cards))
	for i, c := range cards {
		out[i] = *c
	}
	return out
}
