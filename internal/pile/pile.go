// Package pile holds the four kinds of card piles on a Klondike table.
// Cards are ordered bottom to top: index 0 is the bottom, the last index is the top.
package pile

import (
	"github.com/u9djfgoj/gigathon-project/internal/card"
)

// Column is one of the seven tableau piles
type Column struct {
	cards []*card.Card
}

// Len returns the number of cards in the column
func (c *Column) Len() int {
	return len(c.cards)
}

// Top returns the top card, or nil if the column is empty
func (c *Column) Top() *card.Card {
	if len(c.cards) == 0 {
		return nil
	}
	return c.cards[len(c.cards)-1]
}

// At returns the card at index i, or nil when i is out of range
func (c *Column) At(i int) *card.Card {
	if i < 0 || i >= len(c.cards) {
		return nil
	}
	return c.cards[i]
}

// Cards returns the cards bottom to top
func (c *Column) Cards() []*card.Card {
	out := make([]*card.Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Push appends cards on top of the column
func (c *Column) Push(cards ...*card.Card) {
	c.cards = append(c.cards, cards...)
}

// Split removes the cards from index i to the top and returns them.
// The caller must check i is in range.
func (c *Column) Split(i int) []*card.Card {
	run := make([]*card.Card, len(c.cards)-i)
	copy(run, c.cards[i:])
	c.cards = c.cards[:i]
	return run
}

// RemoveAt removes the single card at index i, shifting any cards above it down
func (c *Column) RemoveAt(i int) *card.Card {
	removed := c.cards[i]
	c.cards = append(c.cards[:i], c.cards[i+1:]...)
	return removed
}

// RevealTop turns the top card face-up, if there is one
func (c *Column) RevealTop() {
	if top := c.Top(); top != nil {
		top.TurnUp()
	}
}

// IsRun reports whether the cards from index i to the top are all face-up and
// form a descending run of alternating colours.
func (c *Column) IsRun(i int) bool {
	if i < 0 || i >= len(c.cards) {
		return false
	}
	for j := i; j < len(c.cards); j++ {
		if !c.cards[j].FaceUp() {
			return false
		}
		if j > i && !c.cards[j].CanStackOn(c.cards[j-1]) {
			return false
		}
	}
	return true
}

// Foundation is a single-suit pile built from Ace up to King
type Foundation struct {
	suit  card.Suit
	cards []*card.Card
}

// NewFoundation creates an empty foundation for suit
func NewFoundation(suit card.Suit) *Foundation {
	return &Foundation{suit: suit}
}

func (f *Foundation) Suit() card.Suit { return f.suit }
func (f *Foundation) Len() int        { return len(f.cards) }

// Top returns the top card, or nil if the foundation is empty
func (f *Foundation) Top() *card.Card {
	if len(f.cards) == 0 {
		return nil
	}
	return f.cards[len(f.cards)-1]
}

// Accepts reports whether c is the next card this foundation needs
func (f *Foundation) Accepts(c *card.Card) bool {
	return c.Suit() == f.suit && c.CanMoveToFoundation(f.Top())
}

// Push places c on the foundation. The caller must check Accepts first.
func (f *Foundation) Push(c *card.Card) {
	c.TurnUp()
	f.cards = append(f.cards, c)
}

// Complete reports whether the foundation holds Ace through King
func (f *Foundation) Complete() bool {
	return len(f.cards) == len(card.Ranks())
}

// Cards returns the cards bottom to top
func (f *Foundation) Cards() []*card.Card {
	out := make([]*card.Card, len(f.cards))
	copy(out, f.cards)
	return out
}

// Stock is the face-down draw pile
type Stock struct {
	cards []*card.Card
}

// NewStock takes ownership of cards and turns them face-down
func NewStock(cards []*card.Card) *Stock {
	for _, c := range cards {
		c.TurnDown()
	}
	return &Stock{cards: cards}
}

func (s *Stock) Len() int { return len(s.cards) }

// Draw removes and returns the top card, or nil if the stock is empty
func (s *Stock) Draw() *card.Card {
	if len(s.cards) == 0 {
		return nil
	}
	top := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return top
}

// Refill puts the waste back into the stock. The waste's top card ends up at
// the bottom of the stock so the next draws repeat the original order.
func (s *Stock) Refill(waste []*card.Card) {
	for i := len(waste) - 1; i >= 0; i-- {
		waste[i].TurnDown()
		s.cards = append(s.cards, waste[i])
	}
}

// Cards returns the cards bottom to top
func (s *Stock) Cards() []*card.Card {
	out := make([]*card.Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// Waste is the face-up pile fed from the stock
type Waste struct {
	cards []*card.Card
}

func (w *Waste) Len() int { return len(w.cards) }

// Top returns the most recently drawn card, or nil if the waste is empty
func (w *Waste) Top() *card.Card {
	if len(w.cards) == 0 {
		return nil
	}
	return w.cards[len(w.cards)-1]
}

// Push places c face-up on the waste
func (w *Waste) Push(c *card.Card) {
	c.TurnUp()
	w.cards = append(w.cards, c)
}

// Pop removes and returns the top card, or nil if the waste is empty
func (w *Waste) Pop() *card.Card {
	top := w.Top()
	if top != nil {
		w.cards = w.cards[:len(w.cards)-1]
	}
	return top
}

// TakeAll empties the waste and returns its cards bottom to top
func (w *Waste) TakeAll() []*card.Card {
	all := w.cards
	w.cards = nil
	return all
}

// Cards returns the cards bottom to top
func (w *Waste) Cards() []*card.Card {
	out := make([]*card.Card, len(w.cards))
	copy(out, w.cards)
	return out
}
