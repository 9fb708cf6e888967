package deck

import (
	"math/rand/v2"

	"github.com/u9djfgoj/gigathon-project/internal/card"
)

// Size is the number of cards in a full deck
const Size = 52

// Deck represents a standard 52-card deck. The last element is the top card.
type Deck struct {
	cards []*card.Card
}

// New creates all 52 cards face-down, grouped by suit in ascending rank
func New() *Deck {
	d := &Deck{cards: make([]*card.Card, 0, Size)}
	for _, suit := range card.Suits() {
		for _, rank := range card.Ranks() {
			d.cards = append(d.cards, card.MustNew(rank, suit))
		}
	}
	return d
}

// Shuffle permutes the deck with Fisher-Yates. A nil rng uses the
// package-level source.
func (d *Deck) Shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card, or false once the deck is empty
func (d *Deck) Deal() (*card.Card, bool) {
	if len(d.cards) == 0 {
		return nil, false
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, true
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns the remaining cards bottom to top
func (d *Deck) Cards() []*card.Card {
	out := make([]*card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}
