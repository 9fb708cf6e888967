package card

import (
	"fmt"
	"strings"
)

// Rank is the face value of a card, ordered Ace (low) through King (high)
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankLabels = []string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Ranks returns every rank in ascending order
func Ranks() []Rank {
	return []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
}

// Valid reports whether r is one of the 13 ranks
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankLabels[r]
}

// Color is the red/black classification of a suit
type Color int

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Suit is one of the four French suits
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Spades
	Clubs
)

var suitNames = []string{"hearts", "diamonds", "spades", "clubs"}
var suitSymbols = []string{"♥", "♦", "♠", "♣"}
var suitLetters = []string{"H", "D", "S", "C"}

// Suits returns the four suits in foundation order
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Spades, Clubs}
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Hearts && s <= Clubs
}

// Color returns Red for hearts and diamonds, Black for spades and clubs
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Symbol returns the unicode suit symbol
func (s Suit) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

// ASCII returns a single letter for terminals without unicode suit glyphs
func (s Suit) ASCII() string {
	if !s.Valid() {
		return "?"
	}
	return suitLetters[s]
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// FaceDown is the placeholder shown instead of a hidden card
const FaceDown = "[X]"

// Card represents a playing card. Rank and suit never change once created,
// only the face-up flag does.
type Card struct {
	rank   Rank
	suit   Suit
	faceUp bool
}

// New creates a face-down card
func New(rank Rank, suit Suit) (*Card, error) {
	if !rank.Valid() || !suit.Valid() {
		return nil, fmt.Errorf("card out of range: rank %d, suit %d", int(rank), int(suit))
	}
	return &Card{rank: rank, suit: suit}, nil
}

// MustNew is New for known-good arguments; it panics on an invalid rank or suit
func MustNew(rank Rank, suit Suit) *Card {
	c, err := New(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Card) Rank() Rank   { return c.rank }
func (c *Card) Suit() Suit   { return c.suit }
func (c *Card) Color() Color { return c.suit.Color() }
func (c *Card) FaceUp() bool { return c.faceUp }

// TurnUp shows the card. It is a no-op on a card that is already face-up.
func (c *Card) TurnUp() { c.faceUp = true }

// TurnDown hides the card
func (c *Card) TurnDown() { c.faceUp = false }

// SameIdentity reports whether both cards have the same rank and suit
func (c *Card) SameIdentity(other *Card) bool {
	return other != nil && c.rank == other.rank && c.suit == other.suit
}

// CanStackOn reports whether c may be placed on a tableau column whose top card
// is other. A nil other means an empty column, which only accepts a King.
func (c *Card) CanStackOn(other *Card) bool {
	if other == nil {
		return c.rank == King
	}
	return c.Color() != other.Color() && c.rank+1 == other.rank
}

// CanMoveToFoundation reports whether c may be placed on a foundation whose top
// card is top. A nil top means an empty foundation, which only accepts an Ace.
func (c *Card) CanMoveToFoundation(top *Card) bool {
	if top == nil {
		return c.rank == Ace
	}
	return c.suit == top.suit && c.rank == top.rank+1
}

// Label returns rank and suit symbol regardless of the face-up flag
func (c *Card) Label() string {
	return c.rank.String() + c.suit.Symbol()
}

// Glyph returns the label of a face-up card or the FaceDown placeholder
func (c *Card) Glyph() string {
	if !c.faceUp {
		return FaceDown
	}
	return c.Label()
}

func (c *Card) String() string {
	return c.Glyph()
}

// Parse reads a label such as "10♥", "QS" or "a♣" into a face-down card
func Parse(label string) (*Card, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, fmt.Errorf("empty card label")
	}

	var suit Suit = -1
	var rankPart string
	for i, sym := range suitSymbols {
		if strings.HasSuffix(label, sym) {
			suit = Suit(i)
			rankPart = strings.TrimSuffix(label, sym)
			break
		}
	}
	if suit < 0 {
		letter := strings.ToUpper(label[len(label)-1:])
		for i, l := range suitLetters {
			if l == letter {
				suit = Suit(i)
				rankPart = label[:len(label)-1]
				break
			}
		}
	}
	if suit < 0 {
		return nil, fmt.Errorf("invalid suit in card label: %s", label)
	}

	rankPart = strings.ToUpper(rankPart)
	for r := Ace; r <= King; r++ {
		if rankLabels[r] == rankPart {
			return New(r, suit)
		}
	}
	return nil, fmt.Errorf("invalid rank in card label: %s", label)
}
