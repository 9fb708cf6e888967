// Package game implements the Klondike rules engine. A Game owns every pile on
// the table and is the only thing that moves cards between them.
package game

import (
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/u9djfgoj/gigathon-project/internal/card"
	"github.com/u9djfgoj/gigathon-project/internal/deck"
	"github.com/u9djfgoj/gigathon-project/internal/pile"
)

// NumColumns is the number of tableau columns
const NumColumns = 7

const (
	opMove       = "move"
	opFoundation = "foundation"
)

// Game is a single deal of Klondike. It is not safe for concurrent use.
type Game struct {
	id          uuid.UUID
	columns     [NumColumns]*pile.Column
	foundations [4]*pile.Foundation
	stock       *pile.Stock
	waste       *pile.Waste
	moves       int
	log         *slog.Logger
}

type options struct {
	rng    *rand.Rand
	logger *slog.Logger
}

// Option configures a new Game
type Option func(*options)

// WithRand shuffles the deck with rng
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithSeed makes the deal reproducible
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// WithLogger sets the logger move decisions are written to
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New shuffles a fresh deck and deals a new game: column i gets i+1 cards with
// only the last one face-up, the remaining 24 cards form the stock.
func New(opts ...Option) *Game {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	d := deck.New()
	d.Shuffle(o.rng)

	g := empty(o.logger)
	for i := 0; i < NumColumns; i++ {
		for j := 0; j <= i; j++ {
			c, _ := d.Deal()
			if j == i {
				c.TurnUp()
			}
			g.columns[i].Push(c)
		}
	}

	// Deck order is kept: the deck's top card becomes the stock's top card.
	g.stock = pile.NewStock(d.Cards())

	g.log.Debug("new game dealt", "game", g.id.String(), "stock", g.stock.Len())
	return g
}

func empty(logger *slog.Logger) *Game {
	g := &Game{
		id:    uuid.New(),
		stock: pile.NewStock(nil),
		waste: &pile.Waste{},
		log:   logger,
	}
	for i := range g.columns {
		g.columns[i] = &pile.Column{}
	}
	for _, s := range card.Suits() {
		g.foundations[s] = pile.NewFoundation(s)
	}
	return g
}

// ID identifies this deal in logs
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Draw turns the top stock card onto the waste. When the stock is empty the
// whole waste is turned back over to form a new stock. It never fails.
func (g *Game) Draw() {
	g.moves++
	if c := g.stock.Draw(); c != nil {
		g.waste.Push(c)
		g.log.Debug("drew card", "game", g.id.String(), "card", c.Label(), "stock", g.stock.Len())
		return
	}
	g.stock.Refill(g.waste.TakeAll())
	g.log.Debug("recycled waste", "game", g.id.String(), "stock", g.stock.Len())
}

// MoveCard moves the waste top, or a column's cards from the source index up,
// onto column dest. A rejected move returns an error wrapping ErrIllegalMove
// and leaves every pile untouched.
func (g *Game) MoveCard(src Source, dest int) error {
	err := g.moveCard(src, dest)
	g.record(opMove, src, err, "dest", dest)
	return err
}

func (g *Game) moveCard(src Source, dest int) error {
	if dest < 0 || dest >= NumColumns {
		return reject(opMove, src, ReasonColumnOutOfRange)
	}
	target := g.columns[dest]

	if src.IsWaste() {
		c := g.waste.Top()
		if c == nil {
			return reject(opMove, src, ReasonEmptySource)
		}
		if err := checkStack(src, c, target.Top()); err != nil {
			return err
		}
		g.waste.Pop()
		c.TurnUp()
		target.Push(c)
		return nil
	}

	if src.Column() < 0 || src.Column() >= NumColumns {
		return reject(opMove, src, ReasonColumnOutOfRange)
	}
	if src.Column() == dest {
		return reject(opMove, src, ReasonSameColumn)
	}
	from := g.columns[src.Column()]
	first := from.At(src.Index())
	if first == nil {
		return reject(opMove, src, ReasonIndexOutOfRange)
	}
	if !first.FaceUp() {
		return reject(opMove, src, ReasonFaceDown)
	}
	if !from.IsRun(src.Index()) {
		return reject(opMove, src, ReasonBrokenRun)
	}
	if err := checkStack(src, first, target.Top()); err != nil {
		return err
	}

	target.Push(from.Split(src.Index())...)
	from.RevealTop()
	return nil
}

func checkStack(src Source, c, top *card.Card) error {
	if top == nil && c.Rank() != card.King {
		return reject(opMove, src, ReasonNeedsKing)
	}
	if !c.CanStackOn(top) {
		return reject(opMove, src, ReasonDoesNotStack)
	}
	return nil
}

// MoveToFoundation moves a single card onto the foundation of its suit. From a
// column the index must name the column's top card.
func (g *Game) MoveToFoundation(src Source) error {
	err := g.moveToFoundation(src)
	g.record(opFoundation, src, err)
	return err
}

func (g *Game) moveToFoundation(src Source) error {
	if src.IsWaste() {
		c := g.waste.Top()
		if c == nil {
			return reject(opFoundation, src, ReasonEmptySource)
		}
		f := g.foundations[c.Suit()]
		if !f.Accepts(c) {
			return reject(opFoundation, src, ReasonFoundationInvalid)
		}
		f.Push(g.waste.Pop())
		return nil
	}

	if src.Column() < 0 || src.Column() >= NumColumns {
		return reject(opFoundation, src, ReasonColumnOutOfRange)
	}
	from := g.columns[src.Column()]
	c := from.At(src.Index())
	if c == nil {
		return reject(opFoundation, src, ReasonIndexOutOfRange)
	}
	if src.Index() != from.Len()-1 {
		return reject(opFoundation, src, ReasonNotTopCard)
	}
	if !c.FaceUp() {
		return reject(opFoundation, src, ReasonFaceDown)
	}
	f := g.foundations[c.Suit()]
	if !f.Accepts(c) {
		return reject(opFoundation, src, ReasonFoundationInvalid)
	}

	f.Push(from.RemoveAt(src.Index()))
	from.RevealTop()
	return nil
}

// AutoFoundation keeps moving the waste top and column tops onto the
// foundations until none fits, and returns how many cards moved.
func (g *Game) AutoFoundation() int {
	moved := 0
	for {
		progress := false
		if g.waste.Len() > 0 && g.MoveToFoundation(FromWaste()) == nil {
			moved++
			progress = true
		}
		for i, col := range g.columns {
			if col.Len() == 0 {
				continue
			}
			if g.MoveToFoundation(FromColumn(i, col.Len()-1)) == nil {
				moved++
				progress = true
			}
		}
		if !progress {
			return moved
		}
	}
}

// IsWon reports whether every foundation holds Ace through King
func (g *Game) IsWon() bool {
	for _, f := range g.foundations {
		if !f.Complete() {
			return false
		}
	}
	return true
}

func (g *Game) record(op string, src Source, err error, attrs ...any) {
	attrs = append([]any{"game", g.id.String(), "op", op, "source", src.String()}, attrs...)
	if err != nil {
		var me *MoveError
		if errors.As(err, &me) {
			attrs = append(attrs, "reason", string(me.Reason))
		}
		g.log.Debug("move rejected", attrs...)
		return
	}
	g.moves++
	g.log.Debug("move applied", attrs...)
}
