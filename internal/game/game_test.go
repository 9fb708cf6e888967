package game

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/u9djfgoj/gigathon-project/internal/card"
	"github.com/u9djfgoj/gigathon-project/internal/pile"
)

// layout describes a table for tests. Card labels are face-up unless prefixed
// with '#'. Foundations are filled from Ace up to the given rank.
type layout struct {
	columns     [NumColumns]string
	waste       string
	stock       string
	foundations map[card.Suit]card.Rank
}

func parseCards(t *testing.T, s string) []*card.Card {
	t.Helper()
	var out []*card.Card
	for _, tok := range strings.Fields(s) {
		hidden := strings.HasPrefix(tok, "#")
		c, err := card.Parse(strings.TrimPrefix(tok, "#"))
		require.NoError(t, err)
		if !hidden {
			c.TurnUp()
		}
		out = append(out, c)
	}
	return out
}

func build(t *testing.T, l layout) *Game {
	t.Helper()
	fresh := empty(slog.New(slog.NewTextHandler(io.Discard, nil)))
	for i, s := range l.columns {
		fresh.columns[i].Push(parseCards(t, s)...)
	}
	for _, c := range parseCards(t, l.waste) {
		fresh.waste.Push(c)
	}
	fresh.stock = pile.NewStock(parseCards(t, l.stock))
	for suit, top := range l.foundations {
		for r := card.Ace; r <= top; r++ {
			fresh.foundations[suit].Push(card.MustNew(r, suit))
		}
	}
	return fresh
}

func glyphs(cards []card.Card) string {
	out := make([]string, len(cards))
	for i := range cards {
		out[i] = cards[i].Glyph()
	}
	return strings.Join(out, " ")
}

func TestNew(t *testing.T) {
	g := New(WithSeed(42))

	for i := 0; i < NumColumns; i++ {
		col := g.Column(i)
		require.Len(t, col, i+1, "column %d", i)
		for j := range col {
			assert.Equal(t, j == i, col[j].FaceUp(), "column %d card %d", i, j)
		}
	}

	assert.Equal(t, 24, g.StockCount())
	for _, c := range g.Snapshot().Stock {
		assert.False(t, c.FaceUp())
	}
	assert.Equal(t, 0, g.WasteCount())
	_, ok := g.WasteTop()
	assert.False(t, ok)
	for _, s := range card.Suits() {
		assert.Equal(t, 0, g.FoundationCount(s))
		_, ok := g.FoundationTop(s)
		assert.False(t, ok)
	}
	assert.False(t, g.IsWon())
	assert.Equal(t, 0, g.Moves())
	assert.Nil(t, g.Column(NumColumns))

	t.Run("same seed deals the same game", func(t *testing.T) {
		a, b := New(WithSeed(9)), New(WithSeed(9))
		assert.Equal(t, a.Snapshot(), b.Snapshot())
		assert.NotEqual(t, a.ID(), b.ID())
	})
}

func TestDraw(t *testing.T) {
	t.Run("draw turns the stock top onto the waste", func(t *testing.T) {
		g := build(t, layout{stock: "#2C #9H"})
		g.Draw()

		top, ok := g.WasteTop()
		require.True(t, ok)
		assert.Equal(t, "9♥", top.Glyph())
		assert.Equal(t, 1, g.StockCount())
		assert.Equal(t, 1, g.Moves())
	})

	t.Run("empty stock recycles the waste in draw order", func(t *testing.T) {
		g := New(WithSeed(3))
		n := g.StockCount()
		for i := 0; i < n; i++ {
			g.Draw()
		}
		firstPass := glyphs(g.Snapshot().Waste)
		require.Equal(t, 0, g.StockCount())

		g.Draw()
		assert.Equal(t, n, g.StockCount())
		assert.Equal(t, 0, g.WasteCount())
		for _, c := range g.Snapshot().Stock {
			assert.False(t, c.FaceUp())
		}

		for i := 0; i < n; i++ {
			g.Draw()
		}
		assert.Equal(t, firstPass, glyphs(g.Snapshot().Waste))
	})

	t.Run("draw with nothing left does nothing", func(t *testing.T) {
		g := build(t, layout{})
		g.Draw()
		assert.Equal(t, 0, g.StockCount())
		assert.Equal(t, 0, g.WasteCount())
	})
}

func TestMoveCardFromWaste(t *testing.T) {
	cases := []struct {
		name   string
		layout layout
		dest   int
		reason Reason
	}{
		{"empty waste", layout{columns: [NumColumns]string{"KS"}}, 0, ReasonEmptySource},
		{"non-king on empty column", layout{waste: "QH"}, 0, ReasonNeedsKing},
		{"same colour", layout{columns: [NumColumns]string{"KS"}, waste: "QC"}, 0, ReasonDoesNotStack},
		{"wrong rank", layout{columns: [NumColumns]string{"KS"}, waste: "JH"}, 0, ReasonDoesNotStack},
		{"destination out of range", layout{waste: "KH"}, NumColumns, ReasonColumnOutOfRange},
		{"negative destination", layout{waste: "KH"}, -1, ReasonColumnOutOfRange},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := build(t, c.layout)
			before := g.Snapshot()

			err := g.MoveCard(FromWaste(), c.dest)
			require.ErrorIs(t, err, ErrIllegalMove)
			var me *MoveError
			require.ErrorAs(t, err, &me)
			assert.Equal(t, c.reason, me.Reason)
			assert.Equal(t, before, g.Snapshot())
			assert.Equal(t, 0, g.Moves())
		})
	}

	t.Run("king onto empty column", func(t *testing.T) {
		g := build(t, layout{waste: "2C KD"})
		require.NoError(t, g.MoveCard(FromWaste(), 3))
		assert.Equal(t, "K♦", glyphs(g.Column(3)))
		top, _ := g.WasteTop()
		assert.Equal(t, "2♣", top.Glyph())
		assert.Equal(t, 1, g.Moves())
	})

	t.Run("stacks on opposite colour", func(t *testing.T) {
		g := build(t, layout{columns: [NumColumns]string{"#4D 8S"}, waste: "7H"})
		require.NoError(t, g.MoveCard(FromWaste(), 0))
		assert.Equal(t, "[X] 8♠ 7♥", glyphs(g.Column(0)))
		assert.Equal(t, 0, g.WasteCount())
	})

	t.Run("relocation keeps foundation eligibility", func(t *testing.T) {
		g := build(t, layout{
			columns:     [NumColumns]string{"3S"},
			waste:       "2H",
			foundations: map[card.Suit]card.Rank{card.Hearts: card.Ace},
		})
		top, _ := g.WasteTop()
		eligible := top.CanMoveToFoundation(card.MustNew(card.Ace, card.Hearts))

		require.NoError(t, g.MoveCard(FromWaste(), 0))
		moved := g.Column(0)[1]
		assert.Equal(t, eligible, moved.CanMoveToFoundation(card.MustNew(card.Ace, card.Hearts)))
		require.NoError(t, g.MoveToFoundation(FromColumn(0, 1)))
		assert.Equal(t, 2, g.FoundationCount(card.Hearts))
	})
}

func TestMoveCardFromColumn(t *testing.T) {
	table := [NumColumns]string{
		"#5C #9D KH QS JD",
		"#2S 10C",
		"",
		"#AH QC",
		"KC QD JS 9H",
		"#3D",
	}

	cases := []struct {
		name   string
		src    Source
		dest   int
		reason Reason
	}{
		{"face-down card", FromColumn(0, 1), 2, ReasonFaceDown},
		{"index past the top", FromColumn(0, 5), 2, ReasonIndexOutOfRange},
		{"negative index", FromColumn(0, -1), 2, ReasonIndexOutOfRange},
		{"source column out of range", FromColumn(7, 0), 2, ReasonColumnOutOfRange},
		{"destination out of range", FromColumn(0, 2), 9, ReasonColumnOutOfRange},
		{"same column", FromColumn(0, 2), 0, ReasonSameColumn},
		{"empty source column", FromColumn(2, 0), 1, ReasonIndexOutOfRange},
		{"non-king to empty column", FromColumn(0, 3), 2, ReasonNeedsKing},
		{"does not stack", FromColumn(0, 4), 1, ReasonDoesNotStack},
		{"broken run", FromColumn(4, 1), 1, ReasonBrokenRun},
		{"hidden top is still face-down", FromColumn(5, 0), 2, ReasonFaceDown},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := build(t, layout{columns: table})
			before := g.Snapshot()

			err := g.MoveCard(c.src, c.dest)
			require.ErrorIs(t, err, ErrIllegalMove)
			var me *MoveError
			require.ErrorAs(t, err, &me)
			assert.Equal(t, c.reason, me.Reason)
			assert.Equal(t, before, g.Snapshot(), "rejected move must not change the table")
		})
	}

	t.Run("king run to empty column reveals the card beneath", func(t *testing.T) {
		g := build(t, layout{columns: table})
		require.NoError(t, g.MoveCard(FromColumn(0, 2), 2))

		assert.Equal(t, "K♥ Q♠ J♦", glyphs(g.Column(2)))
		assert.Equal(t, "[X] 9♦", glyphs(g.Column(0)))
	})

	t.Run("single card onto opposite colour", func(t *testing.T) {
		g := build(t, layout{columns: table})
		require.NoError(t, g.MoveCard(FromColumn(1, 1), 0))

		assert.Equal(t, "[X] [X] K♥ Q♠ J♦ 10♣", glyphs(g.Column(0)))
		assert.Equal(t, "2♠", glyphs(g.Column(1)))
	})

	t.Run("run from the middle onto a king", func(t *testing.T) {
		g := build(t, layout{columns: [NumColumns]string{"KH QS JD", "#4C KD"}})
		require.NoError(t, g.MoveCard(FromColumn(0, 1), 1))
		assert.Equal(t, "K♥", glyphs(g.Column(0)))
		assert.Equal(t, "[X] K♦ Q♠ J♦", glyphs(g.Column(1)))
	})
}

func TestMoveToFoundation(t *testing.T) {
	t.Run("two of hearts onto empty foundation fails", func(t *testing.T) {
		g := build(t, layout{waste: "2H", columns: [NumColumns]string{"2H"}})

		err := g.MoveToFoundation(FromWaste())
		require.ErrorIs(t, err, ErrIllegalMove)
		err = g.MoveToFoundation(FromColumn(0, 0))
		require.ErrorIs(t, err, ErrIllegalMove)

		assert.Equal(t, 0, g.FoundationCount(card.Hearts))
		assert.Equal(t, 1, g.WasteCount())
	})

	t.Run("ace from waste", func(t *testing.T) {
		g := build(t, layout{waste: "5C AS"})
		require.NoError(t, g.MoveToFoundation(FromWaste()))

		top, ok := g.FoundationTop(card.Spades)
		require.True(t, ok)
		assert.Equal(t, "A♠", top.Glyph())
		w, _ := g.WasteTop()
		assert.Equal(t, "5♣", w.Glyph())
	})

	t.Run("empty waste", func(t *testing.T) {
		g := build(t, layout{})
		var me *MoveError
		require.ErrorAs(t, g.MoveToFoundation(FromWaste()), &me)
		assert.Equal(t, ReasonEmptySource, me.Reason)
	})

	t.Run("column top reveals the next card", func(t *testing.T) {
		g := build(t, layout{
			columns:     [NumColumns]string{"#7C #3D 4H"},
			foundations: map[card.Suit]card.Rank{card.Hearts: card.Three},
		})
		require.NoError(t, g.MoveToFoundation(FromColumn(0, 2)))
		assert.Equal(t, "[X] 3♦", glyphs(g.Column(0)))
		assert.Equal(t, 4, g.FoundationCount(card.Hearts))
	})

	cases := []struct {
		name   string
		src    Source
		reason Reason
	}{
		{"not the top card", FromColumn(0, 1), ReasonNotTopCard},
		{"index out of range", FromColumn(0, 3), ReasonIndexOutOfRange},
		{"column out of range", FromColumn(-1, 0), ReasonColumnOutOfRange},
		{"wrong rank", FromColumn(1, 0), ReasonFoundationInvalid},
		{"face-down top", FromColumn(2, 0), ReasonFaceDown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := build(t, layout{
				columns:     [NumColumns]string{"5S AD 9C", "3C", "#AC"},
				foundations: map[card.Suit]card.Rank{card.Clubs: card.Ace},
			})
			before := g.Snapshot()
			var me *MoveError
			require.ErrorAs(t, g.MoveToFoundation(c.src), &me)
			assert.Equal(t, c.reason, me.Reason)
			assert.Equal(t, before, g.Snapshot())
		})
	}
}

func TestAutoFoundation(t *testing.T) {
	g := build(t, layout{
		columns: [NumColumns]string{"#9S 2H", "AH", "3H 2S"},
		waste:   "AS",
	})

	moved := g.AutoFoundation()
	assert.Equal(t, 5, moved)
	assert.Equal(t, 3, g.FoundationCount(card.Hearts))
	assert.Equal(t, 2, g.FoundationCount(card.Spades))
	assert.Equal(t, "9♠", glyphs(g.Column(0)))
	assert.Equal(t, 0, g.AutoFoundation())
}

func TestIsWon(t *testing.T) {
	g := build(t, layout{
		columns: [NumColumns]string{"KH", "KD", "KS"},
		waste:   "KC",
		foundations: map[card.Suit]card.Rank{
			card.Hearts: card.Queen, card.Diamonds: card.Queen,
			card.Spades: card.Queen, card.Clubs: card.Queen,
		},
	})

	for i := 0; i < 3; i++ {
		assert.False(t, g.IsWon())
		require.NoError(t, g.MoveToFoundation(FromColumn(i, 0)))
	}
	assert.False(t, g.IsWon())
	require.NoError(t, g.MoveToFoundation(FromWaste()))
	assert.True(t, g.IsWon())

	g.Draw()
	assert.True(t, g.IsWon(), "the engine does not lock play after a win")
}
