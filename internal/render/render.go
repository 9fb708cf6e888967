// Package render draws a game as text for a terminal.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/u9djfgoj/gigathon-project/internal/card"
	"github.com/u9djfgoj/gigathon-project/internal/game"
)

const (
	minCellWidth = 5
	maxCellWidth = 8
	clearScreen  = "\033[H\033[2J"
)

// Options controls how the table is drawn
type Options struct {
	Color      bool
	ASCII      bool
	Clear      bool
	RedColor   string
	BlackColor string
	// Width is the terminal width in columns, 0 if unknown
	Width int
}

// Renderer draws a game's piles
type Renderer struct {
	opts  Options
	red   *color.Color
	black *color.Color
	dim   *color.Color
	title *color.Color
	cell  int
}

// New builds a renderer. The suit colours are hex strings such as "#e0443e".
func New(opts Options) (*Renderer, error) {
	red, err := hexColor(opts.RedColor)
	if err != nil {
		return nil, fmt.Errorf("red colour: %w", err)
	}
	black, err := hexColor(opts.BlackColor)
	if err != nil {
		return nil, fmt.Errorf("black colour: %w", err)
	}

	r := &Renderer{
		opts:  opts,
		red:   red,
		black: black,
		dim:   color.New(color.Faint),
		title: color.New(color.FgCyan, color.Bold),
		cell:  cellWidth(opts.Width),
	}
	for _, c := range []*color.Color{r.red, r.black, r.dim, r.title} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r, nil
}

// Terminal reports whether fd is a terminal and its width, 0 when unknown
func Terminal(fd int) (bool, int) {
	if !term.IsTerminal(fd) {
		return false, 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return true, 0
	}
	return true, width
}

func hexColor(hex string) (*color.Color, error) {
	if hex == "" {
		return color.New(color.Reset), nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, err
	}
	r, g, b := c.RGB255()
	return color.RGB(int(r), int(g), int(b)), nil
}

func cellWidth(width int) int {
	if width <= 0 {
		return 6
	}
	w := width / game.NumColumns
	if w < minCellWidth {
		return minCellWidth
	}
	if w > maxCellWidth {
		return maxCellWidth
	}
	return w
}

// Label returns the plain text for a card: rank and suit, or the face-down
// placeholder.
func (r *Renderer) Label(c card.Card) string {
	if !c.FaceUp() {
		return card.FaceDown
	}
	if r.opts.ASCII {
		return c.Rank().String() + c.Suit().ASCII()
	}
	return c.Label()
}

// Card returns a card's label padded to width and coloured by suit
func (r *Renderer) Card(c card.Card, width int) string {
	text := pad(r.Label(c), width)
	switch {
	case !c.FaceUp():
		return r.dim.Sprint(text)
	case c.Color() == card.Red:
		return r.red.Sprint(text)
	default:
		return r.black.Sprint(text)
	}
}

func (r *Renderer) suit(s card.Suit) string {
	if r.opts.ASCII {
		return s.ASCII()
	}
	return s.Symbol()
}

// Render writes the whole table to w
func (r *Renderer) Render(w io.Writer, g *game.Game) error {
	var b strings.Builder
	if r.opts.Clear {
		b.WriteString(clearScreen)
	}

	b.WriteString(r.title.Sprint("=== SOLITAIRE ==="))
	fmt.Fprintf(&b, "  moves: %d\n\n", g.Moves())

	b.WriteString("Foundations: ")
	for _, s := range card.Suits() {
		if top, ok := g.FoundationTop(s); ok {
			b.WriteString(r.Card(top, 0))
		} else {
			b.WriteString(r.dim.Sprintf("[%s]", r.suit(s)))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Stock: [%d]  Waste: ", g.StockCount())
	if top, ok := g.WasteTop(); ok {
		b.WriteString(r.Card(top, 0))
	} else {
		b.WriteString(r.dim.Sprint("[ ]"))
	}
	b.WriteString("\n\n")

	columns := make([][]card.Card, game.NumColumns)
	height := 0
	for i := range columns {
		columns[i] = g.Column(i)
		if len(columns[i]) > height {
			height = len(columns[i])
		}
	}

	b.WriteString("Columns:\n")
	for i := range columns {
		b.WriteString(pad(fmt.Sprintf("  %d", i), r.cell))
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", r.cell*game.NumColumns))
	b.WriteString("\n")

	for row := 0; row < height; row++ {
		for _, col := range columns {
			if row < len(col) {
				b.WriteString(r.Card(col[row], r.cell))
			} else {
				b.WriteString(strings.Repeat(" ", r.cell))
			}
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// pad right-pads s with spaces to width visible characters
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
