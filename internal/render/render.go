// Package render formats cards for the terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/config"
	"github.com/arcanaland/deckhand/internal/deck"
)

// DefaultWidth is used when the terminal width cannot be determined
const DefaultWidth = 80

// Base colours for truecolor output. Ranks are shaded from these toward white.
var suitBase = map[card.Suit]colorful.Color{
	card.Spades:   {R: 0.55, G: 0.60, B: 0.75},
	card.Clubs:    {R: 0.15, G: 0.60, B: 0.25},
	card.Hearts:   {R: 0.80, G: 0.15, B: 0.20},
	card.Diamonds: {R: 0.85, G: 0.55, B: 0.10},
}

var suitAttr = map[card.Suit]colorize.Attribute{
	card.Spades:   colorize.FgHiWhite,
	card.Clubs:    colorize.FgGreen,
	card.Hearts:   colorize.FgRed,
	card.Diamonds: colorize.FgYellow,
}

var suitSymbol = map[card.Suit]string{
	card.Spades:   "♠",
	card.Clubs:    "♣",
	card.Hearts:   "♥",
	card.Diamonds: "♦",
}

// Renderer writes cards to out
type Renderer struct {
	out       io.Writer
	mode      string
	trueColor bool
	width     int
}

// New creates a renderer using the colour settings from cfg
func New(out io.Writer, cfg *config.Config, width int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Renderer{
		out:       out,
		mode:      cfg.Color,
		trueColor: cfg.TrueColor,
		width:     width,
	}
}

// TerminalWidth returns the width of f, or DefaultWidth if f is not a terminal
func TerminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

func (r *Renderer) colored() bool {
	switch r.mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return !colorize.NoColor
	}
}

// Symbol returns the suit symbol for c, or "•" for an unknown suit
func Symbol(c card.Card) string {
	if s, ok := suitSymbol[c.Suit()]; ok {
		return s
	}
	return "•"
}

// Card returns c with its suit symbol, coloured by suit when enabled
func (r *Renderer) Card(c card.Card) string {
	label := Symbol(c) + " " + string(c)
	if !r.colored() {
		return label
	}

	suit := c.Suit()
	if r.trueColor {
		if base, ok := suitBase[suit]; ok {
			return ansiColorString(label, shade(base, c.Rank()))
		}
		return label
	}

	attr, ok := suitAttr[suit]
	if !ok {
		return label
	}
	col := colorize.New(attr)
	col.EnableColor()
	return col.Sprint(label)
}

// Label returns s in the heading colour when colour is enabled
func (r *Renderer) Label(s string) string {
	if !r.colored() {
		return s
	}
	col := colorize.New(colorize.FgCyan)
	col.EnableColor()
	return col.Sprint(s)
}

// shade lightens base by rank so low cards are darker than court cards
func shade(base colorful.Color, rank card.Rank) colorful.Color {
	idx := slices.Index(card.Ranks(), rank)
	if idx <= 0 {
		return base
	}
	t := float64(idx) / float64(len(card.Ranks())*2)
	return base.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, t).Clamped()
}

// ansiColorString wraps s in a 24-bit foreground colour escape
func ansiColorString(s string, c colorful.Color) string {
	red, green, blue := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", red, green, blue, s)
}

// List writes one card per line
func (r *Renderer) List(d deck.Deck) {
	for _, c := range d {
		fmt.Fprintln(r.out, r.Card(c))
	}
}

// Columns writes the deck in as many columns as fit the width, filling each
// row left to right
func (r *Renderer) Columns(d deck.Deck) {
	if len(d) == 0 {
		return
	}

	cell := 0
	for _, c := range d {
		cell = max(cell, visibleWidth(c))
	}
	cell += 2

	cols := max(1, r.width/cell)
	var line strings.Builder
	for i, c := range d {
		line.WriteString(r.Card(c))
		last := i == len(d)-1 || (i+1)%cols == 0
		if last {
			fmt.Fprintln(r.out, line.String())
			line.Reset()
			continue
		}
		line.WriteString(strings.Repeat(" ", cell-visibleWidth(c)))
	}
}

// visibleWidth is the printed width of a card label without escapes
func visibleWidth(c card.Card) int {
	return len([]rune(Symbol(c) + " " + string(c)))
}
