package view

import (
	"fmt"
	"strconv"
	"strings"

	"blackjack/internal/game"
)

// Renderer turns a card into display text. Front-ends pick one
// implementation at startup and use it for the whole session.
type Renderer interface {
	Card(c game.Card) string
}

const (
	StyleWords  = "words"
	StyleGlyphs = "glyphs"
)

func ForStyle(style string) (Renderer, error) {
	switch style {
	case StyleWords:
		return Words{}, nil
	case StyleGlyphs:
		return Glyphs{}, nil
	}
	return nil, fmt.Errorf("unknown render style %q", style)
}

// Words renders long form, "Ace of Hearts".
type Words struct{}

func (Words) Card(c game.Card) string {
	var rank string
	switch c.Rank {
	case 1:
		rank = "Ace"
	case 11:
		rank = "Jack"
	case 12:
		rank = "Queen"
	case 13:
		rank = "King"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	return fmt.Sprintf("%s of %s", rank, c.Suit)
}

// Glyphs renders short form with suit symbols, "A of ♥".
type Glyphs struct{}

var suitGlyphs = map[game.Suit]string{
	game.Hearts:   "♥",
	game.Diamonds: "♦",
	game.Spades:   "♠",
	game.Clubs:    "♣",
}

func (Glyphs) Card(c game.Card) string {
	var rank string
	switch c.Rank {
	case 1:
		rank = "A"
	case 11:
		rank = "J"
	case 12:
		rank = "Q"
	case 13:
		rank = "K"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	glyph, ok := suitGlyphs[c.Suit]
	if !ok {
		glyph = "?"
	}

	return fmt.Sprintf("%s of %s", rank, glyph)
}

// Hand renders a full hand, cards joined with ", ".
func Hand(r Renderer, h *game.Hand) string {
	parts := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		parts[i] = r.Card(c)
	}
	return strings.Join(parts, ", ")
}
