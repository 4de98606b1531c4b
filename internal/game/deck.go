package game

import "math/rand"

type Deck struct {
	cards []Card
}

// NewDeck returns the 52 rank/suit combinations in fixed order.
// Callers shuffle before dealing.
func NewDeck() *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
	}

	for s := Hearts; s <= Clubs; s++ {
		for rank := 1; rank <= 13; rank++ {
			d.cards = append(d.cards, Card{Rank: rank, Suit: s})
		}
	}

	return d
}

func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card. A two-party round deals at
// most 23 cards, so an empty deck means a broken invariant, not a
// reachable game state; Deal panics rather than pretending to recover.
func (d *Deck) Deal() Card {
	if len(d.cards) == 0 {
		panic("game: deal from empty deck")
	}

	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}
