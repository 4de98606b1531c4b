package game

type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Spades
	Clubs
)

var suitNames = []string{"Hearts", "Diamonds", "Spades", "Clubs"}

func (s Suit) String() string {
	if s < Hearts || s > Clubs {
		return "?"
	}
	return suitNames[s]
}

// Card is an immutable rank/suit pair. Rank 1 is the Ace,
// 11-13 are Jack, Queen and King, 2-10 count face value.
type Card struct {
	Rank int
	Suit Suit
}
