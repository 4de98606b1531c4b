package game

// Hand holds one party's cards for a single round. It only ever
// grows; the total is recomputed on demand so it can never go stale.
type Hand struct {
	Cards []Card
}

func NewHand() *Hand {
	return &Hand{
		Cards: make([]Card, 0, 10),
	}
}

func (h *Hand) Add(card Card) {
	h.Cards = append(h.Cards, card)
}

func (h *Hand) Score() int {
	return Score(h.Cards)
}

func (h *Hand) IsBust() bool {
	return IsBust(h.Cards)
}
