package game

// baseValue counts an Ace high; Score downgrades later if needed.
func baseValue(c Card) int {
	switch {
	case c.Rank == 1:
		return 11
	case c.Rank >= 11:
		return 10
	default:
		return c.Rank
	}
}

// Score totals a hand, counting each Ace as 11 and then converting
// Aces to 1 one at a time while the total exceeds 21. The result
// depends only on the multiset of ranks, not on card order.
func Score(cards []Card) int {
	score := 0
	aces := 0

	for _, card := range cards {
		score += baseValue(card)
		if card.Rank == 1 {
			aces++
		}
	}

	for score > 21 && aces > 0 {
		score -= 10
		aces--
	}

	return score
}

func IsBust(cards []Card) bool {
	return Score(cards) > 21
}

// IsNatural reports a two-card 21. Front-ends use it for flavor
// text only; it never changes the round outcome.
func IsNatural(cards []Card) bool {
	return len(cards) == 2 && Score(cards) == 21
}
