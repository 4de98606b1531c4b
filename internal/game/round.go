package game

import "math/rand"

// Decision is a player command. Sources may pass raw input through;
// the round validates it and re-asks on anything it does not know.
type Decision string

const (
	DecisionHit   Decision = "hit"
	DecisionStand Decision = "stand"
)

type Outcome int

const (
	OutcomePlayerBust Outcome = iota
	OutcomeDealerBust
	OutcomePlayerWin
	OutcomeDealerWin
	OutcomeTie
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayerBust:
		return "player bust"
	case OutcomeDealerBust:
		return "dealer bust"
	case OutcomePlayerWin:
		return "player win"
	case OutcomeDealerWin:
		return "dealer win"
	case OutcomeTie:
		return "tie"
	}
	return "unknown"
}

// DecisionSource supplies the player's next decision. It blocks until
// one is available; the round has no timeout and no cancellation.
type DecisionSource interface {
	NextDecision() Decision
}

// Observer is the presentation sink. The round reports every
// intermediate hand state through it; whether a front-end displays
// all of them is its own business.
type Observer interface {
	HandsDealt(player, dealer *Hand)
	PlayerTurn(player *Hand)
	InvalidDecision(input Decision)
	DealerDrew(dealer *Hand)
	Resolved(outcome Outcome, player, dealer *Hand)
}

const dealerStand = 17

type roundState int

const (
	stateSetup roundState = iota
	statePlayerTurn
	stateDealerTurn
	stateResolved
)

// Round runs one game of player versus dealer. It owns its deck and
// both hands; nothing carries over between rounds, so drivers build
// a fresh Round per play.
type Round struct {
	deck   *Deck
	player *Hand
	dealer *Hand
	state  roundState
	src    DecisionSource
	obs    Observer
}

func NewRound(rng *rand.Rand, src DecisionSource, obs Observer) *Round {
	deck := NewDeck()
	deck.Shuffle(rng)
	return newRound(deck, src, obs)
}

func newRound(deck *Deck, src DecisionSource, obs Observer) *Round {
	return &Round{
		deck:   deck,
		player: NewHand(),
		dealer: NewHand(),
		state:  stateSetup,
		src:    src,
		obs:    obs,
	}
}

// Play drives the round Setup → PlayerTurn → DealerTurn → Resolved
// and returns the terminal outcome. The dealer never acts after a
// player bust, and resolution is reached exactly once.
func (r *Round) Play() Outcome {
	if r.state != stateSetup {
		panic("game: round already played")
	}

	r.dealInitial()

	r.state = statePlayerTurn
	if r.playerTurn() {
		r.state = stateDealerTurn
		r.dealerTurn()
	}

	r.state = stateResolved
	outcome := r.resolve()
	r.obs.Resolved(outcome, r.player, r.dealer)
	return outcome
}

// two cards each, dealer first, alternating
func (r *Round) dealInitial() {
	for i := 0; i < 2; i++ {
		r.dealer.Add(r.deck.Deal())
		r.player.Add(r.deck.Deal())
	}
	r.obs.HandsDealt(r.player, r.dealer)
}

// playerTurn loops until the player stands (true) or busts (false).
// Invalid decisions are reported and retried without touching the hand.
func (r *Round) playerTurn() bool {
	for {
		r.obs.PlayerTurn(r.player)

		switch input := r.src.NextDecision(); input {
		case DecisionHit:
			r.player.Add(r.deck.Deal())
			if r.player.IsBust() {
				return false
			}
		case DecisionStand:
			return true
		default:
			r.obs.InvalidDecision(input)
		}
	}
}

func (r *Round) dealerTurn() {
	for r.dealer.Score() < dealerStand {
		r.dealer.Add(r.deck.Deal())
		r.obs.DealerDrew(r.dealer)
	}
}

func (r *Round) resolve() Outcome {
	playerScore := r.player.Score()
	dealerScore := r.dealer.Score()

	switch {
	case playerScore > 21:
		return OutcomePlayerBust
	case dealerScore > 21:
		return OutcomeDealerBust
	case playerScore > dealerScore:
		return OutcomePlayerWin
	case dealerScore > playerScore:
		return OutcomeDealerWin
	default:
		return OutcomeTie
	}
}
