package cli

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"blackjack/internal/database"
	"blackjack/internal/game"
	"blackjack/internal/stats"
	"blackjack/internal/view"
)

func newTestUI(t *testing.T, input string) (*UI, *bytes.Buffer) {
	t.Helper()
	db, err := database.New(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	out := &bytes.Buffer{}
	rng := rand.New(rand.NewSource(1))
	return New(strings.NewReader(input), out, view.Glyphs{}, rng, stats.NewRepository(db.DB)), out
}

func TestNextDecisionParsing(t *testing.T) {
	tests := []struct {
		input string
		want  game.Decision
	}{
		{"h", game.DecisionHit},
		{"hit", game.DecisionHit},
		{"HIT", game.DecisionHit},
		{"s", game.DecisionStand},
		{"stand", game.DecisionStand},
		{"  s  ", game.DecisionStand},
		{"x", game.Decision("x")},
		{"", game.Decision("")},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			ui, _ := newTestUI(t, tt.input+"\n")
			if got := ui.NextDecision(); got != tt.want {
				t.Errorf("NextDecision(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNextDecisionOnClosedInput(t *testing.T) {
	ui, _ := newTestUI(t, "")
	if got := ui.NextDecision(); got != game.DecisionStand {
		t.Errorf("NextDecision at EOF = %q, want stand", got)
	}
}

func TestPlayAgain(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"whatever\n", false},
		{"", false},
	}

	for _, tt := range tests {
		ui, _ := newTestUI(t, tt.input)
		if got := ui.playAgain(); got != tt.want {
			t.Errorf("playAgain(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestResultText(t *testing.T) {
	natural := game.NewHand()
	natural.Add(game.Card{Rank: 1, Suit: game.Spades})
	natural.Add(game.Card{Rank: 13, Suit: game.Hearts})

	plain := game.NewHand()
	plain.Add(game.Card{Rank: 10, Suit: game.Spades})
	plain.Add(game.Card{Rank: 9, Suit: game.Hearts})

	tests := []struct {
		name    string
		outcome game.Outcome
		hand    *game.Hand
		want    string
	}{
		{"player bust", game.OutcomePlayerBust, plain, "Player busts! Dealer wins."},
		{"dealer bust", game.OutcomeDealerBust, plain, "Dealer busts! Player wins."},
		{"player win", game.OutcomePlayerWin, plain, "Player wins!"},
		{"natural win", game.OutcomePlayerWin, natural, "Blackjack! Player wins!"},
		{"dealer win", game.OutcomeDealerWin, plain, "Dealer wins!"},
		{"tie", game.OutcomeTie, plain, "It's a tie!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resultText(tt.outcome, tt.hand); got != tt.want {
				t.Errorf("resultText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestObserverOutput(t *testing.T) {
	ui, out := newTestUI(t, "")

	hand := game.NewHand()
	hand.Add(game.Card{Rank: 1, Suit: game.Spades})
	hand.Add(game.Card{Rank: 7, Suit: game.Hearts})

	ui.PlayerTurn(hand)
	got := out.String()
	if !strings.Contains(got, "Player's hand total: 18") {
		t.Errorf("missing total in %q", got)
	}
	if !strings.Contains(got, "A of ♠, 7 of ♥") {
		t.Errorf("missing rendered hand in %q", got)
	}
}

// One full session: stand immediately, decline a second round.
func TestRunSingleRound(t *testing.T) {
	ui, out := newTestUI(t, "s\nn\n")
	ui.Run()

	transcript := out.String()
	for _, want := range []string{
		"Dealing a new round...",
		"Do you want to (h)it or (s)tand?",
		"Dealer's hand total:",
		"Do you want to play again? (y/n):",
		"over 1 rounds",
	} {
		if !strings.Contains(transcript, want) {
			t.Errorf("transcript missing %q:\n%s", want, transcript)
		}
	}

	tally, err := ui.tallies.Summary(PlayerKey)
	if err != nil {
		t.Fatal(err)
	}
	if tally.Rounds != 1 {
		t.Errorf("recorded %d rounds, want 1", tally.Rounds)
	}
}
