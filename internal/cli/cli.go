package cli

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math/rand"
	"strings"

	"blackjack/internal/game"
	"blackjack/internal/stats"
	"blackjack/internal/view"
)

// PlayerKey identifies the terminal player in the stats store.
const PlayerKey = "local"

// UI plays rounds over a terminal. It doubles as the round's
// decision source and presentation sink.
type UI struct {
	in      *bufio.Scanner
	out     io.Writer
	render  view.Renderer
	rng     *rand.Rand
	tallies stats.Repository
}

func New(in io.Reader, out io.Writer, render view.Renderer, rng *rand.Rand, tallies stats.Repository) *UI {
	return &UI{
		in:      bufio.NewScanner(in),
		out:     out,
		render:  render,
		rng:     rng,
		tallies: tallies,
	}
}

// Run plays rounds until the player declines another, then prints
// the session tally.
func (u *UI) Run() {
	for {
		outcome := game.NewRound(u.rng, u, u).Play()

		if err := u.tallies.Record(PlayerKey, outcome); err != nil {
			log.Printf("Failed to record outcome: %v", err)
		}

		if !u.playAgain() {
			break
		}
	}

	if tally, err := u.tallies.Summary(PlayerKey); err == nil && tally.Rounds > 0 {
		fmt.Fprintf(u.out, "\nSession: %d wins, %d losses, %d ties over %d rounds\n",
			tally.Wins, tally.Losses, tally.Ties, tally.Rounds)
	}
}

// NextDecision prompts and reads one command. Unknown input is
// passed through as-is; the round rejects it and asks again.
func (u *UI) NextDecision() game.Decision {
	fmt.Fprintln(u.out, "Do you want to (h)it or (s)tand?")

	line, ok := u.readLine()
	if !ok {
		// stdin is gone, stand so the round can finish
		return game.DecisionStand
	}

	switch strings.ToLower(line) {
	case "h", "hit":
		return game.DecisionHit
	case "s", "stand":
		return game.DecisionStand
	}
	return game.Decision(line)
}

func (u *UI) HandsDealt(player, dealer *game.Hand) {
	fmt.Fprintln(u.out, "\nDealing a new round...")
}

func (u *UI) PlayerTurn(player *game.Hand) {
	fmt.Fprintf(u.out, "Player's hand total: %d\n", player.Score())
	fmt.Fprintf(u.out, "Hand: %s\n", view.Hand(u.render, player))
}

func (u *UI) InvalidDecision(input game.Decision) {
	fmt.Fprintln(u.out, "Invalid choice, please enter 'h' or 's'.")
}

func (u *UI) DealerDrew(dealer *game.Hand) {
	fmt.Fprintf(u.out, "Dealer hits: %s (%d)\n", view.Hand(u.render, dealer), dealer.Score())
}

func (u *UI) Resolved(outcome game.Outcome, player, dealer *game.Hand) {
	fmt.Fprintf(u.out, "Dealer's hand total: %d\n", dealer.Score())
	fmt.Fprintf(u.out, "Hand: %s\n", view.Hand(u.render, dealer))
	fmt.Fprintf(u.out, "Player's hand total: %d\n", player.Score())
	fmt.Fprintf(u.out, "Hand: %s\n", view.Hand(u.render, player))
	fmt.Fprintln(u.out, resultText(outcome, player))
}

func resultText(outcome game.Outcome, player *game.Hand) string {
	switch outcome {
	case game.OutcomePlayerBust:
		return "Player busts! Dealer wins."
	case game.OutcomeDealerBust:
		return "Dealer busts! Player wins."
	case game.OutcomePlayerWin:
		if game.IsNatural(player.Cards) {
			return "Blackjack! Player wins!"
		}
		return "Player wins!"
	case game.OutcomeDealerWin:
		return "Dealer wins!"
	}
	return "It's a tie!"
}

func (u *UI) playAgain() bool {
	fmt.Fprint(u.out, "\nDo you want to play again? (y/n): ")

	line, ok := u.readLine()
	return ok && strings.ToLower(line) == "y"
}

func (u *UI) readLine() (string, bool) {
	if !u.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(u.in.Text()), true
}
