package stats

import (
	"testing"

	"blackjack/internal/database"
	"blackjack/internal/game"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := database.New(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.DB)
}

func TestRecordAndSummary(t *testing.T) {
	repo := newTestRepo(t)

	outcomes := []game.Outcome{
		game.OutcomePlayerWin,
		game.OutcomeDealerBust,
		game.OutcomeDealerWin,
		game.OutcomePlayerBust,
		game.OutcomeTie,
	}
	for _, o := range outcomes {
		if err := repo.Record("local", o); err != nil {
			t.Fatalf("Record(%v): %v", o, err)
		}
	}

	tally, err := repo.Summary("local")
	if err != nil {
		t.Fatal(err)
	}
	if tally.Wins != 2 || tally.Losses != 2 || tally.Ties != 1 || tally.Rounds != 5 {
		t.Errorf("tally = %+v, want 2/2/1 over 5 rounds", tally)
	}
	if tally.WinRate() != 40 {
		t.Errorf("WinRate() = %v, want 40", tally.WinRate())
	}
}

func TestSummaryUnknownPlayer(t *testing.T) {
	repo := newTestRepo(t)

	tally, err := repo.Summary("nobody")
	if err != nil {
		t.Fatal(err)
	}
	if tally.Rounds != 0 {
		t.Errorf("fresh player has %d rounds", tally.Rounds)
	}
}

func TestTopByWins(t *testing.T) {
	repo := newTestRepo(t)

	for i := 0; i < 3; i++ {
		if err := repo.Record("alice", game.OutcomePlayerWin); err != nil {
			t.Fatalf("Record(alice): %v", err)
		}
	}
	if err := repo.Record("bob", game.OutcomePlayerWin); err != nil {
		t.Fatalf("Record(bob): %v", err)
	}
	if err := repo.Record("bob", game.OutcomeDealerWin); err != nil {
		t.Fatalf("Record(bob): %v", err)
	}

	top, err := repo.TopByWins(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 {
		t.Fatalf("got %d tallies, want 2", len(top))
	}
	if top[0].Player != "alice" || top[0].Wins != 3 {
		t.Errorf("top entry = %+v, want alice with 3 wins", top[0])
	}
}
