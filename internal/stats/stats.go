package stats

import (
	"database/sql"
	"fmt"

	"blackjack/internal/game"
)

// Tally is one player's outcome record for the current session.
type Tally struct {
	Player string
	Wins   int
	Losses int
	Ties   int
	Rounds int
}

func (t Tally) WinRate() float64 {
	if t.Rounds == 0 {
		return 0
	}
	return float64(t.Wins) / float64(t.Rounds) * 100
}

type Repository interface {
	Record(player string, outcome game.Outcome) error
	Summary(player string) (Tally, error)
	TopByWins(limit int) ([]Tally, error)
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Record(player string, outcome game.Outcome) error {
	wins, losses, ties := 0, 0, 0
	switch outcome {
	case game.OutcomePlayerWin, game.OutcomeDealerBust:
		wins = 1
	case game.OutcomeDealerWin, game.OutcomePlayerBust:
		losses = 1
	case game.OutcomeTie:
		ties = 1
	}

	_, err := r.db.Exec(`
		INSERT INTO tallies (player, wins, losses, ties, rounds)
		VALUES (?, ?, ?, ?, 1)
		ON CONFLICT(player) DO UPDATE SET
			wins = wins + excluded.wins,
			losses = losses + excluded.losses,
			ties = ties + excluded.ties,
			rounds = rounds + 1,
			updated_at = CURRENT_TIMESTAMP
	`, player, wins, losses, ties)

	if err != nil {
		return fmt.Errorf("failed to record outcome: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Summary(player string) (Tally, error) {
	tally := Tally{Player: player}

	err := r.db.QueryRow(`
		SELECT wins, losses, ties, rounds
		FROM tallies WHERE player = ?
	`, player).Scan(&tally.Wins, &tally.Losses, &tally.Ties, &tally.Rounds)

	if err == sql.ErrNoRows {
		return tally, nil
	}
	if err != nil {
		return Tally{}, fmt.Errorf("failed to get tally: %w", err)
	}

	return tally, nil
}

func (r *SQLiteRepository) TopByWins(limit int) ([]Tally, error) {
	rows, err := r.db.Query(`
		SELECT player, wins, losses, ties, rounds
		FROM tallies
		WHERE rounds > 0
		ORDER BY wins DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tallies []Tally
	for rows.Next() {
		var t Tally
		if err := rows.Scan(&t.Player, &t.Wins, &t.Losses, &t.Ties, &t.Rounds); err != nil {
			return nil, err
		}
		tallies = append(tallies, t)
	}

	return tallies, rows.Err()
}
