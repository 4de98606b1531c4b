package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"blackjack/internal/cli"
	"blackjack/internal/config"
	"blackjack/internal/database"
	"blackjack/internal/stats"
	"blackjack/internal/view"
)

func main() {
	cfg := config.Load()

	render, err := view.ForStyle(cfg.RenderStyle)
	if err != nil {
		log.Fatalf("Failed to pick renderer: %v", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	ui := cli.New(os.Stdin, os.Stdout, render, rng, stats.NewRepository(db.DB))
	ui.Run()
}
