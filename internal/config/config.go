package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken     string
	DatabasePath string
	RenderStyle  string
}

func Load() *Config {
	godotenv.Load()

	style := os.Getenv("RENDER_STYLE")
	if style == "" {
		style = "glyphs"
	}

	// stats are session-scoped unless a file path is configured
	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = ":memory:"
	}

	return &Config{
		BotToken:     os.Getenv("BOT_TOKEN"),
		DatabasePath: dbPath,
		RenderStyle:  style,
	}
}
