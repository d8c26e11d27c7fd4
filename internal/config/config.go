package config

import (
	"log"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	TelegramToken string `env:"TELEGRAM_BOT_TOKEN"`
	DataDir       string `env:"DATA_DIR" envDefault:"data"`
	ArchiveDir    string `env:"ARCHIVE_DIR" envDefault:"archive"`
	PollTimeout   int    `env:"POLL_TIMEOUT" envDefault:"60"`
}

// Load reads configuration from the environment. The bot token may also
// arrive as a Docker secret, which wins over the environment variable.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal("config: ", err)
	}
	if token := secretToken(); token != "" {
		cfg.TelegramToken = token
	}
	if cfg.TelegramToken == "" {
		log.Fatal("config: TELEGRAM_BOT_TOKEN is not set")
	}
	return cfg
}

func secretToken() string {
	data, err := os.ReadFile("/run/secrets/telegram_bot_token")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
