package main

import (
	"log"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"telegram-babyfeed-bot/internal/config"
	"telegram-babyfeed-bot/internal/handlers"
	"telegram-babyfeed-bot/internal/scheduler"
	"telegram-babyfeed-bot/internal/storage"
	"telegram-babyfeed-bot/internal/utils"
)

func main() {
	_ = godotenv.Load() // TELEGRAM_BOT_TOKEN etc.

	cfg := config.Load()

	store, err := storage.New(cfg.DataDir)
	utils.Must(err)

	prefs, err := storage.OpenKV(filepath.Join(cfg.DataDir, "preferences.dat"))
	utils.Must(err)

	zones, err := storage.OpenKV(filepath.Join(cfg.DataDir, "timezones.dat"))
	utils.Must(err)

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	utils.Must(err)
	log.Printf("authorized as @%s", bot.Self.UserName)

	h := handlers.New(bot, store, prefs, zones)

	_, err = scheduler.Start(cfg.DataDir, cfg.ArchiveDir)
	utils.Must(err)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = cfg.PollTimeout

	updates := bot.GetUpdatesChan(updateConfig)

	for upd := range updates {
		if upd.Message != nil && upd.Message.Text != "" {
			h.HandleText(upd.Message.Chat.ID, upd.Message.Text, upd.Message.MessageID)
		}
		if upd.CallbackQuery != nil {
			h.HandleCallback(upd.CallbackQuery)
		}
	}
}
