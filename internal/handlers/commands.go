package handlers

import (
	"fmt"

	"telegram-babyfeed-bot/internal/messages"
	"telegram-babyfeed-bot/internal/models"
)

// handleStart runs first-run onboarding: the delete-preference question
// when no preference is stored yet, then the timezone question, then the
// welcome screen.
func (h *Handler) handleStart(chatID int64) {
	if _, ok := h.Prefs.Get(chatID); !ok {
		sess := h.Sessions.Get(chatID)
		sess.Step = models.StepAwaitingDeletePreference
		h.sendKb(chatID, messages.TxtAskDeletePreference, messages.DeletePreferenceKeyboard())
		return
	}
	if _, ok := h.Zones.Get(chatID); !ok {
		h.askTimezone(chatID)
		return
	}
	h.sendWelcome(chatID)
}

func (h *Handler) askTimezone(chatID int64) {
	h.sendKb(chatID, messages.TxtAskTimezone, messages.TimezoneKeyboard())
}

func (h *Handler) sendWelcome(chatID int64) {
	h.sendKb(chatID, messages.TxtWelcome, messages.MainMenu())
}

func (h *Handler) sendMainMenu(chatID int64) {
	h.sendKb(chatID, messages.TxtMainMenu, messages.MainMenu())
	h.Sessions.Get(chatID).Reset()
}

func (h *Handler) sendHelp(chatID int64) {
	h.sendKb(chatID, messages.TxtHelp, messages.BackKeyboard())
}

func (h *Handler) sendStatsMenu(chatID int64) {
	h.sendKb(chatID, messages.TxtStatsMenu, messages.StatsMenuKeyboard())
}

func (h *Handler) sendSettingsMenu(chatID int64) {
	deleteOld := "Да"
	if !h.deleteOld(chatID) {
		deleteOld = "Нет"
	}
	text := fmt.Sprintf("Настройки:\nУдалять предыдущие сообщения: %s\nЧасовой пояс: %s",
		deleteOld, h.userZone(chatID).String())
	h.sendKb(chatID, text, messages.SettingsKeyboard())
}

// startAddFeeding enters the new-entry pipeline at the date step.
func (h *Handler) startAddFeeding(chatID int64) {
	sess := h.Sessions.Get(chatID)
	sess.Reset()
	sess.Step = models.StepAwaitingDate
	sess.EnsureEntry()
	h.sendKb(chatID, messages.TxtAskDate, messages.DateKeyboard())
}

// startDeleteList enters the delete-by-date flow.
func (h *Handler) startDeleteList(chatID int64) {
	sess := h.Sessions.Get(chatID)
	sess.Reset()
	sess.Step = models.StepAwaitingDeleteListDate
	h.sendKb(chatID, messages.TxtAskDeleteDate, messages.DateKeyboard())
}
