// Package handlers is the conversation engine: it turns inbound texts and
// callback presses into validated record-store operations and outbound
// prompts, driven by the per-chat session step.
package handlers

import (
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-babyfeed-bot/internal/dates"
	"telegram-babyfeed-bot/internal/messages"
	"telegram-babyfeed-bot/internal/session"
	"telegram-babyfeed-bot/internal/storage"
)

// API is the slice of the bot transport the engine needs. *tgbotapi.BotAPI
// satisfies it; tests inject a recording fake.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	Bot      API
	Store    *storage.Store
	Prefs    *storage.KV // chatID -> "true"/"false", delete old bot messages
	Zones    *storage.KV // chatID -> IANA zone id
	Sessions *session.Registry
}

func New(bot API, store *storage.Store, prefs, zones *storage.KV) *Handler {
	return &Handler{
		Bot:      bot,
		Store:    store,
		Prefs:    prefs,
		Zones:    zones,
		Sessions: session.NewRegistry(),
	}
}

// userZone resolves the chat's timezone, falling back to the default.
func (h *Handler) userZone(chatID int64) *time.Location {
	name, ok := h.Zones.Get(chatID)
	if !ok {
		return dates.DefaultZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("handlers: bad timezone %q for %d: %v", name, chatID, err)
		return dates.DefaultZone
	}
	return loc
}

// deleteOld reports whether old bot messages should be cleaned up for the
// chat. Defaults to true once onboarding stored nothing explicit.
func (h *Handler) deleteOld(chatID int64) bool {
	v, ok := h.Prefs.Get(chatID)
	if !ok {
		return true
	}
	return v != "false"
}

// send delivers a plain text with the back button, honoring cleanup.
func (h *Handler) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = messages.BackKeyboard()
	h.sendWithCleanup(chatID, msg)
}

// sendKb delivers text with an explicit keyboard, honoring cleanup.
func (h *Handler) sendKb(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	h.sendWithCleanup(chatID, msg)
}

// sendWithCleanup removes previous bot messages first when the user opted
// in, then sends and tracks the new one.
func (h *Handler) sendWithCleanup(chatID int64, msg tgbotapi.MessageConfig) {
	if h.deleteOld(chatID) {
		h.clearPrevious(chatID)
	}
	h.sendAndTrack(chatID, msg)
}

// sendAndTrack sends and remembers the message id for later cleanup.
// Transport failures are logged and swallowed.
func (h *Handler) sendAndTrack(chatID int64, msg tgbotapi.MessageConfig) {
	sent, err := h.Bot.Send(msg)
	if err != nil {
		log.Printf("handlers: send to %d failed: %v", chatID, err)
		return
	}
	sess := h.Sessions.Get(chatID)
	sess.PendingMsgIDs = append(sess.PendingMsgIDs, sent.MessageID)
}

// clearPrevious best-effort deletes tracked bot messages, keeping the
// header message alive.
func (h *Handler) clearPrevious(chatID int64) {
	sess := h.Sessions.Get(chatID)
	for _, id := range sess.PendingMsgIDs {
		if id == sess.HeaderMsgID {
			continue
		}
		if _, err := h.Bot.Request(tgbotapi.NewDeleteMessage(chatID, id)); err != nil {
			log.Printf("handlers: delete message %d in %d failed: %v", id, chatID, err)
		}
	}
	sess.PendingMsgIDs = nil
}

// deleteUserMessage removes the user's own input message, best-effort.
func (h *Handler) deleteUserMessage(chatID int64, msgID int) {
	if _, err := h.Bot.Request(tgbotapi.NewDeleteMessage(chatID, msgID)); err != nil {
		log.Printf("handlers: delete user message %d in %d failed: %v", msgID, chatID, err)
	}
}

// editText rewrites a previously sent message in place.
func (h *Handler) editText(chatID int64, msgID int, text string, kb tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, msgID, text, kb)
	if _, err := h.Bot.Request(edit); err != nil {
		log.Printf("handlers: edit message %d in %d failed: %v", msgID, chatID, err)
	}
}

func (h *Handler) editPlain(chatID int64, msgID int, text string) {
	if _, err := h.Bot.Request(tgbotapi.NewEditMessageText(chatID, msgID, text)); err != nil {
		log.Printf("handlers: edit message %d in %d failed: %v", msgID, chatID, err)
	}
}

// answer acknowledges a callback so the client stops the spinner.
func (h *Handler) answer(callbackID string) {
	if _, err := h.Bot.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		log.Printf("handlers: answer callback failed: %v", err)
	}
}

// sendHeaderIfNeeded posts the pinned header once per chat lifetime.
func (h *Handler) sendHeaderIfNeeded(chatID int64) {
	sess := h.Sessions.Get(chatID)
	if sess.HeaderMsgID != 0 {
		return
	}
	msg := tgbotapi.NewMessage(chatID, messages.TxtHeader)
	msg.ReplyMarkup = messages.HeaderKeyboard()
	sent, err := h.Bot.Send(msg)
	if err != nil {
		log.Printf("handlers: send header to %d failed: %v", chatID, err)
		return
	}
	sess.HeaderMsgID = sent.MessageID
}
