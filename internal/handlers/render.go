package handlers

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-babyfeed-bot/internal/dates"
	"telegram-babyfeed-bot/internal/messages"
	"telegram-babyfeed-bot/internal/models"
	"telegram-babyfeed-bot/internal/storage"
)

// showStatsByDate renders count, total and average volume for one day.
func (h *Handler) showStatsByDate(chatID int64, date string) {
	recs, err := h.Store.ListByDate(chatID, date)
	if err != nil {
		log.Printf("handlers: list by date for %d failed: %v", chatID, err)
		h.send(chatID, messages.TxtErrStorage)
		return
	}
	defer h.Sessions.Get(chatID).Reset()
	if len(recs) == 0 {
		h.send(chatID, "Нет записей за "+dates.Russian(date)+".")
		return
	}

	total := 0
	for _, r := range recs {
		total += r.AmountML
	}
	avg := (total + len(recs)/2) / len(recs)

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Статистика за %s:\n", dates.Russian(date))
	fmt.Fprintf(&b, "Кормлений: %d\nВсего: %d мл\nВ среднем: %d мл\n\n", len(recs), total, avg)
	for i, r := range recs {
		fmt.Fprintf(&b, "%d) %s — %d мл (%s)\n", i+1, r.Time, r.AmountML, messages.RegurgDisplay(string(r.Regurg)))
	}
	h.sendKb(chatID, b.String(), messages.BackKeyboard())
}

// showListByDate renders the day's records with per-record action buttons.
// In delete mode each row carries a delete button instead of the full set.
func (h *Handler) showListByDate(chatID int64, date string, deleteMode bool) {
	recs, err := h.Store.ListByDate(chatID, date)
	if err != nil {
		log.Printf("handlers: list by date for %d failed: %v", chatID, err)
		h.send(chatID, messages.TxtErrStorage)
		return
	}
	sess := h.Sessions.Get(chatID)
	defer sess.Reset()
	if len(recs) == 0 {
		h.sendKb(chatID, "Нет записей за "+dates.Short(date)+". Посмотреть за другую дату?",
			messages.AnotherDateKeyboard(deleteMode))
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📜 Кормления за %s:\n", dates.Russian(date))
	for i, r := range recs {
		fmt.Fprintf(&b, "%d) %s — %d мл (%s)\n", i+1, r.Time, r.AmountML, messages.RegurgDisplay(string(r.Regurg)))
	}
	msgText := b.String()

	if h.deleteOld(chatID) {
		h.clearPrevious(chatID)
	}
	msg := newKbMessage(chatID, msgText, messages.ListKeyboard(recs, deleteMode))
	h.sendAndTrack(chatID, msg)
	h.sendAndTrack(chatID, newKbMessage(chatID, "Посмотреть за другую дату?",
		messages.AnotherDateKeyboard(deleteMode)))
}

// showSummaryBetween renders a multi-day summary, either with every
// feeding listed per day or with per-day aggregates only.
func (h *Handler) showSummaryBetween(chatID int64, start, end string, detailed bool) {
	recs, err := h.Store.ListByRange(chatID, start, end)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidRange) {
			h.send(chatID, messages.TxtRangeBackwards)
			return
		}
		log.Printf("handlers: list by range for %d failed: %v", chatID, err)
		h.send(chatID, messages.TxtErrStorage)
		return
	}
	defer h.Sessions.Get(chatID).Reset()
	if len(recs) == 0 {
		h.send(chatID, fmt.Sprintf("Нет записей с %s по %s.", dates.Short(start), dates.Short(end)))
		return
	}

	byDay := map[string][]models.Record{}
	for _, r := range recs {
		byDay[r.Date] = append(byDay[r.Date], r)
	}
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return dates.At(days[i], "00:00").Before(dates.At(days[j], "00:00"))
	})

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Сводка с %s по %s:\n\n", dates.Short(start), dates.Short(end))
	grandTotal := 0
	for _, day := range days {
		dayRecs := byDay[day]
		total := 0
		milk := 0
		for _, r := range dayRecs {
			total += r.AmountML
			if r.Regurg == models.RegurgMilk {
				milk++
			}
		}
		grandTotal += total
		if detailed {
			fmt.Fprintf(&b, "%s — %d кормл., %d мл:\n", dates.Short(day), len(dayRecs), total)
			for _, r := range dayRecs {
				fmt.Fprintf(&b, "  %s — %d мл (%s)\n", r.Time, r.AmountML, messages.RegurgDisplay(string(r.Regurg)))
			}
		} else {
			fmt.Fprintf(&b, "%s: %d кормл., %d мл, срыгиваний: %d\n", dates.Short(day), len(dayRecs), total, milk)
		}
	}
	fmt.Fprintf(&b, "\nИтого: %d кормлений, %d мл", len(recs), grandTotal)
	h.sendKb(chatID, b.String(), messages.BackKeyboard())
}

// showLastFeeding reports when the baby last ate and whether it is time
// for the next feeding.
func (h *Handler) showLastFeeding(chatID int64) {
	recs, err := h.Store.ListAll(chatID)
	if err != nil {
		log.Printf("handlers: list all for %d failed: %v", chatID, err)
		h.send(chatID, messages.TxtErrStorage)
		return
	}
	if len(recs) == 0 {
		h.send(chatID, messages.TxtNoRecords)
		return
	}
	last := recs[len(recs)-1]

	zone := h.userZone(chatID)
	now := time.Now().In(zone)
	// Record timestamps are wall-clock in the user's zone, so compare
	// against a naive copy of now instead of the zoned instant.
	nowNaive := time.Date(now.Year(), now.Month(), now.Day(),
		now.Hour(), now.Minute(), 0, 0, time.UTC)
	elapsed := nowNaive.Sub(dates.At(last.Date, last.Time))
	if elapsed < 0 {
		elapsed = 0
	}
	hours := int(elapsed.Hours())
	minutes := int(elapsed.Minutes()) % 60

	var when string
	switch last.Date {
	case dates.Today(zone):
		when = "сегодня"
	case dates.Yesterday(zone):
		when = "вчера"
	default:
		when = dates.Russian(last.Date)
	}

	var advice string
	switch {
	case elapsed < 3*time.Hour:
		advice = "Совсем недавно покушали 👌"
	case elapsed < 4*time.Hour:
		advice = "Вот-вот пора кормить 🍼"
	default:
		advice = "Пора кормить малыша 👩‍🍼"
	}

	text := fmt.Sprintf("Последний раз кормили %s в %s.\nПрошло: %d ч %d мин\n%s",
		when, last.Time, hours, minutes, advice)
	h.send(chatID, text)
}

func newKbMessage(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	return msg
}
