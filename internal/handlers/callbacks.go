package handlers

import (
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-babyfeed-bot/internal/dates"
	"telegram-babyfeed-bot/internal/messages"
	"telegram-babyfeed-bot/internal/models"
	"telegram-babyfeed-bot/internal/session"
)

// HandleCallback processes one inline-button press. Every callback is
// acknowledged up front so the client stops its spinner.
func (h *Handler) HandleCallback(cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil {
		return
	}
	chatID := cq.Message.Chat.ID
	msgID := cq.Message.MessageID
	data := cq.Data
	h.answer(cq.ID)

	sess := h.Sessions.Get(chatID)

	switch {
	case data == messages.CbDeletePrefYes, data == messages.CbDeletePrefNo:
		h.setDeletePreference(chatID, sess, data == messages.CbDeletePrefYes, true)

	case strings.HasPrefix(data, messages.PrefixRegurgAir):
		h.markRegurg(chatID, msgID, data, messages.PrefixRegurgAir, models.RegurgAir)
	case strings.HasPrefix(data, messages.PrefixRegurgMilk):
		h.markRegurg(chatID, msgID, data, messages.PrefixRegurgMilk, models.RegurgMilk)
	case strings.HasPrefix(data, messages.PrefixRegurgNo):
		h.markRegurg(chatID, msgID, data, messages.PrefixRegurgNo, models.RegurgNo)

	case strings.HasPrefix(data, messages.PrefixDelete):
		h.deleteRecord(chatID, msgID, data)
	case strings.HasPrefix(data, messages.PrefixEdit):
		h.beginEdit(chatID, sess, data)
	case strings.HasPrefix(data, messages.PrefixRegurgMenu):
		id, ok := idAfter(data, messages.PrefixRegurgMenu)
		if ok {
			h.editText(chatID, msgID, messages.TxtAskRegurg, messages.RegurgMenuKeyboard(id))
		}

	case data == messages.CbStatsToday:
		h.showStatsByDate(chatID, dates.Today(h.userZone(chatID)))
	case data == messages.CbSummary7Days:
		zone := h.userZone(chatID)
		sess.Range = &session.RangeScratch{Start: dates.DaysAgo(zone, 6), End: dates.Today(zone)}
		h.askSummaryType(chatID)
	case data == messages.CbStatsCustom:
		sess.Step = models.StepAwaitingStatsStartDate
		sess.EnsureRange()
		h.sendKb(chatID, messages.TxtAskStartDate, messages.DateKeyboard())
	case data == messages.CbStatsChooseDate:
		sess.Step = models.StepAwaitingStatsDate
		h.sendKb(chatID, messages.TxtAskStatsDate, messages.DateKeyboard())
	case data == messages.CbListChooseDate:
		sess.Step = models.StepAwaitingListDate
		h.sendKb(chatID, messages.TxtAskListDate, messages.DateKeyboard())
	case data == messages.CbDeleteChooseDate:
		sess.Step = models.StepAwaitingDeleteListDate
		h.sendKb(chatID, messages.TxtAskDeleteList, messages.DateKeyboard())

	case data == messages.CbSummaryDetailed, data == messages.CbSummaryGeneral:
		if sess.Range == nil {
			h.sendMainMenu(chatID)
			return
		}
		h.showSummaryBetween(chatID, sess.Range.Start, sess.Range.End,
			data == messages.CbSummaryDetailed)

	case data == messages.CbBack:
		sess.Reset()
		h.sendMainMenu(chatID)
	case data == messages.CbAddFeeding:
		h.startAddFeeding(chatID)
	case data == messages.CbStats:
		h.sendStatsMenu(chatID)
	case data == messages.CbListFeedings:
		h.showListByDate(chatID, dates.Today(h.userZone(chatID)), false)
	case data == messages.CbDeleteRecord:
		h.startDeleteList(chatID)
	case data == messages.CbHelp:
		h.sendHelp(chatID)
	case data == messages.CbMainMenu:
		h.sendMainMenu(chatID)
	case data == messages.CbLastFeeding:
		h.showLastFeeding(chatID)
	case data == messages.CbSettings:
		h.sendSettingsMenu(chatID)

	case data == messages.CbSetDeleteYes, data == messages.CbSetDeleteNo:
		h.setDeletePreference(chatID, sess, data == messages.CbSetDeleteYes, false)
	case data == messages.CbDeleteAll:
		h.sendKb(chatID, messages.TxtConfirmWipe, messages.WipeConfirmKeyboard())
	case data == messages.CbDeleteAllConfirm:
		if err := h.Store.DeleteAll(chatID); err != nil {
			log.Printf("handlers: wipe history for %d failed: %v", chatID, err)
			h.send(chatID, messages.TxtErrDelete)
			return
		}
		sess.Reset()
		h.send(chatID, messages.TxtHistoryWiped)

	case data == messages.CbSelectDateToday:
		h.quickDate(chatID, sess, dates.Today(h.userZone(chatID)))
	case data == messages.CbSelectDateYesterday:
		h.quickDate(chatID, sess, dates.Yesterday(h.userZone(chatID)))
	case data == messages.CbCalendar:
		if sess.Step.IsDateStep() {
			sess.Calendar = &session.CalendarScratch{ReturnTo: sess.Step}
			sess.Step = models.StepAwaitingCalendarDay
			h.sendKb(chatID, messages.TxtAskDay, messages.DayKeyboard())
		}
	case strings.HasPrefix(data, messages.PrefixDay):
		h.dispatch(chatID, sess, strings.TrimPrefix(data, messages.PrefixDay))
	case strings.HasPrefix(data, messages.PrefixMonth):
		h.dispatch(chatID, sess, strings.TrimPrefix(data, messages.PrefixMonth))
	case data == messages.CbYearCurrent:
		year := time.Now().In(h.userZone(chatID)).Year()
		h.dispatch(chatID, sess, strconv.Itoa(year))

	case data == messages.CbSelectTimeNow:
		if sess.Step == models.StepAwaitingTime || sess.Step == models.StepAwaitingEditTime {
			edit := sess.Step == models.StepAwaitingEditTime
			h.setTime(chatID, sess, dates.NowTime(h.userZone(chatID)), edit)
		}
	case data == messages.CbTimeManual:
		h.send(chatID, messages.TxtEnterTime)
	case data == messages.CbTimeSelect:
		switch sess.Step {
		case models.StepAwaitingTime:
			sess.Step = models.StepAwaitingHour
			h.sendKb(chatID, messages.TxtAskHour, messages.HourKeyboard())
		case models.StepAwaitingEditTime:
			sess.Step = models.StepAwaitingEditHour
			h.sendKb(chatID, messages.TxtAskHour, messages.HourKeyboard())
		}
	case strings.HasPrefix(data, messages.PrefixHour):
		h.dispatch(chatID, sess, strings.TrimPrefix(data, messages.PrefixHour))
	case strings.HasPrefix(data, messages.PrefixMin):
		h.dispatch(chatID, sess, strings.TrimPrefix(data, messages.PrefixMin))
	case strings.HasPrefix(data, messages.PrefixAmount):
		h.dispatch(chatID, sess, strings.TrimPrefix(data, messages.PrefixAmount))
	case data == messages.CbSkip:
		h.dispatch(chatID, sess, "")

	case strings.HasPrefix(data, messages.PrefixTimezone):
		h.setTimezone(chatID, sess, strings.TrimPrefix(data, messages.PrefixTimezone))
	case data == messages.CbChangeTimezone:
		sess.FromSettings = true
		h.askTimezone(chatID)
	}
}

// quickDate feeds a today/yesterday button press into whichever date step
// is active.
func (h *Handler) quickDate(chatID int64, sess *session.Session, date string) {
	if !sess.Step.IsDateStep() {
		return
	}
	h.acceptDate(chatID, sess, date)
}

func (h *Handler) setDeletePreference(chatID int64, sess *session.Session, yes, onboarding bool) {
	if err := h.Prefs.Set(chatID, strconv.FormatBool(yes)); err != nil {
		log.Printf("handlers: save delete preference for %d failed: %v", chatID, err)
		h.send(chatID, messages.TxtErrSavePref)
		return
	}
	if !onboarding {
		h.sendSettingsMenu(chatID)
		return
	}
	if _, ok := h.Zones.Get(chatID); !ok {
		h.askTimezone(chatID)
		return
	}
	sess.Reset()
	h.sendWelcome(chatID)
}

func (h *Handler) setTimezone(chatID int64, sess *session.Session, name string) {
	if _, err := time.LoadLocation(name); err != nil {
		h.send(chatID, messages.TxtErrTimezone)
		return
	}
	if err := h.Zones.Set(chatID, name); err != nil {
		log.Printf("handlers: save timezone for %d failed: %v", chatID, err)
		h.send(chatID, messages.TxtErrTimezone)
		return
	}
	fromSettings := sess.FromSettings
	sess.Reset()
	if fromSettings {
		h.sendSettingsMenu(chatID)
		return
	}
	h.sendWelcome(chatID)
}

func (h *Handler) markRegurg(chatID int64, msgID int, data, prefix string, regurg models.Regurg) {
	id, ok := idAfter(data, prefix)
	if !ok {
		return
	}
	updated, err := h.Store.UpdateRegurg(chatID, id, regurg)
	if err != nil {
		log.Printf("handlers: mark regurg on %d for %d failed: %v", id, chatID, err)
		h.send(chatID, messages.TxtErrUpdate)
		return
	}
	if !updated {
		h.send(chatID, messages.TxtNotFound)
		return
	}
	var done string
	switch regurg {
	case models.RegurgAir:
		done = messages.TxtRegurgAirDone
	case models.RegurgMilk:
		done = messages.TxtRegurgMilkDone
	default:
		done = messages.TxtRegurgNoDone
	}
	h.editText(chatID, msgID, done, messages.MainMenuButton())
}

func (h *Handler) deleteRecord(chatID int64, msgID int, data string) {
	id, ok := idAfter(data, messages.PrefixDelete)
	if !ok {
		return
	}
	deleted, err := h.Store.Delete(chatID, id)
	if err != nil {
		log.Printf("handlers: delete record %d for %d failed: %v", id, chatID, err)
		h.send(chatID, messages.TxtErrDelete)
		return
	}
	if !deleted {
		h.send(chatID, messages.TxtNotFound)
		return
	}
	h.editPlain(chatID, msgID, messages.TxtDeleted)
}

func (h *Handler) beginEdit(chatID int64, sess *session.Session, data string) {
	id, ok := idAfter(data, messages.PrefixEdit)
	if !ok {
		return
	}
	sess.Reset()
	sess.Edit = &session.EditScratch{ID: id}
	sess.Step = models.StepAwaitingEditDate
	h.askEditDate(chatID)
}

// idAfter extracts the record id from an "action:id" token.
func idAfter(data, prefix string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimPrefix(data, prefix))
	if err != nil {
		log.Printf("handlers: malformed callback token %q: %v", data, err)
		return 0, false
	}
	return id, true
}
