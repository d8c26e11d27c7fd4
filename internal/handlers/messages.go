package handlers

import (
	"fmt"
	"log"
	"regexp"
	"strconv"

	"telegram-babyfeed-bot/internal/dates"
	"telegram-babyfeed-bot/internal/messages"
	"telegram-babyfeed-bot/internal/models"
	"telegram-babyfeed-bot/internal/session"
)

// Reply-keyboard texts that short-circuit step dispatch.
const (
	textSkip = "Пропустить"
	textBack = "Назад"
)

// stepFn handles one normalized input for one dialog step. Empty input
// means Skip.
type stepFn func(h *Handler, chatID int64, sess *session.Session, input string)

// stepTable is the explicit transition table of the dialog state machine.
// Steps without an entry (Idle, the onboarding question) fall back to the
// main menu on text input.
var stepTable map[models.Step]stepFn

func init() {
	stepTable = map[models.Step]stepFn{
		models.StepAwaitingDate:           (*Handler).stepDate,
		models.StepAwaitingEditDate:       (*Handler).stepDate,
		models.StepAwaitingStatsDate:      (*Handler).stepDate,
		models.StepAwaitingListDate:       (*Handler).stepDate,
		models.StepAwaitingDeleteListDate: (*Handler).stepDate,
		models.StepAwaitingStatsStartDate: (*Handler).stepDate,
		models.StepAwaitingStatsEndDate:   (*Handler).stepDate,
		models.StepAwaitingTime:           (*Handler).stepTime,
		models.StepAwaitingEditTime:       (*Handler).stepTime,
		models.StepAwaitingHour:           (*Handler).stepHour,
		models.StepAwaitingEditHour:       (*Handler).stepHour,
		models.StepAwaitingMinutes:        (*Handler).stepMinutes,
		models.StepAwaitingEditMinutes:    (*Handler).stepMinutes,
		models.StepAwaitingAmount:         (*Handler).stepAmount,
		models.StepAwaitingEditAmount:     (*Handler).stepEditAmount,
		models.StepAwaitingCalendarDay:    (*Handler).stepCalendarDay,
		models.StepAwaitingCalendarMonth:  (*Handler).stepCalendarMonth,
		models.StepAwaitingCalendarYear:   (*Handler).stepCalendarYear,
	}
}

// HandleText processes one inbound text message. The user's message is
// removed afterwards, best-effort.
func (h *Handler) HandleText(chatID int64, text string, userMsgID int) {
	sess := h.Sessions.Get(chatID)
	switch text {
	case textSkip:
		h.dispatch(chatID, sess, "")
	case textBack:
		sess.Reset()
		h.sendMainMenu(chatID)
	case "/start":
		h.sendHeaderIfNeeded(chatID)
		h.handleStart(chatID)
	default:
		h.dispatch(chatID, sess, text)
	}
	h.deleteUserMessage(chatID, userMsgID)
}

// dispatch normalizes the input for the current step and runs its handler.
func (h *Handler) dispatch(chatID int64, sess *session.Session, raw string) {
	input := raw
	if input != "" {
		input = dates.Normalize(input)
		if sess.Step.IsDateStep() {
			input = dates.ExpandDigitRun(input)
		}
	}
	fn, ok := stepTable[sess.Step]
	if !ok {
		h.sendMainMenu(chatID)
		return
	}
	fn(h, chatID, sess, input)
}

// ---- date steps ------------------------------------------------------------

func (h *Handler) stepDate(chatID int64, sess *session.Session, input string) {
	if input == "" {
		// Skip is only meaningful in the edit pipeline.
		if sess.Step != models.StepAwaitingEditDate {
			return
		}
		sess.Step = models.StepAwaitingEditTime
		h.askEditTime(chatID)
		return
	}
	date, ok := dates.CanonicalDate(input, h.userZone(chatID))
	if !ok {
		h.send(chatID, badDateText(sess.Step))
		return
	}
	h.acceptDate(chatID, sess, date)
}

func badDateText(step models.Step) string {
	switch step {
	case models.StepAwaitingStatsStartDate:
		return messages.TxtBadStartDate
	case models.StepAwaitingStatsEndDate:
		return messages.TxtBadEndDate
	case models.StepAwaitingDate, models.StepAwaitingEditDate:
		return messages.TxtBadDate
	default:
		return messages.TxtBadDateShort
	}
}

// acceptDate routes a validated date into whichever flow is waiting for
// one. The calendar sub-dialog re-enters here with its synthesized date.
func (h *Handler) acceptDate(chatID int64, sess *session.Session, date string) {
	switch sess.Step {
	case models.StepAwaitingDate:
		sess.EnsureEntry().Date = date
		sess.Step = models.StepAwaitingTime
		h.askTime(chatID)
	case models.StepAwaitingEditDate:
		if sess.Edit != nil {
			d := date
			sess.Edit.Date = &d
		}
		sess.Step = models.StepAwaitingEditTime
		h.askEditTime(chatID)
	case models.StepAwaitingStatsDate:
		h.showStatsByDate(chatID, date)
	case models.StepAwaitingListDate:
		h.showListByDate(chatID, date, false)
	case models.StepAwaitingDeleteListDate:
		h.showListByDate(chatID, date, true)
	case models.StepAwaitingStatsStartDate:
		sess.EnsureRange().Start = date
		sess.Step = models.StepAwaitingStatsEndDate
		h.sendKb(chatID, messages.TxtAskEndDate, messages.DateKeyboard())
	case models.StepAwaitingStatsEndDate:
		sess.EnsureRange().End = date
		h.askSummaryType(chatID)
	}
}

// ---- time steps ------------------------------------------------------------

var looseTime = regexp.MustCompile(`^\d{1,2}:\d{1,2}$`)

func (h *Handler) stepTime(chatID int64, sess *session.Session, input string) {
	edit := sess.Step == models.StepAwaitingEditTime
	if input == "" {
		if !edit {
			return
		}
		sess.Step = models.StepAwaitingEditAmount
		h.askEditAmount(chatID)
		return
	}
	tm, ok := dates.CanonicalTime(input)
	if !ok {
		if looseTime.MatchString(input) {
			h.send(chatID, messages.TxtBadTimeRange)
		} else {
			h.send(chatID, messages.TxtBadTimeFormat)
		}
		return
	}
	h.setTime(chatID, sess, tm, edit)
}

func (h *Handler) setTime(chatID int64, sess *session.Session, tm string, edit bool) {
	if edit {
		if sess.Edit != nil {
			t := tm
			sess.Edit.Time = &t
		}
		sess.Step = models.StepAwaitingEditAmount
		h.askEditAmount(chatID)
		return
	}
	sess.EnsureEntry().Time = tm
	sess.Step = models.StepAwaitingAmount
	h.askAmount(chatID)
}

func (h *Handler) stepHour(chatID int64, sess *session.Session, input string) {
	hour, err := strconv.Atoi(input)
	if err != nil {
		h.send(chatID, messages.TxtBadHour)
		return
	}
	if hour < 0 || hour > 23 {
		h.send(chatID, messages.TxtBadHourRange)
		return
	}
	hh := fmt.Sprintf("%02d", hour)
	if sess.Step == models.StepAwaitingEditHour {
		if sess.Edit != nil {
			sess.Edit.Hour = hh
		}
		sess.Step = models.StepAwaitingEditMinutes
	} else {
		sess.EnsureEntry().Hour = hh
		sess.Step = models.StepAwaitingMinutes
	}
	h.sendKb(chatID, messages.TxtAskMinutes, messages.MinutesKeyboard(dates.PickerMinutes))
}

func (h *Handler) stepMinutes(chatID int64, sess *session.Session, input string) {
	m, err := strconv.Atoi(input)
	if err != nil {
		h.send(chatID, messages.TxtBadMinutesNum)
		return
	}
	if !dates.ValidPickerMinute(m) {
		h.send(chatID, messages.TxtBadMinutes)
		return
	}
	edit := sess.Step == models.StepAwaitingEditMinutes
	hour := ""
	if edit {
		if sess.Edit != nil {
			hour = sess.Edit.Hour
		}
	} else {
		hour = sess.EnsureEntry().Hour
	}
	h.setTime(chatID, sess, fmt.Sprintf("%s:%02d", hour, m), edit)
}

// ---- amount steps ----------------------------------------------------------

func (h *Handler) stepAmount(chatID int64, sess *session.Session, input string) {
	amount, err := strconv.Atoi(input)
	if err != nil {
		h.send(chatID, messages.TxtBadAmount)
		return
	}
	if !dates.ValidAmount(amount) {
		h.send(chatID, messages.TxtBadAmountRange)
		return
	}
	entry := sess.EnsureEntry()
	id, err := h.Store.Add(chatID, entry.Date, entry.Time, amount, models.RegurgUnknown)
	if err != nil {
		// treated as not having happened: step unchanged, user may retry
		log.Printf("handlers: add record for %d failed: %v", chatID, err)
		h.send(chatID, messages.TxtErrSave)
		return
	}
	conf := fmt.Sprintf(messages.TxtRecordedFmt, dates.Russian(entry.Date), entry.Time, amount)
	h.sendKb(chatID, conf, messages.RegurgKeyboard(id))
	sess.Reset()
}

func (h *Handler) stepEditAmount(chatID int64, sess *session.Session, input string) {
	var amount *int
	if input != "" {
		n, err := strconv.Atoi(input)
		if err != nil {
			h.send(chatID, messages.TxtBadAmount)
			return
		}
		if !dates.ValidAmount(n) {
			h.send(chatID, messages.TxtBadAmountRange)
			return
		}
		amount = &n
	}
	if sess.Edit == nil {
		h.sendMainMenu(chatID)
		return
	}
	patch := models.RecordPatch{Date: sess.Edit.Date, Time: sess.Edit.Time, AmountML: amount}
	updated, err := h.Store.Update(chatID, sess.Edit.ID, patch)
	if err != nil {
		log.Printf("handlers: update record %d for %d failed: %v", sess.Edit.ID, chatID, err)
		h.send(chatID, messages.TxtErrSave)
		return
	}
	if updated {
		h.send(chatID, messages.TxtUpdated)
	} else {
		h.send(chatID, messages.TxtNotFound)
	}
	sess.Reset()
}

// ---- calendar sub-dialog ---------------------------------------------------

func (h *Handler) stepCalendarDay(chatID int64, sess *session.Session, input string) {
	day, err := strconv.Atoi(input)
	if err != nil {
		h.send(chatID, messages.TxtBadDayNum)
		return
	}
	if day < 1 || day > 31 {
		h.send(chatID, messages.TxtBadDay)
		return
	}
	if sess.Calendar == nil {
		h.sendMainMenu(chatID)
		return
	}
	sess.Calendar.Day = fmt.Sprintf("%02d", day)
	sess.Step = models.StepAwaitingCalendarMonth
	h.sendKb(chatID, messages.TxtAskMonth, messages.MonthKeyboard())
}

func (h *Handler) stepCalendarMonth(chatID int64, sess *session.Session, input string) {
	month, err := strconv.Atoi(input)
	if err != nil {
		h.send(chatID, messages.TxtBadMonthNum)
		return
	}
	if month < 1 || month > 12 {
		h.send(chatID, messages.TxtBadMonth)
		return
	}
	if sess.Calendar == nil {
		h.sendMainMenu(chatID)
		return
	}
	sess.Calendar.Month = fmt.Sprintf("%02d", month)
	sess.Step = models.StepAwaitingCalendarYear
	h.sendKb(chatID, messages.TxtAskYear, messages.YearKeyboard())
}

func (h *Handler) stepCalendarYear(chatID int64, sess *session.Session, input string) {
	year, err := strconv.Atoi(input)
	if err != nil {
		h.send(chatID, messages.TxtBadYearFormat)
		return
	}
	if year < 2000 || year > 2100 {
		h.send(chatID, messages.TxtBadYearRange)
		return
	}
	cal := sess.Calendar
	if cal == nil {
		h.sendMainMenu(chatID)
		return
	}
	synth := cal.Day + ":" + cal.Month + ":" + strconv.Itoa(year)
	if _, ok := dates.CanonicalDate(synth, h.userZone(chatID)); !ok {
		// invalid day/month combination: restart the picker at day
		h.send(chatID, messages.TxtBadCalendar)
		cal.Day, cal.Month = "", ""
		sess.Step = models.StepAwaitingCalendarDay
		h.sendKb(chatID, messages.TxtAskDay, messages.DayKeyboard())
		return
	}
	sess.Step = cal.ReturnTo
	sess.Calendar = nil
	h.dispatch(chatID, sess, synth)
}

// ---- prompts ---------------------------------------------------------------

func (h *Handler) askTime(chatID int64) {
	h.sendKb(chatID, messages.TxtAskTime, messages.TimeKeyboard(false))
}

func (h *Handler) askAmount(chatID int64) {
	h.sendKb(chatID, messages.TxtAskAmount, messages.AmountKeyboard(false))
}

func (h *Handler) askEditDate(chatID int64) {
	h.sendKb(chatID, messages.TxtAskEditDate, messages.EditDateKeyboard())
}

func (h *Handler) askEditTime(chatID int64) {
	h.sendKb(chatID, messages.TxtAskEditTime, messages.TimeKeyboard(true))
}

func (h *Handler) askEditAmount(chatID int64) {
	h.sendKb(chatID, messages.TxtAskEditAmount, messages.AmountKeyboard(true))
}

func (h *Handler) askSummaryType(chatID int64) {
	h.sendKb(chatID, messages.TxtAskSummary, messages.SummaryTypeKeyboard())
}
