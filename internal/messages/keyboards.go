package messages

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-babyfeed-bot/internal/models"
)

func backRow() []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔙 Назад", CbBack),
	)
}

// BackKeyboard is the single 🔙 row attached to most plain messages.
func BackKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(backRow())
}

// MainMenuButton links back to the main menu after a completed action.
func MainMenuButton() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 Главное меню", CbBack),
		),
	)
}

// HeaderKeyboard carries the channel link under the pinned header.
func HeaderKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("Наш канал", "https://t.me/happy_mom_club"),
		),
	)
}

// MainMenu is the top-level action keyboard.
func MainMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Добавить кормление", CbAddFeeding),
			tgbotapi.NewInlineKeyboardButtonData("⌛ Давно ли кормили?", CbLastFeeding),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Статистика", CbStats),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📜 Список кормлений", CbListFeedings),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("ℹ️ Помощь", CbHelp),
			tgbotapi.NewInlineKeyboardButtonData("⚙️ Настройки", CbSettings),
		),
	)
}

// DeletePreferenceKeyboard is the onboarding yes/no question.
func DeletePreferenceKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Да, удалять", CbDeletePrefYes),
			tgbotapi.NewInlineKeyboardButtonData("Нет, не удалять", CbDeletePrefNo),
		),
	)
}

// DateKeyboard offers today/yesterday, the calendar sub-dialog and back.
func DateKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📅 Сегодня", CbSelectDateToday),
			tgbotapi.NewInlineKeyboardButtonData("👈 Вчера", CbSelectDateYesterday),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗓 Календарь", CbCalendar),
		),
		backRow(),
	)
}

// EditDateKeyboard is DateKeyboard plus Skip for the edit pipeline.
func EditDateKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📅 Сегодня", CbSelectDateToday),
			tgbotapi.NewInlineKeyboardButtonData("👈 Вчера", CbSelectDateYesterday),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏭ Пропустить", CbSkip),
		),
		backRow(),
	)
}

// TimeKeyboard offers "now", the hour/minute picker and optionally Skip.
func TimeKeyboard(withSkip bool) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🕒 Сейчас", CbSelectTimeNow),
			tgbotapi.NewInlineKeyboardButtonData("⏰ Выбрать время", CbTimeSelect),
		),
	}
	if withSkip {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏭ Пропустить", CbSkip),
		))
	}
	rows = append(rows, backRow())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// AmountKeyboard offers the common bottle volumes and optionally Skip.
func AmountKeyboard(withSkip bool) tgbotapi.InlineKeyboardMarkup {
	amountBtn := func(ml int) tgbotapi.InlineKeyboardButton {
		return tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("🍼 %d", ml), PrefixAmount+strconv.Itoa(ml))
	}
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(amountBtn(60), amountBtn(90), amountBtn(120)),
		tgbotapi.NewInlineKeyboardRow(amountBtn(150), amountBtn(180), amountBtn(210)),
		tgbotapi.NewInlineKeyboardRow(amountBtn(240)),
	}
	if withSkip {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏭ Пропустить", CbSkip),
		))
	}
	rows = append(rows, backRow())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// HourKeyboard is a 4x6 grid of hours.
func HourKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < 24; i += 6 {
		var row []tgbotapi.InlineKeyboardButton
		for j := i; j < i+6 && j < 24; j++ {
			hh := fmt.Sprintf("%02d", j)
			row = append(row, tgbotapi.NewInlineKeyboardButtonData("⏰ "+hh, PrefixHour+hh))
		}
		rows = append(rows, row)
	}
	rows = append(rows, backRow())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// MinutesKeyboard offers the ten-minute steps.
func MinutesKeyboard(minutes []int) tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	for _, m := range minutes {
		mm := fmt.Sprintf("%02d", m)
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("⏱ "+mm, PrefixMin+mm))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row, backRow())
}

// DayKeyboard is the 1-31 grid of the calendar sub-dialog.
func DayKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 1; i <= 31; i += 5 {
		var row []tgbotapi.InlineKeyboardButton
		for j := i; j < i+5 && j <= 31; j++ {
			n := strconv.Itoa(j)
			row = append(row, tgbotapi.NewInlineKeyboardButtonData("📅 "+n, PrefixDay+n))
		}
		rows = append(rows, row)
	}
	rows = append(rows, backRow())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// MonthKeyboard is the 1-12 grid of the calendar sub-dialog.
func MonthKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 1; i <= 12; i += 4 {
		var row []tgbotapi.InlineKeyboardButton
		for j := i; j < i+4 && j <= 12; j++ {
			n := strconv.Itoa(j)
			row = append(row, tgbotapi.NewInlineKeyboardButtonData("🗓 "+n, PrefixMonth+n))
		}
		rows = append(rows, row)
	}
	rows = append(rows, backRow())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// YearKeyboard offers the current year; other years are typed.
func YearKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📆 Текущий", CbYearCurrent),
		),
		backRow(),
	)
}

// RegurgKeyboard is the follow-up question for a just-created record,
// addressed by record id so it can be answered or ignored at any time.
func RegurgKeyboard(id int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Да", PrefixRegurgMilk+strconv.Itoa(id)),
			tgbotapi.NewInlineKeyboardButtonData("Нет", PrefixRegurgNo+strconv.Itoa(id)),
		),
	)
}

// RegurgMenuKeyboard is the full three-way choice offered from a day
// listing, where the outcome may be corrected after the fact.
func RegurgMenuKeyboard(id int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💨 Воздушек", PrefixRegurgAir+strconv.Itoa(id)),
			tgbotapi.NewInlineKeyboardButtonData("🤢 Молочком", PrefixRegurgMilk+strconv.Itoa(id)),
			tgbotapi.NewInlineKeyboardButtonData("❌ Нет", PrefixRegurgNo+strconv.Itoa(id)),
		),
	)
}

// StatsMenuKeyboard selects the statistics flow.
func StatsMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📅 Сегодня", CbStatsToday),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Сводка за последние 7 дней", CbSummary7Days),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Сводка за выбранный период", CbStatsCustom),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📆 Выбрать дату", CbStatsChooseDate),
		),
		backRow(),
	)
}

// SummaryTypeKeyboard selects detailed vs general period summary.
func SummaryTypeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Подробная сводка", CbSummaryDetailed),
			tgbotapi.NewInlineKeyboardButtonData("Общая сводка", CbSummaryGeneral),
		),
		backRow(),
	)
}

// SettingsKeyboard is the settings menu.
func SettingsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Да, удалять", CbSetDeleteYes),
			tgbotapi.NewInlineKeyboardButtonData("Нет, не удалять", CbSetDeleteNo),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Изменить часовой пояс", CbChangeTimezone),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Удалить всю историю", CbDeleteAll),
		),
		backRow(),
	)
}

// WipeConfirmKeyboard confirms the full-history wipe.
func WipeConfirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Да", CbDeleteAllConfirm),
			tgbotapi.NewInlineKeyboardButtonData("Нет", CbBack),
		),
	)
}

// TimezoneKeyboard lists the supported zones, one per row.
func TimezoneKeyboard() tgbotapi.InlineKeyboardMarkup {
	zones := []struct{ label, id string }{
		{"Калининград (UTC+2)", "Europe/Kaliningrad"},
		{"Москва (UTC+3)", "Europe/Moscow"},
		{"Самара (UTC+4)", "Europe/Samara"},
		{"Екатеринбург (UTC+5)", "Asia/Yekaterinburg"},
		{"Омск (UTC+6)", "Asia/Omsk"},
		{"Красноярск (UTC+7)", "Asia/Krasnoyarsk"},
		{"Иркутск (UTC+8)", "Asia/Irkutsk"},
		{"Якутск (UTC+9)", "Asia/Yakutsk"},
		{"Владивосток (UTC+10)", "Asia/Vladivostok"},
		{"Магадан (UTC+11)", "Asia/Magadan"},
		{"Камчатка (UTC+12)", "Asia/Kamchatka"},
	}
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, z := range zones {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(z.label, PrefixTimezone+z.id),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// ListKeyboard attaches per-record actions to a day listing. In delete
// mode only the delete button is offered.
func ListKeyboard(records []models.Record, deleteMode bool) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, r := range records {
		id := strconv.Itoa(r.ID)
		row := []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("🗑 Удалить №%d", i+1), PrefixDelete+id),
		}
		if !deleteMode {
			row = append(row,
				tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("✏️ Редактировать №%d", i+1), PrefixEdit+id),
				tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("🤢 Срыгивание №%d", i+1), PrefixRegurgMenu+id),
			)
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// AnotherDateKeyboard follows a day listing.
func AnotherDateKeyboard(deleteMode bool) tgbotapi.InlineKeyboardMarkup {
	token := CbListChooseDate
	if deleteMode {
		token = CbDeleteChooseDate
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📆 Другая дата", token),
			tgbotapi.NewInlineKeyboardButtonData("🔙 Назад", CbBack),
		),
	)
}
