package messages

// User-visible prompt and status texts.
const (
	TxtHeader = "👶 Бот для отметки кормлений малыша"

	TxtAskDeletePreference = "Привет! Перед началом, хотите ли вы, чтобы бот удалял предыдущие сообщения (оставляя только последнее)?"
	TxtAskTimezone         = "Выберите ваш часовой пояс. Если вашего нет в списке, напишите @angrymurko."

	TxtWelcome = "Привет! 👋\n" +
		"Я помогу вести учёт кормлений малыша 🍼.\n\n" +
		"Зайдите пожалуйста сразу в настройки и задайте часовой пояс, чтобы не путаться).\n\n" +
		"На всякий случай делайте скриншоты записей — бот новый, вдруг сбой.\n" +
		"Вопросы? Пишите @angrymurko.\n\n\n" +
		"Нажмите «➕ Добавить кормление», чтобы начать."

	TxtHelp = "🌸 Привет, мамочка! Вот как работает наш милый бот для кормлений малыша 🍼:\n\n" +
		"➕ Добавить кормление:\n 1) Выбери дату (сегодня, вчера или другую), \n 2) Время (сейчас или укажи), \n 3) Сколько мл съел малыш, \n 4) Отметь срыгивание, если было. \n 5) Готово, запись сохранена! ❤️\n\n" +
		"📊 Статистика:\n Посмотри за сегодня, последние 7 дней или выбери период! \n Тут есть подробная сводка с деталями по каждому дню и кормлению, или общая — сколько раз кормили, всего мл и срыгивания. 📈\n\n" +
		"📜 Список кормлений:\n Выбери дату, увидишь все записи за день. \n Можно:\n ✏️ Отредактировать (дату, время, мл),\n 🗑 Удалить \n 🤢 Отметить срыгивание.\n\n" +
		"⌛ Давно ли кормили?\n Покажу, когда было последнее кормление, сколько времени прошло и подскажу, пора ли кушать. ⏰\n\n" +
		"⚙️ Настройки:\n Выбери, удалять ли старые сообщения бота, смени часовой пояс или удали всю историю, если нужно.\n\n" +
		"💡 Бот ещё малыш, но старается! Если что-то пропало само — пишите @angrymurko. 💌"

	TxtMainMenu = "Главное меню:"

	TxtAskDate = "Введите дату (ДД.ММ.ГГГГ) или нажмите 📅 Сегодня.\n" +
		"Разделители: : . - / , \nГод можно опустить."
	TxtAskDeleteDate = "Нажмите 📅 Сегодня или 👈 Вчера, либо введите дату (ДД.ММ.ГГГГ).\n" +
		"Разделители: : . - / ,"
	TxtAskTime       = "Нажмите 🕒 Сейчас, введите время (ЧЧ:ММ) или выберите из кнопок."
	TxtAskAmount     = "Сколько мл съел малыш? 🍼\nВыберите кнопку или введите число."
	TxtAskEditDate   = "Новая дата (ДД.ММ.ГГГГ), 📅 Сегодня или Пропустить."
	TxtAskEditTime   = "Новое время (ЧЧ:ММ), выберите из кнопок или Пропустить."
	TxtAskEditAmount = "Новое количество мл или Пропустить."
	TxtAskHour       = "Выберите час: ⏰"
	TxtAskMinutes    = "Выберите минуты: ⏱"
	TxtAskDay        = "Выберите день: 📅"
	TxtAskMonth      = "Выберите месяц: 🗓"
	TxtAskYear       = "Выберите год или введите (4 цифры): 📆"
	TxtAskStatsDate  = "Дата для статистики (ДД.ММ.ГГГГ) или 📅 Сегодня."
	TxtAskListDate   = "Дата для списка (ДД.ММ.ГГГГ)."
	TxtAskDeleteList = "Дата для удаления (ДД.ММ.ГГГГ)."
	TxtAskStartDate  = "Введите дату ОТ (ДД.ММ.ГГГГ) или выберите."
	TxtAskEndDate    = "Введите дату ДО (ДД.ММ.ГГГГ) или выберите."
	TxtAskSummary    = "Выберите тип сводки:"
	TxtStatsMenu     = "Статистика за:"
	TxtEnterTime     = "Введите ЧЧ:ММ."

	TxtBadDate        = "Неверная дата. Попробуйте ДД.ММ.ГГГГ."
	TxtBadDateShort   = "Дата: ДД.ММ.ГГГГ."
	TxtBadStartDate   = "Неверная дата начала. Попробуйте ДД.ММ.ГГГГ."
	TxtBadEndDate     = "Неверная дата окончания. Попробуйте ДД.ММ.ГГГГ."
	TxtBadTimeRange   = "Неверное время (00-23:00-59)."
	TxtBadTimeFormat  = "Формат: ЧЧ:ММ."
	TxtBadHourRange   = "Час: 00-23."
	TxtBadHour        = "Неверный час."
	TxtBadMinutes     = "Минуты: 00,10,20,30,40,50."
	TxtBadMinutesNum  = "Неверные минуты."
	TxtBadAmountRange = "Количество: 1-2000 мл."
	TxtBadAmount      = "Введите число."
	TxtBadDay         = "День: 1-31."
	TxtBadDayNum      = "Неверный день."
	TxtBadMonth       = "Месяц: 1-12."
	TxtBadMonthNum    = "Неверный месяц."
	TxtBadYearRange   = "Неверный год."
	TxtBadYearFormat  = "Формат года: 4 цифры."
	TxtBadCalendar    = "Неверная дата (день/месяц)."
	TxtRangeBackwards = "Дата окончания раньше начала. Попробуйте снова."

	TxtRecordedFmt = "✅ Записано: %s в %s — %d мл\n\nСрыгнул(а)?"

	TxtUpdated        = "✅ Запись обновлена."
	TxtDeleted        = "🗑 Запись удалена."
	TxtNotFound       = "Ошибка: запись не найдена."
	TxtHistoryWiped   = "Вся история удалена."
	TxtConfirmWipe    = "Вы уверены, что хотите удалить всю историю кормлений?"
	TxtRegurgAirDone  = "💨 Вышел воздух."
	TxtRegurgMilkDone = "🤢 Переели."
	TxtRegurgNoDone   = "❌ Без срыгивания."
	TxtAskRegurg      = "Срыгнули? 🤢"
	TxtNoRecords      = "Нет записей о кормлениях."

	TxtErrStorage  = "Ошибка при чтении данных."
	TxtErrSave     = "Ошибка сохранения."
	TxtErrSavePref = "Ошибка сохранения настройки."
	TxtErrUpdate   = "Ошибка обновления."
	TxtErrDelete   = "Ошибка удаления."
	TxtErrTimezone = "Ошибка установки часового пояса."
)

// RegurgDisplay renders a stored regurgitation value for lists.
func RegurgDisplay(regurg string) string {
	switch regurg {
	case "air":
		return "Воздушек"
	case "milk":
		return "срыгнули"
	case "no":
		return "не срыгнули"
	default:
		return "не указано"
	}
}
