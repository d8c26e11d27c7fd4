// Package messages is the presentation layer: user-visible texts, inline
// keyboards and the callback tokens the dialog engine interprets.
package messages

// Exact-match callback tokens.
const (
	CbDeletePrefYes = "delete_pref_yes"
	CbDeletePrefNo  = "delete_pref_no"

	CbBack         = "back"
	CbSkip         = "skip"
	CbAddFeeding   = "add_feeding"
	CbStats        = "stats"
	CbListFeedings = "list_feedings"
	CbDeleteRecord = "delete_record"
	CbHelp         = "help"
	CbMainMenu     = "main_menu"
	CbLastFeeding  = "last_feeding"
	CbSettings     = "settings"

	CbStatsToday       = "stats_today"
	CbSummary7Days     = "summary_7days"
	CbStatsCustom      = "stats_custom"
	CbStatsChooseDate  = "stats_choose_date"
	CbListChooseDate   = "list_choose_date"
	CbDeleteChooseDate = "delete_choose_date"
	CbSummaryDetailed  = "summary_detailed"
	CbSummaryGeneral   = "summary_general"

	CbSetDeleteYes     = "set_delete_yes"
	CbSetDeleteNo      = "set_delete_no"
	CbDeleteAll        = "delete_all"
	CbDeleteAllConfirm = "delete_all_confirm"
	CbChangeTimezone   = "change_timezone"

	CbSelectDateToday     = "select_date_today"
	CbSelectDateYesterday = "select_date_yesterday"
	CbCalendar            = "calendar"
	CbYearCurrent         = "year_current"
	CbSelectTimeNow       = "select_time_now"
	CbTimeManual          = "time_manual"
	CbTimeSelect          = "time_select"
)

// Prefixed tokens carrying a value after the prefix.
const (
	PrefixRegurgAir  = "regurg_air:"
	PrefixRegurgMilk = "regurg_milk:"
	PrefixRegurgNo   = "regurg_no:"
	PrefixDelete     = "delete:"
	PrefixEdit       = "edit:"
	PrefixRegurgMenu = "regurg_menu:"
	PrefixDay        = "day_"
	PrefixMonth      = "month_"
	PrefixHour       = "hour_"
	PrefixMin        = "min_"
	PrefixAmount     = "amount_"
	PrefixTimezone   = "timezone_"
)
