// Package dates holds the date/time normalization rules shared by the
// dialog engine and the record store.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the stored record date, e.g. "25:12:2024".
	DateLayout = "02:01:2006"
	// ShortDateLayout is the display form, e.g. "25.12.2024".
	ShortDateLayout = "02.01.2006"
	// TimeLayout is the stored record time, e.g. "09:30".
	TimeLayout = "15:04"
	// CreatedAtLayout is the audit timestamp attached to new records.
	CreatedAtLayout = "2006-01-02 15:04"
)

// DefaultZone is used until a user picks their own timezone.
var DefaultZone = mustZone("Europe/Moscow")

func mustZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

var (
	digits4 = regexp.MustCompile(`^\d{4}$`)
	digits6 = regexp.MustCompile(`^\d{6}$`)
	digits8 = regexp.MustCompile(`^\d{8}$`)
)

// Normalize folds the accepted separators into the canonical one.
func Normalize(text string) string {
	r := strings.NewReplacer(".", ":", "/", ":", "-", ":", ",", ":")
	return r.Replace(strings.TrimSpace(text))
}

// ExpandDigitRun reinterprets bare digit runs positionally: 4 digits as
// DDMM, 6 as DDMMYY and 8 as DDMMYYYY. Anything else passes through.
func ExpandDigitRun(text string) string {
	switch {
	case digits4.MatchString(text):
		return text[:2] + ":" + text[2:4]
	case digits6.MatchString(text):
		return text[:2] + ":" + text[2:4] + ":20" + text[4:6]
	case digits8.MatchString(text):
		return text[:2] + ":" + text[2:4] + ":" + text[4:8]
	}
	return text
}

// CanonicalDate validates normalized input as day/month[/year] and returns
// it zero-padded as DD:MM:YYYY. A missing year defaults to the current year
// in zone, a 2-digit year is expanded by prefixing "20".
func CanonicalDate(text string, zone *time.Location) (string, bool) {
	parts := strings.Split(text, ":")
	var yearStr string
	switch len(parts) {
	case 2:
		yearStr = strconv.Itoa(time.Now().In(zone).Year())
	case 3:
		yearStr = parts[2]
		if len(yearStr) == 2 {
			yearStr = "20" + yearStr
		}
	default:
		return "", false
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || len(yearStr) != 4 {
		return "", false
	}
	formatted := fmt.Sprintf("%02d:%02d:%04d", day, month, year)
	if _, err := time.Parse(DateLayout, formatted); err != nil {
		return "", false
	}
	return formatted, true
}

// CanonicalTime validates normalized input as HH:MM, hour 0-23 and
// minute 0-59, and returns it zero-padded.
func CanonicalTime(text string) (string, bool) {
	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return "", false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", h, m), true
}

// ValidAmount reports whether ml is inside the accepted feeding volume.
func ValidAmount(ml int) bool {
	return ml > 0 && ml <= 2000
}

// PickerMinutes are the only minute values offered by the time picker.
var PickerMinutes = []int{0, 10, 20, 30, 40, 50}

// ValidPickerMinute reports whether m is one of the picker values.
func ValidPickerMinute(m int) bool {
	for _, v := range PickerMinutes {
		if v == m {
			return true
		}
	}
	return false
}

// At combines a stored date and time into a sortable instant.
// Inputs are expected to be canonical; a zero time is returned otherwise.
func At(date, tm string) time.Time {
	t, err := time.Parse(DateLayout+" "+TimeLayout, date+" "+tm)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Today returns the current date in zone in storage form.
func Today(zone *time.Location) string {
	return time.Now().In(zone).Format(DateLayout)
}

// Yesterday returns yesterday's date in zone in storage form.
func Yesterday(zone *time.Location) string {
	return time.Now().In(zone).AddDate(0, 0, -1).Format(DateLayout)
}

// DaysAgo returns the date n days before today in zone in storage form.
func DaysAgo(zone *time.Location, n int) string {
	return time.Now().In(zone).AddDate(0, 0, -n).Format(DateLayout)
}

// NowTime returns the current wall-clock time in zone in storage form.
func NowTime(zone *time.Location) string {
	return time.Now().In(zone).Format(TimeLayout)
}

// NowCreatedAt is the audit timestamp for freshly added records.
func NowCreatedAt() string {
	return time.Now().In(DefaultZone).Format(CreatedAtLayout)
}

// NowStamp is the dashed date suffix used for archive file names.
func NowStamp() string {
	return time.Now().In(DefaultZone).Format("02-01-2006")
}

// Short converts a stored date to the dotted display form.
func Short(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(ShortDateLayout)
}

var ruMonths = [...]string{
	"", "января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// Russian renders a stored date as a long Russian date,
// e.g. "25 декабря 2024 года".
func Russian(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d %s %d года", t.Day(), ruMonths[t.Month()], t.Year())
}
