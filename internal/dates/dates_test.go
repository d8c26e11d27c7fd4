package dates

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "25:12:2024", Normalize("25.12.2024"))
	assert.Equal(t, "25:12:2024", Normalize("25/12/2024"))
	assert.Equal(t, "25:12:2024", Normalize("25-12-2024"))
	assert.Equal(t, "25:12:2024", Normalize("25,12,2024"))
	assert.Equal(t, "25:12:2024", Normalize("  25:12:2024  "))
}

func TestExpandDigitRun(t *testing.T) {
	assert.Equal(t, "25:12", ExpandDigitRun("2512"))
	assert.Equal(t, "25:12:2024", ExpandDigitRun("251224"))
	assert.Equal(t, "25:12:2024", ExpandDigitRun("25122024"))
	// Non-digit-run input passes through untouched.
	assert.Equal(t, "25:12", ExpandDigitRun("25:12"))
	assert.Equal(t, "123", ExpandDigitRun("123"))
	assert.Equal(t, "12345", ExpandDigitRun("12345"))
}

func TestCanonicalDate(t *testing.T) {
	zone := DefaultZone

	got, ok := CanonicalDate("25:12:2024", zone)
	require.True(t, ok)
	assert.Equal(t, "25:12:2024", got)

	// Zero padding.
	got, ok = CanonicalDate("5:1:2025", zone)
	require.True(t, ok)
	assert.Equal(t, "05:01:2025", got)

	// 2-digit year expands to 20YY.
	got, ok = CanonicalDate("25:12:24", zone)
	require.True(t, ok)
	assert.Equal(t, "25:12:2024", got)

	// Missing year defaults to the current year in zone.
	year := time.Now().In(zone).Year()
	got, ok = CanonicalDate("25:12", zone)
	require.True(t, ok)
	assert.Equal(t, fmt.Sprintf("25:12:%d", year), got)
}

func TestCanonicalDateRejects(t *testing.T) {
	zone := DefaultZone
	for _, in := range []string{
		"31:02:2025", // no Feb 31
		"29:02:2025", // not a leap year
		"00:01:2025",
		"32:01:2025",
		"15:13:2025",
		"25",
		"25:12:2024:07",
		"2a:12:2024",
		"25:12:20244",
	} {
		_, ok := CanonicalDate(in, zone)
		assert.False(t, ok, "expected %q to be rejected", in)
	}
	// Leap day on an actual leap year is fine.
	got, ok := CanonicalDate("29:02:2024", zone)
	require.True(t, ok)
	assert.Equal(t, "29:02:2024", got)
}

func TestCanonicalTime(t *testing.T) {
	got, ok := CanonicalTime("9:5")
	require.True(t, ok)
	assert.Equal(t, "09:05", got)

	got, ok = CanonicalTime("23:59")
	require.True(t, ok)
	assert.Equal(t, "23:59", got)

	for _, in := range []string{"24:00", "12:60", "12", "12:34:56", "ab:cd", "-1:30"} {
		_, ok := CanonicalTime(in)
		assert.False(t, ok, "expected %q to be rejected", in)
	}
}

func TestValidAmount(t *testing.T) {
	assert.False(t, ValidAmount(0))
	assert.True(t, ValidAmount(1))
	assert.True(t, ValidAmount(2000))
	assert.False(t, ValidAmount(2001))
	assert.False(t, ValidAmount(-5))
}

func TestValidPickerMinute(t *testing.T) {
	for _, m := range PickerMinutes {
		assert.True(t, ValidPickerMinute(m))
	}
	assert.False(t, ValidPickerMinute(5))
	assert.False(t, ValidPickerMinute(55))
}

func TestAtOrdersChronologically(t *testing.T) {
	early := At("01:01:2025", "23:00")
	late := At("02:01:2025", "07:00")
	assert.True(t, early.Before(late))
	assert.True(t, At("bad", "input").IsZero())
}

func TestShortAndRussian(t *testing.T) {
	assert.Equal(t, "25.12.2024", Short("25:12:2024"))
	assert.Equal(t, "25 декабря 2024 года", Russian("25:12:2024"))
	assert.Equal(t, "1 января 2025 года", Russian("01:01:2025"))
	// Unparseable input passes through.
	assert.Equal(t, "nonsense", Short("nonsense"))
	assert.Equal(t, "nonsense", Russian("nonsense"))
}
