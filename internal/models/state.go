package models

// Step is the current position of a chat inside a dialog.
type Step int

const (
	StepIdle Step = iota

	// new feeding entry
	StepAwaitingDate
	StepAwaitingTime
	StepAwaitingAmount
	StepAwaitingHour
	StepAwaitingMinutes

	// editing an existing record
	StepAwaitingEditDate
	StepAwaitingEditTime
	StepAwaitingEditAmount
	StepAwaitingEditHour
	StepAwaitingEditMinutes

	// query flows
	StepAwaitingStatsDate
	StepAwaitingStatsStartDate
	StepAwaitingStatsEndDate
	StepAwaitingListDate
	StepAwaitingDeleteListDate

	// calendar sub-dialog
	StepAwaitingCalendarDay
	StepAwaitingCalendarMonth
	StepAwaitingCalendarYear

	// first-run onboarding
	StepAwaitingDeletePreference
)

// IsDateStep reports whether the step expects a date as its next input.
func (s Step) IsDateStep() bool {
	switch s {
	case StepAwaitingDate, StepAwaitingEditDate, StepAwaitingStatsDate,
		StepAwaitingListDate, StepAwaitingDeleteListDate,
		StepAwaitingStatsStartDate, StepAwaitingStatsEndDate:
		return true
	}
	return false
}
