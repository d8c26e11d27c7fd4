// Package session keeps per-chat dialog state. Sessions are never
// persisted; losing them on restart only resets in-flight dialogs.
package session

import (
	"sync"

	"telegram-babyfeed-bot/internal/models"
)

// EntryScratch collects fields for a new feeding entry.
type EntryScratch struct {
	Date string
	Time string
	Hour string // set between the hour and minute picker steps
}

// EditScratch collects fields while editing record ID. Nil fields were
// skipped and keep their stored values.
type EditScratch struct {
	ID   int
	Date *string
	Time *string
	Hour string
}

// RangeScratch collects the bounds of a period summary.
type RangeScratch struct {
	Start string
	End   string
}

// CalendarScratch holds the day/month picked so far and the step whose
// date input the finished calendar result is re-injected into.
type CalendarScratch struct {
	Day      string
	Month    string
	ReturnTo models.Step
}

// Session is the transient state of one chat.
type Session struct {
	Step models.Step

	// scratch, one variant per dialog family
	Entry    *EntryScratch
	Edit     *EditScratch
	Range    *RangeScratch
	Calendar *CalendarScratch

	// settings flow marker: timezone change was opened from the
	// settings menu rather than onboarding
	FromSettings bool

	// UI bookkeeping, survives Reset
	PendingMsgIDs []int // bot messages eligible for cleanup
	HeaderMsgID   int   // pinned header message, 0 = not sent
}

// Reset returns the session to Idle and discards all scratch data.
// Message bookkeeping is kept: cleanup preferences are orthogonal to
// dialog state.
func (s *Session) Reset() {
	s.Step = models.StepIdle
	s.Entry = nil
	s.Edit = nil
	s.Range = nil
	s.Calendar = nil
	s.FromSettings = false
}

// EnsureEntry returns the entry scratch, creating it if absent.
func (s *Session) EnsureEntry() *EntryScratch {
	if s.Entry == nil {
		s.Entry = &EntryScratch{}
	}
	return s.Entry
}

// EnsureRange returns the range scratch, creating it if absent.
func (s *Session) EnsureRange() *RangeScratch {
	if s.Range == nil {
		s.Range = &RangeScratch{}
	}
	return s.Range
}

// Registry hands out sessions with get-or-create semantics. It is safe
// for concurrent use across chats; events within one chat arrive in order,
// so the session itself needs no lock.
type Registry struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewRegistry returns an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[int64]*Session)}
}

// Get returns the session for chatID, creating an Idle one on first
// contact.
func (r *Registry) Get(chatID int64) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[chatID]
	if !ok {
		s = &Session{Step: models.StepIdle}
		r.sessions[chatID] = s
	}
	return s
}
