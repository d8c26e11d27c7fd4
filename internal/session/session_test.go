package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-babyfeed-bot/internal/models"
)

func TestRegistryGetOrCreate(t *testing.T) {
	r := NewRegistry()

	s := r.Get(1)
	require.NotNil(t, s)
	assert.Equal(t, models.StepIdle, s.Step)

	s.Step = models.StepAwaitingDate
	assert.Same(t, s, r.Get(1))
	assert.NotSame(t, s, r.Get(2))
}

func TestRegistryConcurrentGet(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	sessions := make([]*Session, 20)
	for i := range sessions {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sessions[n] = r.Get(7)
		}(i)
	}
	wg.Wait()

	for _, s := range sessions {
		assert.Same(t, sessions[0], s)
	}
}

func TestResetKeepsBookkeeping(t *testing.T) {
	s := &Session{
		Step:          models.StepAwaitingAmount,
		Entry:         &EntryScratch{Date: "25:12:2024", Time: "09:30"},
		Edit:          &EditScratch{ID: 3},
		Range:         &RangeScratch{Start: "01:01:2025"},
		Calendar:      &CalendarScratch{Day: "25"},
		FromSettings:  true,
		PendingMsgIDs: []int{10, 11},
		HeaderMsgID:   9,
	}
	s.Reset()

	assert.Equal(t, models.StepIdle, s.Step)
	assert.Nil(t, s.Entry)
	assert.Nil(t, s.Edit)
	assert.Nil(t, s.Range)
	assert.Nil(t, s.Calendar)
	assert.False(t, s.FromSettings)
	assert.Equal(t, []int{10, 11}, s.PendingMsgIDs)
	assert.Equal(t, 9, s.HeaderMsgID)
}

func TestEnsureScratch(t *testing.T) {
	s := &Session{}

	entry := s.EnsureEntry()
	require.NotNil(t, entry)
	entry.Date = "01:01:2025"
	assert.Same(t, entry, s.EnsureEntry())

	rng := s.EnsureRange()
	require.NotNil(t, rng)
	assert.Same(t, rng, s.EnsureRange())
}
