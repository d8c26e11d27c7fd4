package storage

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-babyfeed-bot/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestAddAndListAll(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Add(42, "25:12:2024", "09:30", 120, models.RegurgUnknown)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	recs, err := s.ListAll(42)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "25:12:2024", recs[0].Date)
	assert.Equal(t, "09:30", recs[0].Time)
	assert.Equal(t, 120, recs[0].AmountML)
	assert.Equal(t, models.RegurgUnknown, recs[0].Regurg)
	assert.NotEmpty(t, recs[0].CreatedAt)
}

func TestAddSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)
	_, err = s.Add(7, "01:02:2025", "12:00", 90, models.RegurgNo)
	require.NoError(t, err)

	reopened, err := New(dir)
	require.NoError(t, err)
	recs, err := reopened.ListAll(7)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, models.RegurgNo, recs[0].Regurg)
}

// Ids never reuse a freed slot below the current maximum, but deleting the
// highest record makes its id available again.
func TestIDIsMaxPlusOne(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		_, err := s.Add(1, "10:01:2025", "08:00", 100, models.RegurgUnknown)
		require.NoError(t, err)
	}
	deleted, err := s.Delete(1, 2)
	require.NoError(t, err)
	require.True(t, deleted)

	id, err := s.Add(1, "10:01:2025", "09:00", 100, models.RegurgUnknown)
	require.NoError(t, err)
	assert.Equal(t, 4, id)

	deleted, err = s.Delete(1, 4)
	require.NoError(t, err)
	require.True(t, deleted)
	id, err = s.Add(1, "10:01:2025", "10:00", 100, models.RegurgUnknown)
	require.NoError(t, err)
	assert.Equal(t, 4, id)
}

func TestListAllSortsByDateTime(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Add(5, "02:01:2025", "08:00", 100, models.RegurgUnknown)
	require.NoError(t, err)
	_, err = s.Add(5, "01:01:2025", "23:00", 110, models.RegurgUnknown)
	require.NoError(t, err)
	_, err = s.Add(5, "01:01:2025", "07:00", 120, models.RegurgUnknown)
	require.NoError(t, err)

	recs, err := s.ListAll(5)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, 120, recs[0].AmountML)
	assert.Equal(t, 110, recs[1].AmountML)
	assert.Equal(t, 100, recs[2].AmountML)
}

func TestListByDate(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Add(5, "01:01:2025", "08:00", 100, models.RegurgUnknown)
	require.NoError(t, err)
	_, err = s.Add(5, "02:01:2025", "09:00", 110, models.RegurgUnknown)
	require.NoError(t, err)

	recs, err := s.ListByDate(5, "01:01:2025")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 100, recs[0].AmountML)

	recs, err = s.ListByDate(5, "03:01:2025")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestListByRange(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Add(5, "01:01:2025", "08:00", 100, models.RegurgUnknown)
	require.NoError(t, err)
	_, err = s.Add(5, "03:01:2025", "09:00", 110, models.RegurgUnknown)
	require.NoError(t, err)
	_, err = s.Add(5, "05:01:2025", "10:00", 120, models.RegurgUnknown)
	require.NoError(t, err)

	// Bounds are inclusive.
	recs, err := s.ListByRange(5, "01:01:2025", "03:01:2025")
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	// A single-day range behaves like ListByDate.
	recs, err = s.ListByRange(5, "03:01:2025", "03:01:2025")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 110, recs[0].AmountML)

	_, err = s.ListByRange(5, "03:01:2025", "01:01:2025")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestUpdatePartial(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Add(9, "01:01:2025", "08:00", 100, models.RegurgUnknown)
	require.NoError(t, err)

	newTime := "10:30"
	ok, err := s.Update(9, id, models.RecordPatch{Time: &newTime})
	require.NoError(t, err)
	require.True(t, ok)

	recs, err := s.ListAll(9)
	require.NoError(t, err)
	assert.Equal(t, "10:30", recs[0].Time)
	assert.Equal(t, "01:01:2025", recs[0].Date)
	assert.Equal(t, 100, recs[0].AmountML)
}

func TestUpdateEmptyPatchIsNoOp(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Add(9, "01:01:2025", "08:00", 100, models.RegurgUnknown)
	require.NoError(t, err)

	ok, err := s.Update(9, id, models.RecordPatch{})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Update(9, 999, models.RecordPatch{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateRegurg(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Add(9, "01:01:2025", "08:00", 100, models.RegurgUnknown)
	require.NoError(t, err)

	ok, err := s.UpdateRegurg(9, id, models.RegurgMilk)
	require.NoError(t, err)
	require.True(t, ok)

	recs, err := s.ListAll(9)
	require.NoError(t, err)
	assert.Equal(t, models.RegurgMilk, recs[0].Regurg)
}

func TestDeleteAll(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Add(3, "01:01:2025", "08:00", 100, models.RegurgUnknown)
	require.NoError(t, err)
	require.NoError(t, s.DeleteAll(3))

	_, err = os.Stat(s.UserFile(3))
	assert.True(t, os.IsNotExist(err))

	recs, err := s.ListAll(3)
	require.NoError(t, err)
	assert.Empty(t, recs)

	// Wiping an already empty user is fine.
	require.NoError(t, s.DeleteAll(3))
}

// A leftover temp file from an interrupted write must not disturb the
// committed file.
func TestStaleTempFileIgnored(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)
	_, err = s.Add(4, "01:01:2025", "08:00", 100, models.RegurgUnknown)
	require.NoError(t, err)

	tmp := s.UserFile(4) + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte("garbage"), 0o644))

	reopened, err := New(dir)
	require.NoError(t, err)
	recs, err := reopened.ListAll(4)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 100, recs[0].AmountML)
}

func TestMalformedLinesSkipped(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	content := "1;8;01:01:2025;08:00;100;unknown;2025-01-01 08:01\n" +
		"not a record\n" +
		"2;8;01:01:2025;09:00;oops;unknown;2025-01-01 09:01\n" +
		"3;8;01:01:2025;10:00;90;no;2025-01-01 10:01\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "babyfeedbot_8.csv"), []byte(content), 0o644))

	recs, err := s.ListAll(8)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 1, recs[0].ID)
	assert.Equal(t, 3, recs[1].ID)
}

func TestConcurrentAdds(t *testing.T) {
	s := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			userID := int64(n % 2)
			_, err := s.Add(userID, "01:01:2025", "0"+strconv.Itoa(n%10)+":00", 100, models.RegurgUnknown)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for _, userID := range []int64{0, 1} {
		recs, err := s.ListAll(userID)
		require.NoError(t, err)
		require.Len(t, recs, 5)
		seen := map[int]bool{}
		for _, r := range recs {
			seen[r.ID] = true
		}
		// Ids are dense 1..5 per user.
		for id := 1; id <= 5; id++ {
			assert.True(t, seen[id], "user %d missing id %d", userID, id)
		}
	}
}
