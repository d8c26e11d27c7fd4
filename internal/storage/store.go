// Package storage owns every durable artifact of the bot: one
// semicolon-delimited record file per user plus two flat key-value
// registries. All writes go through a temp file and an atomic rename, so a
// crash mid-write never leaves a truncated current file.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"telegram-babyfeed-bot/internal/dates"
	"telegram-babyfeed-bot/internal/models"
)

const delimiter = ";"

// ErrInvalidRange is returned by ListByRange when end precedes start.
var ErrInvalidRange = errors.New("storage: range end before start")

// Store is the per-user feeding record store. Reads are served from the
// in-memory cache once a user is loaded; every mutation is serialized by a
// single store-wide mutex and becomes visible only after the durable write
// succeeded.
type Store struct {
	dir   string
	mu    sync.Mutex
	cache map[int64][]models.Record
}

// New opens a store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	return &Store{dir: dir, cache: make(map[int64][]models.Record)}, nil
}

// UserFile returns the durable file path for one user's records.
func (s *Store) UserFile(userID int64) string {
	return filepath.Join(s.dir, fmt.Sprintf("babyfeedbot_%d.csv", userID))
}

// Load populates the cache for userID from disk. It is idempotent and safe
// to call redundantly; only the first call per user reads the file.
func (s *Store) Load(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLoaded(userID)
}

// ensureLoaded must be called with the lock held.
func (s *Store) ensureLoaded(userID int64) error {
	if _, ok := s.cache[userID]; ok {
		return nil
	}
	records, err := s.readUserFile(userID)
	if err != nil {
		return err
	}
	s.cache[userID] = records
	return nil
}

func (s *Store) readUserFile(userID int64) ([]models.Record, error) {
	f, err := os.Open(s.UserFile(userID))
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Record{}, nil
		}
		return nil, fmt.Errorf("open records: %w", err)
	}
	defer f.Close()

	var records []models.Record
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		rec, ok := parseLine(line)
		if !ok {
			log.Printf("storage: skipping malformed line in %s: %q", s.UserFile(userID), line)
			continue
		}
		if rec.UserID == userID {
			records = append(records, rec)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return records, nil
}

func parseLine(line string) (models.Record, bool) {
	parts := strings.Split(line, delimiter)
	if len(parts) != 7 {
		return models.Record{}, false
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return models.Record{}, false
	}
	userID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return models.Record{}, false
	}
	amount, err := strconv.Atoi(parts[4])
	if err != nil {
		return models.Record{}, false
	}
	return models.Record{
		ID:        id,
		UserID:    userID,
		Date:      parts[2],
		Time:      parts[3],
		AmountML:  amount,
		Regurg:    models.ParseRegurg(parts[5]),
		CreatedAt: parts[6],
	}, true
}

func formatLine(r models.Record) string {
	return strings.Join([]string{
		strconv.Itoa(r.ID),
		strconv.FormatInt(r.UserID, 10),
		r.Date,
		r.Time,
		strconv.Itoa(r.AmountML),
		string(r.Regurg),
		r.CreatedAt,
	}, delimiter)
}

// writeUserFile persists records for userID via temp file + atomic rename.
func (s *Store) writeUserFile(userID int64, records []models.Record) error {
	target := s.UserFile(userID)
	tmp := target + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, r := range records {
		if _, err := w.WriteString(formatLine(r) + "\n"); err != nil {
			f.Close()
			os.Remove(tmp)
			return fmt.Errorf("write temp: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("flush temp: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Add assigns the next id (max existing + 1), persists and returns it.
// The cache observes the new record only after the durable write succeeded.
func (s *Store) Add(userID int64, date, tm string, amountML int, regurg models.Regurg) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(userID); err != nil {
		return 0, err
	}
	current := s.cache[userID]
	nextID := 0
	for _, r := range current {
		if r.ID > nextID {
			nextID = r.ID
		}
	}
	nextID++
	rec := models.Record{
		ID:        nextID,
		UserID:    userID,
		Date:      date,
		Time:      tm,
		AmountML:  amountML,
		Regurg:    regurg,
		CreatedAt: dates.NowCreatedAt(),
	}
	next := append(cloneRecords(current), rec)
	if err := s.writeUserFile(userID, next); err != nil {
		return 0, err
	}
	s.cache[userID] = next
	return nextID, nil
}

// ListAll returns the user's records sorted ascending by (date, time).
func (s *Store) ListAll(userID int64) ([]models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(userID); err != nil {
		return nil, err
	}
	out := cloneRecords(s.cache[userID])
	sortRecords(out)
	return out, nil
}

// ListByDate returns records on exactly date, sorted ascending by time.
func (s *Store) ListByDate(userID int64, date string) ([]models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(userID); err != nil {
		return nil, err
	}
	var out []models.Record
	for _, r := range s.cache[userID] {
		if r.Date == date {
			out = append(out, r)
		}
	}
	sortRecords(out)
	return out, nil
}

// ListByRange returns records with start <= date <= end, sorted ascending.
func (s *Store) ListByRange(userID int64, start, end string) ([]models.Record, error) {
	from := dates.At(start, "00:00")
	to := dates.At(end, "00:00")
	if to.Before(from) {
		return nil, ErrInvalidRange
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(userID); err != nil {
		return nil, err
	}
	var out []models.Record
	for _, r := range s.cache[userID] {
		d := dates.At(r.Date, "00:00")
		if !d.Before(from) && !d.After(to) {
			out = append(out, r)
		}
	}
	sortRecords(out)
	return out, nil
}

// Update applies the non-nil fields of patch to the record with id.
// It reports whether a matching record existed; an all-empty patch on an
// existing record is a successful no-op.
func (s *Store) Update(userID int64, id int, patch models.RecordPatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(userID); err != nil {
		return false, err
	}
	current := s.cache[userID]
	idx := -1
	for i, r := range current {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}
	next := cloneRecords(current)
	r := &next[idx]
	if patch.Date != nil {
		r.Date = *patch.Date
	}
	if patch.Time != nil {
		r.Time = *patch.Time
	}
	if patch.AmountML != nil {
		r.AmountML = *patch.AmountML
	}
	if patch.Regurg != nil {
		r.Regurg = *patch.Regurg
	}
	if err := s.writeUserFile(userID, next); err != nil {
		return false, err
	}
	s.cache[userID] = next
	return true, nil
}

// UpdateRegurg sets only the regurgitation status of one record.
func (s *Store) UpdateRegurg(userID int64, id int, regurg models.Regurg) (bool, error) {
	return s.Update(userID, id, models.RecordPatch{Regurg: &regurg})
}

// Delete removes at most one record and reports whether it existed.
func (s *Store) Delete(userID int64, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(userID); err != nil {
		return false, err
	}
	current := s.cache[userID]
	next := make([]models.Record, 0, len(current))
	removed := false
	for _, r := range current {
		if r.ID == id {
			removed = true
			continue
		}
		next = append(next, r)
	}
	if !removed {
		return false, nil
	}
	if err := s.writeUserFile(userID, next); err != nil {
		return false, err
	}
	s.cache[userID] = next
	return true, nil
}

// DeleteAll drops the cache entry and removes the durable file entirely.
func (s *Store) DeleteAll(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, userID)
	if err := os.Remove(s.UserFile(userID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove records: %w", err)
	}
	return nil
}

func cloneRecords(in []models.Record) []models.Record {
	out := make([]models.Record, len(in))
	copy(out, in)
	return out
}

func sortRecords(recs []models.Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		return dates.At(recs[i].Date, recs[i].Time).Before(dates.At(recs[j].Date, recs[j].Time))
	})
}
