package storage

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
)

// KV is a small per-user key-value registry over a colon-delimited flat
// file ("userId:value", one per line). The whole file is read once at open
// and rewritten atomically on every Set. Used for the delete-preference and
// timezone registries.
type KV struct {
	path string
	mu   sync.Mutex
	vals map[int64]string
}

// OpenKV loads the registry at path, tolerating a missing file and
// skipping malformed lines.
func OpenKV(path string) (*KV, error) {
	kv := &KV{path: path, vals: make(map[int64]string)}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return kv, nil
		}
		return nil, fmt.Errorf("open registry: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			log.Printf("storage: skipping malformed registry line in %s: %q", path, line)
			continue
		}
		id, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil {
			log.Printf("storage: skipping malformed registry line in %s: %q", path, line)
			continue
		}
		kv.vals[id] = strings.TrimSpace(parts[1])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	return kv, nil
}

// Get returns the stored value for userID. Absence is meaningful: it
// drives first-run onboarding.
func (k *KV) Get(userID int64) (string, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	v, ok := k.vals[userID]
	return v, ok
}

// All returns a copy of every stored entry.
func (k *KV) All() map[int64]string {
	k.mu.Lock()
	defer k.mu.Unlock()
	out := make(map[int64]string, len(k.vals))
	for id, v := range k.vals {
		out[id] = v
	}
	return out
}

// Set stores value for userID, persisting via temp file + atomic rename.
// The in-memory view changes only after the durable write succeeded.
func (k *KV) Set(userID int64, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	next := make(map[int64]string, len(k.vals)+1)
	for id, v := range k.vals {
		next[id] = v
	}
	next[userID] = value

	tmp := k.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	w := bufio.NewWriter(f)
	for id, v := range next {
		if _, err := fmt.Fprintf(w, "%d:%s\n", id, v); err != nil {
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
	if err := os.Rename(tmp, k.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("commit: %w", err)
	}
	k.vals = next
	return nil
}
