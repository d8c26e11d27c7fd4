package scheduler

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/go-co-op/gocron/v2"

	"telegram-babyfeed-bot/internal/dates"
)

// Start registers a nightly job that snapshots every per-user data file
// into the archive directory. The job fires at local midnight in the
// default zone.
func Start(dataDir, archiveDir string) (gocron.Scheduler, error) {
	if err := os.MkdirAll(archiveDir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}
	s, err := gocron.NewScheduler(gocron.WithLocation(dates.DefaultZone))
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 0, 0))),
		gocron.NewTask(func() {
			if err := ArchiveNow(dataDir, archiveDir); err != nil {
				log.Println("scheduler: archive failed:", err)
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	s.Start()
	return s, nil
}

// ArchiveNow copies every user data file into archiveDir with the current
// date appended to the name.
func ArchiveNow(dataDir, archiveDir string) error {
	if err := os.MkdirAll(archiveDir, 0o755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}
	files, err := filepath.Glob(filepath.Join(dataDir, "babyfeedbot_*.csv"))
	if err != nil {
		return fmt.Errorf("glob data dir: %w", err)
	}

	stamp := dates.NowStamp()
	for _, src := range files {
		base := filepath.Base(src)
		ext := filepath.Ext(base)
		name := base[:len(base)-len(ext)] + "_" + stamp + ext
		if err := copyFile(src, filepath.Join(archiveDir, name)); err != nil {
			log.Printf("scheduler: archive %s failed: %v", base, err)
			continue
		}
	}
	log.Printf("scheduler: archived %d files to %s", len(files), archiveDir)
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
