package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// The recents list is shared by every concurrently running invocation of the
// viewer, so reads and writes go through a file lock kept next to the list.

const recentLockTimeout = 2 * time.Second

func recentPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "recent"), nil
}

// acquireRecentLock obtains the cross-process lock for the recents file.
func acquireRecentLock(timeout time.Duration) (func(), error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	l := flock.New(filepath.Join(dir, "recent.lock"))
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return nil, fmt.Errorf("cannot acquire recents lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("recents list is locked by another process")
		}
		time.Sleep(50 * time.Millisecond)
	}
}

// AddRecent records path as the most recently opened file, deduplicating and
// capping the list at limit entries.
func AddRecent(path string, limit int) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	release, err := acquireRecentLock(recentLockTimeout)
	if err != nil {
		return err
	}
	defer release()

	entries, err := readRecents()
	if err != nil {
		return err
	}
	out := []string{abs}
	for _, e := range entries {
		if e != abs {
			out = append(out, e)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return writeRecents(out)
}

// LoadRecents returns recently opened files, most recent first.
func LoadRecents() ([]string, error) {
	release, err := acquireRecentLock(recentLockTimeout)
	if err != nil {
		return nil, err
	}
	defer release()
	return readRecents()
}

// ClearRecents empties the recents list.
func ClearRecents() error {
	release, err := acquireRecentLock(recentLockTimeout)
	if err != nil {
		return err
	}
	defer release()

	p, err := recentPath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot clear recents %s: %w", p, err)
	}
	return nil
}

func readRecents() ([]string, error) {
	p, err := recentPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot read recents %s: %w", p, err)
	}
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out, nil
}

func writeRecents(entries []string) error {
	p, err := recentPath()
	if err != nil {
		return err
	}
	data := strings.Join(entries, "\n")
	if data != "" {
		data += "\n"
	}
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		return fmt.Errorf("cannot write recents %s: %w", p, err)
	}
	return nil
}
