package logging

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

const logFilePerm = 0o600

// RotatorConfig controls a size-based rotating log file.
type RotatorConfig struct {
	Dir        string
	Name       string // defaults to dockpane.log
	MaxSizeMB  int    // defaults to 10
	MaxBackups int    // 0 keeps every backup
	MaxAge     time.Duration
	Compress   bool
}

// LogRotator is an io.Writer that rotates its file once it grows past
// MaxSizeMB. Used when the terminal belongs to the interactive UI.
type LogRotator struct {
	mu   sync.Mutex
	cfg  RotatorConfig
	file *os.File
	size int64
	now  func() time.Time
}

// NewLogRotator opens (or creates) the current log file in cfg.Dir.
func NewLogRotator(cfg RotatorConfig) (*LogRotator, error) {
	if cfg.Dir == "" {
		return nil, errors.New("log directory cannot be empty")
	}
	if cfg.Name == "" {
		cfg.Name = "dockpane.log"
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}
	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	r := &LogRotator{cfg: cfg, now: time.Now}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the path of the active log file.
func (r *LogRotator) Path() string {
	return filepath.Join(r.cfg.Dir, r.cfg.Name)
}

func (r *LogRotator) open() error {
	file, err := os.OpenFile(r.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	r.file = file
	r.size = info.Size()
	return nil
}

func (r *LogRotator) maxBytes() int64 {
	return int64(r.cfg.MaxSizeMB) * 1024 * 1024
}

// Write implements io.Writer.
func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.size > 0 && r.size+int64(len(p)) > r.maxBytes() {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	r.file = nil

	backup := fmt.Sprintf("%s.%s", r.Path(), r.now().Format("2006-01-02-15-04-05.000"))
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	if r.cfg.Compress {
		if err := gzipFile(backup); err == nil {
			_ = os.Remove(backup)
		}
	}

	r.prune()
	return r.open()
}

func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	zw := gzip.NewWriter(out)
	if _, err := io.Copy(zw, in); err != nil {
		return err
	}
	return zw.Close()
}

// Backups returns rotated files, oldest first.
func (r *LogRotator) Backups() []string {
	entries, err := os.ReadDir(r.cfg.Dir)
	if err != nil {
		return nil
	}

	prefix := r.cfg.Name + "."
	var backups []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), prefix) {
			backups = append(backups, filepath.Join(r.cfg.Dir, entry.Name()))
		}
	}
	// Timestamp suffixes sort chronologically.
	slices.Sort(backups)
	return backups
}

func (r *LogRotator) prune() {
	backups := r.Backups()

	if r.cfg.MaxAge > 0 {
		kept := backups[:0]
		for _, path := range backups {
			info, err := os.Stat(path)
			if err == nil && r.now().Sub(info.ModTime()) > r.cfg.MaxAge {
				_ = os.Remove(path)
				continue
			}
			kept = append(kept, path)
		}
		backups = kept
	}

	if r.cfg.MaxBackups > 0 && len(backups) > r.cfg.MaxBackups {
		for _, path := range backups[:len(backups)-r.cfg.MaxBackups] {
			_ = os.Remove(path)
		}
	}
}

// Close closes the active file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
