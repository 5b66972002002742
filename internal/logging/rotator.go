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

	"github.com/rs/zerolog"
)

const backupTimeFormat = "2006-01-02-15-04-05.000000"

// LogRotator is an io.Writer that appends to baseDir/baseName and rotates the
// file once it would exceed maxSize. Rotated files are named
// baseName.<timestamp>, optionally gzip-compressed, and pruned by age and count.
//
// Problems that do not stop rotation (compression, pruning) are written as
// warnings into the fresh log file, never to the terminal.
type LogRotator struct {
	mu          sync.Mutex
	baseDir     string
	baseName    string
	maxSize     int64 // bytes
	maxAge      time.Duration
	maxBackups  int
	compress    bool
	currentFile *os.File
	currentSize int64

	// remove deletes a file; tests replace it to simulate failures.
	remove func(string) error
}

// NewLogRotator opens (or creates) baseDir/baseName for appending.
func NewLogRotator(baseDir, baseName string, maxSizeMB, maxBackups, maxAgeDays int, compress bool) (*LogRotator, error) {
	if maxSizeMB < 1 {
		return nil, fmt.Errorf("log max size must be at least 1 MB (got %d)", maxSizeMB)
	}
	r := &LogRotator{
		baseDir:    baseDir,
		baseName:   baseName,
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		maxAge:     time.Duration(maxAgeDays) * 24 * time.Hour,
		maxBackups: maxBackups,
		compress:   compress,
		remove:     os.Remove,
	}

	if err := r.openCurrentFile(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LogRotator) openCurrentFile() error {
	logPath := r.Path()

	if info, err := os.Stat(logPath); err == nil {
		r.currentSize = info.Size()
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.currentFile = file
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.openCurrentFile(); err != nil {
			return 0, err
		}
	}

	if r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}
	return r.writeLocked(p)
}

func (r *LogRotator) writeLocked(p []byte) (int, error) {
	n, err := r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

// rotate moves the active file aside and reopens baseName. Only failing to
// move or reopen the file is fatal.
func (r *LogRotator) rotate() error {
	var warnings []error

	if r.currentFile != nil {
		if err := r.currentFile.Close(); err != nil {
			warnings = append(warnings, fmt.Errorf("close log file: %w", err))
		}
		r.currentFile = nil
	}

	backupPath := filepath.Join(r.baseDir, r.baseName+"."+time.Now().Format(backupTimeFormat))
	if err := os.Rename(r.Path(), backupPath); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if r.compress {
		if err := compressFile(backupPath); err != nil {
			warnings = append(warnings, fmt.Errorf("compress %s: %w", backupPath, err))
		} else if err := r.remove(backupPath); err != nil {
			warnings = append(warnings, fmt.Errorf("remove uncompressed %s: %w", backupPath, err))
		}
	}

	warnings = append(warnings, r.prune()...)

	r.currentSize = 0
	if err := r.openCurrentFile(); err != nil {
		return err
	}
	r.reportLocked(warnings)
	return nil
}

// reportLocked writes rotation warnings as JSON log lines into the active file.
func (r *LogRotator) reportLocked(warnings []error) {
	if len(warnings) == 0 {
		return
	}
	logger := zerolog.New(lockedWriter{r}).With().Timestamp().Str("component", "logrotate").Logger()
	for _, err := range warnings {
		logger.Warn().Err(err).Msg("log rotation problem")
	}
}

// lockedWriter writes to the active file while the rotator lock is held.
type lockedWriter struct {
	r *LogRotator
}

func (w lockedWriter) Write(p []byte) (int, error) {
	return w.r.writeLocked(p)
}

func compressFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, in.Close()) }()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, out.Close()) }()

	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		_ = gz.Close()
		return err
	}
	return gz.Close()
}

// prune removes backups older than maxAge, then the oldest beyond maxBackups.
func (r *LogRotator) prune() []error {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return []error{fmt.Errorf("read log directory: %w", err)}
	}

	var (
		problems []error
		backups  []os.FileInfo
	)
	now := time.Now()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), r.baseName+".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if r.maxAge > 0 && now.Sub(info.ModTime()) > r.maxAge {
			if err := r.remove(filepath.Join(r.baseDir, info.Name())); err != nil {
				problems = append(problems, fmt.Errorf("remove expired backup: %w", err))
			}
			continue
		}
		backups = append(backups, info)
	}

	if r.maxBackups <= 0 || len(backups) <= r.maxBackups {
		return problems
	}
	slices.SortFunc(backups, func(a, b os.FileInfo) int {
		return a.ModTime().Compare(b.ModTime())
	})
	for _, info := range backups[:len(backups)-r.maxBackups] {
		if err := r.remove(filepath.Join(r.baseDir, info.Name())); err != nil {
			problems = append(problems, fmt.Errorf("remove excess backup: %w", err))
		}
	}
	return problems
}

// Path returns the active log file path.
func (r *LogRotator) Path() string {
	return filepath.Join(r.baseDir, r.baseName)
}

func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}
