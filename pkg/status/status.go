// Copyright 2026 Gino Bogo
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 EntryStatus represents the outcome of one clone step
type EntryStatus int

const (
	StatusUnknown       EntryStatus = iota
	StatusDirCreated                // Directory created at the destination
	StatusCopied                    // File copied, content untouched
	StatusSubstituted               // File copied and content rewritten
	StatusSkippedBinary             // File copied raw, classified as binary
	StatusSkippedError              // File skipped after a read/write failure
	StatusRemoved                   // Pre-existing destination entry removed
)

// String returns a string representation of EntryStatus
func (s EntryStatus) String() string {
	switch s {
	case StatusDirCreated:
		return "dir created"
	case StatusCopied:
		return "copied"
	case StatusSubstituted:
		return "substituted"
	case StatusSkippedBinary:
		return "skipped binary"
	case StatusSkippedError:
		return "skipped"
	case StatusRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// 📄 Entry records one step of a clone run
type Entry struct {
	Source       string      // Source path, relative to the source root
	Dest         string      // Destination path, relative to the destination root
	Status       EntryStatus // What happened
	Renamed      bool        // Whether name substitution changed the path
	Replacements int         // Content replacements made in this file
	Err          error       // The failure behind a StatusSkippedError entry
}

// 📈 Stats aggregates a clone run
type Stats struct {
	DirsCreated      int // Directories created at the destination
	FilesCopied      int // Files copied, in any form
	FilesSubstituted int // Files whose content was rewritten
	BinariesSkipped  int // Files copied raw because they look binary
	FilesSkipped     int // Files abandoned after a local failure
	Replacements     int // Total content replacements
}

// 🔧 Manager performs destination-side file operations and keeps the
// ordered run log the caller gets back at the end
type Manager struct {
	logger    *zerolog.Logger
	formatter Formatter

	mu        sync.RWMutex
	entries   []Entry
	stats     Stats
	total     int
	processed int
}

// 🏭 New creates a new status manager
func New(logger *zerolog.Logger) *Manager {
	return &Manager{
		logger:    logger,
		formatter: NewDefaultFormatter(),
	}
}

// File operations

// CopyFile copies raw bytes from src to dst, creating parent directories
// if needed. Handles are closed on every exit path.
func (m *Manager) CopyFile(ctx context.Context, src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer srcFile.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	dstFile, err := os.Create(dst)
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return errors.Errorf("copying file content: %w", err)
	}

	return nil
}

// WriteFileAtomic writes content to path through a temp file rename.
// The temp name is randomized so it can never collide with a sibling
// destination file.
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	// Write to temp file
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting temp file mode: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

func (m *Manager) CreateDir(ctx context.Context, path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return errors.Errorf("creating directory: %w", err)
	}
	return nil
}

func (m *Manager) RemoveAll(ctx context.Context, path string) error {
	if err := os.RemoveAll(path); err != nil {
		return errors.Errorf("removing path: %w", err)
	}
	return nil
}

func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

// Run log

// 📝 Track appends an entry to the run log and updates the stats
func (m *Manager) Track(ctx context.Context, entry Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, entry)

	switch entry.Status {
	case StatusDirCreated:
		m.stats.DirsCreated++
	case StatusCopied:
		m.stats.FilesCopied++
	case StatusSubstituted:
		m.stats.FilesCopied++
		m.stats.FilesSubstituted++
	case StatusSkippedBinary:
		m.stats.FilesCopied++
		m.stats.BinariesSkipped++
	case StatusSkippedError:
		m.stats.FilesSkipped++
	}
	m.stats.Replacements += entry.Replacements

	msg := m.formatter.FormatEntry(entry)
	if entry.Err != nil {
		m.logger.Warn().
			Str("source", entry.Source).
			Str("dest", entry.Dest).
			Err(entry.Err).
			Msg(msg)
		return
	}
	m.logger.Info().
		Str("source", entry.Source).
		Str("dest", entry.Dest).
		Str("status", entry.Status.String()).
		Bool("renamed", entry.Renamed).
		Int("replacements", entry.Replacements).
		Msg(msg)
}

// 📜 Entries returns the run log in the order it was produced
func (m *Manager) Entries() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// 📈 Stats returns the aggregated run statistics
func (m *Manager) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stats
}

// 📋 Report renders the run log as human-readable lines
func (m *Manager) Report() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lines := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		lines = append(lines, m.formatter.FormatEntry(entry))
	}
	return lines
}

// Progress reporting

func (m *Manager) StartOperation(ctx context.Context, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	m.processed = 0
	msg := m.formatter.FormatProgress(0, total)
	m.logger.Info().Int("total", total).Msg(msg)
}

func (m *Manager) UpdateProgress(ctx context.Context, processed int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.processed = processed
	msg := m.formatter.FormatProgress(processed, m.total)
	m.logger.Debug().
		Int("processed", processed).
		Int("total", m.total).
		Msg(msg)
}

// FinishOperation reports the final progress. A walk that abandoned a
// subtree finishes short of the pre-counted total, and says so.
func (m *Manager) FinishOperation(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	msg := m.formatter.FormatProgress(m.processed, m.total)
	m.logger.Info().
		Int("processed", m.processed).
		Int("total", m.total).
		Msg(msg)
}
