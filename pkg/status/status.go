// Copyright 2025 walteh LLC
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

// 📊 FileStatus represents the outcome of processing one file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusModified             // Blocks were removed and the file rewritten
	StatusUnchanged            // File exists but no rule matched
	StatusSkipped              // File missing or ignored, nothing recorded
	StatusFailed               // Read or write failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileResult is the per-file outcome record
type FileResult struct {
	Path          string     // File name relative to the base directory
	Status        FileStatus // Outcome variant
	RemovedBlocks int        // Approximate removed-block count, modified files only
	Reason        string     // Why the file was skipped, when it was
	Err           error      // The failure, when Status is StatusFailed
}

// 📈 Summary aggregates results over one run
type Summary struct {
	TotalRemoved   int // Sum of per-file approximate counts
	FilesAttempted int // Every file in the target set, skips included
	FilesModified  int
	FilesUnchanged int
	FilesSkipped   int
	FilesFailed    int
}

// 🔧 Manager scopes file system operations to one base directory and
// tracks per-file results as the batch progresses.
type Manager struct {
	baseDir string
	logger  *zerolog.Logger

	mu      sync.RWMutex
	order   []string
	results map[string]FileResult
}

// 🏭 New creates a new status manager
func New(baseDir string, logger *zerolog.Logger) *Manager {
	return &Manager{
		baseDir: filepath.Clean(baseDir),
		logger:  logger,
		results: make(map[string]FileResult),
	}
}

// 🔒 getAbsPath returns the absolute path for a given relative path
func (m *Manager) getAbsPath(path string) string {
	return filepath.Join(m.baseDir, path)
}

// File system operations

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.getAbsPath(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(m.getAbsPath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

// WriteFileAtomic overwrites the file at the identical path via a temp
// file and rename, so a failed write never leaves a half-written file.
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	absPath := m.getAbsPath(path)
	tempPath := absPath + ".tmp"

	if err := os.WriteFile(tempPath, content, 0644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// BackupFile copies the file to a .bak sibling before it gets rewritten
func (m *Manager) BackupFile(ctx context.Context, path string) error {
	absPath := m.getAbsPath(path)
	backupPath := absPath + ".bak"

	// Only backup if file exists
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return errors.Errorf("checking file existence: %w", err)
	}

	if err := copyFile(absPath, backupPath); err != nil {
		return errors.Errorf("creating backup: %w", err)
	}

	return nil
}

// Result tracking

// Track records the outcome for one file and logs it
func (m *Manager) Track(ctx context.Context, res FileResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, seen := m.results[res.Path]; !seen {
		m.order = append(m.order, res.Path)
	}
	m.results[res.Path] = res

	evt := m.logger.Info().
		Str("file", res.Path).
		Str("status", res.Status.String())
	if res.Status == StatusModified {
		evt = evt.Int("removed_blocks", res.RemovedBlocks)
	}
	if res.Reason != "" {
		evt = evt.Str("reason", res.Reason)
	}
	if res.Err != nil {
		evt = evt.Err(res.Err)
	}
	evt.Msg("file processed")
}

// GetResult returns the recorded outcome for one file
func (m *Manager) GetResult(ctx context.Context, path string) (FileResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res, ok := m.results[path]
	if !ok {
		return FileResult{}, errors.Errorf("file not tracked: %s", path)
	}
	return res, nil
}

// Results returns all recorded outcomes in tracking order
func (m *Manager) Results(ctx context.Context) []FileResult {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]FileResult, 0, len(m.order))
	for _, path := range m.order {
		results = append(results, m.results[path])
	}
	return results
}

// Summarize folds the tracked results into run totals
func (m *Manager) Summarize(ctx context.Context) Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var s Summary
	for _, res := range m.results {
		s.FilesAttempted++
		switch res.Status {
		case StatusModified:
			s.FilesModified++
			s.TotalRemoved += res.RemovedBlocks
		case StatusUnchanged:
			s.FilesUnchanged++
		case StatusSkipped:
			s.FilesSkipped++
		case StatusFailed:
			s.FilesFailed++
		}
	}
	return s
}

// Helper functions

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer source.Close()

	destination, err := os.Create(dst)
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return errors.Errorf("copying file: %w", err)
	}

	return nil
}
