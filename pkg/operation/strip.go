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

package operation

import (
	"bytes"
	"context"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/decache/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewStripOperation creates the operation that removes cache blocks
// from every configured provider file and rewrites changed files in
// place.
func NewStripOperation(opts Options) (Operation, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &stripOperation{
		BaseOperation: NewBaseOperation(opts),
	}, nil
}

// 📦 stripOperation implements the strip operation
type stripOperation struct {
	BaseOperation
}

func (op *stripOperation) Name() string {
	return "strip"
}

// 🏃 Execute processes every file in the configured order. Per-file
// problems are recorded and reported, never propagated: the batch
// always runs to the end of the list. The run finishes with one
// summary line.
func (op *stripOperation) Execute(ctx context.Context) error {
	op.Logger.Debug().
		Str("providers_dir", op.Config.ProvidersDir).
		Int("files", len(op.Config.Providers)).
		Msg("starting strip run")

	for _, name := range op.Config.Providers {
		res := op.processFile(ctx, name)
		op.StatusMgr.Track(ctx, res)
		op.UserLog.LogFileResult(res)
	}

	op.UserLog.LogSummary(op.StatusMgr.Summarize(ctx))
	return nil
}

// 📄 processFile loads, transforms and conditionally rewrites one file
func (op *stripOperation) processFile(ctx context.Context, name string) status.FileResult {
	if op.shouldIgnore(name) {
		return status.FileResult{Path: name, Status: status.StatusSkipped, Reason: "ignored by pattern"}
	}

	exists, err := op.StatusMgr.FileExists(ctx, name)
	if err != nil {
		return status.FileResult{Path: name, Status: status.StatusFailed, Err: err}
	}
	if !exists {
		return status.FileResult{Path: name, Status: status.StatusSkipped, Reason: "file not found"}
	}

	content, err := op.StatusMgr.ReadFile(ctx, name)
	if err != nil {
		return status.FileResult{Path: name, Status: status.StatusFailed, Err: err}
	}

	result, err := op.Engine.Apply(ctx, bytes.NewReader(content))
	if err != nil {
		return status.FileResult{Path: name, Status: status.StatusFailed, Err: err}
	}

	if !result.WasModified {
		return status.FileResult{Path: name, Status: status.StatusUnchanged}
	}

	if op.Config.Backup {
		if err := op.StatusMgr.BackupFile(ctx, name); err != nil {
			return status.FileResult{Path: name, Status: status.StatusFailed, Err: errors.Errorf("backing up file: %w", err)}
		}
	}

	if err := op.StatusMgr.WriteFileAtomic(ctx, name, result.ModifiedContent); err != nil {
		return status.FileResult{Path: name, Status: status.StatusFailed, Err: errors.Errorf("writing file: %w", err)}
	}

	return status.FileResult{
		Path:          name,
		Status:        status.StatusModified,
		RemovedBlocks: result.RemovedBlocks,
	}
}

// 🔍 shouldIgnore checks if a file should be ignored
func (op *stripOperation) shouldIgnore(path string) bool {
	for _, pattern := range op.Config.IgnorePatterns {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			op.Logger.Debug().Str("pattern", pattern).Str("path", path).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			op.Logger.Debug().Str("file", path).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}
	return false
}
