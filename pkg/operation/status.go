package operation

import (
	"bytes"
	"context"

	declog "github.com/walteh/decache/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewStatusOperation creates the dry-run operation: it reports which
// files still contain removable cache blocks without writing anything.
func NewStatusOperation(opts Options, console *declog.Logger) (Operation, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if console == nil {
		return nil, errors.Errorf("console logger is required")
	}
	return &statusOperation{
		BaseOperation: NewBaseOperation(opts),
		console:       console,
	}, nil
}

// 🔍 statusOperation implements the dry-run check
type statusOperation struct {
	BaseOperation
	console *declog.Logger
}

func (op *statusOperation) Name() string {
	return "status"
}

// Execute walks the target file set and prints one aligned line per
// file. Files are never modified.
func (op *statusOperation) Execute(ctx context.Context) error {
	op.console.Header("checking provider files for removable cache blocks")

	dirty := 0
	for _, name := range op.Config.Providers {
		fileOp := op.checkFile(ctx, name)
		if fileOp.IsModified {
			dirty++
		}
		op.console.LogFileOperation(ctx, fileOp)
	}

	op.console.LogNewline()
	if dirty == 0 {
		op.console.Success("all files are clean")
	} else {
		op.console.Warningf("%d of %d files contain removable cache blocks", dirty, len(op.Config.Providers))
	}
	return nil
}

// checkFile runs the engine without persisting the result
func (op *statusOperation) checkFile(ctx context.Context, name string) declog.FileOperation {
	exists, err := op.StatusMgr.FileExists(ctx, name)
	if err != nil {
		return declog.FileOperation{Path: name, Status: "unreadable", IsFailed: true}
	}
	if !exists {
		return declog.FileOperation{Path: name, Status: "not found", IsSkipped: true}
	}

	content, err := op.StatusMgr.ReadFile(ctx, name)
	if err != nil {
		return declog.FileOperation{Path: name, Status: "unreadable", IsFailed: true}
	}

	result, err := op.Engine.Apply(ctx, bytes.NewReader(content))
	if err != nil {
		return declog.FileOperation{Path: name, Status: "unreadable", IsFailed: true}
	}

	if !result.WasModified {
		return declog.FileOperation{Path: name, Status: "clean"}
	}

	return declog.FileOperation{
		Path:          name,
		Status:        "would change",
		RemovedBlocks: result.RemovedBlocks,
		IsModified:    true,
	}
}
