package opts

import (
	declog "github.com/walteh/decache/pkg/log"
	"github.com/walteh/decache/pkg/operation"
)

// 🔧 RootOpts holds the shared dependencies for all commands
type RootOpts struct {
	// Options are the batch operation dependencies
	Options operation.Options
	// Console renders aligned per-file report lines
	Console *declog.Logger
	// Runner executes operations
	Runner *operation.OperationRunner
}
