package status

import (
	"fmt"
)

// FileFormatter defines how per-file outcomes and the run summary are
// rendered for the console.
type FileFormatter interface {
	// FormatFileResult formats the outcome line for one file
	FormatFileResult(res FileResult) string

	// FormatSummary formats the final run summary line
	FormatSummary(s Summary) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileResult formats a file outcome with emojis
func (f *DefaultFileFormatter) FormatFileResult(res FileResult) string {
	switch res.Status {
	case StatusModified:
		return fmt.Sprintf("✅ %s - %d cache blocks removed", res.Path, res.RemovedBlocks)
	case StatusUnchanged:
		return fmt.Sprintf("⏭️  %s - no change", res.Path)
	case StatusSkipped:
		reason := res.Reason
		if reason == "" {
			reason = "skipped"
		}
		return fmt.Sprintf("⏭️  %s - %s", res.Path, reason)
	case StatusFailed:
		return fmt.Sprintf("❌ %s - %v", res.Path, res.Err)
	default:
		return fmt.Sprintf("❓ %s", res.Path)
	}
}

// FormatSummary formats the final summary with emoji
func (f *DefaultFileFormatter) FormatSummary(s Summary) string {
	return fmt.Sprintf("🎉 Total: %d cache blocks removed across %d files", s.TotalRemoved, s.FilesAttempted)
}
