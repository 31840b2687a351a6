package status

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly console feedback about the run,
// one line per file plus one summary line.
type UserLogger struct {
	log       zerolog.Logger // for debug/error logging
	formatter FileFormatter
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log:       *zerolog.Ctx(ctx),
		formatter: NewDefaultFileFormatter(),
	}
}

// 📝 LogFileResult logs one file outcome with appropriate printer
func (u *UserLogger) LogFileResult(res FileResult) {
	msg := u.formatter.FormatFileResult(res)

	var printer *pterm.PrefixPrinter
	switch res.Status {
	case StatusModified:
		printer = &pterm.Success
	case StatusFailed:
		printer = &pterm.Error
	default:
		printer = &pterm.Info
	}

	printer.Println(msg)
	if res.Err != nil {
		u.log.Error().Err(res.Err).Msg(msg) // Also log to zerolog for debugging
	} else {
		u.log.Info().Msg(msg)
	}
}

// 📊 LogSummary logs the final run summary
func (u *UserLogger) LogSummary(s Summary) {
	msg := u.formatter.FormatSummary(s)
	pterm.Success.Println(msg)
	u.log.Info().
		Int("total_removed", s.TotalRemoved).
		Int("files_attempted", s.FilesAttempted).
		Int("files_modified", s.FilesModified).
		Int("files_skipped", s.FilesSkipped).
		Int("files_failed", s.FilesFailed).
		Msg("run complete")
}
