package rules

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📄 Result holds the outcome of one engine pass over a file buffer
type Result struct {
	OriginalContent []byte // Content before any rule ran
	ModifiedContent []byte // Content after all rules ran
	WasModified     bool   // Whether any rule changed the buffer
	RemovedBlocks   int    // Approximate count, by marker-name delta
}

// ⚙️ Engine applies an ordered rule set to whole-file text buffers
type Engine struct {
	rules []Rule
}

// 🏭 NewEngine creates an engine over the given rules. Most callers
// want NewEngine(DefaultRules()).
func NewEngine(rules []Rule) *Engine {
	return &Engine{rules: rules}
}

// Apply runs every rule in order against the full content and returns
// the transformed buffer. Zero matches is not an error: the result is
// the input, unchanged byte-for-byte. Unrecognized code shapes are
// left untouched.
func (e *Engine) Apply(ctx context.Context, content io.Reader) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	original, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	current := string(original)
	for _, rule := range e.rules {
		next := rule.Pattern.ReplaceAllString(current, rule.Replace)
		if next != current {
			logger.Debug().Str("rule", rule.Name).Msg("rule applied")
		}
		current = next
	}

	result := &Result{
		OriginalContent: original,
		ModifiedContent: []byte(current),
	}
	if current != string(original) {
		result.WasModified = true
		result.RemovedBlocks = CountMarkers(string(original)) - CountMarkers(current)
	}
	return result, nil
}
