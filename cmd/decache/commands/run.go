package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/walteh/decache/cmd/decache/opts"
	"github.com/walteh/decache/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// OptsBuilder builds the shared dependencies once flags are parsed
type OptsBuilder func(ctx context.Context) (*opts.RootOpts, error)

// NewRunCmd creates a new run command
func NewRunCmd(build OptsBuilder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Strip cache blocks from the configured provider files",
		Long: `Run processes the configured provider files in order. For each file it:
1. Loads the full source text
2. Applies the cache-block removal rules in fixed order
3. Rewrites the file in place when anything changed
4. Reports one line per file and a final total`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			o, err := build(ctx)
			if err != nil {
				return err
			}

			op, err := operation.NewStripOperation(o.Options)
			if err != nil {
				return errors.Errorf("creating strip operation: %w", err)
			}

			if err := o.Runner.Run(ctx, op); err != nil {
				return errors.Errorf("running strip operation: %w", err)
			}

			return nil
		},
	}

	return cmd
}
