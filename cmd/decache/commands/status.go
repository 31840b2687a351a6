package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/decache/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(build OptsBuilder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report which files still contain removable cache blocks",
		Long: `Status is a dry run: it applies the removal rules to every configured
file and reports what would change, without writing anything.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			o, err := build(ctx)
			if err != nil {
				return err
			}

			op, err := operation.NewStatusOperation(o.Options, o.Console)
			if err != nil {
				return errors.Errorf("creating status operation: %w", err)
			}

			if err := o.Runner.Run(ctx, op); err != nil {
				return errors.Errorf("running status operation: %w", err)
			}

			return nil
		},
	}

	return cmd
}
