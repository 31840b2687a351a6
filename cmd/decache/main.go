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

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/decache/cmd/decache/commands"
	"github.com/walteh/decache/pkg/operation"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "decache",
		Short: "Remove redundant in-memory cache blocks from provider source files",
		Long: `decache scans the configured provider source files, removes the
recognizable getCached/setCache statement blocks via line-anchored
pattern matching, and rewrites each changed file in place.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation behaves like "decache run"
			return runStrip(cmd.Context())
		},
	}

	addRootFlags(rootCmd)
	rootCmd.AddCommand(commands.NewRunCmd(newRootOpts))
	rootCmd.AddCommand(commands.NewStatusCmd(newRootOpts))

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}

// runStrip wires dependencies and executes the strip batch
func runStrip(ctx context.Context) error {
	o, err := newRootOpts(ctx)
	if err != nil {
		return err
	}

	op, err := operation.NewStripOperation(o.Options)
	if err != nil {
		return err
	}
	return o.Runner.Run(ctx, op)
}
