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
package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/ubackup/cmd/ubackup/opts"
	"github.com/walteh/ubackup/pkg/operation"
	"github.com/walteh/ubackup/pkg/plan"
)

// NewPlanCmd creates a new plan command
func NewPlanCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "List the files a backup would copy",
		Long: `Plan stages the backup exactly like run does, then prints every staged file
with the reason it is stale. Nothing is copied and no after_backup command runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := opts.LoadConfig(ctx, true)
			if err != nil {
				return err
			}

			op := operation.NewStatusOperation(operation.Options{
				Fs:     opts.Fs,
				Plan:   plan.Build(ctx, opts.Fs, cfg),
				Logger: opts.Logger,
			})
			if err := op.Execute(ctx); err != nil {
				return errors.Errorf("listing plan: %w", err)
			}

			return nil
		},
	}

	return cmd
}
