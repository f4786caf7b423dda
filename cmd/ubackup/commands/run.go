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
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/ubackup/cmd/ubackup/opts"
	"github.com/walteh/ubackup/pkg/config"
	"github.com/walteh/ubackup/pkg/operation"
	"github.com/walteh/ubackup/pkg/plan"
)

// NewRunCmd creates a new run command
func NewRunCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Back up every file that changed",
		Long: `Run performs a backup pass. This is also what ubackup does without a subcommand.
It will:
1. Parse the configuration file
2. Validate the gathered sections
3. Stage every file whose backup copy is missing or out of date
4. Copy the staged files
5. Start the after_backup commands`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), opts)
		},
	}

	return cmd
}

// 🏃 Run performs a backup pass
func Run(ctx context.Context, opts *opts.RootOpts) error {
	logger := zerolog.Ctx(ctx)

	opts.Logger.Header(time.Now().Format("== 02.01.2006, 15:04:05 =="))

	cfg, err := opts.LoadConfig(ctx, true)
	if err != nil {
		return err
	}

	if opts.Debug {
		if err := writeDump(opts, cfg); err != nil {
			return err
		}
	}

	p := plan.Build(ctx, opts.Fs, cfg)
	logger.Debug().
		Int("staged", len(p.Items)).
		Int("up_to_date", p.UpToDate).
		Int("filtered", p.Filtered).
		Msg("plan built")

	opts.Logger.LogNewline()

	copyOp := operation.NewCopyOperation(operation.Options{
		Fs:       opts.Fs,
		Plan:     p,
		Logger:   opts.Logger,
		Progress: opts.Progress,
	})

	runner := operation.NewRunner(logger)
	if err := runner.Run(ctx, copyOp); err != nil {
		return errors.Errorf("copying files: %w", err)
	}

	opts.Logger.LogNewline()
	switch {
	case copyOp.Failed() > 0:
		opts.Logger.Warning(copyOp.Summary())
	case copyOp.Copied() > 0:
		opts.Logger.Success(copyOp.Summary())
	default:
		opts.Logger.Plain(copyOp.Summary())
	}

	if len(p.Items) == 0 {
		return nil
	}

	afterOp := operation.NewAfterBackupOperation(operation.Options{
		Commands: cfg.Global.AfterBackup,
		Logger:   opts.Logger,
		Spawner:  opts.Spawner,
	})
	if err := runner.Run(ctx, afterOp); err != nil {
		return errors.Errorf("running after_backup commands: %w", err)
	}

	opts.Logger.Plain("All done. Good bye.")
	return nil
}

// writeDump prints the parsed model as YAML
func writeDump(opts *opts.RootOpts, cfg *config.Config) error {
	out, err := config.Dump(cfg)
	if err != nil {
		return errors.Errorf("dumping config: %w", err)
	}
	_, err = fmt.Fprint(opts.Logger.Console(), string(out))
	return err
}
