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

package operation

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/ubackup/pkg/config"
)

// 🚀 Spawner starts a command without waiting for it
type Spawner func(name string, args ...string) error

// StartCommand starts the command and detaches from it
func StartCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return errors.Errorf("starting %s: %w", name, err)
	}
	if err := cmd.Process.Release(); err != nil {
		return errors.Errorf("releasing %s: %w", name, err)
	}
	return nil
}

// 🚀 AfterBackupOperation spawns the after_backup commands
type AfterBackupOperation struct {
	BaseOperation
}

// 🚀 NewAfterBackupOperation creates a new after-backup operation
func NewAfterBackupOperation(opts Options) *AfterBackupOperation {
	return &AfterBackupOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// 🏃 Execute starts each command line in order. Command lines are split like
// filter values, so quoted arguments may hold spaces. A command that fails to
// start is reported and the rest still run.
func (op *AfterBackupOperation) Execute(ctx context.Context) error {
	if len(op.Commands) == 0 {
		return nil
	}

	logger := zerolog.Ctx(ctx)
	op.Logger.Plain("Performing post-backup operations...")

	for _, line := range op.Commands {
		argv := config.Tokenize(line)
		if len(argv) == 0 {
			continue
		}

		if err := op.Spawner(argv[0], argv[1:]...); err != nil {
			logger.Debug().Err(err).Str("command", line).Msg("spawn failed")
			op.Logger.Diagnostic(config.Diagnostic{
				Severity: config.SeverityProblem,
				Message:  fmt.Sprintf("Couldn't run after_backup command: '%s'", line),
			})
			continue
		}
		logger.Debug().Strs("argv", argv).Msg("spawned after_backup command")
	}

	return nil
}
