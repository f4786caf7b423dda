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
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/walteh/ubackup/pkg/log"
	"github.com/walteh/ubackup/pkg/plan"
	"github.com/walteh/ubackup/pkg/status"
)

// 🎯 Operation is one stage that runs after planning
type Operation interface {
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for operations
type Options struct {
	// Fs is the filesystem files are copied on
	Fs afero.Fs
	// Plan is the staged copy list
	Plan *plan.Plan
	// Commands are the after_backup command lines
	Commands []string
	// Logger receives console output
	Logger *log.Logger
	// Progress shows a progress bar instead of one line per file for large plans
	Progress bool
	// Spawner starts after_backup commands
	Spawner Spawner
	// Formatter renders progress and summary messages
	Formatter status.FileFormatter
}

// 🧱 BaseOperation holds the options shared by every operation
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation fills in defaults for unset options
func NewBaseOperation(opts Options) BaseOperation {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Plan == nil {
		opts.Plan = &plan.Plan{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, zerolog.Nop())
	}
	if opts.Spawner == nil {
		opts.Spawner = StartCommand
	}
	if opts.Formatter == nil {
		opts.Formatter = status.NewDefaultFileFormatter()
	}
	return BaseOperation{Options: opts}
}
