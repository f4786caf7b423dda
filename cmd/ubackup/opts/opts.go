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

package opts

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/ubackup/pkg/config"
	"github.com/walteh/ubackup/pkg/log"
	"github.com/walteh/ubackup/pkg/operation"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	Debug      bool
	LogFile    string

	Fs       afero.Fs
	Logger   *log.Logger
	Progress bool

	// Spawner starts after_backup commands, operation.StartCommand when nil
	Spawner operation.Spawner
}

// 📚 LoadConfig locates, parses and optionally validates the configuration,
// printing every diagnostic raised on the way
func (o *RootOpts) LoadConfig(ctx context.Context, validate bool) (*config.Config, error) {
	path, err := config.Locate(o.Fs, o.ConfigFile)
	if err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("using configuration file")

	o.Logger.Plain("Parsing configuration file...")
	cfg, err := config.Load(ctx, o.Fs, path)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	o.printDiagnostics(cfg, 0)

	if !validate {
		return cfg, nil
	}

	o.Logger.Plain("Validating gathered sections...")
	seen := len(cfg.Diagnostics)
	if err := config.Validate(ctx, o.Fs, cfg); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	o.printDiagnostics(cfg, seen)
	o.Logger.Plain("Done.")

	return cfg, nil
}

func (o *RootOpts) printDiagnostics(cfg *config.Config, from int) {
	for _, d := range cfg.Diagnostics[from:] {
		o.Logger.Diagnostic(d)
	}
}
