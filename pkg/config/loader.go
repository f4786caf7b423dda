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

package config

import (
	"context"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// DefaultFileName is the configuration file looked up when none is given
const DefaultFileName = "configuration.ini"

// AppName names the XDG config subdirectory
const AppName = "ubackup"

// 🎯 Load reads and parses the configuration file at path
func Load(ctx context.Context, fsys afero.Fs, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	f, err := fsys.Open(path)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("opening configuration")
		return nil, fatalf("You must create configuration file: '%s'. Quitting..", path)
	}
	defer f.Close()

	cfg, err := Parse(ctx, f)
	if err != nil {
		return nil, errors.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// 🧭 Locate picks the configuration file to load. An explicit path wins, then
// DefaultFileName in the working directory, then ubackup/configuration.ini in
// the XDG config directories.
func Locate(fsys afero.Fs, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if ok, _ := afero.Exists(fsys, DefaultFileName); ok {
		return DefaultFileName, nil
	}

	path, err := xdg.SearchConfigFile(filepath.Join(AppName, DefaultFileName))
	if err != nil {
		return "", fatalf("You must create configuration file: '%s'. Quitting..", DefaultFileName)
	}
	return path, nil
}
