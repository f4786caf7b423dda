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
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/walteh/ubackup/pkg/walk"
)

// illegalPatternChars may not appear in filter patterns
const illegalPatternChars = `<>:/\|`

// 🔍 Validate checks the parsed config against the filesystem. It creates the
// backup root, drops missing source paths and invalid patterns, and creates
// section destinations. Sections that cannot be backed up are removed from
// cfg.Sections; only a backup root that cannot be created is fatal.
func Validate(ctx context.Context, fsys afero.Fs, cfg *Config) error {
	logger := zerolog.Ctx(ctx)

	exists, _ := afero.Exists(fsys, cfg.Global.BackupRoot)
	if !exists {
		if err := fsys.MkdirAll(cfg.Global.BackupRoot, 0o755); err != nil {
			logger.Debug().Err(err).Str("path", cfg.Global.BackupRoot).Msg("creating backup root")
			return fatalf("It was not possible to create backup_dir. ")
		}
		cfg.noticef(ctx, 0, "", "Successfully created directory backup_dir.")
	}

	kept := cfg.Sections[:0]
	for _, sect := range cfg.Sections {
		sect.Destination = strings.Trim(sect.Destination, `"`)
		for i := range sect.Paths {
			sect.Paths[i] = strings.Trim(sect.Paths[i], `"`)
		}

		if !validatePaths(ctx, fsys, cfg, sect) {
			continue
		}

		sanitizeFilters(ctx, cfg, sect)

		if !resolveDestination(ctx, fsys, cfg, sect) {
			continue
		}

		kept = append(kept, sect)
	}
	cfg.Sections = kept

	logger.Debug().Int("sections", len(cfg.Sections)).Msg("validated sections")
	return nil
}

// validatePaths expands wildcards and drops source paths that do not exist.
// It returns false when the section has no path left.
func validatePaths(ctx context.Context, fsys afero.Fs, cfg *Config, sect *Section) bool {
	declared := len(sect.Paths)
	var existing []string

	for _, path := range sect.Paths {
		matches, err := walk.Expand(fsys, path)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Err(err).Str("path", path).Msg("expanding path")
		}

		found := false
		for _, m := range matches {
			if ok, _ := afero.Exists(fsys, m); ok {
				existing = append(existing, filepath.Clean(m))
				found = true
			}
		}
		if found {
			continue
		}

		if declared == 1 {
			cfg.noticef(ctx, sect.Line, sect.Label, "Path from '%s' section does not exists. Skipping...", sect.Label)
			return false
		}
		cfg.noticef(ctx, sect.Line, sect.Label, "Path: '%s' does not exists. Skipping...", truncate(path, 25))
	}

	if len(existing) == 0 {
		cfg.noticef(ctx, sect.Line, sect.Label, "There is no existing 'path' in '%s' section. Skipping...", sect.Label)
		return false
	}

	sect.Paths = existing
	return true
}

// sanitizeFilters removes empty patterns and patterns with path-illegal characters
func sanitizeFilters(ctx context.Context, cfg *Config, sect *Section) {
	for _, c := range Categories {
		spec := sect.Filter(c)
		if spec == nil {
			continue
		}

		field := spec.Polarity.Sign() + c.String()
		clean := spec.Patterns[:0]
		for _, pat := range spec.Patterns {
			switch {
			case pat == "":
				cfg.problemf(ctx, sect.Line, sect.Label, "Empty entry in %s.%s. Skipping...", sect.Label, field)
			case strings.ContainsAny(pat, illegalPatternChars):
				cfg.problemf(ctx, sect.Line, sect.Label, "Invalid entry in %s.%s: '%s'. Skipping...", sect.Label, field, pat)
			default:
				clean = append(clean, pat)
			}
		}
		spec.Patterns = clean
	}
}

// resolveDestination creates the section target directory when it is missing.
// It returns false when the directory cannot be created.
func resolveDestination(ctx context.Context, fsys afero.Fs, cfg *Config, sect *Section) bool {
	if sect.Destination == "" {
		return true
	}

	target := sect.Target(cfg.Global.BackupRoot)
	if ok, _ := afero.DirExists(fsys, target); ok {
		return true
	}

	cfg.noticef(ctx, sect.Line, sect.Label, "Directory: '%s' doesn't exists. Creating...", sect.Destination)
	if err := fsys.MkdirAll(target, 0o755); err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("path", target).Msg("creating section destination")
		cfg.problemf(ctx, sect.Line, sect.Label, "Section: %s will not be backed up.", sect.Label)
		return false
	}
	return true
}
