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

// Package walk lists candidate files below section source paths.
package walk

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// 🚶 Walk lists the files below path. A recursive walk descends the whole
// subtree, otherwise only the immediate children are listed. Directories are
// never returned, nor are symlinks that point at directories. Results are path joined with the entry name, in lexical order.
func Walk(ctx context.Context, fsys afero.Fs, path string, recursive bool) ([]string, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Bool("recursive", recursive).Msg("walking")

	if !recursive {
		entries, err := afero.ReadDir(fsys, path)
		if err != nil {
			return nil, errors.Errorf("reading directory %s: %w", path, err)
		}
		var files []string
		for _, entry := range entries {
			full := filepath.Join(path, entry.Name())
			if isDir(fsys, full, entry) || isDotEntry(entry.Name()) {
				continue
			}
			files = append(files, full)
		}
		return files, nil
	}

	var files []string
	err := afero.Walk(fsys, path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			if p == path {
				return err
			}
			// Unreadable subtrees are skipped, the rest of the walk goes on
			logger.Debug().Err(err).Str("path", p).Msg("skipping unreadable entry")
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if isDir(fsys, p, info) || isDotEntry(info.Name()) {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", path, err)
	}

	return files, nil
}

// isDir reports whether info describes a directory, following symlinks.
// Symlinked directories are never descended.
func isDir(fsys afero.Fs, path string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink == 0 {
		return info.IsDir()
	}
	target, err := fsys.Stat(path)
	return err == nil && target.IsDir()
}

func isDotEntry(name string) bool {
	return name == "." || name == ".."
}

// HasMeta reports whether path holds wildcard characters
func HasMeta(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}

// 🌟 Expand resolves the wildcards of a source path into the existing paths
// it matches. Paths without wildcards are returned unchanged.
func Expand(fsys afero.Fs, pattern string) ([]string, error) {
	if !HasMeta(pattern) {
		return []string{pattern}, nil
	}

	base, rest := doublestar.SplitPattern(filepath.ToSlash(pattern))
	if !doublestar.ValidatePattern(rest) {
		return nil, errors.Errorf("invalid wildcard pattern %q", pattern)
	}

	root := filepath.FromSlash(base)
	scoped := fsys
	if root != "." {
		scoped = afero.NewBasePathFs(fsys, root)
	}
	matches, err := doublestar.Glob(afero.NewIOFS(scoped), rest)
	if err != nil {
		return nil, errors.Errorf("expanding %q: %w", pattern, err)
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, filepath.Join(root, filepath.FromSlash(m)))
	}
	return out, nil
}
