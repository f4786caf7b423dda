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

package plan

import (
	"path/filepath"
	"strings"

	"github.com/walteh/ubackup/pkg/config"
)

const separators = `/\`

// 🗺️ Destination maps an accepted candidate to its place in the backup tree.
//
// For a directory source the source directory's own name nests under the
// section target and the candidate keeps its path relative to the source. For
// a single file source only the base name is kept. Both paths are compared
// cleaned, so "./logs" and "logs" map alike.
func Destination(backupRoot string, sect *config.Section, sourcePath string, sourceIsDir bool, entry string) string {
	target := sect.Target(backupRoot)

	if !sourceIsDir {
		return filepath.Join(target, filepath.Base(entry))
	}

	root := filepath.Clean(sourcePath)
	tail, err := filepath.Rel(root, filepath.Clean(entry))
	if err != nil {
		tail = strings.Trim(strings.TrimPrefix(entry, sourcePath), separators)
	}
	return filepath.Join(target, dirName(root), tail)
}

// dirName returns the last component of a directory path, ignoring trailing separators
func dirName(path string) string {
	trimmed := strings.TrimRight(path, separators)
	if trimmed == "" {
		return ""
	}
	return filepath.Base(trimmed)
}
