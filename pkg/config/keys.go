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

// Reserved key names
const (
	KeyBackupDir   = "backup_dir"
	KeyAfterBackup = "after_backup"
	KeyRecursive   = "recursive"
	KeyNoRecursive = "norecursive"
	KeyPath        = "path"
	KeyDst         = "dst"
)

// 🔑 FilterKey is the (category, polarity) pair a filter key declares
type FilterKey struct {
	Category Category
	Polarity Polarity
}

// filterKeys maps every accepted spelling of a filter key to its variant
var filterKeys = func() map[string]FilterKey {
	m := make(map[string]FilterKey, len(Categories)*3)
	for _, c := range Categories {
		name := c.String()
		m[name] = FilterKey{Category: c, Polarity: Include}
		m["+"+name] = FilterKey{Category: c, Polarity: Include}
		m["-"+name] = FilterKey{Category: c, Polarity: Exclude}
	}
	return m
}()

// LookupFilterKey resolves a filter key such as "+exts" or "-dirs"
func LookupFilterKey(key string) (FilterKey, bool) {
	fk, ok := filterKeys[key]
	return fk, ok
}
