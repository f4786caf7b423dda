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
	"path/filepath"
	"slices"
)

// 🏷️ Category is a filter dimension of a section
type Category int

const (
	CategoryExtension Category = iota // exts
	CategoryFilename                  // files
	CategoryDirectory                 // dirs
	CategoryMask                      // masks
)

// Categories lists every category in evaluation order.
var Categories = []Category{CategoryExtension, CategoryFilename, CategoryDirectory, CategoryMask}

// String returns the configuration key of the category
func (c Category) String() string {
	switch c {
	case CategoryExtension:
		return "exts"
	case CategoryFilename:
		return "files"
	case CategoryDirectory:
		return "dirs"
	case CategoryMask:
		return "masks"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ➕ Polarity tells whether matching patterns keep or drop an entry
type Polarity int

const (
	Include Polarity = iota // bare or + prefixed key
	Exclude                 // - prefixed key
)

// String returns a readable representation of the polarity
func (p Polarity) String() string {
	if p == Exclude {
		return "exclude"
	}
	return "include"
}

// Sign returns the key prefix used to declare the polarity
func (p Polarity) Sign() string {
	if p == Exclude {
		return "-"
	}
	return "+"
}

// Opposite returns the other polarity
func (p Polarity) Opposite() Polarity {
	if p == Exclude {
		return Include
	}
	return Exclude
}

// MarshalText implements encoding.TextMarshaler
func (p Polarity) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// 📋 PatternList is an ordered list of filter patterns
type PatternList []string

// Extend appends tokens, keeping duplicates
func (l *PatternList) Extend(tokens ...string) {
	*l = append(*l, tokens...)
}

// Toggle removes each token already present and appends each token that is not
func (l *PatternList) Toggle(tokens ...string) {
	for _, tok := range tokens {
		if i := slices.Index(*l, tok); i >= 0 {
			*l = slices.Delete(*l, i, i+1)
			continue
		}
		*l = append(*l, tok)
	}
}

// 🔍 FilterSpec holds the patterns of one category
type FilterSpec struct {
	Polarity Polarity    `yaml:"polarity"`
	Patterns PatternList `yaml:"patterns"`
}

// 📦 Section is a named group of backup rules
type Section struct {
	Label       string                   `yaml:"label"`
	Recursive   bool                     `yaml:"recursive"`
	Paths       []string                 `yaml:"paths"`
	Destination string                   `yaml:"destination,omitempty"`
	Filters     map[Category]*FilterSpec `yaml:"filters,omitempty"`

	// Line is the line number of the section header, 0 for an implicit section
	Line int `yaml:"-"`
}

// 🏭 NewSection creates an empty section
func NewSection(label string, line int) *Section {
	return &Section{
		Label:   label,
		Line:    line,
		Filters: make(map[Category]*FilterSpec),
	}
}

// Filter returns the filter spec of a category, nil when the section has none
func (s *Section) Filter(c Category) *FilterSpec {
	if s.Filters == nil {
		return nil
	}
	return s.Filters[c]
}

// Target returns the directory the section is mirrored into.
// An unset destination maps to the backup root, a relative one is joined to it
// and an absolute one is used as-is.
func (s *Section) Target(backupRoot string) string {
	switch {
	case s.Destination == "":
		return backupRoot
	case filepath.IsAbs(s.Destination):
		return s.Destination
	default:
		return filepath.Join(backupRoot, s.Destination)
	}
}

// 🌍 GlobalConfig holds the settings that apply to the whole run
type GlobalConfig struct {
	BackupRoot  string   `yaml:"backup_dir"`
	AfterBackup []string `yaml:"after_backup,omitempty"`
}

// 📚 Config is the parsed configuration
type Config struct {
	Global      GlobalConfig `yaml:"global"`
	Sections    []*Section   `yaml:"sections"`
	Diagnostics []Diagnostic `yaml:"-"`
}
