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
package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/ubackup/pkg/config"
	"github.com/walteh/ubackup/pkg/filter"
)

// 🧪 section builds a section holding the given filters
func section(filters map[config.Category]*config.FilterSpec) *config.Section {
	sect := config.NewSection("test", 1)
	for c, spec := range filters {
		sect.Filters[c] = spec
	}
	return sect
}

func include(patterns ...string) *config.FilterSpec {
	return &config.FilterSpec{Polarity: config.Include, Patterns: patterns}
}

func exclude(patterns ...string) *config.FilterSpec {
	return &config.FilterSpec{Polarity: config.Exclude, Patterns: patterns}
}

func accepted(entries []string, sect *config.Section) []string {
	engine := filter.NewEngine()
	var out []string
	for _, e := range entries {
		if engine.Decide(e, sect).Accepted {
			out = append(out, e)
		}
	}
	return out
}

func TestExtensionStage(t *testing.T) {
	entries := []string{"/src/a.c", "/src/b.py", "/src/c.cpp", "/src/d"}

	tests := []struct {
		name string
		spec *config.FilterSpec
		want []string
	}{
		{name: "include list", spec: include("c", "cpp"), want: []string{"/src/a.c", "/src/c.cpp"}},
		{name: "exclude list", spec: exclude("py"), want: []string{"/src/a.c", "/src/c.cpp", "/src/d"}},
		{name: "include is case insensitive", spec: include("C", "CPP"), want: []string{"/src/a.c", "/src/c.cpp"}},
		{name: "empty list never rejects", spec: include(), want: entries},
		{name: "no filter never rejects", spec: nil, want: entries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters := map[config.Category]*config.FilterSpec{}
			if tt.spec != nil {
				filters[config.CategoryExtension] = tt.spec
			}
			assert.Equal(t, tt.want, accepted(entries, section(filters)))
		})
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		entry string
		want  string
	}{
		{entry: "/a/b.TXT", want: "txt"},
		{entry: "/a/archive.tar.gz", want: "tar.gz"},
		{entry: "/a/noext", want: ""},
		{entry: "/a.d/file", want: ""},
		{entry: "/a/.bashrc", want: "bashrc"},
	}

	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			assert.Equal(t, tt.want, filter.Extension(tt.entry))
		})
	}
}

func TestCategoricalStage(t *testing.T) {
	tests := []struct {
		name    string
		filters map[config.Category]*config.FilterSpec
		entry   string
		want    bool
	}{
		{
			name:    "include matches as a substring",
			filters: map[config.Category]*config.FilterSpec{config.CategoryFilename: include("report")},
			entry:   "/docs/Monthly-REPORT.pdf",
			want:    true,
		},
		{
			name:    "include rejects a non matching entry",
			filters: map[config.Category]*config.FilterSpec{config.CategoryFilename: include("report")},
			entry:   "/docs/invoice.pdf",
			want:    false,
		},
		{
			name:    "include rejects when any single pattern fails",
			filters: map[config.Category]*config.FilterSpec{config.CategoryFilename: include("report", "2024")},
			entry:   "/docs/report-2023.pdf",
			want:    false,
		},
		{
			name:    "include accepts when every pattern matches",
			filters: map[config.Category]*config.FilterSpec{config.CategoryFilename: include("report", "2024")},
			entry:   "/docs/report-2024.pdf",
			want:    true,
		},
		{
			name:    "exclude rejects on any match",
			filters: map[config.Category]*config.FilterSpec{config.CategoryDirectory: exclude("cache", "tmp")},
			entry:   "/home/u/.cache/x",
			want:    false,
		},
		{
			name:    "exclude accepts when nothing matches",
			filters: map[config.Category]*config.FilterSpec{config.CategoryDirectory: exclude("cache", "tmp")},
			entry:   "/home/u/docs/x",
			want:    true,
		},
		{
			name:    "patterns are regular expressions",
			filters: map[config.Category]*config.FilterSpec{config.CategoryMask: include(`\d{4}\.log$`)},
			entry:   "/var/log/app-2024.log",
			want:    true,
		},
		{
			name:    "invalid regex falls back to a literal",
			filters: map[config.Category]*config.FilterSpec{config.CategoryMask: exclude("a(b")},
			entry:   "/data/a(b.txt",
			want:    false,
		},
		{
			name: "extension stage runs before the categorical stage",
			filters: map[config.Category]*config.FilterSpec{
				config.CategoryExtension: exclude("pdf"),
				config.CategoryFilename:  include("report"),
			},
			entry: "/docs/report.pdf",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filter.Decide(tt.entry, section(tt.filters)).Accepted)
		})
	}
}

func TestCategoricalShortCircuit(t *testing.T) {
	// The filename include rejects first, so the directory include that would
	// also reject is never consulted.
	sect := section(map[config.Category]*config.FilterSpec{
		config.CategoryFilename:  include("report"),
		config.CategoryDirectory: include("never-there"),
		config.CategoryMask:      exclude("."),
	})

	d := filter.Decide("/data/notes.txt", sect)
	require.False(t, d.Accepted)
	assert.Equal(t, config.CategoryFilename, d.Category)
	assert.Equal(t, "report", d.Pattern)
	assert.NotEmpty(t, d.Reason)

	d = filter.Decide("/data/report.txt", sect)
	require.False(t, d.Accepted)
	assert.Equal(t, config.CategoryDirectory, d.Category)
	assert.Equal(t, "never-there", d.Pattern)
}

func TestEngineCachesPatterns(t *testing.T) {
	engine := filter.NewEngine()
	sect := section(map[config.Category]*config.FilterSpec{config.CategoryMask: include("keep")})

	for range 3 {
		assert.True(t, engine.Decide("/x/keep.me", sect).Accepted)
		assert.False(t, engine.Decide("/x/drop.me", sect).Accepted)
	}
}
