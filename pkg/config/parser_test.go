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
package config_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/ubackup/pkg/config"
)

// 🧪 testContext returns a context carrying a test logger
func testContext(t *testing.T) context.Context {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func parse(t *testing.T, text string) (*config.Config, error) {
	t.Helper()
	return config.Parse(testContext(t), strings.NewReader(text))
}

func messages(cfg *config.Config) []string {
	out := make([]string, len(cfg.Diagnostics))
	for i, d := range cfg.Diagnostics {
		out[i] = d.String()
	}
	return out
}

func TestParse(t *testing.T) {
	cfg, err := parse(t, `
# where everything goes
backup_dir = /backup
after_backup: echo done

[ docs ]
path: /data/docs
path: /data/notes.txt
recursive
dst: archive
exts: txt MD
-files: "draft copy" tmp
`)
	require.NoError(t, err)

	assert.Equal(t, "/backup", cfg.Global.BackupRoot)
	assert.Equal(t, []string{"echo done"}, cfg.Global.AfterBackup)
	require.Len(t, cfg.Sections, 1)

	sect := cfg.Sections[0]
	assert.Equal(t, "docs", sect.Label)
	assert.Equal(t, 6, sect.Line)
	assert.True(t, sect.Recursive)
	assert.Equal(t, []string{"/data/docs", "/data/notes.txt"}, sect.Paths)
	assert.Equal(t, "archive", sect.Destination)

	require.NotNil(t, sect.Filter(config.CategoryExtension))
	assert.Equal(t, config.Include, sect.Filter(config.CategoryExtension).Polarity)
	assert.Equal(t, config.PatternList{"txt", "MD"}, sect.Filter(config.CategoryExtension).Patterns)

	require.NotNil(t, sect.Filter(config.CategoryFilename))
	assert.Equal(t, config.Exclude, sect.Filter(config.CategoryFilename).Polarity)
	assert.Equal(t, config.PatternList{"draft copy", "tmp"}, sect.Filter(config.CategoryFilename).Patterns)

	assert.Nil(t, sect.Filter(config.CategoryDirectory))
	assert.Empty(t, cfg.Diagnostics)
}

func TestParseRedeclaration(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		polarity config.Polarity
		want     config.PatternList
	}{
		{
			name:     "include extends and keeps duplicates",
			lines:    []string{"exts: a b", "+exts: b c"},
			polarity: config.Include,
			want:     config.PatternList{"a", "b", "b", "c"},
		},
		{
			name:     "exclude toggles",
			lines:    []string{"-exts: a b", "-exts: b c"},
			polarity: config.Exclude,
			want:     config.PatternList{"a", "c"},
		},
		{
			name:     "exclude toggle back to empty",
			lines:    []string{"-exts: a", "-exts: a"},
			polarity: config.Exclude,
			want:     config.PatternList{},
		},
		{
			name:     "first declaration is taken as is",
			lines:    []string{"-exts: a a"},
			polarity: config.Exclude,
			want:     config.PatternList{"a", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := "backup_dir: /b\n[s]\npath: /x\n" + strings.Join(tt.lines, "\n")
			cfg, err := parse(t, text)
			require.NoError(t, err)

			spec := cfg.Sections[0].Filter(config.CategoryExtension)
			require.NotNil(t, spec)
			assert.Equal(t, tt.polarity, spec.Polarity)
			assert.ElementsMatch(t, tt.want, spec.Patterns)
		})
	}
}

func TestParseFatal(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "mutually exclusive specifiers",
			text: "backup_dir: /b\n[pics]\npath: /x\nexts: jpg\n-exts: png",
			want: "Mutually exclusive specifiers: 'exts' in section 'pics'",
		},
		{
			name: "mutually exclusive across signs",
			text: "backup_dir: /b\n[pics]\npath: /x\n-dirs: cache\n+dirs: src",
			want: "Mutually exclusive specifiers: 'dirs' in section 'pics'",
		},
		{
			name: "missing backup_dir",
			text: "[s]\npath: /x",
			want: "Configuration file hasn't specified a valid backup_dir. Quitting.",
		},
		{
			name: "valueless backup_dir",
			text: "backup_dir:\n[s]\npath: /x",
			want: "Configuration file must specify backup_dir path!",
		},
		{
			name: "no sections",
			text: "backup_dir: /b",
			want: "There is no sections in configuration file. Quitting...",
		},
		{
			name: "section without path",
			text: "backup_dir: /b\n[first]\npath: /x\n[second]\nrecursive",
			want: "Section 'second' does not have a valid 'path' specifier!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parse(t, tt.text)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.True(t, config.IsFatal(err), "expected fatal error, got %v", err)
			assert.Equal(t, tt.want, config.FatalMessage(err))
		})
	}
}

func TestParseDiagnostics(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "duplicate backup_dir keeps the first",
			text: "backup_dir: /first\nbackup_dir: /second\n[s]\npath: /x",
			want: []string{"[?] Already got backup_dir. Skipping another declaration.."},
		},
		{
			name: "valueless after_backup",
			text: "backup_dir: /b\nafter_backup:\n[s]\npath: /x",
			want: []string{"[?] Conf. file must specify after_backup cmd line! Skipping after_backup declaration..."},
		},
		{
			name: "unknown key",
			text: "backup_dir: /b\n[s]\npath: /x\nexclude: foo",
			want: []string{"[?] Line 4: unknown specifier 'exclude'. Skipping..."},
		},
		{
			name: "keys are case sensitive",
			text: "backup_dir: /b\n[s]\npath: /x\nPATH: /y",
			want: []string{"[?] Line 4: unknown specifier 'PATH'. Skipping..."},
		},
		{
			name: "unparsable line",
			text: "backup_dir: /b\n[s]\npath: /x\n!!! nope",
			want: []string{"[?] Line 4: '!!! nope' is invalid. Skipping..."},
		},
		{
			name: "comments and short lines are skipped",
			text: "# backup_dir: /nope\nbackup_dir: /b\nab\n\n[s]\npath: /x",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parse(t, tt.text)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, messages(cfg))
		})
	}
}

func TestParseFirstBackupDirWins(t *testing.T) {
	cfg, err := parse(t, "backup_dir: /first\nbackup_dir: /second\n[s]\npath: /x")
	require.NoError(t, err)
	assert.Equal(t, "/first", cfg.Global.BackupRoot)
	require.Len(t, cfg.Diagnostics, 1)
	assert.Equal(t, 2, cfg.Diagnostics[0].Line)
}

func TestParseImplicitSection(t *testing.T) {
	cfg, err := parse(t, "backup_dir: /b\npath: /x\nrecursive\n[named]\npath: /y")
	require.NoError(t, err)
	require.Len(t, cfg.Sections, 2)

	assert.Equal(t, "", cfg.Sections[0].Label)
	assert.Equal(t, 0, cfg.Sections[0].Line)
	assert.Equal(t, []string{"/x"}, cfg.Sections[0].Paths)
	assert.True(t, cfg.Sections[0].Recursive)

	assert.Equal(t, "named", cfg.Sections[1].Label)
	assert.False(t, cfg.Sections[1].Recursive)
}

func TestParseDestinationOverwrites(t *testing.T) {
	cfg, err := parse(t, "backup_dir: /b\n[s]\npath: /x\ndst: one\ndst: two\nnorecursive")
	require.NoError(t, err)
	assert.Equal(t, "two", cfg.Sections[0].Destination)
	assert.False(t, cfg.Sections[0].Recursive)
}

func TestParseLines(t *testing.T) {
	cfg, err := config.ParseLines(testContext(t), []string{"backup_dir: /b", "[s]", "path: /x", "masks: ^a.*z$"})
	require.NoError(t, err)
	spec := cfg.Sections[0].Filter(config.CategoryMask)
	require.NotNil(t, spec)
	assert.Equal(t, config.PatternList{"^a.*z$"}, spec.Patterns)
}
