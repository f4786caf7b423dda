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
package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/ubackup/cmd/ubackup/opts"
	"github.com/walteh/ubackup/pkg/config"
)

// 🧪 execute runs the root command against an in-memory filesystem
func execute(t *testing.T, fsys afero.Fs, args ...string) (*opts.RootOpts, string, error) {
	t.Helper()

	noColor := color.NoColor
	t.Cleanup(func() {
		closeLogFile()
		color.NoColor = noColor
	})

	o := &opts.RootOpts{Fs: fsys}
	cmd := newRootCmd(o)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{}, args...))

	err := cmd.ExecuteContext(context.Background())
	return o, out.String(), err
}

func TestVersionCmd(t *testing.T) {
	_, out, err := execute(t, afero.NewMemMapFs(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "🚀 ubackup version info:")
	assert.Contains(t, out, "Go:")
}

func TestFormatVersion(t *testing.T) {
	out := FormatVersion(&VersionInfo{
		Version:   "v1.2.3",
		GoVersion: "go1.23.5",
		Platform:  "linux/amd64",
		Revision:  "abc123",
		Time:      "2025-01-01T00:00:00Z",
		Modified:  true,
	})

	assert.Contains(t, out, "Version:   v1.2.3")
	assert.Contains(t, out, "Revision:  abc123 (modified)")
	assert.Contains(t, out, "Platform:  linux/amd64")
}

func TestRootRunsBackup(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/etc/ubackup.ini", []byte("backup_dir: /backup\n[docs]\npath: /data\n"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/data/a.txt", []byte("a"), 0o644))

	o, out, err := execute(t, fsys, "--config", "/etc/ubackup.ini")
	require.NoError(t, err)

	assert.False(t, o.Progress)
	assert.Contains(t, out, "Operation completed. Backed up 1 files.")
	ok, err := afero.Exists(fsys, "/backup/data/a.txt")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRootFatal(t *testing.T) {
	_, _, err := execute(t, afero.NewMemMapFs(), "run", "-c", "/nowhere.ini")
	require.Error(t, err)
	assert.True(t, config.IsFatal(err))
	assert.Equal(t, "You must create configuration file: '/nowhere.ini'. Quitting..", config.FatalMessage(err))
}

func TestLogFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		file string
	}{
		{name: "default file", args: []string{"--log", "version"}, file: defaultLogFile},
		{name: "named file", args: []string{"--log=/var/log/ubackup.log", "version"}, file: "/var/log/ubackup.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			require.NoError(t, fsys.MkdirAll("/var/log", 0o755))

			o, _, err := execute(t, fsys, tt.args...)
			require.NoError(t, err)
			closeLogFile()

			assert.True(t, color.NoColor, "log files are written without color")
			assert.False(t, o.Progress, "no progress bar when logging to a file")

			data, err := afero.ReadFile(fsys, tt.file)
			require.NoError(t, err)
			assert.Contains(t, string(data), "Log opened.")
		})
	}
}
