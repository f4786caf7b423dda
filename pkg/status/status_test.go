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
package status

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestFileStatus(t *testing.T) {
	tests := []struct {
		status FileStatus
		want   string
		stale  bool
	}{
		{status: StatusUnknown, want: "unknown"},
		{status: StatusNew, want: "new", stale: true},
		{status: StatusModified, want: "modified", stale: true},
		{status: StatusUnchanged, want: "unchanged"},
		{status: StatusError, want: "error", stale: true},
		{status: StatusCopied, want: "copied"},
		{status: StatusFailed, want: "failed"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
			assert.Equal(t, tt.stale, tt.status.Stale())

			text, err := tt.status.MarshalText()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, string(text))
		})
	}
}

func TestFormatFileOperation(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name    string
		path    string
		section string
		status  FileStatus
		want    string
	}{
		{
			name:    "new file",
			path:    "/backup/a.txt",
			section: "docs",
			status:  StatusNew,
			want:    "    ✓ /backup/a.txt                                 docs            new",
		},
		{
			name:    "modified file",
			path:    "/backup/b.txt",
			section: "docs",
			status:  StatusModified,
			want:    "    ⟳ /backup/b.txt                                 docs            modified",
		},
		{
			name:    "unreadable timestamps",
			path:    "/backup/c.txt",
			section: "logs",
			status:  StatusError,
			want:    "    ✗ /backup/c.txt                                 logs            error",
		},
		{
			name:   "unchanged without section",
			path:   "/backup/d.txt",
			status: StatusUnchanged,
			want:   "    - /backup/d.txt                                                 unchanged",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFileOperation(tt.path, tt.section, tt.status))
		})
	}
}
