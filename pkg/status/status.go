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

// 📊 FileStatus represents how a candidate relates to its backup copy
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusNew                  // Backup copy doesn't exist
	StatusModified             // Backup copy has a different modification time
	StatusUnchanged            // Backup copy has the same modification time
	StatusError                // Timestamps could not be read
	StatusCopied               // File was copied
	StatusFailed               // Copy failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	case StatusError:
		return "error"
	case StatusCopied:
		return "copied"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Stale reports whether a file in this status needs to be copied
func (s FileStatus) Stale() bool {
	switch s {
	case StatusNew, StatusModified, StatusError:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler
func (s FileStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
