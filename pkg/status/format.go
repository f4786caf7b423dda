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
	"fmt"
)

// 🎨 FileFormatter formats status messages
type FileFormatter interface {
	// FormatFile formats the status of a single file
	FormatFile(path string, status FileStatus) string
	// FormatProgress formats a progress message
	FormatProgress(current, total int) string
	// FormatSummary formats the end of run message
	FormatSummary(copied, failed int) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFile formats a file status message with emojis
func (f *DefaultFileFormatter) FormatFile(path string, status FileStatus) string {
	switch status {
	case StatusNew:
		return fmt.Sprintf("✨ New %s", path)
	case StatusModified:
		return fmt.Sprintf("📝 Modified %s", path)
	case StatusError:
		return fmt.Sprintf("❓ Unreadable %s", path)
	case StatusCopied:
		return fmt.Sprintf("✅ Copied %s", path)
	case StatusFailed:
		return fmt.Sprintf("❌ Failed %s", path)
	default:
		return fmt.Sprintf("👍 Unchanged %s", path)
	}
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFileFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatSummary formats the end of run message
func (f *DefaultFileFormatter) FormatSummary(copied, failed int) string {
	switch {
	case copied == 0 && failed == 0:
		return "There was nothing to update or back up."
	case failed == 0:
		return fmt.Sprintf("Operation completed. Backed up %d files.", copied)
	default:
		return fmt.Sprintf("Operation completed. Backed up %d files, %d failed.", copied, failed)
	}
}
