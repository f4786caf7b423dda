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
	"bytes"
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🖨️ Render writes the section back in configuration grammar
func (s *Section) Render() string {
	var buf strings.Builder

	// an implicit section has no header and must be rendered first
	if s.Label != "" {
		fmt.Fprintf(&buf, "[%s]\n", s.Label)
	}
	if s.Recursive {
		fmt.Fprintf(&buf, "%s\n", KeyRecursive)
	}
	if s.Destination != "" {
		fmt.Fprintf(&buf, "%s: %s\n", KeyDst, s.Destination)
	}
	for _, p := range s.Paths {
		fmt.Fprintf(&buf, "%s: %s\n", KeyPath, p)
	}
	for _, c := range Categories {
		spec := s.Filter(c)
		if spec == nil {
			continue
		}
		quoted := make([]string, len(spec.Patterns))
		for i, p := range spec.Patterns {
			quoted[i] = quoteToken(p)
		}
		fmt.Fprintf(&buf, "%s%s: %s\n", spec.Polarity.Sign(), c, strings.Join(quoted, " "))
	}

	return buf.String()
}

// 🖨️ Render writes the whole config back in configuration grammar
func (cfg *Config) Render() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "%s: %s\n", KeyBackupDir, cfg.Global.BackupRoot)
	for _, cmd := range cfg.Global.AfterBackup {
		fmt.Fprintf(&buf, "%s: %s\n", KeyAfterBackup, cmd)
	}
	for _, s := range cfg.Sections {
		buf.WriteString("\n")
		buf.WriteString(s.Render())
	}

	return buf.String()
}

// 📤 Dump encodes the config model as YAML for debugging
func Dump(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Errorf("closing encoder: %w", err)
	}
	return buf.Bytes(), nil
}
