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
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 💥 FatalError is a configuration error that aborts the run
type FatalError struct {
	Message string
}

func (e *FatalError) Error() string {
	return e.Message
}

// fatalf creates a FatalError carrying a stack trace
func fatalf(format string, args ...any) error {
	return errors.WithStack(&FatalError{Message: fmt.Sprintf(format, args...)})
}

// IsFatal reports whether err aborts the run
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}

// FatalMessage returns the message of the FatalError in err's chain, or
// err's own message when there is none
func FatalMessage(err error) string {
	var fe *FatalError
	if errors.As(err, &fe) {
		return fe.Message
	}
	return err.Error()
}

// ⚠️ Severity classifies recoverable diagnostics
type Severity int

const (
	SeverityNotice  Severity = iota // [?] informational, nothing dropped
	SeverityProblem                 // [!] something was dropped from the run
)

// Prefix returns the console prefix of the severity
func (s Severity) Prefix() string {
	if s == SeverityProblem {
		return "[!]"
	}
	return "[?]"
}

// 📝 Diagnostic is a recoverable problem found while parsing or validating
type Diagnostic struct {
	Severity Severity
	Line     int    // 0 when not tied to a line
	Section  string // empty when not tied to a section
	Message  string
}

// String renders the diagnostic the way it is shown on the console
func (d Diagnostic) String() string {
	return d.Severity.Prefix() + " " + d.Message
}

// report records a diagnostic on the config and mirrors it to the context logger
func (cfg *Config) report(ctx context.Context, d Diagnostic) {
	cfg.Diagnostics = append(cfg.Diagnostics, d)

	ev := zerolog.Ctx(ctx).Warn()
	if d.Line > 0 {
		ev = ev.Int("line", d.Line)
	}
	if d.Section != "" {
		ev = ev.Str("section", d.Section)
	}
	ev.Msg(d.Message)
}

func (cfg *Config) noticef(ctx context.Context, line int, section, format string, args ...any) {
	cfg.report(ctx, Diagnostic{Severity: SeverityNotice, Line: line, Section: section, Message: fmt.Sprintf(format, args...)})
}

func (cfg *Config) problemf(ctx context.Context, line int, section, format string, args ...any) {
	cfg.report(ctx, Diagnostic{Severity: SeverityProblem, Line: line, Section: section, Message: fmt.Sprintf(format, args...)})
}
