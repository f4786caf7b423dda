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

package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/walteh/ubackup/pkg/config"
	"github.com/walteh/ubackup/pkg/status"
)

// fatalWidth is how much of a fatal message is shown on the console
const fatalWidth = 70

// 🎯 FileOperation represents a file operation for logging
type FileOperation struct {
	Path    string            // Destination path
	Source  string            // Source path
	Section string            // Section label
	Status  status.FileStatus // Operation status
	Err     error             // Failure, if any
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// Console returns the writer console lines go to
func (l *Logger) Console() io.Writer {
	return l.console
}

// 📝 LogFileOperation logs a file operation
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, status.FormatFileOperation(op.Path, op.Section, op.Status))

	ev := l.zlog.Info()
	if op.Err != nil {
		ev = l.zlog.Error().Err(op.Err)
	}
	ev.Str("file", op.Path).
		Str("source", op.Source).
		Str("section", op.Section).
		Str("status", op.Status.String()).
		Msg("file operation")
}

// 📝 Diagnostic prints a recoverable configuration problem
func (l *Logger) Diagnostic(d config.Diagnostic) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c := color.New(color.FgYellow)
	if d.Severity == config.SeverityProblem {
		c = color.New(color.FgRed)
	}
	fmt.Fprintf(l.console, "%s %s\n", c.Sprint(d.Severity.Prefix()), d.Message)

	ev := l.zlog.Warn()
	if d.Section != "" {
		ev = ev.Str("section", d.Section)
	}
	if d.Line > 0 {
		ev = ev.Int("line", d.Line)
	}
	ev.Msg(d.Message)
}

// 📝 Fatal prints an error that ends the run, cut to the console width.
// Only the message of a configuration FatalError is shown, without its wrapping.
func (l *Logger) Fatal(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := strings.NewReplacer("\r", "", "\n", " ").Replace(config.FatalMessage(err))
	if r := []rune(msg); len(r) > fatalWidth {
		msg = string(r[:fatalWidth])
	}
	fmt.Fprintf(l.console, "\n%s %s\n", color.New(color.FgRed, color.Bold).Sprint("[!]"), msg)
	l.zlog.Error().Err(err).Msg("fatal error")
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("ubackup")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Plain logs an undecorated line
func (l *Logger) Plain(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}
