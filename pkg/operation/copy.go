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

package operation

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/ubackup/pkg/config"
	"github.com/walteh/ubackup/pkg/status"
)

// progressThreshold is the plan size above which a progress bar replaces per-file lines
const progressThreshold = 64

// 📦 CopyOperation copies every staged file into the backup tree
type CopyOperation struct {
	BaseOperation

	copied int
	failed int
}

// 📦 NewCopyOperation creates a new copy operation
func NewCopyOperation(opts Options) *CopyOperation {
	return &CopyOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// Copied returns how many files were copied
func (op *CopyOperation) Copied() int { return op.copied }

// Failed returns how many files could not be copied
func (op *CopyOperation) Failed() int { return op.failed }

// Summary returns the end of run message
func (op *CopyOperation) Summary() string {
	return op.Formatter.FormatSummary(op.copied, op.failed)
}

// 🏃 Execute runs the copy operation. A file that cannot be copied is reported
// and skipped; the remaining files are still copied.
func (op *CopyOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	items := op.Plan.Items

	var bar *pterm.ProgressbarPrinter
	if op.Progress && len(items) > progressThreshold {
		started, err := pterm.DefaultProgressbar.
			WithTotal(len(items)).
			WithTitle("Copying").
			WithWriter(op.Logger.Console()).
			Start()
		if err != nil {
			logger.Debug().Err(err).Msg("starting progress bar")
		} else {
			bar = started
		}
	}

	for i, it := range items {
		if bar == nil {
			op.Logger.Plain(fmt.Sprintf("Backing up '%s'...", it.Source))
		}

		err := op.copyItem(it.Source, it.Destination)
		if err != nil {
			op.failed++
			op.Logger.Diagnostic(config.Diagnostic{
				Severity: config.SeverityProblem,
				Section:  it.Section,
				Message:  fmt.Sprintf("Couldn't copy the file: '%s'", it.Destination),
			})
			logger.Debug().Err(err).Str("source", it.Source).Msg(op.Formatter.FormatFile(it.Destination, status.StatusFailed))
		} else {
			op.copied++
			logger.Debug().Str("source", it.Source).Msg(op.Formatter.FormatFile(it.Destination, status.StatusCopied))
		}
		logger.Debug().Msg(op.Formatter.FormatProgress(i+1, len(items)))

		if bar != nil {
			bar.Increment()
		}
	}

	if bar != nil {
		if _, err := bar.Stop(); err != nil {
			logger.Debug().Err(err).Msg("stopping progress bar")
		}
	}

	return nil
}

func (op *CopyOperation) copyItem(src, dst string) error {
	if err := op.Fs.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}
	return CopyFile(op.Fs, src, dst)
}

// 📄 CopyFile copies src to dst and gives dst the permissions and
// modification time of src
func CopyFile(fsys afero.Fs, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return errors.Errorf("reading source: %w", err)
	}

	in, err := fsys.Open(src)
	if err != nil {
		return errors.Errorf("opening source: %w", err)
	}
	defer in.Close()

	out, err := fsys.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Errorf("creating destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Errorf("copying content: %w", err)
	}
	if err := out.Close(); err != nil {
		return errors.Errorf("closing destination: %w", err)
	}

	if err := fsys.Chmod(dst, info.Mode().Perm()); err != nil {
		return errors.Errorf("setting permissions: %w", err)
	}
	if err := fsys.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return errors.Errorf("setting modification time: %w", err)
	}

	return nil
}
