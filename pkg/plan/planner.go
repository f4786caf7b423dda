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

package plan

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/ubackup/pkg/config"
	"github.com/walteh/ubackup/pkg/filter"
	"github.com/walteh/ubackup/pkg/status"
	"github.com/walteh/ubackup/pkg/walk"
)

// 📄 Item is a source file staged for copying
type Item struct {
	Section     string            `yaml:"section"`
	Source      string            `yaml:"source"`
	Destination string            `yaml:"destination"`
	Status      status.FileStatus `yaml:"status"`
	Err         error             `yaml:"-"`
}

// 📋 Plan is the staged copy list of a run
type Plan struct {
	Items    []Item `yaml:"items"`
	UpToDate int    `yaml:"up_to_date"`
	Filtered int    `yaml:"filtered"`
}

// 🔍 Stale compares the modification times of a source file and its backup
// copy at one second resolution. A missing destination is reported as
// StatusNew. Any other failure to read either timestamp is reported as
// StatusError together with the error, which also counts as stale.
func Stale(fsys afero.Fs, src, dst string) (status.FileStatus, error) {
	srcInfo, err := fsys.Stat(src)
	if err != nil {
		return status.StatusError, errors.Errorf("reading source modification time: %w", err)
	}

	dstInfo, err := fsys.Stat(dst)
	if err != nil {
		if os.IsNotExist(err) {
			return status.StatusNew, nil
		}
		return status.StatusError, errors.Errorf("reading destination modification time: %w", err)
	}

	if srcInfo.ModTime().Unix() == dstInfo.ModTime().Unix() {
		return status.StatusUnchanged, nil
	}
	return status.StatusModified, nil
}

// 🏗️ Build walks every section of a validated config, filters the candidates,
// maps them into the backup tree and keeps the ones that are stale.
func Build(ctx context.Context, fsys afero.Fs, cfg *config.Config) *Plan {
	logger := zerolog.Ctx(ctx)
	engine := filter.NewEngine()
	p := &Plan{}

	for _, sect := range cfg.Sections {
		for _, src := range sect.Paths {
			info, err := fsys.Stat(src)
			if err != nil {
				logger.Warn().Err(err).Str("section", sect.Label).Str("path", src).Msg("source path vanished, skipping")
				continue
			}

			candidates := []string{src}
			if info.IsDir() {
				candidates, err = walk.Walk(ctx, fsys, src, sect.Recursive)
				if err != nil {
					logger.Warn().Err(err).Str("section", sect.Label).Str("path", src).Msg("source path unreadable, skipping")
					continue
				}
			}

			for _, entry := range candidates {
				d := engine.Decide(entry, sect)
				if !d.Accepted {
					logger.Debug().Str("section", sect.Label).Str("entry", entry).Msg(d.Reason)
					p.Filtered++
					continue
				}

				dst := Destination(cfg.Global.BackupRoot, sect, src, info.IsDir(), entry)
				st, err := Stale(fsys, entry, dst)
				if !st.Stale() {
					logger.Debug().Str("file", dst).Msg("already up-to-date")
					p.UpToDate++
					continue
				}

				p.Items = append(p.Items, Item{
					Section:     sect.Label,
					Source:      entry,
					Destination: dst,
					Status:      st,
					Err:         err,
				})
			}
		}
	}

	logger.Debug().
		Int("staged", len(p.Items)).
		Int("up_to_date", p.UpToDate).
		Int("filtered", p.Filtered).
		Msg("built plan")

	return p
}
