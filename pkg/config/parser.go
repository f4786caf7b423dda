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
	"bufio"
	"context"
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	headerRe   = regexp.MustCompile(`^\[\s*(.+?)\s*\]`)
	keyValueRe = regexp.MustCompile(`^([+-]?\w+)\s*[:=]?\s*(.*)$`)
)

// 📝 Parse reads configuration text and builds the config model.
// Recoverable problems are collected in Config.Diagnostics, fatal ones are
// returned as errors holding a *FatalError.
func Parse(ctx context.Context, r io.Reader) (*Config, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Errorf("reading configuration: %w", err)
	}
	return ParseLines(ctx, lines)
}

// parser holds the state of a single ParseLines call
type parser struct {
	cfg     *Config
	current *Section
}

// 📝 ParseLines builds the config model from configuration lines
func ParseLines(ctx context.Context, lines []string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	p := &parser{cfg: &Config{}}

	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimSpace(raw)

		// Skip comments and lines too short to hold anything
		if strings.HasPrefix(line, "#") || len(line) < 3 {
			continue
		}

		if m := headerRe.FindStringSubmatch(line); m != nil {
			p.closeSection()
			p.current = NewSection(m[1], lineNo)
			logger.Debug().Str("section", m[1]).Int("line", lineNo).Msg("parsing section")
			continue
		}

		m := keyValueRe.FindStringSubmatch(line)
		if m == nil {
			p.cfg.noticef(ctx, lineNo, p.label(), "Line %d: '%s' is invalid. Skipping...", lineNo, truncate(line, 45))
			continue
		}

		if err := p.handle(ctx, lineNo, m[1], strings.TrimSpace(m[2])); err != nil {
			return nil, err
		}
	}

	p.closeSection()

	if p.cfg.Global.BackupRoot == "" {
		return nil, fatalf("Configuration file hasn't specified a valid backup_dir. Quitting.")
	}
	if len(p.cfg.Sections) == 0 {
		return nil, fatalf("There is no sections in configuration file. Quitting...")
	}
	for _, sect := range p.cfg.Sections {
		if len(sect.Paths) == 0 {
			return nil, fatalf("Section '%s' does not have a valid 'path' specifier!", sect.Label)
		}
	}

	return p.cfg, nil
}

// handle applies one key/value line
func (p *parser) handle(ctx context.Context, lineNo int, key, value string) error {
	switch key {
	case KeyBackupDir:
		if value == "" {
			return fatalf("Configuration file must specify backup_dir path!")
		}
		if p.cfg.Global.BackupRoot != "" {
			p.cfg.noticef(ctx, lineNo, "", "Already got backup_dir. Skipping another declaration..")
			return nil
		}
		p.cfg.Global.BackupRoot = value

	case KeyAfterBackup:
		if value == "" {
			p.cfg.noticef(ctx, lineNo, "", "Conf. file must specify after_backup cmd line! Skipping after_backup declaration...")
			return nil
		}
		p.cfg.Global.AfterBackup = append(p.cfg.Global.AfterBackup, value)

	case KeyRecursive:
		p.section().Recursive = true

	case KeyNoRecursive:
		// recursive already defaults to false
		p.section()

	case KeyPath:
		sect := p.section()
		sect.Paths = append(sect.Paths, value)

	case KeyDst:
		p.section().Destination = value

	default:
		fk, ok := LookupFilterKey(key)
		if !ok {
			p.cfg.noticef(ctx, lineNo, p.label(), "Line %d: unknown specifier '%s'. Skipping...", lineNo, truncate(key, 45))
			return nil
		}
		return p.addFilter(ctx, p.section(), fk, Tokenize(value))
	}

	return nil
}

// addFilter merges tokens into the section's filter for the key's category
func (p *parser) addFilter(ctx context.Context, sect *Section, fk FilterKey, tokens []string) error {
	existing := sect.Filter(fk.Category)
	if existing == nil {
		sect.Filters[fk.Category] = &FilterSpec{Polarity: fk.Polarity, Patterns: PatternList(tokens)}
		return nil
	}

	if existing.Polarity != fk.Polarity {
		return fatalf("Mutually exclusive specifiers: '%s' in section '%s'", fk.Category, sect.Label)
	}

	if fk.Polarity == Exclude {
		existing.Patterns.Toggle(tokens...)
	} else {
		existing.Patterns.Extend(tokens...)
	}

	zerolog.Ctx(ctx).Debug().
		Str("section", sect.Label).
		Str("category", fk.Category.String()).
		Strs("patterns", existing.Patterns).
		Msg("merged filter declaration")

	return nil
}

// section returns the open section, opening an unnamed one for keys that
// appear before the first header
func (p *parser) section() *Section {
	if p.current == nil {
		p.current = NewSection("", 0)
	}
	return p.current
}

func (p *parser) closeSection() {
	if p.current == nil {
		return
	}
	p.cfg.Sections = append(p.cfg.Sections, p.current)
	p.current = nil
}

func (p *parser) label() string {
	if p.current == nil {
		return ""
	}
	return p.current.Label
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
