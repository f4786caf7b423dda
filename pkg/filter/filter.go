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

package filter

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/walteh/ubackup/pkg/config"
)

// categorical is the fixed evaluation order of stage B
var categorical = []config.Category{config.CategoryFilename, config.CategoryDirectory, config.CategoryMask}

// ✅ Decision is the outcome of filtering one entry
type Decision struct {
	Accepted bool
	Category config.Category // category that rejected the entry
	Pattern  string          // pattern that rejected the entry
	Reason   string
}

// 🧮 Engine decides which candidates a section keeps. It caches compiled
// patterns and is safe for concurrent use.
type Engine struct {
	mu    sync.Mutex
	cache map[string]*regexp.Regexp
}

// 🏭 NewEngine creates an engine with an empty pattern cache
func NewEngine() *Engine {
	return &Engine{cache: make(map[string]*regexp.Regexp)}
}

// Decide filters a single entry with a throwaway engine
func Decide(entry string, sect *config.Section) Decision {
	return NewEngine().Decide(entry, sect)
}

// 🎯 Decide runs the extension stage and then the categorical stage.
//
// The categorical stage checks files, dirs and masks in that order and stops
// at the first category that rejects. An include category rejects as soon as
// one of its patterns does not match; an exclude category rejects when any
// pattern matches.
func (e *Engine) Decide(entry string, sect *config.Section) Decision {
	if d := e.decideExtension(entry, sect); !d.Accepted {
		return d
	}

	for _, c := range categorical {
		spec := sect.Filter(c)
		if spec == nil {
			continue
		}
		for _, pat := range spec.Patterns {
			if pat == "" {
				continue
			}
			matched := e.compile(pat).MatchString(entry)
			switch {
			case spec.Polarity == config.Include && !matched:
				return reject(c, pat, "incl. '%s' because of +%s='%s'", filepath.Base(entry), c, pat)
			case spec.Polarity == config.Exclude && matched:
				return reject(c, pat, "excl. '%s' because of -%s='%s'", filepath.Base(entry), c, pat)
			}
		}
	}

	return Decision{Accepted: true}
}

func (e *Engine) decideExtension(entry string, sect *config.Section) Decision {
	spec := sect.Filter(config.CategoryExtension)
	if spec == nil || len(spec.Patterns) == 0 {
		return Decision{Accepted: true}
	}

	ext := Extension(entry)
	member := false
	for _, p := range spec.Patterns {
		if strings.ToLower(p) == ext {
			member = true
			break
		}
	}

	switch {
	case spec.Polarity == config.Include && !member:
		return reject(config.CategoryExtension, ext, "incl. '%s' because extension '%s' is not listed", filepath.Base(entry), ext)
	case spec.Polarity == config.Exclude && member:
		return reject(config.CategoryExtension, ext, "excl. '%s' because extension '%s' is listed", filepath.Base(entry), ext)
	}
	return Decision{Accepted: true}
}

// compile returns the case-insensitive regexp for a pattern. Patterns that are
// not valid regular expressions match as literal substrings.
func (e *Engine) compile(pat string) *regexp.Regexp {
	e.mu.Lock()
	defer e.mu.Unlock()

	if re, ok := e.cache[pat]; ok {
		return re
	}
	re, err := regexp.Compile("(?i)" + pat)
	if err != nil {
		re = regexp.MustCompile("(?i)" + regexp.QuoteMeta(pat))
	}
	e.cache[pat] = re
	return re
}

// Extension returns the lowercase text after the first dot of the entry's
// base name, or "" when the name has no dot
func Extension(entry string) string {
	base := filepath.Base(entry)
	i := strings.IndexByte(base, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(base[i+1:])
}

func reject(c config.Category, pat, format string, args ...any) Decision {
	return Decision{
		Category: c,
		Pattern:  pat,
		Reason:   fmt.Sprintf(format, args...),
	}
}
