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
	"strings"
	"unicode"
)

// ✂️ Tokenize splits a value on whitespace. Text between double quotes is kept
// in one token with the quotes removed, so `a "b c" d` yields [a, b c, d].
// An unterminated quote runs to the end of the value.
func Tokenize(value string) []string {
	var (
		tokens  []string
		cur     strings.Builder
		inQuote bool
		pending bool // cur holds a token, possibly an empty quoted one
	)

	flush := func() {
		if pending {
			tokens = append(tokens, cur.String())
		}
		cur.Reset()
		pending = false
	}

	for _, r := range value {
		switch {
		case r == '"':
			inQuote = !inQuote
			pending = true
		case unicode.IsSpace(r) && !inQuote:
			flush()
		default:
			cur.WriteRune(r)
			pending = true
		}
	}
	flush()

	return tokens
}

// quoteToken is the inverse of Tokenize for a single token
func quoteToken(tok string) string {
	if tok == "" || strings.ContainsFunc(tok, unicode.IsSpace) {
		return `"` + tok + `"`
	}
	return tok
}
