// Copyright 2025 Contriboss
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

package versions

import (
	"strconv"
	"strings"
)

// Parse parses the textual form of a version range.
//
// Supported syntax, after trimming surrounding whitespace:
//
//	""       the caller-supplied default (for absent schema fields)
//	"none"   the empty range
//	"3"      the single version 3
//	"1-4"    versions 1 through 4, inclusive
//	"2+"     version 2 and all later versions
//
// Blank input returns def; it is not an error. Malformed input never falls
// back to the default: it fails with *ParseError.
func Parse(input string, def Range) (Range, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return def, nil
	}
	if trimmed == NoneString {
		return None(), nil
	}

	if rest, ok := strings.CutSuffix(trimmed, "+"); ok {
		lowest, err := parseVersion(trimmed, rest)
		if err != nil {
			return Range{}, err
		}
		return newParsed(trimmed, lowest, MaxVersion)
	}

	// The first dash splits the bounds.
	if before, after, ok := strings.Cut(trimmed, "-"); ok {
		lowest, err := parseVersion(trimmed, before)
		if err != nil {
			return Range{}, err
		}
		highest, err := parseVersion(trimmed, after)
		if err != nil {
			return Range{}, err
		}
		return newParsed(trimmed, lowest, highest)
	}

	version, err := parseVersion(trimmed, trimmed)
	if err != nil {
		return Range{}, err
	}
	return newParsed(trimmed, version, version)
}

// parseVersion parses a single numeric token as a 16-bit version number.
func parseVersion(input, token string) (int16, error) {
	n, err := strconv.ParseInt(token, 10, 16)
	if err != nil {
		return 0, &ParseError{Input: input, Err: err}
	}
	return int16(n), nil
}

// newParsed builds the parsed range, wrapping a constructor rejection
// (a negative bound) so the caller sees which input was at fault.
func newParsed(input string, lowest, highest int16) (Range, error) {
	r, err := New(lowest, highest)
	if err != nil {
		return Range{}, &ParseError{Input: input, Err: err}
	}
	return r, nil
}
