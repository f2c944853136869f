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
	"fmt"
)

// InvalidRangeError is returned by New when a bound is negative.
// Version numbers are non-negative; a negative bound is a schema-author
// error, not something to recover from.
type InvalidRangeError struct {
	Lowest  int16
	Highest int16
}

// Error implements the error interface.
func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid version range %d to %d", e.Lowest, e.Highest)
}

// ParseError is returned by Parse when the input does not match the range
// grammar or a numeric token does not fit in 16 bits. It is never returned
// for blank input, which yields the caller-supplied default instead.
type ParseError struct {
	// Input is the trimmed text that failed to parse.
	Input string
	// Err is the underlying cause, such as a strconv error or an
	// InvalidRangeError for a negative bound.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid version range %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Verify interface compliance
var (
	_ error = (*InvalidRangeError)(nil)
	_ error = (*ParseError)(nil)
)
