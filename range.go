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

// Package versions provides a closed-interval algebra over 16-bit wire-format
// version numbers.
//
// A Range consists of the lowest version which is accepted and the highest.
// Ranges are inclusive, meaning that both the lowest and the highest version
// are valid versions. The only exception is the empty range, which contains
// no versions at all.
//
// Ranges have a compact string form, suitable for embedding in schema
// definitions and generated documentation:
//
//   - A single supported version V is written "V".
//   - A bounded range from A to B is written "A-B".
//   - All versions from A onward is written "A+".
//   - The empty range is written "none".
//
// Schema tooling combines ranges with Intersect, Subtract and ContainsRange
// to work out, for every element of a wire-format definition, the exact set
// of format versions that element participates in.
package versions

import (
	"fmt"
	"iter"
	"strconv"
)

// MaxVersion is the highest representable version number. A range whose upper
// bound equals MaxVersion is unbounded above: it includes all future versions.
const MaxVersion int16 = 32767

// NoneString is the textual form of the empty range.
const NoneString = "none"

// Range is an immutable closed interval [Lowest, Highest] of version numbers.
//
// The empty range is represented canonically with lowest 0 and highest -1;
// every operation that produces an empty result normalizes to that form, so
// ranges compare correctly with ==.
//
// The zero value of Range is the range containing only version 0. Use None
// for the empty range.
type Range struct {
	lowest  int16
	highest int16
}

// All returns the widest representable range, [0, MaxVersion].
func All() Range {
	return Range{lowest: 0, highest: MaxVersion}
}

// None returns the canonical empty range.
func None() Range {
	return Range{lowest: 0, highest: -1}
}

// New creates a range from inclusive bounds.
//
// Negative bounds are rejected with *InvalidRangeError. An inverted pair of
// non-negative bounds (lowest > highest) denotes emptiness and is normalized
// to the canonical None value.
func New(lowest, highest int16) (Range, error) {
	if lowest < 0 || highest < 0 {
		return Range{}, &InvalidRangeError{Lowest: lowest, Highest: highest}
	}
	if lowest > highest {
		return None(), nil
	}
	return Range{lowest: lowest, highest: highest}, nil
}

// Lowest returns the inclusive lower bound.
func (r Range) Lowest() int16 {
	return r.lowest
}

// Highest returns the inclusive upper bound.
// For the empty range this is -1.
func (r Range) Highest() int16 {
	return r.highest
}

// IsEmpty returns true if the range contains no versions.
func (r Range) IsEmpty() bool {
	return r.lowest > r.highest
}

// Contains returns true if the given version falls within this range.
func (r Range) Contains(version int16) bool {
	return version >= r.lowest && version <= r.highest
}

// ContainsRange returns true if every version in other is also in this range.
// The empty range is contained in everything.
func (r Range) ContainsRange(other Range) bool {
	if other.IsEmpty() {
		return true
	}
	return r.lowest <= other.lowest && r.highest >= other.highest
}

// Size returns the number of versions in the range.
func (r Range) Size() int {
	if r.IsEmpty() {
		return 0
	}
	return int(r.highest) - int(r.lowest) + 1
}

// Versions iterates over every version in the range in ascending order.
// Callers that cannot express a result as a single range (see Subtract)
// can fall back to per-version enumeration.
func (r Range) Versions() iter.Seq[int16] {
	return func(yield func(int16) bool) {
		// Widened so the loop terminates when highest is MaxVersion.
		for v := int(r.lowest); v <= int(r.highest); v++ {
			if !yield(int16(v)) {
				return
			}
		}
	}
}

// String returns the canonical textual form of the range.
// It is the exact inverse of Parse.
func (r Range) String() string {
	switch {
	case r.IsEmpty():
		return NoneString
	case r.lowest == r.highest:
		return strconv.Itoa(int(r.lowest))
	case r.highest == MaxVersion:
		return fmt.Sprintf("%d+", r.lowest)
	default:
		return fmt.Sprintf("%d-%d", r.lowest, r.highest)
	}
}

// MarshalText implements encoding.TextMarshaler using the canonical form,
// so ranges embed directly in JSON schema definitions.
func (r Range) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// A blank value decodes as the empty range.
func (r *Range) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text), None())
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
