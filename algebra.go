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

// Intersect returns the set of versions in both this range and the other.
// The result is None when the ranges do not overlap.
func (r Range) Intersect(other Range) Range {
	lowest := max(r.lowest, other.lowest)
	highest := min(r.highest, other.highest)
	if lowest > highest {
		return None()
	}
	return Range{lowest: lowest, highest: highest}
}

// Overlaps returns true if this range has any versions in common with other.
func (r Range) Overlaps(other Range) bool {
	return !r.Intersect(other).IsEmpty()
}

// Subtract trims the versions in other from this range, if possible.
//
// The second result is false when the versions cannot be trimmed: removing a
// strictly interior sub-range would leave two disjoint pieces, which a single
// Range cannot represent. Callers hitting that case can fall back to
// enumerating Versions individually.
//
// Some examples:
//
//	[1,4].Subtract([1,2])   = [3,4]
//	[3,+].Subtract([4,+])   = [3,3]
//	[4,+].Subtract([3,+])   = None
//	[1,5].Subtract([2,4])   → not representable
func (r Range) Subtract(other Range) (Range, bool) {
	// Bounds are widened to int so the +1/-1 arithmetic below cannot wrap.
	lowest, highest := int(r.lowest), int(r.highest)
	otherLowest, otherHighest := int(other.lowest), int(other.highest)

	switch {
	case otherLowest <= lowest:
		switch {
		case otherHighest >= highest:
			// Other is a superset of this. Trim everything.
			return None(), true
		case otherHighest < lowest:
			// Other is a disjoint range below this one. Trim nothing.
			return r, true
		default:
			// Trim some versions from the beginning of this range.
			return Range{lowest: int16(otherHighest + 1), highest: r.highest}, true
		}
	case otherHighest >= highest:
		newHighest := otherLowest - 1
		switch {
		case newHighest < 0:
			// Other was empty. Trim nothing.
			return r, true
		case newHighest < highest:
			// Trim some versions from the end of this range.
			return Range{lowest: r.lowest, highest: int16(newHighest)}, true
		default:
			// Other is a disjoint range above this one. Trim nothing.
			return r, true
		}
	default:
		// Other is strictly interior; the difference would be two ranges.
		return None(), false
	}
}

// Union merges this range with other into a single contiguous range.
//
// The second result is false when the ranges are disjoint with a gap between
// them, since the union would then not be contiguous.
func (r Range) Union(other Range) (Range, bool) {
	if r.IsEmpty() {
		return other, true
	}
	if other.IsEmpty() {
		return r, true
	}
	if int(r.highest)+1 < int(other.lowest) || int(other.highest)+1 < int(r.lowest) {
		return None(), false
	}
	return Range{
		lowest:  min(r.lowest, other.lowest),
		highest: max(r.highest, other.highest),
	}, true
}
