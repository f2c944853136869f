package versions

import "testing"

func TestIntersect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a      Range
		b      Range
		expect Range
	}{
		{mustRange(t, 2, 6), mustRange(t, 4, 10), mustRange(t, 4, 6)},
		{mustRange(t, 2, 3), mustRange(t, 4, 5), None()},
		{mustRange(t, 1, 4), mustRange(t, 1, 4), mustRange(t, 1, 4)},
		{mustRange(t, 0, MaxVersion), mustRange(t, 7, 9), mustRange(t, 7, 9)},
		{mustRange(t, 3, 3), mustRange(t, 3, 3), mustRange(t, 3, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.a.String()+" ∩ "+tt.b.String(), func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.expect {
				t.Fatalf("Intersect = %v, want %v", got, tt.expect)
			}
			// Intersection is commutative.
			if got := tt.b.Intersect(tt.a); got != tt.expect {
				t.Fatalf("reversed Intersect = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestIntersectIdentities(t *testing.T) {
	t.Parallel()

	r := mustRange(t, 3, 9)
	if got := r.Intersect(r); got != r {
		t.Fatalf("r ∩ r = %v, want %v", got, r)
	}
	if got := r.Intersect(All()); got != r {
		t.Fatalf("r ∩ All = %v, want %v", got, r)
	}
	if got := r.Intersect(None()); got != None() {
		t.Fatalf("r ∩ None = %v, want None", got)
	}
	if got := None().Intersect(r); got != None() {
		t.Fatalf("None ∩ r = %v, want None", got)
	}
}

func TestSubtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		r      Range
		other  Range
		expect Range
	}{
		{"trim head", mustRange(t, 1, 4), mustRange(t, 1, 2), mustRange(t, 3, 4)},
		{"trim unbounded tail", mustRange(t, 3, MaxVersion), mustRange(t, 4, MaxVersion), mustRange(t, 3, 3)},
		{"superset trims everything", mustRange(t, 4, MaxVersion), mustRange(t, 3, MaxVersion), None()},
		{"disjoint below", mustRange(t, 5, 9), mustRange(t, 1, 3), mustRange(t, 5, 9)},
		{"disjoint above", mustRange(t, 1, 3), mustRange(t, 5, 9), mustRange(t, 1, 3)},
		{"trim tail", mustRange(t, 1, 9), mustRange(t, 5, 9), mustRange(t, 1, 4)},
		{"subtract empty", mustRange(t, 1, 9), None(), mustRange(t, 1, 9)},
		{"subtract from empty", None(), mustRange(t, 1, 9), None()},
		{"exact cover", mustRange(t, 2, 7), mustRange(t, 2, 7), None()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.r.Subtract(tt.other)
			if !ok {
				t.Fatalf("%v.Subtract(%v) not representable, want %v", tt.r, tt.other, tt.expect)
			}
			if got != tt.expect {
				t.Fatalf("%v.Subtract(%v) = %v, want %v", tt.r, tt.other, got, tt.expect)
			}
		})
	}
}

func TestSubtractNotRepresentable(t *testing.T) {
	t.Parallel()

	// Removing an interior sub-range would split [1,5] into [1,1] and [5,5].
	if _, ok := mustRange(t, 1, 5).Subtract(mustRange(t, 2, 4)); ok {
		t.Fatal("interior subtraction should not be representable")
	}
	if _, ok := mustRange(t, 0, MaxVersion).Subtract(mustRange(t, 1, 10)); ok {
		t.Fatal("interior subtraction should not be representable")
	}
}

func TestUnion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		a      Range
		b      Range
		expect Range
	}{
		{"overlapping", mustRange(t, 1, 4), mustRange(t, 3, 9), mustRange(t, 1, 9)},
		{"adjacent", mustRange(t, 1, 4), mustRange(t, 5, 9), mustRange(t, 1, 9)},
		{"nested", mustRange(t, 1, 9), mustRange(t, 3, 5), mustRange(t, 1, 9)},
		{"with empty", mustRange(t, 2, 7), None(), mustRange(t, 2, 7)},
		{"empty with empty", None(), None(), None()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Union(tt.b)
			if !ok {
				t.Fatalf("%v.Union(%v) not contiguous, want %v", tt.a, tt.b, tt.expect)
			}
			if got != tt.expect {
				t.Fatalf("%v.Union(%v) = %v, want %v", tt.a, tt.b, got, tt.expect)
			}
			reversed, ok := tt.b.Union(tt.a)
			if !ok || reversed != tt.expect {
				t.Fatalf("reversed Union = %v (ok=%v), want %v", reversed, ok, tt.expect)
			}
		})
	}
}

func TestUnionWithGap(t *testing.T) {
	t.Parallel()

	if _, ok := mustRange(t, 1, 3).Union(mustRange(t, 5, 9)); ok {
		t.Fatal("union across a gap should not be contiguous")
	}
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	a := mustRange(t, 1, 4)
	if !a.Overlaps(mustRange(t, 4, 9)) {
		t.Fatal("ranges sharing an endpoint should overlap")
	}
	if a.Overlaps(mustRange(t, 5, 9)) {
		t.Fatal("disjoint ranges should not overlap")
	}
	if a.Overlaps(None()) {
		t.Fatal("nothing overlaps the empty range")
	}
}
