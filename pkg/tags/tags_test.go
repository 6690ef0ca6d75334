// SPDX-License-Identifier: MPL-2.0

package tags

import "testing"

func TestOfDeduplicatesAndOrders(t *testing.T) {
	t.Parallel()

	s := Of([]string{"ocaml", "byte", "ocaml", "debug", "byte"})
	got := s.Elements()
	want := []string{"byte", "debug", "ocaml"}

	if len(got) != len(want) {
		t.Fatalf("expected %d elements, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestEqualIgnoresInsertionOrder(t *testing.T) {
	t.Parallel()

	a := New("compile", "ocaml", "debug")
	b := New("debug", "compile", "ocaml")
	if !a.Equal(b) {
		t.Errorf("expected %v to equal %v", a, b)
	}
}

func TestUnion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Set
		want Set
	}{
		{"both empty", Set{}, Set{}, Set{}},
		{"left empty", Set{}, New("x"), New("x")},
		{"right empty", New("x"), Set{}, New("x")},
		{"overlap", New("a", "b"), New("b", "c"), New("a", "b", "c")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Union(tt.a, tt.b); !got.Equal(tt.want) {
				t.Errorf("Union(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPlusMinus(t *testing.T) {
	t.Parallel()

	s := New("a", "c")

	if got := s.Plus("b"); got.String() != "a,b,c" {
		t.Errorf("Plus: got %q, want %q", got.String(), "a,b,c")
	}
	if got := s.Plus("a"); !got.Equal(s) {
		t.Errorf("Plus existing tag should be a no-op, got %v", got)
	}
	if got := s.Minus("a"); got.String() != "c" {
		t.Errorf("Minus: got %q, want %q", got.String(), "c")
	}
	if got := s.Minus("z"); !got.Equal(s) {
		t.Errorf("Minus absent tag should be a no-op, got %v", got)
	}
}

func TestPlusOptMinusOpt(t *testing.T) {
	t.Parallel()

	s := New("a")
	tag := "b"

	if got := s.PlusOpt(nil); !got.Equal(s) {
		t.Errorf("PlusOpt(nil) should be a no-op, got %v", got)
	}
	if got := s.PlusOpt(&tag); got.String() != "a,b" {
		t.Errorf("PlusOpt: got %q, want %q", got.String(), "a,b")
	}
	if got := s.MinusOpt(nil); !got.Equal(s) {
		t.Errorf("MinusOpt(nil) should be a no-op, got %v", got)
	}
	a := "a"
	if got := s.MinusOpt(&a); got.Len() != 0 {
		t.Errorf("MinusOpt: expected empty set, got %v", got)
	}
}

func TestDoesMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		required Set
		active   Set
		want     bool
	}{
		{"empty matches empty", Set{}, Set{}, true},
		{"empty matches anything", Set{}, New("x", "y"), true},
		{"subset matches", New("x"), New("x", "y"), true},
		{"equal sets match", New("x", "y"), New("x", "y"), true},
		{"missing tag fails", New("x", "z"), New("x", "y"), false},
		{"nonempty against empty fails", New("x"), Set{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DoesMatch(tt.required, tt.active); got != tt.want {
				t.Errorf("DoesMatch(%v, %v) = %v, want %v", tt.required, tt.active, got, tt.want)
			}
		})
	}
}

func TestElementsReturnsCopy(t *testing.T) {
	t.Parallel()

	s := New("a", "b")
	elems := s.Elements()
	elems[0] = "mutated"

	if !s.Contains("a") {
		t.Error("mutating Elements() result must not affect the set")
	}
}
