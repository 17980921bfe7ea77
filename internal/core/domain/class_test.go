package domain_test

import (
	"testing"

	"go.trai.ch/sift/internal/core/domain"
)

func TestClassName_Interning(t *testing.T) {
	a := domain.NewClassName("com.example.Foo")
	b := domain.NewClassName("com.example.Foo")

	if a != b {
		t.Error("expected interned names to compare equal")
	}
	if a.String() != "com.example.Foo" {
		t.Errorf("expected com.example.Foo, got %q", a.String())
	}
}

func TestClassName_Zero(t *testing.T) {
	var zero domain.ClassName
	if zero.String() != "" {
		t.Errorf("expected empty string for zero value, got %q", zero.String())
	}
}

func TestStarNode(t *testing.T) {
	star := domain.StarNode()

	if !star.IsStar() {
		t.Error("expected StarNode to report IsStar")
	}
	if star.String() != "*" {
		t.Errorf("expected *, got %q", star.String())
	}
	if domain.NewClassName("com.example.Foo").IsStar() {
		t.Error("regular class reported as star")
	}
	if domain.NewClassName("*") != star {
		t.Error("expected * literal to equal StarNode")
	}
}

func TestClassName_TextRoundTrip(t *testing.T) {
	orig := domain.NewClassName("com.example.Bar")

	text, err := orig.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var back domain.ClassName
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != orig {
		t.Errorf("expected %v after round trip, got %v", orig, back)
	}
}

func TestClassSet(t *testing.T) {
	s := domain.NewClassSet(domain.NewClassName("b"), domain.NewClassName("a"))
	s.Add(domain.NewClassName("c"))
	s.Add(domain.NewClassName("a")) // duplicate

	if len(s) != 3 {
		t.Fatalf("expected 3 members, got %d", len(s))
	}
	if !s.Contains(domain.NewClassName("b")) {
		t.Error("expected set to contain b")
	}
	if s.Contains(domain.NewClassName("d")) {
		t.Error("did not expect set to contain d")
	}

	other := domain.NewClassSet(domain.NewClassName("d"))
	s.AddAll(other)

	sorted := s.Sorted()
	want := []string{"a", "b", "c", "d"}
	if len(sorted) != len(want) {
		t.Fatalf("expected %v, got %v", want, sorted)
	}
	for i := range want {
		if sorted[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, sorted)
		}
	}
}
