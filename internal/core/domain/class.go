// Package domain contains the core domain models and business logic for
// class-level dependency analysis and test selection.
package domain

import (
	"sort"
	"unique"
)

// starName is the raw identifier of the sentinel node. It marks reachability
// that static analysis could not determine (e.g. dynamically loaded classes).
const starName = "*"

// ClassName is a value object identifying a class by its fully-qualified name.
// It wraps a unique.Handle[string] to reduce memory usage, since the same
// class name appears in many edges and closures.
type ClassName struct {
	h unique.Handle[string]
}

// NewClassName creates a new interned ClassName from a string.
func NewClassName(s string) ClassName {
	return ClassName{
		h: unique.Make(s),
	}
}

// StarNode returns the sentinel node meaning "reachable set includes classes
// not statically determinable". Any class whose closure contains StarNode must
// be treated as affected by any change.
func StarNode() ClassName {
	return NewClassName(starName)
}

// IsStar reports whether the name is the StarNode sentinel.
func (c ClassName) IsStar() bool {
	return c == StarNode()
}

// String returns the fully-qualified class name.
func (c ClassName) String() string {
	var zero unique.Handle[string]
	if c.h == zero {
		return ""
	}
	return c.h.Value()
}

// MarshalText implements encoding.TextMarshaler.
func (c ClassName) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ClassName) UnmarshalText(text []byte) error {
	c.h = unique.Make(string(text))
	return nil
}

// ClassSet is a set of class names.
type ClassSet map[ClassName]struct{}

// NewClassSet creates a ClassSet from the given names.
func NewClassSet(names ...ClassName) ClassSet {
	s := make(ClassSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Add inserts a name into the set.
func (s ClassSet) Add(n ClassName) {
	s[n] = struct{}{}
}

// Contains reports whether the set contains the given name.
func (s ClassSet) Contains(n ClassName) bool {
	_, ok := s[n]
	return ok
}

// AddAll inserts every element of other into the set.
func (s ClassSet) AddAll(other ClassSet) {
	for n := range other {
		s[n] = struct{}{}
	}
}

// Sorted returns the member names in lexicographic order. Sets themselves are
// unordered; sorting happens wherever order becomes observable.
func (s ClassSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n.String())
	}
	sort.Strings(out)
	return out
}
