// SPDX-License-Identifier: MPL-2.0

package pydeps

type (
	// DependencySet is an insertion-ordered set of unique package names.
	// The first occurrence of a name wins its position; later inserts of
	// the same name are ignored.
	DependencySet struct {
		names []string
		seen  map[string]struct{}
	}
)

// NewDependencySet creates an empty DependencySet.
func NewDependencySet() *DependencySet {
	return &DependencySet{seen: make(map[string]struct{})}
}

// Add inserts name unless it is already present. Reports whether the
// name was newly added.
func (s *DependencySet) Add(name string) bool {
	if _, ok := s.seen[name]; ok {
		return false
	}
	s.seen[name] = struct{}{}
	s.names = append(s.names, name)
	return true
}

// Contains reports whether name is in the set.
func (s *DependencySet) Contains(name string) bool {
	_, ok := s.seen[name]
	return ok
}

// Names returns the members in insertion order. The returned slice is a
// copy; mutating it does not affect the set.
func (s *DependencySet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of members.
func (s *DependencySet) Len() int {
	return len(s.names)
}
