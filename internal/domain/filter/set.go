package filter

import "sort"

// Set is a filter field. The zero value places no restriction on rows;
// Only(...) restricts to exactly its members, so Only() with no arguments
// matches nothing.
type Set[T comparable] struct {
	restricted bool
	members    map[T]struct{}
}

// Any returns an unrestricted set.
func Any[T comparable]() Set[T] { return Set[T]{} }

// Only returns a set restricted to vals.
func Only[T comparable](vals ...T) Set[T] {
	s := Set[T]{restricted: true, members: make(map[T]struct{}, len(vals))}
	for _, v := range vals {
		s.members[v] = struct{}{}
	}
	return s
}

// Restricted reports whether the set limits rows at all.
func (s Set[T]) Restricted() bool { return s.restricted }

// Empty reports whether the set is restricted to no members.
func (s Set[T]) Empty() bool { return s.restricted && len(s.members) == 0 }

// Len returns the number of members; it is 0 for an unrestricted set.
func (s Set[T]) Len() int { return len(s.members) }

// Allows reports whether v passes the set.
func (s Set[T]) Allows(v T) bool {
	if !s.restricted {
		return true
	}
	_, ok := s.members[v]
	return ok
}

// Members returns the members ordered by less.
func (s Set[T]) Members(less func(a, b T) bool) []T {
	out := make([]T, 0, len(s.members))
	for v := range s.members {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
