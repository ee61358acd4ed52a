package iterator

import (
	"fmt"
	"strings"

	g "github.com/anacrolix/generics"
)

func (s *Sequence[V]) Count() int {
	n := 0
	for range s.All() {
		n++
	}
	return n
}

func (s *Sequence[V]) ForEach(f func(V)) {
	for v := range s.All() {
		f(v)
	}
}

func (s *Sequence[V]) Any(pred func(V) bool) bool {
	for v := range s.All() {
		if pred(v) {
			return true
		}
	}
	return false
}

func (s *Sequence[V]) Every(pred func(V) bool) bool {
	for v := range s.All() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// ToList drains the sequence into a new slice. The result is never nil.
func (s *Sequence[V]) ToList() []V {
	list := make([]V, 0)
	for v := range s.All() {
		list = append(list, v)
	}
	return list
}

func (s *Sequence[V]) IsEmpty() bool {
	it := s.Itr()
	defer Stop(it)
	_, ok := it.Move()
	return !ok
}

func (s *Sequence[V]) Find(pred func(V) bool) g.Option[V] {
	for v := range s.All() {
		if pred(v) {
			return g.Some(v)
		}
	}
	return g.None[V]()
}

func (s *Sequence[V]) FindIndex(pred func(V) bool) g.Option[int] {
	i := 0
	for v := range s.All() {
		if pred(v) {
			return g.Some(i)
		}
		i++
	}
	return g.None[int]()
}

func (s *Sequence[V]) First() g.Option[V] {
	it := s.Itr()
	defer Stop(it)
	return move(it)
}

func (s *Sequence[V]) Last() g.Option[V] {
	last := g.None[V]()
	for v := range s.All() {
		last = g.Some(v)
	}
	return last
}

// Nth returns the element at index n, scanning from the start.
func (s *Sequence[V]) Nth(n int) g.Option[V] {
	requireNonNegative("nth", n)
	i := 0
	for v := range s.All() {
		if i == n {
			return g.Some(v)
		}
		i++
	}
	return g.None[V]()
}

// MaxBy returns the greatest element according to cmp. On ties the later
// element wins.
func (s *Sequence[V]) MaxBy(cmp func(a, b V) Ordering) g.Option[V] {
	best := g.None[V]()
	for v := range s.All() {
		if !best.Ok || cmp(v, best.Value) != Less {
			best = g.Some(v)
		}
	}
	return best
}

// MinBy returns the least element according to cmp. On ties the earlier
// element wins.
func (s *Sequence[V]) MinBy(cmp func(a, b V) Ordering) g.Option[V] {
	best := g.None[V]()
	for v := range s.All() {
		if !best.Ok || cmp(v, best.Value) == Less {
			best = g.Some(v)
		}
	}
	return best
}

// Eq reports whether other has the same length as s and DeepEqual elements.
func (s *Sequence[V]) Eq(other Iterable[V]) bool {
	return s.EqBy(other, func(a, b V) bool { return DeepEqual(a, b) })
}

func (s *Sequence[V]) EqBy(other Iterable[V], eq func(a, b V) bool) bool {
	left, right := s.Itr(), itrOf(other)
	defer Stop(left)
	defer Stop(right)

	for {
		a, okA := left.Move()
		b, okB := right.Move()
		switch {
		case !okA && !okB:
			return true
		case !okA || !okB:
			return false
		case !eq(a, b):
			return false
		}
	}
}

func (s *Sequence[V]) Ne(other Iterable[V]) bool {
	return s.NeBy(other, func(a, b V) bool { return !DeepEqual(a, b) })
}

// NeBy reports whether the lengths differ or differ reports true for some pair
// of elements at the same position.
func (s *Sequence[V]) NeBy(other Iterable[V], differ func(a, b V) bool) bool {
	left, right := s.Itr(), itrOf(other)
	defer Stop(left)
	defer Stop(right)

	for {
		a, okA := left.Move()
		b, okB := right.Move()
		switch {
		case !okA && !okB:
			return false
		case !okA || !okB:
			return true
		case differ(a, b):
			return true
		}
	}
}

// Join renders every element with fmt.Sprint and joins them with sep.
func (s *Sequence[V]) Join(sep string) string {
	var sb strings.Builder
	first := true
	for v := range s.All() {
		if !first {
			sb.WriteString(sep)
		}
		fmt.Fprint(&sb, v)
		first = false
	}
	return sb.String()
}

// String renders the materialized sequence as "[a, b, c]". Formatting a
// Sequence with %v or %s drains it, which never finishes for an infinite one.
func (s *Sequence[V]) String() string {
	return "[" + s.Join(", ") + "]"
}
