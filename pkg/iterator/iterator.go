// Package iterator implements restartable lazy sequences.
//
// A Sequence owns a builder that opens a fresh Iterator (a session) every time
// it is called. Adapters wrap the builder and return a new Sequence without
// pulling anything; consumers open one session and drain it as far as they
// need.
package iterator

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

type Iterable[V any] interface {
	Itr() Iterator[V]
}

// Iterator is a single-use cursor. Move returns the next value and true, or the
// zero value and false once the session is exhausted. Every Iterator in this
// package keeps returning false after the first false.
type Iterator[V any] interface {
	Move() (V, bool)
}

// Stopper is implemented by iterators that hold resources outside their own
// memory. Adapters forward Stop to every upstream iterator they own.
type Stopper interface {
	Stop()
}

// Stop releases it if it implements Stopper. Stopping an exhausted or already
// stopped iterator is a no-op.
func Stop[V any](it Iterator[V]) {
	if s, ok := it.(Stopper); ok {
		s.Stop()
	}
}

// Position tags an element with its structural role in a finite sequence.
type Position int

const (
	First Position = iota
	Middle
	Last
	Only
)

func (p Position) String() string {
	switch p {
	case First:
		return "First"
	case Middle:
		return "Middle"
	case Last:
		return "Last"
	case Only:
		return "Only"
	}
	return "Position(" + strconv.Itoa(int(p)) + ")"
}

type Positioned[V any] struct {
	Position Position
	Value    V
}

type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	}
	return "Ordering(" + strconv.Itoa(int(o)) + ")"
}

// OrderingOf maps the sign of a three-way comparison result to an Ordering.
func OrderingOf(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	}
	return Equal
}

type Comparable[T any] interface {
	CompareTo(T) int
}

// Compare orders values that know how to compare themselves. It can be passed
// directly to MinBy and MaxBy.
func Compare[V Comparable[V]](a, b V) Ordering {
	return OrderingOf(a.CompareTo(b))
}

func CompareOrdered[V constraints.Ordered](a, b V) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	}
	return Equal
}

type Pair[A, B any] struct {
	First  A
	Second B
}

type Indexed[V any] struct {
	Index int
	Value V
}
