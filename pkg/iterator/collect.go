package iterator

import (
	"fmt"

	g "github.com/anacrolix/generics"
	"golang.org/x/exp/constraints"
)

func Reduce[T, A any](it *Sequence[T], initial A, f func(acc A, v T) A) A {
	acc := initial
	for v := range it.All() {
		acc = f(acc, v)
	}
	return acc
}

// FindMap returns the first present result of f.
func FindMap[T, U any](it *Sequence[T], f func(T) g.Option[U]) g.Option[U] {
	for v := range it.All() {
		if res := f(v); res.Ok {
			return res
		}
	}
	return g.None[U]()
}

func ToSet[T comparable](it *Sequence[T]) map[T]struct{} {
	set := make(map[T]struct{})
	for v := range it.All() {
		set[v] = struct{}{}
	}
	return set
}

// ToMap builds a map from the entries produced by toEntry. Later entries
// overwrite earlier ones with the same key.
func ToMap[T any, K comparable, E any](it *Sequence[T], toEntry func(T) (K, E)) map[K]E {
	res := make(map[K]E)
	for v := range it.All() {
		k, e := toEntry(v)
		res[k] = e
	}
	return res
}

// ToObject is ToMap with keys rendered through fmt.Sprint, producing a record
// keyed by strings.
func ToObject[T, K, E any](it *Sequence[T], toEntry func(T) (K, E)) map[string]E {
	return ToMap(it, func(v T) (string, E) {
		k, e := toEntry(v)
		return fmt.Sprint(k), e
	})
}

// GroupToMap groups elements by key. Each group keeps the elements in their
// original order.
func GroupToMap[T any, K comparable](it *Sequence[T], key func(T) K) map[K]*Sequence[T] {
	groups := make(map[K][]T)
	for v := range it.All() {
		k := key(v)
		groups[k] = append(groups[k], v)
	}

	res := make(map[K]*Sequence[T], len(groups))
	for k, members := range groups {
		res[k] = FromSlice(members)
	}
	return res
}

func GroupToObject[T, K any](it *Sequence[T], key func(T) K) map[string]*Sequence[T] {
	return GroupToMap(it, func(v T) string { return fmt.Sprint(key(v)) })
}

func IsUnique[T comparable](it *Sequence[T]) bool {
	return IsUniqueByKey(it, func(v T) T { return v })
}

// IsUniqueByKey reports whether no two elements share a key. It stops at the
// first duplicate.
func IsUniqueByKey[T any, K comparable](it *Sequence[T], key func(T) K) bool {
	seen := make(map[K]struct{})
	for v := range it.All() {
		k := key(v)
		if _, dup := seen[k]; dup {
			return false
		}
		seen[k] = struct{}{}
	}
	return true
}

func Max[T constraints.Ordered](it *Sequence[T]) g.Option[T] {
	return it.MaxBy(CompareOrdered[T])
}

func Min[T constraints.Ordered](it *Sequence[T]) g.Option[T] {
	return it.MinBy(CompareOrdered[T])
}

func MaxByKey[T any, K constraints.Ordered](it *Sequence[T], key func(T) K) g.Option[T] {
	return it.MaxBy(func(a, b T) Ordering { return CompareOrdered(key(a), key(b)) })
}

func MinByKey[T any, K constraints.Ordered](it *Sequence[T], key func(T) K) g.Option[T] {
	return it.MinBy(func(a, b T) Ordering { return CompareOrdered(key(a), key(b)) })
}
