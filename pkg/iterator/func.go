package iterator

import (
	g "github.com/anacrolix/generics"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/exp/constraints"
)

func Map[T, U any](it *Sequence[T], f func(T) U) *Sequence[U] {
	return New(func() Iterator[U] {
		return &MapIterator[T, U]{
			i: it.Itr(),
			f: f,
		}
	})
}

// FilterMap applies f to every element, keeping the unwrapped values of the
// results that are present and dropping the rest.
func FilterMap[T, U any](it *Sequence[T], f func(T) g.Option[U]) *Sequence[U] {
	return New(func() Iterator[U] {
		return &FilterMapIterator[T, U]{
			Source: it.Itr(),
			Fn:     f,
		}
	})
}

// Compact drops nil pointers and dereferences the rest.
func Compact[T any](it *Sequence[*T]) *Sequence[T] {
	return FilterMap(it, func(p *T) g.Option[T] {
		if p == nil {
			return g.None[T]()
		}
		return g.Some(*p)
	})
}

// CompactOption keeps the values of the present options.
func CompactOption[T any](it *Sequence[g.Option[T]]) *Sequence[T] {
	return FilterMap(it, func(o g.Option[T]) g.Option[T] { return o })
}

func FlatMap[T, U any](it *Sequence[T], f func(T) Iterable[U]) *Sequence[U] {
	return New(func() Iterator[U] {
		return &FlatMapIterator[T, U]{
			Source: it.Itr(),
			Fn:     f,
		}
	})
}

// Scan yields every intermediate accumulator of a running fold. When f returns
// None the scan ends; the upstream session is simply not pulled any further.
func Scan[T, A any](it *Sequence[T], initial A, f func(acc A, v T) g.Option[A]) *Sequence[A] {
	return New(func() Iterator[A] {
		return &ScanIterator[T, A]{
			Source: it.Itr(),
			Fn:     f,
			acc:    initial,
		}
	})
}

// Zip pairs elements positionally and stops at the end of the shorter side.
func Zip[T, U any](it *Sequence[T], other Iterable[U]) *Sequence[Pair[T, U]] {
	return ZipWith(it, other, func(a T, b U) Pair[T, U] {
		return Pair[T, U]{First: a, Second: b}
	})
}

func ZipWith[T, U, R any](it *Sequence[T], other Iterable[U], f func(T, U) R) *Sequence[R] {
	return New(func() Iterator[R] {
		return &ZipIterator[T, U, R]{
			Left:  it.Itr(),
			Right: itrOf(other),
			Fn:    f,
		}
	})
}

func Unique[T comparable](it *Sequence[T]) *Sequence[T] {
	return UniqueByKey(it, func(v T) T { return v })
}

// UniqueByKey keeps the first element for every distinct key. The set of seen
// keys belongs to the session and grows with the number of distinct keys.
func UniqueByKey[T any, K comparable](it *Sequence[T], key func(T) K) *Sequence[T] {
	return New(func() Iterator[T] {
		return &UniqueIterator[T, K]{
			Source: it.Itr(),
			Key:    key,
			seen:   make(map[K]struct{}),
		}
	})
}

// UniqueRecentByKey drops an element when its key is among the capacity most
// recently seen distinct keys. Unlike UniqueByKey its memory is bounded, at the
// cost of letting a key through again once it has been evicted.
func UniqueRecentByKey[T any, K comparable](it *Sequence[T], capacity int, key func(T) K) *Sequence[T] {
	requirePositive("uniqueRecentByKey", capacity)
	return New(func() Iterator[T] {
		seen, err := lru.New[K, struct{}](capacity)
		if err != nil {
			panic(err)
		}
		return &RecentIterator[T, K]{
			Source: it.Itr(),
			Key:    key,
			seen:   seen,
		}
	})
}

func DedupByKey[T any, K comparable](it *Sequence[T], key func(T) K) *Sequence[T] {
	return it.DedupBy(func(a, b T) bool { return key(a) == key(b) })
}

// Merge merges two ascending sequences. On equal elements the one from it comes
// first.
func Merge[T constraints.Ordered](it *Sequence[T], other Iterable[T]) *Sequence[T] {
	return it.MergeBy(other, func(a, b T) bool { return a <= b })
}

func MergeByKey[T any, K constraints.Ordered](it *Sequence[T], other Iterable[T], key func(T) K) *Sequence[T] {
	return it.MergeBy(other, func(a, b T) bool { return key(a) <= key(b) })
}

type MapIterator[T, U any] struct {
	i Iterator[T]
	f func(T) U
}

func (i *MapIterator[T, U]) Move() (U, bool) {
	if v, ok := i.i.Move(); ok {
		return i.f(v), true
	}

	return *new(U), false
}

func (i *MapIterator[T, U]) Stop() { Stop(i.i) }

type FilterMapIterator[T, U any] struct {
	Source Iterator[T]
	Fn     func(T) g.Option[U]
}

func (i *FilterMapIterator[T, U]) Move() (U, bool) {
	for v, ok := i.Source.Move(); ok; v, ok = i.Source.Move() {
		if res := i.Fn(v); res.Ok {
			return res.Value, true
		}
	}

	return *new(U), false
}

func (i *FilterMapIterator[T, U]) Stop() { Stop(i.Source) }

type FlatMapIterator[T, U any] struct {
	Source  Iterator[T]
	Fn      func(T) Iterable[U]
	current Iterator[U]
}

func (i *FlatMapIterator[T, U]) Move() (U, bool) {
	for {
		if i.current != nil {
			if v, ok := i.current.Move(); ok {
				return v, true
			}
			Stop(i.current)
			i.current = nil
		}

		v, ok := i.Source.Move()
		if !ok {
			return *new(U), false
		}
		i.current = itrOf(i.Fn(v))
	}
}

func (i *FlatMapIterator[T, U]) Stop() {
	if i.current != nil {
		Stop(i.current)
		i.current = nil
	}
	Stop(i.Source)
}

type ScanIterator[T, A any] struct {
	Source Iterator[T]
	Fn     func(A, T) g.Option[A]
	acc    A
	done   bool
}

func (i *ScanIterator[T, A]) Move() (A, bool) {
	if i.done {
		return *new(A), false
	}

	v, ok := i.Source.Move()
	if !ok {
		i.done = true
		return *new(A), false
	}
	res := i.Fn(i.acc, v)
	if !res.Ok {
		i.done = true
		return *new(A), false
	}
	i.acc = res.Value
	return i.acc, true
}

func (i *ScanIterator[T, A]) Stop() { Stop(i.Source) }

type ZipIterator[T, U, R any] struct {
	Left  Iterator[T]
	Right Iterator[U]
	Fn    func(T, U) R
	done  bool
}

func (i *ZipIterator[T, U, R]) Move() (R, bool) {
	if i.done {
		return *new(R), false
	}

	a, ok := i.Left.Move()
	if !ok {
		i.done = true
		return *new(R), false
	}
	b, ok := i.Right.Move()
	if !ok {
		i.done = true
		return *new(R), false
	}
	return i.Fn(a, b), true
}

func (i *ZipIterator[T, U, R]) Stop() {
	Stop(i.Left)
	Stop(i.Right)
}

type UniqueIterator[T any, K comparable] struct {
	Source Iterator[T]
	Key    func(T) K
	seen   map[K]struct{}
}

func (i *UniqueIterator[T, K]) Move() (T, bool) {
	for v, ok := i.Source.Move(); ok; v, ok = i.Source.Move() {
		k := i.Key(v)
		if _, dup := i.seen[k]; dup {
			continue
		}
		i.seen[k] = struct{}{}
		return v, true
	}

	return *new(T), false
}

func (i *UniqueIterator[T, K]) Stop() { Stop(i.Source) }

type RecentIterator[T any, K comparable] struct {
	Source Iterator[T]
	Key    func(T) K
	seen   *lru.Cache[K, struct{}]
}

func (i *RecentIterator[T, K]) Move() (T, bool) {
	for v, ok := i.Source.Move(); ok; v, ok = i.Source.Move() {
		k := i.Key(v)
		// Get refreshes the key so a run of repeats stays suppressed.
		if _, dup := i.seen.Get(k); dup {
			continue
		}
		i.seen.Add(k, struct{}{})
		return v, true
	}

	return *new(T), false
}

func (i *RecentIterator[T, K]) Stop() { Stop(i.Source) }
