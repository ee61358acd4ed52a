package iterator

import (
	"iter"
	"slices"
)

func Empty[V any]() *Sequence[V] {
	return New(func() Iterator[V] {
		return &EmptyIterator[V]{}
	})
}

func Once[V any](value V) *Sequence[V] {
	return New(func() Iterator[V] {
		return &OnceIterator[V]{
			Value: value,
		}
	})
}

// Of returns an empty sequence for no arguments, a single-element sequence for
// one, and otherwise a sequence replaying a copy of values.
func Of[V any](values ...V) *Sequence[V] {
	switch len(values) {
	case 0:
		return Empty[V]()
	case 1:
		return Once(values[0])
	}
	return FromSlice(slices.Clone(values))
}

// FromPtr returns an empty sequence for a nil pointer and a single-element
// sequence holding *p otherwise.
func FromPtr[V any](p *V) *Sequence[V] {
	if p == nil {
		return Empty[V]()
	}
	return Once(*p)
}

// FromSlice replays slice on every session. The slice is not copied.
func FromSlice[V any](slice []V) *Sequence[V] {
	return New(func() Iterator[V] {
		return &SliceIterator[V]{
			Slice: slice,
		}
	})
}

func FromIterable[V any](src Iterable[V]) *Sequence[V] {
	switch src := src.(type) {
	case nil:
		return Empty[V]()
	case *Sequence[V]:
		return src
	}
	return New(src.Itr)
}

// FromSeq adapts a push iterator. Each session pulls from its own call of seq
// through iter.Pull; the session is stopped when it is exhausted or when the
// consumer that opened it returns.
func FromSeq[V any](seq iter.Seq[V]) *Sequence[V] {
	if seq == nil {
		return Empty[V]()
	}
	return New(func() Iterator[V] {
		return &PullIterator[V]{
			Seq: seq,
		}
	})
}

// Generate yields generator(0) ... generator(length-1).
func Generate[V any](length int, generator func(idx int) V) *Sequence[V] {
	requireNonNegative("generate", length)
	return New(func() Iterator[V] {
		return &GeneratorIterator[V]{
			Generator: generator,
			Length:    length,
		}
	})
}

// Repeat yields value forever.
func Repeat[V any](value V) *Sequence[V] {
	return RepeatFunc(func() V { return value })
}

// RepeatFunc yields a freshly computed supplier() forever, which allows every
// element to be a distinct mutable value.
func RepeatFunc[V any](supplier func() V) *Sequence[V] {
	return New(func() Iterator[V] {
		return &RepeatIterator[V]{
			Supplier: supplier,
		}
	})
}

type EmptyIterator[V any] struct{}

func (*EmptyIterator[V]) Move() (V, bool) {
	return *new(V), false
}

type OnceIterator[V any] struct {
	Value V
	done  bool
}

func (o *OnceIterator[V]) Move() (V, bool) {
	if o.done {
		return *new(V), false
	}
	o.done = true
	return o.Value, true
}

type GeneratorIterator[V any] struct {
	Generator func(idx int) V
	Length    int
	idx       int
}

func (g *GeneratorIterator[V]) Move() (V, bool) {
	if g.idx < g.Length {
		v := g.Generator(g.idx)
		g.idx++
		return v, true
	}
	return *new(V), false
}

type SliceIterator[V any] struct {
	Slice []V
	idx   int
}

func (s *SliceIterator[V]) Move() (V, bool) {
	if s.idx < len(s.Slice) {
		v := s.Slice[s.idx]
		s.idx++
		return v, true
	}
	return *new(V), false
}

type RepeatIterator[V any] struct {
	Supplier func() V
}

func (r *RepeatIterator[V]) Move() (V, bool) {
	return r.Supplier(), true
}

type PullIterator[V any] struct {
	Seq  iter.Seq[V]
	next func() (V, bool)
	stop func()
	done bool
}

func (p *PullIterator[V]) Move() (V, bool) {
	if p.done {
		return *new(V), false
	}
	if p.next == nil {
		p.next, p.stop = iter.Pull(p.Seq)
	}

	v, ok := p.next()
	if !ok {
		p.Stop()
	}
	return v, ok
}

func (p *PullIterator[V]) Stop() {
	p.done = true
	if p.stop != nil {
		p.stop()
	}
}
