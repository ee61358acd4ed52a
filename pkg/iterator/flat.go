package iterator

import (
	"iter"
	"reflect"
)

// anyIterable is implemented by every *Sequence regardless of its element
// type, which lets untyped code open a session over any sequence.
type anyIterable interface {
	anyItr() Iterator[any]
}

func (s *Sequence[V]) anyItr() Iterator[any] {
	return &MapIterator[V, any]{
		i: s.Itr(),
		f: func(v V) any { return v },
	}
}

// Flat flattens nested iterables up to depth levels. Sequences of any element
// type, Iterable[any], iter.Seq[any], slices and arrays count as iterables;
// strings, maps and every other value are yielded unchanged at any depth.
// depth must be at least 1.
func Flat(it *Sequence[any], depth int) *Sequence[any] {
	requirePositive("flat", depth)
	return New(func() Iterator[any] {
		return &FlatIterator{
			stack: []flatFrame{{it: it.Itr(), depth: depth}},
		}
	})
}

type flatFrame struct {
	it    Iterator[any]
	depth int
}

type FlatIterator struct {
	stack []flatFrame
}

func (f *FlatIterator) Move() (any, bool) {
	for len(f.stack) > 0 {
		top := f.stack[len(f.stack)-1]
		v, ok := top.it.Move()
		if !ok {
			Stop(top.it)
			f.stack = f.stack[:len(f.stack)-1]
			continue
		}
		if top.depth > 0 {
			if nested, ok := nestedItr(v); ok {
				f.stack = append(f.stack, flatFrame{it: nested, depth: top.depth - 1})
				continue
			}
		}
		return v, true
	}

	return nil, false
}

func (f *FlatIterator) Stop() {
	for _, frame := range f.stack {
		Stop(frame.it)
	}
	f.stack = nil
}

// nestedItr opens a session over v if v is one of the shapes Flat descends
// into.
func nestedItr(v any) (Iterator[any], bool) {
	switch v := v.(type) {
	case nil:
		return nil, false
	case anyIterable:
		return v.anyItr(), true
	case Iterable[any]:
		return v.Itr(), true
	case iter.Seq[any]:
		return &PullIterator[any]{Seq: v}, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return &GeneratorIterator[any]{
			Generator: func(idx int) any { return rv.Index(idx).Interface() },
			Length:    rv.Len(),
		}, true
	}
	return nil, false
}
