package iterator

import (
	"iter"

	g "github.com/anacrolix/generics"
)

// Sequence is a restartable lazy sequence. The zero value is an empty sequence.
// A Sequence is never mutated after construction: every adapter returns a new
// one, and every consumer opens its own session.
type Sequence[V any] struct {
	builder func() Iterator[V]
}

// New wraps a session factory. builder must return an independent Iterator on
// every call.
func New[V any](builder func() Iterator[V]) *Sequence[V] {
	return &Sequence[V]{
		builder: builder,
	}
}

func (s *Sequence[V]) Itr() Iterator[V] {
	if s == nil || s.builder == nil {
		return &EmptyIterator[V]{}
	}
	return s.builder()
}

// All returns the sequence as an iter.Seq. Each range loop opens a new session
// and stops it when the loop ends.
func (s *Sequence[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		it := s.Itr()
		defer Stop(it)
		for v, ok := it.Move(); ok; v, ok = it.Move() {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *Sequence[V]) Take(n int) *Sequence[V] {
	requireNonNegative("take", n)
	return New(func() Iterator[V] {
		return &TakeNIterator[V]{
			Source: s.Itr(),
			N:      n,
		}
	})
}

func (s *Sequence[V]) Skip(n int) *Sequence[V] {
	requireNonNegative("skip", n)
	return New(func() Iterator[V] {
		return &SkipNIterator[V]{
			Source: s.Itr(),
			N:      n,
		}
	})
}

// Slice yields the elements with index in [start, end).
func (s *Sequence[V]) Slice(start, end int) *Sequence[V] {
	requireNonNegative("slice", start)
	requireNonNegative("slice", end)
	if start > end {
		panic(&ArgumentError{Op: "slice", Value: [2]int{start, end}, Want: "start <= end"})
	}
	return New(func() Iterator[V] {
		return &TakeNIterator[V]{
			Source: &SkipNIterator[V]{Source: s.Itr(), N: start},
			N:      end - start,
		}
	})
}

func (s *Sequence[V]) SkipWhile(pred func(V) bool) *Sequence[V] {
	return New(func() Iterator[V] {
		return &SkipWhileIterator[V]{
			Source:    s.Itr(),
			Predicate: pred,
		}
	})
}

func (s *Sequence[V]) TakeWhile(pred func(V) bool) *Sequence[V] {
	return New(func() Iterator[V] {
		return &TakeWhileIterator[V]{
			Source:    s.Itr(),
			Predicate: pred,
		}
	})
}

// StepBy yields the first element and then every step-th element after it.
func (s *Sequence[V]) StepBy(step int) *Sequence[V] {
	requirePositive("stepBy", step)
	return New(func() Iterator[V] {
		return &StepIterator[V]{
			Source: s.Itr(),
			Step:   step,
		}
	})
}

func (s *Sequence[V]) Filter(pred func(V) bool) *Sequence[V] {
	return New(func() Iterator[V] {
		return &WhereIterator[V]{
			Source:    s.Itr(),
			Predicate: pred,
		}
	})
}

// Partition splits the sequence into the elements matching pred and the rest.
// Each half opens its own upstream session, so the source is iterated once per
// half.
func (s *Sequence[V]) Partition(pred func(V) bool) (*Sequence[V], *Sequence[V]) {
	return s.Filter(pred), s.Filter(func(v V) bool { return !pred(v) })
}

func (s *Sequence[V]) Inspect(f func(V)) *Sequence[V] {
	return New(func() Iterator[V] {
		return &InspectIterator[V]{
			Source: s.Itr(),
			Fn:     f,
		}
	})
}

func (s *Sequence[V]) Chain(other Iterable[V]) *Sequence[V] {
	return s.Concat(other)
}

// Concat yields s followed by each of others in turn. A nil other is skipped.
func (s *Sequence[V]) Concat(others ...Iterable[V]) *Sequence[V] {
	sources := make([]Iterable[V], 0, len(others)+1)
	sources = append(sources, s)
	for _, o := range others {
		if o != nil {
			sources = append(sources, o)
		}
	}
	return New(func() Iterator[V] {
		return &ChainIterator[V]{
			Sources: sources,
		}
	})
}

func (s *Sequence[V]) Append(v V) *Sequence[V] {
	return s.Concat(Once(v))
}

func (s *Sequence[V]) Prepend(v V) *Sequence[V] {
	return Once(v).Concat(s)
}

// Cycle repeats the sequence forever by reopening it each time it is
// exhausted. A pass that yields nothing ends the cycle, so cycling an empty
// sequence is empty rather than a busy loop.
func (s *Sequence[V]) Cycle() *Sequence[V] {
	return New(func() Iterator[V] {
		return &CycleIterator[V]{
			Source: s,
		}
	})
}

// Chunks groups consecutive elements into sequences of size elements. The last
// chunk may be shorter; an empty source has no chunks.
func Chunks[V any](s *Sequence[V], size int) *Sequence[*Sequence[V]] {
	requirePositive("chunks", size)
	return New(func() Iterator[*Sequence[V]] {
		return &ChunkIterator[V]{
			Source: s.Itr(),
			Size:   size,
		}
	})
}

// Dedup collapses runs of consecutive DeepEqual elements to their first
// element.
func (s *Sequence[V]) Dedup() *Sequence[V] {
	return s.DedupBy(func(a, b V) bool { return DeepEqual(a, b) })
}

// DedupBy collapses runs of consecutive elements for which same reports true
// when compared with the first element of the run.
func (s *Sequence[V]) DedupBy(same func(a, b V) bool) *Sequence[V] {
	return New(func() Iterator[V] {
		return &DedupIterator[V]{
			Source: s.Itr(),
			Same:   same,
		}
	})
}

// Enumerate pairs each element with its zero-based index.
func Enumerate[V any](s *Sequence[V]) *Sequence[Indexed[V]] {
	return New(func() Iterator[Indexed[V]] {
		return &EnumerateIterator[V]{
			Source: s.Itr(),
		}
	})
}

// Interleave alternates elements of s and other, starting with s. Once one
// side is exhausted the rest of the other side follows.
func (s *Sequence[V]) Interleave(other Iterable[V]) *Sequence[V] {
	return New(func() Iterator[V] {
		return &InterleaveIterator[V]{
			Left:  s.Itr(),
			Right: itrOf(other),
		}
	})
}

// InterleaveShortest alternates elements of s and other strictly, stopping as
// soon as either side has no element for its turn. An element of s is only
// yielded when other has one to follow it.
func (s *Sequence[V]) InterleaveShortest(other Iterable[V]) *Sequence[V] {
	return New(func() Iterator[V] {
		return &InterleaveShortestIterator[V]{
			Left:  s.Itr(),
			Right: itrOf(other),
		}
	})
}

func (s *Sequence[V]) Intersperse(sep V) *Sequence[V] {
	return s.IntersperseFunc(func() V { return sep })
}

// IntersperseFunc inserts the result of sep between consecutive elements. sep is
// called once per insertion.
func (s *Sequence[V]) IntersperseFunc(sep func() V) *Sequence[V] {
	return New(func() Iterator[V] {
		return &IntersperseIterator[V]{
			Source: s.Itr(),
			Sep:    sep,
		}
	})
}

// MergeBy merges two ascending sequences. isFirst(a, b) reports whether a, the
// next element of s, goes before b, the next element of other; when it does not
// b is yielded. The tail of whichever side remains is appended unchanged. The
// result is unspecified if either input is not sorted.
func (s *Sequence[V]) MergeBy(other Iterable[V], isFirst func(a, b V) bool) *Sequence[V] {
	return New(func() Iterator[V] {
		return &MergeIterator[V]{
			Left:    s.Itr(),
			Right:   itrOf(other),
			IsFirst: isFirst,
		}
	})
}

// WithPosition tags each element with First, Middle, Last or Only. It looks one
// element ahead of the element it yields.
func WithPosition[V any](s *Sequence[V]) *Sequence[Positioned[V]] {
	return New(func() Iterator[Positioned[V]] {
		return &PositionIterator[V]{
			Source: s.Itr(),
		}
	})
}

// Rev yields the sequence backwards. Each session drains the whole upstream
// session on its first pull, so Rev must not be used on infinite sequences.
func (s *Sequence[V]) Rev() *Sequence[V] {
	return New(func() Iterator[V] {
		return &ReversedIterator[V]{
			Source: s.Itr(),
		}
	})
}

func itrOf[V any](it Iterable[V]) Iterator[V] {
	if it == nil {
		return &EmptyIterator[V]{}
	}
	return it.Itr()
}

type TakeNIterator[V any] struct {
	Source Iterator[V]
	N      int
	idx    int
}

func (i *TakeNIterator[V]) Move() (V, bool) {
	if i.idx >= i.N {
		return *new(V), false
	}

	v, ok := i.Source.Move()
	if !ok {
		i.idx = i.N
		return v, false
	}
	i.idx++
	return v, true
}

func (i *TakeNIterator[V]) Stop() { Stop(i.Source) }

type SkipNIterator[V any] struct {
	Source Iterator[V]
	N      int
	idx    int
}

func (i *SkipNIterator[V]) Move() (V, bool) {
	for i.idx < i.N {
		if _, ok := i.Source.Move(); !ok {
			i.idx = i.N
			return *new(V), false
		}
		i.idx++
	}

	return i.Source.Move()
}

func (i *SkipNIterator[V]) Stop() { Stop(i.Source) }

type TakeWhileIterator[V any] struct {
	Source    Iterator[V]
	Predicate func(V) bool
	done      bool
}

func (i *TakeWhileIterator[V]) Move() (V, bool) {
	if i.done {
		return *new(V), false
	}
	if v, ok := i.Source.Move(); ok && i.Predicate(v) {
		return v, true
	}

	i.done = true
	return *new(V), false
}

func (i *TakeWhileIterator[V]) Stop() { Stop(i.Source) }

type SkipWhileIterator[V any] struct {
	Source    Iterator[V]
	Predicate func(V) bool
	started   bool
}

func (i *SkipWhileIterator[V]) Move() (V, bool) {
	if !i.started {
		for v, ok := i.Source.Move(); ok; v, ok = i.Source.Move() {
			if !i.Predicate(v) {
				i.started = true
				return v, true
			}
		}
		i.started = true
		return *new(V), false
	}

	return i.Source.Move()
}

func (i *SkipWhileIterator[V]) Stop() { Stop(i.Source) }

type StepIterator[V any] struct {
	Source Iterator[V]
	Step   int
	idx    int
}

func (i *StepIterator[V]) Move() (V, bool) {
	for v, ok := i.Source.Move(); ok; v, ok = i.Source.Move() {
		n := i.idx
		i.idx++
		if n%i.Step == 0 {
			return v, true
		}
	}

	return *new(V), false
}

func (i *StepIterator[V]) Stop() { Stop(i.Source) }

type WhereIterator[V any] struct {
	Source    Iterator[V]
	Predicate func(V) bool
}

func (i *WhereIterator[V]) Move() (V, bool) {
	for v, ok := i.Source.Move(); ok; v, ok = i.Source.Move() {
		if i.Predicate(v) {
			return v, true
		}
	}

	return *new(V), false
}

func (i *WhereIterator[V]) Stop() { Stop(i.Source) }

type InspectIterator[V any] struct {
	Source Iterator[V]
	Fn     func(V)
}

func (i *InspectIterator[V]) Move() (V, bool) {
	v, ok := i.Source.Move()
	if ok {
		i.Fn(v)
	}
	return v, ok
}

func (i *InspectIterator[V]) Stop() { Stop(i.Source) }

// ChainIterator opens each source only when the previous one is exhausted.
type ChainIterator[V any] struct {
	Sources []Iterable[V]
	current Iterator[V]
	idx     int
}

func (i *ChainIterator[V]) Move() (V, bool) {
	for i.idx < len(i.Sources) {
		if i.current == nil {
			i.current = i.Sources[i.idx].Itr()
		}
		if v, ok := i.current.Move(); ok {
			return v, true
		}

		Stop(i.current)
		i.current = nil
		i.idx++
	}

	return *new(V), false
}

func (i *ChainIterator[V]) Stop() {
	if i.current != nil {
		Stop(i.current)
		i.current = nil
	}
	i.idx = len(i.Sources)
}

type CycleIterator[V any] struct {
	Source  Iterable[V]
	current Iterator[V]
	yielded bool
	done    bool
}

func (i *CycleIterator[V]) Move() (V, bool) {
	for !i.done {
		if i.current == nil {
			i.current = i.Source.Itr()
			i.yielded = false
		}
		if v, ok := i.current.Move(); ok {
			i.yielded = true
			return v, true
		}

		Stop(i.current)
		i.current = nil
		if !i.yielded {
			i.done = true
		}
	}

	return *new(V), false
}

func (i *CycleIterator[V]) Stop() {
	if i.current != nil {
		Stop(i.current)
		i.current = nil
	}
	i.done = true
}

type ChunkIterator[V any] struct {
	Source Iterator[V]
	Size   int
}

func (i *ChunkIterator[V]) Move() (*Sequence[V], bool) {
	chunk := make([]V, 0, i.Size)
	for len(chunk) < i.Size {
		v, ok := i.Source.Move()
		if !ok {
			break
		}
		chunk = append(chunk, v)
	}

	if len(chunk) == 0 {
		return nil, false
	}
	return FromSlice(chunk), true
}

func (i *ChunkIterator[V]) Stop() { Stop(i.Source) }

type DedupIterator[V any] struct {
	Source  Iterator[V]
	Same    func(a, b V) bool
	prev    V
	hasPrev bool
}

func (i *DedupIterator[V]) Move() (V, bool) {
	for v, ok := i.Source.Move(); ok; v, ok = i.Source.Move() {
		if !i.hasPrev || !i.Same(i.prev, v) {
			i.prev = v
			i.hasPrev = true
			return v, true
		}
	}

	return *new(V), false
}

func (i *DedupIterator[V]) Stop() { Stop(i.Source) }

type EnumerateIterator[V any] struct {
	Source Iterator[V]
	idx    int
}

func (i *EnumerateIterator[V]) Move() (Indexed[V], bool) {
	v, ok := i.Source.Move()
	if !ok {
		return Indexed[V]{}, false
	}
	res := Indexed[V]{Index: i.idx, Value: v}
	i.idx++
	return res, true
}

func (i *EnumerateIterator[V]) Stop() { Stop(i.Source) }

type InterleaveIterator[V any] struct {
	Left, Right         Iterator[V]
	rightTurn           bool
	leftDone, rightDone bool
}

func (i *InterleaveIterator[V]) Move() (V, bool) {
	for range 2 {
		if i.rightTurn {
			i.rightTurn = false
			if i.rightDone {
				continue
			}
			if v, ok := i.Right.Move(); ok {
				return v, true
			}
			i.rightDone = true
		} else {
			i.rightTurn = true
			if i.leftDone {
				continue
			}
			if v, ok := i.Left.Move(); ok {
				return v, true
			}
			i.leftDone = true
		}
	}

	return *new(V), false
}

func (i *InterleaveIterator[V]) Stop() {
	Stop(i.Left)
	Stop(i.Right)
}

type InterleaveShortestIterator[V any] struct {
	Left, Right Iterator[V]
	pending     V
	hasPending  bool
	done        bool
}

func (i *InterleaveShortestIterator[V]) Move() (V, bool) {
	if i.done {
		return *new(V), false
	}
	if i.hasPending {
		v := i.pending
		i.pending, i.hasPending = *new(V), false
		return v, true
	}

	left, ok := i.Left.Move()
	if !ok {
		i.done = true
		return *new(V), false
	}
	right, ok := i.Right.Move()
	if !ok {
		i.done = true
		return *new(V), false
	}
	i.pending, i.hasPending = right, true
	return left, true
}

func (i *InterleaveShortestIterator[V]) Stop() {
	Stop(i.Left)
	Stop(i.Right)
}

type IntersperseIterator[V any] struct {
	Source     Iterator[V]
	Sep        func() V
	pending    V
	hasPending bool
	started    bool
}

func (i *IntersperseIterator[V]) Move() (V, bool) {
	if i.hasPending {
		v := i.pending
		i.pending, i.hasPending = *new(V), false
		return v, true
	}

	v, ok := i.Source.Move()
	if !ok {
		return v, false
	}
	if !i.started {
		i.started = true
		return v, true
	}
	i.pending, i.hasPending = v, true
	return i.Sep(), true
}

func (i *IntersperseIterator[V]) Stop() { Stop(i.Source) }

type MergeIterator[V any] struct {
	Left, Right Iterator[V]
	IsFirst     func(a, b V) bool
	l, r        g.Option[V]
	primed      bool
}

func (i *MergeIterator[V]) Move() (V, bool) {
	if !i.primed {
		i.primed = true
		i.l = move(i.Left)
		i.r = move(i.Right)
	}

	switch {
	case i.l.Ok && i.r.Ok:
		if i.IsFirst(i.l.Value, i.r.Value) {
			return i.takeLeft(), true
		}
		return i.takeRight(), true
	case i.l.Ok:
		return i.takeLeft(), true
	case i.r.Ok:
		return i.takeRight(), true
	}
	return *new(V), false
}

func (i *MergeIterator[V]) takeLeft() V {
	v := i.l.Value
	i.l = move(i.Left)
	return v
}

func (i *MergeIterator[V]) takeRight() V {
	v := i.r.Value
	i.r = move(i.Right)
	return v
}

func (i *MergeIterator[V]) Stop() {
	Stop(i.Left)
	Stop(i.Right)
}

func move[V any](it Iterator[V]) g.Option[V] {
	v, ok := it.Move()
	if !ok {
		return g.None[V]()
	}
	return g.Some(v)
}

type PositionIterator[V any] struct {
	Source  Iterator[V]
	next    V
	hasNext bool
	started bool
}

func (i *PositionIterator[V]) Move() (Positioned[V], bool) {
	if !i.started {
		i.started = true
		v, ok := i.Source.Move()
		if !ok {
			return Positioned[V]{}, false
		}
		n, ok := i.Source.Move()
		if !ok {
			return Positioned[V]{Position: Only, Value: v}, true
		}
		i.next, i.hasNext = n, true
		return Positioned[V]{Position: First, Value: v}, true
	}

	if !i.hasNext {
		return Positioned[V]{}, false
	}
	cur := i.next
	n, ok := i.Source.Move()
	if !ok {
		i.next, i.hasNext = *new(V), false
		return Positioned[V]{Position: Last, Value: cur}, true
	}
	i.next = n
	return Positioned[V]{Position: Middle, Value: cur}, true
}

func (i *PositionIterator[V]) Stop() { Stop(i.Source) }

type ReversedIterator[V any] struct {
	Source Iterator[V]
	stack  []V
	loaded bool
}

func (i *ReversedIterator[V]) Move() (V, bool) {
	if !i.loaded {
		i.loaded = true
		for v, ok := i.Source.Move(); ok; v, ok = i.Source.Move() {
			i.stack = append(i.stack, v)
		}
	}

	if len(i.stack) == 0 {
		return *new(V), false
	}
	v := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	return v, true
}

func (i *ReversedIterator[V]) Stop() {
	Stop(i.Source)
	i.loaded, i.stack = true, nil
}
