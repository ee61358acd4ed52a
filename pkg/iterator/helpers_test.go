package iterator_test

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/johnjamespj/lazyiter/pkg/iterator"
)

// assertArgumentError runs f and checks it panics with an *ArgumentError for op
// carrying value.
func assertArgumentError(t *testing.T, op string, value any, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		assert.Assert(t, ok, "expected a panic with an error, got %v", r)
		var argErr *iterator.ArgumentError
		assert.Assert(t, errors.As(err, &argErr), "unexpected panic %v", err)
		assert.Assert(t, errors.Is(err, iterator.ErrInvalidArgument))
		assert.Equal(t, argErr.Op, op)
		assert.DeepEqual(t, argErr.Value, value)
	}()
	f()
}

// pulled wraps values in a sequence that counts every element pulled from it.
func pulled[V any](pulls *int, values ...V) *iterator.Sequence[V] {
	return iterator.Of(values...).Inspect(func(V) { *pulls++ })
}

// twice asserts the same materialized result from two sessions.
func twice[V any](t *testing.T, s *iterator.Sequence[V], expected []V) {
	t.Helper()
	assert.DeepEqual(t, s.ToList(), expected)
	assert.DeepEqual(t, s.ToList(), expected)
}

type stopSpy struct {
	values  []int
	idx     int
	stopped int
}

func (s *stopSpy) Move() (int, bool) {
	if s.idx >= len(s.values) {
		return 0, false
	}
	s.idx++
	return s.values[s.idx-1], true
}

func (s *stopSpy) Stop() { s.stopped++ }
