package iterator_test

import (
	"slices"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/johnjamespj/lazyiter/pkg/iterator"
)

func TestOf(t *testing.T) {
	t.Parallel()
	assert.DeepEqual(t, iterator.Of[int]().ToList(), []int{})
	assert.DeepEqual(t, iterator.Of(1).ToList(), []int{1})
	twice(t, iterator.Of(1, 2, 3), []int{1, 2, 3})

	values := []int{1, 2}
	s := iterator.Of(values...)
	values[0] = 9
	assert.DeepEqual(t, s.ToList(), []int{1, 2})
}

func TestFromPtr(t *testing.T) {
	t.Parallel()
	assert.Assert(t, iterator.FromPtr[int](nil).IsEmpty())
	v := 4
	assert.DeepEqual(t, iterator.FromPtr(&v).ToList(), []int{4})
}

func TestFromSeq(t *testing.T) {
	t.Parallel()
	s := iterator.FromSeq(slices.Values([]string{"a", "b", "c"}))
	twice(t, s, []string{"a", "b", "c"})
	assert.Equal(t, s.Find(func(v string) bool { return v == "b" }).Unwrap(), "b")
	assert.Assert(t, iterator.FromSeq[int](nil).IsEmpty())

	finished := 0
	infinite := func(yield func(int) bool) {
		defer func() { finished++ }()
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
	assert.DeepEqual(t, iterator.FromSeq(infinite).Take(3).ToList(), []int{0, 1, 2})
	assert.Equal(t, finished, 1)
}

func TestGenerate(t *testing.T) {
	t.Parallel()
	twice(t, iterator.Generate(3, func(i int) int { return i * i }), []int{0, 1, 4})
	assert.Assert(t, iterator.Generate(0, func(int) int { return 1 }).IsEmpty())
	assertArgumentError(t, "generate", -1, func() { iterator.Generate(-1, func(int) int { return 1 }) })
}

func TestRepeat(t *testing.T) {
	t.Parallel()
	assert.DeepEqual(t, iterator.Repeat(1).Take(5).ToList(), []int{1, 1, 1, 1, 1})

	fresh := iterator.RepeatFunc(func() []int { return []int{1, 2, 3} }).Take(2).ToList()
	assert.DeepEqual(t, fresh, [][]int{{1, 2, 3}, {1, 2, 3}})
	fresh[0][0] = 9
	assert.Equal(t, fresh[1][0], 1)
}
