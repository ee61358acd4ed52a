package iterator_test

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/johnjamespj/lazyiter/pkg/iterator"
)

func TestReduce(t *testing.T) {
	t.Parallel()
	sum := func(acc, v int) int { return acc + v }
	assert.Equal(t, iterator.Reduce(iterator.Of(1, 2, 3), 0, sum), 6)
	assert.Equal(t, iterator.Reduce(iterator.Empty[int](), 10, sum), 10)

	concat := iterator.Reduce(iterator.Of(1, 2, 3), "", func(acc string, v int) string {
		return acc + strings.Repeat("*", v)
	})
	assert.Equal(t, concat, "******")
}

func TestToSet(t *testing.T) {
	t.Parallel()
	assert.DeepEqual(t, iterator.ToSet(iterator.Of(1, 2, 2, 3, 1)), map[int]struct{}{1: {}, 2: {}, 3: {}})
	assert.DeepEqual(t, iterator.ToSet(iterator.Empty[string]()), map[string]struct{}{})
}

func TestToMap(t *testing.T) {
	t.Parallel()
	objs := iterator.Of(testObj{1, 1}, testObj{2, 2}, testObj{1, 3})
	entry := func(o testObj) (int, int) { return o.A, o.B }
	// The last entry for a key wins.
	assert.DeepEqual(t, iterator.ToMap(objs, entry), map[int]int{1: 3, 2: 2})
	assert.DeepEqual(t, iterator.ToObject(objs, entry), map[string]int{"1": 3, "2": 2})
	assert.DeepEqual(t, iterator.ToMap(iterator.Empty[testObj](), entry), map[int]int{})
}

func TestGroupToMap(t *testing.T) {
	t.Parallel()
	groups := iterator.GroupToMap(iterator.Range(0, 7), func(v int) int { return v % 3 })
	assert.Equal(t, len(groups), 3)
	assert.DeepEqual(t, groups[0].ToList(), []int{0, 3, 6})
	assert.DeepEqual(t, groups[1].ToList(), []int{1, 4})
	// Groups are restartable sequences themselves.
	assert.DeepEqual(t, groups[2].ToList(), []int{2, 5})
	assert.DeepEqual(t, groups[2].ToList(), []int{2, 5})

	words := iterator.Of("apple", "avocado", "banana")
	byLen := iterator.GroupToObject(words, func(w string) int { return len(w) })
	assert.Equal(t, len(byLen), 3)
	assert.DeepEqual(t, byLen["5"].ToList(), []string{"apple"})
	assert.DeepEqual(t, byLen["6"].ToList(), []string{"banana"})
	assert.DeepEqual(t, byLen["7"].ToList(), []string{"avocado"})

	assert.Equal(t, len(iterator.GroupToMap(iterator.Empty[int](), func(v int) int { return v })), 0)
}

func TestIsUnique(t *testing.T) {
	t.Parallel()
	assert.Assert(t, iterator.IsUnique(iterator.Of(1, 2, 3)))
	assert.Assert(t, !iterator.IsUnique(iterator.Of(1, 2, 1)))
	assert.Assert(t, iterator.IsUnique(iterator.Empty[int]()))

	keyA := func(o testObj) int { return o.A }
	assert.Assert(t, iterator.IsUniqueByKey(iterator.Of(testObj{1, 1}, testObj{2, 1}), keyA))
	assert.Assert(t, !iterator.IsUniqueByKey(iterator.Of(testObj{1, 1}, testObj{1, 2}), keyA))

	// The first duplicate decides, so an infinite repeat terminates.
	assert.Assert(t, !iterator.IsUnique(iterator.Repeat(7)))
}
