package iterator

import (
	"reflect"
	"regexp"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// DeepEqual reports whether a and b are structurally equal. It is the default
// comparison of Eq, Ne and Dedup.
//
// Sequences of any element type compare element by element (both are drained),
// whether held by pointer or by value.
// Maps, slices, arrays and structs recurse, including unexported fields, so
// errors compare by type and message. time.Time compares with its Equal method,
// *regexp.Regexp by its pattern, and NaN equals NaN. Values of different
// dynamic types are never equal.
//
// Function values are equal only when both are nil, and channels compare by
// identity: neither has a structure to compare, so they are treated as opaque.
func DeepEqual(a, b any) bool {
	return cmp.Equal(a, b, equalOptions)
}

var equalOptions = cmp.Options{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateNaNs(),
	cmp.Comparer(func(a, b *regexp.Regexp) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a.String() == b.String()
	}),
	cmp.Transformer("Sequence", func(s anyIterable) []any {
		return drain(s.anyItr())
	}),
	cmp.FilterValues(func(a, b sequenceValue) bool {
		return reflect.ValueOf(a).Kind() == reflect.Struct && reflect.ValueOf(b).Kind() == reflect.Struct
	}, cmp.Transformer("SequenceValue", func(s sequenceValue) []any {
		return drain(s.valueItr())
	})),
}

// sequenceValue is implemented by Sequence values. Pointers also carry the
// method, so the filter above leaves them to the anyIterable transformer.
type sequenceValue interface {
	valueItr() Iterator[any]
}

func (s Sequence[V]) valueItr() Iterator[any] {
	return s.anyItr()
}

func drain(it Iterator[any]) []any {
	defer Stop(it)
	var res []any
	for v, ok := it.Move(); ok; v, ok = it.Move() {
		res = append(res, v)
	}
	return res
}
