package record

import (
	"errors"
	"fmt"
	"reflect"

	g "github.com/anacrolix/generics"
	"github.com/blues/jsonata-go"

	"github.com/johnjamespj/lazyiter/pkg/iterator"
)

// ErrUndefined is returned by Eval when the expression matches nothing.
var ErrUndefined = jsonata.ErrUndefined

// Query is a compiled JSONata expression. It evaluates against *Record values
// and against plain Go data such as maps and slices.
type Query struct {
	src  string
	expr *jsonata.Expr
}

func Compile(src string) (*Query, error) {
	expr, err := jsonata.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("compiling query %q: %w", src, err)
	}
	return &Query{
		src:  src,
		expr: expr,
	}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(src string) *Query {
	q, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return q
}

func (q *Query) String() string {
	return q.src
}

func (q *Query) Eval(v any) (any, error) {
	if r, ok := v.(*Record); ok {
		v = r.cache
	}
	res, err := q.expr.Eval(v)
	if err != nil {
		if errors.Is(err, jsonata.ErrUndefined) {
			return nil, ErrUndefined
		}
		return nil, fmt.Errorf("evaluating query %q: %w", q.src, err)
	}
	return res, nil
}

// Match evaluates the query as a predicate using JSONata's boolean casting. An
// undefined result or an evaluation error does not match.
func (q *Query) Match(v any) bool {
	res, err := q.Eval(v)
	if err != nil {
		return false
	}
	return truthy(res)
}

// Key renders the query result as a grouping key. Strings are used as is and
// other results go through fmt.Sprint. An undefined result is the empty key.
func (q *Query) Key(v any) string {
	res, err := q.Eval(v)
	if err != nil {
		return ""
	}
	if s, ok := res.(string); ok {
		return s
	}
	return fmt.Sprint(res)
}

func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Slice, reflect.Array:
		// An array is true when any member is.
		for i := range rv.Len() {
			if truthy(rv.Index(i).Interface()) {
				return true
			}
		}
		return false
	case reflect.Map:
		return rv.Len() > 0
	case reflect.Func:
		return false
	}
	return true
}

// Filter keeps the elements the query matches.
func Filter[T any](s *iterator.Sequence[T], q *Query) *iterator.Sequence[T] {
	return s.Filter(func(v T) bool { return q.Match(v) })
}

// Select lazily projects every element through the query. Elements for which
// the query is undefined or fails are skipped.
func Select[T any](s *iterator.Sequence[T], q *Query) *iterator.Sequence[any] {
	return iterator.FilterMap(s, func(v T) g.Option[any] {
		res, err := q.Eval(v)
		if err != nil {
			return g.None[any]()
		}
		return g.Some(res)
	})
}

// Group groups the elements by the query's key.
func Group[T any](s *iterator.Sequence[T], q *Query) map[string]*iterator.Sequence[T] {
	return iterator.GroupToObject(s, func(v T) string { return q.Key(v) })
}

// Unique keeps the first element for every distinct query key.
func Unique[T any](s *iterator.Sequence[T], q *Query) *iterator.Sequence[T] {
	return iterator.UniqueByKey(s, func(v T) string { return q.Key(v) })
}

// Collect drains s into a record with one field per entry. Later entries
// overwrite earlier ones with the same name.
func Collect[T any](s *iterator.Sequence[T], toEntry func(T) (string, any)) (*Record, error) {
	return FromMap(iterator.ToObject(s, toEntry))
}
