// Package record holds string-keyed documents produced from sequences and
// queries them with JSONata.
package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/vmihailenco/msgpack"

	"github.com/johnjamespj/lazyiter/pkg/iterator"
)

var ErrNotObject = errors.New("record must be an object")

// Record is an immutable document. It keeps a msgpack snapshot of its fields
// and a decoded view of that snapshot, so a Record never aliases the map it
// was built from.
//
// Decoded numbers are float64 when they were floats (all JSON numbers are) and
// int64 or uint64 when they were integers.
type Record struct {
	bin   []byte
	cache map[string]any
}

func FromMap(m map[string]any) (*Record, error) {
	if m == nil {
		m = map[string]any{}
	}
	bin, err := msgpack.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	return FromMsgpack(bin)
}

// FromJSON parses a JSON object.
func FromJSON(data []byte) (*Record, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing record: %w", err)
	}
	if m == nil {
		return nil, ErrNotObject
	}
	return FromMap(m)
}

// FromMsgpack decodes a msgpack map. The Record keeps its own copy of data.
func FromMsgpack(data []byte) (*Record, error) {
	m, err := decode(data)
	if err != nil {
		return nil, err
	}
	return &Record{
		bin:   bytes.Clone(data),
		cache: m,
	}, nil
}

func decode(data []byte) (map[string]any, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.UseDecodeInterfaceLoose(true)

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding record: %w", err)
	}
	if m == nil {
		return nil, ErrNotObject
	}
	return m, nil
}

// Bytes returns a copy of the msgpack snapshot.
func (r *Record) Bytes() []byte {
	return bytes.Clone(r.bin)
}

// Map returns a fresh copy of the fields that the caller may modify.
func (r *Record) Map() (map[string]any, error) {
	return decode(r.bin)
}

func (r *Record) Get(key string) (any, bool) {
	v, ok := r.cache[key]
	return v, ok
}

func (r *Record) Len() int {
	return len(r.cache)
}

// Keys returns the field names in sorted order.
func (r *Record) Keys() []string {
	return slices.Sorted(maps.Keys(r.cache))
}

// Eval compiles expr and evaluates it against the record.
func (r *Record) Eval(expr string) (any, error) {
	q, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return q.Eval(r)
}

func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	return iterator.DeepEqual(r.cache, other.cache)
}

func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.cache)
}

func (r *Record) UnmarshalJSON(data []byte) error {
	parsed, err := FromJSON(data)
	if err != nil {
		return err
	}
	*r = *parsed
	return nil
}

func (r *Record) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(r.cache)
}

func (r *Record) DecodeMsgpack(dec *msgpack.Decoder) error {
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return err
	}
	parsed, err := FromMap(m)
	if err != nil {
		return err
	}
	*r = *parsed
	return nil
}
