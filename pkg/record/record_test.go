package record_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/vmihailenco/msgpack"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/johnjamespj/lazyiter/pkg/record"
)

const ada = `{"name":"ada","age":36,"langs":["go","ml"],"team":"core"}`

func mustRecord(t *testing.T, data string) *record.Record {
	t.Helper()
	r, err := record.FromJSON([]byte(data))
	assert.NilError(t, err)
	return r
}

func TestFromJSON(t *testing.T) {
	t.Parallel()
	r := mustRecord(t, ada)
	assert.Equal(t, r.Len(), 4)
	assert.DeepEqual(t, r.Keys(), []string{"age", "langs", "name", "team"})

	name, ok := r.Get("name")
	assert.Assert(t, ok)
	assert.Equal(t, name, "ada")
	age, _ := r.Get("age")
	assert.Equal(t, age, 36.0)
	langs, _ := r.Get("langs")
	assert.DeepEqual(t, langs, []any{"go", "ml"})
	_, ok = r.Get("missing")
	assert.Assert(t, !ok)
}

func TestFromJSONErrors(t *testing.T) {
	t.Parallel()
	_, err := record.FromJSON([]byte(`{"name":`))
	assert.ErrorContains(t, err, "parsing record")
	_, err = record.FromJSON([]byte(`[1, 2]`))
	assert.ErrorContains(t, err, "parsing record")
	_, err = record.FromJSON([]byte(`null`))
	assert.ErrorIs(t, err, record.ErrNotObject)
}

func TestFromMap(t *testing.T) {
	t.Parallel()
	fields := map[string]any{"n": 3, "tags": []any{"a"}}
	r, err := record.FromMap(fields)
	assert.NilError(t, err)

	// The record keeps its own copy of the fields.
	fields["n"] = 4
	n, _ := r.Get("n")
	assert.Equal(t, n, int64(3))

	copied, err := r.Map()
	assert.NilError(t, err)
	copied["tags"] = "changed"
	tags, _ := r.Get("tags")
	assert.DeepEqual(t, tags, []any{"a"})

	empty, err := record.FromMap(nil)
	assert.NilError(t, err)
	assert.Equal(t, empty.Len(), 0)

	_, err = record.FromMap(map[string]any{"ch": make(chan int)})
	assert.ErrorContains(t, err, "encoding record")
}

func TestMsgpackSnapshot(t *testing.T) {
	t.Parallel()
	r := mustRecord(t, ada)
	snapshot := r.Bytes()
	restored, err := record.FromMsgpack(snapshot)
	assert.NilError(t, err)
	assert.Assert(t, restored.Equal(r))

	// Bytes hands out copies.
	snapshot[0] = 0xc0
	assert.Assert(t, r.Bytes()[0] != 0xc0)

	list, err := msgpack.Marshal([]int{1, 2})
	assert.NilError(t, err)
	_, err = record.FromMsgpack(list)
	assert.ErrorContains(t, err, "decoding record")

	null, err := msgpack.Marshal(nil)
	assert.NilError(t, err)
	_, err = record.FromMsgpack(null)
	assert.ErrorIs(t, err, record.ErrNotObject)
}

func TestEqual(t *testing.T) {
	t.Parallel()
	a := mustRecord(t, `{"a":1,"b":[1,2]}`)
	assert.Assert(t, a.Equal(mustRecord(t, `{"b":[1,2],"a":1}`)))
	assert.Assert(t, !a.Equal(mustRecord(t, `{"a":1,"b":[2,1]}`)))
	assert.Assert(t, !a.Equal(nil))
	assert.Assert(t, (*record.Record)(nil).Equal(nil))
}

func TestRecordEval(t *testing.T) {
	t.Parallel()
	r := mustRecord(t, ada)

	res, err := r.Eval("age > 30")
	assert.NilError(t, err)
	assert.Equal(t, res, true)

	res, err = r.Eval("age * 2")
	assert.NilError(t, err)
	assert.Equal(t, res, 72.0)

	res, err = r.Eval(`name & "@" & team`)
	assert.NilError(t, err)
	assert.Equal(t, res, "ada@core")

	_, err = r.Eval("missing")
	assert.Assert(t, errors.Is(err, record.ErrUndefined))

	_, err = r.Eval("name = ")
	assert.ErrorContains(t, err, "compiling query")
}

type envelope struct {
	ID     string         `json:"id" msgpack:"id"`
	Record *record.Record `json:"record" msgpack:"record"`
}

func TestEncoding(t *testing.T) {
	t.Parallel()
	r := mustRecord(t, `{"b":[true,null],"a":1.5}`)

	data, err := json.Marshal(envelope{ID: "x", Record: r})
	assert.NilError(t, err)
	assert.Check(t, is.Equal(string(data), `{"id":"x","record":{"a":1.5,"b":[true,null]}}`))

	var fromJSON envelope
	assert.NilError(t, json.Unmarshal(data, &fromJSON))
	assert.Assert(t, fromJSON.Record.Equal(r))

	packed, err := msgpack.Marshal(&envelope{ID: "x", Record: r})
	assert.NilError(t, err)
	var fromMsgpack envelope
	assert.NilError(t, msgpack.Unmarshal(packed, &fromMsgpack))
	assert.Equal(t, fromMsgpack.ID, "x")
	assert.Assert(t, fromMsgpack.Record.Equal(r))
}
