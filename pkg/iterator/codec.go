package iterator

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack"
)

// A Sequence encodes as the array of its elements. Encoding drains one session.

func (s *Sequence[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToList())
}

// UnmarshalJSON decodes a JSON array into a sequence replaying its elements.
func (s *Sequence[V]) UnmarshalJSON(data []byte) error {
	var list []V
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = *FromSlice(list)
	return nil
}

func (s *Sequence[V]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(s.ToList())
}

func (s *Sequence[V]) DecodeMsgpack(dec *msgpack.Decoder) error {
	var list []V
	if err := dec.Decode(&list); err != nil {
		return err
	}
	*s = *FromSlice(list)
	return nil
}
