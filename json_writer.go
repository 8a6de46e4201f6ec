package pantry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObjectWriter builds a JSON object whose keys keep their insertion order.
// The zero value is an empty object. The first error sticks and is returned by
// MarshalJSON.
type jsonObjectWriter struct {
	fields bytes.Buffer
	err    error
}

// field writes one raw member, 'member' is `"key":value` or a list of them.
func (w *jsonObjectWriter) field(member []byte) {
	if w.fields.Len() > 0 {
		w.fields.WriteByte(',')
	}
	w.fields.Write(member)
}

// Embed copies the members of a JSON object into w.
func (w *jsonObjectWriter) Embed(object []byte) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	object = bytes.TrimSpace(object)
	if len(object) < 2 || object[0] != '{' || object[len(object)-1] != '}' {
		w.err = fmt.Errorf("cannot embed %q: not a JSON object", object)
		return w
	}
	if members := bytes.TrimSpace(object[1 : len(object)-1]); len(members) > 0 {
		w.field(members)
	}
	return w
}

// EmbedFrom marshals v, which must encode as an object, and embeds its members.
func (w *jsonObjectWriter) EmbedFrom(v any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	object, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("embedding %T: %w", v, err)
		return w
	}
	return w.Embed(object)
}

// Append adds 'key' with the JSON encoding of 'value'.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	k, _ := json.Marshal(key)
	v, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("encoding %q: %w", key, err)
		return w
	}
	w.field(append(append(k, ':'), v...))
	return w
}

// Optional is like Append but skips zero values.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if v := reflect.ValueOf(value); !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	out := make([]byte, 0, w.fields.Len()+2)
	out = append(out, '{')
	out = append(out, w.fields.Bytes()...)
	return append(out, '}'), nil
}
