// Package event exposes a record flowing through the pipeline as an ordered
// set of named fields, and resolves %{field} templates against it.
package event

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	sdk "github.com/conduitio/conduit-connector-sdk"
)

const (
	// MessageField holds payloads that are not a JSON object.
	MessageField = "message"
	// MetadataField exposes the record metadata to templates.
	MetadataField = "@metadata"
	// KeyField exposes the record key to templates.
	KeyField = "@key"
)

// Field is a single named value of an Event.
type Field struct {
	Name  string
	Value any
}

// Event is a pipeline record seen as an ordered mapping of fields.
type Event struct {
	fields   []Field
	index    map[string]int
	metadata sdk.Metadata
	key      []byte

	// raw is the payload as received, served unchanged by Bytes.
	raw []byte
}

// FromRecord builds the event view of a record. Structured payloads are
// used as-is, raw payloads are decoded when they hold a JSON object and
// otherwise end up in the message field.
func FromRecord(rec sdk.Record) Event {
	e := Event{
		index:    make(map[string]int),
		metadata: rec.Metadata,
	}
	if rec.Key != nil {
		e.key = rec.Key.Bytes()
	}

	switch data := rec.Payload.After.(type) {
	case sdk.StructuredData:
		names := make([]string, 0, len(data))
		for name := range data {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			e.set(name, data[name])
		}
	case sdk.RawData:
		// nil and empty payloads both serialize to an empty payload
		e.raw = append([]byte{}, data...)
		fields, err := decodeObject(data)
		if err != nil {
			e.set(MessageField, string(data))
			break
		}
		for _, f := range fields {
			e.set(f.Name, f.Value)
		}
	case nil:
	default:
		e.raw = data.Bytes()
		e.set(MessageField, string(e.raw))
	}

	return e
}

func (e *Event) set(name string, value any) {
	if i, ok := e.index[name]; ok {
		e.fields[i].Value = value
		return
	}
	e.index[name] = len(e.fields)
	e.fields = append(e.fields, Field{Name: name, Value: value})
}

// Fields returns the fields in order.
func (e Event) Fields() []Field {
	return e.fields
}

// Get resolves a field path. The first element names a top-level field,
// following elements descend into objects and arrays.
func (e Event) Get(path ...string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}

	var value any
	switch path[0] {
	case MetadataField:
		if len(path) == 1 {
			return map[string]string(e.metadata), e.metadata != nil
		}
		v, ok := e.metadata[path[1]]
		if !ok || len(path) > 2 {
			return nil, false
		}
		return v, true
	case KeyField:
		if e.key == nil || len(path) > 1 {
			return nil, false
		}
		return string(e.key), true
	default:
		i, ok := e.index[path[0]]
		if !ok {
			return nil, false
		}
		value = e.fields[i].Value
	}

	for _, name := range path[1:] {
		var ok bool
		if value, ok = child(value, name); !ok {
			return nil, false
		}
	}

	return value, true
}

func child(value any, name string) (any, bool) {
	switch v := value.(type) {
	case map[string]any:
		c, ok := v[name]
		return c, ok
	case sdk.StructuredData:
		c, ok := v[name]
		return c, ok
	case []any:
		i, err := strconv.Atoi(name)
		if err != nil || i < 0 || i >= len(v) {
			return nil, false
		}
		return v[i], true
	default:
		return nil, false
	}
}

// Bytes returns the serialized event. Raw payloads are returned unchanged,
// everything else is encoded as a JSON object with fields in order.
func (e Event) Bytes() ([]byte, error) {
	if e.raw != nil {
		return e.raw, nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range e.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode field %q: %w", f.Name, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// decodeObject decodes a JSON object keeping the order of its top-level keys.
func decodeObject(data []byte) ([]Field, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("payload is not a JSON object")
	}

	var fields []Field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: name, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON object")
	}

	return fields, nil
}
