package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// FileName is the manifest file shipped inside every template directory.
const FileName = "package.json"

// Member is a single key/value pair of a JSON object.
type Member struct {
	Key   string
	Value any
}

// Object is a JSON object that remembers member order. Values are *Object
// for nested objects, []any for arrays, and json.Number, string, bool, or
// nil for scalars.
type Object struct {
	members []Member
	index   map[string]int
}

// Parse decodes data into an Object, preserving member order at every
// nesting level. Numbers are kept as json.Number so re-encoding does not
// alter their textual form.
func Parse(data []byte) (*Object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("parsing manifest: top-level value is not an object")
	}

	obj, err := parseObject(dec)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("parsing manifest: trailing data after object")
	}
	return obj, nil
}

// ParseFile reads and parses a manifest file.
func ParseFile(path string) (*Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

// GetString returns the string value stored under key, or "" when the key is
// absent or not a string.
func (o *Object) GetString(key string) string {
	v, ok := o.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Set stores value under key. An existing member keeps its position; a new
// one is appended.
func (o *Object) Set(key string, value any) {
	if i, ok := o.index[key]; ok {
		o.members[i].Value = value
		return
	}
	if o.index == nil {
		o.index = make(map[string]int)
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: value})
}

// Len returns the number of members.
func (o *Object) Len() int {
	return len(o.members)
}

// Members returns the members in order.
func (o *Object) Members() []Member {
	return o.members
}

// Encode serializes the object with 2-space indentation and a trailing
// newline, in member order.
func (o *Object) Encode() []byte {
	var buf bytes.Buffer
	writeValue(&buf, o, 0)
	buf.WriteByte('\n')
	return buf.Bytes()
}

func parseObject(dec *json.Decoder) (*Object, error) {
	obj := &Object{index: make(map[string]int)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", tok)
		}

		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func parseArray(dec *json.Decoder) ([]any, error) {
	arr := []any{}
	for dec.More() {
		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

func parseValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); ok {
		switch delim {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", delim)
		}
	}
	return tok, nil
}

func writeValue(buf *bytes.Buffer, v any, depth int) {
	switch val := v.(type) {
	case *Object:
		writeObject(buf, val, depth)
	case []any:
		writeArray(buf, val, depth)
	case string:
		writeString(buf, val)
	case json.Number:
		buf.WriteString(val.String())
	case bool:
		buf.WriteString(strconv.FormatBool(val))
	case nil:
		buf.WriteString("null")
	}
}

func writeObject(buf *bytes.Buffer, o *Object, depth int) {
	if len(o.members) == 0 {
		buf.WriteString("{}")
		return
	}
	buf.WriteString("{\n")
	for i, m := range o.members {
		writeIndent(buf, depth+1)
		writeString(buf, m.Key)
		buf.WriteString(": ")
		writeValue(buf, m.Value, depth+1)
		if i < len(o.members)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	writeIndent(buf, depth)
	buf.WriteByte('}')
}

func writeArray(buf *bytes.Buffer, arr []any, depth int) {
	if len(arr) == 0 {
		buf.WriteString("[]")
		return
	}
	buf.WriteString("[\n")
	for i, v := range arr {
		writeIndent(buf, depth+1)
		writeValue(buf, v, depth+1)
		if i < len(arr)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	writeIndent(buf, depth)
	buf.WriteByte(']')
}

func writeString(buf *bytes.Buffer, s string) {
	encoded, err := json.Marshal(s)
	if err != nil {
		// json.Marshal of a string cannot fail; keep the encoder total.
		encoded = []byte(`""`)
	}
	buf.Write(encoded)
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for range depth {
		buf.WriteString("  ")
	}
}
