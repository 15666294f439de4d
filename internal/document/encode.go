package document

import (
	"bytes"
	"encoding/json"

	"github.com/cockroachdb/errors"
)

const indentUnit = "  "

// Encode serializes a document value as 2-space-indented JSON with a
// trailing newline, preserving mapping key order. The output round-trips
// losslessly through Parse.
func Encode(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v, 0); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// EncodedSize returns the serialized byte size of a document value.
func EncodedSize(v Value) (int64, error) {
	data, err := Encode(v)
	if err != nil {
		return 0, err
	}
	return int64(len(data)), nil
}

func encodeValue(buf *bytes.Buffer, v Value, depth int) error {
	switch val := v.(type) {
	case *Object:
		return encodeObject(buf, val, depth)
	case []Value:
		return encodeArray(buf, val, depth)
	case json.Number:
		buf.WriteString(val.String())
		return nil
	case nil:
		buf.WriteString("null")
		return nil
	case bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil
	case string:
		return encodeString(buf, val)
	default:
		return errors.Newf("unsupported value type %T", v)
	}
}

func encodeObject(buf *bytes.Buffer, obj *Object, depth int) error {
	if obj.Len() == 0 {
		buf.WriteString("{}")
		return nil
	}

	buf.WriteByte('{')
	for i, key := range obj.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
		writeIndent(buf, depth+1)
		if err := encodeString(buf, key); err != nil {
			return err
		}
		buf.WriteString(": ")
		if err := encodeValue(buf, obj.values[key], depth+1); err != nil {
			return err
		}
	}
	buf.WriteByte('\n')
	writeIndent(buf, depth)
	buf.WriteByte('}')
	return nil
}

func encodeArray(buf *bytes.Buffer, arr []Value, depth int) error {
	if len(arr) == 0 {
		buf.WriteString("[]")
		return nil
	}

	buf.WriteByte('[')
	for i, item := range arr {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
		writeIndent(buf, depth+1)
		if err := encodeValue(buf, item, depth+1); err != nil {
			return err
		}
	}
	buf.WriteByte('\n')
	writeIndent(buf, depth)
	buf.WriteByte(']')
	return nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "encoding string")
	}
	buf.Write(data)
	return nil
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString(indentUnit)
	}
}
