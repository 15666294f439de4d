package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	ccerrors "github.com/thoreinstein/claude-clear/internal/errors"
)

// ParseError describes a JSON syntax failure with its position in the input.
// It wraps ErrMalformedDocument so callers can match the error kind without
// inspecting the concrete type.
type ParseError struct {
	// Line and Column locate the failure in the input (1-based).
	Line   int
	Column int

	// Offset is the byte offset of the failure.
	Offset int64

	// Msg is the underlying parser message.
	Msg string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON at line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Unwrap ties ParseError into the engine's error taxonomy.
func (e *ParseError) Unwrap() error {
	return ccerrors.ErrMalformedDocument
}

// Parse parses data into an ordered document tree.
// The root of a configuration document must be a JSON object.
func Parse(data []byte) (*Object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		return nil, positionError(data, dec, err)
	}

	root, ok := v.(*Object)
	if !ok {
		return nil, &ParseError{
			Line:   1,
			Column: 1,
			Msg:    "top-level value is not an object",
		}
	}

	// Trailing content after the document is malformed input.
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, positionError(data, dec, err)
	}

	return root, nil
}

// parseValue reads one JSON value from the decoder's token stream.
func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return nil, errors.Newf("unexpected delimiter %q", t.String())
		}
	case string, json.Number, bool, nil:
		return t, nil
	default:
		return nil, errors.Newf("unexpected token %v", tok)
	}
}

// parseObject reads members until the closing brace, preserving key order.
// The opening brace has already been consumed.
func parseObject(dec *json.Decoder) (*Object, error) {
	obj := NewObject()

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.Newf("object key is not a string: %v", keyTok)
		}

		v, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
	}

	// Consume the closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return obj, nil
}

// parseArray reads elements until the closing bracket.
// The opening bracket has already been consumed.
func parseArray(dec *json.Decoder) ([]Value, error) {
	arr := make([]Value, 0)

	for dec.More() {
		v, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return arr, nil
}

// positionError converts a decoder failure into a ParseError carrying
// line/column information for user display.
func positionError(data []byte, dec *json.Decoder, err error) error {
	offset := dec.InputOffset()

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		offset = syntaxErr.Offset
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		offset = int64(len(data))
		err = errors.New("unexpected end of input")
	}

	line, col := lineColumn(data, offset)
	return &ParseError{
		Line:   line,
		Column: col,
		Offset: offset,
		Msg:    err.Error(),
	}
}

// lineColumn computes the 1-based line and column of a byte offset.
func lineColumn(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}

	line, col = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
