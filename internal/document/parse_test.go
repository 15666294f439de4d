package document

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	ccerrors "github.com/thoreinstein/claude-clear/internal/errors"
)

func TestParse_PreservesKeyOrder(t *testing.T) {
	input := `{"zebra": 1, "alpha": 2, "mango": {"b": true, "a": null}}`

	doc, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"zebra", "alpha", "mango"}
	if got := doc.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	nested, _ := doc.Get("mango")
	wantNested := []string{"b", "a"}
	if got := nested.(*Object).Keys(); !reflect.DeepEqual(got, wantNested) {
		t.Errorf("nested Keys() = %v, want %v", got, wantNested)
	}
}

func TestParse_ScalarTypes(t *testing.T) {
	input := `{"s": "text", "n": 42.5, "t": true, "f": false, "z": null, "arr": [1, "two"]}`

	doc, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if v, _ := doc.Get("s"); v != "text" {
		t.Errorf("s = %v", v)
	}
	if v, _ := doc.Get("n"); v != json.Number("42.5") {
		t.Errorf("n = %v (%T)", v, v)
	}
	if v, _ := doc.Get("t"); v != true {
		t.Errorf("t = %v", v)
	}
	if v, _ := doc.Get("z"); v != nil {
		t.Errorf("z = %v", v)
	}

	arr, _ := doc.Get("arr")
	if got := arr.([]Value); len(got) != 2 || got[0] != json.Number("1") || got[1] != "two" {
		t.Errorf("arr = %v", got)
	}
}

func TestParse_MalformedInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{"truncated object", "{\"a\": 1,", 1},
		{"bad token", "{\"a\": nope}", 1},
		{"bad token on later line", "{\n  \"a\": 1,\n  \"b\": !\n}", 3},
		{"trailing garbage", `{"a": 1} extra`, 1},
		{"empty input", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("expected parse error")
			}

			if !errors.Is(err, ccerrors.ErrMalformedDocument) {
				t.Errorf("error should wrap ErrMalformedDocument, got %v", err)
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if parseErr.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d (err: %v)", parseErr.Line, tt.wantLine, parseErr)
			}
			if parseErr.Column < 1 {
				t.Errorf("Column = %d, want >= 1", parseErr.Column)
			}
		})
	}
}

func TestParse_NonObjectRoot(t *testing.T) {
	for _, input := range []string{`[1, 2]`, `"scalar"`, `42`} {
		_, err := Parse([]byte(input))
		if err == nil {
			t.Errorf("Parse(%q) should fail for non-object root", input)
			continue
		}
		if !errors.Is(err, ccerrors.ErrMalformedDocument) {
			t.Errorf("Parse(%q) error should wrap ErrMalformedDocument", input)
		}
	}
}

func TestLineColumn(t *testing.T) {
	data := []byte("ab\ncde\nf")

	tests := []struct {
		offset   int64
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{6, 2, 4},
		{7, 3, 1},
		{100, 3, 2}, // clamped to input length
	}

	for _, tt := range tests {
		line, col := lineColumn(data, tt.offset)
		if line != tt.wantLine || col != tt.wantCol {
			t.Errorf("lineColumn(%d) = (%d, %d), want (%d, %d)",
				tt.offset, line, col, tt.wantLine, tt.wantCol)
		}
	}
}
