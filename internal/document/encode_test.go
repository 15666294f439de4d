package document

import (
	"strings"
	"testing"
)

func TestEncode_RoundTrip(t *testing.T) {
	input := `{
  "projects": {
    "/home/user/proj": {
      "history": [
        "a",
        "b"
      ],
      "settings": {
        "theme": "dark",
        "fontSize": 14.5
      },
      "empty": {},
      "flag": true,
      "nothing": null
    }
  },
  "userSettings": {
    "apiKey": "XYZ"
  }
}
`

	doc, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	out, err := Encode(doc)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if string(out) != input {
		t.Errorf("Encode() did not round-trip.\ngot:\n%s\nwant:\n%s", out, input)
	}

	// Structural round trip: parse the encoded form again.
	again, err := Parse(out)
	if err != nil {
		t.Fatalf("re-Parse() error = %v", err)
	}
	if !Equal(doc, again) {
		t.Error("re-parsed document differs structurally")
	}
}

func TestEncode_EmptyContainers(t *testing.T) {
	doc, err := Parse([]byte(`{"a": {}, "b": []}`))
	if err != nil {
		t.Fatal(err)
	}

	out, err := Encode(doc)
	if err != nil {
		t.Fatal(err)
	}

	want := "{\n  \"a\": {},\n  \"b\": []\n}\n"
	if string(out) != want {
		t.Errorf("Encode() = %q, want %q", out, want)
	}
}

func TestEncode_NumberLiteralsPreserved(t *testing.T) {
	// 1.0 must not collapse to 1, and large ints must not go scientific.
	doc, err := Parse([]byte(`{"a": 1.0, "b": 9007199254740993, "c": 1e6}`))
	if err != nil {
		t.Fatal(err)
	}

	out, err := Encode(doc)
	if err != nil {
		t.Fatal(err)
	}

	for _, literal := range []string{"1.0", "9007199254740993", "1e6"} {
		if !strings.Contains(string(out), literal) {
			t.Errorf("output %q missing literal %q", out, literal)
		}
	}
}

func TestEncode_StringEscaping(t *testing.T) {
	obj := NewObject()
	obj.Set("path", `C:\Users\x`)
	obj.Set("quote", `say "hi"`)

	out, err := Encode(obj)
	if err != nil {
		t.Fatal(err)
	}

	again, err := Parse(out)
	if err != nil {
		t.Fatalf("escaped output failed to re-parse: %v", err)
	}
	if v, _ := again.Get("path"); v != `C:\Users\x` {
		t.Errorf("path = %v", v)
	}
	if v, _ := again.Get("quote"); v != `say "hi"` {
		t.Errorf("quote = %v", v)
	}
}

func TestEncode_TrailingNewline(t *testing.T) {
	out, err := Encode(NewObject())
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "{}\n" {
		t.Errorf("Encode(empty) = %q, want %q", out, "{}\n")
	}
}

func TestEncodedSize(t *testing.T) {
	doc, err := Parse([]byte(`{"a": 1}`))
	if err != nil {
		t.Fatal(err)
	}

	size, err := EncodedSize(doc)
	if err != nil {
		t.Fatal(err)
	}

	out, _ := Encode(doc)
	if size != int64(len(out)) {
		t.Errorf("EncodedSize() = %d, want %d", size, len(out))
	}
}
