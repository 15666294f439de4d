package logging

import (
	"bytes"
	"testing"
)

func TestIsTTY_Buffer(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("a bytes.Buffer is not a TTY")
	}
}

func TestSupportsColor_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if supportsColor(&bytes.Buffer{}, true) {
		t.Error("NO_COLOR should disable color even on a TTY")
	}
}

func TestSupportsColor_DumbTerm(t *testing.T) {
	t.Setenv("TERM", "dumb")
	if supportsColor(&bytes.Buffer{}, true) {
		t.Error("TERM=dumb should disable color")
	}
}

func TestSupportsColor_NotTTY(t *testing.T) {
	if SupportsColor(&bytes.Buffer{}) {
		t.Error("non-TTY writer should not support color")
	}
}
