package redact

import (
	"os"
	"path/filepath"
	"testing"
)

func TestShouldMask(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"apiKey", true},
		{"API_KEY", true},
		{"authToken", true},
		{"credentials", true},
		{"GITHUB_TOKEN", true},
		{"password", true},
		{"theme", false},
		{"projects", false},
		{"history", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := ShouldMask(tt.key); got != tt.want {
				t.Errorf("ShouldMask(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestContainsTokenPrefix(t *testing.T) {
	if !ContainsTokenPrefix("ghp_abc123") {
		t.Error("GitHub token prefix should match")
	}
	if !ContainsTokenPrefix("sk-proj-xyz") {
		t.Error("sk- prefix should match")
	}
	if ContainsTokenPrefix("dark") {
		t.Error("ordinary value should not match")
	}
}

func TestMaskValue(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"abc", "********"},
		{"abcd", "********"},
		{"ghp_1234567890", "****7890"},
	}

	for _, tt := range tests {
		if got := MaskValue(tt.value); got != tt.want {
			t.Errorf("MaskValue(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got := Path(filepath.Join(home, ".claude.json"))
	want := "~" + string(filepath.Separator) + ".claude.json"
	if got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}

	// Paths outside the home directory collapse to the base name.
	if got := Path("/var/lib/secret-dir/config.json"); got != "config.json" {
		t.Errorf("Path() = %q, want base name only", got)
	}

	if got := Path(""); got != "" {
		t.Errorf("Path(\"\") = %q, want empty", got)
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"stat error",
			"stat /var/lib/secret-dir/.claude.json: no such file or directory",
			"stat .claude.json: no such file or directory",
		},
		{
			"wrapped chain",
			"reading source: open /opt/data/config.json: permission denied",
			"reading source: open config.json: permission denied",
		},
		{
			"no paths",
			"another cleaning operation is in progress",
			"another cleaning operation is in progress",
		},
		{
			"dotted field path untouched",
			"removed projects.p1.history",
			"removed projects.p1.history",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.in); got != tt.want {
				t.Errorf("Message(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMessage_HomePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	in := "no document at " + filepath.Join(home, ".claude.json")
	got := Message(in)
	want := "no document at ~" + string(filepath.Separator) + ".claude.json"
	if got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}
}
