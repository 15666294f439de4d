// Package redact masks secrets and filesystem paths in user-visible output.
//
// User-facing messages must not echo secret-bearing field values or raw
// filesystem paths. Full detail is still available to the structured log
// sink; this package only guards what is rendered for the user.
package redact

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// SecretKeyPatterns contains substrings that indicate a key likely holds
// sensitive data. Keys are matched case-insensitively.
var SecretKeyPatterns = []string{
	"TOKEN",
	"KEY",
	"SECRET",
	"PASSWORD",
	"AUTH",
	"CREDENTIAL",
	"PRIVATE",
}

// TokenPrefixes contains known API token prefixes that indicate sensitive
// values regardless of key name.
var TokenPrefixes = []string{
	"ghp_",  // GitHub personal access token
	"gho_",  // GitHub OAuth token
	"ghs_",  // GitHub server-to-server token
	"sk-",   // OpenAI/Anthropic keys
	"AKIA",  // AWS access key prefix
	"xoxb-", // Slack bot token
	"xoxp-", // Slack user token
}

// ShouldMask returns true if the key name suggests it contains sensitive data.
// Matching is case-insensitive.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range SecretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// ContainsTokenPrefix returns true if the value starts with a known token
// prefix. This catches values that are clearly tokens even when the key name
// does not indicate sensitivity.
func ContainsTokenPrefix(value string) bool {
	for _, prefix := range TokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

// MaskValue masks a potentially sensitive string value.
// Values with 4 or fewer characters are fully masked as "********".
// Longer values show the last 4 characters: "****xxxx".
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}

// Path rewrites an absolute filesystem path for user display.
// Paths under the user's home directory are shown home-relative ("~/...");
// anything else collapses to the base name so arbitrary directory layouts
// are not echoed back in error messages.
func Path(path string) string {
	if path == "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		if rel, err := filepath.Rel(home, path); err == nil && !strings.HasPrefix(rel, "..") {
			if rel == "." {
				return "~"
			}
			return "~" + string(filepath.Separator) + rel
		}
	}

	return filepath.Base(path)
}

// absPathPattern matches absolute paths embedded in message text. Paths end
// at whitespace or the punctuation wrap chains use around them.
var absPathPattern = regexp.MustCompile(`/[^\s:;"'()\[\]]+`)

// Message rewrites every absolute filesystem path embedded in s the way
// Path does. Error chains pick up raw paths from os wrappers at many
// levels, so user-facing renderers pass the whole message through here
// rather than chasing each wrap site.
func Message(s string) string {
	return absPathPattern.ReplaceAllStringFunc(s, Path)
}
