package classify

import "strings"

// Classification is the decision for a document path.
type Classification int

const (
	// Unknown means no rule matched. Unknown fields are never touched;
	// the fail-safe default is to preserve anything not explicitly matched.
	Unknown Classification = iota

	// Preserved marks user settings, credentials, and integration
	// configuration. A preserved node shields its entire subtree.
	Preserved

	// Cleanable marks conversational and cache data safe to discard.
	Cleanable
)

// String implements fmt.Stringer.
func (c Classification) String() string {
	switch c {
	case Preserved:
		return "preserved"
	case Cleanable:
		return "cleanable"
	default:
		return "unknown"
	}
}

// Classify decides the classification of the field at the given path.
// The path is the sequence of keys from the document root, e.g.
// ["projects", "/home/user/proj", "history"].
//
// Rules are evaluated in fixed precedence:
//
//  1. Preserve rules, checked against the path and every ancestor prefix.
//     A preserve match anywhere up the chain wins, so a field named
//     "conversationCache" inside a preserved "settings" block stays.
//  2. Clean rules, position-sensitive: project-level names match only at
//     projects.<id>.<name>, root-level names only at the top level.
//  3. Neither: Unknown, treated as preserved.
//
// Classify is a pure function of the path; it has no side effects.
func Classify(path []string) Classification {
	if len(path) == 0 {
		return Unknown
	}

	for i := range path {
		if preserveMatch(path[i]) {
			return Preserved
		}
	}

	if cleanMatch(path) {
		return Cleanable
	}

	return Unknown
}

// preserveMatch reports whether a single key triggers a preserve rule.
func preserveMatch(key string) bool {
	if _, ok := preserveExact[key]; ok {
		return true
	}
	lower := strings.ToLower(key)
	for _, substr := range preserveSubstrings {
		if strings.Contains(lower, substr) {
			return true
		}
	}
	return false
}

// cleanMatch reports whether the full path triggers a clean rule.
// Clean rules only fire at their designated depth.
func cleanMatch(path []string) bool {
	switch len(path) {
	case 1:
		_, ok := rootCleanable[path[0]]
		return ok
	case 3:
		if path[0] != "projects" {
			return false
		}
		_, ok := projectCleanable[path[2]]
		return ok
	default:
		return false
	}
}
