// Package classify decides which fields of a configuration document are
// conversational/cache data (cleanable) and which are user-critical
// (preserved).
//
// Classification is a pure function of the field's path, evaluated against
// a single ordered rule table: preserve rules first, then clean rules, then
// a fail-safe default of "unknown" which is treated as preserved. Because
// preserve rules are checked against every ancestor, a preserved node shields
// its entire subtree regardless of descendant names.
package classify
