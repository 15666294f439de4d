// Package document models the Claude configuration file as an ordered JSON tree.
//
// Standard library maps do not preserve key order, so mappings are represented
// by [Object], which records insertion order alongside the values. Documents
// are parsed with a token-walking json.Decoder and re-encoded with sibling
// order untouched, keeping the diff between the original and cleaned file
// limited to the removed subtrees.
//
// Values in the tree are one of:
//
//	string, json.Number, bool, nil, []Value, *Object
//
// [Load] reads and parses a document from disk, mapping I/O failures onto the
// engine's error taxonomy and syntax errors onto [ParseError] with line and
// column positions. [Validate] reports non-fatal structural warnings for
// missing top-level namespaces; it never fabricates missing structure.
package document
