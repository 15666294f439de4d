// Package backup creates and manages verified backups of the configuration
// document.
//
// Each backup is a sibling file named after the original plus a second-
// granularity timestamp:
//
//	~/.claude.json.backup.20260830_143052
//
// Backups are written with owner-only permissions, never overwritten, and
// verified byte-for-byte against the source immediately after writing. A
// clean operation must not proceed without a verified backup, so [Manager.Create]
// deletes its partial output and fails on any verification mismatch.
//
// Old backups are only ever removed by the explicit [Manager.Prune]
// operation or by the user; the engine never deletes a backup it just
// created.
package backup
