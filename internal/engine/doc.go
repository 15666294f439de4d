// Package engine orchestrates a single cleaning run over the configuration
// document: load, validate, transform, backup, atomic write, report.
//
// The engine is render-free. It returns a Result describing what happened
// (or what would happen, in dry-run) and leaves presentation to callers.
package engine
