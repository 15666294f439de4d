package errors

import "github.com/cockroachdb/errors"

// Re-exports so callers can use this package as a drop-in for both the
// standard library and cockroachdb/errors.
var (
	New   = errors.New
	Newf  = errors.Newf
	Wrap  = errors.Wrap
	Wrapf = errors.Wrapf
	Mark  = errors.Mark
	Is    = errors.Is
	As    = errors.As
	Join  = errors.Join
)
