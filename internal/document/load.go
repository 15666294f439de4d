package document

import (
	"io/fs"

	"github.com/cockroachdb/errors"

	ccerrors "github.com/thoreinstein/claude-clear/internal/errors"
	"github.com/thoreinstein/claude-clear/internal/redact"
	"github.com/thoreinstein/claude-clear/pkg/fileutil"
)

// Load reads and parses the configuration document at path.
// The document is returned exactly as stored; sibling keys are not reordered
// and no missing structure is fabricated.
//
// Failures map onto the engine taxonomy: ErrNotFound if the path does not
// exist, ErrPermissionDenied if it is unreadable, and a ParseError (wrapping
// ErrMalformedDocument) if the content is not valid JSON.
func Load(path string) (*Object, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, errors.Wrapf(ccerrors.ErrNotFound, "no document at %s", redact.Path(path))
		case errors.Is(err, fs.ErrPermission):
			return nil, errors.Wrapf(ccerrors.ErrPermissionDenied, "reading %s", redact.Path(path))
		default:
			return nil, err
		}
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return doc, nil
}
