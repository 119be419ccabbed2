package importers

import "github.com/pkg/errors"

var (
	// ErrMalformedInput marks a structurally broken record: wrong field
	// count, missing expected key, or a required field that is empty. It
	// aborts the populate call that hit it.
	ErrMalformedInput = errors.New("malformed input")

	// ErrParse marks text that could not be read as its target numeric
	// type. It is a malformed-input variant: errors.Is on
	// ErrMalformedInput matches it too.
	ErrParse = errors.WithMessage(ErrMalformedInput, "parse error")

	// ErrUnexpectedInput marks an unknown format tag, an unready stream
	// or a mapping with the wrong declared column count. It is raised
	// before any parsing begins.
	ErrUnexpectedInput = errors.New("unexpected input")
)
