package model

import "github.com/pkg/errors"

var (
	// ErrNotFound is returned by lookups for a missing area, measure,
	// name or year. The wrapped message always names the missing key.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument is returned when a language code is not three
	// alphabetic letters.
	ErrInvalidArgument = errors.New("invalid argument")
)
