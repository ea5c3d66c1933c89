package klr

import "errors"

var (
	// ErrLengthMismatch indicates sequence lengths that cannot be paired.
	ErrLengthMismatch = errors.New("klr: index sequences must have equal length")
	// ErrIndexNotInSet indicates a sequence entry outside the type's index set.
	ErrIndexNotInSet = errors.New("klr: sequence entry outside the index set")
	// ErrBadDigit indicates a non-digit rune in a compact sequence string.
	ErrBadDigit = errors.New("klr: sequence strings are single digits only")
)
