package cartan

import "errors"

var (
	// ErrUnknownFamily indicates a family letter outside A–G.
	ErrUnknownFamily = errors.New("cartan: unknown family")
	// ErrRank indicates a rank outside the family's admissible range.
	ErrRank = errors.New("cartan: rank out of range")
	// ErrParse indicates a compact descriptor that cannot be decoded.
	ErrParse = errors.New("cartan: malformed type descriptor")
)
