package klr

import "fmt"

// ParseSeq decodes a compact digit string into index labels, one digit per
// rune: "23321" → [2 3 3 2 1]. Any other rune fails with ErrBadDigit.
// Every supported index set lies in 0..9, so multi-digit labels never
// arise; decoding happens once, at the input boundary.
func ParseSeq(s string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("klr: rune %q in %q: %w", r, s, ErrBadDigit)
		}
		out = append(out, int(r-'0'))
	}

	return out, nil
}
