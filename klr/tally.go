package klr

import (
	"strings"

	"github.com/katalvlaran/klrdim/laurent"
	"github.com/katalvlaran/klrdim/perm"
)

// Tally groups the nonzero contributions of a dimension computation by term
// value, preserving first-insertion order across values. Each value keeps
// the permutations that produced it, sorted by Coxeter length ascending.
//
// Recording the exact negation of a present value cancels instead of
// opening a new entry: the longest permutation is popped from the negated
// value's list, and the value disappears entirely once its list empties.
// A value and its negation therefore never coexist.
type Tally struct {
	keys  []string
	polys map[string]*laurent.Poly
	perms map[string][]perm.Perm
}

// NewTally returns an empty accumulator.
func NewTally() *Tally {
	return &Tally{
		polys: make(map[string]*laurent.Poly),
		perms: make(map[string][]perm.Perm),
	}
}

// Record files one contribution. Panics on a zero value: exact zeros are
// skipped upstream and never reach the tally.
func (t *Tally) Record(x *laurent.Poly, w perm.Perm) {
	if x.IsZero() {
		panic("klr: Tally.Record: zero contribution")
	}

	key := x.String()
	if _, ok := t.polys[key]; ok {
		t.insert(key, w)

		return
	}
	if neg := x.Neg().String(); len(t.perms[neg]) > 0 {
		t.pop(neg)

		return
	}

	t.keys = append(t.keys, key)
	t.polys[key] = x
	t.perms[key] = []perm.Perm{w}
}

// insert keeps the value's list sorted by length ascending; equal lengths
// stay in arrival order.
func (t *Tally) insert(key string, w perm.Perm) {
	list := t.perms[key]
	at := len(list)
	for at > 0 && list[at-1].Length() > w.Length() {
		at--
	}
	list = append(list, nil)
	copy(list[at+1:], list[at:])
	list[at] = w
	t.perms[key] = list
}

// pop removes the longest permutation under key, dropping the whole entry
// when the list empties.
func (t *Tally) pop(key string) {
	list := t.perms[key]
	list = list[:len(list)-1]
	if len(list) > 0 {
		t.perms[key] = list

		return
	}
	delete(t.perms, key)
	delete(t.polys, key)
	for i, k := range t.keys {
		if k == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of distinct values currently filed.
func (t *Tally) Len() int { return len(t.keys) }

// Values returns the filed values in first-insertion order.
func (t *Tally) Values() []*laurent.Poly {
	out := make([]*laurent.Poly, len(t.keys))
	for i, k := range t.keys {
		out[i] = t.polys[k]
	}

	return out
}

// Lookup returns a copy of the permutation list filed under x, nil when x
// is not present.
func (t *Tally) Lookup(x *laurent.Poly) []perm.Perm {
	list, ok := t.perms[x.String()]
	if !ok {
		return nil
	}

	return append([]perm.Perm(nil), list...)
}

// String renders one line per value: the value, a colon, the permutations.
func (t *Tally) String() string {
	var b strings.Builder
	for _, k := range t.keys {
		b.WriteString(k)
		b.WriteString(" : ")
		for i, w := range t.perms[k] {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(w.String())
		}
		b.WriteByte('\n')
	}

	return b.String()
}
