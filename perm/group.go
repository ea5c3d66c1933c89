package perm

import "sort"

// Generate — closure of a generator set inside S(n).
//
// Description:
//
//	Enumerates the subgroup generated by gens via breadth-first closure
//	under right multiplication, starting from the identity. Every finite
//	subgroup is closed under multiplication alone, so inverses need not be
//	supplied. The result is returned in canonical order: Coxeter length
//	ascending, then lexicographic one-line images.
//
// Contract:
//   - The identity is always present, even for an empty generator set.
//   - Generators whose size differs from n panic.
//   - No size guard: the enumeration is exhaustive, and the caller bounds
//     the group through its choice of generators.
//
// Complexity: O(|G|·|gens|·n) time, O(|G|·n) memory.
func Generate(n int, gens []Perm) []Perm {
	for _, g := range gens {
		if len(g) != n {
			panic("perm: Generate: generator size mismatch")
		}
	}

	id := Identity(n)
	seen := map[string]struct{}{id.key(): {}}
	queue := []Perm{id}
	out := []Perm{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, g := range gens {
			next := cur.Mul(g)
			k := next.key()
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, next)
			queue = append(queue, next)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })

	return out
}

// key packs the images into a map key. Ranks beyond 255 never occur here.
func (p Perm) key() string {
	b := make([]byte, len(p))
	for i, v := range p {
		b[i] = byte(v)
	}

	return string(b)
}
