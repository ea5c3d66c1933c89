// Package perm provides permutations of {0,…,n−1} with the combinatorial
// toolkit for Coxeter-style enumeration: composition, inversion counting,
// reduced words, block embeddings and subgroup generation.
//
// 🚀 Conventions
//
//	A Perm stores images in one-line notation: p[i] is the image of i.
//	Composition reads left to right, Mul(a, b) maps x ↦ b(a(x)), so a acts
//	first.  Length counts inversions, which equals the Coxeter length over
//	the adjacent transpositions s₀,…,sₙ₋₂.
//
// ✨ Key features:
//   - constructors: Identity, Adjacent (simple reflection sᵢ), Transposition
//   - Mul / Inverse / Apply with left-to-right composition
//   - Length, ReducedWord (leftmost-descent factorization), ShiftedBy block
//     embeddings into a larger symmetric group
//   - disjoint-cycle rendering: "(0,3)(1,2)", identity "()"
//   - Generate: breadth-first closure of a generator set, returned in
//     canonical order (Length ascending, then lexicographic images)
//
// ⚙️ Usage:
//
//	w := perm.Adjacent(4, 0).Mul(perm.Adjacent(4, 1))
//	fmt.Println(w)               // (0,2,1)
//	fmt.Println(w.Length())      // 2
//	fmt.Println(w.ReducedWord()) // [0 1]
//
//	group := perm.Generate(3, []perm.Perm{perm.Adjacent(3, 0), perm.Adjacent(3, 1)})
//
// Performance:
//
//   - Mul/Inverse: O(n); Length/ReducedWord: O(n²)
//   - Generate: O(|G|·|gens|·n) with a string-keyed visited set
//
// See examples in example_test.go.
package perm
