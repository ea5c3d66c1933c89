// Package cartan resolves Cartan types: index sets, generalized Cartan
// matrices and their symmetrizers, for the finite families A–G and their
// untwisted affine extensions.
//
// 🚀 What is a Cartan type?
//
//	A generalized Cartan matrix (a_ij) encodes a Dynkin diagram: 2 on the
//	diagonal, non-positive integers off it, a_ij = 0 ⇔ a_ji = 0.  Its
//	symmetrizer is the minimal positive integer vector d with
//	d_i·a_ij = d_j·a_ji.  Pairings a_ij set the exponent corrections of the
//	dimension formula; d_i sets the base q^d of each quantum integer.
//
// ✨ Key features:
//   - finite families A(n≥1), B(n≥2), C(n≥2), D(n≥3), E6–E8, F4, G2,
//     indexed 1..n
//   - untwisted affine extensions (marker ~), indexed 0..n, with the affine
//     node attached per the extended Dynkin diagram
//   - Parse for the compact textual form: "B3", "A2~", "A2~1"
//   - symmetrizers computed by ratio propagation over the diagram, never
//     tabulated
//   - Dense() exports the matrix as a gonum *mat.Dense for inspection
//
// ⚙️ Usage:
//
//	t, err := cartan.Parse("B3")
//	if err != nil { … }
//	t.Index()        // [1 2 3]
//	t.Pairing(3, 2)  // -2
//	t.Symmetrizer(1) // 2
//
// Performance: construction is O(n²); every lookup is O(1).
//
// See example_test.go for the affine walkthrough.
package cartan
