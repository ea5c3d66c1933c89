// Package klrdim computes graded dimensions of cyclotomic KLR algebras —
// exact ℤ[q,q⁻¹] arithmetic, canonical factorization and the combinatorial
// dimension formula, end to end.
//
// 🚀 What is klrdim?
//
//	A calculator for weight spaces e(bi)·R^Λ·e(bj) of the cyclotomic
//	quiver Hecke algebra R^Λ, built from:
//		• Laurent polynomials: exact arithmetic over ℤ[q,q⁻¹] with big-integer coefficients
//		• Quantum integers: the balanced [k] at any base q^d
//		• Factorization: squarefree split, Hensel lifting, canonical factored rendering
//		• Permutations: reduced words, Coxeter lengths, subgroup closure in S(n)
//		• Cartan data: finite A–G and untwisted affine types with symmetrizers
//		• The dimension formula: compatibility subgroups, exponent rows, cancellation tallies
//
// ✨ Why choose klrdim?
//
//   - Exact – no floating point anywhere near a dimension
//   - Canonical – one factored rendering, stable across runs
//   - Scriptable – a cobra CLI and a readline REPL over the same verbs
//   - Transparent – every computation can stream its full trace
//
// Under the hood, everything is organized under four library subpackages
// and one command surface:
//
//	laurent/  — ℤ[q,q⁻¹] polynomials, quantum integers, factorization
//	perm/     — permutations, reduced words, subgroup generation
//	cartan/   — Cartan types, pairings, symmetrizers
//	klr/      — the dimension formula, tallies, idempotent sweeps
//	cmd/klrdim, internal/cmd — one-shot commands and the interactive loop
//
// Quick example:
//
//	dim_q e(23321)·R^Λ₂·e(23321) over B3  =  (q⁴+1)(q²+1)²/q²
//
// Dive into the examples/ directory for full walkthroughs of the trace
// output, the idempotent survey and the factorization round trip.
//
//	go get github.com/katalvlaran/klrdim
package klrdim
