package laurent

import "math/big"

// factorZ factors a primitive polynomial with positive leading coefficient
// and degree ≥ 1 into irreducible primitive factors with multiplicities.
// Pipeline: Yun squarefree split, then Zassenhaus on each squarefree part.
func factorZ(f zpoly) []zfactor {
	var out []zfactor
	for _, part := range yun(f) {
		for _, irr := range factorSquarefree(part.base) {
			out = append(out, zfactor{base: irr, mult: part.mult})
		}
	}

	return out
}

// zfactor pairs a factor with its multiplicity.
type zfactor struct {
	base zpoly
	mult int
}

// yun performs Yun's squarefree decomposition of a primitive f with
// lc(f) > 0: f = ∏ aᵢ^i with the aᵢ squarefree and pairwise coprime.
// Characteristic zero makes the classical recurrence exact.
func yun(f zpoly) []zfactor {
	if zDeg(f) < 1 {
		return nil
	}

	var out []zfactor
	df := zDerivative(f)
	a := zGCD(f, df)
	if zDeg(a) == 0 {
		return []zfactor{{base: f, mult: 1}}
	}
	b, _ := zDivExact(f, a)
	c, _ := zDivExact(df, a)
	d := zSub(c, zDerivative(b))
	for i := 1; ; i++ {
		if zDeg(b) == 0 {
			break
		}
		ai := zGCD(b, d)
		if zDeg(ai) > 0 {
			out = append(out, zfactor{base: ai, mult: i})
		}
		b, _ = zDivExact(b, ai)
		c, _ = zDivExact(d, ai)
		d = zSub(c, zDerivative(b))
	}

	return out
}

// factorSquarefree runs Zassenhaus on a primitive squarefree f with
// lc(f) > 0 and degree ≥ 1:
//
//  1. pick the first prime p with p ∤ lc(f) and f squarefree mod p,
//  2. Berlekamp-factor the monic image of f over F_p,
//  3. Hensel-lift past twice the Mignotte bound,
//  4. recombine modular factors by subset search with exact division tests.
func factorSquarefree(f zpoly) []zpoly {
	if zDeg(f) == 1 {
		return []zpoly{f}
	}

	p := pickPrime(f)
	mods := berlekamp(fpMonic(fpFromZ(f, p), p), p)
	if len(mods) == 1 {
		// irreducible mod p ⇒ irreducible over ℤ
		return []zpoly{f}
	}

	lifted, modulus := henselMulti(f, mods, p, mignotteTarget(f))

	return recombine(f, lifted, modulus)
}

// pickPrime returns the first prime p (ascending) with p ∤ lc(f) and
// gcd(f mod p, f′ mod p) = 1. Squarefree f has nonzero discriminant, so
// only finitely many primes fail; the sieve widens until one is found.
func pickPrime(f zpoly) int64 {
	limit := int64(1 << 10)
	for {
		for _, p := range sievePrimes(limit) {
			if zFpLC(f, p) == 0 {
				continue
			}
			fp := fpFromZ(f, p)
			if fpDeg(fpGCD(fp, fpDerivative(fp, p), p)) == 0 {
				return p
			}
		}
		limit *= 2
	}
}

// sievePrimes returns the odd primes below limit. 2 is excluded so every
// lifted modulus stays odd and the symmetric residue range is balanced.
func sievePrimes(limit int64) []int64 {
	composite := make([]bool, limit)
	var primes []int64
	for n := int64(3); n < limit; n += 2 {
		if composite[n] {
			continue
		}
		primes = append(primes, n)
		for k := n * n; k < limit; k += n {
			composite[k] = true
		}
	}

	return primes
}

// mignotteTarget returns 2B+1 where B = |lc(f)|·2^deg(f)·⌈‖f‖₂⌉ bounds
// every coefficient of lc(f)-rescaled true factors; a modulus beyond the
// target makes symmetric representatives exact.
func mignotteTarget(f zpoly) *big.Int {
	norm := new(big.Int).Sqrt(zNorm2Sq(f))
	norm.Add(norm, bigOne)
	b := new(big.Int).Lsh(norm, uint(zDeg(f)))
	b.Mul(b, new(big.Int).Abs(zLC(f)))
	b.Lsh(b, 1)

	return b.Add(b, bigOne)
}

// recombine searches subsets of the lifted monic factors for true divisors
// of f, smallest subsets first. Whatever survives the search is itself
// irreducible and closes the list.
func recombine(f zpoly, lifted []zpoly, modulus *big.Int) []zpoly {
	var out []zpoly
	remaining := make([]int, len(lifted))
	for i := range remaining {
		remaining[i] = i
	}
	cur := f

	for size := 1; 2*size <= len(remaining); {
		found := false
		sel := make([]int, size)
		for i := range sel {
			sel[i] = i
		}
		for {
			cand := zpoly{new(big.Int).Set(zLC(cur))}
			for _, si := range sel {
				cand = zMulMod(cand, lifted[remaining[si]], modulus)
			}
			cand, _ = zPrimitive(zSymMod(cand, modulus))
			if quo, ok := zDivExact(cur, cand); ok && zDeg(cand) > 0 {
				out = append(out, cand)
				cur = quo
				remaining = deleteIndices(remaining, sel)
				found = true
				break
			}
			if !nextCombination(sel, len(remaining)) {
				break
			}
		}
		if !found {
			size++
		}
	}
	if zDeg(cur) > 0 {
		out = append(out, cur)
	}

	return out
}

// nextCombination advances sel to the next k-subset of [0,n) in
// lexicographic order, reporting false after the last one.
func nextCombination(sel []int, n int) bool {
	k := len(sel)
	for i := k - 1; i >= 0; i-- {
		if sel[i] < n-k+i {
			sel[i]++
			for j := i + 1; j < k; j++ {
				sel[j] = sel[j-1] + 1
			}

			return true
		}
	}

	return false
}

// deleteIndices removes the positions listed in sel (ascending) from ids.
func deleteIndices(ids []int, sel []int) []int {
	out := ids[:0:0]
	si := 0
	for pos, id := range ids {
		if si < len(sel) && sel[si] == pos {
			si++
			continue
		}
		out = append(out, id)
	}

	return out
}
