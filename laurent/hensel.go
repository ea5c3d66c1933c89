package laurent

import "math/big"

// toZ widens an F_p polynomial into ℤ coefficients.
func toZ(f fpoly) zpoly {
	out := make(zpoly, len(f))
	for i, c := range f {
		out[i] = big.NewInt(c)
	}

	return out
}

// henselPair lifts the two-factor congruence f ≡ g·h (mod p), with Bézout
// data s·g + t·h ≡ 1 (mod p) and h monic, up the modulus chain
// p, p², p⁴, … until it reaches P (which must lie on that chain).
//
// The step is the classical quadratic one: correct the product with
// e = f − g·h, divide s·e by the monic h to keep degrees in place, then
// refresh the Bézout pair the same way. h stays literally monic throughout,
// so every division below is by a unit leading coefficient.
func henselPair(f, g, h, s, t zpoly, p int64, target *big.Int) (liftedG, liftedH zpoly) {
	m := big.NewInt(p)
	one := zpoly{big.NewInt(1)}
	G, H, S, T := zClone(g), zClone(h), zClone(s), zClone(t)

	for m.Cmp(target) < 0 {
		m2 := new(big.Int).Mul(m, m)

		// product correction: f ≡ G·H (mod m²)
		e := zSubMod(f, zMul(G, H), m2)
		q, r := zDivModMonic(zMulMod(S, e, m2), H, m2)
		G = zMod(zAdd(zAdd(G, zMul(T, e)), zMul(q, G)), m2)
		H = zAddMod(H, r, m2)

		// Bézout correction: S·G + T·H ≡ 1 (mod m²)
		b := zSubMod(zAdd(zMul(S, G), zMul(T, H)), one, m2)
		c, d := zDivModMonic(zMulMod(S, b, m2), H, m2)
		S = zSubMod(S, d, m2)
		T = zMod(zSub(T, zAdd(zMul(T, b), zMul(c, G))), m2)

		m = m2
	}

	return G, H
}

// henselMulti lifts f ≡ lc(f)·∏ mods (mod p), with mods monic and pairwise
// coprime, to a monic factorization modulo P: f ≡ lc(f)·∏ out (mod P),
// out[i] monic, out[i] ≡ mods[i] (mod p). P is the first power p^(2^k)
// reaching target, and is returned alongside the factors.
func henselMulti(f zpoly, mods []fpoly, p int64, target *big.Int) (out []zpoly, modulus *big.Int) {
	modulus = big.NewInt(p)
	for modulus.Cmp(target) < 0 {
		modulus.Mul(modulus, modulus)
	}

	leaves := henselTree(f, mods, p, modulus)

	// Monicize each leaf; their leading coefficients multiply to lc(f)
	// mod P, so the monic family satisfies f ≡ lc(f)·∏ uᵢ (mod P).
	out = make([]zpoly, len(leaves))
	for i, leaf := range leaves {
		lc := zLC(leaf)
		inv := new(big.Int).ModInverse(lc, modulus)
		out[i] = zMod(zScale(leaf, inv), modulus)
	}

	return out, modulus
}

// henselTree splits the modular factor list in half, lifts the two halves
// as a pair, and recurses into each lifted side.
func henselTree(f zpoly, mods []fpoly, p int64, modulus *big.Int) []zpoly {
	if len(mods) == 1 {
		return []zpoly{zMod(f, modulus)}
	}

	k := len(mods) / 2
	gp := fpoly{zFpLC(f, p)}
	for _, u := range mods[:k] {
		gp = fpMul(gp, u, p)
	}
	hp := fpoly{1}
	for _, u := range mods[k:] {
		hp = fpMul(hp, u, p)
	}
	_, s, t := fpExtGCD(gp, hp, p) // gcd is 1: the halves are coprime mod p

	liftedG, liftedH := henselPair(zMod(f, modulus), toZ(gp), toZ(hp), toZ(s), toZ(t), p, modulus)

	left := henselTree(liftedG, mods[:k], p, modulus)

	return append(left, henselTree(liftedH, mods[k:], p, modulus)...)
}

// zFpLC returns lc(f) mod p as a least nonnegative residue.
func zFpLC(f zpoly, p int64) int64 {
	return new(big.Int).Mod(zLC(f), big.NewInt(p)).Int64()
}
