package laurent

import "math/big"

// zpoly is a dense polynomial over ℤ in ascending coefficient order,
// trimmed (nil/empty = zero). It is the workhorse representation of the
// factorization engine: ordinary polynomials only, the Laurent q-power
// having been split off beforehand.
type zpoly []*big.Int

func zTrim(f zpoly) zpoly {
	n := len(f)
	for n > 0 && f[n-1].Sign() == 0 {
		n--
	}

	return f[:n]
}

func zDeg(f zpoly) int { return len(f) - 1 }

func zClone(f zpoly) zpoly {
	out := make(zpoly, len(f))
	for i, c := range f {
		out[i] = new(big.Int).Set(c)
	}

	return out
}

func zLC(f zpoly) *big.Int {
	if len(f) == 0 {
		return new(big.Int)
	}

	return f[len(f)-1]
}

func zAdd(a, b zpoly) zpoly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(zpoly, n)
	for i := range out {
		out[i] = new(big.Int)
		if i < len(a) {
			out[i].Set(a[i])
		}
		if i < len(b) {
			out[i].Add(out[i], b[i])
		}
	}

	return zTrim(out)
}

func zSub(a, b zpoly) zpoly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(zpoly, n)
	for i := range out {
		out[i] = new(big.Int)
		if i < len(a) {
			out[i].Set(a[i])
		}
		if i < len(b) {
			out[i].Sub(out[i], b[i])
		}
	}

	return zTrim(out)
}

func zScale(f zpoly, k *big.Int) zpoly {
	if k.Sign() == 0 {
		return nil
	}
	out := make(zpoly, len(f))
	for i, c := range f {
		out[i] = new(big.Int).Mul(c, k)
	}

	return out
}

func zMul(a, b zpoly) zpoly {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make(zpoly, len(a)+len(b)-1)
	for i := range out {
		out[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i, x := range a {
		if x.Sign() == 0 {
			continue
		}
		for j, y := range b {
			if y.Sign() == 0 {
				continue
			}
			out[i+j].Add(out[i+j], tmp.Mul(x, y))
		}
	}

	return zTrim(out)
}

func zDerivative(f zpoly) zpoly {
	if len(f) <= 1 {
		return nil
	}
	out := make(zpoly, len(f)-1)
	for i := 1; i < len(f); i++ {
		out[i-1] = new(big.Int).Mul(f[i], big.NewInt(int64(i)))
	}

	return zTrim(out)
}

// zContent returns the nonnegative gcd of all coefficients (0 for zero).
func zContent(f zpoly) *big.Int {
	g := new(big.Int)
	for _, c := range f {
		g.GCD(nil, nil, g, new(big.Int).Abs(c))
		if g.Cmp(bigOne) == 0 {
			break
		}
	}

	return g
}

// zPrimitive splits f = cont·pp with pp primitive and lc(pp) > 0; the sign
// of f's leading coefficient travels with cont.
func zPrimitive(f zpoly) (pp zpoly, cont *big.Int) {
	f = zTrim(f)
	if len(f) == 0 {
		return nil, new(big.Int)
	}
	cont = zContent(f)
	if zLC(f).Sign() < 0 {
		cont.Neg(cont)
	}
	pp = make(zpoly, len(f))
	for i, c := range f {
		pp[i] = new(big.Int).Quo(c, cont)
	}

	return pp, cont
}

// zDivExact divides f by g over ℤ, reporting ok=false when the division is
// not exact (either a leading coefficient fails to divide or a remainder
// survives). Exactness is precisely the test Zassenhaus recombination needs.
func zDivExact(f, g zpoly) (zpoly, bool) {
	f, g = zTrim(f), zTrim(g)
	if len(g) == 0 {
		return nil, false
	}
	if len(f) == 0 {
		return nil, true
	}
	if zDeg(f) < zDeg(g) {
		return nil, false
	}

	rem := zClone(f)
	quo := make(zpoly, zDeg(f)-zDeg(g)+1)
	for i := range quo {
		quo[i] = new(big.Int)
	}
	lc := zLC(g)
	tmp, r := new(big.Int), new(big.Int)
	for zDeg(rem) >= zDeg(g) && len(rem) > 0 {
		shift := zDeg(rem) - zDeg(g)
		tmp.QuoRem(zLC(rem), lc, r)
		if r.Sign() != 0 {
			return nil, false
		}
		quo[shift].Set(tmp)
		// rem -= tmp · x^shift · g
		prod := new(big.Int)
		for j, gc := range g {
			rem[shift+j].Sub(rem[shift+j], prod.Mul(tmp, gc))
		}
		rem = zTrim(rem)
	}
	if len(rem) != 0 {
		return nil, false
	}

	return zTrim(quo), true
}

// zPseudoRem returns a pseudo-remainder of f modulo g: some power of
// lc(g) times f, reduced until its degree drops below deg g. The primitive
// PRS takes the primitive part right after, so the exact power is moot.
func zPseudoRem(f, g zpoly) zpoly {
	f, g = zTrim(f), zTrim(g)
	if len(g) == 0 {
		panic("laurent: zPseudoRem: division by zero polynomial")
	}
	if zDeg(f) < zDeg(g) {
		return zClone(f)
	}

	rem := zClone(f)
	lc := zLC(g)
	for zDeg(rem) >= zDeg(g) && len(rem) > 0 {
		shift := zDeg(rem) - zDeg(g)
		lead := new(big.Int).Set(zLC(rem))
		rem = zScale(rem, lc)
		prod := new(big.Int)
		for j, gc := range g {
			rem[shift+j].Sub(rem[shift+j], prod.Mul(lead, gc))
		}
		rem = zTrim(rem)
	}

	return rem
}

// zGCD returns the primitive gcd of f and g with positive leading
// coefficient (primitive pseudo-remainder sequence). gcd(0, g) = pp(g).
func zGCD(f, g zpoly) zpoly {
	a, _ := zPrimitive(f)
	b, _ := zPrimitive(g)
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	if zDeg(a) < zDeg(b) {
		a, b = b, a
	}
	for len(b) > 0 {
		r := zPseudoRem(a, b)
		a = b
		b, _ = zPrimitive(r)
	}

	return a
}

// zNorm2Sq returns Σ cᵢ², the squared 2-norm used by the Mignotte bound.
func zNorm2Sq(f zpoly) *big.Int {
	sum := new(big.Int)
	tmp := new(big.Int)
	for _, c := range f {
		sum.Add(sum, tmp.Mul(c, c))
	}

	return sum
}

// --- arithmetic modulo a big modulus (Hensel lifting domain) ---

// zMod reduces every coefficient into [0, m).
func zMod(f zpoly, m *big.Int) zpoly {
	out := make(zpoly, len(f))
	for i, c := range f {
		out[i] = new(big.Int).Mod(c, m)
	}

	return zTrim(out)
}

// zSymMod reduces every coefficient into the symmetric range (−m/2, m/2].
func zSymMod(f zpoly, m *big.Int) zpoly {
	half := new(big.Int).Rsh(m, 1)
	out := make(zpoly, len(f))
	for i, c := range f {
		r := new(big.Int).Mod(c, m)
		if r.Cmp(half) > 0 {
			r.Sub(r, m)
		}
		out[i] = r
	}

	return zTrim(out)
}

func zAddMod(a, b zpoly, m *big.Int) zpoly { return zMod(zAdd(a, b), m) }

func zSubMod(a, b zpoly, m *big.Int) zpoly { return zMod(zSub(a, b), m) }

func zMulMod(a, b zpoly, m *big.Int) zpoly { return zMod(zMul(a, b), m) }

// zDivModMonic divides a by a monic b in (ℤ/m)[x]; b's stored leading
// coefficient must be exactly 1 (the Hensel lift maintains this).
func zDivModMonic(a, b zpoly, m *big.Int) (quo, rem zpoly) {
	if len(b) == 0 || b[len(b)-1].Cmp(bigOne) != 0 {
		panic("laurent: zDivModMonic: divisor not monic")
	}
	rem = zMod(a, m)
	if zDeg(rem) < zDeg(b) {
		return nil, rem
	}
	quo = make(zpoly, zDeg(rem)-zDeg(b)+1)
	for i := range quo {
		quo[i] = new(big.Int)
	}
	prod := new(big.Int)
	for zDeg(rem) >= zDeg(b) && len(rem) > 0 {
		shift := zDeg(rem) - zDeg(b)
		lead := new(big.Int).Set(zLC(rem))
		quo[shift].Set(lead)
		for j, bc := range b {
			rem[shift+j].Sub(rem[shift+j], prod.Mul(lead, bc))
			rem[shift+j].Mod(rem[shift+j], m)
		}
		rem = zTrim(rem)
	}

	return zTrim(quo), zMod(rem, m)
}
