package laurent

import (
	"math/big"
	"sort"
)

// fpoly is a dense polynomial over F_p in ascending coefficient order,
// trimmed, with every coefficient in [0, p). p stays small (the first prime
// keeping the squarefree input squarefree), so int64 arithmetic suffices.
type fpoly []int64

func fpTrim(f fpoly) fpoly {
	n := len(f)
	for n > 0 && f[n-1] == 0 {
		n--
	}

	return f[:n]
}

func fpDeg(f fpoly) int { return len(f) - 1 }

func fpClone(f fpoly) fpoly {
	out := make(fpoly, len(f))
	copy(out, f)

	return out
}

// fpFromZ reduces an integer polynomial mod p.
func fpFromZ(f zpoly, p int64) fpoly {
	bp := big.NewInt(p)
	tmp := new(big.Int)
	out := make(fpoly, len(f))
	for i, c := range f {
		out[i] = tmp.Mod(c, bp).Int64()
	}

	return fpTrim(out)
}

func fpAdd(a, b fpoly, p int64) fpoly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(fpoly, n)
	for i := range out {
		var v int64
		if i < len(a) {
			v = a[i]
		}
		if i < len(b) {
			v += b[i]
		}
		out[i] = v % p
	}

	return fpTrim(out)
}

func fpSub(a, b fpoly, p int64) fpoly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(fpoly, n)
	for i := range out {
		var v int64
		if i < len(a) {
			v = a[i]
		}
		if i < len(b) {
			v -= b[i]
		}
		out[i] = ((v % p) + p) % p
	}

	return fpTrim(out)
}

func fpScale(f fpoly, k, p int64) fpoly {
	k = ((k % p) + p) % p
	if k == 0 {
		return nil
	}
	out := make(fpoly, len(f))
	for i, c := range f {
		out[i] = c * k % p
	}

	return fpTrim(out)
}

func fpMul(a, b fpoly, p int64) fpoly {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make(fpoly, len(a)+len(b)-1)
	for i, x := range a {
		if x == 0 {
			continue
		}
		for j, y := range b {
			out[i+j] = (out[i+j] + x*y) % p
		}
	}

	return fpTrim(out)
}

// fpInv returns a^-1 mod p via Fermat (p prime, a != 0 mod p).
func fpInv(a, p int64) int64 {
	a = ((a % p) + p) % p
	out, e := int64(1), p-2
	for e > 0 {
		if e&1 == 1 {
			out = out * a % p
		}
		a = a * a % p
		e >>= 1
	}

	return out
}

// fpDivMod divides a by b (b != 0) returning quotient and remainder.
func fpDivMod(a, b fpoly, p int64) (quo, rem fpoly) {
	b = fpTrim(b)
	if len(b) == 0 {
		panic("laurent: fpDivMod: division by zero polynomial")
	}
	rem = fpClone(fpTrim(a))
	if fpDeg(rem) < fpDeg(b) {
		return nil, rem
	}
	quo = make(fpoly, fpDeg(rem)-fpDeg(b)+1)
	inv := fpInv(b[len(b)-1], p)
	for fpDeg(rem) >= fpDeg(b) && len(rem) > 0 {
		shift := fpDeg(rem) - fpDeg(b)
		c := rem[len(rem)-1] * inv % p
		quo[shift] = c
		for j, bc := range b {
			rem[shift+j] = ((rem[shift+j]-c*bc%p)%p + p) % p
		}
		rem = fpTrim(rem)
	}

	return fpTrim(quo), rem
}

// fpMonic scales f to leading coefficient 1.
func fpMonic(f fpoly, p int64) fpoly {
	f = fpTrim(f)
	if len(f) == 0 || f[len(f)-1] == 1 {
		return fpClone(f)
	}

	return fpScale(f, fpInv(f[len(f)-1], p), p)
}

// fpGCD returns the monic gcd of a and b.
func fpGCD(a, b fpoly, p int64) fpoly {
	a, b = fpClone(fpTrim(a)), fpClone(fpTrim(b))
	for len(b) > 0 {
		_, r := fpDivMod(a, b, p)
		a, b = b, r
	}

	return fpMonic(a, p)
}

// fpExtGCD returns monic g = gcd(a,b) and s, t with s·a + t·b = g.
// When a, b are coprime the Bézout pair is normalized to deg s < deg b,
// deg t < deg a, the shape Hensel lifting starts from.
func fpExtGCD(a, b fpoly, p int64) (g, s, t fpoly) {
	r0, r1 := fpClone(fpTrim(a)), fpClone(fpTrim(b))
	s0, s1 := fpoly{1}, fpoly(nil)
	t0, t1 := fpoly(nil), fpoly{1}
	for len(r1) > 0 {
		q, r := fpDivMod(r0, r1, p)
		r0, r1 = r1, r
		s0, s1 = s1, fpSub(s0, fpMul(q, s1, p), p)
		t0, t1 = t1, fpSub(t0, fpMul(q, t1, p), p)
	}
	// normalize to monic gcd
	if len(r0) > 0 && r0[len(r0)-1] != 1 {
		inv := fpInv(r0[len(r0)-1], p)
		r0 = fpScale(r0, inv, p)
		s0 = fpScale(s0, inv, p)
		t0 = fpScale(t0, inv, p)
	}
	// reduce s below b, folding the quotient into t: s·a + t·b stays fixed
	if len(b) > 0 && fpDeg(s0) >= fpDeg(fpTrim(b)) {
		q, r := fpDivMod(s0, b, p)
		s0 = r
		t0 = fpAdd(t0, fpMul(q, a, p), p)
	}

	return r0, s0, t0
}

// fpDerivative returns f'.
func fpDerivative(f fpoly, p int64) fpoly {
	if len(f) <= 1 {
		return nil
	}
	out := make(fpoly, len(f)-1)
	for i := 1; i < len(f); i++ {
		out[i-1] = int64(i) % p * f[i] % p
	}

	return fpTrim(out)
}

// fpXPowP returns x^p mod f by square-and-multiply.
func fpXPowP(f fpoly, p int64) fpoly {
	out := fpoly{1}
	base := fpoly{0, 1}
	if fpDeg(f) <= 1 {
		_, out = fpDivMod(base, f, p)
		return out
	}
	e := p
	for e > 0 {
		if e&1 == 1 {
			_, out = fpDivMod(fpMul(out, base, p), f, p)
		}
		e >>= 1
		if e > 0 {
			_, base = fpDivMod(fpMul(base, base, p), f, p)
		}
	}

	return out
}

// berlekamp factors a monic squarefree f over F_p into monic irreducible
// factors, deterministically: the Frobenius fixed space is computed by
// Gaussian elimination and splitting gcds scan c = 0..p−1 in order.
func berlekamp(f fpoly, p int64) []fpoly {
	f = fpMonic(f, p)
	d := fpDeg(f)
	if d <= 1 {
		return []fpoly{f}
	}

	// Frobenius matrix: row i holds x^(i·p) mod f.
	xp := fpXPowP(f, p)
	rows := make([]fpoly, d)
	rows[0] = fpoly{1}
	for i := 1; i < d; i++ {
		_, rows[i] = fpDivMod(fpMul(rows[i-1], xp, p), f, p)
	}

	// Nullspace of (Qᵀ − I): vectors v with (Σ vᵢ x^(ip)) ≡ Σ vᵢ xᵢ mod f.
	m := make([][]int64, d)
	for j := 0; j < d; j++ {
		m[j] = make([]int64, d)
		for i := 0; i < d; i++ {
			var qij int64
			if j < len(rows[i]) {
				qij = rows[i][j]
			}
			if i == j {
				qij = ((qij-1)%p + p) % p
			}
			m[j][i] = qij
		}
	}
	basis := fpNullspace(m, p)

	// Split with each fixed-space element until the factor count matches
	// the nullity (= number of irreducible factors).
	factors := []fpoly{fpClone(f)}
	for _, v := range basis {
		if len(factors) == len(basis) {
			break
		}
		h := fpTrim(fpoly(v))
		if fpDeg(h) < 1 {
			continue // the constant vector never splits anything
		}
		next := factors[:0:0]
		for _, u := range factors {
			if fpDeg(u) <= 1 {
				next = append(next, u)
				continue
			}
			parts := fpSplitOne(u, h, p)
			next = append(next, parts...)
		}
		factors = next
	}

	sort.Slice(factors, func(i, j int) bool { return fpLess(factors[i], factors[j]) })

	return factors
}

// fpSplitOne splits u with gcd(u, h−c) over all residues c.
func fpSplitOne(u, h fpoly, p int64) []fpoly {
	out := []fpoly{u}
	for c := int64(0); c < p; c++ {
		next := out[:0:0]
		for _, w := range out {
			if fpDeg(w) <= 1 {
				next = append(next, w)
				continue
			}
			hc := fpSub(h, fpoly{c}, p)
			g := fpGCD(w, hc, p)
			if fpDeg(g) > 0 && fpDeg(g) < fpDeg(w) {
				q, _ := fpDivMod(w, g, p)
				next = append(next, g, fpMonic(q, p))
			} else {
				next = append(next, w)
			}
		}
		out = next
	}

	return out
}

// fpNullspace returns a basis of {v : M·v = 0} over F_p.
func fpNullspace(m [][]int64, p int64) [][]int64 {
	n := len(m)
	pivotOfCol := make([]int, n)
	for i := range pivotOfCol {
		pivotOfCol[i] = -1
	}
	row := 0
	for col := 0; col < n && row < n; col++ {
		// find pivot
		pr := -1
		for r := row; r < n; r++ {
			if m[r][col] != 0 {
				pr = r
				break
			}
		}
		if pr < 0 {
			continue
		}
		m[row], m[pr] = m[pr], m[row]
		inv := fpInv(m[row][col], p)
		for j := 0; j < n; j++ {
			m[row][j] = m[row][j] * inv % p
		}
		for r := 0; r < n; r++ {
			if r == row || m[r][col] == 0 {
				continue
			}
			c := m[r][col]
			for j := 0; j < n; j++ {
				m[r][j] = ((m[r][j]-c*m[row][j]%p)%p + p) % p
			}
		}
		pivotOfCol[col] = row
		row++
	}

	var basis [][]int64
	for col := 0; col < n; col++ {
		if pivotOfCol[col] >= 0 {
			continue
		}
		v := make([]int64, n)
		v[col] = 1
		for c2 := 0; c2 < n; c2++ {
			if r := pivotOfCol[c2]; r >= 0 {
				v[c2] = (p - m[r][col]) % p
			}
		}
		basis = append(basis, v)
	}

	return basis
}

func fpLess(a, b fpoly) bool {
	if fpDeg(a) != fpDeg(b) {
		return fpDeg(a) < fpDeg(b)
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}
