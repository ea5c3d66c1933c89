package cartan

import "math/big"

// buildMatrix assembles the generalized Cartan matrix for a validated
// family/rank pair. Rows and columns follow index order, so finite label i
// sits at position i−1 and affine label i at position i.
func buildMatrix(family string, rank int, affine bool) [][]int {
	n := rank
	size, off := n, -1
	if affine {
		size, off = n+1, 0
	}
	a := make([][]int, size)
	for i := range a {
		a[i] = make([]int, size)
		a[i][i] = 2
	}
	bond := func(i, j, aij, aji int) {
		a[i+off][j+off] = aij
		a[j+off][i+off] = aji
	}
	single := func(i, j int) { bond(i, j, -1, -1) }

	// Ã1 is the lone doubly-bonded pair, outside every other pattern.
	if affine && family == "A" && n == 1 {
		bond(0, 1, -2, -2)

		return a
	}

	switch family {
	case "A":
		for i := 1; i < n; i++ {
			single(i, i+1)
		}
	case "B":
		// chain with the double bond into the short root n
		for i := 1; i+1 < n; i++ {
			single(i, i+1)
		}
		bond(n-1, n, -1, -2)
	case "C":
		for i := 1; i+1 < n; i++ {
			single(i, i+1)
		}
		bond(n-1, n, -2, -1)
	case "D":
		// chain 1…n−2, fork to n−1 and n
		for i := 1; i+1 < n-1; i++ {
			single(i, i+1)
		}
		single(n-2, n-1)
		single(n-2, n)
	case "E":
		// Bourbaki: chain 1−3−4−5−…, node 2 hangs off node 4
		single(1, 3)
		single(3, 4)
		single(2, 4)
		for i := 4; i < n; i++ {
			single(i, i+1)
		}
	case "F":
		single(1, 2)
		bond(2, 3, -1, -2)
		single(3, 4)
	case "G":
		bond(1, 2, -3, -1)
	}

	if !affine {
		return a
	}

	// affine node 0 per the extended Dynkin diagram
	switch family {
	case "A":
		single(0, 1)
		single(0, n)
	case "B", "D":
		single(0, 2)
	case "C":
		bond(0, 1, -1, -2)
	case "E":
		switch n {
		case 6:
			single(0, 2)
		case 7:
			single(0, 1)
		default:
			single(0, 8)
		}
	case "F":
		single(0, 1)
	case "G":
		single(0, 2)
	}

	return a
}

// symmetrize computes the minimal positive integer vector d with
// d_i·a_ij = d_j·a_ji. Ratios d_j/d_i = a_ij/a_ji propagate across the
// diagram from an arbitrary seed, then denominators and common factors
// are cleared. Nothing is tabulated, so every family shares one code path.
func symmetrize(a [][]int) []int {
	n := len(a)
	r := make([]*big.Rat, n)
	for start := 0; start < n; start++ {
		if r[start] != nil {
			continue
		}
		r[start] = big.NewRat(1, 1)
		queue := []int{start}
		for len(queue) > 0 {
			i := queue[0]
			queue = queue[1:]
			for j := 0; j < n; j++ {
				if j == i || a[i][j] == 0 || r[j] != nil {
					continue
				}
				r[j] = new(big.Rat).Mul(r[i], big.NewRat(int64(a[i][j]), int64(a[j][i])))
				queue = append(queue, j)
			}
		}
	}

	// clear denominators, then strip the common factor
	lcm := big.NewInt(1)
	g := new(big.Int)
	for _, v := range r {
		g.GCD(nil, nil, lcm, v.Denom())
		lcm.Div(new(big.Int).Mul(lcm, v.Denom()), g)
	}
	vals := make([]*big.Int, n)
	for i, v := range r {
		vals[i] = new(big.Int).Mul(v.Num(), new(big.Int).Div(lcm, v.Denom()))
		if i == 0 {
			g.Set(vals[i])
		} else {
			g.GCD(nil, nil, g, vals[i])
		}
	}
	out := make([]int, n)
	for i, v := range vals {
		out[i] = int(new(big.Int).Div(v, g).Int64())
	}

	return out
}
