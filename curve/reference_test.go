package curve

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/leanovate/gopter"

	"github.com/yelhousni/montgomery-m61/fp"
)

// affine is a full affine point used by the slow reference implementation.
type affine struct {
	x, y big.Int
	inf  bool
}

// refCurve implements the affine group law on B·y² = x³ + A·x² + x with
// math/big. It is the independent oracle for the x-only ladder.
type refCurve struct {
	p, a, b big.Int
}

func newRefCurve(c *Params) *refCurve {
	var r refCurve
	r.p.SetUint64(fp.Modulus)
	a, b := c.A(), c.B()
	r.a.SetUint64(a.Uint64())
	r.b.SetUint64(b.Uint64())
	return &r
}

func (r *refCurve) generator(c *Params) affine {
	gx, gy := c.GeneratorAffine()
	var g affine
	g.x.SetUint64(gx.Uint64())
	g.y.SetUint64(gy.Uint64())
	return g
}

func (r *refCurve) inverse(x *big.Int) *big.Int {
	return new(big.Int).ModInverse(x, &r.p)
}

func (r *refCurve) neg(q affine) affine {
	var n affine
	n.inf = q.inf
	n.x.Set(&q.x)
	n.y.Neg(&q.y)
	n.y.Mod(&n.y, &r.p)
	return n
}

func (r *refCurve) add(p, q affine) affine {
	if p.inf {
		return q
	}
	if q.inf {
		return p
	}

	var lambda, num, den big.Int
	if p.x.Cmp(&q.x) == 0 {
		var s big.Int
		s.Add(&p.y, &q.y)
		s.Mod(&s, &r.p)
		if s.Sign() == 0 {
			return affine{inf: true}
		}
		// λ = (3x² + 2Ax + 1) / (2By)
		num.Mul(&p.x, &p.x)
		num.Mul(&num, big.NewInt(3))
		var t big.Int
		t.Mul(&r.a, &p.x)
		t.Lsh(&t, 1)
		num.Add(&num, &t)
		num.Add(&num, big.NewInt(1))
		den.Mul(&r.b, &p.y)
		den.Lsh(&den, 1)
	} else {
		// λ = (y_Q - y_P) / (x_Q - x_P)
		num.Sub(&q.y, &p.y)
		den.Sub(&q.x, &p.x)
	}
	den.Mod(&den, &r.p)
	lambda.Mul(&num, r.inverse(&den))
	lambda.Mod(&lambda, &r.p)

	// x₃ = Bλ² - A - x_P - x_Q, y₃ = λ(x_P - x₃) - y_P
	var res affine
	res.x.Mul(&lambda, &lambda)
	res.x.Mul(&res.x, &r.b)
	res.x.Sub(&res.x, &r.a)
	res.x.Sub(&res.x, &p.x)
	res.x.Sub(&res.x, &q.x)
	res.x.Mod(&res.x, &r.p)

	res.y.Sub(&p.x, &res.x)
	res.y.Mul(&res.y, &lambda)
	res.y.Sub(&res.y, &p.y)
	res.y.Mod(&res.y, &r.p)

	return res
}

// scalarMul is a signed-digit double-and-add over the NAF of k.
func (r *refCurve) scalarMul(q affine, k uint64) affine {
	var naf [66]int8
	n := ecc.NafDecomposition(new(big.Int).SetUint64(k), naf[:])

	qNeg := r.neg(q)
	res := affine{inf: true}
	for i := n - 1; i >= 0; i-- {
		res = r.add(res, res)
		switch naf[i] {
		case 1:
			res = r.add(res, q)
		case -1:
			res = r.add(res, qNeg)
		}
	}
	return res
}

// liftX returns a point with x-coordinate x, or false if x is on the twist.
func (r *refCurve) liftX(x *big.Int) (affine, bool) {
	// y² = (x³ + Ax² + x) / B
	var rhs, t big.Int
	rhs.Add(x, &r.a)
	rhs.Mul(&rhs, x)
	rhs.Add(&rhs, big.NewInt(1))
	rhs.Mul(&rhs, x)
	rhs.Mul(&rhs, r.inverse(&r.b))
	rhs.Mod(&rhs, &r.p)
	if t.ModSqrt(&rhs, &r.p) == nil {
		return affine{}, false
	}
	var q affine
	q.x.Set(x)
	q.y.Set(&t)
	return q, true
}

func (r *refCurve) x(q affine) fp.Element {
	return fp.NewElement(q.x.Uint64())
}

// GenScalar generates a field element used as a scalar.
func GenScalar() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		v := genParams.Rng.Uint64() & fp.Modulus
		if genParams.Rng.Intn(4) == 0 {
			v &= 0xffff
		}
		return gopter.NewGenResult(fp.NewElement(v), gopter.NoShrinker)
	}
}

// GenPoint generates an affine point of the m61 curve, not necessarily in the
// subgroup generated by G.
func GenPoint(r *refCurve) gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		for {
			var x big.Int
			x.SetUint64(genParams.Rng.Uint64() % fp.Modulus)
			if q, ok := r.liftX(&x); ok && x.Sign() != 0 {
				return gopter.NewGenResult(q, gopter.NoShrinker)
			}
		}
	}
}
