package curve

import (
	"math/bits"

	"github.com/pkg/errors"

	"github.com/yelhousni/montgomery-m61/fp"
)

// Double returns [2]P.
func (c *Params) Double(p *PointXZ) (PointXZ, error) {
	if err := p.Check(); err != nil {
		return PointXZ{}, errors.WithMessage(err, "double")
	}
	return c.xDBL(p), nil
}

// DifferentialAdd returns P+Q given diff = P-Q (or Q-P, only x matters).
//
// The formula is only meaningful when diff really is the difference of P and
// Q. This is not checked: with an unrelated diff the result is a valid
// projective point that is not P+Q.
func (c *Params) DifferentialAdd(p, q, diff *PointXZ) (PointXZ, error) {
	for _, pt := range []*PointXZ{p, q, diff} {
		if err := pt.Check(); err != nil {
			return PointXZ{}, errors.WithMessage(err, "differential addition")
		}
	}
	return xADD(p, q, diff), nil
}

// ScalarMultiplication returns [k]P with the Montgomery ladder.
//
// The ladder walks the bits of k below the leading one while keeping
// R = [j]P and S = [j+1]P for the prefix j read so far, so S - R = P at every
// step. Each step computes one differential addition and one doubling and
// picks the outputs with a constant-time select on the bit. k = 0 and P = ∞
// give the point at infinity.
//
// The point with x = 0 has order 2 and makes the differential addition
// degenerate, so it is answered directly: P for odd k, ∞ for even k.
func (c *Params) ScalarMultiplication(p *PointXZ, k *fp.Element) (PointXZ, error) {
	if err := p.Check(); err != nil {
		return PointXZ{}, errors.WithMessage(err, "scalar multiplication")
	}
	if err := k.Validate(); err != nil {
		return PointXZ{}, errors.WithMessage(err, "scalar multiplication: scalar")
	}
	n := k.Uint64()
	if n == 0 || p.IsInfinity() {
		return Infinity(), nil
	}
	if p.X.IsZero() {
		if n&1 == 0 {
			return Infinity(), nil
		}
		return *p, nil
	}

	r := *p
	s := c.xDBL(p)

	var in, dbl, sum PointXZ
	for i := bits.Len64(n) - 2; i >= 0; i-- {
		bit := int(n>>uint(i)) & 1

		// bit = 1: R, S = R+S, 2S
		// bit = 0: R, S = 2R, R+S
		sum = xADD(&s, &r, p)
		in.Select(bit, &r, &s)
		dbl = c.xDBL(&in)
		r.Select(bit, &dbl, &sum)
		s.Select(bit, &sum, &dbl)
	}

	return r, nil
}

// ScalarMultX returns the affine x-coordinate of [k]P where P = (x:1).
// It fails with ErrPointAtInfinity when [k]P = ∞.
func (c *Params) ScalarMultX(k, x *fp.Element) (fp.Element, error) {
	if err := x.Validate(); err != nil {
		return fp.Element{}, errors.WithMessage(err, "x-coordinate")
	}
	p := NewPointXZ(*x)
	q, err := c.ScalarMultiplication(&p, k)
	if err != nil {
		return fp.Element{}, err
	}
	return q.AffineX()
}

// ScalarBaseMultX returns the affine x-coordinate of [k]G.
func (c *Params) ScalarBaseMultX(k *fp.Element) (fp.Element, error) {
	return c.ScalarMultX(k, &c.gx)
}

// xDBL computes [2]P in x-only projective coordinates.
//
//	a = X+Z, b = X-Z, aa = a², bb = b²
//	X' = aa·bb
//	e = aa - bb
//	Z' = e·(bb + (A+2)/4·e)
func (c *Params) xDBL(p *PointXZ) PointXZ {
	var sum, diff fp.Element
	sum.Add(&p.X, &p.Z)
	diff.Sub(&p.X, &p.Z)

	var sumSq, diffSq fp.Element
	sumSq.Square(&sum)
	diffSq.Square(&diff)

	var r PointXZ
	r.X.Mul(&sumSq, &diffSq)

	var e, t fp.Element
	e.Sub(&sumSq, &diffSq)
	t.Mul(&c.a24, &e)
	t.Add(&t, &diffSq)
	r.Z.Mul(&e, &t)

	return r
}

// xADD computes P+Q in x-only projective coordinates given D = P-Q.
//
//	da = X_Q - Z_Q, db = X_P + Z_P
//	dc = X_Q + Z_Q, dd = X_P - Z_P
//	e = da·db, f = dc·dd
//	X' = Z_D·(e+f)²
//	Z' = X_D·(e-f)²
func xADD(p, q, d *PointXZ) PointXZ {
	var da, db, dc, dd fp.Element
	da.Sub(&q.X, &q.Z)
	db.Add(&p.X, &p.Z)
	dc.Add(&q.X, &q.Z)
	dd.Sub(&p.X, &p.Z)

	var e, f fp.Element
	e.Mul(&da, &db)
	f.Mul(&dc, &dd)

	var r PointXZ
	r.X.Add(&e, &f)
	r.X.Square(&r.X)
	r.X.Mul(&r.X, &d.Z)

	r.Z.Sub(&e, &f)
	r.Z.Square(&r.Z)
	r.Z.Mul(&r.Z, &d.X)

	return r
}
