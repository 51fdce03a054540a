// Package curve implements x-only arithmetic on Montgomery curves
//
//	B·y² = x³ + A·x² + x
//
// over GF(2^61 - 1), in projective (X:Z) coordinates.
//
// Points carry no y-coordinate: doubling and differential addition only need
// x, and the Montgomery ladder built on them computes x([k]P) from x(P). Curve
// parameters are immutable once built and are passed explicitly through a
// *Params receiver, so every operation is a pure function of its arguments and
// safe for concurrent use.
package curve

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/yelhousni/montgomery-m61/fp"
)

var (
	// ErrSingularCurve is returned for B = 0 or A = ±2.
	ErrSingularCurve = errors.New("singular Montgomery curve")
	// ErrNotOnCurve is returned when the generator does not satisfy the curve
	// equation.
	ErrNotOnCurve = errors.New("point is not on the curve")
	// ErrInvalidOrder is returned for a zero generator order.
	ErrInvalidOrder = errors.New("invalid generator order")
	// ErrDegeneratePoint is returned for (0:0), which is not a projective point.
	ErrDegeneratePoint = errors.New("degenerate projective point (0:0)")
	// ErrPointAtInfinity is returned when the affine x-coordinate of the point
	// at infinity is requested.
	ErrPointAtInfinity = errors.New("point at infinity has no affine x-coordinate")
)

// Params holds a Montgomery curve, a generator and its order.
type Params struct {
	a, b   fp.Element
	gx, gy fp.Element
	order  uint64

	a24 fp.Element // (A+2)/4
}

// NewParams checks the curve coefficients and the generator and precomputes
// the doubling constant (A+2)/4.
func NewParams(a, b, gx, gy fp.Element, order uint64) (*Params, error) {
	for _, e := range []struct {
		name string
		v    *fp.Element
	}{
		{"coefficient A", &a},
		{"coefficient B", &b},
		{"generator x", &gx},
		{"generator y", &gy},
	} {
		if err := e.v.Validate(); err != nil {
			return nil, errors.WithMessage(err, e.name)
		}
	}

	if b.IsZero() {
		return nil, errors.Wrap(ErrSingularCurve, "B = 0")
	}
	two := fp.NewElement(2)
	var minusTwo fp.Element
	minusTwo.Neg(&two)
	if a.Equal(&two) || a.Equal(&minusTwo) {
		return nil, errors.Wrapf(ErrSingularCurve, "A = %s", a.String())
	}
	if order == 0 {
		return nil, ErrInvalidOrder
	}

	c := &Params{a: a, b: b, gx: gx, gy: gy, order: order}
	if !c.IsOnCurve(&gx, &gy) {
		return nil, errors.Wrapf(ErrNotOnCurve, "generator (%s, %s)", gx.String(), gy.String())
	}

	var four fp.Element
	four.SetUint64(4)
	four.Inverse(&four)
	c.a24.Add(&a, &two)
	c.a24.Mul(&c.a24, &four)

	return c, nil
}

// A returns the curve coefficient A.
func (c *Params) A() fp.Element { return c.a }

// B returns the curve coefficient B.
func (c *Params) B() fp.Element { return c.b }

// A24 returns the doubling constant (A+2)/4.
func (c *Params) A24() fp.Element { return c.a24 }

// Order returns the order of the generator.
func (c *Params) Order() uint64 { return c.order }

// GeneratorAffine returns the affine coordinates of the generator.
func (c *Params) GeneratorAffine() (x, y fp.Element) { return c.gx, c.gy }

// Generator returns the generator as (Gx:1).
func (c *Params) Generator() PointXZ {
	return NewPointXZ(c.gx)
}

// IsOnCurve reports whether (x, y) satisfies B·y² = x³ + A·x² + x.
func (c *Params) IsOnCurve(x, y *fp.Element) bool {
	if !x.IsValid() || !y.IsValid() {
		return false
	}
	var lhs, rhs fp.Element
	lhs.Square(y)
	lhs.Mul(&lhs, &c.b)

	// x³ + A·x² + x = x·(x·(x + A) + 1)
	var one fp.Element
	one.SetOne()
	rhs.Add(x, &c.a)
	rhs.Mul(&rhs, x)
	rhs.Add(&rhs, &one)
	rhs.Mul(&rhs, x)

	return lhs.Equal(&rhs)
}

var (
	defaultOnce   sync.Once
	defaultParams Params
)

// Default returns the m61 curve:
//
//	A     = 798026816538591017
//	B     = 1
//	G     = (576568326687948115, 2075987454224306306)
//	order = 576460752315733303
//
// The value is a copy; the shared instance is never modified.
func Default() Params {
	defaultOnce.Do(func() {
		c, err := NewParams(
			fp.Element{High: 371610194, Low: 1493483305},
			fp.Element{High: 0, Low: 1},
			fp.Element{High: 268485549, Low: 486145363},
			fp.Element{High: 966706990, Low: 792006786},
			576460752315733303, // 268435456·2^31 + 12309815
		)
		if err != nil {
			panic(err)
		}
		defaultParams = *c
	})
	return defaultParams
}
