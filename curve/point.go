package curve

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/yelhousni/montgomery-m61/fp"
)

// PointXZ represents a point in x-only projective coordinates (X:Z), that is
// the affine x-coordinate X/Z. Z = 0 is the point at infinity.
type PointXZ struct {
	X, Z fp.Element
}

// NewPointXZ returns the point with affine x-coordinate x, as (x:1).
func NewPointXZ(x fp.Element) PointXZ {
	var p PointXZ
	p.X = x
	p.Z.SetOne()
	return p
}

// Infinity returns the point at infinity (1:0).
func Infinity() PointXZ {
	var p PointXZ
	p.X.SetOne()
	return p
}

// IsInfinity returns true if the point is the point at infinity.
func (p *PointXZ) IsInfinity() bool {
	return p.Z.IsZero()
}

// Check returns an error if a coordinate is not a canonical field element or
// if p is (0:0).
func (p *PointXZ) Check() error {
	if err := p.X.Validate(); err != nil {
		return errors.WithMessage(err, "X coordinate")
	}
	if err := p.Z.Validate(); err != nil {
		return errors.WithMessage(err, "Z coordinate")
	}
	if p.X.IsZero() && p.Z.IsZero() {
		return ErrDegeneratePoint
	}
	return nil
}

// Equal reports whether p and q are the same projective point, X_p·Z_q = X_q·Z_p.
func (p *PointXZ) Equal(q *PointXZ) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	var l, r fp.Element
	l.Mul(&p.X, &q.Z)
	r.Mul(&q.X, &p.Z)
	return l.Equal(&r)
}

// AffineX returns X/Z.
func (p *PointXZ) AffineX() (fp.Element, error) {
	if err := p.Check(); err != nil {
		return fp.Element{}, err
	}
	if p.IsInfinity() {
		return fp.Element{}, ErrPointAtInfinity
	}
	var x fp.Element
	x.Inverse(&p.Z)
	x.Mul(&x, &p.X)
	return x, nil
}

// Select is a constant-time conditional move: p = p0 if c == 0, p = p1
// otherwise.
func (p *PointXZ) Select(c int, p0, p1 *PointXZ) *PointXZ {
	p.X.Select(c, &p0.X, &p1.X)
	p.Z.Select(c, &p0.Z, &p1.Z)
	return p
}

// String returns "(X:Z)" in decimal.
func (p PointXZ) String() string {
	return fmt.Sprintf("(%s:%s)", p.X, p.Z)
}
