// Package fp implements arithmetic in GF(p), p = 2^61 - 1.
//
// An Element is held as two 31-bit limbs (High, Low) so that every
// intermediate product fits a uint64 without a wider integer type. The zero
// value is the field element 0.
//
// Operations follow the receiver convention z.Op(x, y) *Element: operands are
// only read, the result is written to z and z is returned, so z may alias x or
// y. Every operand is validated on entry; a non-canonical operand (value >= p
// or a limb with bit 31 set) aborts the operation with a panic carrying a
// *RangeError. Use Validate to check untrusted elements first.
package fp

import (
	"math/bits"

	"github.com/yelhousni/montgomery-m61/limb"
)

const (
	// Modulus is p = 2^61 - 1.
	Modulus uint64 = 1<<61 - 1
	// Bits is the bit length of Modulus.
	Bits = 61

	modHigh limb.Limb = 1073741823 // p >> 31
	modLow  limb.Limb = 2147483647 // p & (2^31 - 1)
)

// Element is a field element High·2^31 + Low.
type Element struct {
	High, Low limb.Limb
}

// prime is the modulus in limb form. It is not a member of the field.
var prime = Element{High: modHigh, Low: modLow}

// Prime returns the modulus p in limb form. It is not a valid element.
func Prime() Element {
	return prime
}

// NewElement returns v mod p.
func NewElement(v uint64) Element {
	var z Element
	z.SetUint64(v)
	return z
}

// SetUint64 sets z to v mod p and returns z.
func (z *Element) SetUint64(v uint64) *Element {
	z.setRaw(v % Modulus)
	return z
}

// Uint64 returns the value of z as an integer in [0, p).
func (z *Element) Uint64() uint64 {
	mustBeValid("Uint64", z)
	return z.raw()
}

// SetZero sets z to 0 and returns z.
func (z *Element) SetZero() *Element {
	*z = Element{}
	return z
}

// SetOne sets z to 1 and returns z.
func (z *Element) SetOne() *Element {
	*z = Element{Low: 1}
	return z
}

// Set sets z to x and returns z.
func (z *Element) Set(x *Element) *Element {
	*z = *x
	return z
}

// IsZero reports whether z == 0.
func (z *Element) IsZero() bool {
	return z.High|z.Low == 0
}

// IsOne reports whether z == 1.
func (z *Element) IsOne() bool {
	return z.High == 0 && z.Low == 1
}

// Equal reports whether z and x hold the same limbs.
func (z *Element) Equal(x *Element) bool {
	return z.High == x.High && z.Low == x.Low
}

// Cmp compares z and x lexicographically on (High, Low), which is the
// numeric order for elements with canonical limbs, and returns
//
//	-1 if z <  x
//	 0 if z == x
//	+1 if z >  x
func (z *Element) Cmp(x *Element) int {
	switch {
	case z.High < x.High:
		return -1
	case z.High > x.High:
		return 1
	case z.Low < x.Low:
		return -1
	case z.Low > x.Low:
		return 1
	}
	return 0
}

// IsValid reports whether z holds a canonical element, that is both limbs
// fit 31 bits and z < p.
func (z *Element) IsValid() bool {
	return limb.IsValid(z.High) && limb.IsValid(z.Low) && z.Cmp(&prime) < 0
}

// Validate returns a *RangeError wrapping ErrOutOfRange if z is not a
// canonical element.
func (z *Element) Validate() error {
	if !z.IsValid() {
		return &RangeError{Op: "Validate", Value: *z}
	}
	return nil
}

// Add sets z = x + y mod p and returns z.
func (z *Element) Add(x, y *Element) *Element {
	mustBeValid("Add", x)
	mustBeValid("Add", y)
	*z = add(*x, *y)
	return z
}

// Double sets z = 2x mod p and returns z.
func (z *Element) Double(x *Element) *Element {
	mustBeValid("Double", x)
	*z = add(*x, *x)
	return z
}

// Sub sets z = x - y mod p and returns z.
func (z *Element) Sub(x, y *Element) *Element {
	mustBeValid("Sub", x)
	mustBeValid("Sub", y)
	*z = sub(*x, *y)
	return z
}

// Neg sets z = -x mod p and returns z.
func (z *Element) Neg(x *Element) *Element {
	mustBeValid("Neg", x)
	*z = sub(Element{}, *x)
	return z
}

// Mul sets z = x·y mod p and returns z.
func (z *Element) Mul(x, y *Element) *Element {
	mustBeValid("Mul", x)
	mustBeValid("Mul", y)
	*z = mul(x.raw(), y.raw())
	return z
}

// Square sets z = x² mod p and returns z.
func (z *Element) Square(x *Element) *Element {
	mustBeValid("Square", x)
	v := x.raw()
	*z = mul(v, v)
	return z
}

// Exp sets z = x^e mod p and returns z. The running time depends on the bit
// length of e only.
func (z *Element) Exp(x *Element, e uint64) *Element {
	mustBeValid("Exp", x)
	base := x.raw()
	res := Element{Low: 1}
	for i := bits.Len64(e) - 1; i >= 0; i-- {
		v := res.raw()
		res = mul(v, v)
		t := mul(res.raw(), base)
		res = selectElement(limb.Limb(e>>uint(i))&1, t, res)
	}
	*z = res
	return z
}

// Inverse sets z = x^(p-2) mod p, the multiplicative inverse of x, and
// returns z. The inverse of 0 is 0.
func (z *Element) Inverse(x *Element) *Element {
	return z.Exp(x, Modulus-2)
}

// Select is a constant-time conditional move: z = x0 if c == 0, z = x1
// otherwise.
func (z *Element) Select(c int, x0, x1 *Element) *Element {
	// all ones when c != 0
	nz := limb.Limb((int64(c) | -int64(c)) >> 63)
	*z = selectElement(nz&1, *x1, *x0)
	return z
}

func (z *Element) raw() uint64 {
	return uint64(z.High)<<limb.Bits | uint64(z.Low)
}

// setRaw splits v < 2^62 into limbs.
func (z *Element) setRaw(v uint64) {
	z.High = limb.Limb(v >> limb.Bits)
	z.Low = limb.Limb(v) & limb.Mask
}

// add returns x + y mod p for x < p and y <= p.
func add(x, y Element) Element {
	lo, carry := limb.AddWithCarry(x.Low, y.Low)
	// High limbs are at most 2^30 - 1, the sum and the carry stay below 2^31.
	hi := limb.Add(limb.Add(x.High, y.High), carry)
	return reduceOnce(Element{High: hi, Low: lo})
}

// sub returns x - y mod p as x + (p - y).
func sub(x, y Element) Element {
	// y < p, so neither limb subtraction of p - y borrows out of High.
	lo, borrow := limb.SubWithBorrow(modLow, y.Low)
	hi := limb.Sub(limb.Sub(modHigh, y.High), borrow)
	return add(x, Element{High: hi, Low: lo})
}

// reduceOnce maps r in [0, 2p) to [0, p) with a single conditional
// subtraction of p.
func reduceOnce(r Element) Element {
	lo, b0 := limb.SubWithBorrow(r.Low, modLow)
	hi, b1 := limb.SubWithBorrow(r.High, modHigh)
	hi, b2 := limb.SubWithBorrow(hi, b0)
	// a final borrow means r < p already
	return selectElement(b1|b2, r, Element{High: hi, Low: lo})
}

// selectElement returns a if bit == 1 and b if bit == 0.
func selectElement(bit limb.Limb, a, b Element) Element {
	mask := -bit
	return Element{
		High: b.High ^ (mask & (a.High ^ b.High)),
		Low:  b.Low ^ (mask & (a.Low ^ b.Low)),
	}
}

// mul returns a·b mod p for a, b < p.
//
// With a = aH·2^31 + aL and b = bH·2^31 + bL the product is
// h·2^62 + m·2^31 + l where h = aH·bH, l = aL·bL and
// m = (aH+aL)(bH+bL) - h - l. Since 2^62 ≡ 2 mod p, the high half of m and
// all of h fold back as 2h, leaving l + 2h + (m mod 2^31)·2^31 < 2^64.
func mul(a, b uint64) Element {
	const mask = uint64(limb.Mask)

	aH, aL := a>>limb.Bits, a&mask
	bH, bL := b>>limb.Bits, b&mask

	h := aH * bH
	l := aL * bL
	m := (aH+aL)*(bH+bL) - h - l

	h += m >> limb.Bits
	r := l + (m&mask)<<limb.Bits + 2*h

	var z Element
	z.setRaw(r % Modulus)
	return z
}
