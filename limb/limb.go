// Package limb implements arithmetic on 31-bit unsigned limbs, the digits of
// the two-limb field representation used by package fp.
//
// Every function is total over [0, 2^31) and branch free.
package limb

// Limb holds a value in [0, 2^31). The top bit of the underlying uint32 is
// always clear for limbs produced by this package.
type Limb = uint32

const (
	// Bits is the number of meaningful bits in a limb.
	Bits = 31
	// Mask selects the low Bits bits.
	Mask Limb = 1<<Bits - 1
)

// IsValid reports whether a fits in Bits bits.
func IsValid(a Limb) bool {
	return a>>Bits == 0
}

// Add returns (a + b) mod 2^31.
func Add(a, b Limb) Limb {
	return (a + b) & Mask
}

// AddWithCarry returns sum and carry such that a + b = carry·2^31 + sum.
func AddWithCarry(a, b Limb) (sum, carry Limb) {
	// a, b < 2^31 so a + b < 2^32 and the carry lands in bit 31.
	s := a + b
	return s & Mask, s >> Bits
}

// Sub returns (a - b) mod 2^31.
func Sub(a, b Limb) Limb {
	return (a - b) & Mask
}

// SubWithBorrow returns diff and borrow such that a - b = diff - borrow·2^31.
// borrow is 1 exactly when a < b.
func SubWithBorrow(a, b Limb) (diff, borrow Limb) {
	// when a < b the uint32 wraps to 2^32 + a - b, which has bit 31 set.
	d := a - b
	return d & Mask, d >> Bits
}
