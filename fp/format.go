package fp

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// String returns the decimal value of z.
func (z Element) String() string {
	return strconv.FormatUint(z.raw(), 10)
}

// LimbString returns the two limbs of z in decimal, as "<high,low>".
func (z Element) LimbString() string {
	return fmt.Sprintf("<%d,%d>", z.High, z.Low)
}

// BinaryString returns the two limbs of z as 31-digit binary numbers, as
// "<high,low>".
func (z Element) BinaryString() string {
	return fmt.Sprintf("<%031b,%031b>", z.High, z.Low)
}

// SetString sets z to the decimal integer s reduced mod p and returns z.
// s may be arbitrarily long.
func (z *Element) SetString(s string) (*Element, error) {
	if s == "" {
		return nil, errors.Wrap(ErrSyntax, "empty string")
	}
	ten := uint64(10)
	var acc Element
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, errors.Wrapf(ErrSyntax, "unexpected %q at offset %d in %q", c, i, s)
		}
		acc = add(mul(acc.raw(), ten), Element{Low: uint32(c - '0')})
	}
	*z = acc
	return z, nil
}

// MustSetString is like SetString but panics on malformed input.
func (z *Element) MustSetString(s string) *Element {
	if _, err := z.SetString(s); err != nil {
		panic(err)
	}
	return z
}
