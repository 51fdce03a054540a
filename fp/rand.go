package fp

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// SetRandom sets z to a uniformly random element read from crypto/rand and
// returns z.
func (z *Element) SetRandom() (*Element, error) {
	var buf [8]byte
	for {
		if _, err := io.ReadFull(rand.Reader, buf[:]); err != nil {
			return nil, errors.Wrap(err, "reading random field element")
		}
		// Modulus is 61 one bits, so masking samples [0, p]; only p is rejected.
		v := binary.LittleEndian.Uint64(buf[:]) & Modulus
		if v != Modulus {
			z.setRaw(v)
			return z, nil
		}
	}
}

// MustSetRandom is like SetRandom but panics if randomness is unavailable.
func (z *Element) MustSetRandom() *Element {
	if _, err := z.SetRandom(); err != nil {
		panic(err)
	}
	return z
}
