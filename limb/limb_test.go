package limb

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// GenLimb generates a value in [0, 2^31).
func GenLimb() gopter.Gen {
	return gen.UInt32Range(0, Mask)
}

func TestLimbEdges(t *testing.T) {
	t.Parallel()

	sum, carry := AddWithCarry(Mask, 1)
	require.Equal(t, Limb(0), sum)
	require.Equal(t, Limb(1), carry)

	sum, carry = AddWithCarry(Mask, Mask)
	require.Equal(t, Mask-1, sum)
	require.Equal(t, Limb(1), carry)

	sum, carry = AddWithCarry(1<<30, 1<<30-1)
	require.Equal(t, Mask, sum)
	require.Equal(t, Limb(0), carry)

	diff, borrow := SubWithBorrow(0, 1)
	require.Equal(t, Mask, diff)
	require.Equal(t, Limb(1), borrow)

	diff, borrow = SubWithBorrow(0, Mask)
	require.Equal(t, Limb(1), diff)
	require.Equal(t, Limb(1), borrow)

	diff, borrow = SubWithBorrow(Mask, Mask)
	require.Equal(t, Limb(0), diff)
	require.Equal(t, Limb(0), borrow)

	require.Equal(t, Limb(0), Add(Mask, 1))
	require.Equal(t, Mask, Sub(0, 1))
	require.True(t, IsValid(Mask))
	require.False(t, IsValid(Mask+1))
}

func TestLimbArithmetic(t *testing.T) {
	t.Parallel()
	parameters := gopter.DefaultTestParameters()
	if testing.Short() {
		parameters.MinSuccessfulTests = 100
	} else {
		parameters.MinSuccessfulTests = 1000
	}

	properties := gopter.NewProperties(parameters)

	properties.Property("AddWithCarry: a + b == carry·2^31 + sum", prop.ForAll(
		func(a, b Limb) bool {
			sum, carry := AddWithCarry(a, b)
			return IsValid(sum) && carry <= 1 &&
				uint64(a)+uint64(b) == uint64(carry)<<Bits+uint64(sum)
		},
		GenLimb(),
		GenLimb(),
	))

	properties.Property("SubWithBorrow: a - b == diff - borrow·2^31", prop.ForAll(
		func(a, b Limb) bool {
			diff, borrow := SubWithBorrow(a, b)
			return IsValid(diff) && borrow <= 1 &&
				(borrow == 1) == (a < b) &&
				int64(a)-int64(b) == int64(diff)-int64(borrow)<<Bits
		},
		GenLimb(),
		GenLimb(),
	))

	properties.Property("Add and Sub agree with their carry variants", prop.ForAll(
		func(a, b Limb) bool {
			sum, _ := AddWithCarry(a, b)
			diff, _ := SubWithBorrow(a, b)
			return Add(a, b) == sum && Sub(a, b) == diff
		},
		GenLimb(),
		GenLimb(),
	))

	properties.Property("Sub undoes Add", prop.ForAll(
		func(a, b Limb) bool {
			return Sub(Add(a, b), b) == a
		},
		GenLimb(),
		GenLimb(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
