package field_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/field/goldilocks"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/sp301415/deltazk/field"
)

var fd = field.Goldilocks()

func TestModulus(t *testing.T) {
	assert.Equal(t, field.GoldilocksModulus, fd.Modulus())
	assert.Equal(t, goldilocks.Modulus().Uint64(), fd.Modulus())
}

func TestNewPanics(t *testing.T) {
	assert.Panics(t, func() { field.New(0) })
	assert.Panics(t, func() { field.New(1) })
	assert.NotPanics(t, func() { field.New(2) })
}

func TestFieldLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000

	genElement := gen.UInt64Range(0, fd.Modulus()-1)

	properties := gopter.NewProperties(parameters)

	properties.Property("closure", prop.ForAll(
		func(a, b uint64) bool {
			return fd.Add(a, b) < fd.Modulus() &&
				fd.Sub(a, b) < fd.Modulus() &&
				fd.Mul(a, b) < fd.Modulus()
		},
		genElement, genElement,
	))

	properties.Property("additive identity", prop.ForAll(
		func(a uint64) bool { return fd.Add(a, 0) == a },
		genElement,
	))

	properties.Property("multiplicative identity", prop.ForAll(
		func(a uint64) bool { return fd.Mul(a, 1) == a },
		genElement,
	))

	properties.Property("a - a = 0", prop.ForAll(
		func(a uint64) bool { return fd.Sub(a, a) == 0 },
		genElement,
	))

	properties.Property("a + (-a) = 0", prop.ForAll(
		func(a uint64) bool { return fd.Add(a, fd.Neg(a)) == 0 },
		genElement,
	))

	properties.Property("commutativity", prop.ForAll(
		func(a, b uint64) bool {
			return fd.Add(a, b) == fd.Add(b, a) && fd.Mul(a, b) == fd.Mul(b, a)
		},
		genElement, genElement,
	))

	properties.Property("sub is inverse of add", prop.ForAll(
		func(a, b uint64) bool { return fd.Sub(fd.Add(a, b), b) == a },
		genElement, genElement,
	))

	properties.Property("distributivity", prop.ForAll(
		func(a, b, c uint64) bool {
			return fd.Mul(a, fd.Add(b, c)) == fd.Add(fd.Mul(a, b), fd.Mul(a, c))
		},
		genElement, genElement, genElement,
	))

	properties.Property("x^0 = 1", prop.ForAll(
		func(a uint64) bool { return fd.Exp(a, 0) == 1 },
		genElement,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// TestGoldilocksReference cross-checks arithmetic against the independent
// goldilocks implementation from gnark-crypto over the same modulus.
func TestGoldilocksReference(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000

	genElement := gen.UInt64Range(0, fd.Modulus()-1)

	toUint64 := func(e *goldilocks.Element) uint64 {
		return e.BigInt(new(big.Int)).Uint64()
	}

	properties := gopter.NewProperties(parameters)

	properties.Property("add matches reference", prop.ForAll(
		func(a, b uint64) bool {
			var ea, eb, er goldilocks.Element
			ea.SetUint64(a)
			eb.SetUint64(b)
			er.Add(&ea, &eb)
			return fd.Add(a, b) == toUint64(&er)
		},
		genElement, genElement,
	))

	properties.Property("sub matches reference", prop.ForAll(
		func(a, b uint64) bool {
			var ea, eb, er goldilocks.Element
			ea.SetUint64(a)
			eb.SetUint64(b)
			er.Sub(&ea, &eb)
			return fd.Sub(a, b) == toUint64(&er)
		},
		genElement, genElement,
	))

	properties.Property("mul matches reference", prop.ForAll(
		func(a, b uint64) bool {
			var ea, eb, er goldilocks.Element
			ea.SetUint64(a)
			eb.SetUint64(b)
			er.Mul(&ea, &eb)
			return fd.Mul(a, b) == toUint64(&er)
		},
		genElement, genElement,
	))

	properties.Property("exp matches reference", prop.ForAll(
		func(a uint64, e uint64) bool {
			var ea, er goldilocks.Element
			ea.SetUint64(a)
			er.Exp(ea, new(big.Int).SetUint64(e))
			return fd.Exp(a, e) == toUint64(&er)
		},
		genElement, gen.UInt64Range(0, 1<<20),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestExpRepeatedMul(t *testing.T) {
	for _, x := range []uint64{0, 1, 2, 3, 12345, fd.Modulus() - 1} {
		acc := uint64(1)
		for n := uint64(0); n <= 5; n++ {
			assert.Equal(t, acc, fd.Exp(x, n), "x=%d n=%d", x, n)
			acc = fd.Mul(acc, x)
		}
	}
}

func TestExpBig(t *testing.T) {
	assert.Equal(t, uint64(1), fd.ExpBig(0, big.NewInt(0)))
	assert.Equal(t, uint64(0), fd.ExpBig(0, big.NewInt(7)))
	assert.Panics(t, func() { fd.ExpBig(2, big.NewInt(-1)) })

	// Fermat: x^(q-1) = 1 for x != 0.
	qMinusOne := new(big.Int).SetUint64(fd.Modulus() - 1)
	assert.Equal(t, uint64(1), fd.ExpBig(2, qMinusOne))
	assert.Equal(t, uint64(1), fd.ExpBig(123456789, qMinusOne))

	// Exponents wider than 64 bits reduce consistently with Fermat.
	wide := new(big.Int).Lsh(big.NewInt(1), 100) // 2^100
	rem := new(big.Int).Mod(wide, qMinusOne)
	assert.Equal(t, fd.ExpBig(3, rem), fd.ExpBig(3, wide))

	for _, e := range []uint64{0, 1, 2, 5, 31, 1 << 40} {
		assert.Equal(t, fd.Exp(7, e), fd.ExpBig(7, new(big.Int).SetUint64(e)))
	}
}

func TestInverse(t *testing.T) {
	for _, x := range []uint64{1, 2, 3, 65537, fd.Modulus() - 1} {
		assert.Equal(t, uint64(1), fd.Mul(x, fd.Inverse(x)))
	}
	assert.Panics(t, func() { fd.Inverse(0) })
}

func TestAddOverflow(t *testing.T) {
	// a + b overflows uint64 before reduction.
	a := fd.Modulus() - 1
	b := fd.Modulus() - 2
	assert.Equal(t, fd.Modulus()-3, fd.Add(a, b))
	assert.Equal(t, fd.Modulus()-2, fd.Add(a, a))
}

func TestReduceUnreducedInputs(t *testing.T) {
	// Inputs outside [0, q) are reduced first; operations stay total.
	q := fd.Modulus()
	assert.Equal(t, fd.Add(1, 2), fd.Add(q+1, q+2))
	assert.Equal(t, fd.Sub(1, 2), fd.Sub(q+1, q+2))
	assert.Equal(t, fd.Mul(3, 4), fd.Mul(q+3, q+4))
	assert.Equal(t, uint64(0), fd.Reduce(q))
}
