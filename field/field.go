// Package field implements arithmetic over a prime field with a uint64 modulus.
// Elements are canonical representatives in [0, q).
package field

import (
	"math/big"
	"math/bits"
)

// GoldilocksModulus is the default modulus, 2^64 - 2^32 + 1.
const GoldilocksModulus uint64 = 0xffffffff00000001

// Field is a prime field with a fixed modulus.
// The modulus is bound at construction and never changes.
//
// All operations are total: results are always in [0, q),
// and inputs outside [0, q) are reduced first.
type Field struct {
	q uint64
}

// New creates a new Field with modulus q.
// Panics if q < 2.
func New(q uint64) Field {
	if q < 2 {
		panic("modulus must be at least 2")
	}
	return Field{q: q}
}

// Goldilocks creates a new Field with the default modulus [GoldilocksModulus].
func Goldilocks() Field {
	return New(GoldilocksModulus)
}

// Modulus returns the modulus of the Field.
func (f Field) Modulus() uint64 {
	return f.q
}

// Reduce returns x mod q.
func (f Field) Reduce(x uint64) uint64 {
	return x % f.q
}

// Add returns a + b mod q.
func (f Field) Add(a, b uint64) uint64 {
	a %= f.q
	b %= f.q

	// a + b may exceed 64 bits when q is close to 2^64.
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 || sum >= f.q {
		sum -= f.q
	}
	return sum
}

// Sub returns a - b mod q.
func (f Field) Sub(a, b uint64) uint64 {
	a %= f.q
	b %= f.q

	if a >= b {
		return a - b
	}
	return f.q - b + a
}

// Neg returns -a mod q.
func (f Field) Neg(a uint64) uint64 {
	a %= f.q
	if a == 0 {
		return 0
	}
	return f.q - a
}

// Mul returns a * b mod q, using a 128-bit intermediate product.
func (f Field) Mul(a, b uint64) uint64 {
	a %= f.q
	b %= f.q

	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, f.q)
	return rem
}

// Exp returns x^e mod q by square-and-multiply.
// Exp(x, 0) = 1 for all x, including 0.
func (f Field) Exp(x, e uint64) uint64 {
	x %= f.q
	r := uint64(1)
	for e > 0 {
		if e&1 == 1 {
			r = f.Mul(r, x)
		}
		x = f.Mul(x, x)
		e >>= 1
	}
	return r
}

// ExpBig returns x^e mod q for an arbitrary-size exponent.
// Panics if e is negative.
func (f Field) ExpBig(x uint64, e *big.Int) uint64 {
	if e.Sign() < 0 {
		panic("exponent must be non-negative")
	}

	x %= f.q
	r := uint64(1)
	for i := e.BitLen() - 1; i >= 0; i-- {
		r = f.Mul(r, r)
		if e.Bit(i) == 1 {
			r = f.Mul(r, x)
		}
	}
	return r
}

// Inverse returns the modular inverse of x.
// Panics if x and q are not coprime.
func (f Field) Inverse(x uint64) uint64 {
	x %= f.q

	inv := new(big.Int).SetUint64(x)
	if inv.ModInverse(inv, new(big.Int).SetUint64(f.q)) == nil {
		panic("modular inverse does not exist")
	}
	return inv.Uint64()
}
