package r1cs

import (
	"github.com/bits-and-blooms/bitset"
)

// Constraint asserts A(X) * B(X) - C(X) = 0 mod q under a witness X.
// A Constraint is immutable once added to a Builder.
type Constraint struct {
	A *LinComb
	B *LinComb
	C *LinComb
}

// IsSatisfied reports whether the constraint holds under the given witness.
func (c Constraint) IsSatisfied(w *Witness) bool {
	fd := c.A.fd
	return fd.Sub(fd.Mul(c.A.Evaluate(w), c.B.Evaluate(w)), c.C.Evaluate(w)) == 0
}

// collectVariables marks every variable referenced by the constraint.
func (c Constraint) collectVariables(vars *bitset.BitSet) {
	for _, l := range []*LinComb{c.A, c.B, c.C} {
		for _, t := range l.terms {
			vars.Set(uint(t.Variable))
		}
	}
}
