package r1cs

import (
	"github.com/sp301415/deltazk/field"
)

// Witness is a sparse assignment of field values to variables.
//
// A Witness is independent of any Builder: it may reference variables a
// Builder never allocated, and omit variables a Builder did allocate.
type Witness struct {
	fd field.Field

	values map[Variable]uint64
}

// NewWitness creates a new empty Witness over the given field.
func NewWitness(fd field.Field) *Witness {
	return &Witness{
		fd: fd,

		values: make(map[Variable]uint64),
	}
}

// Assign sets the value of x to v mod q.
// Assigning the same variable twice overwrites the previous value.
func (w *Witness) Assign(x Variable, v uint64) {
	w.values[x] = w.fd.Reduce(v)
}

// Unassign removes the value of x, if any.
func (w *Witness) Unassign(x Variable) {
	delete(w.values, x)
}

// Value returns the value of x, or 0 if x is unassigned.
//
// The zero default is part of the contract: evaluation and verification
// treat missing variables as the additive identity rather than failing.
// Use [Witness.Lookup] or [VerifyStrict] to detect missing assignments.
func (w *Witness) Value(x Variable) uint64 {
	return w.values[x]
}

// Lookup returns the value of x and whether x is assigned.
func (w *Witness) Lookup(x Variable) (uint64, bool) {
	v, ok := w.values[x]
	return v, ok
}

// Len returns the number of assigned variables.
func (w *Witness) Len() int {
	return len(w.values)
}
