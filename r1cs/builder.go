package r1cs

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/sp301415/deltazk/field"
)

// Builder accumulates variables and constraints.
//
// A Builder describes the structure of a circuit only; values live in a
// [Witness]. Variable indices grow monotonically from 0 and are never
// reused, so they remain stable handles for external callers.
type Builder struct {
	fd field.Field

	constraints []Constraint
	nextVar     Variable
	allocated   *bitset.BitSet
}

// NewBuilder creates a new empty Builder over the given field.
func NewBuilder(fd field.Field) *Builder {
	return &Builder{
		fd: fd,

		constraints: make([]Constraint, 0),
		allocated:   bitset.New(0),
	}
}

// Field returns the field of the Builder.
func (b *Builder) Field() field.Field {
	return b.fd
}

// NewLinComb creates a new empty LinComb over the Builder's field.
func (b *Builder) NewLinComb() *LinComb {
	return NewLinComb(b.fd)
}

// Alloc returns a fresh variable.
func (b *Builder) Alloc() Variable {
	x := b.nextVar
	b.nextVar++
	b.allocated.Set(uint(x))
	return x
}

// IsAllocated reports whether x was allocated by this Builder.
func (b *Builder) IsAllocated(x Variable) bool {
	return x >= 0 && b.allocated.Test(uint(x))
}

// NumVariables returns the number of allocated variables.
func (b *Builder) NumVariables() int {
	return int(b.nextVar)
}

// AddConstraint appends the constraint c.A * c.B - c.C = 0.
//
// Variable indices are not validated against the allocation counter;
// referencing a variable that was never allocated is legal.
func (b *Builder) AddConstraint(c Constraint) {
	b.constraints = append(b.constraints, c)
}

// AddMulGate appends the constraint x * y = z.
func (b *Builder) AddMulGate(x, y, z Variable) {
	a := b.NewLinComb()
	a.AddTerm(1, x)

	m := b.NewLinComb()
	m.AddTerm(1, y)

	c := b.NewLinComb()
	c.AddTerm(1, z)

	b.AddConstraint(Constraint{A: a, B: m, C: c})
}

// AddAddGate appends the constraint x + y = z,
// expressed in multiplicative form as (x + y) * 1 = z.
func (b *Builder) AddAddGate(x, y, z Variable) {
	a := b.NewLinComb()
	a.AddTerm(1, x)
	a.AddTerm(1, y)

	one := b.NewLinComb()
	one.AddConst(1)

	c := b.NewLinComb()
	c.AddTerm(1, z)

	b.AddConstraint(Constraint{A: a, B: one, C: c})
}

// Constraints returns the constraints of the Builder, in insertion order.
func (b *Builder) Constraints() []Constraint {
	return b.constraints
}
