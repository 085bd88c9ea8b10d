// Package policy defines how a sorted list compares, copies, releases
// and renders the values it stores.
package policy

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrNilPolicy = errors.New("policy: nil policy")

	ErrNoComparator = errors.New("policy: comparator is required")
)

// Policy is the set of behaviours a sorted list needs from its value type.
// Only Cmp is required. A Policy is shared by every list built from it
// and is never modified by them.
type Policy[T any] struct {
	// Cmp orders two values, returning <0, 0 or >0.
	Cmp func(a, b T) int

	// Copy returns a deep copy of v. When nil, values are copied as is.
	Copy func(v T) T

	// Free releases resources held by v. When nil, nothing is released.
	Free func(v T)

	// Str writes a textual form of v.
	Str func(w io.Writer, v T) error

	// Hash and Pri are not used by the list itself.
	Hash func(v T) uint64
	Pri  func(a, b T) int
}

// Validate
func (p *Policy[T]) Validate() error {
	if p == nil {
		return ErrNilPolicy
	}
	if p.Cmp == nil {
		return ErrNoComparator
	}
	return nil
}

// Func returns a policy with only the comparator set.
func Func[T any](cmp func(a, b T) int) *Policy[T] {
	return &Policy[T]{Cmp: cmp}
}

// Render writes v using Str, or fmt.Fprint when Str is not set.
func (p *Policy[T]) Render(w io.Writer, v T) error {
	if p.Str != nil {
		return p.Str(w, v)
	}
	_, err := fmt.Fprint(w, v)
	return err
}

// Reverse returns a copy of p with Cmp and Pri inverted.
func (p *Policy[T]) Reverse() *Policy[T] {
	r := *p
	if cmp := p.Cmp; cmp != nil {
		r.Cmp = func(a, b T) int { return cmp(b, a) }
	}
	if pri := p.Pri; pri != nil {
		r.Pri = func(a, b T) int { return pri(b, a) }
	}
	return &r
}
