package tensors

import (
	"github.com/gomlx/exceptions"
)

// Element-wise transforms. All of them walk the buffer in storage order
// (row-major, last axis fastest) and touch nothing but the buffer: shapes and
// legs are carried over unchanged.

// Generate overwrites every element, in storage order, with successive
// results of producer. Handy to fill a tensor from a counter or a random
// stream:
//
//	counter := 0
//	t.Generate(func() int { counter++; return counter - 1 })
func (t *Tensor[T]) Generate(producer func() T) {
	for i := range t.flat {
		t.flat[i] = producer()
	}
}

// Apply replaces every element x with fn(x), in place, in storage order.
func (t *Tensor[T]) Apply(fn func(T) T) {
	for i, v := range t.flat {
		t.flat[i] = fn(v)
	}
}

// Map returns a new tensor with the same dimensions and legs as t, whose
// element at every position is fn of t's element there. t is not changed.
//
// The element type may change, which is why Map is a function and not a
// method.
func Map[T1, T2 any](t *Tensor[T1], fn func(T1) T2) *Tensor[T2] {
	result := FromShape[T2](t.shape)
	for i, v := range t.flat {
		result.flat[i] = fn(v)
	}
	return result
}

// ZipWith replaces every element of t with fn(element, other's element at the
// same flat index), in place, in storage order.
//
// The two tensors must have the same total size; it panics otherwise. Only
// the flat indices are walked in lockstep -- axis-by-axis correspondence of
// shapes and legs is the caller's responsibility, and results are only
// meaningful when both tensors share the same shape and leg ordering.
func ZipWith[T1, T2 any](t *Tensor[T1], other *Tensor[T2], fn func(T1, T2) T1) {
	if t.Size() != other.Size() {
		exceptions.Panicf("tensors.ZipWith: size mismatch: %s has %d elements, %s has %d",
			t.shape, t.Size(), other.shape, other.Size())
	}
	for i, v := range t.flat {
		t.flat[i] = fn(v, other.flat[i])
	}
}

// Zip returns a new tensor with a's dimensions and legs, whose buffer is the
// flat-index-wise application of fn to a and b's elements. Neither operand is
// changed.
//
// Same total-size precondition as ZipWith: it panics if a and b differ in
// size, and axis-by-axis correspondence is the caller's responsibility.
func Zip[T1, T2, T any](fn func(T1, T2) T, a *Tensor[T1], b *Tensor[T2]) *Tensor[T] {
	if a.Size() != b.Size() {
		exceptions.Panicf("tensors.Zip: size mismatch: %s has %d elements, %s has %d",
			a.shape, a.Size(), b.shape, b.Size())
	}
	result := FromShape[T](a.shape)
	for i, v := range a.flat {
		result.flat[i] = fn(v, b.flat[i])
	}
	return result
}
