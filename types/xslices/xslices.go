// Package xslices provide missing functionality to the slices package.
package xslices

import (
	"golang.org/x/exp/constraints"
)

// Number represents the numeric types that work with Iota: the candidates
// for tensor element types that support arithmetic progression.
type Number interface {
	constraints.Integer | constraints.Float
}

// Iota returns a slice of incremental int values, starting with start and
// of the given length. Eg: Iota(3.0, 2) -> []float64{3.0, 4.0}
func Iota[T Number](start T, length int) (slice []T) {
	slice = make([]T, length)
	for ii := range slice {
		slice[ii] = start + T(ii)
	}
	return
}

// SliceWithValue creates a slice of the given size filled with the given value.
func SliceWithValue[T any](size int, value T) []T {
	s := make([]T, size)
	for ii := range s {
		s[ii] = value
	}
	return s
}

// FillSlice with the given value, in-place.
func FillSlice[T any](slice []T, value T) {
	for ii := range slice {
		slice[ii] = value
	}
}

// Copy returns a new copy of the given slice.
func Copy[T any](slice []T) []T {
	s := make([]T, len(slice))
	copy(s, slice)
	return s
}

// At returns the element at the given index. A negative index is taken from
// the end, so At(slice, -1) returns the last element.
//
// It panics (like an out-of-bounds slice access) for invalid indices.
func At[T any](slice []T, index int) T {
	if index < 0 {
		index = len(slice) + index
	}
	return slice[index]
}

// Last returns the last element of the slice.
func Last[T any](slice []T) T {
	return At(slice, -1)
}

// Pop removes and returns the last element of the slice.
func Pop[T any](slice []T) (T, []T) {
	value := Last(slice)
	return value, slice[:len(slice)-1]
}

// Map executes the given function sequentially for every element on in, and returns a mapped slice.
func Map[In, Out any](in []In, fn func(e In) Out) (out []Out) {
	out = make([]Out, len(in))
	for ii, e := range in {
		out[ii] = fn(e)
	}
	return
}
