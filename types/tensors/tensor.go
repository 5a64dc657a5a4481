/*
 *	Copyright 2025 The TensorNet Authors
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

// Package tensors implements Tensor, a dense multi-dimensional array whose
// axes are addressed by legs (symbolic axis identities, see package legs)
// rather than only by position.
//
// A Tensor[T] is defined by its shape (per-axis dimensions paired with legs,
// see package shapes) and a flat buffer of elements of type T in row-major
// order (last axis varies fastest). The element type is unconstrained: any
// Go type works, including complex128 and float16.Float16.
//
// There are various ways to construct a Tensor:
//
//   - New[T](dimensions, legs): a zero-valued tensor with the given axes.
//   - FromShape[T](shape): a zero-valued tensor with a pre-built shape.
//   - FromFlatData(shape, data): adopts the flattened values given.
//
// Elements are reached either positionally or by leg:
//
//	t := tensors.New[float64]([]int{2, 3, 4}, []legs.Leg{legs.Up, legs.Down, legs.Left})
//	*t.At(1, 2, 3) = 10.0
//	v := *t.AtLegs(map[legs.Leg]int{legs.Up: 1, legs.Down: 2, legs.Left: 3})
//
// Leg-keyed access is the primary ergonomic entry point: callers name axes
// instead of remembering their storage order.
//
// Bulk element-wise operations live in transform.go: Tensor.Generate,
// Tensor.Apply, Map, ZipWith and Zip.
package tensors

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/tensornet/tensornet/types/legs"
	"github.com/tensornet/tensornet/types/shapes"
)

// Tensor is a dense container of elements of type T: a shape plus a flat
// buffer in row-major order, with buffer length always equal to shape.Size().
//
// Each Tensor owns its buffer exclusively: no two tensors share mutable
// storage, so the usual single-writer/multiple-readers discipline per tensor
// is all the synchronization ever needed.
type Tensor[T any] struct {
	shape shapes.Shape
	flat  []T
}

// FromShape returns a Tensor with the given shape, with the data initialized
// with zero values.
func FromShape[T any](shape shapes.Shape) *Tensor[T] {
	return &Tensor[T]{
		shape: shape.Clone(),
		flat:  make([]T, shape.Size()),
	}
}

// New returns a zero-valued Tensor with the given dimensions and legs, in
// storage order. It panics under the same conditions as shapes.Make:
// mismatched lengths, negative dimensions or duplicate legs.
func New[T any](dimensions []int, axes []legs.Leg) *Tensor[T] {
	return FromShape[T](shapes.Make(dimensions, axes))
}

// FromFlatData returns a Tensor with the given shape whose buffer is a copy
// of data, interpreted in row-major order.
//
// It panics if len(data) differs from shape.Size().
func FromFlatData[T any](shape shapes.Shape, data []T) *Tensor[T] {
	if len(data) != shape.Size() {
		exceptions.Panicf("tensors.FromFlatData: got %d values for shape %s, which requires %d",
			len(data), shape, shape.Size())
	}
	return &Tensor[T]{
		shape: shape.Clone(),
		flat:  slices.Clone(data),
	}
}

// Shape of the tensor: its dimensions and legs.
//
// The returned value shares the shape's slices; treat it as read-only.
func (t *Tensor[T]) Shape() shapes.Shape { return t.shape }

// Rank returns the number of axes. It is a shortcut to Tensor.Shape().Rank().
func (t *Tensor[T]) Rank() int { return t.shape.Rank() }

// IsScalar returns whether the tensor holds a single value under no axes.
func (t *Tensor[T]) IsScalar() bool { return t.shape.IsScalar() }

// Size returns the number of elements in the tensor.
func (t *Tensor[T]) Size() int { return len(t.flat) }

// Dimensions returns the per-axis dimensions, in storage order. Read-only.
func (t *Tensor[T]) Dimensions() []int { return t.shape.Dimensions }

// Legs returns the per-axis leg identities, in storage order. Read-only.
func (t *Tensor[T]) Legs() []legs.Leg { return t.shape.Legs }

// Strides returns the row-major strides for each axis. This can be handy
// when manipulating the flat data directly.
func (t *Tensor[T]) Strides() []int { return t.shape.Strides() }

// Flat returns the tensor's buffer in row-major order (last axis fastest).
//
// The slice is the actual storage, owned by the tensor: mutating its
// elements mutates the tensor.
func (t *Tensor[T]) Flat() []T { return t.flat }

// FlatIndex returns the buffer offset of the element at the given per-axis
// position. It panics for a wrong number of indices or out-of-range values.
// See shapes.Shape.FlatIndex.
func (t *Tensor[T]) FlatIndex(position ...int) int {
	return t.shape.FlatIndex(position...)
}

// At returns a pointer to the element at the given per-axis position, usable
// for both reading and writing:
//
//	v := *t.At(1, 2, 3)
//	*t.At(1, 2, 3) = v * 2
//
// It panics for a wrong number of indices or out-of-range values.
func (t *Tensor[T]) At(position ...int) *T {
	return &t.flat[t.shape.FlatIndex(position...)]
}

// AtLegs returns a pointer to the element whose per-axis position is given by
// leg identity instead of by axis order: indices must hold an entry for every
// leg of the tensor (extraneous legs are ignored).
//
// It panics with a *shapes.MissingLegError if one of the tensor's legs is
// absent from indices -- catchable with exceptions.TryCatch[error] -- and
// like At for out-of-range values.
func (t *Tensor[T]) AtLegs(indices map[legs.Leg]int) *T {
	position, err := t.shape.PositionOf(indices)
	if err != nil {
		panic(err)
	}
	return &t.flat[t.shape.FlatIndex(position...)]
}

// Clone returns a deep copy of the tensor: same shape and legs, a freshly
// copied buffer.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return &Tensor[T]{
		shape: t.shape.Clone(),
		flat:  slices.Clone(t.flat),
	}
}

// Equal checks whether a == b: same shape (dimensions and legs) and equal
// elements.
//
// Slow implementation: fine for small tensors, write something specialized
// if speed is desired.
func Equal[T comparable](a, b *Tensor[T]) bool {
	if a == b {
		return true
	}
	if !a.shape.Equal(b.shape) {
		return false
	}
	return slices.Equal(a.flat, b.flat)
}

// InDelta checks whether |a - b| < delta for every pair of elements, with
// the same shape requirement as Equal.
func InDelta[T ~float32 | ~float64](a, b *Tensor[T], delta T) bool {
	if a == b {
		return true
	}
	if !a.shape.Equal(b.shape) {
		return false
	}
	for i, av := range a.flat {
		diff := av - b.flat[i]
		if diff < 0 {
			diff = -diff
		}
		if diff >= delta {
			return false
		}
	}
	return true
}

// MaxSizeForString is the largest tensor size whose elements String() will
// actually render; larger tensors print the shape only.
var MaxSizeForString = 500

// String pretty-prints the shape and, for tensors of up to MaxSizeForString
// elements, the values in storage order with rows split on the last axis.
func (t *Tensor[T]) String() string {
	if t.Size() > MaxSizeForString {
		return fmt.Sprintf("%s: (... %d values ...)", t.shape, t.Size())
	}
	if t.IsScalar() {
		return fmt.Sprintf("%s: %v", t.shape, t.flat[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: [", t.shape)
	lastDim := t.shape.Dim(-1)
	for i, v := range t.flat {
		if i > 0 {
			if i%lastDim == 0 {
				b.WriteString(" | ")
			} else {
				b.WriteString(" ")
			}
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteString("]")
	return b.String()
}
