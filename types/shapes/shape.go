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

// Package shapes defines Shape, the static description of a dense tensor:
// the per-axis dimensions paired one-to-one with the legs (symbolic axis
// identities, see package legs) in storage order.
//
// Shape owns all the index arithmetic: row-major strides, flattening of a
// per-axis position into a flat buffer offset (last axis varies fastest),
// resolution of a leg-keyed position map into a positional index, and
// iteration over every position of the shape.
//
// ## Glossary
//
//   - Rank: number of axes (legs) of a tensor.
//   - Leg: the symbolic identity of one axis, see package legs.
//   - Dimension: the number of valid index values along one axis.
//   - Scalar: a shape with no axes (rank 0); it holds a single value.
//   - Row-major: flattening convention where the last axis's index varies
//     fastest in the underlying buffer.
//
// Example: Make([]int{2, 3, 4}, []legs.Leg{legs.Up, legs.Down, legs.Left})
// describes a rank-3 tensor of 24 elements whose axes answer to the legs
// Up, Down and Left.
package shapes

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/tensornet/tensornet/types"
	"github.com/tensornet/tensornet/types/legs"
)

// Shape describes the axes of a dense tensor: Dimensions[i] is the number of
// valid indices along axis i, and Legs[i] is that axis's symbolic identity.
// Both slices always have the same length (the rank), and legs are pairwise
// distinct within one shape.
//
// Use Make to create a valid Shape. The zero value is a valid scalar shape.
type Shape struct {
	Dimensions []int
	Legs       []legs.Leg
}

// Make returns a Shape with the given dimensions and legs, in storage order.
//
// It panics if the two slices have different lengths, if any dimension is
// negative, or if any leg appears twice -- leg-keyed access requires the legs
// of one tensor to be pairwise distinct. Zero dimensions are accepted and
// yield an empty (size 0) shape.
func Make(dimensions []int, axes []legs.Leg) Shape {
	if len(dimensions) != len(axes) {
		exceptions.Panicf("shapes.Make: %d dimensions but %d legs -- they must pair up one-to-one",
			len(dimensions), len(axes))
	}
	for i, dim := range dimensions {
		if dim < 0 {
			exceptions.Panicf("shapes.Make: axis %d (%s) has negative dimension %d", i, axes[i], dim)
		}
	}
	seen := types.MakeSet[legs.Leg](len(axes))
	for i, leg := range axes {
		if seen.Has(leg) {
			exceptions.Panicf("shapes.Make: leg %s appears more than once (axis %d) -- legs within one shape must be distinct",
				leg, i)
		}
		seen.Insert(leg)
	}
	return Shape{
		Dimensions: slices.Clone(dimensions),
		Legs:       slices.Clone(axes),
	}
}

// Scalar returns the rank-0 shape: no axes, a single element.
func Scalar() Shape { return Shape{} }

// Rank of the shape, that is, the number of axes.
func (s Shape) Rank() int { return len(s.Dimensions) }

// IsScalar returns whether the shape represents a scalar, that is there are
// no axes (rank==0).
func (s Shape) IsScalar() bool { return s.Rank() == 0 }

// Size returns the number of elements a tensor of this shape holds: the
// product of all dimensions. The empty product is 1, so a scalar has size 1.
func (s Shape) Size() (size int) {
	size = 1
	for _, d := range s.Dimensions {
		size *= d
	}
	return
}

// Dim returns the dimension of the given axis. axis can take negative
// numbers, in which case it counts from the end -- so axis=-1 refers to the
// last axis. It panics for an out-of-bound axis.
func (s Shape) Dim(axis int) int {
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += s.Rank()
	}
	if adjustedAxis < 0 || adjustedAxis >= s.Rank() {
		exceptions.Panicf("Shape.Dim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return s.Dimensions[adjustedAxis]
}

// AxisOf returns the axis (position in storage order) whose identity is leg,
// and whether the shape has that leg at all.
func (s Shape) AxisOf(leg legs.Leg) (axis int, found bool) {
	axis = slices.Index(s.Legs, leg)
	return axis, axis >= 0
}

// HasLeg returns whether one of the shape's axes answers to leg.
func (s Shape) HasLeg(leg legs.Leg) bool {
	_, found := s.AxisOf(leg)
	return found
}

// Shape returns a shallow copy of itself. It implements the HasShape interface.
func (s Shape) Shape() Shape { return s }

// Equal compares two shapes for equality: dimensions and legs are compared.
func (s Shape) Equal(s2 Shape) bool {
	return slices.Equal(s.Dimensions, s2.Dimensions) && slices.Equal(s.Legs, s2.Legs)
}

// EqualDimensions compares two shapes for equality of dimensions only; the
// legs may differ.
func (s Shape) EqualDimensions(s2 Shape) bool {
	return slices.Equal(s.Dimensions, s2.Dimensions)
}

// Clone returns a new deep copy of the shape.
func (s Shape) Clone() Shape {
	return Shape{
		Dimensions: slices.Clone(s.Dimensions),
		Legs:       slices.Clone(s.Legs),
	}
}

// String implements stringer, pretty-prints the shape with leg names.
func (s Shape) String() string {
	if s.IsScalar() {
		return "(scalar)"
	}
	parts := make([]string, 0, s.Rank())
	for i, leg := range s.Legs {
		parts = append(parts, fmt.Sprintf("%s:%d", leg, s.Dimensions[i]))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Strides returns the row-major strides for each axis: the last axis has
// stride 1, and stride[i] = stride[i+1] * Dimensions[i+1]. This can be handy
// when manipulating the flat data directly.
func (s Shape) Strides() (strides []int) {
	rank := s.Rank()
	if rank == 0 {
		return
	}
	strides = make([]int, rank)
	currentStride := 1
	for axis := rank - 1; axis >= 0; axis-- {
		strides[axis] = currentStride
		currentStride *= s.Dimensions[axis]
	}
	return
}

// FlatIndex returns the offset in a row-major flat buffer of the element at
// the given per-axis position: Horner accumulation over the axes in storage
// order, so the last axis varies fastest.
//
// It panics if the number of indices differs from the rank, or if any index
// falls outside [0, dimension) of its axis.
func (s Shape) FlatIndex(position ...int) int {
	if len(position) != s.Rank() {
		exceptions.Panicf("Shape.FlatIndex: got %d indices for shape %s of rank %d",
			len(position), s, s.Rank())
	}
	flat := 0
	for axis, idx := range position {
		if idx < 0 || idx >= s.Dimensions[axis] {
			exceptions.Panicf("Shape.FlatIndex: index %d out-of-range for axis %d (%s) of shape %s",
				idx, axis, s.Legs[axis], s)
		}
		flat = flat*s.Dimensions[axis] + idx
	}
	return flat
}

// MissingLegError is returned by Shape.PositionOf when the given map omits
// one of the shape's legs. It indicates a mismatch between the caller's axis
// naming and the tensor's legs.
type MissingLegError struct {
	Leg   legs.Leg
	Shape Shape
}

// Error implements the error interface.
func (e *MissingLegError) Error() string {
	return fmt.Sprintf("leg %s of shape %s is missing from the position map", e.Leg, e.Shape)
}

// PositionOf resolves a leg-keyed position into a positional index vector:
// for each axis in storage order it takes indices[leg-of-that-axis]. Legs in
// indices that the shape doesn't have are ignored.
//
// It returns a *MissingLegError if any of the shape's legs is absent from
// indices. It does not range-check the individual indices -- FlatIndex does.
func (s Shape) PositionOf(indices map[legs.Leg]int) ([]int, error) {
	position := make([]int, s.Rank())
	for axis, leg := range s.Legs {
		idx, found := indices[leg]
		if !found {
			return nil, &MissingLegError{Leg: leg, Shape: s}
		}
		position[axis] = idx
	}
	return position, nil
}
