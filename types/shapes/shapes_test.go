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

package shapes

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/require"
	"github.com/tensornet/tensornet/types/legs"
)

func TestShape(t *testing.T) {
	shape0 := Scalar()
	require.True(t, shape0.IsScalar())
	require.Equal(t, 0, shape0.Rank())
	require.Len(t, shape0.Dimensions, 0)
	require.Equal(t, 1, shape0.Size())
	require.Equal(t, "(scalar)", shape0.String())

	shape1 := Make([]int{4, 3, 2}, []legs.Leg{legs.Up, legs.Down, legs.Left})
	require.False(t, shape1.IsScalar())
	require.Equal(t, 3, shape1.Rank())
	require.Len(t, shape1.Dimensions, 3)
	require.Equal(t, 4*3*2, shape1.Size())
	require.Equal(t, "(Up:4, Down:3, Left:2)", shape1.String())

	// Make copies its arguments.
	dims := []int{2, 2}
	axes := []legs.Leg{legs.Left, legs.Right}
	shape2 := Make(dims, axes)
	dims[0] = 7
	require.Equal(t, 2, shape2.Dimensions[0])
}

func TestMakeValidation(t *testing.T) {
	// Mismatched lengths.
	require.Panics(t, func() {
		Make([]int{2, 3}, []legs.Leg{legs.Up})
	})
	// Negative dimension.
	require.Panics(t, func() {
		Make([]int{2, -1}, []legs.Leg{legs.Up, legs.Down})
	})
	// Duplicate legs.
	require.Panics(t, func() {
		Make([]int{2, 3}, []legs.Leg{legs.Up, legs.Up})
	})
	// Zero dimensions are structurally fine, they just describe an empty shape.
	empty := Make([]int{2, 0}, []legs.Leg{legs.Up, legs.Down})
	require.Equal(t, 0, empty.Size())
}

func TestDim(t *testing.T) {
	shape := Make([]int{4, 3, 2}, []legs.Leg{legs.Up, legs.Down, legs.Left})
	require.Equal(t, 4, shape.Dim(0))
	require.Equal(t, 3, shape.Dim(1))
	require.Equal(t, 2, shape.Dim(2))
	require.Equal(t, 4, shape.Dim(-3))
	require.Equal(t, 3, shape.Dim(-2))
	require.Equal(t, 2, shape.Dim(-1))
	require.Panics(t, func() { _ = shape.Dim(3) })
	require.Panics(t, func() { _ = shape.Dim(-4) })
}

func TestAxisOf(t *testing.T) {
	shape := Make([]int{2, 3}, []legs.Leg{legs.Up, legs.Down})
	axis, found := shape.AxisOf(legs.Down)
	require.True(t, found)
	require.Equal(t, 1, axis)
	require.True(t, shape.HasLeg(legs.Up))
	require.False(t, shape.HasLeg(legs.Left))
}

func TestEqualAndClone(t *testing.T) {
	a := Make([]int{2, 3}, []legs.Leg{legs.Up, legs.Down})
	b := Make([]int{2, 3}, []legs.Leg{legs.Up, legs.Down})
	c := Make([]int{2, 3}, []legs.Leg{legs.Up, legs.Left})
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.True(t, a.EqualDimensions(c))

	clone := a.Clone()
	require.True(t, a.Equal(clone))
	clone.Dimensions[0] = 9
	require.Equal(t, 2, a.Dimensions[0])
}

func TestStrides(t *testing.T) {
	shape := Make([]int{2, 3, 4}, []legs.Leg{legs.Up, legs.Down, legs.Left})
	require.Equal(t, []int{12, 4, 1}, shape.Strides())
	require.Empty(t, Scalar().Strides())
}

func TestFlatIndex(t *testing.T) {
	shape := Make([]int{2, 3, 4}, []legs.Leg{legs.Up, legs.Down, legs.Left})

	// Row-major: position [1,2,3] -> 1*3*4 + 2*4 + 3 = 23.
	require.Equal(t, 23, shape.FlatIndex(1, 2, 3))
	require.Equal(t, 0, shape.FlatIndex(0, 0, 0))

	// The last axis varies fastest: adjacent flat indices differ only in the
	// last coordinate while it hasn't wrapped.
	require.Equal(t, 1, shape.FlatIndex(0, 0, 1))
	require.Equal(t, 4, shape.FlatIndex(0, 1, 0))

	// Scalar shape: an empty position resolves to offset 0.
	require.Equal(t, 0, Scalar().FlatIndex())

	// Wrong arity and out-of-range indices fail fast.
	require.Panics(t, func() { shape.FlatIndex(1, 2) })
	require.Panics(t, func() { shape.FlatIndex(1, 2, 4) })
	require.Panics(t, func() { shape.FlatIndex(-1, 0, 0) })
}

func TestPositionOf(t *testing.T) {
	shape := Make([]int{2, 3, 4}, []legs.Leg{legs.Up, legs.Down, legs.Left})

	position, err := shape.PositionOf(map[legs.Leg]int{
		legs.Up:   1,
		legs.Down: 2,
		legs.Left: 3,
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, position)

	// Extraneous legs are ignored.
	position, err = shape.PositionOf(map[legs.Leg]int{
		legs.Up:    0,
		legs.Down:  0,
		legs.Left:  0,
		legs.Right: 5,
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0}, position)

	// A missing leg is a distinct, catchable failure.
	_, err = shape.PositionOf(map[legs.Leg]int{
		legs.Up:   0,
		legs.Down: 0,
	})
	require.Error(t, err)
	var missing *MissingLegError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, legs.Left, missing.Leg)
}

func TestAsserts(t *testing.T) {
	shape := Make([]int{2, 3}, []legs.Leg{legs.Up, legs.Down})

	require.NoError(t, shape.CheckDims(2, 3))
	require.NoError(t, shape.CheckDims(UncheckedAxis, 3))
	require.Error(t, shape.CheckDims(2))
	require.Error(t, shape.CheckDims(2, 4))

	require.NoError(t, shape.CheckLegs(legs.Up, legs.Down))
	require.Error(t, shape.CheckLegs(legs.Down, legs.Up))
	require.Error(t, shape.CheckLegs(legs.Up))

	require.NoError(t, shape.CheckRank(2))
	require.Error(t, shape.CheckRank(3))
	require.NoError(t, Scalar().CheckScalar())
	require.Error(t, shape.CheckScalar())

	require.NotPanics(t, func() { AssertDims(shape, 2, 3) })
	require.Panics(t, func() { AssertDims(shape, 3, 2) })
	require.NotPanics(t, func() { AssertLegs(shape, legs.Up, legs.Down) })
	require.Panics(t, func() { AssertLegs(shape, legs.Down, legs.Up) })
	require.NotPanics(t, func() { AssertRank(shape, 2) })
	require.Panics(t, func() { AssertRank(shape, 1) })
}

func TestPanicsAreCatchable(t *testing.T) {
	// Precondition violations surface as exceptions that TryCatch recovers.
	err := exceptions.TryCatch[error](func() {
		Make([]int{2}, []legs.Leg{legs.Up, legs.Down})
	})
	require.Error(t, err)
}
