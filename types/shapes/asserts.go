package shapes

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/tensornet/tensornet/types/legs"
)

// UncheckedAxis can be used in CheckDims or AssertDims functions for an axis
// whose dimension doesn't matter.
const UncheckedAxis = int(-1)

// HasShape is an interface for objects that have an associated Shape.
// `tensors.Tensor` and Shape itself implement the interface.
type HasShape interface {
	Shape() Shape
}

// CheckDims checks that the shape has the given dimensions and rank. A value
// of -1 in dimensions means it can take any value and is not checked.
//
// It returns an error if the rank is different or if any of the dimensions
// don't match.
func (s Shape) CheckDims(dimensions ...int) error {
	if s.Rank() != len(dimensions) {
		return errors.Errorf("shape %s has incompatible rank %d (wanted %d)", s, s.Rank(), len(dimensions))
	}
	for ii, wantDim := range dimensions {
		if wantDim != UncheckedAxis && s.Dimensions[ii] != wantDim {
			return errors.Errorf("shape %s axis %d has dimension %d, wanted %d (shape wanted=%v)",
				s, ii, s.Dimensions[ii], wantDim, dimensions)
		}
	}
	return nil
}

// CheckLegs checks that the shape carries exactly the given legs, in storage
// order.
//
// It returns an error if the rank is different or if any axis answers to a
// different leg.
func (s Shape) CheckLegs(axes ...legs.Leg) error {
	if s.Rank() != len(axes) {
		return errors.Errorf("shape %s has incompatible rank %d (wanted %d)", s, s.Rank(), len(axes))
	}
	for ii, wantLeg := range axes {
		if s.Legs[ii] != wantLeg {
			return errors.Errorf("shape %s axis %d answers to leg %s, wanted %s",
				s, ii, s.Legs[ii], wantLeg)
		}
	}
	return nil
}

// AssertDims checks that the shape has the given dimensions and rank. A value
// of -1 in dimensions means it can take any value and is not checked.
//
// It panics if it doesn't match.
func (s Shape) AssertDims(dimensions ...int) {
	err := s.CheckDims(dimensions...)
	if err != nil {
		panic(fmt.Sprintf("shapes.AssertDims(%v): %+v", dimensions, err))
	}
}

// AssertLegs checks that the shape carries exactly the given legs, in storage
// order.
//
// It panics if it doesn't match.
func (s Shape) AssertLegs(axes ...legs.Leg) {
	err := s.CheckLegs(axes...)
	if err != nil {
		panic(fmt.Sprintf("shapes.AssertLegs(%v): %+v", axes, err))
	}
}

// CheckDims checks that the shape has the given dimensions and rank. A value
// of -1 in dimensions means it can take any value and is not checked.
//
// It returns an error if the rank is different or any of the dimensions.
func CheckDims(shaped HasShape, dimensions ...int) error {
	return shaped.Shape().CheckDims(dimensions...)
}

// AssertDims checks that the shape has the given dimensions and rank. A value
// of -1 in dimensions means it can take any value and is not checked.
//
// It panics if it doesn't match.
func AssertDims(shaped HasShape, dimensions ...int) {
	shaped.Shape().AssertDims(dimensions...)
}

// CheckLegs checks that the shape carries exactly the given legs, in storage
// order.
//
// It returns an error if it doesn't match.
func CheckLegs(shaped HasShape, axes ...legs.Leg) error {
	return shaped.Shape().CheckLegs(axes...)
}

// AssertLegs checks that the shape carries exactly the given legs, in storage
// order.
//
// It panics if it doesn't match.
func AssertLegs(shaped HasShape, axes ...legs.Leg) {
	shaped.Shape().AssertLegs(axes...)
}

// CheckRank checks that the shape has the given rank.
//
// It returns an error if the rank is different.
func (s Shape) CheckRank(rank int) error {
	if s.Rank() != rank {
		return errors.Errorf("shape %s has incompatible rank %d -- wanted %d", s, s.Rank(), rank)
	}
	return nil
}

// AssertRank checks that the shape has the given rank.
//
// It panics if it doesn't match.
func (s Shape) AssertRank(rank int) {
	err := s.CheckRank(rank)
	if err != nil {
		panic(fmt.Sprintf("assertRank(%d): %+v", rank, err))
	}
}

// CheckRank checks that the shape has the given rank.
//
// It returns an error if the rank is different.
func CheckRank(shaped HasShape, rank int) error {
	return shaped.Shape().CheckRank(rank)
}

// AssertRank checks that the shape has the given rank.
//
// It panics if it doesn't match.
func AssertRank(shaped HasShape, rank int) {
	shaped.Shape().AssertRank(rank)
}

// CheckScalar checks that the shape is a scalar.
//
// It returns an error if shape is not a scalar.
func (s Shape) CheckScalar() error {
	if !s.IsScalar() {
		return errors.Errorf("shape %s is not a scalar", s)
	}
	return nil
}

// AssertScalar checks that the shape is a scalar.
//
// It panics if it doesn't match.
func (s Shape) AssertScalar() {
	err := s.CheckScalar()
	if err != nil {
		panic(fmt.Sprintf("AssertScalar(): %+v", err))
	}
}
