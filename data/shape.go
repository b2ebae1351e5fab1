/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"strconv"
	"strings"

	"github.com/fentec-project/randify/internal"
	"github.com/pkg/errors"
)

// Shape holds the length of every axis of a value. Scalars have
// an empty shape.
type Shape []int

// Equal reports whether s and other describe the same axes.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

// Size returns the number of elements in a value of shape s.
func (s Shape) Size() int {
	size := 1
	for _, d := range s {
		size *= d
	}

	return size
}

// String formats s like a tuple, e.g. "(3, 2)" or "()".
func (s Shape) String() string {
	dims := make([]string, len(s))
	for i, d := range s {
		dims[i] = strconv.Itoa(d)
	}
	if len(s) == 1 {
		return "(" + dims[0] + ",)"
	}

	return "(" + strings.Join(dims, ", ") + ")"
}

// Flattener is implemented by sample types that can be laid out
// as a flat row of float64 values.
type Flattener interface {
	Flatten() []float64
	Shape() Shape
}

// ShapeOf returns the shape of v and whether v is of a type
// that can be flattened.
func ShapeOf(v any) (Shape, bool) {
	switch x := v.(type) {
	case float64, float32, int, int32, int64, uint, uint32, uint64:
		return Shape{}, true
	case []float64:
		return Shape{len(x)}, true
	case [][]float64:
		return rowsShape(len(x), func(i int) int { return len(x[i]) }), true
	case Flattener:
		return x.Shape(), true
	}

	return nil, false
}

// rowsShape returns the shape of a two dimensional value with n rows,
// or a shape with a negative column count when the rows are ragged.
func rowsShape(n int, rowLen func(i int) int) Shape {
	if n == 0 {
		return Shape{0, 0}
	}
	cols := rowLen(0)
	for i := 1; i < n; i++ {
		if rowLen(i) != cols {
			return Shape{n, -1}
		}
	}

	return Shape{n, cols}
}

// Flatten lays v out as a flat row of float64 values in row-major order
// and returns it together with the original shape of v.
// It returns an error if v is not of a numeric type or if v is a ragged
// two dimensional value.
func Flatten(v any) ([]float64, Shape, error) {
	var flat []float64
	switch x := v.(type) {
	case float64:
		return []float64{x}, Shape{}, nil
	case float32:
		return []float64{float64(x)}, Shape{}, nil
	case int:
		return []float64{float64(x)}, Shape{}, nil
	case int32:
		return []float64{float64(x)}, Shape{}, nil
	case int64:
		return []float64{float64(x)}, Shape{}, nil
	case uint:
		return []float64{float64(x)}, Shape{}, nil
	case uint32:
		return []float64{float64(x)}, Shape{}, nil
	case uint64:
		return []float64{float64(x)}, Shape{}, nil
	case []float64:
		flat = make([]float64, len(x))
		copy(flat, x)
		return flat, Shape{len(x)}, nil
	case Matrix:
		if _, err := NewMatrix(x); err != nil {
			return nil, nil, errors.Wrap(internal.ErrShapeMismatch, "ragged matrix")
		}
		return x.Flatten(), x.Shape(), nil
	case [][]float64:
		s := rowsShape(len(x), func(i int) int { return len(x[i]) })
		if s[1] < 0 {
			return nil, nil, errors.Wrap(internal.ErrShapeMismatch, "ragged matrix")
		}
		flat = make([]float64, 0, s.Size())
		for _, row := range x {
			flat = append(flat, row...)
		}
		return flat, s, nil
	case Flattener:
		return x.Flatten(), x.Shape(), nil
	}

	return nil, nil, errors.Wrapf(internal.ErrNonNumericType, "cannot flatten %T", v)
}
