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
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Matrix wraps a slice of Vector elements. It represents a matrix
// in row-major order.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j].
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	l := -1
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, fmt.Errorf("all vectors should be of the same length")
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix(newVectors), nil
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// Shape returns the (rows, cols) shape of m.
func (m Matrix) Shape() Shape {
	return Shape{m.Rows(), m.Cols()}
}

// Transpose transposes matrix m and returns
// the result in a new Matrix.
func (m Matrix) Transpose() Matrix {
	if m.Rows() == 0 || m.Cols() == 0 {
		return Matrix{}
	}

	return fromDense(mat.DenseCopyOf(m.dense().T()))
}

// Gram returns the product of the transpose of m with m.
func (m Matrix) Gram() Matrix {
	if m.Rows() == 0 || m.Cols() == 0 {
		return Matrix{}
	}
	d := m.dense()
	var g mat.Dense
	g.Mul(d.T(), d)

	return fromDense(&g)
}

// FrobeniusNorm returns the square root of the sum of the squared
// elements of m.
func (m Matrix) FrobeniusNorm() float64 {
	if m.Rows() == 0 || m.Cols() == 0 {
		return 0
	}

	return mat.Norm(m.dense(), 2)
}

// dense returns m as a gonum matrix. m must not be empty.
func (m Matrix) dense() *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), m.Flatten())
}

func fromDense(d *mat.Dense) Matrix {
	r, _ := d.Dims()
	res := make(Matrix, r)
	for i := range res {
		res[i] = NewVector(mat.Row(nil, i, d))
	}

	return res
}

// Flatten returns the elements of m in row-major order.
func (m Matrix) Flatten() []float64 {
	flat := make([]float64, 0, m.Rows()*m.Cols())
	for _, v := range m {
		flat = append(flat, v...)
	}

	return flat
}

// Copy creates a new matrix with the same values of the entries.
func (m Matrix) Copy() Matrix {
	res := make(Matrix, len(m))
	for i, v := range m {
		res[i] = v.Copy()
	}

	return res
}

// elementwise applies op to pairs of rows of m and other.
// m and other must have the same dimensions.
func (m Matrix) elementwise(other Matrix, op func(v, w Vector) Vector) Matrix {
	res := make(Matrix, m.Rows())
	for i, v := range m {
		res[i] = op(v, other[i])
	}

	return res
}

// Add adds matrices m and other, which must have the same dimensions.
// The result is returned in a new Matrix.
func (m Matrix) Add(other Matrix) Matrix {
	return m.elementwise(other, Vector.Add)
}

// Sub subtracts matrix other from m. Both must have the same dimensions.
// The result is returned in a new Matrix.
func (m Matrix) Sub(other Matrix) Matrix {
	return m.elementwise(other, Vector.Sub)
}

// MulElem multiplies matrices m and other element by element.
// The result is returned in a new Matrix.
func (m Matrix) MulElem(other Matrix) Matrix {
	return m.elementwise(other, Vector.MulElem)
}

// QuoElem divides matrix m by other element by element.
// The result is returned in a new Matrix.
func (m Matrix) QuoElem(other Matrix) Matrix {
	return m.elementwise(other, Vector.QuoElem)
}

// Pow raises every element of m to the power p.
// The result is returned in a new Matrix.
func (m Matrix) Pow(p float64) Matrix {
	res := make(Matrix, m.Rows())
	for i, v := range m {
		res[i] = v.Pow(p)
	}

	return res
}

// MulScalar multiplies elements of matrix m by a scalar x.
// The result is returned in a new Matrix.
func (m Matrix) MulScalar(x float64) Matrix {
	res := make(Matrix, m.Rows())
	for i, v := range m {
		res[i] = v.MulScalar(x)
	}

	return res
}

// Sum returns the sum of all elements of m.
func (m Matrix) Sum() float64 {
	s := 0.0
	for _, v := range m {
		s += v.Sum()
	}

	return s
}

// Mean returns the arithmetic mean of all elements of m.
func (m Matrix) Mean() float64 {
	return Vector(m.Flatten()).Mean()
}

// String produces a string representation of a matrix,
// one row per line.
func (m Matrix) String() string {
	rows := make([]string, len(m))
	for i, v := range m {
		rows[i] = v.String()
	}

	return strings.Join(rows, "\n")
}
