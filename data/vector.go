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
	"math"
	"strconv"

	"github.com/fentec-project/randify/sample"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomVector(len int, sampler sample.Sampler) (Vector, error) {
	vec := make([]float64, len)
	var err error

	for i := 0; i < len; i++ {
		vec[i], err = sampler.Sample()
		if err != nil {
			return nil, err
		}
	}

	return NewVector(vec), nil
}

// NewRandomDetVector returns a new Vector instance
// with (deterministic) random elements sampled by a pseudo-random
// number generator. Elements are sampled from [0, 1) and key
// determines the pseudo-random generator.
func NewRandomDetVector(len int, key *[32]byte) Vector {
	src := sample.NewDetSource(key)
	ret := make([]float64, len)
	for i := range ret {
		// 53 random bits give a uniformly spaced float in [0, 1)
		ret[i] = float64(src.Uint64()>>11) / (1 << 53)
	}

	return NewVector(ret)
}

// VectorSampler draws vectors of a fixed length whose elements are
// independent values taken from Sampler.
type VectorSampler struct {
	Len     int
	Sampler sample.Sampler
}

// Draw returns a new random vector.
func (s VectorSampler) Draw() (Vector, error) {
	return NewRandomVector(s.Len, s.Sampler)
}

func (s VectorSampler) String() string {
	return fmt.Sprintf("%v^%d", s.Sampler, s.Len)
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// Shape returns the shape of v, a single dimension of length len(v).
func (v Vector) Shape() Shape {
	return Shape{len(v)}
}

// Flatten returns the elements of v.
func (v Vector) Flatten() []float64 {
	return v.Copy()
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	res := make(Vector, len(v))
	floats.ScaleTo(res, x, v)

	return res
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))

	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Add(other Vector) Vector {
	sum := make(Vector, len(v))
	floats.AddTo(sum, v, other)

	return sum
}

// Sub subtracts vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Sub(other Vector) Vector {
	sub := make(Vector, len(v))
	floats.SubTo(sub, v, other)

	return sub
}

// MulElem multiplies vectors v and other element by element.
// The result is returned in a new Vector.
func (v Vector) MulElem(other Vector) Vector {
	prod := make(Vector, len(v))
	floats.MulTo(prod, v, other)

	return prod
}

// QuoElem divides vector v by other element by element.
// The result is returned in a new Vector.
func (v Vector) QuoElem(other Vector) Vector {
	quo := make(Vector, len(v))
	floats.DivTo(quo, v, other)

	return quo
}

// Pow raises every element of v to the power p.
// The result is returned in a new Vector.
func (v Vector) Pow(p float64) Vector {
	return v.Apply(func(x float64) float64 {
		return math.Pow(x, p)
	})
}

// Sum returns the sum of the elements of v.
func (v Vector) Sum() float64 {
	return floats.Sum(v)
}

// Mean returns the arithmetic mean of the elements of v.
func (v Vector) Mean() float64 {
	return stat.Mean(v, nil)
}

// Norm returns the Euclidean norm of v.
func (v Vector) Norm() float64 {
	return floats.Norm(v, 2)
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	vStr := ""
	for _, yi := range v {
		vStr = vStr + " " + strconv.FormatFloat(yi, 'g', -1, 64)
	}
	return vStr
}
