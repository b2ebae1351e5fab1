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
	"math"
	"testing"

	"github.com/fentec-project/randify/sample"
	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	l := 3
	sampler := sample.NewUniform(1<<20, sample.NewSource(2))

	x, err := NewRandomVector(l, sampler)
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	y, err := NewRandomVector(l, sampler)
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	add := x.Add(y)
	for i := 0; i < 3; i++ {
		assert.Equal(t, x[i]+y[i], add[i], "coordinates should sum correctly")
	}

	var key [32]byte
	det := NewRandomDetVector(1000, &key)
	for _, c := range det {
		assert.True(t, c >= 0 && c < 1)
	}
	assert.Equal(t, det, NewRandomDetVector(1000, &key))
	assert.InDelta(t, 0.5, det.Mean(), 0.05)
}

func TestVector_Arithmetic(t *testing.T) {
	v := Vector{1, 2, 4}
	w := Vector{2, 2, 2}

	assert.Equal(t, Vector{-1, 0, 2}, v.Sub(w))
	assert.Equal(t, Vector{2, 4, 8}, v.MulElem(w))
	assert.Equal(t, Vector{0.5, 1, 2}, v.QuoElem(w))
	assert.Equal(t, Vector{3, 6, 12}, v.MulScalar(3))
	assert.Equal(t, Vector{1, 4, 16}, v.Pow(2))
	assert.Equal(t, 7.0, v.Sum())
	assert.InDelta(t, 7.0/3, v.Mean(), 1e-12)
	assert.InDelta(t, math.Sqrt(21), v.Norm(), 1e-12)
	assert.Equal(t, " 1 2 4", v.String())
}

func TestVectorSampler(t *testing.T) {
	s := VectorSampler{Len: 4, Sampler: sample.NewStandardNormal(sample.NewSource(3))}

	v, err := s.Draw()
	assert.NoError(t, err)
	assert.Len(t, v, 4)
	assert.Equal(t, "Normal(0, 1)^4", s.String())
}
