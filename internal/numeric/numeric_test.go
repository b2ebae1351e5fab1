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

package numeric_test

import (
	"math"
	"testing"

	"github.com/fentec-project/randify/data"
	"github.com/fentec-project/randify/internal"
	"github.com/fentec-project/randify/internal/numeric"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var xs = []float64{2, 4, 4, 4, 5, 5, 7, 9}

func TestMoments_Float64(t *testing.T) {
	ops, err := numeric.For(xs[0])
	require.NoError(t, err)

	mean := numeric.Mean(ops, xs)
	variance := numeric.Variance(ops, xs, mean)
	assert.InDelta(t, 5, mean, 1e-12)
	assert.InDelta(t, 32.0/7, variance, 1e-12)
	assert.InDelta(t, 8/math.Pow(32.0/7, 1.5), numeric.Skewness(ops, xs, mean, variance), 1e-12)
	assert.InDelta(t, 72.0/210*356/math.Pow(32.0/7, 2), numeric.Kurtosis(ops, xs, mean, variance), 1e-12)
}

func TestMoments_Vector(t *testing.T) {
	vecs := make([]data.Vector, len(xs))
	for i, x := range xs {
		vecs[i] = data.Vector{x, -2 * x}
	}
	ops, err := numeric.For(vecs[0])
	require.NoError(t, err)

	mean := numeric.Mean(ops, vecs)
	variance := numeric.Variance(ops, vecs, mean)
	assert.InDeltaSlice(t, []float64{5, -10}, mean, 1e-12)
	assert.InDeltaSlice(t, []float64{32.0 / 7, 4 * 32.0 / 7}, variance, 1e-12)

	skew := numeric.Skewness(ops, vecs, mean, variance)
	assert.InDelta(t, -skew[0], skew[1], 1e-12, "skewness flips sign with the sample")
}

func TestMoments_Dynamic(t *testing.T) {
	boxed := make([]any, len(xs))
	for i, x := range xs {
		boxed[i] = x
	}
	ops, err := numeric.For(boxed[0])
	require.NoError(t, err)
	assert.InDelta(t, 5, numeric.Mean(ops, boxed), 1e-12)

	slices := []any{[]float64{1, 2}, []float64{3, 4}}
	ops, err = numeric.For(slices[0])
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, numeric.Mean(ops, slices))
}

func TestFor_NonNumeric(t *testing.T) {
	_, err := numeric.For("text")
	assert.True(t, errors.Is(err, internal.ErrNonNumericType))

	_, err = numeric.For(any(struct{ X int }{1}))
	assert.True(t, errors.Is(err, internal.ErrNonNumericType))

	_, err = numeric.For(3)
	assert.True(t, errors.Is(err, internal.ErrNonNumericType), "integers are not closed under division")
}

type value interface{}

func TestFor_NamedInterface(t *testing.T) {
	vals := []value{1.0, 2.0, 3.0}
	ops, err := numeric.For(vals[0])
	require.NoError(t, err)
	assert.Equal(t, 2.0, numeric.Mean(ops, vals))

	_, err = numeric.For(value("text"))
	assert.True(t, errors.Is(err, internal.ErrNonNumericType))
}
