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

package density_test

import (
	"math"
	"testing"

	"github.com/fentec-project/randify/data"
	"github.com/fentec-project/randify/density"
	"github.com/fentec-project/randify/sample"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pool is a fixed set of flattened samples.
type pool struct {
	rows  [][]float64
	shape data.Shape
}

func (p pool) FlatSamples() ([][]float64, data.Shape, error) {
	return p.rows, p.shape, nil
}

func normalPool(t *testing.T, n int, seed uint64) pool {
	vals, err := sample.NewStandardNormal(sample.NewSource(seed)).DrawN(n)
	require.NoError(t, err)
	rows := make([][]float64, n)
	for i, v := range vals {
		rows[i] = []float64{v}
	}
	return pool{rows: rows, shape: data.Shape{}}
}

func vectorPool(t *testing.T, n, dim int, seed uint64) pool {
	gen, err := sample.NewIsotropicNormal(dim, sample.NewSource(seed))
	require.NoError(t, err)
	rows, err := gen.DrawN(n)
	require.NoError(t, err)
	return pool{rows: rows, shape: data.Shape{dim}}
}

func TestEstimator_Univariate(t *testing.T) {
	e, err := density.Fit(normalPool(t, 10000, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, e.Dim())
	assert.Equal(t, 10000, e.Len())

	p, err := e.At(0.0)
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), p, 0.3)

	for _, x := range []float64{math.Inf(1), math.Inf(-1)} {
		p, err = e.At(x)
		require.NoError(t, err)
		assert.Equal(t, 0.0, p)
	}

	p, err = e.At(50.0)
	require.NoError(t, err)
	assert.InDelta(t, 0, p, 1e-12)
}

func TestEstimator_Batch(t *testing.T) {
	e, err := density.FitBandwidth(0.2, normalPool(t, 10000, 2))
	require.NoError(t, err)

	dens, err := e.Eval([]float64{-1, 0, 1})
	require.NoError(t, err)
	require.Len(t, dens, 3)
	assert.InDelta(t, dens[0], dens[2], 0.05, "density should be roughly symmetric")
	assert.True(t, dens[1] > dens[0], "density should peak at the mean")

	_, err = e.At([]float64{-1, 0, 1})
	assert.True(t, errors.Is(err, density.ErrInvalidArgument))
}

func TestEstimator_Joint(t *testing.T) {
	x1 := normalPool(t, 10000, 3)
	x2 := normalPool(t, 10000, 4)
	e, err := density.FitBandwidth(0.2, x1, x2)
	require.NoError(t, err)
	assert.Equal(t, 2, e.Dim())

	p, err := e.At(0.0, 0.0)
	require.NoError(t, err)
	assert.InDelta(t, 1/(2*math.Pi), p, 0.02)

	dens, err := e.Eval([]float64{0, 5}, []float64{0, 5})
	require.NoError(t, err)
	require.Len(t, dens, 2)
	assert.InDelta(t, 0, dens[1], 1e-6)

	_, err = e.Eval(0.0)
	assert.True(t, errors.Is(err, density.ErrInvalidArgument), "arity mismatch")

	_, err = e.Eval([]float64{0, 1}, []float64{0, 1, 2})
	assert.True(t, errors.Is(err, density.ErrInvalidArgument), "batch length mismatch")
}

func TestEstimator_Vector(t *testing.T) {
	x := vectorPool(t, 10000, 2, 5)
	y := normalPool(t, 5000, 6)
	e, err := density.FitBandwidth(0.3, x, y)
	require.NoError(t, err)
	assert.Equal(t, 3, e.Dim())
	assert.Equal(t, 5000, e.Len(), "samples are truncated to the smallest pool")
	assert.Equal(t, []data.Shape{{2}, {}}, e.Shapes())

	single, err := e.At([]float64{0, 0}, 0.0)
	require.NoError(t, err)

	dens, err := e.Eval([][]float64{{0, 0}, {1, 1}}, []float64{0, 1})
	require.NoError(t, err)
	require.Len(t, dens, 2)
	assert.InDelta(t, single, dens[0], 1e-12)
	assert.True(t, dens[0] > dens[1])

	_, err = e.Eval([]float64{0, 0, 0}, 0.0)
	assert.True(t, errors.Is(err, density.ErrInvalidArgument), "shape mismatch")

	lo, hi := e.Bounds()
	require.Len(t, lo, 3)
	for j := range lo {
		assert.True(t, lo[j] < 0 && hi[j] > 0)
	}
}

func TestFit_Errors(t *testing.T) {
	_, err := density.Fit()
	assert.True(t, errors.Is(err, density.ErrInvalidArgument))

	_, err = density.FitBandwidth(0, normalPool(t, 10, 7))
	assert.True(t, errors.Is(err, density.ErrInvalidArgument))

	ragged := pool{rows: [][]float64{{1, 2}, {3}}, shape: data.Shape{2}}
	_, err = density.Fit(ragged)
	assert.True(t, errors.Is(err, density.ErrShapeMismatch))
}

func TestCDF(t *testing.T) {
	c, err := density.FitCDF(normalPool(t, 10000, 8))
	require.NoError(t, err)
	assert.Equal(t, 10000, c.Len())

	assert.InDelta(t, 0.5, c.At(0), 0.05)
	assert.Equal(t, 0.0, c.At(math.Inf(-1)))
	assert.Equal(t, 1.0, c.At(math.Inf(1)))
	assert.True(t, math.IsNaN(c.At(math.NaN())))

	vals, err := c.Eval(data.Vector{-1, 0, 1})
	require.NoError(t, err)
	require.Len(t, vals, 3)
	assert.InDelta(t, 0.1587, vals[0], 0.03)
	assert.InDelta(t, 0.8413, vals[2], 0.03)

	_, err = c.Eval([][]float64{{1}})
	assert.True(t, errors.Is(err, density.ErrInvalidArgument))
}

func TestCDF_Exact(t *testing.T) {
	c, err := density.FitCDF(pool{rows: [][]float64{{3}, {1}, {2}, {2}}, shape: data.Shape{}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.At(0.5))
	assert.Equal(t, 0.25, c.At(1))
	assert.Equal(t, 0.75, c.At(2))
	assert.Equal(t, 0.75, c.At(2.5))
	assert.Equal(t, 1.0, c.At(3))
}

func TestCDF_Unsupported(t *testing.T) {
	_, err := density.FitCDF(normalPool(t, 10, 9), normalPool(t, 10, 10))
	assert.True(t, errors.Is(err, density.ErrInvalidArgument), "joint CDF is not supported")

	_, err = density.FitCDF(vectorPool(t, 10, 2, 11))
	assert.True(t, errors.Is(err, density.ErrInvalidArgument))
}
