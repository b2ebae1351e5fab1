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

package sample_test

import (
	"testing"

	"github.com/fentec-project/randify/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestMultiNormal(t *testing.T) {
	m, err := sample.NewMultiNormal([]float64{1, -1}, []float64{1, 0, 0, 4}, sample.NewSource(5))
	require.NoError(t, err)
	assert.Equal(t, 2, m.Dim())

	vecs, err := m.DrawN(10000)
	require.NoError(t, err)
	first := make([]float64, len(vecs))
	second := make([]float64, len(vecs))
	for i, v := range vecs {
		require.Len(t, v, 2)
		first[i], second[i] = v[0], v[1]
	}
	assert.InDelta(t, 1, mean(first), 0.1)
	assert.InDelta(t, -1, mean(second), 0.1)
	assert.InDelta(t, 4, variance(second), 0.4)
}

func TestMultiNormal_Invalid(t *testing.T) {
	_, err := sample.NewMultiNormal(nil, nil, nil)
	assert.Error(t, err)

	_, err = sample.NewMultiNormal([]float64{0, 0}, []float64{1, 0, 0}, nil)
	assert.Error(t, err)

	_, err = sample.NewMultiNormal([]float64{0, 0}, []float64{1, 2, 2, 1}, nil)
	assert.Error(t, err, "covariance is not positive definite")
}

func TestUnivariate(t *testing.T) {
	u := sample.NewUnivariate(distuv.Exponential{Rate: 2, Src: sample.NewSource(9)}, "Exponential")
	vals, err := u.DrawN(10000)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mean(vals), 0.05)
	assert.Equal(t, "Exponential", u.String())

	var empty sample.Univariate
	_, err = empty.Sample()
	assert.Error(t, err)
}
