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
)

func mean(vec []float64) float64 {
	sum := 0.0
	for _, v := range vec {
		sum += v
	}
	return sum / float64(len(vec))
}

func variance(vec []float64) float64 {
	me := mean(vec)
	sum := 0.0
	for _, v := range vec {
		sum += (v - me) * (v - me)
	}
	return sum / float64(len(vec)-1)
}

func TestSample_Normal(t *testing.T) {
	c := sample.NewNormal(0, 10, sample.NewSource(1))
	vec := make([]float64, 10000)
	for i := 0; i < len(vec); i++ {
		vec[i], _ = c.Sample()
	}
	me := mean(vec)
	v := variance(vec)
	// me should be around 0 and v should be around 100
	assert.True(t, me < 0.5, "mean value of the normal distribution is too big")
	assert.True(t, me > -0.5, "mean value of the normal distribution is too small")
	assert.True(t, v < 110, "variance of the normal distribution is too big")
	assert.True(t, v > 90, "variance of the normal distribution is too small")

	bulk, err := c.DrawN(10000)
	require.NoError(t, err)
	require.Len(t, bulk, 10000)
	assert.InDelta(t, 0, mean(bulk), 0.5)
	assert.InDelta(t, 100, variance(bulk), 10)
}

func TestSample_NormalDeterministic(t *testing.T) {
	a := sample.NewStandardNormal(sample.NewSource(42))
	b := sample.NewStandardNormal(sample.NewSource(42))
	for i := 0; i < 100; i++ {
		x, _ := a.Draw()
		y, _ := b.Draw()
		assert.Equal(t, x, y)
	}
	assert.Equal(t, "Normal(0, 1)", a.String())
}

func TestSample_Uniform(t *testing.T) {
	u := sample.NewUniformRange(-2, 3, sample.NewSource(7))
	vals, err := u.DrawN(5000)
	require.NoError(t, err)
	for _, x := range vals {
		assert.True(t, x >= -2 && x < 3, "value out of range")
	}
	assert.InDelta(t, 0.5, mean(vals), 0.1)

	_, err = u.DrawN(-1)
	assert.Error(t, err)
}

func TestSample_Index(t *testing.T) {
	s := sample.NewIndex(sample.NewSource(3))
	counts := make([]int, 4)
	for i := 0; i < 4000; i++ {
		counts[s.Sample(4)]++
	}
	for _, c := range counts {
		assert.InDelta(t, 1000, c, 150)
	}
}
