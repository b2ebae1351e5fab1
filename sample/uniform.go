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

package sample

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// UniformRange samples random values from the interval [min, max).
type UniformRange struct {
	dist distuv.Uniform
}

// NewUniformRange returns an instance of the UniformRange sampler.
// It accepts lower and upper bounds on the sampled values.
// If src is nil, the global golang.org/x/exp/rand source is used.
func NewUniformRange(min, max float64, src rand.Source) *UniformRange {
	return &UniformRange{
		dist: distuv.Uniform{
			Min: min,
			Max: max,
			Src: src,
		},
	}
}

// NewUniform returns an instance of the UniformRange sampler
// drawing from [0, max).
func NewUniform(max float64, src rand.Source) *UniformRange {
	return NewUniformRange(0, max, src)
}

// Sample samples a single value.
func (u *UniformRange) Sample() (float64, error) {
	return u.dist.Rand(), nil
}

// Draw samples a single value.
func (u *UniformRange) Draw() (float64, error) {
	return u.Sample()
}

// DrawN samples n values in one call.
func (u *UniformRange) DrawN(n int) ([]float64, error) {
	return drawN(n, u.Sample)
}

func (u *UniformRange) String() string {
	return fmt.Sprintf("Uniform(%g, %g)", u.dist.Min, u.dist.Max)
}

// Index samples indices uniformly from [0, n). It is used to
// resample observed values with replacement.
type Index struct {
	rng *rand.Rand
}

// NewIndex returns an Index sampler reading from src.
// If src is nil, a source seeded from the global generator is used.
func NewIndex(src rand.Source) *Index {
	if src == nil {
		src = rand.NewSource(rand.Uint64())
	}
	return &Index{rng: rand.New(src)}
}

// Sample returns an index from [0, n). n must be positive.
func (s *Index) Sample(n int) int {
	return s.rng.Intn(n)
}
