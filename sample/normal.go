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

// Normal samples random values from the Normal (Gaussian)
// probability distribution with mean Mu and standard deviation Sigma.
type Normal struct {
	dist distuv.Normal
}

// NewNormal returns an instance of Normal sampler.
// If src is nil, the global golang.org/x/exp/rand source is used.
func NewNormal(mu, sigma float64, src rand.Source) *Normal {
	return &Normal{
		dist: distuv.Normal{
			Mu:    mu,
			Sigma: sigma,
			Src:   src,
		},
	}
}

// NewStandardNormal returns a Normal sampler with mean 0
// and standard deviation 1.
func NewStandardNormal(src rand.Source) *Normal {
	return NewNormal(0, 1, src)
}

// Sample samples a single value.
func (n *Normal) Sample() (float64, error) {
	return n.dist.Rand(), nil
}

// Draw samples a single value.
func (n *Normal) Draw() (float64, error) {
	return n.Sample()
}

// DrawN samples count values in one call.
func (n *Normal) DrawN(count int) ([]float64, error) {
	return drawN(count, n.Sample)
}

// Prob returns the probability density of the distribution at x.
func (n *Normal) Prob(x float64) float64 {
	return n.dist.Prob(x)
}

// CDF returns the cumulative distribution function at x.
func (n *Normal) CDF(x float64) float64 {
	return n.dist.CDF(x)
}

func (n *Normal) String() string {
	return fmt.Sprintf("Normal(%g, %g)", n.dist.Mu, n.dist.Sigma)
}
