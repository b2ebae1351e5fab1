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

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// MultiNormal samples random vectors from the multivariate Normal
// distribution with mean vector mu and covariance matrix cov.
type MultiNormal struct {
	dist *distmv.Normal
	dim  int
}

// NewMultiNormal returns an instance of MultiNormal sampler.
// The covariance matrix cov is given in row-major order and must be
// symmetric positive definite. If src is nil, the global
// golang.org/x/exp/rand source is used.
func NewMultiNormal(mu []float64, cov []float64, src rand.Source) (*MultiNormal, error) {
	dim := len(mu)
	if dim == 0 {
		return nil, fmt.Errorf("mean vector should not be empty")
	}
	if len(cov) != dim*dim {
		return nil, fmt.Errorf("covariance should have %d elements, got %d", dim*dim, len(cov))
	}

	dist, ok := distmv.NewNormal(mu, mat.NewSymDense(dim, cov), src)
	if !ok {
		return nil, errors.New("covariance matrix is not positive definite")
	}

	return &MultiNormal{
		dist: dist,
		dim:  dim,
	}, nil
}

// NewIsotropicNormal returns a MultiNormal sampler of dimension dim
// with zero mean and identity covariance.
func NewIsotropicNormal(dim int, src rand.Source) (*MultiNormal, error) {
	mu := make([]float64, dim)
	cov := make([]float64, dim*dim)
	for i := 0; i < dim; i++ {
		cov[i*dim+i] = 1
	}

	return NewMultiNormal(mu, cov, src)
}

// Dim returns the length of the sampled vectors.
func (m *MultiNormal) Dim() int {
	return m.dim
}

// Draw samples a single vector.
func (m *MultiNormal) Draw() ([]float64, error) {
	return m.dist.Rand(nil), nil
}

// DrawN samples n vectors in one call.
func (m *MultiNormal) DrawN(n int) ([][]float64, error) {
	if n < 0 {
		return nil, errors.Errorf("cannot draw %d samples", n)
	}
	vecs := make([][]float64, n)
	for i := range vecs {
		vecs[i] = m.dist.Rand(nil)
	}

	return vecs, nil
}

func (m *MultiNormal) String() string {
	return fmt.Sprintf("MultiNormal(%d)", m.dim)
}
