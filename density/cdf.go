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

package density

import (
	"math"
	"sort"

	"github.com/fentec-project/randify/data"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// CDF is the empirical cumulative distribution function of a scalar
// random variable.
type CDF struct {
	sorted []float64
}

// FitCDF builds the empirical CDF of a single scalar random variable.
// Joint distribution functions of several random variables, or of
// vector valued ones, are not supported and fail with an error
// wrapping ErrInvalidArgument.
func FitCDF(sources ...Source) (*CDF, error) {
	if len(sources) != 1 {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"cumulative distribution needs exactly one random variable, got %d", len(sources))
	}
	rows, shape, err := sources[0].FlatSamples()
	if err != nil {
		return nil, err
	}
	if len(shape) != 0 {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"cumulative distribution needs scalar samples, got shape %v", shape)
	}
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "random variable has no samples")
	}

	xs := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) != 1 {
			return nil, errors.Wrapf(ErrShapeMismatch, "sample %d has %d values", i, len(row))
		}
		xs[i] = row[0]
	}
	sort.Float64s(xs)

	return &CDF{sorted: xs}, nil
}

// Len returns the number of samples the CDF is built on.
func (c *CDF) Len() int {
	return len(c.sorted)
}

// At returns the fraction of samples smaller than or equal to x.
func (c *CDF) At(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	return stat.CDF(x, stat.Empirical, c.sorted, nil)
}

// Eval returns the CDF at a scalar query or at every value of a batch
// of queries (a []float64 or data.Vector).
func (c *CDF) Eval(x any) ([]float64, error) {
	flat, shape, err := data.Flatten(x)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "query: %v", err)
	}
	if len(shape) > 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "query has shape %v, expected a scalar or a batch", shape)
	}

	res := make([]float64, len(flat))
	for i, q := range flat {
		res[i] = c.At(q)
	}

	return res, nil
}
