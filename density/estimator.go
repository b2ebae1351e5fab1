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

	"github.com/aclements/go-moremath/stats"
	"github.com/fentec-project/randify/data"
	"github.com/fentec-project/randify/internal"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// DefaultBandwidth is the standard deviation of the Gaussian kernel
// used by Fit.
const DefaultBandwidth = 1e-2

var (
	ErrInvalidArgument = internal.ErrInvalidArgument
	ErrShapeMismatch   = internal.ErrShapeMismatch
)

// Source is implemented by random variables that can be fitted.
// FlatSamples returns every sample flattened to a row, together
// with the shape of a single sample.
type Source interface {
	FlatSamples() ([][]float64, data.Shape, error)
}

// Estimator is a kernel density estimate of the joint distribution
// of one or more random variables.
type Estimator struct {
	bandwidth float64
	shapes    []data.Shape
	dim       int
	rows      [][]float64
	logNorm   float64
	// kde is set for one dimensional joint samples.
	kde *stats.KDE
}

// Fit fits an Estimator with DefaultBandwidth to the joint samples
// of sources.
func Fit(sources ...Source) (*Estimator, error) {
	return FitBandwidth(DefaultBandwidth, sources...)
}

// FitBandwidth fits an Estimator with kernel bandwidth h to the joint
// samples of sources. Sources with more samples than others are
// truncated to the smallest sample count.
func FitBandwidth(h float64, sources ...Source) (*Estimator, error) {
	if len(sources) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "no random variables to fit")
	}
	if !(h > 0) || math.IsInf(h, 1) {
		return nil, errors.Wrapf(ErrInvalidArgument, "bandwidth %g", h)
	}

	flats := make([][][]float64, len(sources))
	shapes := make([]data.Shape, len(sources))
	n, dim := -1, 0
	for k, src := range sources {
		rows, shape, err := src.FlatSamples()
		if err != nil {
			return nil, errors.Wrapf(err, "random variable %d", k)
		}
		if len(rows) == 0 {
			return nil, errors.Wrapf(ErrInvalidArgument, "random variable %d has no samples", k)
		}
		for i, row := range rows {
			if len(row) != shape.Size() {
				return nil, errors.Wrapf(ErrShapeMismatch,
					"random variable %d: sample %d has %d values, expected shape %v", k, i, len(row), shape)
			}
		}
		if n == -1 || len(rows) < n {
			n = len(rows)
		}
		flats[k] = rows
		shapes[k] = shape
		dim += shape.Size()
	}
	if dim == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "samples have no values")
	}

	joint := make([][]float64, n)
	for i := range joint {
		row := make([]float64, 0, dim)
		for k := range flats {
			row = append(row, flats[k][i]...)
		}
		joint[i] = row
	}

	e := &Estimator{
		bandwidth: h,
		shapes:    shapes,
		dim:       dim,
		rows:      joint,
		logNorm:   -0.5 * float64(dim) * math.Log(2*math.Pi*h*h),
	}
	if dim == 1 {
		xs := make([]float64, n)
		for i, row := range joint {
			xs[i] = row[0]
		}
		e.kde = &stats.KDE{
			Sample:    stats.Sample{Xs: xs},
			Kernel:    stats.GaussianKernel,
			Bandwidth: h,
		}
	}

	return e, nil
}

// Dim returns the number of values in a joint sample.
func (e *Estimator) Dim() int {
	return e.dim
}

// Len returns the number of joint samples the estimate is built on.
func (e *Estimator) Len() int {
	return len(e.rows)
}

// Bandwidth returns the kernel bandwidth.
func (e *Estimator) Bandwidth() float64 {
	return e.bandwidth
}

// Shapes returns the sample shape of every fitted random variable.
func (e *Estimator) Shapes() []data.Shape {
	shapes := make([]data.Shape, len(e.shapes))
	copy(shapes, e.shapes)
	return shapes
}

// Bounds returns the smallest and the largest fitted value of every
// dimension of the joint sample.
func (e *Estimator) Bounds() (lo, hi []float64) {
	lo = make([]float64, e.dim)
	hi = make([]float64, e.dim)
	copy(lo, e.rows[0])
	copy(hi, e.rows[0])
	for _, row := range e.rows[1:] {
		for j, v := range row {
			lo[j] = math.Min(lo[j], v)
			hi[j] = math.Max(hi[j], v)
		}
	}

	return lo, hi
}

// At returns the density at a single joint point, given as one
// value per fitted random variable.
func (e *Estimator) At(points ...any) (float64, error) {
	dens, err := e.Eval(points...)
	if err != nil {
		return 0, err
	}
	if len(dens) != 1 {
		return 0, errors.Wrapf(ErrInvalidArgument, "expected a single point, got a batch of %d", len(dens))
	}

	return dens[0], nil
}

// Eval returns densities at the joint points given by points, one
// argument per fitted random variable. An argument is either a single
// value of the random variable's shape or a batch of such values
// stacked along a leading axis; all batches must have the same length.
// The result holds one density per point.
func (e *Estimator) Eval(points ...any) ([]float64, error) {
	if len(points) != len(e.shapes) {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"got %d arguments for %d random variables", len(points), len(e.shapes))
	}

	queries := make([][]float64, len(points))
	batch := -1
	for k, p := range points {
		flat, shape, err := data.Flatten(p)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidArgument, "argument %d: %v", k, err)
		}
		var rows int
		switch {
		case shape.Equal(e.shapes[k]):
			rows = 1
		case len(shape) > 0 && shape[1:].Equal(e.shapes[k]):
			rows = shape[0]
		default:
			return nil, errors.Wrapf(ErrInvalidArgument,
				"argument %d has shape %v, random variable has samples of shape %v", k, shape, e.shapes[k])
		}
		if batch != -1 && rows != batch {
			return nil, errors.Wrapf(ErrInvalidArgument,
				"argument %d holds %d points, previous arguments hold %d", k, rows, batch)
		}
		batch = rows
		queries[k] = flat
	}

	dens := make([]float64, batch)
	x := make([]float64, 0, e.dim)
	for r := range dens {
		x = x[:0]
		for k, q := range queries {
			size := e.shapes[k].Size()
			x = append(x, q[r*size:(r+1)*size]...)
		}
		dens[r] = e.density(x)
	}

	return dens, nil
}

// density evaluates the estimate at the joint point x.
func (e *Estimator) density(x []float64) float64 {
	if floats.HasNaN(x) {
		return math.NaN()
	}
	for _, v := range x {
		if math.IsInf(v, 0) {
			return 0
		}
	}
	if e.kde != nil {
		return e.kde.PDF(x[0])
	}

	twoH2 := 2 * e.bandwidth * e.bandwidth
	terms := make([]float64, len(e.rows))
	for i, row := range e.rows {
		d := floats.Distance(x, row, 2)
		terms[i] = -d * d / twoH2
	}

	return math.Exp(e.logNorm + floats.LogSumExp(terms) - math.Log(float64(len(e.rows))))
}
