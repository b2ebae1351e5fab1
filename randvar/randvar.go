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

package randvar

import (
	"fmt"

	"github.com/fentec-project/randify/data"
	"github.com/fentec-project/randify/density"
	"github.com/fentec-project/randify/internal"
	"github.com/fentec-project/randify/sample"
	"github.com/pkg/errors"
)

var (
	ErrInitialization     = internal.ErrInitialization
	ErrProperty           = internal.ErrProperty
	ErrShapeMismatch      = internal.ErrShapeMismatch
	ErrNonNumericType     = internal.ErrNonNumericType
	ErrDegenerateSample   = internal.ErrDegenerateSample
	ErrInvalidSampleCount = internal.ErrInvalidSampleCount
	ErrInvalidArgument    = internal.ErrInvalidArgument
)

// Variable is the part of a RandomVariable that does not depend on
// its sample type.
type Variable interface {
	fmt.Stringer
	Mode() Mode
	Len() int
	ExtendTo(n int) error
	Truncate(n int) error
	Boxed() ([]any, error)
	BoxedHead(n int) ([]any, error)
	Representative() any
}

var _ Variable = (*RandomVariable[float64])(nil)
var _ density.Source = (*RandomVariable[float64])(nil)

// RandomVariable holds the distribution of a value of type T, either
// through a generator or through a pool of observed values.
type RandomVariable[T any] struct {
	v       variant[T]
	example T
	check   func(T) error
	cfg     settings

	pool    []T
	version uint64
	cache   momentCache[T]
}

func configure(opts []Option) (settings, error) {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.validate()
}

// New returns a generator-backed RandomVariable. The generator is
// invoked once to obtain a representative sample.
func New[T any](gen Generator[T], opts ...Option) (*RandomVariable[T], error) {
	if gen == nil {
		return nil, errors.Wrap(ErrInitialization, "no generator")
	}
	cfg, err := configure(opts)
	if err != nil {
		return nil, err
	}
	example, err := gen.Draw()
	if err != nil {
		return nil, errors.Wrap(err, "error drawing representative sample")
	}
	check := homogeneity(example)

	return &RandomVariable[T]{
		v:       &generatorVariant[T]{gen: gen, check: check},
		example: example,
		check:   check,
		cfg:     cfg,
	}, nil
}

// FromFunc returns a RandomVariable drawing its samples from f.
func FromFunc[T any](f func() (T, error), opts ...Option) (*RandomVariable[T], error) {
	if f == nil {
		return nil, errors.Wrap(ErrInitialization, "no generator")
	}

	return New[T](GeneratorFunc[T](f), opts...)
}

// FromSamples returns a RandomVariable backed by a copy of samples.
// All samples must be structurally equal to the first one.
func FromSamples[T any](samples []T, opts ...Option) (*RandomVariable[T], error) {
	if len(samples) == 0 {
		return nil, errors.Wrap(ErrInitialization, "empty sample pool")
	}
	cfg, err := configure(opts)
	if err != nil {
		return nil, err
	}
	check := homogeneity(samples[0])
	for i, x := range samples {
		if err := check(x); err != nil {
			return nil, errors.WithMessagef(err, "sample %d", i)
		}
	}
	pool := make([]T, len(samples))
	copy(pool, samples)

	return &RandomVariable[T]{
		v:       &poolVariant[T]{idx: sample.NewIndex(cfg.src)},
		example: samples[0],
		check:   check,
		cfg:     cfg,
		pool:    pool,
		version: 1,
	}, nil
}

// Sample returns n independent draws without storing them.
// Generator-backed variables draw new values, pool-backed variables
// resample the pool with replacement.
func (rv *RandomVariable[T]) Sample(n int) ([]T, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidSampleCount, "cannot draw %d samples", n)
	}

	return rv.v.draw(rv.pool, n)
}

// ExtendTo grows the pool to at least n samples. It does nothing if
// the pool already holds n samples.
func (rv *RandomVariable[T]) ExtendTo(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidSampleCount, "cannot extend pool to %d samples", n)
	}
	if len(rv.pool) >= n {
		return nil
	}
	xs, err := rv.v.draw(rv.pool, n-len(rv.pool))
	if err != nil {
		return err
	}
	rv.pool = append(rv.pool, xs...)
	rv.version++

	return nil
}

// Truncate keeps only the first n samples of the pool. It does
// nothing if the pool holds at most n samples.
func (rv *RandomVariable[T]) Truncate(n int) error {
	if n < 1 {
		return errors.Wrapf(ErrInvalidSampleCount, "cannot truncate pool to %d samples", n)
	}
	if len(rv.pool) <= n {
		return nil
	}
	rv.pool = rv.pool[:n:n]
	rv.version++

	return nil
}

// materialize draws the default number of samples into an
// empty pool.
func (rv *RandomVariable[T]) materialize() error {
	if len(rv.pool) > 0 {
		return nil
	}

	return rv.ExtendTo(rv.cfg.sampleCount)
}

// Samples returns a copy of the pool, materializing it first
// if needed.
func (rv *RandomVariable[T]) Samples() ([]T, error) {
	if err := rv.materialize(); err != nil {
		return nil, err
	}
	xs := make([]T, len(rv.pool))
	copy(xs, rv.pool)

	return xs, nil
}

// Boxed returns the pool as a slice of interface values.
func (rv *RandomVariable[T]) Boxed() ([]any, error) {
	if err := rv.materialize(); err != nil {
		return nil, err
	}

	return rv.BoxedHead(len(rv.pool))
}

// BoxedHead returns the first n samples of the pool as interface
// values. The pool is left untouched, it must already hold n samples.
func (rv *RandomVariable[T]) BoxedHead(n int) ([]any, error) {
	if n < 0 || n > len(rv.pool) {
		return nil, errors.Wrapf(ErrInvalidSampleCount, "pool holds %d samples, %d requested",
			len(rv.pool), n)
	}
	xs := make([]any, n)
	for i, x := range rv.pool[:n] {
		xs[i] = x
	}

	return xs, nil
}

// Len returns the number of materialized samples.
func (rv *RandomVariable[T]) Len() int {
	return len(rv.pool)
}

// Mode returns how rv obtains its samples.
func (rv *RandomVariable[T]) Mode() Mode {
	return rv.v.mode()
}

// Example returns the representative sample.
func (rv *RandomVariable[T]) Example() T {
	return rv.example
}

// Representative returns the representative sample as an interface value.
func (rv *RandomVariable[T]) Representative() any {
	return rv.example
}

// Name returns the name of the distribution of rv.
func (rv *RandomVariable[T]) Name() string {
	if rv.cfg.name != "" {
		return rv.cfg.name
	}

	return rv.v.describe()
}

func (rv *RandomVariable[T]) String() string {
	return fmt.Sprintf("<RandomVariable of type %T with %s distribution>", rv.example, rv.Name())
}

// FlatSamples lays every sample out as a row of float64 values.
// It returns the rows together with the shape of a single sample.
func (rv *RandomVariable[T]) FlatSamples() ([][]float64, data.Shape, error) {
	if err := rv.materialize(); err != nil {
		return nil, nil, err
	}
	rows := make([][]float64, len(rv.pool))
	var shape data.Shape
	for i, x := range rv.pool {
		row, s, err := data.Flatten(x)
		if err != nil {
			return nil, nil, err
		}
		if i == 0 {
			shape = s
		} else if !s.Equal(shape) {
			return nil, nil, errors.Wrapf(ErrShapeMismatch, "sample %d has shape %v, expected %v", i, s, shape)
		}
		rows[i] = row
	}

	return rows, shape, nil
}

// PDF fits a kernel density estimate to the samples of rv.
// See density.Fit for estimates over several variables.
func (rv *RandomVariable[T]) PDF() (*density.Estimator, error) {
	return density.Fit(rv)
}

// CDF fits the empirical cumulative distribution of rv, which must
// have scalar samples.
func (rv *RandomVariable[T]) CDF() (*density.CDF, error) {
	return density.FitCDF(rv)
}
