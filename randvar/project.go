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
	"reflect"

	"github.com/fentec-project/randify/data"
	"github.com/pkg/errors"
)

// inherit returns options that carry the settings of rv over to a
// derived variable, followed by opts.
func (rv *RandomVariable[T]) inherit(opts []Option) []Option {
	base := []Option{WithDefaultSampleCount(rv.cfg.sampleCount), WithSource(rv.cfg.src)}
	return append(base, opts...)
}

// Project returns the distribution of f(X) where X is distributed
// as rv. A generator-backed rv with no materialized samples gives
// a generator-backed result that applies f to every fresh draw,
// otherwise the result is backed by f applied to every sample
// of the pool.
func Project[T, R any](rv *RandomVariable[T], f func(T) R, opts ...Option) (*RandomVariable[R], error) {
	if f == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil projection")
	}

	return project(rv, func(x T) (R, error) { return f(x), nil }, opts)
}

func project[T, R any](rv *RandomVariable[T], f func(T) (R, error), opts []Option) (*RandomVariable[R], error) {
	if g, ok := rv.v.(*generatorVariant[T]); ok && len(rv.pool) == 0 {
		return New[R](GeneratorFunc[R](func() (R, error) {
			x, err := g.gen.Draw()
			if err == nil {
				err = g.check(x)
			}
			if err != nil {
				var zero R
				return zero, err
			}
			return f(x)
		}), rv.inherit(opts)...)
	}

	if err := rv.materialize(); err != nil {
		return nil, err
	}
	ys := make([]R, len(rv.pool))
	for i, x := range rv.pool {
		y, err := f(x)
		if err != nil {
			return nil, errors.WithMessagef(err, "sample %d", i)
		}
		ys[i] = y
	}

	return FromSamples(ys, rv.inherit(opts)...)
}

// Call returns the distribution of the named property of the samples
// of rv. See data.Property for the properties that are available.
// An error wrapping ErrProperty is returned if the representative
// sample has no such property.
func (rv *RandomVariable[T]) Call(name string, opts ...Option) (*RandomVariable[any], error) {
	if _, err := data.Property(rv.example, name); err != nil {
		return nil, err
	}

	return project(rv, func(x T) (any, error) {
		return data.Property(x, name)
	}, opts)
}

// Index returns a pool-backed variable holding the element key of
// every sample of rv. See data.Index for the supported keys.
func (rv *RandomVariable[T]) Index(key any, opts ...Option) (*RandomVariable[any], error) {
	if _, err := data.Index(rv.example, key); err != nil {
		return nil, err
	}
	if err := rv.materialize(); err != nil {
		return nil, err
	}
	ys := make([]any, len(rv.pool))
	for i, x := range rv.pool {
		y, err := data.Index(x, key)
		if err != nil {
			return nil, errors.WithMessagef(err, "sample %d", i)
		}
		ys[i] = y
	}

	return FromSamples(ys, rv.inherit(opts)...)
}

// As returns a typed view of a variable with interface samples.
// An error wrapping ErrInvalidArgument is returned if a sample is
// not of type R.
func As[R any](rv *RandomVariable[any], opts ...Option) (*RandomVariable[R], error) {
	conv := func(x any) (R, error) {
		r, ok := x.(R)
		if !ok {
			return r, errors.Wrapf(ErrInvalidArgument, "sample of type %T is not %v",
				x, reflect.TypeOf((*R)(nil)).Elem())
		}
		return r, nil
	}
	if _, err := conv(rv.example); err != nil {
		return nil, err
	}

	return project(rv, conv, opts)
}
