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
	"github.com/fentec-project/randify/internal/numeric"
	"github.com/pkg/errors"
)

type moment int

const (
	meanMoment moment = iota
	varianceMoment
	skewnessMoment
	kurtosisMoment
	numMoments
)

var momentNames = [numMoments]string{"expected value", "variance", "skewness", "kurtosis"}

// minSamples holds the smallest pool for which each moment is defined.
var minSamples = [numMoments]int{1, 2, 3, 4}

// momentCache holds moments computed for one version of the pool.
type momentCache[T any] struct {
	version uint64
	set     [numMoments]bool
	vals    [numMoments]T
}

func (c *momentCache[T]) lookup(version uint64, m moment) (T, bool) {
	if c.version != version {
		var zero T
		return zero, false
	}

	return c.vals[m], c.set[m]
}

func (c *momentCache[T]) store(version uint64, m moment, v T) {
	if c.version != version {
		*c = momentCache[T]{version: version}
	}
	c.vals[m] = v
	c.set[m] = true
}

func (rv *RandomVariable[T]) moment(m moment, compute func(ops numeric.Ops[T]) (T, error)) (T, error) {
	var zero T
	ops, err := numeric.For(rv.example)
	if err != nil {
		return zero, errors.WithMessage(err, momentNames[m])
	}
	if err := rv.materialize(); err != nil {
		return zero, err
	}
	if n := len(rv.pool); n < minSamples[m] {
		return zero, errors.Wrapf(ErrDegenerateSample, "%s needs at least %d samples, got %d",
			momentNames[m], minSamples[m], n)
	}
	if v, ok := rv.cache.lookup(rv.version, m); ok {
		return ops.Scale(v, 1), nil
	}

	v, err := compute(ops)
	if err != nil {
		return zero, err
	}
	rv.cache.store(rv.version, m, v)

	// callers get their own copy, slice-backed moments would
	// otherwise alias the cache
	return ops.Scale(v, 1), nil
}

// ExpectedValue returns the arithmetic mean of the pool.
func (rv *RandomVariable[T]) ExpectedValue() (T, error) {
	return rv.moment(meanMoment, func(ops numeric.Ops[T]) (T, error) {
		return numeric.Mean(ops, rv.pool), nil
	})
}

// Variance returns the sample variance of the pool with Bessel's
// correction.
func (rv *RandomVariable[T]) Variance() (T, error) {
	return rv.moment(varianceMoment, func(ops numeric.Ops[T]) (T, error) {
		mean, err := rv.ExpectedValue()
		if err != nil {
			return mean, err
		}
		return numeric.Variance(ops, rv.pool, mean), nil
	})
}

// Skewness returns the bias corrected sample skewness of the pool.
func (rv *RandomVariable[T]) Skewness() (T, error) {
	return rv.moment(skewnessMoment, func(ops numeric.Ops[T]) (T, error) {
		mean, variance, err := rv.meanVariance()
		if err != nil {
			return mean, err
		}
		return numeric.Skewness(ops, rv.pool, mean, variance), nil
	})
}

// Kurtosis returns the sample kurtosis of the pool. It is not reduced
// by 3, so a normal distribution has kurtosis close to 3.
func (rv *RandomVariable[T]) Kurtosis() (T, error) {
	return rv.moment(kurtosisMoment, func(ops numeric.Ops[T]) (T, error) {
		mean, variance, err := rv.meanVariance()
		if err != nil {
			return mean, err
		}
		return numeric.Kurtosis(ops, rv.pool, mean, variance), nil
	})
}

// StdDev returns the square root of the variance.
func (rv *RandomVariable[T]) StdDev() (T, error) {
	variance, err := rv.Variance()
	if err != nil {
		return variance, err
	}
	ops, err := numeric.For(rv.example)
	if err != nil {
		return variance, err
	}

	return ops.Pow(variance, 0.5), nil
}

func (rv *RandomVariable[T]) meanVariance() (mean, variance T, err error) {
	if mean, err = rv.ExpectedValue(); err != nil {
		return
	}
	variance, err = rv.Variance()

	return
}
