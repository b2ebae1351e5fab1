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

package numeric

// Sum adds up xs, which must not be empty.
func Sum[T any](ops Ops[T], xs []T) T {
	s := xs[0]
	for _, x := range xs[1:] {
		s = ops.Add(s, x)
	}

	return s
}

// Mean returns the arithmetic mean of xs, which must not be empty.
func Mean[T any](ops Ops[T], xs []T) T {
	return ops.Scale(Sum(ops, xs), 1/float64(len(xs)))
}

// centralSum returns the sum of (x - mean)^p over xs.
func centralSum[T any](ops Ops[T], xs []T, mean T, p float64) T {
	s := ops.Pow(ops.Sub(xs[0], mean), p)
	for _, x := range xs[1:] {
		s = ops.Add(s, ops.Pow(ops.Sub(x, mean), p))
	}

	return s
}

// Variance returns the Bessel corrected sample variance of xs
// around mean. xs needs at least 2 values.
func Variance[T any](ops Ops[T], xs []T, mean T) T {
	n := float64(len(xs))
	return ops.Scale(centralSum(ops, xs, mean, 2), 1/(n-1))
}

// Skewness returns the bias corrected sample skewness
//
//	n / ((n-1)(n-2)) * sum((x - mean)^3) / variance^1.5
//
// of xs. xs needs at least 3 values.
func Skewness[T any](ops Ops[T], xs []T, mean, variance T) T {
	n := float64(len(xs))
	s := ops.Scale(centralSum(ops, xs, mean, 3), n/((n-1)*(n-2)))
	return ops.QuoElem(s, ops.Pow(variance, 1.5))
}

// Kurtosis returns the sample kurtosis
//
//	n(n+1) / ((n-1)(n-2)(n-3)) * sum((x - mean)^4) / variance^2
//
// of xs. The result is not reduced by 3, a normal distribution gives
// a value close to 3. xs needs at least 4 values.
func Kurtosis[T any](ops Ops[T], xs []T, mean, variance T) T {
	n := float64(len(xs))
	s := ops.Scale(centralSum(ops, xs, mean, 4), n*(n+1)/((n-1)*(n-2)*(n-3)))
	return ops.QuoElem(s, ops.Pow(variance, 2))
}
