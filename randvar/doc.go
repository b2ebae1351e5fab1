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

// Package randvar implements random variables backed either by a
// generator, which produces a fresh value on every draw, or by a pool
// of observed values, which is resampled with replacement.
//
// Samples of generator-backed variables are materialized lazily: the
// first access to the pool, directly or through any statistic, draws
// the default sample count and caches the result. Moments are cached
// per pool version and recomputed after the pool changes.
//
// Moments need arithmetic on the sample type. float64, float32 and
// []float64 are supported directly, other types must implement
// data.Numeric. Requesting a moment of any other type fails with an
// error wrapping ErrNonNumericType.
//
// A RandomVariable is not safe for concurrent use.
package randvar
