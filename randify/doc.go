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

// Package randify propagates random variables through ordinary
// functions by Monte Carlo simulation.
//
// A wrapped function is evaluated once per sample index with the i-th
// sample of every random argument substituted in place, and the
// outputs are collected into new pool-backed random variables.
// Arguments that are not random are passed through unchanged, and a
// call without random arguments is forwarded to the function as is.
//
// The number of samples is taken from pool-backed arguments, which
// must all hold the same number of samples. Otherwise an explicitly
// configured count is used, and without one the function is timed on
// representative samples and the count is chosen so that the whole
// simulation takes roughly the configured duration.
package randify
