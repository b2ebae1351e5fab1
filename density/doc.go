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

// Package density estimates probability densities and cumulative
// distribution functions from samples of one or more random variables.
//
// Densities are kernel density estimates with an isotropic Gaussian
// kernel of fixed bandwidth. The bandwidth is not adapted to the data:
// DefaultBandwidth suits standardized data and estimates are sensitive
// to it, so data on a very different scale should be fitted with
// FitBandwidth.
//
// Values of any shape can be fitted: every sample is flattened to a row
// (see data.Flatten) and the rows of all random variables are
// concatenated into one joint sample. Query points are flattened the
// same way, either one point per random variable or a batch of points
// stacked along a leading axis.
//
// Cumulative distribution functions are empirical and only defined
// for a single scalar random variable.
package density
