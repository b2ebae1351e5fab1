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

// Package sample includes generators for sampling random values
// from different probability distributions.
//
// Package sample provides the Sampler interface along with
// implementations backed by gonum's distuv and distmv packages.
// Its primary purpose is to supply the generator capabilities that
// random variables draw from: every generator offers a single-draw
// Draw method and a bulk DrawN method.
//
// Sources of randomness are golang.org/x/exp/rand sources. Besides
// seeded PCG sources (NewSource), DetSource derives a reproducible
// stream from a 32 byte key using the salsa20 stream cipher.
package sample
