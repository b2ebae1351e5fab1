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
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// DefaultSampleCount is the number of samples materialized on the
// first access to the pool of a generator-backed variable.
const DefaultSampleCount = 1000

type settings struct {
	sampleCount int
	src         rand.Source
	name        string
}

func defaultSettings() settings {
	return settings{sampleCount: DefaultSampleCount}
}

func (s settings) validate() error {
	if s.sampleCount < 2 {
		return errors.Wrapf(ErrInvalidSampleCount, "default sample count %d is below 2", s.sampleCount)
	}

	return nil
}

// Option configures a RandomVariable.
type Option func(*settings)

// WithDefaultSampleCount sets the number of samples drawn on the
// first lazy access to the pool. It must be at least 2.
func WithDefaultSampleCount(n int) Option {
	return func(s *settings) {
		s.sampleCount = n
	}
}

// WithSource sets the source used to resample pools. Pass a
// sample.DetSource or a seeded source for reproducible resampling.
func WithSource(src rand.Source) Option {
	return func(s *settings) {
		s.src = src
	}
}

// WithName sets the distribution name reported by String.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}
