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

package randify

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Option configures a Propagator.
type Option func(*Propagator)

// WithConfig replaces the whole configuration. Options given after
// it override single settings.
func WithConfig(cfg Config) Option {
	return func(p *Propagator) {
		p.cfg = cfg
	}
}

// WithSamples fixes the number of samples. It has no effect when
// a pool-backed argument determines the count.
func WithSamples(n int) Option {
	return func(p *Propagator) {
		p.cfg.N = n
	}
}

// WithDuration sets the target duration of automatically sized
// simulations.
func WithDuration(d time.Duration) Option {
	return func(p *Propagator) {
		p.cfg.Duration = d
	}
}

// WithVerbose enables logging of the sample count and elapsed time.
func WithVerbose(verbose bool) Option {
	return func(p *Propagator) {
		p.cfg.Verbose = verbose
	}
}

// WithWorkers bounds the number of concurrent evaluations.
// WithWorkers(1) evaluates sequentially.
func WithWorkers(n int) Option {
	return func(p *Propagator) {
		p.cfg.Workers = n
	}
}

// WithWarmupCalls sets the number of timed calls used for sizing.
func WithWarmupCalls(n int) Option {
	return func(p *Propagator) {
		p.cfg.WarmupCalls = n
	}
}

// WithMaxSamples caps automatically chosen sample counts.
func WithMaxSamples(n int) Option {
	return func(p *Propagator) {
		p.cfg.MaxSamples = n
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(p *Propagator) {
		p.log = logger
	}
}
