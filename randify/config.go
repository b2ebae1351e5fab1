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
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/fentec-project/randify/internal"
	"github.com/pkg/errors"
)

// Config holds the settings of a Propagator.
type Config struct {
	// N is the number of samples. Zero selects the count automatically.
	N int `env:"RANDIFY_SAMPLES" envDefault:"0"`
	// Duration is the target duration of an automatically sized
	// simulation.
	Duration time.Duration `env:"RANDIFY_DURATION" envDefault:"1s"`
	// Verbose logs the sample count and elapsed time of every
	// propagation.
	Verbose bool `env:"RANDIFY_VERBOSE"`
	// Workers bounds the number of concurrent evaluations. Zero uses
	// GOMAXPROCS.
	Workers int `env:"RANDIFY_WORKERS" envDefault:"0"`
	// WarmupCalls is the number of timed calls used to size
	// a simulation.
	WarmupCalls int `env:"RANDIFY_WARMUP_CALLS" envDefault:"20"`
	// MaxSamples caps an automatically chosen sample count.
	MaxSamples int `env:"RANDIFY_MAX_SAMPLES" envDefault:"1000000"`
}

// DefaultConfig returns the configuration used when no options
// are given.
func DefaultConfig() Config {
	return Config{
		Duration:    time.Second,
		WarmupCalls: 20,
		MaxSamples:  1000000,
	}
}

// ConfigFromEnv reads the configuration from RANDIFY_* environment
// variables, using the defaults of DefaultConfig for unset ones.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks that c describes a usable configuration.
func (c Config) Validate() error {
	if c.N < 0 {
		return errors.Wrapf(internal.ErrInvalidSampleCount, "N = %d", c.N)
	}
	if c.N == 0 && c.Duration <= 0 {
		return errors.Wrapf(internal.ErrInvalidArgument, "duration %v must be positive", c.Duration)
	}
	if c.WarmupCalls < 1 {
		return errors.Wrapf(internal.ErrInvalidArgument, "%d warm-up calls", c.WarmupCalls)
	}
	if c.MaxSamples < 1 {
		return errors.Wrapf(internal.ErrInvalidSampleCount, "maximal sample count %d", c.MaxSamples)
	}
	if c.Workers < 0 {
		return errors.Wrapf(internal.ErrInvalidArgument, "%d workers", c.Workers)
	}

	return nil
}
