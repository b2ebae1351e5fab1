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
	"context"
	"reflect"
	"runtime"
	"time"

	"github.com/fentec-project/randify/internal"
	"github.com/fentec-project/randify/randvar"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInconsistentSampleCount = internal.ErrInconsistentSampleCount
	ErrInvalidSampleCount      = internal.ErrInvalidSampleCount
	ErrInconsistentReturn      = internal.ErrInconsistentReturn
	ErrInvalidArgument         = internal.ErrInvalidArgument
)

// Func is a function that can be propagated. Random arguments are
// passed to it as single samples.
type Func func(args ...any) (any, error)

// Tuple is returned by a Func that produces several values. Every
// position of the tuple becomes a separate random variable.
type Tuple []any

// Propagator evaluates functions on random arguments.
type Propagator struct {
	cfg Config
	log logrus.FieldLogger
}

// New returns a Propagator configured by opts on top of DefaultConfig.
func New(opts ...Option) (*Propagator, error) {
	p := &Propagator{
		cfg: DefaultConfig(),
		log: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}
	p.log = p.log.WithField("module", "randify")

	return p, nil
}

// Wrap returns f wrapped by a new Propagator configured by opts.
func Wrap(f Func, opts ...Option) (Func, error) {
	p, err := New(opts...)
	if err != nil {
		return nil, err
	}

	return p.Wrap(f), nil
}

// Config returns the configuration of p.
func (p *Propagator) Config() Config {
	return p.cfg
}

// Wrap returns a function that calls p.Call with f.
func (p *Propagator) Wrap(f Func) Func {
	return func(args ...any) (any, error) {
		return p.Call(f, args...)
	}
}

// Call evaluates f on args. If no argument is a randvar.Variable,
// the result of f is returned unchanged. Otherwise f is evaluated once
// per sample and the result is a *randvar.RandomVariable[any], or a
// Tuple of them if f returns a Tuple.
//
// Generator-backed arguments are extended to the resolved sample count
// if their pools are smaller. Larger pools are kept, only their first
// samples take part in the call.
func (p *Propagator) Call(f Func, args ...any) (any, error) {
	if f == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil function")
	}
	var positions []int
	var vars []randvar.Variable
	for i, arg := range args {
		if v, ok := arg.(randvar.Variable); ok {
			if isNil(v) {
				return nil, errors.Wrapf(ErrInvalidArgument, "argument %d is a nil random variable", i)
			}
			positions = append(positions, i)
			vars = append(vars, v)
		}
	}
	if len(vars) == 0 {
		return f(args...)
	}

	start := time.Now()
	n, err := p.sampleCount(f, args, positions, vars)
	if err != nil {
		return nil, err
	}

	pools := make([][]any, len(vars))
	for j, v := range vars {
		if v.Mode() == randvar.GeneratorMode {
			if err := v.ExtendTo(n); err != nil {
				return nil, errors.WithMessagef(err, "argument %d", positions[j])
			}
		}
		if pools[j], err = v.BoxedHead(n); err != nil {
			return nil, errors.WithMessagef(err, "argument %d", positions[j])
		}
	}

	results := make([]any, n)
	if err := p.evaluate(f, args, positions, pools, results); err != nil {
		return nil, err
	}
	out, err := reassemble(results)
	if err != nil {
		return nil, err
	}

	if p.cfg.Verbose {
		p.log.WithFields(logrus.Fields{
			"samples": n,
			"elapsed": time.Since(start),
		}).Info("Monte Carlo propagation finished")
	}

	return out, nil
}

// sampleCount resolves the number of samples of a propagation.
func (p *Propagator) sampleCount(f Func, args []any, positions []int, vars []randvar.Variable) (int, error) {
	n := -1
	for j, v := range vars {
		if v.Mode() != randvar.PoolMode {
			continue
		}
		if n < 0 {
			n = v.Len()
		} else if v.Len() != n {
			return 0, errors.Wrapf(ErrInconsistentSampleCount, "argument %d has %d samples, expected %d",
				positions[j], v.Len(), n)
		}
	}
	if n > 0 {
		p.log.Debugf("Using %d samples of pool-backed arguments", n)
		return n, nil
	}
	if p.cfg.N > 0 {
		return p.cfg.N, nil
	}

	return p.warmup(f, args, positions, vars)
}

// warmup times cfg.WarmupCalls calls of f on representative samples
// and returns the number of calls that fit into cfg.Duration.
func (p *Propagator) warmup(f Func, args []any, positions []int, vars []randvar.Variable) (int, error) {
	call := make([]any, len(args))
	copy(call, args)
	for j, pos := range positions {
		call[pos] = vars[j].Representative()
	}

	start := time.Now()
	for i := 0; i < p.cfg.WarmupCalls; i++ {
		if _, err := f(call...); err != nil {
			return 0, errors.WithMessage(err, "warm-up call failed")
		}
	}
	elapsed := time.Since(start)

	if elapsed <= 0 {
		return p.cfg.MaxSamples, nil
	}
	est := float64(p.cfg.WarmupCalls) * float64(p.cfg.Duration) / float64(elapsed)
	if est > float64(p.cfg.MaxSamples) {
		return p.cfg.MaxSamples, nil
	}
	n := int(est)
	if n <= 0 {
		return 0, errors.Wrapf(ErrInvalidSampleCount, "%d calls took %v, none fit into %v",
			p.cfg.WarmupCalls, elapsed, p.cfg.Duration)
	}
	p.log.Debugf("Warm-up of %d calls took %v, using %d samples", p.cfg.WarmupCalls, elapsed, n)

	return n, nil
}

func (p *Propagator) workers(n int) int {
	w := p.cfg.Workers
	if w == 0 {
		w = runtime.GOMAXPROCS(0)
	}

	return min(w, n)
}

// evaluate calls f for every sample index. Indices are split into
// one contiguous block per worker and result i is stored at
// results[i].
func (p *Propagator) evaluate(f Func, args []any, positions []int, pools [][]any, results []any) error {
	n := len(results)
	workers := p.workers(n)
	block := (n + workers - 1) / workers

	g, ctx := errgroup.WithContext(context.Background())
	for lo := 0; lo < n; lo += block {
		lo, hi := lo, min(lo+block, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if ctx.Err() != nil {
					return nil
				}
				call := make([]any, len(args))
				copy(call, args)
				for j, pos := range positions {
					call[pos] = pools[j][i]
				}
				y, err := f(call...)
				if err != nil {
					return errors.WithMessagef(err, "sample %d", i)
				}
				results[i] = y
			}
			return nil
		})
	}

	return g.Wait()
}

// reassemble turns per-sample results into random variables. The
// first result decides whether f returns a single value or a Tuple.
func reassemble(results []any) (any, error) {
	first, isTuple := results[0].(Tuple)
	if !isTuple {
		for i, r := range results {
			if _, ok := r.(Tuple); ok {
				return nil, errors.Wrapf(ErrInconsistentReturn, "sample %d returned a tuple", i)
			}
		}
		return randvar.FromSamples(results)
	}

	cols := make([][]any, len(first))
	for k := range cols {
		cols[k] = make([]any, len(results))
	}
	for i, r := range results {
		t, ok := r.(Tuple)
		if !ok || len(t) != len(first) {
			return nil, errors.Wrapf(ErrInconsistentReturn, "sample %d returned %v, expected a tuple of %d values",
				i, r, len(first))
		}
		for k, y := range t {
			cols[k][i] = y
		}
	}

	out := make(Tuple, len(cols))
	for k, col := range cols {
		rv, err := randvar.FromSamples(col)
		if err != nil {
			return nil, errors.WithMessagef(err, "return value %d", k)
		}
		out[k] = rv
	}

	return out, nil
}

func isNil(v randvar.Variable) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
