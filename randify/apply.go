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
	"github.com/fentec-project/randify/randvar"
	"github.com/pkg/errors"
)

// Apply returns the distribution of f(X) where X is distributed as x.
func Apply[A, R any](p *Propagator, f func(A) R, x *randvar.RandomVariable[A]) (*randvar.RandomVariable[R], error) {
	if x == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil random variable")
	}

	return typed[R](p.Call(func(args ...any) (any, error) {
		return f(args[0].(A)), nil
	}, x))
}

// Apply2 returns the distribution of f(X, Y) where X and Y are
// distributed as x and y.
func Apply2[A, B, R any](p *Propagator, f func(A, B) R,
	x *randvar.RandomVariable[A], y *randvar.RandomVariable[B]) (*randvar.RandomVariable[R], error) {
	if x == nil || y == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil random variable")
	}

	return typed[R](p.Call(func(args ...any) (any, error) {
		return f(args[0].(A), args[1].(B)), nil
	}, x, y))
}

// Apply3 returns the distribution of f(X, Y, Z) where X, Y and Z are
// distributed as x, y and z.
func Apply3[A, B, C, R any](p *Propagator, f func(A, B, C) R,
	x *randvar.RandomVariable[A], y *randvar.RandomVariable[B], z *randvar.RandomVariable[C]) (*randvar.RandomVariable[R], error) {
	if x == nil || y == nil || z == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil random variable")
	}

	return typed[R](p.Call(func(args ...any) (any, error) {
		return f(args[0].(A), args[1].(B), args[2].(C)), nil
	}, x, y, z))
}

func typed[R any](out any, err error) (*randvar.RandomVariable[R], error) {
	if err != nil {
		return nil, err
	}
	rv, ok := out.(*randvar.RandomVariable[any])
	if !ok {
		return nil, errors.Wrapf(ErrInconsistentReturn, "expected a single random variable, got %T", out)
	}

	return randvar.As[R](rv)
}
